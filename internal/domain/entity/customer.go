package entity

import "time"

// Customer cliente del CRM. Referenciado (no poseído) por Order.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Interaction registro de contacto con un cliente (llamada, email, reunión...).
type Interaction struct {
	ID         string
	CustomerID string
	Type       string
	Notes      string
	CreatedBy  string // UserID
	CreatedAt  time.Time
}
