package dto

import "time"

// CreateCustomerRequest alta de cliente CRM.
type CreateCustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpdateCustomerRequest actualización parcial de cliente.
type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// CustomerResponse representación pública del cliente.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateInteractionRequest registro de contacto con un cliente.
type CreateInteractionRequest struct {
	CustomerID string `json:"customer_id"`
	Type       string `json:"type"`
	Notes      string `json:"notes"`
}

// InteractionResponse interacción registrada.
type InteractionResponse struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Type       string    `json:"type"`
	Notes      string    `json:"notes,omitempty"`
	CreatedBy  string    `json:"created_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
