package repository

import "github.com/kellyos/kellyos-api/internal/domain/entity"

// CustomerRepository puerto de persistencia para clientes e interacciones CRM.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Customer, error)

	CreateInteraction(interaction *entity.Interaction) error
	ListInteractions(customerID string, limit, offset int) ([]*entity.Interaction, error)
}
