package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/kellyos/kellyos-api/internal/application/dto"
	"github.com/kellyos/kellyos-api/internal/domain"
	"github.com/kellyos/kellyos-api/internal/domain/entity"
	"github.com/kellyos/kellyos-api/internal/domain/repository"
)

// CustomerUseCase casos de uso CRM: clientes e interacciones.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create crea un cliente.
func (uc *CustomerUseCase) Create(in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtiene un cliente.
func (uc *CustomerUseCase) GetByID(id string) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	return toCustomerResponse(customer), nil
}

// Update actualiza un cliente (parcial).
func (uc *CustomerUseCase) Update(id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	customer, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		customer.Name = *in.Name
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Address != nil {
		customer.Address = *in.Address
	}
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete elimina un cliente. Sus órdenes históricas se conservan.
func (uc *CustomerUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// List lista clientes con paginación.
func (uc *CustomerUseCase) List(page dto.PageRequest) ([]dto.CustomerResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	result := make([]dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		result = append(result, *toCustomerResponse(c))
	}
	return result, nil
}

// CreateInteraction registra un contacto con un cliente existente.
func (uc *CustomerUseCase) CreateInteraction(userID string, in dto.CreateInteractionRequest) (*dto.InteractionResponse, error) {
	if in.CustomerID == "" || in.Type == "" {
		return nil, domain.ErrInvalidInput
	}
	customer, err := uc.repo.GetByID(in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	interaction := &entity.Interaction{
		ID:         uuid.New().String(),
		CustomerID: in.CustomerID,
		Type:       in.Type,
		Notes:      in.Notes,
		CreatedBy:  userID,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.CreateInteraction(interaction); err != nil {
		return nil, err
	}
	return toInteractionResponse(interaction), nil
}

// ListInteractions historial de contactos de un cliente.
func (uc *CustomerUseCase) ListInteractions(customerID string, page dto.PageRequest) ([]dto.InteractionResponse, error) {
	customer, err := uc.repo.GetByID(customerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	page.DefaultPage()
	list, err := uc.repo.ListInteractions(customerID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	result := make([]dto.InteractionResponse, 0, len(list))
	for _, i := range list {
		result = append(result, *toInteractionResponse(i))
	}
	return result, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toInteractionResponse(i *entity.Interaction) *dto.InteractionResponse {
	return &dto.InteractionResponse{
		ID:         i.ID,
		CustomerID: i.CustomerID,
		Type:       i.Type,
		Notes:      i.Notes,
		CreatedBy:  i.CreatedBy,
		CreatedAt:  i.CreatedAt,
	}
}
