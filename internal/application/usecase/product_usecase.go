package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kellyos/kellyos-api/internal/application/dto"
	"github.com/kellyos/kellyos-api/internal/domain"
	"github.com/kellyos/kellyos-api/internal/domain/entity"
	"github.com/kellyos/kellyos-api/internal/domain/repository"
	"github.com/kellyos/kellyos-api/internal/infrastructure/cache"
)

// ProductUseCase casos de uso CRUD para productos. Quantity no se modifica
// por aquí: los cambios de stock van por el motor de inventario o por ventas.
type ProductUseCase struct {
	repo  repository.ProductRepository
	cache *cache.Cache
}

// NewProductUseCase construye el caso de uso. cache puede ser nil.
func NewProductUseCase(repo repository.ProductRepository, c *cache.Cache) *ProductUseCase {
	return &ProductUseCase{repo: repo, cache: c}
}

// Create crea un nuevo producto.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Price.IsNegative() || in.Cost.IsNegative() || in.Quantity < 0 || in.MinStockLevel < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetBySKU(in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		SKU:           in.SKU,
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		Cost:          in.Cost,
		Quantity:      in.Quantity,
		MinStockLevel: in.MinStockLevel,
		Category:      in.Category,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto. Lectura cache-aside con TTL corto.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	var cached dto.ProductResponse
	if uc.cache.GetProduct(ctx, id, &cached) {
		return &cached, nil
	}

	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	resp := toProductResponse(product)
	uc.cache.SetProduct(ctx, id, resp)
	return resp, nil
}

// Update actualiza un producto (parcial). No toca Quantity.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.SKU != nil {
		product.SKU = *in.SKU
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		if in.Price.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Price = *in.Price
	}
	if in.Cost != nil {
		if in.Cost.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.Cost = *in.Cost
	}
	if in.MinStockLevel != nil {
		if *in.MinStockLevel < 0 {
			return nil, domain.ErrInvalidInput
		}
		product.MinStockLevel = *in.MinStockLevel
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	uc.cache.InvalidateProduct(ctx, id)
	return toProductResponse(product), nil
}

// Delete elimina un producto.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.cache.InvalidateProduct(ctx, id)
	return nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(page dto.PageRequest) ([]dto.ProductResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		result = append(result, *toProductResponse(p))
	}
	return result, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:            p.ID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		Cost:          p.Cost,
		Quantity:      p.Quantity,
		MinStockLevel: p.MinStockLevel,
		Category:      p.Category,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
