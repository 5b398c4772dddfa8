package usecase

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/refnum"
)

// ProductUseCase casos de uso CRUD para productos terminados. Como con los
// items, la cantidad en stock no se toca por acá.
type ProductUseCase struct {
	repo  repository.ProductRepository
	clock refnum.Clock
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, clock refnum.Clock) *ProductUseCase {
	if clock == nil {
		clock = refnum.SystemClock{}
	}
	return &ProductUseCase{repo: repo, clock: clock}
}

// Create crea un producto con cantidad cero. El código es único.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	now := uc.clock.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		Code:           in.Code,
		Name:           in.Name,
		CategoryID:     in.CategoryID,
		WarehouseID:    in.WarehouseID,
		UnitID:         in.UnitID,
		TotalCostPrice: in.TotalCostPrice,
		SalePrice:      in.SalePrice,
		Description:    in.Description,
		Quantity:       decimal.Zero,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// GetByCode obtiene un producto por su código.
func (uc *ProductUseCase) GetByCode(code string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. La cantidad no se modifica por esta vía.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Code != "" {
		product.Code = in.Code
	}
	if in.Name != "" {
		product.Name = in.Name
	}
	if in.CategoryID != "" {
		product.CategoryID = in.CategoryID
	}
	if in.WarehouseID != "" {
		product.WarehouseID = in.WarehouseID
	}
	if in.UnitID != "" {
		product.UnitID = in.UnitID
	}
	product.TotalCostPrice = in.TotalCostPrice
	product.SalePrice = in.SalePrice
	product.Description = in.Description
	product.UpdatedAt = uc.clock.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos con paginación.
func (uc *ProductUseCase) List(limit, offset int) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// SearchByName busca productos por nombre (substring) con paginación.
func (uc *ProductUseCase) SearchByName(name string, limit, offset int) ([]dto.ProductResponse, error) {
	list, err := uc.repo.SearchByName(name, limit, offset)
	if err != nil {
		return nil, err
	}
	return toProductResponses(list), nil
}

// Delete elimina un producto por ID.
func (uc *ProductUseCase) Delete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:             p.ID,
		Code:           p.Code,
		Name:           p.Name,
		CategoryID:     p.CategoryID,
		WarehouseID:    p.WarehouseID,
		UnitID:         p.UnitID,
		TotalCostPrice: p.TotalCostPrice,
		SalePrice:      p.SalePrice,
		Description:    p.Description,
		Quantity:       p.Quantity,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductResponse(p))
	}
	return out
}
