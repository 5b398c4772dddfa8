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

// ItemUseCase casos de uso CRUD para items (materia prima). La cantidad en
// stock no se toca por acá: solo los flujos de documentos y las transacciones
// rápidas la mueven.
type ItemUseCase struct {
	repo  repository.ItemRepository
	clock refnum.Clock
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.ItemRepository, clock refnum.Clock) *ItemUseCase {
	if clock == nil {
		clock = refnum.SystemClock{}
	}
	return &ItemUseCase{repo: repo, clock: clock}
}

// Create crea un item con cantidad cero. El código es único.
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	now := uc.clock.Now()
	item := &entity.Item{
		ID:          uuid.New().String(),
		Code:        in.Code,
		Name:        in.Name,
		CategoryID:  in.CategoryID,
		WarehouseID: in.WarehouseID,
		UnitID:      in.UnitID,
		Price:       in.Price,
		Description: in.Description,
		Quantity:    decimal.Zero,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// GetByID obtiene un item por ID.
func (uc *ItemUseCase) GetByID(id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// GetByCode obtiene un item por su código.
func (uc *ItemUseCase) GetByCode(code string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// Update actualiza un item. La cantidad no se modifica por esta vía.
func (uc *ItemUseCase) Update(id string, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Code != "" {
		item.Code = in.Code
	}
	if in.Name != "" {
		item.Name = in.Name
	}
	if in.CategoryID != "" {
		item.CategoryID = in.CategoryID
	}
	if in.WarehouseID != "" {
		item.WarehouseID = in.WarehouseID
	}
	if in.UnitID != "" {
		item.UnitID = in.UnitID
	}
	item.Price = in.Price
	item.Description = in.Description
	item.UpdatedAt = uc.clock.Now()
	if err := uc.repo.Update(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List lista items con paginación.
func (uc *ItemUseCase) List(limit, offset int) ([]dto.ItemResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toItemResponses(list), nil
}

// SearchByName busca items por nombre (substring) con paginación.
func (uc *ItemUseCase) SearchByName(name string, limit, offset int) ([]dto.ItemResponse, error) {
	list, err := uc.repo.SearchByName(name, limit, offset)
	if err != nil {
		return nil, err
	}
	return toItemResponses(list), nil
}

// Delete elimina un item por ID.
func (uc *ItemUseCase) Delete(id string) error {
	item, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toItemResponse(i *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:          i.ID,
		Code:        i.Code,
		Name:        i.Name,
		CategoryID:  i.CategoryID,
		WarehouseID: i.WarehouseID,
		UnitID:      i.UnitID,
		Price:       i.Price,
		Description: i.Description,
		Quantity:    i.Quantity,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

func toItemResponses(list []*entity.Item) []dto.ItemResponse {
	out := make([]dto.ItemResponse, 0, len(list))
	for _, i := range list {
		out = append(out, *toItemResponse(i))
	}
	return out
}
