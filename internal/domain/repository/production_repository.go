package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/document"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ProductionRepository define el puerto de persistencia para Production
// (DIP). Los listados van por fecha planificada descendente.
type ProductionRepository interface {
	Create(production *entity.Production) error
	GetByID(id string) (*entity.Production, error)
	GetByNumber(productionNumber string) (*entity.Production, error)
	Update(production *entity.Production) error
	UpdateTotalCost(id string, total decimal.Decimal) error
	List(limit, offset int) ([]*entity.Production, error)
	ListByStatus(status document.Status) ([]*entity.Production, error)
	ListByUser(userID string) ([]*entity.Production, error)
	ListByWarehouse(warehouseID string) ([]*entity.Production, error)
	ListByProduct(productID string) ([]*entity.Production, error)
	ListByDateRange(start, end time.Time) ([]*entity.Production, error)
	Delete(id string) error
}

// ProductionItemRepository define el puerto de persistencia para
// ProductionItem (DIP).
type ProductionItemRepository interface {
	Create(item *entity.ProductionItem) error
	GetByID(id string) (*entity.ProductionItem, error)
	Update(item *entity.ProductionItem) error
	ListByProduction(productionID string) ([]*entity.ProductionItem, error)
	Delete(id string) error
	DeleteByProduction(productionID string) error
}
