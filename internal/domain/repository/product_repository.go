package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetForUpdate y UpdateQuantity dan soporte a la cuenta de stock (ver
// ItemRepository).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(code string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateQuantity(id string, quantity decimal.Decimal) error
	List(limit, offset int) ([]*entity.Product, error)
	SearchByName(name string, limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
