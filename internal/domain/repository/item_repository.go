package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ItemRepository define el puerto de persistencia para Item (DIP).
// GetForUpdate y UpdateQuantity existen para la cuenta de stock: la fila se
// bloquea (SELECT FOR UPDATE) dentro de la transacción que también escribe el
// asiento del ledger.
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetByCode(code string) (*entity.Item, error)
	GetForUpdate(id string) (*entity.Item, error)
	Update(item *entity.Item) error
	UpdateQuantity(id string, quantity decimal.Decimal) error
	List(limit, offset int) ([]*entity.Item, error)
	SearchByName(name string, limit, offset int) ([]*entity.Item, error)
	Delete(id string) error
}
