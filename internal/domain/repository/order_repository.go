package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/document"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order (DIP).
// Los listados van ordenados por fecha de orden descendente.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	GetByNumber(orderNumber string) (*entity.Order, error)
	Update(order *entity.Order) error
	UpdateTotalAmount(id string, total decimal.Decimal) error
	List(limit, offset int) ([]*entity.Order, error)
	ListByStatus(status document.Status) ([]*entity.Order, error)
	ListByUser(userID string) ([]*entity.Order, error)
	ListByWarehouse(warehouseID string) ([]*entity.Order, error)
	ListByDateRange(start, end time.Time) ([]*entity.Order, error)
	SearchBySupplier(supplier string) ([]*entity.Order, error)
	Delete(id string) error
}

// OrderItemRepository define el puerto de persistencia para OrderItem (DIP).
// ListByOrder devuelve las líneas en orden de inserción estable, con los
// datos del Item referenciado ya cargados. DeleteByOrder materializa el
// borrado en cascada de las líneas al eliminar la orden.
type OrderItemRepository interface {
	Create(item *entity.OrderItem) error
	GetByID(id string) (*entity.OrderItem, error)
	Update(item *entity.OrderItem) error
	ListByOrder(orderID string) ([]*entity.OrderItem, error)
	Delete(id string) error
	DeleteByOrder(orderID string) error
}
