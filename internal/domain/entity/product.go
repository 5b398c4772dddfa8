package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto terminado con cantidad en stock (3 decimales), costo total
// y precio de venta (2 decimales). La cantidad solo se muta vía producción o
// transacciones rápidas.
type Product struct {
	ID             string
	Code           string // único
	Name           string
	CategoryID     string
	WarehouseID    string
	UnitID         string
	TotalCostPrice decimal.Decimal
	SalePrice      decimal.Decimal
	Description    string
	Quantity       decimal.Decimal // >= 0 siempre
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
