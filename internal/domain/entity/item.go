package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item materia prima / insumo con cantidad en stock (3 decimales) y precio
// de compra (2 decimales). La cantidad solo se muta a través de los flujos
// de documentos o las transacciones rápidas, nunca por el CRUD.
type Item struct {
	ID          string
	Code        string // único
	Name        string
	CategoryID  string
	WarehouseID string
	UnitID      string
	Price       decimal.Decimal
	Description string
	Quantity    decimal.Decimal // >= 0 siempre
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
