package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/document"
)

// Order orden de compra a un proveedor. El stock solo se afecta al recibirla.
// TotalAmount siempre es la suma de los TotalPrice de sus líneas.
type Order struct {
	ID           string
	OrderNumber  string // único, formato ORD-<epoch millis>
	WarehouseID  string
	UserID       string
	Status       document.Status
	OrderDate    time.Time
	ReceivedDate *time.Time
	TotalAmount  decimal.Decimal
	Notes        string
	Supplier     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OrderItem línea de una orden: referencia un Item con cantidad pedida (>0),
// cantidad recibida (>=0, 0 por defecto) y precio unitario.
type OrderItem struct {
	ID               string
	OrderID          string
	ItemID           string
	ItemCode         string // cargado con la línea (join)
	ItemName         string // cargado con la línea (join)
	OrderedQuantity  decimal.Decimal
	ReceivedQuantity decimal.Decimal
	UnitPrice        decimal.Decimal
	TotalPrice       decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Total implementa document.Totaler.
func (i *OrderItem) Total() decimal.Decimal { return i.TotalPrice }
