package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/document"
)

// MaterialReceipt recepción directa de materiales (sin orden previa).
// No tiene estado CONFIRMED intermedio: se recibe directamente desde PENDING.
type MaterialReceipt struct {
	ID            string
	ReceiptNumber string // único, formato REC-<epoch millis>
	WarehouseID   string
	UserID        string
	Status        document.Status
	ReceiptDate   time.Time
	ReceivedDate  *time.Time
	TotalAmount   decimal.Decimal
	Notes         string
	Supplier      string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// MaterialReceiptItem línea de una recepción de materiales.
type MaterialReceiptItem struct {
	ID               string
	ReceiptID        string
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
func (i *MaterialReceiptItem) Total() decimal.Decimal { return i.TotalPrice }
