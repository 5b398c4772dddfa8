package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType tipo de movimiento del ledger.
type TransactionType string

// Tipos de transacción.
const (
	TransactionInbound    TransactionType = "INBOUND"
	TransactionOutbound   TransactionType = "OUTBOUND"
	TransactionProduction TransactionType = "PRODUCTION"
	TransactionAdjustment TransactionType = "ADJUSTMENT"
)

// EntityType discrimina sobre qué familia de cuentas de stock opera la
// transacción: items (materia prima) o products (producto terminado).
type EntityType string

// Familias de cuentas de stock.
const (
	EntityItems    EntityType = "ITEMS"
	EntityProducts EntityType = "PRODUCTS"
)

// TransactionStatus estado de una transacción.
type TransactionStatus string

// Estados de transacción.
const (
	TransactionCompleted TransactionStatus = "COMPLETED"
	TransactionPending   TransactionStatus = "PENDING"
	TransactionCancelled TransactionStatus = "CANCELLED"
)

// Transaction asiento del ledger de inventario: registro inmutable de un
// movimiento de stock con tipo, referencia y detalle monetario. Los flujos de
// documentos solo lo crean; nunca lo modifican después.
type Transaction struct {
	ID              string
	TransactionType TransactionType
	EntityType      EntityType
	ItemID          string // exclusivo con ProductID según EntityType
	ProductID       string
	WarehouseID     string
	UserID          string
	Quantity        decimal.Decimal // > 0 siempre; el tipo indica la dirección
	UnitPrice       decimal.Decimal
	TotalPrice      decimal.Decimal
	Status          TransactionStatus
	Notes           string
	TransactionDate time.Time
	ReferenceNumber string
	CreatedAt       time.Time
}
