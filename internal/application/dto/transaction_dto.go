package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuickTransactionRequest entrada/salida rápida de stock sin documento.
// Según la ruta se usa ItemID o ProductID.
type QuickTransactionRequest struct {
	ItemID      string          `json:"item_id"`
	ProductID   string          `json:"product_id"`
	WarehouseID string          `json:"warehouse_id"`
	UserID      string          `json:"user_id"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Notes       string          `json:"notes"`
}

// CreateTransactionRequest alta directa de un asiento (API independiente; no
// mueve stock). Si ReferenceNumber viene vacío se genera TXN-<epoch millis>.
type CreateTransactionRequest struct {
	TransactionType string          `json:"transaction_type"`
	EntityType      string          `json:"entity_type"`
	ItemID          string          `json:"item_id"`
	ProductID       string          `json:"product_id"`
	WarehouseID     string          `json:"warehouse_id"`
	UserID          string          `json:"user_id"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes"`
	TransactionDate *time.Time      `json:"transaction_date"`
	ReferenceNumber string          `json:"reference_number"`
}

// UpdateTransactionRequest modificación directa de un asiento (API
// independiente; los flujos nunca la usan).
type UpdateTransactionRequest struct {
	TransactionType string          `json:"transaction_type"`
	EntityType      string          `json:"entity_type"`
	ItemID          string          `json:"item_id"`
	ProductID       string          `json:"product_id"`
	WarehouseID     string          `json:"warehouse_id"`
	UserID          string          `json:"user_id"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes"`
	TransactionDate *time.Time      `json:"transaction_date"`
}

// TransactionResponse representación de salida de un asiento del ledger.
type TransactionResponse struct {
	ID              string          `json:"id"`
	TransactionType string          `json:"transaction_type"`
	EntityType      string          `json:"entity_type"`
	ItemID          string          `json:"item_id,omitempty"`
	ProductID       string          `json:"product_id,omitempty"`
	WarehouseID     string          `json:"warehouse_id"`
	UserID          string          `json:"user_id"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Status          string          `json:"status"`
	Notes           string          `json:"notes"`
	TransactionDate time.Time       `json:"transaction_date"`
	ReferenceNumber string          `json:"reference_number"`
}
