package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateReceiptRequest datos para crear una recepción de materiales. Si
// ReceiptNumber viene vacío se genera (REC-<epoch millis>).
type CreateReceiptRequest struct {
	ReceiptNumber string     `json:"receipt_number"`
	WarehouseID   string     `json:"warehouse_id"`
	UserID        string     `json:"user_id"`
	ReceiptDate   *time.Time `json:"receipt_date"`
	Notes         string     `json:"notes"`
	Supplier      string     `json:"supplier"`
}

// UpdateReceiptRequest datos editables de una recepción.
type UpdateReceiptRequest struct {
	WarehouseID string     `json:"warehouse_id"`
	UserID      string     `json:"user_id"`
	ReceiptDate *time.Time `json:"receipt_date"`
	Notes       string     `json:"notes"`
	Supplier    string     `json:"supplier"`
}

// ReceiptResponse representación de salida de una recepción.
type ReceiptResponse struct {
	ID            string          `json:"id"`
	ReceiptNumber string          `json:"receipt_number"`
	WarehouseID   string          `json:"warehouse_id"`
	UserID        string          `json:"user_id"`
	Status        string          `json:"status"`
	ReceiptDate   time.Time       `json:"receipt_date"`
	ReceivedDate  *time.Time      `json:"received_date,omitempty"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Notes         string          `json:"notes"`
	Supplier      string          `json:"supplier"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// AddReceiptItemRequest datos para agregar una línea a la recepción.
type AddReceiptItemRequest struct {
	ItemID          string          `json:"item_id"`
	OrderedQuantity decimal.Decimal `json:"ordered_quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
}

// UpdateReceiptItemRequest datos para actualizar una línea de la recepción.
type UpdateReceiptItemRequest struct {
	ItemID           string          `json:"item_id"`
	OrderedQuantity  decimal.Decimal `json:"ordered_quantity"`
	ReceivedQuantity decimal.Decimal `json:"received_quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
}

// ReceiptItemResponse representación de salida de una línea de recepción.
type ReceiptItemResponse struct {
	ID               string          `json:"id"`
	ReceiptID        string          `json:"receipt_id"`
	ItemID           string          `json:"item_id"`
	ItemCode         string          `json:"item_code"`
	ItemName         string          `json:"item_name"`
	OrderedQuantity  decimal.Decimal `json:"ordered_quantity"`
	ReceivedQuantity decimal.Decimal `json:"received_quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	TotalPrice       decimal.Decimal `json:"total_price"`
}
