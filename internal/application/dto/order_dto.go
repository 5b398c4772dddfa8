package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateOrderRequest datos para crear una orden. Si OrderNumber viene vacío
// se genera (ORD-<epoch millis>). El estado inicial siempre es PENDING y el
// total siempre nace en cero: ambos los gobierna el flujo, no el cliente.
type CreateOrderRequest struct {
	OrderNumber string     `json:"order_number"`
	WarehouseID string     `json:"warehouse_id"`
	UserID      string     `json:"user_id"`
	OrderDate   *time.Time `json:"order_date"`
	Notes       string     `json:"notes"`
	Supplier    string     `json:"supplier"`
}

// UpdateOrderRequest datos editables de una orden. El estado solo cambia por
// las transiciones y el total solo por el recálculo de líneas.
type UpdateOrderRequest struct {
	WarehouseID string     `json:"warehouse_id"`
	UserID      string     `json:"user_id"`
	OrderDate   *time.Time `json:"order_date"`
	Notes       string     `json:"notes"`
	Supplier    string     `json:"supplier"`
}

// OrderResponse representación de salida de una orden.
type OrderResponse struct {
	ID           string          `json:"id"`
	OrderNumber  string          `json:"order_number"`
	WarehouseID  string          `json:"warehouse_id"`
	UserID       string          `json:"user_id"`
	Status       string          `json:"status"`
	OrderDate    time.Time       `json:"order_date"`
	ReceivedDate *time.Time      `json:"received_date,omitempty"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Notes        string          `json:"notes"`
	Supplier     string          `json:"supplier"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// AddOrderItemRequest datos para agregar una línea a la orden.
type AddOrderItemRequest struct {
	ItemID          string          `json:"item_id"`
	OrderedQuantity decimal.Decimal `json:"ordered_quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
}

// UpdateOrderItemRequest datos para actualizar una línea de la orden.
type UpdateOrderItemRequest struct {
	ItemID           string          `json:"item_id"`
	OrderedQuantity  decimal.Decimal `json:"ordered_quantity"`
	ReceivedQuantity decimal.Decimal `json:"received_quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
}

// OrderItemResponse representación de salida de una línea de orden.
type OrderItemResponse struct {
	ID               string          `json:"id"`
	OrderID          string          `json:"order_id"`
	ItemID           string          `json:"item_id"`
	ItemCode         string          `json:"item_code"`
	ItemName         string          `json:"item_name"`
	OrderedQuantity  decimal.Decimal `json:"ordered_quantity"`
	ReceivedQuantity decimal.Decimal `json:"received_quantity"`
	UnitPrice        decimal.Decimal `json:"unit_price"`
	TotalPrice       decimal.Decimal `json:"total_price"`
}
