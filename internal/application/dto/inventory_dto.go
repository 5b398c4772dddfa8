package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Item ──────────────────────────────────────────────────────────────────────

// CreateItemRequest datos para crear un item. La cantidad inicial es cero;
// el stock se mueve solo con documentos o transacciones rápidas.
type CreateItemRequest struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	CategoryID  string          `json:"category_id"`
	WarehouseID string          `json:"warehouse_id"`
	UnitID      string          `json:"unit_id"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

// UpdateItemRequest datos para actualizar un item. No permite tocar Quantity.
type UpdateItemRequest struct {
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	CategoryID  string          `json:"category_id"`
	WarehouseID string          `json:"warehouse_id"`
	UnitID      string          `json:"unit_id"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
}

// ItemResponse representación de salida de un item.
type ItemResponse struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	CategoryID  string          `json:"category_id"`
	WarehouseID string          `json:"warehouse_id"`
	UnitID      string          `json:"unit_id"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ── Product ───────────────────────────────────────────────────────────────────

// CreateProductRequest datos para crear un producto.
type CreateProductRequest struct {
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	CategoryID     string          `json:"category_id"`
	WarehouseID    string          `json:"warehouse_id"`
	UnitID         string          `json:"unit_id"`
	TotalCostPrice decimal.Decimal `json:"total_cost_price"`
	SalePrice      decimal.Decimal `json:"sale_price"`
	Description    string          `json:"description"`
}

// UpdateProductRequest datos para actualizar un producto. No permite tocar Quantity.
type UpdateProductRequest struct {
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	CategoryID     string          `json:"category_id"`
	WarehouseID    string          `json:"warehouse_id"`
	UnitID         string          `json:"unit_id"`
	TotalCostPrice decimal.Decimal `json:"total_cost_price"`
	SalePrice      decimal.Decimal `json:"sale_price"`
	Description    string          `json:"description"`
}

// ProductResponse representación de salida de un producto.
type ProductResponse struct {
	ID             string          `json:"id"`
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	CategoryID     string          `json:"category_id"`
	WarehouseID    string          `json:"warehouse_id"`
	UnitID         string          `json:"unit_id"`
	TotalCostPrice decimal.Decimal `json:"total_cost_price"`
	SalePrice      decimal.Decimal `json:"sale_price"`
	Description    string          `json:"description"`
	Quantity       decimal.Decimal `json:"quantity"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
