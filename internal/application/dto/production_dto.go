package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductionRequest datos para crear una producción. Si
// ProductionNumber viene vacío se genera (PROD-<epoch millis>).
type CreateProductionRequest struct {
	ProductionNumber string          `json:"production_number"`
	ProductID        string          `json:"product_id"`
	WarehouseID      string          `json:"warehouse_id"`
	UserID           string          `json:"user_id"`
	PlannedQuantity  decimal.Decimal `json:"planned_quantity"`
	PlannedDate      *time.Time      `json:"planned_date"`
	Notes            string          `json:"notes"`
}

// UpdateProductionRequest datos editables de una producción.
type UpdateProductionRequest struct {
	ProductID       string          `json:"product_id"`
	WarehouseID     string          `json:"warehouse_id"`
	UserID          string          `json:"user_id"`
	PlannedQuantity decimal.Decimal `json:"planned_quantity"`
	PlannedDate     *time.Time      `json:"planned_date"`
	Notes           string          `json:"notes"`
}

// ProductionResponse representación de salida de una producción.
type ProductionResponse struct {
	ID               string          `json:"id"`
	ProductionNumber string          `json:"production_number"`
	ProductID        string          `json:"product_id"`
	WarehouseID      string          `json:"warehouse_id"`
	UserID           string          `json:"user_id"`
	PlannedQuantity  decimal.Decimal `json:"planned_quantity"`
	ProducedQuantity decimal.Decimal `json:"produced_quantity"`
	Status           string          `json:"status"`
	StartDate        *time.Time      `json:"start_date,omitempty"`
	EndDate          *time.Time      `json:"end_date,omitempty"`
	PlannedDate      time.Time       `json:"planned_date"`
	Notes            string          `json:"notes"`
	TotalCost        decimal.Decimal `json:"total_cost"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// AddProductionItemRequest datos para agregar una línea de insumo.
type AddProductionItemRequest struct {
	ItemID           string          `json:"item_id"`
	RequiredQuantity decimal.Decimal `json:"required_quantity"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
}

// UpdateProductionItemRequest datos para actualizar una línea de insumo.
type UpdateProductionItemRequest struct {
	ItemID           string          `json:"item_id"`
	RequiredQuantity decimal.Decimal `json:"required_quantity"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
}

// ProductionItemResponse representación de salida de una línea de producción.
type ProductionItemResponse struct {
	ID               string          `json:"id"`
	ProductionID     string          `json:"production_id"`
	ItemID           string          `json:"item_id"`
	ItemCode         string          `json:"item_code"`
	ItemName         string          `json:"item_name"`
	RequiredQuantity decimal.Decimal `json:"required_quantity"`
	UsedQuantity     decimal.Decimal `json:"used_quantity"`
	UnitCost         decimal.Decimal `json:"unit_cost"`
	TotalCost        decimal.Decimal `json:"total_cost"`
}
