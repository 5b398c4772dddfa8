package entity

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/document"
)

// Production orden de producción: consume Items al iniciar y produce un
// Product al completar. TotalCost siempre es la suma de los TotalCost de sus
// líneas.
type Production struct {
	ID               string
	ProductionNumber string // único, formato PROD-<epoch millis>
	ProductID        string
	WarehouseID      string
	UserID           string
	PlannedQuantity  decimal.Decimal // > 0
	ProducedQuantity decimal.Decimal
	Status           document.Status
	StartDate        *time.Time
	EndDate          *time.Time
	PlannedDate      time.Time
	Notes            string
	TotalCost        decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ProductionItem línea de producción: Item requerido con cantidad necesaria
// (>0), cantidad usada (>=0, 0 por defecto) y costo unitario.
//
// Tras cancelar una producción en progreso el stock consumido se devuelve
// pero UsedQuantity NO se reinicia a cero (comportamiento heredado,
// conservado deliberadamente como rastro de lo consumido).
type ProductionItem struct {
	ID               string
	ProductionID     string
	ItemID           string
	ItemCode         string // cargado con la línea (join)
	ItemName         string // cargado con la línea (join)
	RequiredQuantity decimal.Decimal
	UsedQuantity     decimal.Decimal
	UnitCost         decimal.Decimal
	TotalCost        decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Total implementa document.Totaler.
func (i *ProductionItem) Total() decimal.Decimal { return i.TotalCost }
