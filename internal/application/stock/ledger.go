package stock

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// Entry datos para un asiento del ledger. TotalPrice se calcula siempre como
// Quantity × UnitPrice; el asiento no se vuelve a tocar después de creado.
type Entry struct {
	Type        entity.TransactionType
	EntityType  entity.EntityType
	ItemID      string
	ProductID   string
	WarehouseID string
	UserID      string
	Quantity    decimal.Decimal // > 0
	UnitPrice   decimal.Decimal
	Reference   string
	Notes       string
}

// Ledger registro append-only de movimientos de stock. Se construye por
// transacción, sobre el repositorio atado a la tx en curso, para que el
// asiento quede en la misma unidad de trabajo que la mutación de stock.
type Ledger struct {
	repos *Repos
	now   time.Time
}

// NewLedger construye el ledger sobre los repos de la transacción en curso.
// now es el instante de la operación; todas las entradas de una misma
// transición comparten timestamp.
func NewLedger(r *Repos, now time.Time) *Ledger {
	return &Ledger{repos: r, now: now}
}

// Append crea y persiste el asiento. El asiento nace COMPLETED.
func (l *Ledger) Append(e Entry) (*entity.Transaction, error) {
	tx := &entity.Transaction{
		ID:              uuid.New().String(),
		TransactionType: e.Type,
		EntityType:      e.EntityType,
		ItemID:          e.ItemID,
		ProductID:       e.ProductID,
		WarehouseID:     e.WarehouseID,
		UserID:          e.UserID,
		Quantity:        e.Quantity,
		UnitPrice:       e.UnitPrice,
		TotalPrice:      e.Quantity.Mul(e.UnitPrice),
		Status:          entity.TransactionCompleted,
		Notes:           e.Notes,
		TransactionDate: l.now,
		ReferenceNumber: e.Reference,
		CreatedAt:       l.now,
	}
	if err := l.repos.Transactions.Create(tx); err != nil {
		return nil, fmt.Errorf("registrar asiento en ledger: %w", err)
	}
	return tx, nil
}
