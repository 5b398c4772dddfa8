package stock

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Repos agrupa los repositorios atados a una misma transacción de BD.
// Los flujos de documentos reciben este bundle dentro del callback del
// TxRunner; todo lo que escriban con él comparte Commit/Rollback.
type Repos struct {
	Items           repository.ItemRepository
	Products        repository.ProductRepository
	Orders          repository.OrderRepository
	OrderItems      repository.OrderItemRepository
	Receipts        repository.MaterialReceiptRepository
	ReceiptItems    repository.MaterialReceiptItemRepository
	Productions     repository.ProductionRepository
	ProductionItems repository.ProductionItemRepository
	Transactions    repository.TransactionRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad de cada transición:
// documento, líneas, cuentas de stock y ledger se confirman o revierten
// juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(r *Repos) error) error
}
