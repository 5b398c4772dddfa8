package repository

import (
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// TransactionRepository define el puerto de persistencia para el ledger de
// transacciones (DIP). Los listados van por fecha de transacción descendente.
// Update y Delete existen solo para la API independiente de transacciones;
// los flujos de documentos únicamente crean asientos.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	Update(tx *entity.Transaction) error
	List(limit, offset int) ([]*entity.Transaction, error)
	ListByType(txType entity.TransactionType) ([]*entity.Transaction, error)
	ListByEntityType(entityType entity.EntityType) ([]*entity.Transaction, error)
	ListByStatus(status entity.TransactionStatus) ([]*entity.Transaction, error)
	ListByUser(userID string) ([]*entity.Transaction, error)
	ListByWarehouse(warehouseID string) ([]*entity.Transaction, error)
	ListByItem(itemID string) ([]*entity.Transaction, error)
	ListByProduct(productID string) ([]*entity.Transaction, error)
	ListByDateRange(start, end time.Time) ([]*entity.Transaction, error)
	SearchByReference(reference string) ([]*entity.Transaction, error)
	Delete(id string) error
}
