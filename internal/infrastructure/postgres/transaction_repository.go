package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación del ledger de transacciones sobre PostgreSQL
// (usable con pool o tx). item_id y product_id se guardan como NULL cuando no
// aplican.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

const transactionColumns = `id, transaction_type, entity_type, item_id, product_id, warehouse_id, user_id, quantity, unit_price, total_price, status, notes, transaction_date, reference_number, created_at`

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// Create persiste un nuevo asiento.
func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.TransactionType, tx.EntityType, nullIfEmpty(tx.ItemID), nullIfEmpty(tx.ProductID),
		tx.WarehouseID, tx.UserID, tx.Quantity, tx.UnitPrice, tx.TotalPrice,
		tx.Status, tx.Notes, tx.TransactionDate, tx.ReferenceNumber, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var t entity.Transaction
	var itemID, productID *string
	err := row.Scan(
		&t.ID, &t.TransactionType, &t.EntityType, &itemID, &productID,
		&t.WarehouseID, &t.UserID, &t.Quantity, &t.UnitPrice, &t.TotalPrice,
		&t.Status, &t.Notes, &t.TransactionDate, &t.ReferenceNumber, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if itemID != nil {
		t.ItemID = *itemID
	}
	if productID != nil {
		t.ProductID = *productID
	}
	return &t, nil
}

// GetByID obtiene un asiento por ID.
func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	t, err := scanTransaction(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

// Update modifica un asiento (solo la API independiente).
func (r *TransactionRepo) Update(tx *entity.Transaction) error {
	query := `
		UPDATE transactions SET transaction_type = $2, entity_type = $3, item_id = $4, product_id = $5,
			warehouse_id = $6, user_id = $7, quantity = $8, unit_price = $9, total_price = $10,
			status = $11, notes = $12, transaction_date = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.TransactionType, tx.EntityType, nullIfEmpty(tx.ItemID), nullIfEmpty(tx.ProductID),
		tx.WarehouseID, tx.UserID, tx.Quantity, tx.UnitPrice, tx.TotalPrice,
		tx.Status, tx.Notes, tx.TransactionDate,
	)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepo) list(query string, args ...any) ([]*entity.Transaction, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// List lista asientos por fecha de transacción descendente, con paginación.
func (r *TransactionRepo) List(limit, offset int) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY transaction_date DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListByType lista asientos por tipo de movimiento.
func (r *TransactionRepo) ListByType(txType entity.TransactionType) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_type = $1 ORDER BY transaction_date DESC`
	return r.list(query, txType)
}

// ListByEntityType lista asientos por familia de cuenta (ITEMS o PRODUCTS).
func (r *TransactionRepo) ListByEntityType(entityType entity.EntityType) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE entity_type = $1 ORDER BY transaction_date DESC`
	return r.list(query, entityType)
}

// ListByStatus lista asientos por estado.
func (r *TransactionRepo) ListByStatus(status entity.TransactionStatus) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE status = $1 ORDER BY transaction_date DESC`
	return r.list(query, status)
}

// ListByUser lista asientos de un usuario.
func (r *TransactionRepo) ListByUser(userID string) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1 ORDER BY transaction_date DESC`
	return r.list(query, userID)
}

// ListByWarehouse lista asientos de una bodega.
func (r *TransactionRepo) ListByWarehouse(warehouseID string) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE warehouse_id = $1 ORDER BY transaction_date DESC`
	return r.list(query, warehouseID)
}

// ListByItem lista asientos de un item.
func (r *TransactionRepo) ListByItem(itemID string) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE item_id = $1 ORDER BY transaction_date DESC`
	return r.list(query, itemID)
}

// ListByProduct lista asientos de un producto.
func (r *TransactionRepo) ListByProduct(productID string) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE product_id = $1 ORDER BY transaction_date DESC`
	return r.list(query, productID)
}

// ListByDateRange lista asientos cuya fecha cae en el rango [start, end].
func (r *TransactionRepo) ListByDateRange(start, end time.Time) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_date BETWEEN $1 AND $2 ORDER BY transaction_date DESC`
	return r.list(query, start, end)
}

// SearchByReference busca asientos por número de referencia (substring, case-insensitive).
func (r *TransactionRepo) SearchByReference(reference string) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE reference_number ILIKE '%' || $1 || '%' ORDER BY transaction_date DESC`
	return r.list(query, reference)
}

// Delete elimina un asiento por ID (solo la API independiente).
func (r *TransactionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}
