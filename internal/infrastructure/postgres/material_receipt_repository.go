package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/document"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ repository.MaterialReceiptRepository = (*MaterialReceiptRepo)(nil)
var _ repository.MaterialReceiptItemRepository = (*MaterialReceiptItemRepo)(nil)

// MaterialReceiptRepo implementación de MaterialReceiptRepository sobre PostgreSQL (usable con pool o tx).
type MaterialReceiptRepo struct {
	q Querier
}

// NewMaterialReceiptRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMaterialReceiptRepository(q Querier) *MaterialReceiptRepo {
	return &MaterialReceiptRepo{q: q}
}

const receiptColumns = `id, receipt_number, warehouse_id, user_id, status, receipt_date, received_date, total_amount, notes, supplier, created_at, updated_at`

// Create persiste una nueva recepción. El número es único.
func (r *MaterialReceiptRepo) Create(receipt *entity.MaterialReceipt) error {
	query := `
		INSERT INTO material_receipts (` + receiptColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		receipt.ID, receipt.ReceiptNumber, receipt.WarehouseID, receipt.UserID, receipt.Status,
		receipt.ReceiptDate, receipt.ReceivedDate, receipt.TotalAmount, receipt.Notes, receipt.Supplier,
		receipt.CreatedAt, receipt.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert receipt: %w", err)
	}
	return nil
}

func (r *MaterialReceiptRepo) scanOne(row pgx.Row, op string) (*entity.MaterialReceipt, error) {
	var m entity.MaterialReceipt
	err := row.Scan(
		&m.ID, &m.ReceiptNumber, &m.WarehouseID, &m.UserID, &m.Status, &m.ReceiptDate,
		&m.ReceivedDate, &m.TotalAmount, &m.Notes, &m.Supplier, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &m, nil
}

// GetByID obtiene una recepción por ID.
func (r *MaterialReceiptRepo) GetByID(id string) (*entity.MaterialReceipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM material_receipts WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get receipt")
}

// GetByNumber obtiene una recepción por su número.
func (r *MaterialReceiptRepo) GetByNumber(receiptNumber string) (*entity.MaterialReceipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM material_receipts WHERE receipt_number = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, receiptNumber), "get receipt by number")
}

// Update actualiza una recepción existente.
func (r *MaterialReceiptRepo) Update(receipt *entity.MaterialReceipt) error {
	query := `
		UPDATE material_receipts SET warehouse_id = $2, user_id = $3, status = $4, receipt_date = $5,
			received_date = $6, notes = $7, supplier = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		receipt.ID, receipt.WarehouseID, receipt.UserID, receipt.Status, receipt.ReceiptDate,
		receipt.ReceivedDate, receipt.Notes, receipt.Supplier, receipt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update receipt: %w", err)
	}
	return nil
}

// UpdateTotalAmount actualiza solo el total de la recepción (recalculado desde las líneas).
func (r *MaterialReceiptRepo) UpdateTotalAmount(id string, total decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE material_receipts SET total_amount = $2, updated_at = now() WHERE id = $1`,
		id, total,
	)
	if err != nil {
		return fmt.Errorf("update receipt total: %w", err)
	}
	return nil
}

func (r *MaterialReceiptRepo) list(query string, args ...any) ([]*entity.MaterialReceipt, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list receipts: %w", err)
	}
	defer rows.Close()
	var list []*entity.MaterialReceipt
	for rows.Next() {
		var m entity.MaterialReceipt
		if err := rows.Scan(&m.ID, &m.ReceiptNumber, &m.WarehouseID, &m.UserID, &m.Status, &m.ReceiptDate,
			&m.ReceivedDate, &m.TotalAmount, &m.Notes, &m.Supplier, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan receipt: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// List lista recepciones por fecha de recepción descendente, con paginación.
func (r *MaterialReceiptRepo) List(limit, offset int) ([]*entity.MaterialReceipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM material_receipts ORDER BY receipt_date DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListByStatus lista recepciones por estado.
func (r *MaterialReceiptRepo) ListByStatus(status document.Status) ([]*entity.MaterialReceipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM material_receipts WHERE status = $1 ORDER BY receipt_date DESC`
	return r.list(query, status)
}

// ListByUser lista recepciones de un usuario.
func (r *MaterialReceiptRepo) ListByUser(userID string) ([]*entity.MaterialReceipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM material_receipts WHERE user_id = $1 ORDER BY receipt_date DESC`
	return r.list(query, userID)
}

// ListByWarehouse lista recepciones de una bodega.
func (r *MaterialReceiptRepo) ListByWarehouse(warehouseID string) ([]*entity.MaterialReceipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM material_receipts WHERE warehouse_id = $1 ORDER BY receipt_date DESC`
	return r.list(query, warehouseID)
}

// ListByDateRange lista recepciones cuya fecha cae en el rango [start, end].
func (r *MaterialReceiptRepo) ListByDateRange(start, end time.Time) ([]*entity.MaterialReceipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM material_receipts WHERE receipt_date BETWEEN $1 AND $2 ORDER BY receipt_date DESC`
	return r.list(query, start, end)
}

// SearchBySupplier busca recepciones por proveedor (substring, case-insensitive).
func (r *MaterialReceiptRepo) SearchBySupplier(supplier string) ([]*entity.MaterialReceipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM material_receipts WHERE supplier ILIKE '%' || $1 || '%' ORDER BY receipt_date DESC`
	return r.list(query, supplier)
}

// Delete elimina una recepción por ID. Las líneas se borran antes (DeleteByReceipt).
func (r *MaterialReceiptRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM material_receipts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete receipt: %w", err)
	}
	return nil
}

// MaterialReceiptItemRepo implementación de MaterialReceiptItemRepository sobre
// PostgreSQL. Las lecturas traen code y name del item referenciado (join).
type MaterialReceiptItemRepo struct {
	q Querier
}

// NewMaterialReceiptItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMaterialReceiptItemRepository(q Querier) *MaterialReceiptItemRepo {
	return &MaterialReceiptItemRepo{q: q}
}

const receiptItemSelect = `
	SELECT ri.id, ri.receipt_id, ri.item_id, i.code, i.name,
		ri.ordered_quantity, ri.received_quantity, ri.unit_price, ri.total_price,
		ri.created_at, ri.updated_at
	FROM material_receipt_items ri JOIN items i ON i.id = ri.item_id`

// Create persiste una nueva línea de recepción.
func (r *MaterialReceiptItemRepo) Create(item *entity.MaterialReceiptItem) error {
	query := `
		INSERT INTO material_receipt_items (id, receipt_id, item_id, ordered_quantity, received_quantity, unit_price, total_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ReceiptID, item.ItemID, item.OrderedQuantity, item.ReceivedQuantity,
		item.UnitPrice, item.TotalPrice, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert receipt item: %w", err)
	}
	return nil
}

// GetByID obtiene una línea por ID, con los datos del item cargados.
func (r *MaterialReceiptItemRepo) GetByID(id string) (*entity.MaterialReceiptItem, error) {
	query := receiptItemSelect + ` WHERE ri.id = $1`
	var i entity.MaterialReceiptItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.ReceiptID, &i.ItemID, &i.ItemCode, &i.ItemName,
		&i.OrderedQuantity, &i.ReceivedQuantity, &i.UnitPrice, &i.TotalPrice,
		&i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receipt item: %w", err)
	}
	return &i, nil
}

// Update actualiza una línea de recepción existente.
func (r *MaterialReceiptItemRepo) Update(item *entity.MaterialReceiptItem) error {
	query := `
		UPDATE material_receipt_items SET item_id = $2, ordered_quantity = $3, received_quantity = $4,
			unit_price = $5, total_price = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ItemID, item.OrderedQuantity, item.ReceivedQuantity,
		item.UnitPrice, item.TotalPrice, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update receipt item: %w", err)
	}
	return nil
}

// ListByReceipt lista las líneas de una recepción en orden de inserción estable.
func (r *MaterialReceiptItemRepo) ListByReceipt(receiptID string) ([]*entity.MaterialReceiptItem, error) {
	query := receiptItemSelect + ` WHERE ri.receipt_id = $1 ORDER BY ri.created_at ASC, ri.id ASC`
	rows, err := r.q.Query(context.Background(), query, receiptID)
	if err != nil {
		return nil, fmt.Errorf("list receipt items: %w", err)
	}
	defer rows.Close()
	var list []*entity.MaterialReceiptItem
	for rows.Next() {
		var i entity.MaterialReceiptItem
		if err := rows.Scan(&i.ID, &i.ReceiptID, &i.ItemID, &i.ItemCode, &i.ItemName,
			&i.OrderedQuantity, &i.ReceivedQuantity, &i.UnitPrice, &i.TotalPrice,
			&i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan receipt item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Delete elimina una línea por ID.
func (r *MaterialReceiptItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM material_receipt_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete receipt item: %w", err)
	}
	return nil
}

// DeleteByReceipt elimina todas las líneas de una recepción (cascada explícita).
func (r *MaterialReceiptItemRepo) DeleteByReceipt(receiptID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM material_receipt_items WHERE receipt_id = $1`, receiptID)
	if err != nil {
		return fmt.Errorf("delete receipt items: %w", err)
	}
	return nil
}
