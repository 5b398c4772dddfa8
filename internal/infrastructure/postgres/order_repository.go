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

var _ repository.OrderRepository = (*OrderRepo)(nil)
var _ repository.OrderItemRepository = (*OrderItemRepo)(nil)

// OrderRepo implementación de OrderRepository sobre PostgreSQL (usable con pool o tx).
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

const orderColumns = `id, order_number, warehouse_id, user_id, status, order_date, received_date, total_amount, notes, supplier, created_at, updated_at`

// Create persiste una nueva orden. El número es único.
func (r *OrderRepo) Create(order *entity.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.OrderNumber, order.WarehouseID, order.UserID, order.Status,
		order.OrderDate, order.ReceivedDate, order.TotalAmount, order.Notes, order.Supplier,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (r *OrderRepo) scanOne(row pgx.Row, op string) (*entity.Order, error) {
	var o entity.Order
	err := row.Scan(
		&o.ID, &o.OrderNumber, &o.WarehouseID, &o.UserID, &o.Status, &o.OrderDate,
		&o.ReceivedDate, &o.TotalAmount, &o.Notes, &o.Supplier, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &o, nil
}

// GetByID obtiene una orden por ID.
func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get order")
}

// GetByNumber obtiene una orden por su número.
func (r *OrderRepo) GetByNumber(orderNumber string) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_number = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, orderNumber), "get order by number")
}

// Update actualiza una orden existente.
func (r *OrderRepo) Update(order *entity.Order) error {
	query := `
		UPDATE orders SET warehouse_id = $2, user_id = $3, status = $4, order_date = $5,
			received_date = $6, notes = $7, supplier = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		order.ID, order.WarehouseID, order.UserID, order.Status, order.OrderDate,
		order.ReceivedDate, order.Notes, order.Supplier, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", err)
	}
	return nil
}

// UpdateTotalAmount actualiza solo el total de la orden (recalculado desde las líneas).
func (r *OrderRepo) UpdateTotalAmount(id string, total decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orders SET total_amount = $2, updated_at = now() WHERE id = $1`,
		id, total,
	)
	if err != nil {
		return fmt.Errorf("update order total: %w", err)
	}
	return nil
}

func (r *OrderRepo) list(query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.WarehouseID, &o.UserID, &o.Status, &o.OrderDate,
			&o.ReceivedDate, &o.TotalAmount, &o.Notes, &o.Supplier, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}

// List lista órdenes por fecha de orden descendente, con paginación.
func (r *OrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders ORDER BY order_date DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListByStatus lista órdenes por estado.
func (r *OrderRepo) ListByStatus(status document.Status) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE status = $1 ORDER BY order_date DESC`
	return r.list(query, status)
}

// ListByUser lista órdenes de un usuario.
func (r *OrderRepo) ListByUser(userID string) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = $1 ORDER BY order_date DESC`
	return r.list(query, userID)
}

// ListByWarehouse lista órdenes de una bodega.
func (r *OrderRepo) ListByWarehouse(warehouseID string) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE warehouse_id = $1 ORDER BY order_date DESC`
	return r.list(query, warehouseID)
}

// ListByDateRange lista órdenes cuya fecha de orden cae en el rango [start, end].
func (r *OrderRepo) ListByDateRange(start, end time.Time) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_date BETWEEN $1 AND $2 ORDER BY order_date DESC`
	return r.list(query, start, end)
}

// SearchBySupplier busca órdenes por proveedor (substring, case-insensitive).
func (r *OrderRepo) SearchBySupplier(supplier string) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE supplier ILIKE '%' || $1 || '%' ORDER BY order_date DESC`
	return r.list(query, supplier)
}

// Delete elimina una orden por ID. Las líneas se borran antes (DeleteByOrder).
func (r *OrderRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order: %w", err)
	}
	return nil
}

// OrderItemRepo implementación de OrderItemRepository sobre PostgreSQL.
// Las lecturas traen code y name del item referenciado (join).
type OrderItemRepo struct {
	q Querier
}

// NewOrderItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewOrderItemRepository(q Querier) *OrderItemRepo {
	return &OrderItemRepo{q: q}
}

const orderItemSelect = `
	SELECT oi.id, oi.order_id, oi.item_id, i.code, i.name,
		oi.ordered_quantity, oi.received_quantity, oi.unit_price, oi.total_price,
		oi.created_at, oi.updated_at
	FROM order_items oi JOIN items i ON i.id = oi.item_id`

// Create persiste una nueva línea de orden.
func (r *OrderItemRepo) Create(item *entity.OrderItem) error {
	query := `
		INSERT INTO order_items (id, order_id, item_id, ordered_quantity, received_quantity, unit_price, total_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.OrderID, item.ItemID, item.OrderedQuantity, item.ReceivedQuantity,
		item.UnitPrice, item.TotalPrice, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order item: %w", err)
	}
	return nil
}

// GetByID obtiene una línea por ID, con los datos del item cargados.
func (r *OrderItemRepo) GetByID(id string) (*entity.OrderItem, error) {
	query := orderItemSelect + ` WHERE oi.id = $1`
	var i entity.OrderItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.OrderID, &i.ItemID, &i.ItemCode, &i.ItemName,
		&i.OrderedQuantity, &i.ReceivedQuantity, &i.UnitPrice, &i.TotalPrice,
		&i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order item: %w", err)
	}
	return &i, nil
}

// Update actualiza una línea de orden existente.
func (r *OrderItemRepo) Update(item *entity.OrderItem) error {
	query := `
		UPDATE order_items SET item_id = $2, ordered_quantity = $3, received_quantity = $4,
			unit_price = $5, total_price = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ItemID, item.OrderedQuantity, item.ReceivedQuantity,
		item.UnitPrice, item.TotalPrice, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order item: %w", err)
	}
	return nil
}

// ListByOrder lista las líneas de una orden en orden de inserción estable.
func (r *OrderItemRepo) ListByOrder(orderID string) ([]*entity.OrderItem, error) {
	query := orderItemSelect + ` WHERE oi.order_id = $1 ORDER BY oi.created_at ASC, oi.id ASC`
	rows, err := r.q.Query(context.Background(), query, orderID)
	if err != nil {
		return nil, fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	var list []*entity.OrderItem
	for rows.Next() {
		var i entity.OrderItem
		if err := rows.Scan(&i.ID, &i.OrderID, &i.ItemID, &i.ItemCode, &i.ItemName,
			&i.OrderedQuantity, &i.ReceivedQuantity, &i.UnitPrice, &i.TotalPrice,
			&i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Delete elimina una línea por ID.
func (r *OrderItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM order_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete order item: %w", err)
	}
	return nil
}

// DeleteByOrder elimina todas las líneas de una orden (cascada explícita).
func (r *OrderItemRepo) DeleteByOrder(orderID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM order_items WHERE order_id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("delete order items: %w", err)
	}
	return nil
}
