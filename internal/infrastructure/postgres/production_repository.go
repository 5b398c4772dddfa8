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

var _ repository.ProductionRepository = (*ProductionRepo)(nil)
var _ repository.ProductionItemRepository = (*ProductionItemRepo)(nil)

// ProductionRepo implementación de ProductionRepository sobre PostgreSQL (usable con pool o tx).
type ProductionRepo struct {
	q Querier
}

// NewProductionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionRepository(q Querier) *ProductionRepo {
	return &ProductionRepo{q: q}
}

const productionColumns = `id, production_number, product_id, warehouse_id, user_id, planned_quantity, produced_quantity, status, start_date, end_date, planned_date, notes, total_cost, created_at, updated_at`

// Create persiste una nueva producción. El número es único.
func (r *ProductionRepo) Create(production *entity.Production) error {
	query := `
		INSERT INTO productions (` + productionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		production.ID, production.ProductionNumber, production.ProductID, production.WarehouseID,
		production.UserID, production.PlannedQuantity, production.ProducedQuantity, production.Status,
		production.StartDate, production.EndDate, production.PlannedDate, production.Notes,
		production.TotalCost, production.CreatedAt, production.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert production: %w", err)
	}
	return nil
}

func (r *ProductionRepo) scanOne(row pgx.Row, op string) (*entity.Production, error) {
	var p entity.Production
	err := row.Scan(
		&p.ID, &p.ProductionNumber, &p.ProductID, &p.WarehouseID, &p.UserID,
		&p.PlannedQuantity, &p.ProducedQuantity, &p.Status, &p.StartDate, &p.EndDate,
		&p.PlannedDate, &p.Notes, &p.TotalCost, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &p, nil
}

// GetByID obtiene una producción por ID.
func (r *ProductionRepo) GetByID(id string) (*entity.Production, error) {
	query := `SELECT ` + productionColumns + ` FROM productions WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id), "get production")
}

// GetByNumber obtiene una producción por su número.
func (r *ProductionRepo) GetByNumber(productionNumber string) (*entity.Production, error) {
	query := `SELECT ` + productionColumns + ` FROM productions WHERE production_number = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, productionNumber), "get production by number")
}

// Update actualiza una producción existente.
func (r *ProductionRepo) Update(production *entity.Production) error {
	query := `
		UPDATE productions SET product_id = $2, warehouse_id = $3, user_id = $4,
			planned_quantity = $5, produced_quantity = $6, status = $7, start_date = $8,
			end_date = $9, planned_date = $10, notes = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		production.ID, production.ProductID, production.WarehouseID, production.UserID,
		production.PlannedQuantity, production.ProducedQuantity, production.Status,
		production.StartDate, production.EndDate, production.PlannedDate, production.Notes,
		production.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update production: %w", err)
	}
	return nil
}

// UpdateTotalCost actualiza solo el costo total (recalculado desde las líneas).
func (r *ProductionRepo) UpdateTotalCost(id string, total decimal.Decimal) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE productions SET total_cost = $2, updated_at = now() WHERE id = $1`,
		id, total,
	)
	if err != nil {
		return fmt.Errorf("update production total: %w", err)
	}
	return nil
}

func (r *ProductionRepo) list(query string, args ...any) ([]*entity.Production, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list productions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Production
	for rows.Next() {
		var p entity.Production
		if err := rows.Scan(&p.ID, &p.ProductionNumber, &p.ProductID, &p.WarehouseID, &p.UserID,
			&p.PlannedQuantity, &p.ProducedQuantity, &p.Status, &p.StartDate, &p.EndDate,
			&p.PlannedDate, &p.Notes, &p.TotalCost, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan production: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// List lista producciones por fecha planificada descendente, con paginación.
func (r *ProductionRepo) List(limit, offset int) ([]*entity.Production, error) {
	query := `SELECT ` + productionColumns + ` FROM productions ORDER BY planned_date DESC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListByStatus lista producciones por estado.
func (r *ProductionRepo) ListByStatus(status document.Status) ([]*entity.Production, error) {
	query := `SELECT ` + productionColumns + ` FROM productions WHERE status = $1 ORDER BY planned_date DESC`
	return r.list(query, status)
}

// ListByUser lista producciones de un usuario.
func (r *ProductionRepo) ListByUser(userID string) ([]*entity.Production, error) {
	query := `SELECT ` + productionColumns + ` FROM productions WHERE user_id = $1 ORDER BY planned_date DESC`
	return r.list(query, userID)
}

// ListByWarehouse lista producciones de una bodega.
func (r *ProductionRepo) ListByWarehouse(warehouseID string) ([]*entity.Production, error) {
	query := `SELECT ` + productionColumns + ` FROM productions WHERE warehouse_id = $1 ORDER BY planned_date DESC`
	return r.list(query, warehouseID)
}

// ListByProduct lista producciones de un producto.
func (r *ProductionRepo) ListByProduct(productID string) ([]*entity.Production, error) {
	query := `SELECT ` + productionColumns + ` FROM productions WHERE product_id = $1 ORDER BY planned_date DESC`
	return r.list(query, productID)
}

// ListByDateRange lista producciones cuya fecha planificada cae en el rango [start, end].
func (r *ProductionRepo) ListByDateRange(start, end time.Time) ([]*entity.Production, error) {
	query := `SELECT ` + productionColumns + ` FROM productions WHERE planned_date BETWEEN $1 AND $2 ORDER BY planned_date DESC`
	return r.list(query, start, end)
}

// Delete elimina una producción por ID. Las líneas se borran antes (DeleteByProduction).
func (r *ProductionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete production: %w", err)
	}
	return nil
}

// ProductionItemRepo implementación de ProductionItemRepository sobre
// PostgreSQL. Las lecturas traen code y name del item referenciado (join).
type ProductionItemRepo struct {
	q Querier
}

// NewProductionItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductionItemRepository(q Querier) *ProductionItemRepo {
	return &ProductionItemRepo{q: q}
}

const productionItemSelect = `
	SELECT pi.id, pi.production_id, pi.item_id, i.code, i.name,
		pi.required_quantity, pi.used_quantity, pi.unit_cost, pi.total_cost,
		pi.created_at, pi.updated_at
	FROM production_items pi JOIN items i ON i.id = pi.item_id`

// Create persiste una nueva línea de producción.
func (r *ProductionItemRepo) Create(item *entity.ProductionItem) error {
	query := `
		INSERT INTO production_items (id, production_id, item_id, required_quantity, used_quantity, unit_cost, total_cost, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ProductionID, item.ItemID, item.RequiredQuantity, item.UsedQuantity,
		item.UnitCost, item.TotalCost, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert production item: %w", err)
	}
	return nil
}

// GetByID obtiene una línea por ID, con los datos del item cargados.
func (r *ProductionItemRepo) GetByID(id string) (*entity.ProductionItem, error) {
	query := productionItemSelect + ` WHERE pi.id = $1`
	var i entity.ProductionItem
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&i.ID, &i.ProductionID, &i.ItemID, &i.ItemCode, &i.ItemName,
		&i.RequiredQuantity, &i.UsedQuantity, &i.UnitCost, &i.TotalCost,
		&i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get production item: %w", err)
	}
	return &i, nil
}

// Update actualiza una línea de producción existente.
func (r *ProductionItemRepo) Update(item *entity.ProductionItem) error {
	query := `
		UPDATE production_items SET item_id = $2, required_quantity = $3, used_quantity = $4,
			unit_cost = $5, total_cost = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.ID, item.ItemID, item.RequiredQuantity, item.UsedQuantity,
		item.UnitCost, item.TotalCost, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update production item: %w", err)
	}
	return nil
}

// ListByProduction lista las líneas de una producción en orden de inserción estable.
func (r *ProductionItemRepo) ListByProduction(productionID string) ([]*entity.ProductionItem, error) {
	query := productionItemSelect + ` WHERE pi.production_id = $1 ORDER BY pi.created_at ASC, pi.id ASC`
	rows, err := r.q.Query(context.Background(), query, productionID)
	if err != nil {
		return nil, fmt.Errorf("list production items: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductionItem
	for rows.Next() {
		var i entity.ProductionItem
		if err := rows.Scan(&i.ID, &i.ProductionID, &i.ItemID, &i.ItemCode, &i.ItemName,
			&i.RequiredQuantity, &i.UsedQuantity, &i.UnitCost, &i.TotalCost,
			&i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan production item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// Delete elimina una línea por ID.
func (r *ProductionItemRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM production_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete production item: %w", err)
	}
	return nil
}

// DeleteByProduction elimina todas las líneas de una producción (cascada explícita).
func (r *ProductionItemRepo) DeleteByProduction(productionID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM production_items WHERE production_id = $1`, productionID)
	if err != nil {
		return fmt.Errorf("delete production items: %w", err)
	}
	return nil
}
