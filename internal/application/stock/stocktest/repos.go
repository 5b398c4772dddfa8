// Package stocktest provee implementaciones en memoria de los puertos de
// persistencia y del TxRunner para los tests de los flujos de documentos.
// Las lecturas devuelven copias para que los tests puedan afirmar sobre el
// estado persistido sin aliasing con los punteros que mutan los casos de uso.
package stocktest

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/domain/document"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// Runner TxRunner sin transacción real: ejecuta el callback directamente
// sobre el bundle de repos en memoria.
type Runner struct {
	Repos *stock.Repos
}

// Run ejecuta fn sobre los repos en memoria.
func (r Runner) Run(_ context.Context, fn func(r *stock.Repos) error) error {
	return fn(r.Repos)
}

// Clock reloj fijo para tests deterministas.
type Clock struct {
	T time.Time
}

// Now devuelve siempre el instante fijado.
func (c Clock) Now() time.Time { return c.T }

// NewRepos construye el bundle completo de repos en memoria, todos vacíos.
func NewRepos() *stock.Repos {
	return &stock.Repos{
		Items:           &ItemRepo{},
		Products:        &ProductRepo{},
		Orders:          &OrderRepo{},
		OrderItems:      &OrderItemRepo{},
		Receipts:        &ReceiptRepo{},
		ReceiptItems:    &ReceiptItemRepo{},
		Productions:     &ProductionRepo{},
		ProductionItems: &ProductionItemRepo{},
		Transactions:    &TransactionRepo{},
	}
}

func page[T any](rows []T, limit, offset int) []T {
	if offset >= len(rows) {
		return nil
	}
	end := offset + limit
	if limit <= 0 || end > len(rows) {
		end = len(rows)
	}
	out := make([]T, end-offset)
	copy(out, rows[offset:end])
	return out
}

// ItemRepo repositorio de items en memoria.
type ItemRepo struct {
	rows []*entity.Item
}

func (r *ItemRepo) Create(item *entity.Item) error {
	c := *item
	r.rows = append(r.rows, &c)
	return nil
}

func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	for _, it := range r.rows {
		if it.ID == id {
			c := *it
			return &c, nil
		}
	}
	return nil, nil
}

func (r *ItemRepo) GetByCode(code string) (*entity.Item, error) {
	for _, it := range r.rows {
		if it.Code == code {
			c := *it
			return &c, nil
		}
	}
	return nil, nil
}

func (r *ItemRepo) GetForUpdate(id string) (*entity.Item, error) {
	return r.GetByID(id)
}

func (r *ItemRepo) Update(item *entity.Item) error {
	for i, it := range r.rows {
		if it.ID == item.ID {
			c := *item
			r.rows[i] = &c
			return nil
		}
	}
	return nil
}

func (r *ItemRepo) UpdateQuantity(id string, quantity decimal.Decimal) error {
	for _, it := range r.rows {
		if it.ID == id {
			it.Quantity = quantity
			return nil
		}
	}
	return nil
}

func (r *ItemRepo) List(limit, offset int) ([]*entity.Item, error) {
	return page(r.rows, limit, offset), nil
}

func (r *ItemRepo) SearchByName(name string, limit, offset int) ([]*entity.Item, error) {
	var out []*entity.Item
	for _, it := range r.rows {
		if strings.Contains(strings.ToLower(it.Name), strings.ToLower(name)) {
			c := *it
			out = append(out, &c)
		}
	}
	return page(out, limit, offset), nil
}

func (r *ItemRepo) Delete(id string) error {
	for i, it := range r.rows {
		if it.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

// ProductRepo repositorio de productos en memoria.
type ProductRepo struct {
	rows []*entity.Product
}

func (r *ProductRepo) Create(product *entity.Product) error {
	c := *product
	r.rows = append(r.rows, &c)
	return nil
}

func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	for _, p := range r.rows {
		if p.ID == id {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

func (r *ProductRepo) GetByCode(code string) (*entity.Product, error) {
	for _, p := range r.rows {
		if p.Code == code {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *ProductRepo) Update(product *entity.Product) error {
	for i, p := range r.rows {
		if p.ID == product.ID {
			c := *product
			r.rows[i] = &c
			return nil
		}
	}
	return nil
}

func (r *ProductRepo) UpdateQuantity(id string, quantity decimal.Decimal) error {
	for _, p := range r.rows {
		if p.ID == id {
			p.Quantity = quantity
			return nil
		}
	}
	return nil
}

func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	return page(r.rows, limit, offset), nil
}

func (r *ProductRepo) SearchByName(name string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.rows {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(name)) {
			c := *p
			out = append(out, &c)
		}
	}
	return page(out, limit, offset), nil
}

func (r *ProductRepo) Delete(id string) error {
	for i, p := range r.rows {
		if p.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

// OrderRepo repositorio de órdenes en memoria.
type OrderRepo struct {
	rows []*entity.Order
}

func (r *OrderRepo) Create(order *entity.Order) error {
	c := *order
	r.rows = append(r.rows, &c)
	return nil
}

func (r *OrderRepo) GetByID(id string) (*entity.Order, error) {
	for _, o := range r.rows {
		if o.ID == id {
			c := *o
			return &c, nil
		}
	}
	return nil, nil
}

func (r *OrderRepo) GetByNumber(orderNumber string) (*entity.Order, error) {
	for _, o := range r.rows {
		if o.OrderNumber == orderNumber {
			c := *o
			return &c, nil
		}
	}
	return nil, nil
}

func (r *OrderRepo) Update(order *entity.Order) error {
	for i, o := range r.rows {
		if o.ID == order.ID {
			c := *order
			r.rows[i] = &c
			return nil
		}
	}
	return nil
}

func (r *OrderRepo) UpdateTotalAmount(id string, total decimal.Decimal) error {
	for _, o := range r.rows {
		if o.ID == id {
			o.TotalAmount = total
			return nil
		}
	}
	return nil
}

func (r *OrderRepo) List(limit, offset int) ([]*entity.Order, error) {
	return page(r.rows, limit, offset), nil
}

func (r *OrderRepo) ListByStatus(status document.Status) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.rows {
		if o.Status == status {
			c := *o
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *OrderRepo) ListByUser(userID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.rows {
		if o.UserID == userID {
			c := *o
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *OrderRepo) ListByWarehouse(warehouseID string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.rows {
		if o.WarehouseID == warehouseID {
			c := *o
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *OrderRepo) ListByDateRange(start, end time.Time) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.rows {
		if !o.OrderDate.Before(start) && !o.OrderDate.After(end) {
			c := *o
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *OrderRepo) SearchBySupplier(supplier string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.rows {
		if strings.Contains(strings.ToLower(o.Supplier), strings.ToLower(supplier)) {
			c := *o
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *OrderRepo) Delete(id string) error {
	for i, o := range r.rows {
		if o.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

// OrderItemRepo repositorio de líneas de orden en memoria.
type OrderItemRepo struct {
	rows []*entity.OrderItem
}

func (r *OrderItemRepo) Create(item *entity.OrderItem) error {
	c := *item
	r.rows = append(r.rows, &c)
	return nil
}

func (r *OrderItemRepo) GetByID(id string) (*entity.OrderItem, error) {
	for _, l := range r.rows {
		if l.ID == id {
			c := *l
			return &c, nil
		}
	}
	return nil, nil
}

func (r *OrderItemRepo) Update(item *entity.OrderItem) error {
	for i, l := range r.rows {
		if l.ID == item.ID {
			c := *item
			r.rows[i] = &c
			return nil
		}
	}
	return nil
}

func (r *OrderItemRepo) ListByOrder(orderID string) ([]*entity.OrderItem, error) {
	var out []*entity.OrderItem
	for _, l := range r.rows {
		if l.OrderID == orderID {
			c := *l
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *OrderItemRepo) Delete(id string) error {
	for i, l := range r.rows {
		if l.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *OrderItemRepo) DeleteByOrder(orderID string) error {
	var kept []*entity.OrderItem
	for _, l := range r.rows {
		if l.OrderID != orderID {
			kept = append(kept, l)
		}
	}
	r.rows = kept
	return nil
}

// ReceiptRepo repositorio de recepciones en memoria.
type ReceiptRepo struct {
	rows []*entity.MaterialReceipt
}

func (r *ReceiptRepo) Create(receipt *entity.MaterialReceipt) error {
	c := *receipt
	r.rows = append(r.rows, &c)
	return nil
}

func (r *ReceiptRepo) GetByID(id string) (*entity.MaterialReceipt, error) {
	for _, m := range r.rows {
		if m.ID == id {
			c := *m
			return &c, nil
		}
	}
	return nil, nil
}

func (r *ReceiptRepo) GetByNumber(receiptNumber string) (*entity.MaterialReceipt, error) {
	for _, m := range r.rows {
		if m.ReceiptNumber == receiptNumber {
			c := *m
			return &c, nil
		}
	}
	return nil, nil
}

func (r *ReceiptRepo) Update(receipt *entity.MaterialReceipt) error {
	for i, m := range r.rows {
		if m.ID == receipt.ID {
			c := *receipt
			r.rows[i] = &c
			return nil
		}
	}
	return nil
}

func (r *ReceiptRepo) UpdateTotalAmount(id string, total decimal.Decimal) error {
	for _, m := range r.rows {
		if m.ID == id {
			m.TotalAmount = total
			return nil
		}
	}
	return nil
}

func (r *ReceiptRepo) List(limit, offset int) ([]*entity.MaterialReceipt, error) {
	return page(r.rows, limit, offset), nil
}

func (r *ReceiptRepo) ListByStatus(status document.Status) ([]*entity.MaterialReceipt, error) {
	var out []*entity.MaterialReceipt
	for _, m := range r.rows {
		if m.Status == status {
			c := *m
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *ReceiptRepo) ListByUser(userID string) ([]*entity.MaterialReceipt, error) {
	var out []*entity.MaterialReceipt
	for _, m := range r.rows {
		if m.UserID == userID {
			c := *m
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *ReceiptRepo) ListByWarehouse(warehouseID string) ([]*entity.MaterialReceipt, error) {
	var out []*entity.MaterialReceipt
	for _, m := range r.rows {
		if m.WarehouseID == warehouseID {
			c := *m
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *ReceiptRepo) ListByDateRange(start, end time.Time) ([]*entity.MaterialReceipt, error) {
	var out []*entity.MaterialReceipt
	for _, m := range r.rows {
		if !m.ReceiptDate.Before(start) && !m.ReceiptDate.After(end) {
			c := *m
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *ReceiptRepo) SearchBySupplier(supplier string) ([]*entity.MaterialReceipt, error) {
	var out []*entity.MaterialReceipt
	for _, m := range r.rows {
		if strings.Contains(strings.ToLower(m.Supplier), strings.ToLower(supplier)) {
			c := *m
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *ReceiptRepo) Delete(id string) error {
	for i, m := range r.rows {
		if m.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

// ReceiptItemRepo repositorio de líneas de recepción en memoria.
type ReceiptItemRepo struct {
	rows []*entity.MaterialReceiptItem
}

func (r *ReceiptItemRepo) Create(item *entity.MaterialReceiptItem) error {
	c := *item
	r.rows = append(r.rows, &c)
	return nil
}

func (r *ReceiptItemRepo) GetByID(id string) (*entity.MaterialReceiptItem, error) {
	for _, l := range r.rows {
		if l.ID == id {
			c := *l
			return &c, nil
		}
	}
	return nil, nil
}

func (r *ReceiptItemRepo) Update(item *entity.MaterialReceiptItem) error {
	for i, l := range r.rows {
		if l.ID == item.ID {
			c := *item
			r.rows[i] = &c
			return nil
		}
	}
	return nil
}

func (r *ReceiptItemRepo) ListByReceipt(receiptID string) ([]*entity.MaterialReceiptItem, error) {
	var out []*entity.MaterialReceiptItem
	for _, l := range r.rows {
		if l.ReceiptID == receiptID {
			c := *l
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *ReceiptItemRepo) Delete(id string) error {
	for i, l := range r.rows {
		if l.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *ReceiptItemRepo) DeleteByReceipt(receiptID string) error {
	var kept []*entity.MaterialReceiptItem
	for _, l := range r.rows {
		if l.ReceiptID != receiptID {
			kept = append(kept, l)
		}
	}
	r.rows = kept
	return nil
}

// ProductionRepo repositorio de producciones en memoria.
type ProductionRepo struct {
	rows []*entity.Production
}

func (r *ProductionRepo) Create(production *entity.Production) error {
	c := *production
	r.rows = append(r.rows, &c)
	return nil
}

func (r *ProductionRepo) GetByID(id string) (*entity.Production, error) {
	for _, p := range r.rows {
		if p.ID == id {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

func (r *ProductionRepo) GetByNumber(productionNumber string) (*entity.Production, error) {
	for _, p := range r.rows {
		if p.ProductionNumber == productionNumber {
			c := *p
			return &c, nil
		}
	}
	return nil, nil
}

func (r *ProductionRepo) Update(production *entity.Production) error {
	for i, p := range r.rows {
		if p.ID == production.ID {
			c := *production
			r.rows[i] = &c
			return nil
		}
	}
	return nil
}

func (r *ProductionRepo) UpdateTotalCost(id string, total decimal.Decimal) error {
	for _, p := range r.rows {
		if p.ID == id {
			p.TotalCost = total
			return nil
		}
	}
	return nil
}

func (r *ProductionRepo) List(limit, offset int) ([]*entity.Production, error) {
	return page(r.rows, limit, offset), nil
}

func (r *ProductionRepo) ListByStatus(status document.Status) ([]*entity.Production, error) {
	var out []*entity.Production
	for _, p := range r.rows {
		if p.Status == status {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *ProductionRepo) ListByUser(userID string) ([]*entity.Production, error) {
	var out []*entity.Production
	for _, p := range r.rows {
		if p.UserID == userID {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *ProductionRepo) ListByWarehouse(warehouseID string) ([]*entity.Production, error) {
	var out []*entity.Production
	for _, p := range r.rows {
		if p.WarehouseID == warehouseID {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *ProductionRepo) ListByProduct(productID string) ([]*entity.Production, error) {
	var out []*entity.Production
	for _, p := range r.rows {
		if p.ProductID == productID {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *ProductionRepo) ListByDateRange(start, end time.Time) ([]*entity.Production, error) {
	var out []*entity.Production
	for _, p := range r.rows {
		if !p.PlannedDate.Before(start) && !p.PlannedDate.After(end) {
			c := *p
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *ProductionRepo) Delete(id string) error {
	for i, p := range r.rows {
		if p.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

// ProductionItemRepo repositorio de líneas de producción en memoria.
type ProductionItemRepo struct {
	rows []*entity.ProductionItem
}

func (r *ProductionItemRepo) Create(item *entity.ProductionItem) error {
	c := *item
	r.rows = append(r.rows, &c)
	return nil
}

func (r *ProductionItemRepo) GetByID(id string) (*entity.ProductionItem, error) {
	for _, l := range r.rows {
		if l.ID == id {
			c := *l
			return &c, nil
		}
	}
	return nil, nil
}

func (r *ProductionItemRepo) Update(item *entity.ProductionItem) error {
	for i, l := range r.rows {
		if l.ID == item.ID {
			c := *item
			r.rows[i] = &c
			return nil
		}
	}
	return nil
}

func (r *ProductionItemRepo) ListByProduction(productionID string) ([]*entity.ProductionItem, error) {
	var out []*entity.ProductionItem
	for _, l := range r.rows {
		if l.ProductionID == productionID {
			c := *l
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *ProductionItemRepo) Delete(id string) error {
	for i, l := range r.rows {
		if l.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *ProductionItemRepo) DeleteByProduction(productionID string) error {
	var kept []*entity.ProductionItem
	for _, l := range r.rows {
		if l.ProductionID != productionID {
			kept = append(kept, l)
		}
	}
	r.rows = kept
	return nil
}

// TransactionRepo repositorio del ledger en memoria.
type TransactionRepo struct {
	rows []*entity.Transaction
}

// All devuelve copias de todos los asientos en orden de inserción. No es
// parte del puerto; existe para que los tests afirmen sobre el ledger.
func (r *TransactionRepo) All() []*entity.Transaction {
	out := make([]*entity.Transaction, 0, len(r.rows))
	for _, tx := range r.rows {
		c := *tx
		out = append(out, &c)
	}
	return out
}

func (r *TransactionRepo) Create(tx *entity.Transaction) error {
	c := *tx
	r.rows = append(r.rows, &c)
	return nil
}

func (r *TransactionRepo) GetByID(id string) (*entity.Transaction, error) {
	for _, tx := range r.rows {
		if tx.ID == id {
			c := *tx
			return &c, nil
		}
	}
	return nil, nil
}

func (r *TransactionRepo) Update(tx *entity.Transaction) error {
	for i, row := range r.rows {
		if row.ID == tx.ID {
			c := *tx
			r.rows[i] = &c
			return nil
		}
	}
	return nil
}

func (r *TransactionRepo) List(limit, offset int) ([]*entity.Transaction, error) {
	return page(r.rows, limit, offset), nil
}

func (r *TransactionRepo) ListByType(txType entity.TransactionType) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range r.rows {
		if tx.TransactionType == txType {
			c := *tx
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *TransactionRepo) ListByEntityType(entityType entity.EntityType) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range r.rows {
		if tx.EntityType == entityType {
			c := *tx
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *TransactionRepo) ListByStatus(status entity.TransactionStatus) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range r.rows {
		if tx.Status == status {
			c := *tx
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *TransactionRepo) ListByUser(userID string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range r.rows {
		if tx.UserID == userID {
			c := *tx
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *TransactionRepo) ListByWarehouse(warehouseID string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range r.rows {
		if tx.WarehouseID == warehouseID {
			c := *tx
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *TransactionRepo) ListByItem(itemID string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range r.rows {
		if tx.ItemID == itemID {
			c := *tx
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *TransactionRepo) ListByProduct(productID string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range r.rows {
		if tx.ProductID == productID {
			c := *tx
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *TransactionRepo) ListByDateRange(start, end time.Time) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range r.rows {
		if !tx.TransactionDate.Before(start) && !tx.TransactionDate.After(end) {
			c := *tx
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *TransactionRepo) SearchByReference(reference string) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, tx := range r.rows {
		if strings.Contains(tx.ReferenceNumber, reference) {
			c := *tx
			out = append(out, &c)
		}
	}
	return out, nil
}

func (r *TransactionRepo) Delete(id string) error {
	for i, tx := range r.rows {
		if tx.ID == id {
			r.rows = append(r.rows[:i], r.rows[i+1:]...)
			return nil
		}
	}
	return nil
}
