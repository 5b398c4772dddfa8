// Package transaction expone el ledger de movimientos: transacciones rápidas
// (entrada/salida directa de stock sin documento), el CRUD independiente de
// asientos y toda la superficie de consulta.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/refnum"
)

// UseCase casos de uso del ledger de transacciones.
type UseCase struct {
	transactions repository.TransactionRepository
	tx           stock.TxRunner
	numbers      refnum.Generator
	clock        refnum.Clock
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	transactions repository.TransactionRepository,
	tx stock.TxRunner,
	numbers refnum.Generator,
	clock refnum.Clock,
) *UseCase {
	if clock == nil {
		clock = refnum.SystemClock{}
	}
	return &UseCase{transactions: transactions, tx: tx, numbers: numbers, clock: clock}
}

// CreateItemInbound entrada rápida de stock de un item: aumenta la cantidad y
// asienta un INBOUND, en una sola transacción.
func (uc *UseCase) CreateItemInbound(ctx context.Context, itemID string, in dto.QuickTransactionRequest) (*dto.TransactionResponse, error) {
	return uc.quick(ctx, entity.TransactionInbound, entity.EntityItems, itemID, in)
}

// CreateProductInbound entrada rápida de stock de un producto.
func (uc *UseCase) CreateProductInbound(ctx context.Context, productID string, in dto.QuickTransactionRequest) (*dto.TransactionResponse, error) {
	return uc.quick(ctx, entity.TransactionInbound, entity.EntityProducts, productID, in)
}

// CreateItemOutbound salida rápida de stock de un item. Falla con
// ErrInsufficientStock si la cantidad pedida supera la disponible; en ese
// caso no se persiste ningún asiento.
func (uc *UseCase) CreateItemOutbound(ctx context.Context, itemID string, in dto.QuickTransactionRequest) (*dto.TransactionResponse, error) {
	return uc.quick(ctx, entity.TransactionOutbound, entity.EntityItems, itemID, in)
}

// CreateProductOutbound salida rápida de stock de un producto.
func (uc *UseCase) CreateProductOutbound(ctx context.Context, productID string, in dto.QuickTransactionRequest) (*dto.TransactionResponse, error) {
	return uc.quick(ctx, entity.TransactionOutbound, entity.EntityProducts, productID, in)
}

func (uc *UseCase) quick(ctx context.Context, txType entity.TransactionType, entityType entity.EntityType, accountID string, in dto.QuickTransactionRequest) (*dto.TransactionResponse, error) {
	if !in.Quantity.IsPositive() {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if in.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: el precio unitario no puede ser negativo", domain.ErrInvalidInput)
	}
	var out *dto.TransactionResponse
	err := uc.tx.Run(ctx, func(r *stock.Repos) error {
		var acct stock.Account
		if entityType == entity.EntityItems {
			acct = stock.ItemAccount(r, accountID)
		} else {
			acct = stock.ProductAccount(r, accountID)
		}
		var err error
		if txType == entity.TransactionInbound {
			_, err = acct.Increase(in.Quantity)
		} else {
			_, err = acct.Decrease(in.Quantity)
		}
		if err != nil {
			return err
		}
		entry := stock.Entry{
			Type:        txType,
			EntityType:  entityType,
			WarehouseID: in.WarehouseID,
			UserID:      in.UserID,
			Quantity:    in.Quantity,
			UnitPrice:   in.UnitPrice,
			Reference:   uc.numbers.Next(refnum.PrefixTransaction),
			Notes:       in.Notes,
		}
		if entityType == entity.EntityItems {
			entry.ItemID = accountID
		} else {
			entry.ProductID = accountID
		}
		created, err := stock.NewLedger(r, uc.clock.Now()).Append(entry)
		if err != nil {
			return err
		}
		out = toTransactionResponse(created)
		return nil
	})
	return out, err
}

// Create alta directa de un asiento (API independiente). No mueve stock.
func (uc *UseCase) Create(in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if !in.Quantity.IsPositive() {
		return nil, fmt.Errorf("%w: la cantidad debe ser mayor que cero", domain.ErrInvalidInput)
	}
	now := uc.clock.Now()
	reference := in.ReferenceNumber
	if reference == "" {
		reference = uc.numbers.Next(refnum.PrefixTransaction)
	}
	status := entity.TransactionStatus(in.Status)
	if status == "" {
		status = entity.TransactionCompleted
	}
	txDate := now
	if in.TransactionDate != nil {
		txDate = *in.TransactionDate
	}
	tx := &entity.Transaction{
		ID:              uuid.New().String(),
		TransactionType: entity.TransactionType(in.TransactionType),
		EntityType:      entity.EntityType(in.EntityType),
		ItemID:          in.ItemID,
		ProductID:       in.ProductID,
		WarehouseID:     in.WarehouseID,
		UserID:          in.UserID,
		Quantity:        in.Quantity,
		UnitPrice:       in.UnitPrice,
		TotalPrice:      in.Quantity.Mul(in.UnitPrice),
		Status:          status,
		Notes:           in.Notes,
		TransactionDate: txDate,
		ReferenceNumber: reference,
		CreatedAt:       now,
	}
	if err := uc.transactions.Create(tx); err != nil {
		return nil, err
	}
	return toTransactionResponse(tx), nil
}

// GetByID obtiene un asiento por ID.
func (uc *UseCase) GetByID(id string) (*dto.TransactionResponse, error) {
	tx, err := uc.transactions.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.ErrNotFound
	}
	return toTransactionResponse(tx), nil
}

// Update modifica un asiento (API independiente; los flujos nunca la usan).
// El total se recalcula siempre como cantidad × precio unitario.
func (uc *UseCase) Update(id string, in dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	tx, err := uc.transactions.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.ErrNotFound
	}
	if in.TransactionType != "" {
		tx.TransactionType = entity.TransactionType(in.TransactionType)
	}
	if in.EntityType != "" {
		tx.EntityType = entity.EntityType(in.EntityType)
	}
	if in.ItemID != "" {
		tx.ItemID = in.ItemID
	}
	if in.ProductID != "" {
		tx.ProductID = in.ProductID
	}
	if in.WarehouseID != "" {
		tx.WarehouseID = in.WarehouseID
	}
	if in.UserID != "" {
		tx.UserID = in.UserID
	}
	if in.Quantity.IsPositive() {
		tx.Quantity = in.Quantity
	}
	if !in.UnitPrice.IsNegative() {
		tx.UnitPrice = in.UnitPrice
	}
	tx.TotalPrice = tx.Quantity.Mul(tx.UnitPrice)
	if in.Status != "" {
		tx.Status = entity.TransactionStatus(in.Status)
	}
	tx.Notes = in.Notes
	if in.TransactionDate != nil {
		tx.TransactionDate = *in.TransactionDate
	}
	if err := uc.transactions.Update(tx); err != nil {
		return nil, err
	}
	return toTransactionResponse(tx), nil
}

// Delete elimina un asiento (API independiente). No revierte stock.
func (uc *UseCase) Delete(id string) error {
	tx, err := uc.transactions.GetByID(id)
	if err != nil {
		return err
	}
	if tx == nil {
		return domain.ErrNotFound
	}
	return uc.transactions.Delete(id)
}

// List lista asientos con paginación.
func (uc *UseCase) List(limit, offset int) ([]dto.TransactionResponse, error) {
	list, err := uc.transactions.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toTransactionResponses(list), nil
}

// Recent devuelve los últimos asientos (por fecha descendente).
func (uc *UseCase) Recent(limit int) ([]dto.TransactionResponse, error) {
	if limit <= 0 {
		limit = 10
	}
	list, err := uc.transactions.List(limit, 0)
	if err != nil {
		return nil, err
	}
	return toTransactionResponses(list), nil
}

// ListByType lista asientos por tipo de movimiento.
func (uc *UseCase) ListByType(txType string) ([]dto.TransactionResponse, error) {
	list, err := uc.transactions.ListByType(entity.TransactionType(txType))
	if err != nil {
		return nil, err
	}
	return toTransactionResponses(list), nil
}

// ListByEntityType lista asientos por familia de cuenta (ITEMS o PRODUCTS).
func (uc *UseCase) ListByEntityType(entityType string) ([]dto.TransactionResponse, error) {
	list, err := uc.transactions.ListByEntityType(entity.EntityType(entityType))
	if err != nil {
		return nil, err
	}
	return toTransactionResponses(list), nil
}

// ListByStatus lista asientos por estado.
func (uc *UseCase) ListByStatus(status string) ([]dto.TransactionResponse, error) {
	list, err := uc.transactions.ListByStatus(entity.TransactionStatus(status))
	if err != nil {
		return nil, err
	}
	return toTransactionResponses(list), nil
}

// ListByUser lista asientos de un usuario.
func (uc *UseCase) ListByUser(userID string) ([]dto.TransactionResponse, error) {
	list, err := uc.transactions.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return toTransactionResponses(list), nil
}

// ListByWarehouse lista asientos de una bodega.
func (uc *UseCase) ListByWarehouse(warehouseID string) ([]dto.TransactionResponse, error) {
	list, err := uc.transactions.ListByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	return toTransactionResponses(list), nil
}

// ListByItem lista asientos de un item.
func (uc *UseCase) ListByItem(itemID string) ([]dto.TransactionResponse, error) {
	list, err := uc.transactions.ListByItem(itemID)
	if err != nil {
		return nil, err
	}
	return toTransactionResponses(list), nil
}

// ListByProduct lista asientos de un producto.
func (uc *UseCase) ListByProduct(productID string) ([]dto.TransactionResponse, error) {
	list, err := uc.transactions.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return toTransactionResponses(list), nil
}

// ListByDateRange lista asientos por rango de fecha de transacción.
func (uc *UseCase) ListByDateRange(start, end time.Time) ([]dto.TransactionResponse, error) {
	list, err := uc.transactions.ListByDateRange(start, end)
	if err != nil {
		return nil, err
	}
	return toTransactionResponses(list), nil
}

// SearchByReference busca asientos por número de referencia (substring).
func (uc *UseCase) SearchByReference(reference string) ([]dto.TransactionResponse, error) {
	list, err := uc.transactions.SearchByReference(reference)
	if err != nil {
		return nil, err
	}
	return toTransactionResponses(list), nil
}

func toTransactionResponse(t *entity.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:              t.ID,
		TransactionType: string(t.TransactionType),
		EntityType:      string(t.EntityType),
		ItemID:          t.ItemID,
		ProductID:       t.ProductID,
		WarehouseID:     t.WarehouseID,
		UserID:          t.UserID,
		Quantity:        t.Quantity,
		UnitPrice:       t.UnitPrice,
		TotalPrice:      t.TotalPrice,
		Status:          string(t.Status),
		Notes:           t.Notes,
		TransactionDate: t.TransactionDate,
		ReferenceNumber: t.ReferenceNumber,
	}
}

func toTransactionResponses(list []*entity.Transaction) []dto.TransactionResponse {
	out := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, *toTransactionResponse(t))
	}
	return out
}
