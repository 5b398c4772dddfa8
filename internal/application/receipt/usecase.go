// Package receipt implementa el flujo de recepciones directas de materiales:
// como el de órdenes pero sin confirmación intermedia, se recibe directamente
// desde PENDING.
package receipt

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/document"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/refnum"
)

// UseCase casos de uso del flujo de recepciones de materiales.
type UseCase struct {
	receipts repository.MaterialReceiptRepository
	lines    repository.MaterialReceiptItemRepository
	items    repository.ItemRepository
	tx       stock.TxRunner
	numbers  refnum.Generator
	clock    refnum.Clock
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	receipts repository.MaterialReceiptRepository,
	lines repository.MaterialReceiptItemRepository,
	items repository.ItemRepository,
	tx stock.TxRunner,
	numbers refnum.Generator,
	clock refnum.Clock,
) *UseCase {
	if clock == nil {
		clock = refnum.SystemClock{}
	}
	return &UseCase{receipts: receipts, lines: lines, items: items, tx: tx, numbers: numbers, clock: clock}
}

// Create crea una recepción en estado PENDING con total cero. Si no viene
// número se genera REC-<epoch millis>.
func (uc *UseCase) Create(in dto.CreateReceiptRequest) (*dto.ReceiptResponse, error) {
	now := uc.clock.Now()
	number := in.ReceiptNumber
	if number == "" {
		number = uc.numbers.Next(refnum.PrefixReceipt)
	}
	receiptDate := now
	if in.ReceiptDate != nil {
		receiptDate = *in.ReceiptDate
	}
	rec := &entity.MaterialReceipt{
		ID:            uuid.New().String(),
		ReceiptNumber: number,
		WarehouseID:   in.WarehouseID,
		UserID:        in.UserID,
		Status:        document.ReceiptPending,
		ReceiptDate:   receiptDate,
		TotalAmount:   decimal.Zero,
		Notes:         in.Notes,
		Supplier:      in.Supplier,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.receipts.Create(rec); err != nil {
		return nil, err
	}
	return toReceiptResponse(rec), nil
}

// GetByID obtiene una recepción por ID.
func (uc *UseCase) GetByID(id string) (*dto.ReceiptResponse, error) {
	rec, err := uc.receipts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	return toReceiptResponse(rec), nil
}

// GetByNumber obtiene una recepción por su número.
func (uc *UseCase) GetByNumber(number string) (*dto.ReceiptResponse, error) {
	rec, err := uc.receipts.GetByNumber(number)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	return toReceiptResponse(rec), nil
}

// Update actualiza los campos editables de la recepción. Estado y total no se
// tocan por esta vía.
func (uc *UseCase) Update(id string, in dto.UpdateReceiptRequest) (*dto.ReceiptResponse, error) {
	rec, err := uc.receipts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	if in.WarehouseID != "" {
		rec.WarehouseID = in.WarehouseID
	}
	if in.UserID != "" {
		rec.UserID = in.UserID
	}
	if in.ReceiptDate != nil {
		rec.ReceiptDate = *in.ReceiptDate
	}
	rec.Notes = in.Notes
	rec.Supplier = in.Supplier
	rec.UpdatedAt = uc.clock.Now()
	if err := uc.receipts.Update(rec); err != nil {
		return nil, err
	}
	return toReceiptResponse(rec), nil
}

// Delete elimina la recepción y todas sus líneas en una sola transacción.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(r *stock.Repos) error {
		rec, err := r.Receipts.GetByID(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return domain.ErrNotFound
		}
		if err := r.ReceiptItems.DeleteByReceipt(id); err != nil {
			return err
		}
		return r.Receipts.Delete(id)
	})
}

// List lista recepciones con paginación.
func (uc *UseCase) List(limit, offset int) ([]dto.ReceiptResponse, error) {
	list, err := uc.receipts.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toReceiptResponses(list), nil
}

// ListByStatus lista recepciones por estado.
func (uc *UseCase) ListByStatus(status string) ([]dto.ReceiptResponse, error) {
	list, err := uc.receipts.ListByStatus(document.Status(status))
	if err != nil {
		return nil, err
	}
	return toReceiptResponses(list), nil
}

// ListByUser lista recepciones de un usuario.
func (uc *UseCase) ListByUser(userID string) ([]dto.ReceiptResponse, error) {
	list, err := uc.receipts.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return toReceiptResponses(list), nil
}

// ListByWarehouse lista recepciones de una bodega.
func (uc *UseCase) ListByWarehouse(warehouseID string) ([]dto.ReceiptResponse, error) {
	list, err := uc.receipts.ListByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	return toReceiptResponses(list), nil
}

// ListByDateRange lista recepciones por rango de fecha de recepción.
func (uc *UseCase) ListByDateRange(start, end time.Time) ([]dto.ReceiptResponse, error) {
	list, err := uc.receipts.ListByDateRange(start, end)
	if err != nil {
		return nil, err
	}
	return toReceiptResponses(list), nil
}

// SearchBySupplier busca recepciones por proveedor (substring).
func (uc *UseCase) SearchBySupplier(supplier string) ([]dto.ReceiptResponse, error) {
	list, err := uc.receipts.SearchBySupplier(supplier)
	if err != nil {
		return nil, err
	}
	return toReceiptResponses(list), nil
}

// Receive transiciona la recepción PENDING -> RECEIVED: por cada línea
// aumenta el stock del item, asienta un INBOUND en el ledger y fija la
// cantidad recibida. Todo en una transacción.
func (uc *UseCase) Receive(ctx context.Context, id string) (*dto.ReceiptResponse, error) {
	var out *dto.ReceiptResponse
	err := uc.tx.Run(ctx, func(r *stock.Repos) error {
		rec, err := r.Receipts.GetByID(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return domain.ErrNotFound
		}
		next, err := document.ReceiptTransitions.Next(rec.Status, document.ActionReceive)
		if err != nil {
			return err
		}
		now := uc.clock.Now()
		ledger := stock.NewLedger(r, now)
		lines, err := r.ReceiptItems.ListByReceipt(rec.ID)
		if err != nil {
			return err
		}
		for _, line := range lines {
			acct := stock.ItemAccount(r, line.ItemID)
			if _, err := acct.Increase(line.OrderedQuantity); err != nil {
				return err
			}
			_, err := ledger.Append(stock.Entry{
				Type:        entity.TransactionInbound,
				EntityType:  entity.EntityItems,
				ItemID:      line.ItemID,
				WarehouseID: rec.WarehouseID,
				UserID:      rec.UserID,
				Quantity:    line.OrderedQuantity,
				UnitPrice:   line.UnitPrice,
				Reference:   "RECEIPT-" + rec.ReceiptNumber,
				Notes:       fmt.Sprintf("Material receipt - %s from %s", rec.ReceiptNumber, rec.Supplier),
			})
			if err != nil {
				return err
			}
			line.ReceivedQuantity = line.OrderedQuantity
			line.UpdatedAt = now
			if err := r.ReceiptItems.Update(line); err != nil {
				return err
			}
		}
		rec.Status = next
		rec.ReceivedDate = &now
		rec.UpdatedAt = now
		if err := r.Receipts.Update(rec); err != nil {
			return err
		}
		out = toReceiptResponse(rec)
		return nil
	})
	return out, err
}

// Cancel transiciona la recepción a CANCELLED. No hay reversa de stock.
func (uc *UseCase) Cancel(ctx context.Context, id string) (*dto.ReceiptResponse, error) {
	var out *dto.ReceiptResponse
	err := uc.tx.Run(ctx, func(r *stock.Repos) error {
		rec, err := r.Receipts.GetByID(id)
		if err != nil {
			return err
		}
		if rec == nil {
			return domain.ErrNotFound
		}
		next, err := document.ReceiptTransitions.Next(rec.Status, document.ActionCancel)
		if err != nil {
			return err
		}
		rec.Status = next
		rec.UpdatedAt = uc.clock.Now()
		if err := r.Receipts.Update(rec); err != nil {
			return err
		}
		out = toReceiptResponse(rec)
		return nil
	})
	return out, err
}

// ListItems lista las líneas de la recepción.
func (uc *UseCase) ListItems(receiptID string) ([]dto.ReceiptItemResponse, error) {
	rec, err := uc.receipts.GetByID(receiptID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.lines.ListByReceipt(receiptID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReceiptItemResponse, 0, len(lines))
	for _, line := range lines {
		out = append(out, *toReceiptItemResponse(line))
	}
	return out, nil
}

// AddItem agrega una línea a la recepción y recalcula el total releyendo
// todas las líneas vigentes.
func (uc *UseCase) AddItem(ctx context.Context, receiptID string, in dto.AddReceiptItemRequest) (*dto.ReceiptItemResponse, error) {
	if !in.OrderedQuantity.IsPositive() {
		return nil, fmt.Errorf("%w: la cantidad pedida debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if in.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: el precio unitario no puede ser negativo", domain.ErrInvalidInput)
	}
	var out *dto.ReceiptItemResponse
	err := uc.tx.Run(ctx, func(r *stock.Repos) error {
		rec, err := r.Receipts.GetByID(receiptID)
		if err != nil {
			return err
		}
		if rec == nil {
			return domain.ErrNotFound
		}
		item, err := r.Items.GetByID(in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		now := uc.clock.Now()
		line := &entity.MaterialReceiptItem{
			ID:              uuid.New().String(),
			ReceiptID:       rec.ID,
			ItemID:          item.ID,
			ItemCode:        item.Code,
			ItemName:        item.Name,
			OrderedQuantity: in.OrderedQuantity,
			UnitPrice:       in.UnitPrice,
			TotalPrice:      document.LineTotal(in.OrderedQuantity, in.UnitPrice),
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := r.ReceiptItems.Create(line); err != nil {
			return err
		}
		if err := recomputeTotal(r, rec.ID); err != nil {
			return err
		}
		out = toReceiptItemResponse(line)
		return nil
	})
	return out, err
}

// UpdateItem actualiza una línea de la recepción y recalcula el total.
func (uc *UseCase) UpdateItem(ctx context.Context, receiptID, lineID string, in dto.UpdateReceiptItemRequest) (*dto.ReceiptItemResponse, error) {
	if !in.OrderedQuantity.IsPositive() {
		return nil, fmt.Errorf("%w: la cantidad pedida debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if in.ReceivedQuantity.IsNegative() || in.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: cantidades y precios no pueden ser negativos", domain.ErrInvalidInput)
	}
	var out *dto.ReceiptItemResponse
	err := uc.tx.Run(ctx, func(r *stock.Repos) error {
		line, err := r.ReceiptItems.GetByID(lineID)
		if err != nil {
			return err
		}
		if line == nil || line.ReceiptID != receiptID {
			return domain.ErrNotFound
		}
		if in.ItemID != "" && in.ItemID != line.ItemID {
			item, err := r.Items.GetByID(in.ItemID)
			if err != nil {
				return err
			}
			if item == nil {
				return domain.ErrNotFound
			}
			line.ItemID = item.ID
			line.ItemCode = item.Code
			line.ItemName = item.Name
		}
		line.OrderedQuantity = in.OrderedQuantity
		line.ReceivedQuantity = in.ReceivedQuantity
		line.UnitPrice = in.UnitPrice
		line.TotalPrice = document.LineTotal(in.OrderedQuantity, in.UnitPrice)
		line.UpdatedAt = uc.clock.Now()
		if err := r.ReceiptItems.Update(line); err != nil {
			return err
		}
		if err := recomputeTotal(r, receiptID); err != nil {
			return err
		}
		out = toReceiptItemResponse(line)
		return nil
	})
	return out, err
}

// RemoveItem elimina una línea de la recepción y recalcula el total.
func (uc *UseCase) RemoveItem(ctx context.Context, receiptID, lineID string) error {
	return uc.tx.Run(ctx, func(r *stock.Repos) error {
		line, err := r.ReceiptItems.GetByID(lineID)
		if err != nil {
			return err
		}
		if line == nil || line.ReceiptID != receiptID {
			return domain.ErrNotFound
		}
		if err := r.ReceiptItems.Delete(lineID); err != nil {
			return err
		}
		return recomputeTotal(r, receiptID)
	})
}

func recomputeTotal(r *stock.Repos, receiptID string) error {
	lines, err := r.ReceiptItems.ListByReceipt(receiptID)
	if err != nil {
		return err
	}
	return r.Receipts.UpdateTotalAmount(receiptID, document.SumTotals(lines))
}

func toReceiptResponse(m *entity.MaterialReceipt) *dto.ReceiptResponse {
	return &dto.ReceiptResponse{
		ID:            m.ID,
		ReceiptNumber: m.ReceiptNumber,
		WarehouseID:   m.WarehouseID,
		UserID:        m.UserID,
		Status:        string(m.Status),
		ReceiptDate:   m.ReceiptDate,
		ReceivedDate:  m.ReceivedDate,
		TotalAmount:   m.TotalAmount,
		Notes:         m.Notes,
		Supplier:      m.Supplier,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toReceiptResponses(list []*entity.MaterialReceipt) []dto.ReceiptResponse {
	out := make([]dto.ReceiptResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toReceiptResponse(m))
	}
	return out
}

func toReceiptItemResponse(i *entity.MaterialReceiptItem) *dto.ReceiptItemResponse {
	return &dto.ReceiptItemResponse{
		ID:               i.ID,
		ReceiptID:        i.ReceiptID,
		ItemID:           i.ItemID,
		ItemCode:         i.ItemCode,
		ItemName:         i.ItemName,
		OrderedQuantity:  i.OrderedQuantity,
		ReceivedQuantity: i.ReceivedQuantity,
		UnitPrice:        i.UnitPrice,
		TotalPrice:       i.TotalPrice,
	}
}
