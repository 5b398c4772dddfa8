// Package order implementa el flujo de órdenes de compra: CRUD, líneas con
// recálculo de total y las transiciones confirm/receive/cancel. El stock solo
// se afecta al recibir; recibir y asentar en el ledger comparten transacción.
package order

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

// UseCase casos de uso del flujo de órdenes.
type UseCase struct {
	orders  repository.OrderRepository
	lines   repository.OrderItemRepository
	items   repository.ItemRepository
	tx      stock.TxRunner
	numbers refnum.Generator
	clock   refnum.Clock
}

// NewUseCase construye el caso de uso. Las lecturas usan los repos directos;
// toda mutación con efectos cruzados pasa por el TxRunner.
func NewUseCase(
	orders repository.OrderRepository,
	lines repository.OrderItemRepository,
	items repository.ItemRepository,
	tx stock.TxRunner,
	numbers refnum.Generator,
	clock refnum.Clock,
) *UseCase {
	if clock == nil {
		clock = refnum.SystemClock{}
	}
	return &UseCase{orders: orders, lines: lines, items: items, tx: tx, numbers: numbers, clock: clock}
}

// Create crea una orden en estado PENDING con total cero. Si no viene número
// se genera ORD-<epoch millis>.
func (uc *UseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	now := uc.clock.Now()
	number := in.OrderNumber
	if number == "" {
		number = uc.numbers.Next(refnum.PrefixOrder)
	}
	orderDate := now
	if in.OrderDate != nil {
		orderDate = *in.OrderDate
	}
	ord := &entity.Order{
		ID:          uuid.New().String(),
		OrderNumber: number,
		WarehouseID: in.WarehouseID,
		UserID:      in.UserID,
		Status:      document.OrderPending,
		OrderDate:   orderDate,
		TotalAmount: decimal.Zero,
		Notes:       in.Notes,
		Supplier:    in.Supplier,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.orders.Create(ord); err != nil {
		return nil, err
	}
	return toOrderResponse(ord), nil
}

// GetByID obtiene una orden por ID.
func (uc *UseCase) GetByID(id string) (*dto.OrderResponse, error) {
	ord, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(ord), nil
}

// GetByNumber obtiene una orden por su número.
func (uc *UseCase) GetByNumber(number string) (*dto.OrderResponse, error) {
	ord, err := uc.orders.GetByNumber(number)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, domain.ErrNotFound
	}
	return toOrderResponse(ord), nil
}

// Update actualiza los campos editables de la orden. El estado y el total no
// se tocan por esta vía: el estado lo gobiernan las transiciones y el total el
// recálculo de líneas.
func (uc *UseCase) Update(id string, in dto.UpdateOrderRequest) (*dto.OrderResponse, error) {
	ord, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, domain.ErrNotFound
	}
	if in.WarehouseID != "" {
		ord.WarehouseID = in.WarehouseID
	}
	if in.UserID != "" {
		ord.UserID = in.UserID
	}
	if in.OrderDate != nil {
		ord.OrderDate = *in.OrderDate
	}
	ord.Notes = in.Notes
	ord.Supplier = in.Supplier
	ord.UpdatedAt = uc.clock.Now()
	if err := uc.orders.Update(ord); err != nil {
		return nil, err
	}
	return toOrderResponse(ord), nil
}

// Delete elimina la orden y todas sus líneas en una sola transacción.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(r *stock.Repos) error {
		ord, err := r.Orders.GetByID(id)
		if err != nil {
			return err
		}
		if ord == nil {
			return domain.ErrNotFound
		}
		if err := r.OrderItems.DeleteByOrder(id); err != nil {
			return err
		}
		return r.Orders.Delete(id)
	})
}

// List lista órdenes con paginación.
func (uc *UseCase) List(limit, offset int) ([]dto.OrderResponse, error) {
	list, err := uc.orders.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// ListByStatus lista órdenes por estado.
func (uc *UseCase) ListByStatus(status string) ([]dto.OrderResponse, error) {
	list, err := uc.orders.ListByStatus(document.Status(status))
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// ListByUser lista órdenes de un usuario.
func (uc *UseCase) ListByUser(userID string) ([]dto.OrderResponse, error) {
	list, err := uc.orders.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// ListByWarehouse lista órdenes de una bodega.
func (uc *UseCase) ListByWarehouse(warehouseID string) ([]dto.OrderResponse, error) {
	list, err := uc.orders.ListByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// ListByDateRange lista órdenes por rango de fecha de orden.
func (uc *UseCase) ListByDateRange(start, end time.Time) ([]dto.OrderResponse, error) {
	list, err := uc.orders.ListByDateRange(start, end)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// SearchBySupplier busca órdenes por proveedor (substring).
func (uc *UseCase) SearchBySupplier(supplier string) ([]dto.OrderResponse, error) {
	list, err := uc.orders.SearchBySupplier(supplier)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(list), nil
}

// Confirm transiciona la orden PENDING -> CONFIRMED.
func (uc *UseCase) Confirm(ctx context.Context, id string) (*dto.OrderResponse, error) {
	var out *dto.OrderResponse
	err := uc.tx.Run(ctx, func(r *stock.Repos) error {
		ord, err := r.Orders.GetByID(id)
		if err != nil {
			return err
		}
		if ord == nil {
			return domain.ErrNotFound
		}
		next, err := document.OrderTransitions.Next(ord.Status, document.ActionConfirm)
		if err != nil {
			return err
		}
		ord.Status = next
		ord.UpdatedAt = uc.clock.Now()
		if err := r.Orders.Update(ord); err != nil {
			return err
		}
		out = toOrderResponse(ord)
		return nil
	})
	return out, err
}

// Receive transiciona la orden CONFIRMED -> RECEIVED: por cada línea aumenta
// el stock del item en la cantidad pedida, asienta un INBOUND en el ledger y
// fija la cantidad recibida. Todo en una transacción.
func (uc *UseCase) Receive(ctx context.Context, id string) (*dto.OrderResponse, error) {
	var out *dto.OrderResponse
	err := uc.tx.Run(ctx, func(r *stock.Repos) error {
		ord, err := r.Orders.GetByID(id)
		if err != nil {
			return err
		}
		if ord == nil {
			return domain.ErrNotFound
		}
		next, err := document.OrderTransitions.Next(ord.Status, document.ActionReceive)
		if err != nil {
			return err
		}
		now := uc.clock.Now()
		ledger := stock.NewLedger(r, now)
		lines, err := r.OrderItems.ListByOrder(ord.ID)
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
				WarehouseID: ord.WarehouseID,
				UserID:      ord.UserID,
				Quantity:    line.OrderedQuantity,
				UnitPrice:   line.UnitPrice,
				Reference:   "ORDER-" + ord.OrderNumber,
				Notes:       fmt.Sprintf("Order received - %s from %s", ord.OrderNumber, ord.Supplier),
			})
			if err != nil {
				return err
			}
			line.ReceivedQuantity = line.OrderedQuantity
			line.UpdatedAt = now
			if err := r.OrderItems.Update(line); err != nil {
				return err
			}
		}
		ord.Status = next
		ord.ReceivedDate = &now
		ord.UpdatedAt = now
		if err := r.Orders.Update(ord); err != nil {
			return err
		}
		out = toOrderResponse(ord)
		return nil
	})
	return out, err
}

// Cancel transiciona la orden a CANCELLED. No revierte stock: la orden nunca
// lo afectó antes de recibirse, y recibida ya no se puede cancelar.
func (uc *UseCase) Cancel(ctx context.Context, id string) (*dto.OrderResponse, error) {
	var out *dto.OrderResponse
	err := uc.tx.Run(ctx, func(r *stock.Repos) error {
		ord, err := r.Orders.GetByID(id)
		if err != nil {
			return err
		}
		if ord == nil {
			return domain.ErrNotFound
		}
		next, err := document.OrderTransitions.Next(ord.Status, document.ActionCancel)
		if err != nil {
			return err
		}
		ord.Status = next
		ord.UpdatedAt = uc.clock.Now()
		if err := r.Orders.Update(ord); err != nil {
			return err
		}
		out = toOrderResponse(ord)
		return nil
	})
	return out, err
}

// ListItems lista las líneas de la orden.
func (uc *UseCase) ListItems(orderID string) ([]dto.OrderItemResponse, error) {
	ord, err := uc.orders.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if ord == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.lines.ListByOrder(orderID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrderItemResponse, 0, len(lines))
	for _, line := range lines {
		out = append(out, *toOrderItemResponse(line))
	}
	return out, nil
}

// AddItem agrega una línea a la orden y recalcula el total del documento
// releyendo todas las líneas vigentes.
func (uc *UseCase) AddItem(ctx context.Context, orderID string, in dto.AddOrderItemRequest) (*dto.OrderItemResponse, error) {
	if !in.OrderedQuantity.IsPositive() {
		return nil, fmt.Errorf("%w: la cantidad pedida debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if in.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: el precio unitario no puede ser negativo", domain.ErrInvalidInput)
	}
	var out *dto.OrderItemResponse
	err := uc.tx.Run(ctx, func(r *stock.Repos) error {
		ord, err := r.Orders.GetByID(orderID)
		if err != nil {
			return err
		}
		if ord == nil {
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
		line := &entity.OrderItem{
			ID:              uuid.New().String(),
			OrderID:         ord.ID,
			ItemID:          item.ID,
			ItemCode:        item.Code,
			ItemName:        item.Name,
			OrderedQuantity: in.OrderedQuantity,
			UnitPrice:       in.UnitPrice,
			TotalPrice:      document.LineTotal(in.OrderedQuantity, in.UnitPrice),
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		if err := r.OrderItems.Create(line); err != nil {
			return err
		}
		if err := recomputeTotal(r, ord.ID); err != nil {
			return err
		}
		out = toOrderItemResponse(line)
		return nil
	})
	return out, err
}

// UpdateItem actualiza una línea de la orden y recalcula el total.
func (uc *UseCase) UpdateItem(ctx context.Context, orderID, lineID string, in dto.UpdateOrderItemRequest) (*dto.OrderItemResponse, error) {
	if !in.OrderedQuantity.IsPositive() {
		return nil, fmt.Errorf("%w: la cantidad pedida debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if in.ReceivedQuantity.IsNegative() || in.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("%w: cantidades y precios no pueden ser negativos", domain.ErrInvalidInput)
	}
	var out *dto.OrderItemResponse
	err := uc.tx.Run(ctx, func(r *stock.Repos) error {
		line, err := r.OrderItems.GetByID(lineID)
		if err != nil {
			return err
		}
		if line == nil || line.OrderID != orderID {
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
		if err := r.OrderItems.Update(line); err != nil {
			return err
		}
		if err := recomputeTotal(r, orderID); err != nil {
			return err
		}
		out = toOrderItemResponse(line)
		return nil
	})
	return out, err
}

// RemoveItem elimina una línea de la orden y recalcula el total.
func (uc *UseCase) RemoveItem(ctx context.Context, orderID, lineID string) error {
	return uc.tx.Run(ctx, func(r *stock.Repos) error {
		line, err := r.OrderItems.GetByID(lineID)
		if err != nil {
			return err
		}
		if line == nil || line.OrderID != orderID {
			return domain.ErrNotFound
		}
		if err := r.OrderItems.Delete(lineID); err != nil {
			return err
		}
		return recomputeTotal(r, orderID)
	})
}

// recomputeTotal relee todas las líneas vigentes y persiste la suma como
// total de la orden. Nunca aritmética incremental.
func recomputeTotal(r *stock.Repos, orderID string) error {
	lines, err := r.OrderItems.ListByOrder(orderID)
	if err != nil {
		return err
	}
	return r.Orders.UpdateTotalAmount(orderID, document.SumTotals(lines))
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	return &dto.OrderResponse{
		ID:           o.ID,
		OrderNumber:  o.OrderNumber,
		WarehouseID:  o.WarehouseID,
		UserID:       o.UserID,
		Status:       string(o.Status),
		OrderDate:    o.OrderDate,
		ReceivedDate: o.ReceivedDate,
		TotalAmount:  o.TotalAmount,
		Notes:        o.Notes,
		Supplier:     o.Supplier,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

func toOrderResponses(list []*entity.Order) []dto.OrderResponse {
	out := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		out = append(out, *toOrderResponse(o))
	}
	return out
}

func toOrderItemResponse(i *entity.OrderItem) *dto.OrderItemResponse {
	return &dto.OrderItemResponse{
		ID:               i.ID,
		OrderID:          i.OrderID,
		ItemID:           i.ItemID,
		ItemCode:         i.ItemCode,
		ItemName:         i.ItemName,
		OrderedQuantity:  i.OrderedQuantity,
		ReceivedQuantity: i.ReceivedQuantity,
		UnitPrice:        i.UnitPrice,
		TotalPrice:       i.TotalPrice,
	}
}
