// Package production implementa el flujo de órdenes de producción: consumen
// items al iniciar (validación completa antes de escribir) y producen un
// product al completar. Cancelar en progreso devuelve el stock consumido.
package production

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

// UseCase casos de uso del flujo de producción.
type UseCase struct {
	productions repository.ProductionRepository
	lines       repository.ProductionItemRepository
	items       repository.ItemRepository
	products    repository.ProductRepository
	tx          stock.TxRunner
	numbers     refnum.Generator
	clock       refnum.Clock
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	productions repository.ProductionRepository,
	lines repository.ProductionItemRepository,
	items repository.ItemRepository,
	products repository.ProductRepository,
	tx stock.TxRunner,
	numbers refnum.Generator,
	clock refnum.Clock,
) *UseCase {
	if clock == nil {
		clock = refnum.SystemClock{}
	}
	return &UseCase{
		productions: productions,
		lines:       lines,
		items:       items,
		products:    products,
		tx:          tx,
		numbers:     numbers,
		clock:       clock,
	}
}

// Create crea una producción en estado PLANNED con costo cero. Si no viene
// número se genera PROD-<epoch millis>.
func (uc *UseCase) Create(in dto.CreateProductionRequest) (*dto.ProductionResponse, error) {
	if !in.PlannedQuantity.IsPositive() {
		return nil, fmt.Errorf("%w: la cantidad planificada debe ser mayor que cero", domain.ErrInvalidInput)
	}
	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	now := uc.clock.Now()
	number := in.ProductionNumber
	if number == "" {
		number = uc.numbers.Next(refnum.PrefixProduction)
	}
	plannedDate := now
	if in.PlannedDate != nil {
		plannedDate = *in.PlannedDate
	}
	prod := &entity.Production{
		ID:               uuid.New().String(),
		ProductionNumber: number,
		ProductID:        product.ID,
		WarehouseID:      in.WarehouseID,
		UserID:           in.UserID,
		PlannedQuantity:  in.PlannedQuantity,
		Status:           document.ProductionPlanned,
		PlannedDate:      plannedDate,
		Notes:            in.Notes,
		TotalCost:        decimal.Zero,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.productions.Create(prod); err != nil {
		return nil, err
	}
	return toProductionResponse(prod), nil
}

// GetByID obtiene una producción por ID.
func (uc *UseCase) GetByID(id string) (*dto.ProductionResponse, error) {
	prod, err := uc.productions.GetByID(id)
	if err != nil {
		return nil, err
	}
	if prod == nil {
		return nil, domain.ErrNotFound
	}
	return toProductionResponse(prod), nil
}

// GetByNumber obtiene una producción por su número.
func (uc *UseCase) GetByNumber(number string) (*dto.ProductionResponse, error) {
	prod, err := uc.productions.GetByNumber(number)
	if err != nil {
		return nil, err
	}
	if prod == nil {
		return nil, domain.ErrNotFound
	}
	return toProductionResponse(prod), nil
}

// Update actualiza los campos editables de la producción. Estado, cantidades
// producidas y costo total no se tocan por esta vía.
func (uc *UseCase) Update(id string, in dto.UpdateProductionRequest) (*dto.ProductionResponse, error) {
	prod, err := uc.productions.GetByID(id)
	if err != nil {
		return nil, err
	}
	if prod == nil {
		return nil, domain.ErrNotFound
	}
	if in.ProductID != "" && in.ProductID != prod.ProductID {
		product, err := uc.products.GetByID(in.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		prod.ProductID = product.ID
	}
	if in.WarehouseID != "" {
		prod.WarehouseID = in.WarehouseID
	}
	if in.UserID != "" {
		prod.UserID = in.UserID
	}
	if in.PlannedQuantity.IsPositive() {
		prod.PlannedQuantity = in.PlannedQuantity
	}
	if in.PlannedDate != nil {
		prod.PlannedDate = *in.PlannedDate
	}
	prod.Notes = in.Notes
	prod.UpdatedAt = uc.clock.Now()
	if err := uc.productions.Update(prod); err != nil {
		return nil, err
	}
	return toProductionResponse(prod), nil
}

// Delete elimina la producción y todas sus líneas en una sola transacción.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.tx.Run(ctx, func(r *stock.Repos) error {
		prod, err := r.Productions.GetByID(id)
		if err != nil {
			return err
		}
		if prod == nil {
			return domain.ErrNotFound
		}
		if err := r.ProductionItems.DeleteByProduction(id); err != nil {
			return err
		}
		return r.Productions.Delete(id)
	})
}

// List lista producciones con paginación.
func (uc *UseCase) List(limit, offset int) ([]dto.ProductionResponse, error) {
	list, err := uc.productions.List(limit, offset)
	if err != nil {
		return nil, err
	}
	return toProductionResponses(list), nil
}

// ListByStatus lista producciones por estado.
func (uc *UseCase) ListByStatus(status string) ([]dto.ProductionResponse, error) {
	list, err := uc.productions.ListByStatus(document.Status(status))
	if err != nil {
		return nil, err
	}
	return toProductionResponses(list), nil
}

// ListByUser lista producciones de un usuario.
func (uc *UseCase) ListByUser(userID string) ([]dto.ProductionResponse, error) {
	list, err := uc.productions.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return toProductionResponses(list), nil
}

// ListByWarehouse lista producciones de una bodega.
func (uc *UseCase) ListByWarehouse(warehouseID string) ([]dto.ProductionResponse, error) {
	list, err := uc.productions.ListByWarehouse(warehouseID)
	if err != nil {
		return nil, err
	}
	return toProductionResponses(list), nil
}

// ListByProduct lista producciones de un producto.
func (uc *UseCase) ListByProduct(productID string) ([]dto.ProductionResponse, error) {
	list, err := uc.productions.ListByProduct(productID)
	if err != nil {
		return nil, err
	}
	return toProductionResponses(list), nil
}

// ListByDateRange lista producciones por rango de fecha planificada.
func (uc *UseCase) ListByDateRange(start, end time.Time) ([]dto.ProductionResponse, error) {
	list, err := uc.productions.ListByDateRange(start, end)
	if err != nil {
		return nil, err
	}
	return toProductionResponses(list), nil
}

// Start transiciona la producción PLANNED -> IN_PROGRESS. Primero valida el
// stock de TODAS las líneas (bloqueando las filas) sin escribir nada; si
// alguna no alcanza falla con ErrInsufficientStock nombrando el item y no se
// muta ninguna línea. Recién después descuenta stock, asienta PRODUCTION en
// el ledger y fija la cantidad usada de cada línea.
func (uc *UseCase) Start(ctx context.Context, id string) (*dto.ProductionResponse, error) {
	var out *dto.ProductionResponse
	err := uc.tx.Run(ctx, func(r *stock.Repos) error {
		prod, err := r.Productions.GetByID(id)
		if err != nil {
			return err
		}
		if prod == nil {
			return domain.ErrNotFound
		}
		next, err := document.ProductionTransitions.Next(prod.Status, document.ActionStart)
		if err != nil {
			return err
		}
		lines, err := r.ProductionItems.ListByProduction(prod.ID)
		if err != nil {
			return err
		}
		for _, line := range lines {
			current, err := stock.ItemAccount(r, line.ItemID).Current()
			if err != nil {
				return err
			}
			if current.LessThan(line.RequiredQuantity) {
				return fmt.Errorf("%s: %w", line.ItemName, domain.ErrInsufficientStock)
			}
		}
		now := uc.clock.Now()
		ledger := stock.NewLedger(r, now)
		for _, line := range lines {
			acct := stock.ItemAccount(r, line.ItemID)
			if _, err := acct.Decrease(line.RequiredQuantity); err != nil {
				return err
			}
			_, err := ledger.Append(stock.Entry{
				Type:        entity.TransactionProduction,
				EntityType:  entity.EntityItems,
				ItemID:      line.ItemID,
				WarehouseID: prod.WarehouseID,
				UserID:      prod.UserID,
				Quantity:    line.RequiredQuantity,
				UnitPrice:   line.UnitCost,
				Reference:   "PROD-" + prod.ProductionNumber,
				Notes:       fmt.Sprintf("Production consumption - %s", prod.ProductionNumber),
			})
			if err != nil {
				return err
			}
			line.UsedQuantity = line.RequiredQuantity
			line.UpdatedAt = now
			if err := r.ProductionItems.Update(line); err != nil {
				return err
			}
		}
		prod.Status = next
		prod.StartDate = &now
		prod.UpdatedAt = now
		if err := r.Productions.Update(prod); err != nil {
			return err
		}
		out = toProductionResponse(prod)
		return nil
	})
	return out, err
}

// Complete transiciona la producción IN_PROGRESS -> COMPLETED: aumenta el
// stock del producto en la cantidad planificada, asienta PRODUCTION sobre
// PRODUCTS al precio de venta y fija la cantidad producida.
func (uc *UseCase) Complete(ctx context.Context, id string) (*dto.ProductionResponse, error) {
	var out *dto.ProductionResponse
	err := uc.tx.Run(ctx, func(r *stock.Repos) error {
		prod, err := r.Productions.GetByID(id)
		if err != nil {
			return err
		}
		if prod == nil {
			return domain.ErrNotFound
		}
		next, err := document.ProductionTransitions.Next(prod.Status, document.ActionComplete)
		if err != nil {
			return err
		}
		product, err := r.Products.GetByID(prod.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		now := uc.clock.Now()
		if _, err := stock.ProductAccount(r, product.ID).Increase(prod.PlannedQuantity); err != nil {
			return err
		}
		_, err = stock.NewLedger(r, now).Append(stock.Entry{
			Type:        entity.TransactionProduction,
			EntityType:  entity.EntityProducts,
			ProductID:   product.ID,
			WarehouseID: prod.WarehouseID,
			UserID:      prod.UserID,
			Quantity:    prod.PlannedQuantity,
			UnitPrice:   product.SalePrice,
			Reference:   "PROD-" + prod.ProductionNumber,
			Notes:       fmt.Sprintf("Production output - %s", prod.ProductionNumber),
		})
		if err != nil {
			return err
		}
		prod.Status = next
		prod.ProducedQuantity = prod.PlannedQuantity
		prod.EndDate = &now
		prod.UpdatedAt = now
		if err := r.Productions.Update(prod); err != nil {
			return err
		}
		out = toProductionResponse(prod)
		return nil
	})
	return out, err
}

// Cancel transiciona la producción a CANCELLED. Si estaba en progreso
// devuelve el stock consumido (líneas con cantidad usada > 0) con asientos
// ADJUSTMENT. La cantidad usada de las líneas NO se reinicia: queda como
// rastro de lo que llegó a consumirse.
func (uc *UseCase) Cancel(ctx context.Context, id string) (*dto.ProductionResponse, error) {
	var out *dto.ProductionResponse
	err := uc.tx.Run(ctx, func(r *stock.Repos) error {
		prod, err := r.Productions.GetByID(id)
		if err != nil {
			return err
		}
		if prod == nil {
			return domain.ErrNotFound
		}
		next, err := document.ProductionTransitions.Next(prod.Status, document.ActionCancel)
		if err != nil {
			return err
		}
		now := uc.clock.Now()
		if prod.Status == document.ProductionInProgress {
			ledger := stock.NewLedger(r, now)
			lines, err := r.ProductionItems.ListByProduction(prod.ID)
			if err != nil {
				return err
			}
			for _, line := range lines {
				if !line.UsedQuantity.IsPositive() {
					continue
				}
				if _, err := stock.ItemAccount(r, line.ItemID).Increase(line.UsedQuantity); err != nil {
					return err
				}
				_, err := ledger.Append(stock.Entry{
					Type:        entity.TransactionAdjustment,
					EntityType:  entity.EntityItems,
					ItemID:      line.ItemID,
					WarehouseID: prod.WarehouseID,
					UserID:      prod.UserID,
					Quantity:    line.UsedQuantity,
					UnitPrice:   line.UnitCost,
					Reference:   "PROD-CANCEL-" + prod.ProductionNumber,
					Notes:       fmt.Sprintf("Production cancellation return - %s", prod.ProductionNumber),
				})
				if err != nil {
					return err
				}
			}
		}
		prod.Status = next
		prod.EndDate = &now
		prod.UpdatedAt = now
		if err := r.Productions.Update(prod); err != nil {
			return err
		}
		out = toProductionResponse(prod)
		return nil
	})
	return out, err
}

// ListItems lista las líneas de la producción.
func (uc *UseCase) ListItems(productionID string) ([]dto.ProductionItemResponse, error) {
	prod, err := uc.productions.GetByID(productionID)
	if err != nil {
		return nil, err
	}
	if prod == nil {
		return nil, domain.ErrNotFound
	}
	lines, err := uc.lines.ListByProduction(productionID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductionItemResponse, 0, len(lines))
	for _, line := range lines {
		out = append(out, *toProductionItemResponse(line))
	}
	return out, nil
}

// AddItem agrega una línea de insumo y recalcula el costo total releyendo
// todas las líneas vigentes.
func (uc *UseCase) AddItem(ctx context.Context, productionID string, in dto.AddProductionItemRequest) (*dto.ProductionItemResponse, error) {
	if !in.RequiredQuantity.IsPositive() {
		return nil, fmt.Errorf("%w: la cantidad requerida debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if in.UnitCost.IsNegative() {
		return nil, fmt.Errorf("%w: el costo unitario no puede ser negativo", domain.ErrInvalidInput)
	}
	var out *dto.ProductionItemResponse
	err := uc.tx.Run(ctx, func(r *stock.Repos) error {
		prod, err := r.Productions.GetByID(productionID)
		if err != nil {
			return err
		}
		if prod == nil {
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
		line := &entity.ProductionItem{
			ID:               uuid.New().String(),
			ProductionID:     prod.ID,
			ItemID:           item.ID,
			ItemCode:         item.Code,
			ItemName:         item.Name,
			RequiredQuantity: in.RequiredQuantity,
			UnitCost:         in.UnitCost,
			TotalCost:        document.LineTotal(in.RequiredQuantity, in.UnitCost),
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := r.ProductionItems.Create(line); err != nil {
			return err
		}
		if err := recomputeTotal(r, prod.ID); err != nil {
			return err
		}
		out = toProductionItemResponse(line)
		return nil
	})
	return out, err
}

// UpdateItem actualiza una línea de insumo y recalcula el costo total.
func (uc *UseCase) UpdateItem(ctx context.Context, productionID, lineID string, in dto.UpdateProductionItemRequest) (*dto.ProductionItemResponse, error) {
	if !in.RequiredQuantity.IsPositive() {
		return nil, fmt.Errorf("%w: la cantidad requerida debe ser mayor que cero", domain.ErrInvalidInput)
	}
	if in.UnitCost.IsNegative() {
		return nil, fmt.Errorf("%w: el costo unitario no puede ser negativo", domain.ErrInvalidInput)
	}
	var out *dto.ProductionItemResponse
	err := uc.tx.Run(ctx, func(r *stock.Repos) error {
		line, err := r.ProductionItems.GetByID(lineID)
		if err != nil {
			return err
		}
		if line == nil || line.ProductionID != productionID {
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
		line.RequiredQuantity = in.RequiredQuantity
		line.UnitCost = in.UnitCost
		line.TotalCost = document.LineTotal(in.RequiredQuantity, in.UnitCost)
		line.UpdatedAt = uc.clock.Now()
		if err := r.ProductionItems.Update(line); err != nil {
			return err
		}
		if err := recomputeTotal(r, productionID); err != nil {
			return err
		}
		out = toProductionItemResponse(line)
		return nil
	})
	return out, err
}

// RemoveItem elimina una línea de insumo y recalcula el costo total.
func (uc *UseCase) RemoveItem(ctx context.Context, productionID, lineID string) error {
	return uc.tx.Run(ctx, func(r *stock.Repos) error {
		line, err := r.ProductionItems.GetByID(lineID)
		if err != nil {
			return err
		}
		if line == nil || line.ProductionID != productionID {
			return domain.ErrNotFound
		}
		if err := r.ProductionItems.Delete(lineID); err != nil {
			return err
		}
		return recomputeTotal(r, productionID)
	})
}

func recomputeTotal(r *stock.Repos, productionID string) error {
	lines, err := r.ProductionItems.ListByProduction(productionID)
	if err != nil {
		return err
	}
	return r.Productions.UpdateTotalCost(productionID, document.SumTotals(lines))
}

func toProductionResponse(p *entity.Production) *dto.ProductionResponse {
	return &dto.ProductionResponse{
		ID:               p.ID,
		ProductionNumber: p.ProductionNumber,
		ProductID:        p.ProductID,
		WarehouseID:      p.WarehouseID,
		UserID:           p.UserID,
		PlannedQuantity:  p.PlannedQuantity,
		ProducedQuantity: p.ProducedQuantity,
		Status:           string(p.Status),
		StartDate:        p.StartDate,
		EndDate:          p.EndDate,
		PlannedDate:      p.PlannedDate,
		Notes:            p.Notes,
		TotalCost:        p.TotalCost,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func toProductionResponses(list []*entity.Production) []dto.ProductionResponse {
	out := make([]dto.ProductionResponse, 0, len(list))
	for _, p := range list {
		out = append(out, *toProductionResponse(p))
	}
	return out
}

func toProductionItemResponse(i *entity.ProductionItem) *dto.ProductionItemResponse {
	return &dto.ProductionItemResponse{
		ID:               i.ID,
		ProductionID:     i.ProductionID,
		ItemID:           i.ItemID,
		ItemCode:         i.ItemCode,
		ItemName:         i.ItemName,
		RequiredQuantity: i.RequiredQuantity,
		UsedQuantity:     i.UsedQuantity,
		UnitCost:         i.UnitCost,
		TotalCost:        i.TotalCost,
	}
}
