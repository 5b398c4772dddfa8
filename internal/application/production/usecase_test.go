package production_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/production"
	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/application/stock/stocktest"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/pkg/refnum"
)

var testNow = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

const testProductID = "product-1"

type fixture struct {
	uc     *production.UseCase
	repos  *stock.Repos
	ledger *stocktest.TransactionRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repos := stocktest.NewRepos()
	clock := stocktest.Clock{T: testNow}
	uc := production.NewUseCase(
		repos.Productions,
		repos.ProductionItems,
		repos.Items,
		repos.Products,
		stocktest.Runner{Repos: repos},
		refnum.NewMillisGenerator(clock),
		clock,
	)
	f := &fixture{
		uc:     uc,
		repos:  repos,
		ledger: repos.Transactions.(*stocktest.TransactionRepo),
	}
	require.NoError(t, repos.Products.Create(&entity.Product{
		ID:        testProductID,
		Code:      "PT-001",
		Name:      "Pan campesino",
		SalePrice: decimal.RequireFromString("8.00"),
		Quantity:  decimal.Zero,
	}))
	return f
}

func (f *fixture) seedItem(t *testing.T, id, name, qty string) {
	t.Helper()
	require.NoError(t, f.repos.Items.Create(&entity.Item{
		ID:       id,
		Code:     "MAT-" + id,
		Name:     name,
		Quantity: decimal.RequireFromString(qty),
	}))
}

func (f *fixture) createProduction(t *testing.T, plannedQty string) *dto.ProductionResponse {
	t.Helper()
	out, err := f.uc.Create(dto.CreateProductionRequest{
		ProductID:       testProductID,
		WarehouseID:     "wh-1",
		UserID:          "user-1",
		PlannedQuantity: decimal.RequireFromString(plannedQty),
	})
	require.NoError(t, err)
	return out
}

func (f *fixture) addLine(t *testing.T, productionID, itemID, required, cost string) *dto.ProductionItemResponse {
	t.Helper()
	line, err := f.uc.AddItem(context.Background(), productionID, dto.AddProductionItemRequest{
		ItemID:           itemID,
		RequiredQuantity: decimal.RequireFromString(required),
		UnitCost:         decimal.RequireFromString(cost),
	})
	require.NoError(t, err)
	return line
}

func (f *fixture) itemQty(t *testing.T, id string) decimal.Decimal {
	t.Helper()
	item, err := f.repos.Items.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, item)
	return item.Quantity
}

func (f *fixture) productQty(t *testing.T) decimal.Decimal {
	t.Helper()
	product, err := f.repos.Products.GetByID(testProductID)
	require.NoError(t, err)
	require.NotNil(t, product)
	return product.Quantity
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_NacePlannedConCostoCero(t *testing.T) {
	f := newFixture(t)
	out := f.createProduction(t, "10.000")

	assert.Equal(t, "PLANNED", out.Status)
	assert.True(t, out.TotalCost.IsZero())
	assert.True(t, out.ProducedQuantity.IsZero())
	assert.True(t, strings.HasPrefix(out.ProductionNumber, "PROD-"), "fue %q", out.ProductionNumber)
}

func TestCreate_ProductoInexistenteFalla(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Create(dto.CreateProductionRequest{
		ProductID:       "no-existe",
		WarehouseID:     "wh-1",
		UserID:          "user-1",
		PlannedQuantity: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_CantidadPlanificadaNoPositivaFalla(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Create(dto.CreateProductionRequest{
		ProductID:       testProductID,
		WarehouseID:     "wh-1",
		UserID:          "user-1",
		PlannedQuantity: decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Start — validación previa de stock sobre todas las líneas
// ──────────────────────────────────────────────────────────────────────────────

func TestStart_DescuentaStockYAsientaConsumo(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "item-1", "Harina", "10.000")
	f.seedItem(t, "item-2", "Levadura", "2.000")
	prod := f.createProduction(t, "5.000")
	f.addLine(t, prod.ID, "item-1", "4.000", "1.50")
	f.addLine(t, prod.ID, "item-2", "0.500", "6.00")

	out, err := f.uc.Start(context.Background(), prod.ID)
	require.NoError(t, err)

	assert.Equal(t, "IN_PROGRESS", out.Status)
	require.NotNil(t, out.StartDate)
	assert.Equal(t, testNow, *out.StartDate)

	assert.True(t, f.itemQty(t, "item-1").Equal(decimal.RequireFromString("6.000")))
	assert.True(t, f.itemQty(t, "item-2").Equal(decimal.RequireFromString("1.500")))

	entries := f.ledger.All()
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, entity.TransactionProduction, e.TransactionType)
		assert.Equal(t, entity.EntityItems, e.EntityType)
		assert.Equal(t, "PROD-"+out.ProductionNumber, e.ReferenceNumber)
	}

	lines, err := f.uc.ListItems(prod.ID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.True(t, line.UsedQuantity.Equal(line.RequiredQuantity),
			"al iniciar, la cantidad usada queda fijada en la requerida")
	}
}

// Si alguna línea no alcanza, nada se muta: ni stock, ni líneas, ni estado.
func TestStart_StockInsuficienteNoMutaNada(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "item-1", "Harina", "10.000")
	f.seedItem(t, "item-2", "Levadura", "0.100")
	prod := f.createProduction(t, "5.000")
	f.addLine(t, prod.ID, "item-1", "4.000", "1.50")
	f.addLine(t, prod.ID, "item-2", "0.500", "6.00")

	_, err := f.uc.Start(context.Background(), prod.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "Levadura", "el error debe nombrar el item que no alcanza")

	// Ni siquiera la primera línea (que sí alcanzaba) se descuenta.
	assert.True(t, f.itemQty(t, "item-1").Equal(decimal.RequireFromString("10.000")))
	assert.True(t, f.itemQty(t, "item-2").Equal(decimal.RequireFromString("0.100")))
	assert.Empty(t, f.ledger.All())

	got, err := f.uc.GetByID(prod.ID)
	require.NoError(t, err)
	assert.Equal(t, "PLANNED", got.Status)

	lines, err := f.uc.ListItems(prod.ID)
	require.NoError(t, err)
	for _, line := range lines {
		assert.True(t, line.UsedQuantity.IsZero())
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Complete
// ──────────────────────────────────────────────────────────────────────────────

func TestComplete_SumaProductoTerminado(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "item-1", "Harina", "10.000")
	prod := f.createProduction(t, "5.000")
	f.addLine(t, prod.ID, "item-1", "4.000", "1.50")
	ctx := context.Background()

	_, err := f.uc.Start(ctx, prod.ID)
	require.NoError(t, err)

	out, err := f.uc.Complete(ctx, prod.ID)
	require.NoError(t, err)

	assert.Equal(t, "COMPLETED", out.Status)
	assert.True(t, out.ProducedQuantity.Equal(decimal.RequireFromString("5.000")))
	require.NotNil(t, out.EndDate)
	assert.True(t, f.productQty(t).Equal(decimal.RequireFromString("5.000")))

	// Consumo al iniciar + salida de producto al completar.
	entries := f.ledger.All()
	require.Len(t, entries, 2)
	last := entries[len(entries)-1]
	assert.Equal(t, entity.TransactionProduction, last.TransactionType)
	assert.Equal(t, entity.EntityProducts, last.EntityType)
	assert.Equal(t, testProductID, last.ProductID)
	assert.True(t, last.UnitPrice.Equal(decimal.RequireFromString("8.00")),
		"la salida de producto se asienta al precio de venta")
}

func TestComplete_SinIniciarFalla(t *testing.T) {
	f := newFixture(t)
	prod := f.createProduction(t, "5.000")

	_, err := f.uc.Complete(context.Background(), prod.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.True(t, f.productQty(t).IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Cancel — devolución de stock consumido
// ──────────────────────────────────────────────────────────────────────────────

func TestCancel_EnProgresoDevuelveStockConsumido(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "item-1", "Harina", "10.000")
	prod := f.createProduction(t, "5.000")
	f.addLine(t, prod.ID, "item-1", "4.000", "1.50")
	ctx := context.Background()

	_, err := f.uc.Start(ctx, prod.ID)
	require.NoError(t, err)
	require.True(t, f.itemQty(t, "item-1").Equal(decimal.RequireFromString("6.000")))

	out, err := f.uc.Cancel(ctx, prod.ID)
	require.NoError(t, err)

	assert.Equal(t, "CANCELLED", out.Status)
	assert.True(t, f.itemQty(t, "item-1").Equal(decimal.RequireFromString("10.000")),
		"cancelar en progreso devuelve el stock consumido")

	// El asiento de devolución es un ADJUSTMENT con referencia de cancelación.
	entries := f.ledger.All()
	require.Len(t, entries, 2)
	ret := entries[len(entries)-1]
	assert.Equal(t, entity.TransactionAdjustment, ret.TransactionType)
	assert.Equal(t, "PROD-CANCEL-"+out.ProductionNumber, ret.ReferenceNumber)

	// La cantidad usada NO se reinicia: queda como rastro.
	lines, err := f.uc.ListItems(prod.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.True(t, lines[0].UsedQuantity.Equal(decimal.RequireFromString("4.000")))
}

func TestCancel_PlanificadaNoTocaStock(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "item-1", "Harina", "10.000")
	prod := f.createProduction(t, "5.000")
	f.addLine(t, prod.ID, "item-1", "4.000", "1.50")

	out, err := f.uc.Cancel(context.Background(), prod.ID)
	require.NoError(t, err)

	assert.Equal(t, "CANCELLED", out.Status)
	assert.True(t, f.itemQty(t, "item-1").Equal(decimal.RequireFromString("10.000")))
	assert.Empty(t, f.ledger.All())
}

func TestCancel_CompletadaFalla(t *testing.T) {
	f := newFixture(t)
	prod := f.createProduction(t, "5.000")
	ctx := context.Background()

	_, err := f.uc.Start(ctx, prod.ID)
	require.NoError(t, err)
	_, err = f.uc.Complete(ctx, prod.ID)
	require.NoError(t, err)

	_, err = f.uc.Cancel(ctx, prod.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// ──────────────────────────────────────────────────────────────────────────────
// Líneas
// ──────────────────────────────────────────────────────────────────────────────

func TestAddItem_RecalculaCostoTotal(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "item-1", "Harina", "0")
	f.seedItem(t, "item-2", "Levadura", "0")
	prod := f.createProduction(t, "5.000")

	f.addLine(t, prod.ID, "item-1", "4.000", "1.50")
	f.addLine(t, prod.ID, "item-2", "0.500", "6.00")

	got, err := f.uc.GetByID(prod.ID)
	require.NoError(t, err)
	assert.True(t, got.TotalCost.Equal(decimal.RequireFromString("9.00")),
		"costo total = 4×1.50 + 0.5×6.00")
}
