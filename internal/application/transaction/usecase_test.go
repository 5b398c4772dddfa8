package transaction_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/application/stock/stocktest"
	"github.com/jhoicas/almacen-api/internal/application/transaction"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/pkg/refnum"
)

var testNow = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

type fixture struct {
	uc     *transaction.UseCase
	repos  *stock.Repos
	ledger *stocktest.TransactionRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repos := stocktest.NewRepos()
	clock := stocktest.Clock{T: testNow}
	uc := transaction.NewUseCase(
		repos.Transactions,
		stocktest.Runner{Repos: repos},
		refnum.NewMillisGenerator(clock),
		clock,
	)
	f := &fixture{
		uc:     uc,
		repos:  repos,
		ledger: repos.Transactions.(*stocktest.TransactionRepo),
	}
	require.NoError(t, repos.Items.Create(&entity.Item{
		ID:       "item-1",
		Code:     "MAT-001",
		Name:     "Harina",
		Quantity: decimal.RequireFromString("5.000"),
	}))
	require.NoError(t, repos.Products.Create(&entity.Product{
		ID:       "product-1",
		Code:     "PT-001",
		Name:     "Pan",
		Quantity: decimal.RequireFromString("2.000"),
	}))
	return f
}

func (f *fixture) itemQty(t *testing.T) decimal.Decimal {
	t.Helper()
	item, err := f.repos.Items.GetByID("item-1")
	require.NoError(t, err)
	require.NotNil(t, item)
	return item.Quantity
}

func (f *fixture) productQty(t *testing.T) decimal.Decimal {
	t.Helper()
	product, err := f.repos.Products.GetByID("product-1")
	require.NoError(t, err)
	require.NotNil(t, product)
	return product.Quantity
}

func quickReq(qty, price string) dto.QuickTransactionRequest {
	return dto.QuickTransactionRequest{
		WarehouseID: "wh-1",
		UserID:      "user-1",
		Quantity:    decimal.RequireFromString(qty),
		UnitPrice:   decimal.RequireFromString(price),
		Notes:       "movimiento de prueba",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Transacciones rápidas
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateItemInbound_SumaStockYAsienta(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.CreateItemInbound(context.Background(), "item-1", quickReq("2.000", "1.50"))
	require.NoError(t, err)

	assert.Equal(t, string(entity.TransactionInbound), out.TransactionType)
	assert.Equal(t, string(entity.EntityItems), out.EntityType)
	assert.Equal(t, "item-1", out.ItemID)
	assert.True(t, out.TotalPrice.Equal(decimal.RequireFromString("3.00")))
	assert.True(t, strings.HasPrefix(out.ReferenceNumber, "TXN-"),
		"la referencia se genera TXN-<epoch millis>, fue %q", out.ReferenceNumber)

	assert.True(t, f.itemQty(t).Equal(decimal.RequireFromString("7.000")))
	assert.Len(t, f.ledger.All(), 1)
}

func TestCreateItemOutbound_RestaStock(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.CreateItemOutbound(context.Background(), "item-1", quickReq("4.000", "1.50"))
	require.NoError(t, err)

	assert.Equal(t, string(entity.TransactionOutbound), out.TransactionType)
	assert.True(t, f.itemQty(t).Equal(decimal.RequireFromString("1.000")))
}

func TestCreateItemOutbound_StockInsuficienteNoAsienta(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.CreateItemOutbound(context.Background(), "item-1", quickReq("5.001", "1.50"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.True(t, f.itemQty(t).Equal(decimal.RequireFromString("5.000")),
		"la salida rechazada no debe tocar el stock")
	assert.Empty(t, f.ledger.All(), "la salida rechazada no debe dejar asiento")
}

func TestCreateProductOutbound_OperaSobreProducto(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.CreateProductOutbound(context.Background(), "product-1", quickReq("1.000", "8.00"))
	require.NoError(t, err)

	assert.Equal(t, string(entity.EntityProducts), out.EntityType)
	assert.Equal(t, "product-1", out.ProductID)
	assert.Empty(t, out.ItemID)
	assert.True(t, f.productQty(t).Equal(decimal.RequireFromString("1.000")))
	// El stock del item no se mueve.
	assert.True(t, f.itemQty(t).Equal(decimal.RequireFromString("5.000")))
}

func TestQuick_CantidadNoPositivaFalla(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.CreateItemInbound(context.Background(), "item-1", dto.QuickTransactionRequest{
		Quantity:  decimal.Zero,
		UnitPrice: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, f.ledger.All())
}

func TestQuick_PrecioNegativoFalla(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.CreateItemInbound(context.Background(), "item-1", dto.QuickTransactionRequest{
		Quantity:  decimal.NewFromInt(1),
		UnitPrice: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestQuick_CuentaInexistenteFalla(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.CreateItemInbound(context.Background(), "no-existe", quickReq("1.000", "1.00"))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD independiente — no mueve stock
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_AltaDirectaNoMueveStock(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Create(dto.CreateTransactionRequest{
		TransactionType: string(entity.TransactionAdjustment),
		EntityType:      string(entity.EntityItems),
		ItemID:          "item-1",
		WarehouseID:     "wh-1",
		UserID:          "user-1",
		Quantity:        decimal.RequireFromString("3.000"),
		UnitPrice:       decimal.RequireFromString("2.00"),
	})
	require.NoError(t, err)

	assert.True(t, out.TotalPrice.Equal(decimal.RequireFromString("6.00")))
	assert.Equal(t, string(entity.TransactionCompleted), out.Status, "sin status explícito nace COMPLETED")
	assert.True(t, strings.HasPrefix(out.ReferenceNumber, "TXN-"))

	// La API independiente solo registra: el stock queda intacto.
	assert.True(t, f.itemQty(t).Equal(decimal.RequireFromString("5.000")))
}

func TestCreate_CantidadNoPositivaFalla(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Create(dto.CreateTransactionRequest{
		TransactionType: string(entity.TransactionInbound),
		EntityType:      string(entity.EntityItems),
		Quantity:        decimal.Zero,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetByID_InexistenteRetornaNotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas
// ──────────────────────────────────────────────────────────────────────────────

func TestListByTypeYSearchByReference(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.CreateItemInbound(ctx, "item-1", quickReq("1.000", "1.00"))
	require.NoError(t, err)
	_, err = f.uc.CreateItemOutbound(ctx, "item-1", quickReq("1.000", "1.00"))
	require.NoError(t, err)

	inbound, err := f.uc.ListByType(string(entity.TransactionInbound))
	require.NoError(t, err)
	assert.Len(t, inbound, 1)

	byRef, err := f.uc.SearchByReference("TXN-")
	require.NoError(t, err)
	assert.Len(t, byRef, 2)
}

func TestListByItem_FiltraPorCuenta(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.CreateItemInbound(ctx, "item-1", quickReq("1.000", "1.00"))
	require.NoError(t, err)
	_, err = f.uc.CreateProductInbound(ctx, "product-1", quickReq("1.000", "1.00"))
	require.NoError(t, err)

	byItem, err := f.uc.ListByItem("item-1")
	require.NoError(t, err)
	require.Len(t, byItem, 1)
	assert.Equal(t, "item-1", byItem[0].ItemID)
}
