package order_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/order"
	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/application/stock/stocktest"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/pkg/refnum"
)

var testNow = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

type fixture struct {
	uc     *order.UseCase
	repos  *stock.Repos
	ledger *stocktest.TransactionRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repos := stocktest.NewRepos()
	clock := stocktest.Clock{T: testNow}
	uc := order.NewUseCase(
		repos.Orders,
		repos.OrderItems,
		repos.Items,
		stocktest.Runner{Repos: repos},
		refnum.NewMillisGenerator(clock),
		clock,
	)
	return &fixture{
		uc:     uc,
		repos:  repos,
		ledger: repos.Transactions.(*stocktest.TransactionRepo),
	}
}

func (f *fixture) seedItem(t *testing.T, id, qty string) {
	t.Helper()
	require.NoError(t, f.repos.Items.Create(&entity.Item{
		ID:       id,
		Code:     "MAT-" + id,
		Name:     "Insumo " + id,
		Quantity: decimal.RequireFromString(qty),
	}))
}

func (f *fixture) createOrder(t *testing.T) *dto.OrderResponse {
	t.Helper()
	out, err := f.uc.Create(dto.CreateOrderRequest{
		WarehouseID: "wh-1",
		UserID:      "user-1",
		Supplier:    "Proveedor SA",
	})
	require.NoError(t, err)
	return out
}

func (f *fixture) itemQty(t *testing.T, id string) decimal.Decimal {
	t.Helper()
	item, err := f.repos.Items.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, item)
	return item.Quantity
}

func (f *fixture) orderTotal(t *testing.T, id string) decimal.Decimal {
	t.Helper()
	ord, err := f.repos.Orders.GetByID(id)
	require.NoError(t, err)
	require.NotNil(t, ord)
	return ord.TotalAmount
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_NacePendingConTotalCero(t *testing.T) {
	f := newFixture(t)
	out := f.createOrder(t)

	assert.Equal(t, "PENDING", out.Status)
	assert.True(t, out.TotalAmount.IsZero())
	assert.True(t, strings.HasPrefix(out.OrderNumber, "ORD-"),
		"sin número provisto se genera ORD-<epoch millis>, fue %q", out.OrderNumber)
}

func TestCreate_RespetaNumeroProvisto(t *testing.T) {
	f := newFixture(t)
	out, err := f.uc.Create(dto.CreateOrderRequest{
		OrderNumber: "ORD-CUSTOM-7",
		WarehouseID: "wh-1",
		UserID:      "user-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "ORD-CUSTOM-7", out.OrderNumber)
}

// ──────────────────────────────────────────────────────────────────────────────
// Líneas y total del documento
// ──────────────────────────────────────────────────────────────────────────────

func TestAddItem_RecalculaTotal(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "item-1", "0")
	f.seedItem(t, "item-2", "0")
	ord := f.createOrder(t)
	ctx := context.Background()

	line, err := f.uc.AddItem(ctx, ord.ID, dto.AddOrderItemRequest{
		ItemID:          "item-1",
		OrderedQuantity: decimal.RequireFromString("2.000"),
		UnitPrice:       decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)
	assert.True(t, line.TotalPrice.Equal(decimal.RequireFromString("20.00")))
	assert.True(t, f.orderTotal(t, ord.ID).Equal(decimal.RequireFromString("20.00")))

	_, err = f.uc.AddItem(ctx, ord.ID, dto.AddOrderItemRequest{
		ItemID:          "item-2",
		OrderedQuantity: decimal.RequireFromString("1.500"),
		UnitPrice:       decimal.RequireFromString("4.00"),
	})
	require.NoError(t, err)
	assert.True(t, f.orderTotal(t, ord.ID).Equal(decimal.RequireFromString("26.00")),
		"el total siempre es la suma de los totales de las líneas vigentes")
}

func TestAddItem_CantidadNoPositivaFalla(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "item-1", "0")
	ord := f.createOrder(t)

	_, err := f.uc.AddItem(context.Background(), ord.ID, dto.AddOrderItemRequest{
		ItemID:          "item-1",
		OrderedQuantity: decimal.Zero,
		UnitPrice:       decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAddItem_ItemInexistenteFalla(t *testing.T) {
	f := newFixture(t)
	ord := f.createOrder(t)

	_, err := f.uc.AddItem(context.Background(), ord.ID, dto.AddOrderItemRequest{
		ItemID:          "no-existe",
		OrderedQuantity: decimal.NewFromInt(1),
		UnitPrice:       decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateItem_RecalculaTotal(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "item-1", "0")
	ord := f.createOrder(t)
	ctx := context.Background()

	line, err := f.uc.AddItem(ctx, ord.ID, dto.AddOrderItemRequest{
		ItemID:          "item-1",
		OrderedQuantity: decimal.RequireFromString("2.000"),
		UnitPrice:       decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)

	updated, err := f.uc.UpdateItem(ctx, ord.ID, line.ID, dto.UpdateOrderItemRequest{
		OrderedQuantity: decimal.RequireFromString("3.000"),
		UnitPrice:       decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)
	assert.True(t, updated.TotalPrice.Equal(decimal.RequireFromString("30.00")))
	assert.True(t, f.orderTotal(t, ord.ID).Equal(decimal.RequireFromString("30.00")))
}

func TestUpdateItem_LineaDeOtraOrdenNoEsVisible(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "item-1", "0")
	ordA := f.createOrder(t)
	ordB := f.createOrder(t)
	ctx := context.Background()

	line, err := f.uc.AddItem(ctx, ordA.ID, dto.AddOrderItemRequest{
		ItemID:          "item-1",
		OrderedQuantity: decimal.NewFromInt(1),
		UnitPrice:       decimal.NewFromInt(1),
	})
	require.NoError(t, err)

	_, err = f.uc.UpdateItem(ctx, ordB.ID, line.ID, dto.UpdateOrderItemRequest{
		OrderedQuantity: decimal.NewFromInt(2),
		UnitPrice:       decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRemoveItem_RecalculaTotal(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "item-1", "0")
	f.seedItem(t, "item-2", "0")
	ord := f.createOrder(t)
	ctx := context.Background()

	line, err := f.uc.AddItem(ctx, ord.ID, dto.AddOrderItemRequest{
		ItemID:          "item-1",
		OrderedQuantity: decimal.RequireFromString("2.000"),
		UnitPrice:       decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)
	_, err = f.uc.AddItem(ctx, ord.ID, dto.AddOrderItemRequest{
		ItemID:          "item-2",
		OrderedQuantity: decimal.RequireFromString("1.000"),
		UnitPrice:       decimal.RequireFromString("4.00"),
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.RemoveItem(ctx, ord.ID, line.ID))
	assert.True(t, f.orderTotal(t, ord.ID).Equal(decimal.RequireFromString("4.00")))

	lines, err := f.uc.ListItems(ord.ID)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones
// ──────────────────────────────────────────────────────────────────────────────

func TestConfirm_PendingPasaAConfirmed(t *testing.T) {
	f := newFixture(t)
	ord := f.createOrder(t)

	out, err := f.uc.Confirm(context.Background(), ord.ID)
	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", out.Status)
}

func TestReceive_SinLineasSoloCambiaEstado(t *testing.T) {
	f := newFixture(t)
	ord := f.createOrder(t)
	ctx := context.Background()

	_, err := f.uc.Confirm(ctx, ord.ID)
	require.NoError(t, err)

	out, err := f.uc.Receive(ctx, ord.ID)
	require.NoError(t, err)

	assert.Equal(t, "RECEIVED", out.Status)
	require.NotNil(t, out.ReceivedDate)
	assert.Equal(t, testNow, *out.ReceivedDate)
	assert.Empty(t, f.ledger.All(), "una orden sin líneas no genera asientos")
}

func TestReceive_SumaStockYAsientaInbound(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "item-1", "5.000")
	ord := f.createOrder(t)
	ctx := context.Background()

	_, err := f.uc.AddItem(ctx, ord.ID, dto.AddOrderItemRequest{
		ItemID:          "item-1",
		OrderedQuantity: decimal.RequireFromString("3.000"),
		UnitPrice:       decimal.RequireFromString("2.00"),
	})
	require.NoError(t, err)
	_, err = f.uc.Confirm(ctx, ord.ID)
	require.NoError(t, err)

	out, err := f.uc.Receive(ctx, ord.ID)
	require.NoError(t, err)
	assert.Equal(t, "RECEIVED", out.Status)

	// Stock: 5 + 3 pedidas.
	assert.True(t, f.itemQty(t, "item-1").Equal(decimal.RequireFromString("8.000")))

	// Asiento INBOUND referenciando la orden.
	entries := f.ledger.All()
	require.Len(t, entries, 1)
	assert.Equal(t, entity.TransactionInbound, entries[0].TransactionType)
	assert.Equal(t, entity.EntityItems, entries[0].EntityType)
	assert.Equal(t, "item-1", entries[0].ItemID)
	assert.Equal(t, "ORDER-"+out.OrderNumber, entries[0].ReferenceNumber)
	assert.True(t, entries[0].TotalPrice.Equal(decimal.RequireFromString("6.00")))

	// La línea queda con la cantidad recibida fijada.
	lines, err := f.uc.ListItems(ord.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.True(t, lines[0].ReceivedQuantity.Equal(decimal.RequireFromString("3.000")))
}

func TestReceive_SinConfirmarFalla(t *testing.T) {
	f := newFixture(t)
	ord := f.createOrder(t)

	_, err := f.uc.Receive(context.Background(), ord.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// El estado no se toca.
	got, err := f.uc.GetByID(ord.ID)
	require.NoError(t, err)
	assert.Equal(t, "PENDING", got.Status)
}

func TestCancel_RecibidaFalla(t *testing.T) {
	f := newFixture(t)
	ord := f.createOrder(t)
	ctx := context.Background()

	_, err := f.uc.Confirm(ctx, ord.ID)
	require.NoError(t, err)
	_, err = f.uc.Receive(ctx, ord.ID)
	require.NoError(t, err)

	_, err = f.uc.Cancel(ctx, ord.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition,
		"una orden recibida ya afectó stock y no puede cancelarse")

	got, err := f.uc.GetByID(ord.ID)
	require.NoError(t, err)
	assert.Equal(t, "RECEIVED", got.Status)
}

func TestCancel_PendingNoTocaStockNiLedger(t *testing.T) {
	f := newFixture(t)
	ord := f.createOrder(t)

	out, err := f.uc.Cancel(context.Background(), ord.ID)
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", out.Status)
	assert.Empty(t, f.ledger.All())
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrado
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_EliminaOrdenYLineas(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "item-1", "0")
	ord := f.createOrder(t)
	ctx := context.Background()

	_, err := f.uc.AddItem(ctx, ord.ID, dto.AddOrderItemRequest{
		ItemID:          "item-1",
		OrderedQuantity: decimal.NewFromInt(1),
		UnitPrice:       decimal.NewFromInt(1),
	})
	require.NoError(t, err)

	require.NoError(t, f.uc.Delete(ctx, ord.ID))

	_, err = f.uc.GetByID(ord.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	lines, err := f.repos.OrderItems.ListByOrder(ord.ID)
	require.NoError(t, err)
	assert.Empty(t, lines, "las líneas se borran en cascada con la orden")
}

func TestDelete_InexistenteRetornaNotFound(t *testing.T) {
	f := newFixture(t)
	err := f.uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
