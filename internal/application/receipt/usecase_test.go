package receipt_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/receipt"
	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/application/stock/stocktest"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/pkg/refnum"
)

var testNow = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

type fixture struct {
	uc     *receipt.UseCase
	repos  *stock.Repos
	ledger *stocktest.TransactionRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repos := stocktest.NewRepos()
	clock := stocktest.Clock{T: testNow}
	uc := receipt.NewUseCase(
		repos.Receipts,
		repos.ReceiptItems,
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

func (f *fixture) createReceipt(t *testing.T) *dto.ReceiptResponse {
	t.Helper()
	out, err := f.uc.Create(dto.CreateReceiptRequest{
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

func TestCreate_NacePendingConNumeroRec(t *testing.T) {
	f := newFixture(t)
	out := f.createReceipt(t)

	assert.Equal(t, "PENDING", out.Status)
	assert.True(t, out.TotalAmount.IsZero())
	assert.True(t, strings.HasPrefix(out.ReceiptNumber, "REC-"), "fue %q", out.ReceiptNumber)
}

// La recepción no tiene paso de confirmación: se recibe directo desde PENDING.
func TestReceive_DirectoDesdePending(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "item-1", "1.000")
	rec := f.createReceipt(t)
	ctx := context.Background()

	_, err := f.uc.AddItem(ctx, rec.ID, dto.AddReceiptItemRequest{
		ItemID:          "item-1",
		OrderedQuantity: decimal.RequireFromString("2.000"),
		UnitPrice:       decimal.RequireFromString("3.00"),
	})
	require.NoError(t, err)

	out, err := f.uc.Receive(ctx, rec.ID)
	require.NoError(t, err)

	assert.Equal(t, "RECEIVED", out.Status)
	require.NotNil(t, out.ReceivedDate)
	assert.True(t, f.itemQty(t, "item-1").Equal(decimal.RequireFromString("3.000")))

	entries := f.ledger.All()
	require.Len(t, entries, 1)
	assert.Equal(t, entity.TransactionInbound, entries[0].TransactionType)
	assert.Equal(t, "RECEIPT-"+out.ReceiptNumber, entries[0].ReferenceNumber)
	assert.Contains(t, entries[0].Notes, out.ReceiptNumber)

	lines, err := f.uc.ListItems(rec.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.True(t, lines[0].ReceivedQuantity.Equal(decimal.RequireFromString("2.000")))
}

func TestReceive_DosVecesFalla(t *testing.T) {
	f := newFixture(t)
	rec := f.createReceipt(t)
	ctx := context.Background()

	_, err := f.uc.Receive(ctx, rec.ID)
	require.NoError(t, err)

	_, err = f.uc.Receive(ctx, rec.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Empty(t, f.ledger.All(), "la recepción sin líneas no asienta nada")
}

func TestCancel_RecibidaFalla(t *testing.T) {
	f := newFixture(t)
	rec := f.createReceipt(t)
	ctx := context.Background()

	_, err := f.uc.Receive(ctx, rec.ID)
	require.NoError(t, err)

	_, err = f.uc.Cancel(ctx, rec.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestCancel_PendingPasaACancelled(t *testing.T) {
	f := newFixture(t)
	rec := f.createReceipt(t)

	out, err := f.uc.Cancel(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", out.Status)
}

func TestAddItem_RecalculaTotal(t *testing.T) {
	f := newFixture(t)
	f.seedItem(t, "item-1", "0")
	f.seedItem(t, "item-2", "0")
	rec := f.createReceipt(t)
	ctx := context.Background()

	_, err := f.uc.AddItem(ctx, rec.ID, dto.AddReceiptItemRequest{
		ItemID:          "item-1",
		OrderedQuantity: decimal.RequireFromString("2.000"),
		UnitPrice:       decimal.RequireFromString("5.00"),
	})
	require.NoError(t, err)
	line2, err := f.uc.AddItem(ctx, rec.ID, dto.AddReceiptItemRequest{
		ItemID:          "item-2",
		OrderedQuantity: decimal.RequireFromString("1.000"),
		UnitPrice:       decimal.RequireFromString("2.50"),
	})
	require.NoError(t, err)

	got, err := f.uc.GetByID(rec.ID)
	require.NoError(t, err)
	assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("12.50")))

	require.NoError(t, f.uc.RemoveItem(ctx, rec.ID, line2.ID))
	got, err = f.uc.GetByID(rec.ID)
	require.NoError(t, err)
	assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("10.00")),
		"quitar una línea recalcula el total con las vigentes")
}

func TestAddItem_CantidadNoPositivaFalla(t *testing.T) {
	f := newFixture(t)
	rec := f.createReceipt(t)

	_, err := f.uc.AddItem(context.Background(), rec.ID, dto.AddReceiptItemRequest{
		ItemID:          "item-1",
		OrderedQuantity: decimal.Zero,
		UnitPrice:       decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
