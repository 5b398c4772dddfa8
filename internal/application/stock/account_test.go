package stock_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/stock"
	"github.com/jhoicas/almacen-api/internal/application/stock/stocktest"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

const (
	testItemID    = "item-1"
	testProductID = "product-1"
)

func newReposWithStock(t *testing.T, itemQty, productQty string) *stock.Repos {
	t.Helper()
	repos := stocktest.NewRepos()
	require.NoError(t, repos.Items.Create(&entity.Item{
		ID:       testItemID,
		Code:     "MAT-001",
		Name:     "Harina",
		Quantity: decimal.RequireFromString(itemQty),
	}))
	require.NoError(t, repos.Products.Create(&entity.Product{
		ID:       testProductID,
		Code:     "PT-001",
		Name:     "Pan",
		Quantity: decimal.RequireFromString(productQty),
	}))
	return repos
}

func itemQty(t *testing.T, repos *stock.Repos) decimal.Decimal {
	t.Helper()
	item, err := repos.Items.GetByID(testItemID)
	require.NoError(t, err)
	require.NotNil(t, item)
	return item.Quantity
}

// ──────────────────────────────────────────────────────────────────────────────
// Account — no-negatividad
// ──────────────────────────────────────────────────────────────────────────────

func TestAccount_IncreaseSumaYPersiste(t *testing.T) {
	repos := newReposWithStock(t, "10.000", "0")

	newQty, err := stock.ItemAccount(repos, testItemID).Increase(decimal.RequireFromString("2.500"))
	require.NoError(t, err)

	assert.True(t, newQty.Equal(decimal.RequireFromString("12.500")), "newQty = %s", newQty)
	assert.True(t, itemQty(t, repos).Equal(decimal.RequireFromString("12.500")))
}

func TestAccount_DecreaseRestaYPersiste(t *testing.T) {
	repos := newReposWithStock(t, "10.000", "0")

	newQty, err := stock.ItemAccount(repos, testItemID).Decrease(decimal.RequireFromString("4.000"))
	require.NoError(t, err)

	assert.True(t, newQty.Equal(decimal.RequireFromString("6.000")))
	assert.True(t, itemQty(t, repos).Equal(decimal.RequireFromString("6.000")))
}

func TestAccount_DecreaseHastaCeroEsValido(t *testing.T) {
	repos := newReposWithStock(t, "3.000", "0")

	newQty, err := stock.ItemAccount(repos, testItemID).Decrease(decimal.RequireFromString("3.000"))
	require.NoError(t, err)
	assert.True(t, newQty.IsZero(), "consumir exactamente el stock disponible debe dejar cero")
}

func TestAccount_DecreaseInsuficienteNoEscribe(t *testing.T) {
	repos := newReposWithStock(t, "3.000", "0")

	_, err := stock.ItemAccount(repos, testItemID).Decrease(decimal.RequireFromString("3.001"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// La cantidad no debe haberse tocado.
	assert.True(t, itemQty(t, repos).Equal(decimal.RequireFromString("3.000")),
		"un decremento rechazado no debe modificar el stock")
}

func TestAccount_ProductAccountOperaSobreProducts(t *testing.T) {
	repos := newReposWithStock(t, "0", "5.000")

	newQty, err := stock.ProductAccount(repos, testProductID).Increase(decimal.RequireFromString("1.000"))
	require.NoError(t, err)
	assert.True(t, newQty.Equal(decimal.RequireFromString("6.000")))

	// El stock del item no se mueve.
	assert.True(t, itemQty(t, repos).IsZero())
}

func TestAccount_CuentaInexistenteRetornaNotFound(t *testing.T) {
	repos := stocktest.NewRepos()

	_, err := stock.ItemAccount(repos, "no-existe").Current()
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = stock.ProductAccount(repos, "no-existe").Decrease(decimal.NewFromInt(1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ledger
// ──────────────────────────────────────────────────────────────────────────────

func TestLedger_AppendCalculaTotalYNaceCompleted(t *testing.T) {
	repos := stocktest.NewRepos()
	now := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

	created, err := stock.NewLedger(repos, now).Append(stock.Entry{
		Type:        entity.TransactionInbound,
		EntityType:  entity.EntityItems,
		ItemID:      testItemID,
		WarehouseID: "wh-1",
		UserID:      "user-1",
		Quantity:    decimal.RequireFromString("4.000"),
		UnitPrice:   decimal.RequireFromString("2.50"),
		Reference:   "ORDER-ORD-1",
		Notes:       "recepción de prueba",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.True(t, created.TotalPrice.Equal(decimal.RequireFromString("10.00")),
		"TotalPrice debe ser cantidad × precio unitario")
	assert.Equal(t, entity.TransactionCompleted, created.Status, "el asiento nace COMPLETED")
	assert.Equal(t, now, created.TransactionDate)
	assert.Equal(t, now, created.CreatedAt)

	persisted, err := repos.Transactions.GetByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, persisted, "el asiento debe quedar persistido")
	assert.Equal(t, "ORDER-ORD-1", persisted.ReferenceNumber)
}

func TestLedger_EntradasDeUnaTransicionCompartenTimestamp(t *testing.T) {
	repos := stocktest.NewRepos()
	now := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	ledger := stock.NewLedger(repos, now)

	first, err := ledger.Append(stock.Entry{
		Type:       entity.TransactionProduction,
		EntityType: entity.EntityItems,
		ItemID:     "item-a",
		Quantity:   decimal.NewFromInt(1),
		UnitPrice:  decimal.NewFromInt(1),
	})
	require.NoError(t, err)
	second, err := ledger.Append(stock.Entry{
		Type:       entity.TransactionProduction,
		EntityType: entity.EntityItems,
		ItemID:     "item-b",
		Quantity:   decimal.NewFromInt(2),
		UnitPrice:  decimal.NewFromInt(1),
	})
	require.NoError(t, err)

	assert.Equal(t, first.TransactionDate, second.TransactionDate)
}
