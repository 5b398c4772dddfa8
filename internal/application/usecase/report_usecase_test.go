package usecase_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/stock/stocktest"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// capturePDF generador falso: captura el reporte armado y devuelve bytes fijos.
type capturePDF struct {
	report usecase.StockReport
}

func (c *capturePDF) Generate(report usecase.StockReport) ([]byte, error) {
	c.report = report
	return []byte("%PDF-fake"), nil
}

func TestStockPDF_ArmaElReporteConItemsYProductos(t *testing.T) {
	repos := stocktest.NewRepos()
	now := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

	require.NoError(t, repos.Items.Create(&entity.Item{
		ID:       "item-1",
		Code:     "MAT-001",
		Name:     "Harina",
		Price:    decimal.RequireFromString("1.50"),
		Quantity: decimal.RequireFromString("10.000"),
	}))
	require.NoError(t, repos.Items.Create(&entity.Item{
		ID:       "item-2",
		Code:     "MAT-002",
		Name:     "Levadura",
		Price:    decimal.RequireFromString("6.00"),
		Quantity: decimal.RequireFromString("2.000"),
	}))
	require.NoError(t, repos.Products.Create(&entity.Product{
		ID:        "product-1",
		Code:      "PT-001",
		Name:      "Pan campesino",
		SalePrice: decimal.RequireFromString("8.00"),
		Quantity:  decimal.RequireFromString("5.000"),
	}))

	pdf := &capturePDF{}
	uc := usecase.NewReportUseCase(repos.Items, repos.Products, pdf, stocktest.Clock{T: now})

	out, err := uc.StockPDF()
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), out)

	assert.Equal(t, now, pdf.report.GeneratedAt)
	require.Len(t, pdf.report.Items, 2)
	require.Len(t, pdf.report.Products, 1)

	assert.Equal(t, "MAT-001", pdf.report.Items[0].Code)
	assert.True(t, pdf.report.Items[0].Quantity.Equal(decimal.RequireFromString("10.000")))

	// Los productos reportan su precio de venta.
	assert.Equal(t, "PT-001", pdf.report.Products[0].Code)
	assert.True(t, pdf.report.Products[0].Price.Equal(decimal.RequireFromString("8.00")))
}

func TestStockPDF_InventarioVacioGeneraReporteVacio(t *testing.T) {
	repos := stocktest.NewRepos()
	pdf := &capturePDF{}
	uc := usecase.NewReportUseCase(repos.Items, repos.Products, pdf, stocktest.Clock{T: time.Now()})

	_, err := uc.StockPDF()
	require.NoError(t, err)
	assert.Empty(t, pdf.report.Items)
	assert.Empty(t, pdf.report.Products)
}
