package document_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen-api/internal/domain/document"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

func TestLineTotal_CantidadPorPrecio(t *testing.T) {
	total := document.LineTotal(decimal.RequireFromString("2.5"), decimal.RequireFromString("10.40"))
	assert.True(t, total.Equal(decimal.RequireFromString("26.00")), "total = %s", total)
}

func TestSumTotals_SumaTodasLasLineas(t *testing.T) {
	lines := []*entity.OrderItem{
		{TotalPrice: decimal.RequireFromString("10.00")},
		{TotalPrice: decimal.RequireFromString("5.50")},
		{TotalPrice: decimal.RequireFromString("0.25")},
	}
	total := document.SumTotals(lines)
	assert.True(t, total.Equal(decimal.RequireFromString("15.75")), "total = %s", total)
}

func TestSumTotals_SinLineasEsCero(t *testing.T) {
	assert.True(t, document.SumTotals([]*entity.OrderItem{}).IsZero())
}
