package document

import "github.com/shopspring/decimal"

// Totaler línea de documento con total monetario calculado.
type Totaler interface {
	Total() decimal.Decimal
}

// SumTotals suma los totales de las líneas de un documento. El agregado del
// documento se recalcula SIEMPRE releyendo todas las líneas vigentes (no con
// aritmética incremental) para que el total nunca quede desfasado.
func SumTotals[T Totaler](lines []T) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Total())
	}
	return total
}

// LineTotal calcula el total de una línea como cantidad × precio unitario.
// Se invoca en cada alta o modificación de línea; el total nunca se guarda
// desactualizado.
func LineTotal(quantity, unitPrice decimal.Decimal) decimal.Decimal {
	return quantity.Mul(unitPrice)
}
