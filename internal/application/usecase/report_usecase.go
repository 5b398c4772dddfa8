package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/refnum"
)

// StockReportRow fila del reporte de stock (item o producto).
type StockReportRow struct {
	Code     string
	Name     string
	Quantity decimal.Decimal
	Price    decimal.Decimal
}

// StockReport datos del reporte de existencias actuales.
type StockReport struct {
	GeneratedAt time.Time
	Items       []StockReportRow
	Products    []StockReportRow
}

// StockPDFGenerator puerto de generación del PDF del reporte de stock.
type StockPDFGenerator interface {
	Generate(report StockReport) ([]byte, error)
}

// ReportUseCase arma el reporte de existencias y lo renderiza como PDF.
type ReportUseCase struct {
	items    repository.ItemRepository
	products repository.ProductRepository
	pdf      StockPDFGenerator
	clock    refnum.Clock
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(items repository.ItemRepository, products repository.ProductRepository, pdf StockPDFGenerator, clock refnum.Clock) *ReportUseCase {
	if clock == nil {
		clock = refnum.SystemClock{}
	}
	return &ReportUseCase{items: items, products: products, pdf: pdf, clock: clock}
}

// pageSize tamaño de página para recorrer el inventario completo.
const pageSize = 500

// StockPDF genera el PDF con el stock actual de todos los items y productos.
func (uc *ReportUseCase) StockPDF() ([]byte, error) {
	report := StockReport{GeneratedAt: uc.clock.Now()}

	for offset := 0; ; offset += pageSize {
		page, err := uc.items.List(pageSize, offset)
		if err != nil {
			return nil, err
		}
		for _, i := range page {
			report.Items = append(report.Items, StockReportRow{
				Code:     i.Code,
				Name:     i.Name,
				Quantity: i.Quantity,
				Price:    i.Price,
			})
		}
		if len(page) < pageSize {
			break
		}
	}

	for offset := 0; ; offset += pageSize {
		page, err := uc.products.List(pageSize, offset)
		if err != nil {
			return nil, err
		}
		for _, p := range page {
			report.Products = append(report.Products, StockReportRow{
				Code:     p.Code,
				Name:     p.Name,
				Quantity: p.Quantity,
				Price:    p.SalePrice,
			})
		}
		if len(page) < pageSize {
			break
		}
	}

	return uc.pdf.Generate(report)
}
