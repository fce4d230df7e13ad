// Package pdf implementa el reporte imprimible del análisis de distribución
// de inventario entre bodegas.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + Fecha  │  Puntaje y nivel de desbalance   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA BODEGAS: Bodega | Productos | Valor | Bajos | Agot.  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA CAPACIDAD: Bodega | Utilización | Nivel | Acción      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SUGERENCIAS: Origen → Destino | Cantidad | Prioridad       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/stockboard-api/internal/application/dto"
	appinv "github.com/jhoicas/stockboard-api/internal/application/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appinv.DistributionReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa inventory.DistributionReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateDistributionPDF genera el PDF del análisis y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateDistributionPDF(_ context.Context, analysis *dto.DistributionResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Distribución de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(analysis))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitle("BODEGAS"))
	m.AddRows(warehouseHeaderRow())
	for _, r := range warehouseRows(analysis.Warehouses) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitle("CAPACIDAD"))
	m.AddRows(capacityHeaderRow())
	for _, r := range capacityRows(analysis.Capacity) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(sectionTitle("SUGERENCIAS DE TRASLADO"))
	if len(analysis.TransferSuggestions) == 0 {
		m.AddRows(row.New(6).Add(col.New(12).Add(
			text.New("Sin sugerencias: la distribución actual no requiere traslados.", props.Text{
				Size: 8, Color: colorGray, Top: 1,
			}),
		)))
	} else {
		m.AddRows(suggestionHeaderRow())
		for _, r := range suggestionRows(analysis.TransferSuggestions) {
			m.AddRows(r)
		}
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + fecha (izq) y desbalance global (der).
func headerRow(analysis *dto.DistributionResponse) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("DISTRIBUCIÓN DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Generado: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("DESBALANCE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%.2f (%s)", analysis.ImbalanceScore, analysis.ImbalanceLevel), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
				Color: imbalanceColor(analysis.ImbalanceLevel),
			}),
		),
	)
}

func sectionTitle(s string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func cell(value string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

// warehouseHeaderRow: cabecera de la tabla de bodegas.
func warehouseHeaderRow() core.Row {
	return row.New(7).Add(
		headerCell("Bodega", 4, align.Left),
		headerCell("Productos", 2, align.Right),
		headerCell("Valor", 3, align.Right),
		headerCell("Bajos", 1, align.Right),
		headerCell("Agotados", 2, align.Right),
	)
}

func warehouseRows(warehouses []dto.WarehouseDistributionDTO) []core.Row {
	result := make([]core.Row, 0, len(warehouses))
	for _, w := range warehouses {
		result = append(result, row.New(6).Add(
			cell(w.WarehouseName, 4, align.Left),
			cell(fmt.Sprintf("%d", w.TotalProducts), 2, align.Right),
			cell("$"+w.TotalValue.StringFixed(2), 3, align.Right),
			cell(fmt.Sprintf("%d", w.LowStockCount), 1, align.Right),
			cell(fmt.Sprintf("%d", w.OutOfStockCount), 2, align.Right),
		))
	}
	return result
}

// capacityHeaderRow: cabecera de la tabla de capacidad.
func capacityHeaderRow() core.Row {
	return row.New(7).Add(
		headerCell("Bodega", 4, align.Left),
		headerCell("Utilización", 2, align.Right),
		headerCell("Nivel", 2, align.Center),
		headerCell("Recomendación", 4, align.Left),
	)
}

func capacityRows(capacity []dto.CapacityDTO) []core.Row {
	result := make([]core.Row, 0, len(capacity))
	for _, c := range capacity {
		result = append(result, row.New(6).Add(
			cell(c.WarehouseName, 4, align.Left),
			cell(fmt.Sprintf("%.1f%%", c.UtilizationPct), 2, align.Right),
			cell(c.Level, 2, align.Center),
			cell(c.Recommendation, 4, align.Left),
		))
	}
	return result
}

// suggestionHeaderRow: cabecera de la tabla de sugerencias.
func suggestionHeaderRow() core.Row {
	return row.New(7).Add(
		headerCell("Origen", 3, align.Left),
		headerCell("Destino", 3, align.Left),
		headerCell("Cantidad", 2, align.Right),
		headerCell("Prioridad", 1, align.Center),
		headerCell("Razón", 3, align.Left),
	)
}

func suggestionRows(suggestions []dto.TransferSuggestionDTO) []core.Row {
	result := make([]core.Row, 0, len(suggestions))
	for _, s := range suggestions {
		result = append(result, row.New(6).Add(
			cell(s.FromWarehouseName, 3, align.Left),
			cell(s.ToWarehouseName, 3, align.Left),
			cell(fmt.Sprintf("%d", s.SuggestedQuantity), 2, align.Right),
			cell(s.Priority, 1, align.Center),
			cell(s.Reason, 3, align.Left),
		))
	}
	return result
}

func imbalanceColor(level string) *props.Color {
	if level == "high" {
		return colorAlert
	}
	return colorPrimary
}
