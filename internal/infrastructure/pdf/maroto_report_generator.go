// Package pdf implementa el reporte PDF del estado del inventario
// (GET /api/dashboard/export) usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de inventario │ usuario + fecha             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: productos / categorías / stock / alertas              │
//	│  FINANCIERO: valor total / vencido / real                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: valor de inventario por categoría                    │
//	│  TABLA: productos con stock bajo                             │
//	│  TABLA: productos vencidos                                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/jhoicas/despensa-api/internal/application/dto"
	"github.com/jhoicas/despensa-api/internal/application/reports"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 170, Green: 40, Blue: 40}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reports.InventoryPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryReport(
	_ context.Context,
	data reports.InventoryReportData,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de inventario", true).
		WithAuthor(data.Username, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(countsRow(data.Dashboard))
	m.AddRows(financialRow(data.Dashboard.Financial))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitleRow("VALOR DE INVENTARIO POR CATEGORÍA"))
	if len(data.Dashboard.Analytics) == 0 {
		m.AddRows(emptyRow("Sin productos registrados"))
	}
	for _, item := range data.Dashboard.Analytics {
		m.AddRows(row.New(6).Add(
			col.New(8).Add(text.New(item.Category, props.Text{Size: 8, Top: 1})),
			col.New(4).Add(text.New("$ "+item.TotalValue.StringFixed(2), props.Text{
				Size: 8, Align: align.Right, Top: 1,
			})),
		))
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitleRow("ALERTAS: STOCK BAJO"))
	m.AddRows(productTableRows(data.LowStock, "Sin productos con stock bajo")...)

	m.AddRows(line.NewRow(2))
	m.AddRows(sectionTitleRow("ALERTAS: PRODUCTOS VENCIDOS"))
	m.AddRows(productTableRows(data.Expired, "Sin productos vencidos")...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y usuario + fecha de generación (der).
func headerRow(data reports.InventoryReportData) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("REPORTE DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New(data.Username, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 1,
			}),
			text.New("Generado: "+data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// countsRow: KPIs de conteo en cuatro columnas.
func countsRow(d dto.DashboardResponse) core.Row {
	kpi := func(label string, value string, c *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Top: 5, Color: c}),
		)
	}
	return row.New(14).Add(
		kpi("Productos", fmt.Sprintf("%d", d.Counts.TotalProducts), colorPrimary),
		kpi("Categorías", fmt.Sprintf("%d", d.Counts.TotalCategories), colorPrimary),
		kpi("Stock bajo", fmt.Sprintf("%d", d.Counts.LowStock), colorAlert),
		kpi("Vencidos", fmt.Sprintf("%d", d.Counts.ExpiredProducts), colorAlert),
	)
}

// financialRow: valores monetarios agregados.
func financialRow(f dto.DashboardFinancial) core.Row {
	money := func(label string, v string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New("$ "+v, props.Text{Style: fontstyle.Bold, Size: 10, Top: 5}),
		)
	}
	return row.New(13).Add(
		money("Valor total", f.TotalInventoryValue.StringFixed(2)),
		money("Valor vencido", f.ExpiredInventoryValue.StringFixed(2)),
		money("Valor real", f.RealInventoryValue.StringFixed(2)),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(8).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		})),
	)
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(
		col.New(12).Add(text.New(msg, props.Text{Size: 8, Color: colorGray, Top: 1})),
	)
}

// productTableRows: cabecera + una fila por producto de alerta.
func productTableRows(products []dto.ProductResponse, emptyMsg string) []core.Row {
	if len(products) == 0 {
		return []core.Row{emptyRow(emptyMsg)}
	}
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		}))
	}
	result := []core.Row{row.New(7).Add(
		h("Producto", 5, align.Left),
		h("Cantidad", 2, align.Right),
		h("Umbral", 2, align.Right),
		h("Vence", 3, align.Right),
	)}
	for _, p := range products {
		expires := "—"
		if p.ExpirationDate != nil {
			expires = p.ExpirationDate.Format("02/01/2006")
		}
		result = append(result, row.New(6).Add(
			col.New(5).Add(text.New(p.Name, props.Text{Size: 8, Top: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", p.Quantity), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", p.MinThreshold), props.Text{Size: 8, Align: align.Right, Top: 1})),
			col.New(3).Add(text.New(expires, props.Text{Size: 8, Align: align.Right, Top: 1})),
		))
	}
	return result
}
