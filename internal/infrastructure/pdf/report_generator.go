// Package pdf implementa la generación del informe de almacén en PDF
// (KPIs, stock crítico, últimas entradas y órdenes abiertas) usando
// Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Lagerbericht + fecha de generación                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: valor inventario / órdenes abiertas / stock crítico   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Kritischer Bestand (producto, ubicación, faltante)   │
//	│  TABLA: Letzte Wareneingänge                                 │
//	│  TABLA: Offene Bestellungen                                  │
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
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	appanalytics "github.com/jhoicas/lagerhub/internal/application/analytics"
	"github.com/jhoicas/lagerhub/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// euPrinter formatea números al estilo alemán (1.234,56).
var euPrinter = message.NewPrinter(language.German)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa analytics.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReport(_ context.Context, data appanalytics.ReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Lagerbericht", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data.GeneratedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRows(data.Summary)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("Kritischer Bestand"))
	m.AddRows(criticalRows(data.CriticalStock)...)

	m.AddRows(sectionTitle("Letzte Wareneingänge"))
	m.AddRows(receiptRows(data.Receipts)...)

	m.AddRows(sectionTitle("Offene Bestellungen"))
	m.AddRows(orderRows(data.OpenOrders)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(generatedAt time.Time) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("Lagerbericht", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New("Bestandsübersicht und offene Vorgänge", props.Text{
				Size: 8, Top: 10, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Erstellt: "+generatedAt.Format("02.01.2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// kpiRows: los KPIs de cabecera en dos filas de tres tarjetas.
func kpiRows(s *dto.DashboardSummaryDTO) []core.Row {
	kpi := func(label, value string) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 7, Color: colorGray, Top: 1}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5, Color: colorPrimary}),
		)
	}
	return []core.Row{
		row.New(13).Add(
			kpi("Lagerwert", formatEUR(s.TotalInventoryValue)),
			kpi("Offene Bestellungen", euPrinter.Sprintf("%d Stück / %s", s.OpenOrderCount, formatEUR(s.OpenOrderValue))),
			kpi("Kritischer Bestand", euPrinter.Sprintf("%d Positionen", s.CriticalStockCount)),
		),
		row.New(13).Add(
			kpi("Lagerpositionen", euPrinter.Sprintf("%d", s.StockPositions)),
			kpi("Wareneingänge heute", euPrinter.Sprintf("%d", s.ReceiptsTodayCount)),
			kpi("Ø Lieferzeit", formatDE(s.AverageLeadTimeDays, 1)+" Tage"),
		),
	}
}

func sectionTitle(title string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 3,
		}),
	))
}

func criticalRows(items []dto.CriticalStockDTO) []core.Row {
	if len(items) == 0 {
		return []core.Row{emptyRow("Keine Positionen unter Mindestbestand.")}
	}
	rows := []core.Row{tableHeader(
		cell{"Produkt", 4, align.Left},
		cell{"Lagerort", 3, align.Left},
		cell{"Verfügbar", 2, align.Right},
		cell{"Mindestbestand", 2, align.Right},
		cell{"Fehlmenge", 1, align.Right},
	)}
	for _, it := range items {
		rows = append(rows, row.New(6).Add(
			bodyCol(it.ProductName, 4, align.Left, nil),
			bodyCol(it.LocationLabel, 3, align.Left, nil),
			bodyCol(formatDE(it.Available, 0), 2, align.Right, nil),
			bodyCol(formatDE(it.MinStock, 0), 2, align.Right, nil),
			bodyCol(formatDE(it.Shortfall, 0), 1, align.Right, colorAlert),
		))
	}
	return rows
}

func receiptRows(items []dto.ReceiptRowDTO) []core.Row {
	if len(items) == 0 {
		return []core.Row{emptyRow("Keine Wareneingänge erfasst.")}
	}
	rows := []core.Row{tableHeader(
		cell{"Produkt", 4, align.Left},
		cell{"Lieferant", 3, align.Left},
		cell{"Menge", 2, align.Right},
		cell{"Lieferdatum", 2, align.Center},
		cell{"Prüfung", 1, align.Left},
	)}
	for _, it := range items {
		rows = append(rows, row.New(6).Add(
			bodyCol(it.ProductName, 4, align.Left, nil),
			bodyCol(it.SupplierName, 3, align.Left, nil),
			bodyCol(formatDE(it.Quantity, 0), 2, align.Right, nil),
			bodyCol(nonEmpty(it.DeliveryDate, "—"), 2, align.Center, nil),
			bodyCol(it.QualityLabel, 1, align.Left, nil),
		))
	}
	return rows
}

func orderRows(items []dto.OpenOrderRowDTO) []core.Row {
	if len(items) == 0 {
		return []core.Row{emptyRow("Keine offenen Bestellungen.")}
	}
	rows := []core.Row{tableHeader(
		cell{"Nr.", 2, align.Left},
		cell{"Produkt", 3, align.Left},
		cell{"Lieferant", 3, align.Left},
		cell{"Status", 2, align.Left},
		cell{"Wert", 2, align.Right},
	)}
	for _, it := range items {
		rows = append(rows, row.New(6).Add(
			bodyCol(it.OrderNumber, 2, align.Left, nil),
			bodyCol(it.ProductName, 3, align.Left, nil),
			bodyCol(it.SupplierName, 3, align.Left, nil),
			bodyCol(it.StatusLabel, 2, align.Left, nil),
			bodyCol(formatEUR(it.TotalPrice), 2, align.Right, nil),
		))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

type cell struct {
	label string
	size  int
	align align.Type
}

func tableHeader(cells ...cell) core.Row {
	r := row.New(7)
	cols := make([]core.Col, 0, len(cells))
	for _, c := range cells {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorPrimary, Top: 1,
		})))
	}
	return r.Add(cols...)
}

func bodyCol(s string, size int, a align.Type, color *props.Color) core.Col {
	p := props.Text{Size: 8, Align: a, Top: 1}
	if color != nil {
		p.Color = color
	}
	return col.New(size).Add(text.New(s, p))
}

func emptyRow(msg string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(msg, props.Text{Size: 8, Color: colorGray, Top: 2}),
	))
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatDE formatea un decimal al estilo alemán con los decimales dados.
func formatDE(d decimal.Decimal, places int) string {
	f, _ := d.Round(int32(places)).Float64()
	return euPrinter.Sprintf("%.*f", places, f)
}

// formatEUR monto en euros al estilo alemán: "1.234,56 €".
func formatEUR(d decimal.Decimal) string {
	return formatDE(d, 2) + " €"
}
