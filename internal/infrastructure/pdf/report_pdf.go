// Package pdf genera el reporte de ventas imprimible con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + rango de fechas                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Ventas / Devoluciones / Netas / Monto / Promedio  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Evolución diaria                                    │
//	│  TABLA: Top productos                                       │
//	│  TABLA: Ventas por lugar                                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"sort"
	"strconv"

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

	"github.com/boadigital/bazar-ops/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 170, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// ReportPDFGenerator genera el reporte de ventas como PDF usando Maroto v2.
type ReportPDFGenerator struct{}

// NewReportPDFGenerator construye el generador.
func NewReportPDFGenerator() *ReportPDFGenerator { return &ReportPDFGenerator{} }

// GenerateReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *ReportPDFGenerator) GenerateReportPDF(reporte *dto.ReporteResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Ventas", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(reporte))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(resumenRow(reporte))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Evolución diaria
	m.AddRows(sectionRow("EVOLUCIÓN DIARIA"))
	m.AddRows(diarioHeaderRow())
	for _, r := range diarioRows(reporte) {
		m.AddRows(r)
	}

	// Top productos
	m.AddRows(line.NewRow(2))
	m.AddRows(sectionRow("PRODUCTOS MÁS VENDIDOS"))
	m.AddRows(productosHeaderRow())
	for _, r := range productosRows(reporte.TopProductos) {
		m.AddRows(r)
	}

	// Ventas por lugar
	m.AddRows(line.NewRow(2))
	m.AddRows(sectionRow("VENTAS POR LUGAR"))
	m.AddRows(lugaresHeaderRow())
	for _, r := range lugaresRows(reporte.VentasPorLugar) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y rango de fechas (der).
func headerRow(reporte *dto.ReporteResponse) core.Row {
	rango := fmt.Sprintf("%s a %s", reporte.Rango.Inicio, reporte.Rango.Fin)
	return row.New(16).Add(
		col.New(7).Add(
			text.New("REPORTE DE VENTAS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Bazar Digital", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PERÍODO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(rango, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
		),
	)
}

// resumenRow: los cinco indicadores principales en una franja.
func resumenRow(reporte *dto.ReporteResponse) core.Row {
	indicador := func(size int, label, value string, valueColor *props.Color) core.Col {
		return col.New(size).Add(
			text.New(label, props.Text{
				Size: 7, Align: align.Center, Color: colorGray, Top: 1,
			}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center,
				Color: valueColor, Top: 6,
			}),
		)
	}
	return row.New(16).Add(
		indicador(2, "VENTAS", strconv.Itoa(reporte.TotalVentas), colorPrimary),
		indicador(2, "DEVOLUCIONES", strconv.Itoa(reporte.TotalDevoluciones), colorRed),
		indicador(2, "NETAS", strconv.Itoa(reporte.VentasNetas), colorPrimary),
		indicador(3, "MONTO TOTAL", dto.FormatMonto(reporte.MontoTotal), colorPrimary),
		indicador(3, "PROMEDIO DIARIO", "$"+reporte.PromedioDiario, colorGray),
	)
}

func sectionRow(titulo string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(titulo, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		}),
	))
}

func headerCell(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a,
		Color: colorPrimary, Top: 1, Left: 1, Right: 1,
	}))
}

func diarioHeaderRow() core.Row {
	return row.New(7).Add(
		headerCell("Fecha", 3, align.Left),
		headerCell("Ventas", 2, align.Center),
		headerCell("Devoluciones", 3, align.Center),
		headerCell("Lugares", 2, align.Center),
		headerCell("Monto", 2, align.Right),
	)
}

// diarioRows: una fila por día del rango, en orden ascendente.
func diarioRows(reporte *dto.ReporteResponse) []core.Row {
	fechas := reporte.Charts.EvolucionDiaria.Fechas
	result := make([]core.Row, 0, len(fechas))
	for _, fecha := range fechas {
		d := reporte.DatosDiarios[fecha]
		result = append(result, row.New(6).Add(
			celda(fecha, 3, align.Left),
			celda(strconv.Itoa(d.Ventas), 2, align.Center),
			celda(strconv.Itoa(d.Devoluciones), 3, align.Center),
			celda(strconv.Itoa(d.Lugares), 2, align.Center),
			celda(dto.FormatMonto(d.Monto), 2, align.Right),
		))
	}
	return result
}

func productosHeaderRow() core.Row {
	return row.New(7).Add(
		headerCell("Código", 2, align.Left),
		headerCell("Descripción", 6, align.Left),
		headerCell("Unid.", 1, align.Center),
		headerCell("Monto", 3, align.Right),
	)
}

func productosRows(productos []dto.ProductoTop) []core.Row {
	result := make([]core.Row, 0, len(productos))
	for _, p := range productos {
		result = append(result, row.New(6).Add(
			celda(p.Codigo, 2, align.Left),
			celda(p.Descripcion, 6, align.Left),
			celda(strconv.Itoa(p.Count), 1, align.Center),
			celda(dto.FormatMonto(p.Monto), 3, align.Right),
		))
	}
	return result
}

func lugaresHeaderRow() core.Row {
	return row.New(7).Add(
		headerCell("Lugar", 7, align.Left),
		headerCell("Unid.", 2, align.Center),
		headerCell("Monto", 3, align.Right),
	)
}

// lugaresRows: ordenadas por monto descendente para que el lugar fuerte
// encabece la tabla.
func lugaresRows(lugares map[string]dto.LugarTop) []core.Row {
	nombres := make([]string, 0, len(lugares))
	for nombre := range lugares {
		nombres = append(nombres, nombre)
	}
	sort.SliceStable(nombres, func(i, j int) bool {
		if lugares[nombres[i]].Monto != lugares[nombres[j]].Monto {
			return lugares[nombres[i]].Monto > lugares[nombres[j]].Monto
		}
		return nombres[i] < nombres[j]
	})

	result := make([]core.Row, 0, len(nombres))
	for _, nombre := range nombres {
		l := lugares[nombre]
		result = append(result, row.New(6).Add(
			celda(nombre, 7, align.Left),
			celda(strconv.Itoa(l.Count), 2, align.Center),
			celda(dto.FormatMonto(l.Monto), 3, align.Right),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func celda(valor string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(valor, props.Text{
		Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}
