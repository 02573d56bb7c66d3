// Package excel exporta el reporte de ventas como planilla xlsx.
package excel

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/boadigital/bazar-ops/internal/application/dto"
)

const (
	sheetResumen   = "Resumen"
	sheetDiario    = "Diario"
	sheetProductos = "Productos"
	sheetLugares   = "Lugares"
)

// ReportExcelExporter arma la planilla del reporte con una hoja por sección.
type ReportExcelExporter struct{}

// NewReportExcelExporter construye el exportador.
func NewReportExcelExporter() *ReportExcelExporter { return &ReportExcelExporter{} }

// Export genera el workbook y devuelve sus bytes.
func (e *ReportExcelExporter) Export(reporte *dto.ReporteResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", sheetResumen)
	for _, name := range []string{sheetDiario, sheetProductos, sheetLugares} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("excel: crear hoja %s: %w", name, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00467F"}},
	})
	if err != nil {
		return nil, fmt.Errorf("excel: estilo de cabecera: %w", err)
	}

	if err := e.writeResumen(f, headerStyle, reporte); err != nil {
		return nil, err
	}
	if err := e.writeDiario(f, headerStyle, reporte); err != nil {
		return nil, err
	}
	if err := e.writeProductos(f, headerStyle, reporte.TopProductos); err != nil {
		return nil, err
	}
	if err := e.writeLugares(f, headerStyle, reporte.VentasPorLugar); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *ReportExcelExporter) writeResumen(f *excelize.File, headerStyle int, reporte *dto.ReporteResponse) error {
	rows := [][]interface{}{
		{"Indicador", "Valor"},
		{"Período", reporte.Rango.Inicio + " a " + reporte.Rango.Fin},
		{"Ventas", reporte.TotalVentas},
		{"Devoluciones", reporte.TotalDevoluciones},
		{"Ventas netas", reporte.VentasNetas},
		{"Monto total", reporte.MontoTotal},
		{"Promedio diario", reporte.PromedioDiario},
		{"Lugares activos", reporte.LugaresActivos},
	}
	if err := writeRows(f, sheetResumen, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetResumen, "A1", "B1", headerStyle); err != nil {
		return fmt.Errorf("excel: estilo resumen: %w", err)
	}
	return f.SetColWidth(sheetResumen, "A", "B", 24)
}

func (e *ReportExcelExporter) writeDiario(f *excelize.File, headerStyle int, reporte *dto.ReporteResponse) error {
	rows := [][]interface{}{{"Fecha", "Ventas", "Devoluciones", "Lugares", "Monto"}}
	for _, fecha := range reporte.Charts.EvolucionDiaria.Fechas {
		d := reporte.DatosDiarios[fecha]
		rows = append(rows, []interface{}{fecha, d.Ventas, d.Devoluciones, d.Lugares, d.Monto})
	}
	if err := writeRows(f, sheetDiario, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetDiario, "A1", "E1", headerStyle); err != nil {
		return fmt.Errorf("excel: estilo diario: %w", err)
	}
	return f.SetColWidth(sheetDiario, "A", "E", 14)
}

func (e *ReportExcelExporter) writeProductos(f *excelize.File, headerStyle int, productos []dto.ProductoTop) error {
	rows := [][]interface{}{{"Código", "Descripción", "Unidades", "Monto"}}
	for _, p := range productos {
		rows = append(rows, []interface{}{p.Codigo, p.Descripcion, p.Count, p.Monto})
	}
	if err := writeRows(f, sheetProductos, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetProductos, "A1", "D1", headerStyle); err != nil {
		return fmt.Errorf("excel: estilo productos: %w", err)
	}
	if err := f.SetColWidth(sheetProductos, "B", "B", 40); err != nil {
		return fmt.Errorf("excel: ancho descripción: %w", err)
	}
	return nil
}

// writeLugares ordena por monto descendente, con el nombre como desempate.
func (e *ReportExcelExporter) writeLugares(f *excelize.File, headerStyle int, lugares map[string]dto.LugarTop) error {
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

	rows := [][]interface{}{{"Lugar", "Unidades", "Monto"}}
	for _, nombre := range nombres {
		l := lugares[nombre]
		rows = append(rows, []interface{}{nombre, l.Count, l.Monto})
	}
	if err := writeRows(f, sheetLugares, rows); err != nil {
		return err
	}
	if err := f.SetCellStyle(sheetLugares, "A1", "C1", headerStyle); err != nil {
		return fmt.Errorf("excel: estilo lugares: %w", err)
	}
	return f.SetColWidth(sheetLugares, "A", "A", 30)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("excel: celda de fila %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("excel: escribir fila %d de %s: %w", i+1, sheet, err)
		}
	}
	return nil
}
