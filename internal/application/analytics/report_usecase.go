// Package analytics contiene el agregador de ventas por rango de fechas: el
// generador de reportes del negocio. Todo se deriva al vuelo de los archivos
// de ventas y devoluciones; nada se persiste.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/boadigital/bazar-ops/internal/application/dto"
	"github.com/boadigital/bazar-ops/internal/domain"
	"github.com/boadigital/bazar-ops/internal/domain/entity"
	"github.com/boadigital/bazar-ops/internal/domain/repository"
)

const (
	fechaLayout = "2006-01-02"

	topProductosTabla = 10 // filas de la tabla de top productos
	topProductosChart = 5  // barras del gráfico
	maxDescChart      = 20 // largo máximo de descripción en el gráfico
)

// ReportUseCase genera el reporte agregado de un rango de fechas.
//
// Política de fallas: cualquier archivo ilegible aporta cero y el reporte
// sale igual, posiblemente incompleto. Un reporte parcial es más útil que
// una petición caída.
type ReportUseCase struct {
	catalog repository.CatalogRepository
	sales   repository.SalesRepository
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(catalog repository.CatalogRepository, sales repository.SalesRepository) *ReportUseCase {
	return &ReportUseCase{catalog: catalog, sales: sales}
}

// ResolverPeriodo traduce un período predefinido a un par inicio/fin
// inclusivo: today, week (lunes a domingo de la semana en curso), month y
// year calendario. Un período desconocido resuelve a today.
func ResolverPeriodo(periodo string, now time.Time) (inicio, fin time.Time) {
	hoy := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch periodo {
	case "week":
		offset := (int(hoy.Weekday()) + 6) % 7 // lunes = 0
		inicio = hoy.AddDate(0, 0, -offset)
		fin = inicio.AddDate(0, 0, 6)
	case "month":
		inicio = time.Date(hoy.Year(), hoy.Month(), 1, 0, 0, 0, 0, hoy.Location())
		fin = inicio.AddDate(0, 1, -1)
	case "year":
		inicio = time.Date(hoy.Year(), time.January, 1, 0, 0, 0, 0, hoy.Location())
		fin = time.Date(hoy.Year(), time.December, 31, 0, 0, 0, 0, hoy.Location())
	default: // "today" y cualquier período desconocido
		inicio, fin = hoy, hoy
	}
	return inicio, fin
}

// PorPeriodo resuelve el período predefinido y delega en PorRango.
func (uc *ReportUseCase) PorPeriodo(periodo string, now time.Time) *dto.ReporteResponse {
	inicio, fin := ResolverPeriodo(periodo, now)
	return uc.PorRango(inicio, fin)
}

// acumulador por producto o por lugar.
type acumulado struct {
	descripcion  string
	ventas       int
	devoluciones int
	monto        int64
}

func (a *acumulado) neto() int { return a.ventas - a.devoluciones }

// conActividad: solo entra al reporte lo que vendió algo neto o movió monto.
func (a *acumulado) conActividad() bool { return a.neto() > 0 || a.monto != 0 }

// PorRango recorre día a día el rango inclusivo [inicio, fin] en orden
// ascendente y acumula:
//
//   - totales globales de ventas, devoluciones y monto;
//   - la serie diaria (ventas, devoluciones, monto, lugares con archivo);
//   - rollups por producto (llave cod_venta, si no cod_fabrica) y por lugar
//     (el lugar del nombre de archivo para ventas; el campo lugar de la fila
//     para devoluciones).
//
// El precio de una devolución ya viene con signo, así que se suma directo y
// descuenta los totales. Los empates de monto conservan el orden de primer
// avistamiento (fecha ascendente, orden del directorio, orden de fila).
func (uc *ReportUseCase) PorRango(inicio, fin time.Time) *dto.ReporteResponse {
	productos := uc.catalog.All()

	resp := &dto.ReporteResponse{
		Rango: dto.RangoFechas{
			Inicio: inicio.Format(fechaLayout),
			Fin:    fin.Format(fechaLayout),
		},
		DatosDiarios:   make(map[string]dto.DatoDiario),
		TopProductos:   []dto.ProductoTop{},
		VentasPorLugar: make(map[string]dto.LugarTop),
	}

	lugaresActivos := make(map[string]struct{})
	porProducto := make(map[string]*acumulado)
	porLugar := make(map[string]*acumulado)
	var ordenProductos, ordenLugares, fechas []string

	productoDe := func(codigo string) *acumulado {
		if acc, ok := porProducto[codigo]; ok {
			return acc
		}
		acc := &acumulado{descripcion: descripcionDe(productos, codigo)}
		porProducto[codigo] = acc
		ordenProductos = append(ordenProductos, codigo)
		return acc
	}
	lugarDe := func(lugar string) *acumulado {
		if acc, ok := porLugar[lugar]; ok {
			return acc
		}
		acc := &acumulado{}
		porLugar[lugar] = acc
		ordenLugares = append(ordenLugares, lugar)
		return acc
	}

	for dia := inicio; !dia.After(fin); dia = dia.AddDate(0, 0, 1) {
		fecha := dia.Format(fechaLayout)
		var diario dto.DatoDiario
		lugaresDia := make(map[string]struct{})

		for _, vl := range uc.sales.SalesForDate(fecha) {
			lugaresDia[vl.Lugar] = struct{}{}
			lugaresActivos[vl.Lugar] = struct{}{}

			for _, v := range vl.Ventas {
				resp.TotalVentas++
				diario.Ventas++

				codigo := v.Codigo()
				if codigo != "" {
					productoDe(codigo).ventas++
				}
				lugarDe(vl.Lugar).ventas++

				if monto, ok := domain.ParseMonto(v.Precio); ok {
					resp.MontoTotal += monto
					diario.Monto += monto
					if codigo != "" {
						porProducto[codigo].monto += monto
					}
					porLugar[vl.Lugar].monto += monto
				}
			}
		}

		for _, d := range uc.sales.ReturnsForDate(fecha) {
			resp.TotalDevoluciones++
			diario.Devoluciones++

			codigo := d.Codigo()
			if codigo != "" {
				productoDe(codigo).devoluciones++
			}
			if d.Lugar != "" {
				lugarDe(d.Lugar).devoluciones++
			}

			if monto, ok := domain.ParseMonto(d.Precio); ok {
				// ya negado: suma directa descuenta los totales
				resp.MontoTotal += monto
				diario.Monto += monto
				if codigo != "" {
					porProducto[codigo].monto += monto
				}
				if d.Lugar != "" {
					porLugar[d.Lugar].monto += monto
				}
			}
		}

		diario.Lugares = len(lugaresDia)
		resp.DatosDiarios[fecha] = diario
		fechas = append(fechas, fecha)
	}

	resp.VentasNetas = resp.TotalVentas - resp.TotalDevoluciones
	resp.LugaresActivos = len(lugaresActivos)
	resp.PromedioDiario = promedioDiario(resp.MontoTotal, len(fechas))

	// Top productos: con actividad, orden estable por monto descendente.
	activos := make([]dto.ProductoTop, 0, len(ordenProductos))
	for _, codigo := range ordenProductos {
		acc := porProducto[codigo]
		if !acc.conActividad() {
			continue
		}
		activos = append(activos, dto.ProductoTop{
			Codigo:      codigo,
			Descripcion: acc.descripcion,
			Count:       acc.neto(),
			Monto:       acc.monto,
		})
	}
	ordenEstablePorMonto(activos)
	resp.TopProductos = primeros(activos, topProductosTabla)
	resp.Charts.TopProductos = chartProductos(primeros(activos, topProductosChart))

	for _, lugar := range ordenLugares {
		acc := porLugar[lugar]
		if !acc.conActividad() {
			continue
		}
		resp.VentasPorLugar[lugar] = dto.LugarTop{Count: acc.neto(), Monto: acc.monto}
	}

	resp.Charts.EvolucionDiaria = evolucionDiaria(fechas, resp.DatosDiarios)
	resp.Charts.TopLugares = dto.ProductosChart{Nombres: []string{}, Montos: []int64{}}

	return resp
}

// descripcionDe busca la descripción en el catálogo por cualquiera de los dos
// códigos; si no aparece, el código mismo hace de descripción.
func descripcionDe(productos []entity.Producto, codigo string) string {
	for _, p := range productos {
		if p.Matches(codigo) {
			return p.Descripcion
		}
	}
	return codigo
}

// ordenEstablePorMonto: inserción estable descendente. El slice ya viene en
// orden de primer avistamiento, que es el desempate especificado.
func ordenEstablePorMonto(items []dto.ProductoTop) {
	for i := 1; i < len(items); i++ {
		for j := i; j > 0 && items[j].Monto > items[j-1].Monto; j-- {
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
}

func primeros(items []dto.ProductoTop, n int) []dto.ProductoTop {
	if len(items) > n {
		items = items[:n]
	}
	out := make([]dto.ProductoTop, len(items))
	copy(out, items)
	return out
}

func chartProductos(top []dto.ProductoTop) dto.ProductosChart {
	chart := dto.ProductosChart{Nombres: []string{}, Montos: []int64{}}
	for _, p := range top {
		chart.Nombres = append(chart.Nombres, truncar(p.Descripcion, maxDescChart))
		chart.Montos = append(chart.Montos, p.Monto)
	}
	return chart
}

// truncar corta por caracteres (no bytes) y agrega puntos suspensivos.
func truncar(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}

func evolucionDiaria(fechas []string, diarios map[string]dto.DatoDiario) dto.EvolucionDiaria {
	ev := dto.EvolucionDiaria{
		Fechas:       []string{},
		Ventas:       []int{},
		Devoluciones: []int{},
		Montos:       []int64{},
	}
	for _, fecha := range fechas {
		d := diarios[fecha]
		ev.Fechas = append(ev.Fechas, fecha)
		ev.Ventas = append(ev.Ventas, d.Ventas)
		ev.Devoluciones = append(ev.Devoluciones, d.Devoluciones)
		ev.Montos = append(ev.Montos, d.Monto)
	}
	return ev
}

// promedioDiario: monto neto promedio por día del rango, dos decimales.
func promedioDiario(montoTotal int64, dias int) string {
	if dias == 0 {
		return "0"
	}
	return decimal.NewFromInt(montoTotal).
		Div(decimal.NewFromInt(int64(dias))).
		Round(2).
		String()
}
