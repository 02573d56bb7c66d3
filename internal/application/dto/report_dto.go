package dto

// RangoFechas límites inclusivos del reporte, en formato YYYY-MM-DD.
type RangoFechas struct {
	Inicio string `json:"start"`
	Fin    string `json:"end"`
}

// DatoDiario tallies de un día del rango.
type DatoDiario struct {
	Ventas       int   `json:"sales"`
	Devoluciones int   `json:"returns"`
	Monto        int64 `json:"amount"`
	Lugares      int   `json:"locations"`
}

// ProductoTop entrada de la tabla de productos más vendidos.
// Count es neto (ventas − devoluciones).
type ProductoTop struct {
	Codigo      string `json:"codigo"`
	Descripcion string `json:"description"`
	Count       int    `json:"count"`
	Monto       int64  `json:"amount"`
}

// LugarTop rollup por ubicación con actividad.
type LugarTop struct {
	Count int   `json:"count"`
	Monto int64 `json:"amount"`
}

// EvolucionDiaria series ordenadas por fecha ascendente para el gráfico.
type EvolucionDiaria struct {
	Fechas       []string `json:"dates"`
	Ventas       []int    `json:"sales"`
	Devoluciones []int    `json:"returns"`
	Montos       []int64  `json:"amounts"`
}

// ProductosChart subconjunto top 5 listo para graficar; las descripciones
// largas van truncadas a 20 caracteres con puntos suspensivos.
type ProductosChart struct {
	Nombres []string `json:"names"`
	Montos  []int64  `json:"amounts"`
}

// ChartData carga lista para el front de gráficos.
type ChartData struct {
	EvolucionDiaria EvolucionDiaria `json:"daily_evolution"`
	TopProductos    ProductosChart  `json:"top_products"`
	TopLugares      ProductosChart  `json:"top_locations"`
}

// ReporteResponse resultado del agregador de rango de fechas.
// Derivado, nunca persistido. Puede ser parcial: los archivos ilegibles
// aportan cero en vez de fallar el reporte completo.
type ReporteResponse struct {
	TotalVentas       int                   `json:"total_sales"`
	TotalDevoluciones int                   `json:"total_returns"`
	VentasNetas       int                   `json:"net_sales"`
	MontoTotal        int64                 `json:"total_amount"`
	LugaresActivos    int                   `json:"active_locations"`
	PromedioDiario    string                `json:"promedio_diario"` // monto neto promedio por día, 2 decimales
	Rango             RangoFechas           `json:"date_range"`
	DatosDiarios      map[string]DatoDiario `json:"daily_data"`
	TopProductos      []ProductoTop         `json:"top_products"`
	VentasPorLugar    map[string]LugarTop   `json:"location_sales"`
	Charts            ChartData             `json:"chart_data"`
}
