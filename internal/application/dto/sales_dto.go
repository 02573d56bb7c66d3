package dto

// RecordSaleRequest registro de una venta en un lugar.
type RecordSaleRequest struct {
	Lugar  string `json:"lugar"`
	Codigo string `json:"codigo"`
}

// ReturnRequest registro de una devolución en un lugar.
type ReturnRequest struct {
	Lugar  string `json:"lugar"`
	Codigo string `json:"codigo"`
	Motivo string `json:"motivo"`
}

// ReturnResponse confirma la devolución e informa cuántas ventas del producto
// había hoy en el lugar.
type ReturnResponse struct {
	Message           string `json:"message"`
	VentasEncontradas int    `json:"ventas_encontradas"`
}

// Transaccion una venta o devolución del día, vista unificada.
type Transaccion struct {
	Timestamp   string `json:"timestamp"`
	Lugar       string `json:"lugar"`
	CodFabrica  string `json:"cod_fabrica"`
	CodVenta    string `json:"cod_venta"`
	Descripcion string `json:"descripcion"`
	Precio      string `json:"precio"`
	Motivo      string `json:"motivo,omitempty"`
	Tipo        string `json:"tipo"` // "venta" | "devolucion"
}

// TransaccionesDiaResponse movimientos del día de un lugar con totales.
// MontoTotal suma los precios con signo (las devoluciones restan);
// MontoDevoluciones acumula los valores absolutos devueltos.
type TransaccionesDiaResponse struct {
	Transacciones     []Transaccion `json:"transacciones"`
	TotalVentas       int           `json:"total_ventas"`
	TotalDevoluciones int           `json:"total_devoluciones"`
	VentasNetas       int           `json:"ventas_netas"`
	MontoTotal        int64         `json:"monto_total"`
	MontoDevoluciones int64         `json:"monto_devoluciones"`
	Lugar             string        `json:"lugar"`
	Fecha             string        `json:"fecha"`
}
