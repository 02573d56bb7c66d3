package entity

// Venta es una línea de un archivo de ventas por lugar y día
// (<lugar>_<YYYY-MM-DD>.csv). Nunca se actualiza ni borra.
type Venta struct {
	Timestamp   string `json:"timestamp"` // YYYY-MM-DD HH:MM:SS
	Lugar       string `json:"lugar"`
	CodFabrica  string `json:"cod_fabrica"`
	CodVenta    string `json:"cod_venta"`
	Descripcion string `json:"descripcion"`
	Precio      string `json:"precio"`
}

// Codigo devuelve la llave de producto de la fila: cod_venta si existe,
// si no cod_fabrica.
func (v Venta) Codigo() string {
	if v.CodVenta != "" {
		return v.CodVenta
	}
	return v.CodFabrica
}

// Devolucion es una línea del archivo compartido de devoluciones del día
// (devoluciones_<YYYY-MM-DD>.csv). El precio va ya negado.
type Devolucion struct {
	Timestamp   string `json:"timestamp"`
	Lugar       string `json:"lugar"`
	CodFabrica  string `json:"cod_fabrica"`
	CodVenta    string `json:"cod_venta"`
	Descripcion string `json:"descripcion"`
	Precio      string `json:"precio"` // siempre ≤ 0 por construcción
	Motivo      string `json:"motivo"`
	Tipo        string `json:"tipo"` // "devolucion"
}

// Codigo devuelve la llave de producto de la devolución.
func (d Devolucion) Codigo() string {
	if d.CodVenta != "" {
		return d.CodVenta
	}
	return d.CodFabrica
}

// VentasLugar agrupa las ventas de un día leídas de un archivo, junto con el
// lugar recuperado del nombre del archivo.
type VentasLugar struct {
	Lugar  string
	Ventas []Venta
}
