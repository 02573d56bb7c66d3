package entity

// Producto es una fila del catálogo (productos.csv, sin encabezado).
// Los precios se mantienen como string tal cual vienen del archivo: pueden
// traer puntuación de moneda ($, puntos de miles) y se interpretan recién al
// agregar (ver analytics).
type Producto struct {
	CodFabrica  string `json:"cod_fabrica"`
	CodVenta    string `json:"cod_venta"`
	Descripcion string `json:"descripcion"`
	Precio      string `json:"precio"`
}

// Matches indica si alguno de los dos códigos del producto coincide con el
// código consultado (comparación exacta; el llamador ya normalizó a mayúsculas).
func (p Producto) Matches(codigo string) bool {
	return p.CodFabrica == codigo || p.CodVenta == codigo
}

// Codigo devuelve el código preferente del producto: cod_venta si existe,
// si no cod_fabrica. Es la misma llave que usa el agregador.
func (p Producto) Codigo() string {
	if p.CodVenta != "" {
		return p.CodVenta
	}
	return p.CodFabrica
}
