package repository

import "github.com/boadigital/bazar-ops/internal/domain/entity"

// SalesRepository persistencia de ventas y devoluciones sobre archivos
// delimitados por lugar y día. Los appends no llevan lock: dos escritores
// concurrentes al mismo archivo pueden intercalar líneas y una carrera en la
// primera escritura puede duplicar el encabezado (limitación aceptada y
// documentada, no un requisito a corregir).
type SalesRepository interface {
	// AppendSale agrega una venta al archivo <lugar>_<fecha>.csv,
	// escribiendo el encabezado si el archivo no existía.
	AppendSale(venta entity.Venta) error

	// AppendReturn agrega una devolución al archivo compartido
	// devoluciones_<fecha>.csv del día.
	AppendReturn(dev entity.Devolucion) error

	// SalesByLugar devuelve las ventas del archivo del lugar para la fecha
	// (YYYY-MM-DD). Archivo ausente o ilegible ⇒ slice vacío.
	SalesByLugar(lugar, fecha string) []entity.Venta

	// SalesForDate devuelve, por archivo de ventas cuyo nombre contiene la
	// fecha (excluyendo devoluciones_*), el lugar recuperado del nombre y
	// sus filas, en el orden del listado del directorio. Archivos ilegibles
	// aportan cero filas.
	SalesForDate(fecha string) []entity.VentasLugar

	// ReturnsForDate devuelve las devoluciones del día, o vacío si el
	// archivo no existe o no se puede leer.
	ReturnsForDate(fecha string) []entity.Devolucion
}
