package repository

import "github.com/boadigital/bazar-ops/internal/domain/entity"

// CatalogRepository acceso de solo lectura al catálogo de productos.
// Cada llamada relee el archivo: la frescura es cero y el costo O(tamaño),
// aceptable para catálogos de pocos miles de filas.
type CatalogRepository interface {
	// All devuelve el catálogo completo en orden de archivo.
	// Archivo ausente o ilegible ⇒ slice vacío sin error (fail-open).
	All() []entity.Producto

	// FindByCode devuelve el primer producto cuyo cod_fabrica o cod_venta
	// coincide exactamente con el código (ya en mayúsculas).
	// Devuelve domain.ErrProductoNotFound si no hay coincidencia.
	FindByCode(codigo string) (*entity.Producto, error)

	// PhotoURL devuelve la ruta pública de la foto del producto
	// (<cod_fabrica>.jpg|jpeg|png) o "" si no existe.
	PhotoURL(codFabrica string) string
}
