package csvstore

import (
	"os"
	"path/filepath"

	"github.com/boadigital/bazar-ops/internal/domain"
	"github.com/boadigital/bazar-ops/internal/domain/entity"
	"github.com/boadigital/bazar-ops/internal/domain/repository"
)

const catalogFile = "productos.csv"

// productos.csv viene sin encabezado; el orden de columnas es fijo.
var catalogFields = []string{"cod_fabrica", "cod_venta", "descripcion", "precio"}

var photoExtensions = []string{".jpg", ".jpeg", ".png"}

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo implementa CatalogRepository sobre productos.csv.
// No hay caché ni índice: cada operación relee el archivo y busca por barrido
// lineal, suficiente para catálogos de pocos miles de filas.
type CatalogRepo struct {
	store     *Store
	photosDir string
}

// NewCatalogRepository construye el adaptador. photosDir puede ser "" si la
// instalación no sirve fotos.
func NewCatalogRepository(store *Store, photosDir string) *CatalogRepo {
	return &CatalogRepo{store: store, photosDir: photosDir}
}

// All devuelve el catálogo completo; archivo ausente o ilegible ⇒ vacío.
func (r *CatalogRepo) All() []entity.Producto {
	rows := r.store.LoadLenient(catalogFile, catalogFields)
	productos := make([]entity.Producto, 0, len(rows))
	for _, row := range rows {
		productos = append(productos, entity.Producto{
			CodFabrica:  row.Get("cod_fabrica"),
			CodVenta:    row.Get("cod_venta"),
			Descripcion: row.Get("descripcion"),
			Precio:      row.Get("precio"),
		})
	}
	return productos
}

// FindByCode busca el primer producto que coincide con el código en
// cualquiera de sus dos llaves. Con códigos duplicados gana el primero.
func (r *CatalogRepo) FindByCode(codigo string) (*entity.Producto, error) {
	for _, p := range r.All() {
		if p.Matches(codigo) {
			return &p, nil
		}
	}
	return nil, domain.ErrProductoNotFound
}

// PhotoURL devuelve la ruta pública de la primera foto existente del
// producto, probando las extensiones conocidas en orden.
func (r *CatalogRepo) PhotoURL(codFabrica string) string {
	if r.photosDir == "" || codFabrica == "" {
		return ""
	}
	for _, ext := range photoExtensions {
		if _, err := os.Stat(filepath.Join(r.photosDir, codFabrica+ext)); err == nil {
			return "/static/fotos/" + codFabrica + ext
		}
	}
	return ""
}
