package csvstore

import (
	"os"
	"strings"
	"unicode"

	"github.com/boadigital/bazar-ops/internal/domain/entity"
	"github.com/boadigital/bazar-ops/internal/domain/repository"
)

const returnsPrefix = "devoluciones_"

var (
	ventaFields = []string{"timestamp", "lugar", "cod_fabrica", "cod_venta", "descripcion", "precio"}
	devolFields = []string{"timestamp", "lugar", "cod_fabrica", "cod_venta", "descripcion", "precio", "motivo", "tipo"}
)

var _ repository.SalesRepository = (*SalesRepo)(nil)

// SalesRepo implementa SalesRepository sobre el directorio de ventas:
// un archivo <lugar>_<fecha>.csv por lugar y día más un archivo compartido
// devoluciones_<fecha>.csv por día.
type SalesRepo struct {
	store *Store
}

// NewSalesRepository construye el adaptador sobre un Store con raíz en el
// directorio de ventas.
func NewSalesRepository(store *Store) *SalesRepo {
	return &SalesRepo{store: store}
}

// SanitizeLugar limpia el nombre del lugar para usarlo en nombres de archivo:
// conserva letras, dígitos, espacios, guiones y guiones bajos, y recorta el
// espacio final.
func SanitizeLugar(lugar string) string {
	var b strings.Builder
	for _, c := range lugar {
		if unicode.IsLetter(c) || unicode.IsDigit(c) || c == ' ' || c == '-' || c == '_' {
			b.WriteRune(c)
		}
	}
	return strings.TrimRight(b.String(), " \t\n")
}

// SalesFileName devuelve el nombre del archivo de ventas de un lugar y fecha.
func SalesFileName(lugar, fecha string) string {
	return SanitizeLugar(lugar) + "_" + fecha + ".csv"
}

// ReturnsFileName devuelve el nombre del archivo de devoluciones de una fecha.
func ReturnsFileName(fecha string) string {
	return returnsPrefix + fecha + ".csv"
}

// AppendSale agrega la venta al archivo de su lugar y fecha (tomada del
// timestamp de la venta), con encabezado si el archivo no existía.
func (r *SalesRepo) AppendSale(v entity.Venta) error {
	fecha := fechaDeTimestamp(v.Timestamp)
	return r.store.Append(SalesFileName(v.Lugar, fecha), Record{
		"timestamp":   v.Timestamp,
		"lugar":       v.Lugar,
		"cod_fabrica": v.CodFabrica,
		"cod_venta":   v.CodVenta,
		"descripcion": v.Descripcion,
		"precio":      v.Precio,
	}, ventaFields)
}

// AppendReturn agrega la devolución al archivo compartido del día.
func (r *SalesRepo) AppendReturn(d entity.Devolucion) error {
	fecha := fechaDeTimestamp(d.Timestamp)
	return r.store.Append(ReturnsFileName(fecha), Record{
		"timestamp":   d.Timestamp,
		"lugar":       d.Lugar,
		"cod_fabrica": d.CodFabrica,
		"cod_venta":   d.CodVenta,
		"descripcion": d.Descripcion,
		"precio":      d.Precio,
		"motivo":      d.Motivo,
		"tipo":        d.Tipo,
	}, devolFields)
}

// SalesByLugar devuelve las ventas del archivo del lugar para la fecha.
func (r *SalesRepo) SalesByLugar(lugar, fecha string) []entity.Venta {
	return ventasDeRecords(r.store.LoadLenient(SalesFileName(lugar, fecha), nil))
}

// SalesForDate recorre el directorio de ventas y devuelve las filas de cada
// archivo cuyo nombre contiene la fecha y no es de devoluciones, junto con el
// lugar recuperado al quitar el sufijo _<fecha>.csv. El orden es el del
// listado del directorio; archivos ilegibles aportan cero filas.
func (r *SalesRepo) SalesForDate(fecha string) []entity.VentasLugar {
	entries, err := os.ReadDir(r.store.Dir())
	if err != nil {
		return nil
	}
	var result []entity.VentasLugar
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.Contains(name, fecha) || strings.HasPrefix(name, returnsPrefix) {
			continue
		}
		result = append(result, entity.VentasLugar{
			Lugar:  strings.TrimSuffix(name, "_"+fecha+".csv"),
			Ventas: ventasDeRecords(r.store.LoadLenient(name, nil)),
		})
	}
	return result
}

// ReturnsForDate devuelve las devoluciones del día; vacío si no hay archivo.
func (r *SalesRepo) ReturnsForDate(fecha string) []entity.Devolucion {
	rows := r.store.LoadLenient(ReturnsFileName(fecha), nil)
	devoluciones := make([]entity.Devolucion, 0, len(rows))
	for _, row := range rows {
		devoluciones = append(devoluciones, entity.Devolucion{
			Timestamp:   row.Get("timestamp"),
			Lugar:       row.Get("lugar"),
			CodFabrica:  row.Get("cod_fabrica"),
			CodVenta:    row.Get("cod_venta"),
			Descripcion: row.Get("descripcion"),
			Precio:      row.Get("precio"),
			Motivo:      row.Get("motivo"),
			Tipo:        row.Get("tipo"),
		})
	}
	return devoluciones
}

func ventasDeRecords(rows []Record) []entity.Venta {
	ventas := make([]entity.Venta, 0, len(rows))
	for _, row := range rows {
		ventas = append(ventas, entity.Venta{
			Timestamp:   row.Get("timestamp"),
			Lugar:       row.Get("lugar"),
			CodFabrica:  row.Get("cod_fabrica"),
			CodVenta:    row.Get("cod_venta"),
			Descripcion: row.Get("descripcion"),
			Precio:      row.Get("precio"),
		})
	}
	return ventas
}

// fechaDeTimestamp extrae la parte de fecha (YYYY-MM-DD) de un timestamp
// "YYYY-MM-DD HH:MM:SS".
func fechaDeTimestamp(ts string) string {
	if i := strings.IndexByte(ts, ' '); i > 0 {
		return ts[:i]
	}
	return ts
}
