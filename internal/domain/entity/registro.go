package entity

// Registro es una fila genérica de un archivo delimitado con encabezado
// (telefonos.csv, bazares.csv, puntosventa.csv, tutoriales.csv). Las llaves
// vienen normalizadas por el almacén: minúsculas, espacios como "_".
type Registro map[string]string

// Get devuelve el primer valor no vacío entre las llaves indicadas.
// Los archivos reales traen nombres de columna inconsistentes (lugar,
// nombrepunto, nombre); esto absorbe esa variación.
func (r Registro) Get(keys ...string) string {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != "" {
			return v
		}
	}
	return ""
}
