// Package csvstore implementa la persistencia de la aplicación sobre archivos
// planos delimitados en disco. No hay base de datos: cada archivo es una tabla
// y cada línea un registro de campos llave-valor.
//
// Reglas del formato:
//   - Lectura: el delimitador se infiere de los primeros 1024 bytes del
//     archivo (";" gana sobre ","; por defecto ","). UTF-8.
//   - Nombres de campo: minúsculas y espacios internos como "_".
//   - Valores: recortados de espacios en los bordes; campo ausente = "".
//   - Escritura: siempre con el delimitador configurado y línea de encabezado.
package csvstore

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Record es un registro de campos llave-valor leído de una línea.
type Record map[string]string

// Get devuelve el valor del campo o "" si no existe.
func (r Record) Get(field string) string { return r[field] }

// Store lee y escribe archivos delimitados bajo un directorio base.
type Store struct {
	dir       string
	delimiter rune // delimitador de escritura
}

// New construye un Store sobre el directorio dado.
func New(dir string, delimiter rune) *Store {
	if delimiter == 0 {
		delimiter = ';'
	}
	return &Store{dir: dir, delimiter: delimiter}
}

// Dir devuelve el directorio base del Store.
func (s *Store) Dir() string { return s.dir }

// Load lee el archivo completo y devuelve sus registros en orden.
// Si fieldnames no es nil el archivo se trata como sin encabezado y la primera
// línea es un dato (caso del catálogo de productos).
// A diferencia de LoadLenient, los errores de I/O se devuelven al llamador.
func (s *Store) Load(name string, fieldnames []string) ([]Record, error) {
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readRecords(f, fieldnames)
}

// LoadLenient es el adaptador fail-open sobre Load: cualquier error de
// lectura (archivo ausente, permisos, formato) produce un slice vacío.
// Es una política deliberada para uso informativo y de reportes: mejor un
// resultado incompleto que una petición caída.
func (s *Store) LoadLenient(name string, fieldnames []string) []Record {
	records, err := s.Load(name, fieldnames)
	if err != nil {
		return nil
	}
	return records
}

// Save sobrescribe el archivo: línea de encabezado y una línea por registro
// en el orden de fieldnames. Campos ausentes se escriben vacíos.
func (s *Store) Save(name string, rows []Record, fieldnames []string) error {
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return fmt.Errorf("guardar %s: %w", name, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = s.delimiter
	if err := w.Write(fieldnames); err != nil {
		return fmt.Errorf("guardar %s: %w", name, err)
	}
	line := make([]string, len(fieldnames))
	for _, row := range rows {
		for i, field := range fieldnames {
			line[i] = row[field]
		}
		if err := w.Write(line); err != nil {
			return fmt.Errorf("guardar %s: %w", name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("guardar %s: %w", name, err)
	}
	return nil
}

// Append agrega un registro al final del archivo, escribiendo primero el
// encabezado si y solo si el archivo no existía. Sin lock: una carrera en la
// primera escritura puede duplicar el encabezado (limitación documentada).
func (s *Store) Append(name string, row Record, fieldnames []string) error {
	path := filepath.Join(s.dir, name)
	_, statErr := os.Stat(path)
	existed := statErr == nil

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("abrir %s: %w", name, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Comma = s.delimiter
	if !existed {
		if err := w.Write(fieldnames); err != nil {
			return fmt.Errorf("escribir encabezado %s: %w", name, err)
		}
	}
	line := make([]string, len(fieldnames))
	for i, field := range fieldnames {
		line[i] = row[field]
	}
	if err := w.Write(line); err != nil {
		return fmt.Errorf("escribir registro %s: %w", name, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("escribir registro %s: %w", name, err)
	}
	return nil
}

// Exists indica si el archivo existe bajo el directorio base.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(s.dir, name))
	return err == nil
}

// readRecords lee todos los registros de r aplicando detección de delimitador
// y normalización de nombres de columna.
func readRecords(r io.ReadSeeker, fieldnames []string) ([]Record, error) {
	delim, err := detectDelimiter(r)
	if err != nil {
		return nil, err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	cr := csv.NewReader(r)
	cr.Comma = delim
	cr.FieldsPerRecord = -1 // archivos reales traen filas cortas y largas
	cr.LazyQuotes = true

	header := normalizeFields(fieldnames)
	var records []Record
	for {
		line, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if header == nil {
			header = normalizeFields(line)
			continue
		}
		rec := make(Record, len(header))
		for i, field := range header {
			if field == "" {
				continue
			}
			if i < len(line) {
				rec[field] = strings.TrimSpace(line[i])
			} else {
				rec[field] = ""
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// detectDelimiter mira los primeros 1024 bytes: ";" tiene prioridad sobre ","
// y "," es el valor por defecto si no aparece ninguno.
func detectDelimiter(r io.Reader) (rune, error) {
	sample := make([]byte, 1024)
	n, err := r.Read(sample)
	if err != nil && err != io.EOF {
		return 0, err
	}
	head := string(sample[:n])
	switch {
	case strings.Contains(head, ";"):
		return ';', nil
	default:
		return ',', nil
	}
}

// normalizeFields normaliza nombres de columna: recorte, minúsculas y
// espacios internos como "_".
func normalizeFields(fields []string) []string {
	if fields == nil {
		return nil
	}
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(f)), " ", "_")
	}
	return out
}
