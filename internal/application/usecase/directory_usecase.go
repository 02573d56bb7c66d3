package usecase

import (
	"sort"
	"strings"
	"time"

	"github.com/boadigital/bazar-ops/internal/domain/entity"
	"github.com/boadigital/bazar-ops/internal/domain/repository"
)

// bazarFechaLayout formato dd-mm-yy de la columna fech_termino de bazares.csv.
const bazarFechaLayout = "02-01-06"

// DirectoryUseCase listados informativos: lugares de venta, bazares
// vigentes, puntos de venta, tutoriales y teléfonos.
type DirectoryUseCase struct {
	repo repository.DirectoryRepository
}

// NewDirectoryUseCase construye el caso de uso.
func NewDirectoryUseCase(repo repository.DirectoryRepository) *DirectoryUseCase {
	return &DirectoryUseCase{repo: repo}
}

// Lugares devuelve los lugares únicos de telefonos.csv, ordenados.
// Los archivos reales traen el lugar bajo distintos nombres de columna.
func (uc *DirectoryUseCase) Lugares() []string {
	set := make(map[string]struct{})
	for _, t := range uc.repo.Telefonos() {
		lugar := strings.TrimSpace(t.Get("lugar", "nombrepunto", "nombre"))
		if lugar != "" {
			set[lugar] = struct{}{}
		}
	}
	lugares := make([]string, 0, len(set))
	for lugar := range set {
		lugares = append(lugares, lugar)
	}
	sort.Strings(lugares)
	return lugares
}

// BazaresActivos devuelve los bazares cuya fecha de término (dd-mm-yy) es hoy
// o posterior. Una fecha ilegible no descarta el bazar: ante la duda se
// muestra (fail-open, igual que el resto de las lecturas informativas).
func (uc *DirectoryUseCase) BazaresActivos(now time.Time) []entity.Registro {
	hoy := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var activos []entity.Registro
	for _, b := range uc.repo.Bazares() {
		termino := strings.TrimSpace(b.Get("fech_termino"))
		if termino == "" {
			continue
		}
		fecha, err := time.ParseInLocation(bazarFechaLayout, termino, now.Location())
		if err != nil || !fecha.Before(hoy) {
			activos = append(activos, b)
		}
	}
	return activos
}

// Puntos devuelve los puntos de venta tal cual vienen del archivo.
func (uc *DirectoryUseCase) Puntos() []entity.Registro { return uc.repo.Puntos() }

// Tutoriales devuelve los tutoriales tal cual vienen del archivo.
func (uc *DirectoryUseCase) Tutoriales() []entity.Registro { return uc.repo.Tutoriales() }

// Telefonos devuelve el directorio telefónico (solo tras autorización).
func (uc *DirectoryUseCase) Telefonos() []entity.Registro { return uc.repo.Telefonos() }
