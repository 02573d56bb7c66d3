package csvstore

import (
	"github.com/boadigital/bazar-ops/internal/domain/entity"
	"github.com/boadigital/bazar-ops/internal/domain/repository"
)

var _ repository.DirectoryRepository = (*DirectoryRepo)(nil)

// DirectoryRepo implementa DirectoryRepository sobre los archivos
// informativos del directorio de datos.
type DirectoryRepo struct {
	store *Store
}

// NewDirectoryRepository construye el adaptador sobre un Store con raíz en el
// directorio de datos.
func NewDirectoryRepository(store *Store) *DirectoryRepo {
	return &DirectoryRepo{store: store}
}

func (r *DirectoryRepo) Telefonos() []entity.Registro  { return r.registros("telefonos.csv") }
func (r *DirectoryRepo) Bazares() []entity.Registro    { return r.registros("bazares.csv") }
func (r *DirectoryRepo) Puntos() []entity.Registro     { return r.registros("puntosventa.csv") }
func (r *DirectoryRepo) Tutoriales() []entity.Registro { return r.registros("tutoriales.csv") }

func (r *DirectoryRepo) registros(name string) []entity.Registro {
	rows := r.store.LoadLenient(name, nil)
	out := make([]entity.Registro, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.Registro(row))
	}
	return out
}
