package csvstore

import (
	"github.com/boadigital/bazar-ops/internal/domain/entity"
	"github.com/boadigital/bazar-ops/internal/domain/repository"
)

const solicitudesFile = "solicitudes.csv"

var solicitudFields = []string{
	"id", "timestamp", "solicitante_nombre", "tipo", "cliente_nombre",
	"banco", "rut", "email", "monto", "motivo", "estado", "comentario_cierre",
}

var _ repository.SolicitudRepository = (*SolicitudRepo)(nil)

// SolicitudRepo implementa SolicitudRepository sobre solicitudes.csv.
type SolicitudRepo struct {
	store *Store
}

// NewSolicitudRepository construye el adaptador sobre un Store con raíz en el
// directorio de datos.
func NewSolicitudRepository(store *Store) *SolicitudRepo {
	return &SolicitudRepo{store: store}
}

// Append agrega la solicitud al final del archivo.
func (r *SolicitudRepo) Append(s entity.Solicitud) error {
	return r.store.Append(solicitudesFile, recordDeSolicitud(s), solicitudFields)
}

// All devuelve todas las solicitudes; archivo ausente o ilegible ⇒ vacío.
func (r *SolicitudRepo) All() []entity.Solicitud {
	rows := r.store.LoadLenient(solicitudesFile, nil)
	solicitudes := make([]entity.Solicitud, 0, len(rows))
	for _, row := range rows {
		solicitudes = append(solicitudes, entity.Solicitud{
			ID:                row.Get("id"),
			Timestamp:         row.Get("timestamp"),
			SolicitanteNombre: row.Get("solicitante_nombre"),
			Tipo:              row.Get("tipo"),
			ClienteNombre:     row.Get("cliente_nombre"),
			Banco:             row.Get("banco"),
			RUT:               row.Get("rut"),
			Email:             row.Get("email"),
			Monto:             row.Get("monto"),
			Motivo:            row.Get("motivo"),
			Estado:            row.Get("estado"),
			ComentarioCierre:  row.Get("comentario_cierre"),
		})
	}
	return solicitudes
}

// SaveAll reescribe solicitudes.csv completo. Ver la nota de concurrencia en
// el contrato: dos cierres simultáneos pueden perder una actualización.
func (r *SolicitudRepo) SaveAll(solicitudes []entity.Solicitud) error {
	rows := make([]Record, 0, len(solicitudes))
	for _, s := range solicitudes {
		rows = append(rows, recordDeSolicitud(s))
	}
	return r.store.Save(solicitudesFile, rows, solicitudFields)
}

func recordDeSolicitud(s entity.Solicitud) Record {
	return Record{
		"id":                 s.ID,
		"timestamp":          s.Timestamp,
		"solicitante_nombre": s.SolicitanteNombre,
		"tipo":               s.Tipo,
		"cliente_nombre":     s.ClienteNombre,
		"banco":              s.Banco,
		"rut":                s.RUT,
		"email":              s.Email,
		"monto":              s.Monto,
		"motivo":             s.Motivo,
		"estado":             s.Estado,
		"comentario_cierre":  s.ComentarioCierre,
	}
}
