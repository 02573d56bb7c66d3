package entity

// Estados de una solicitud.
const (
	EstadoPendiente = "Pendiente"
	EstadoCerrado   = "Cerrado"
)

// TipoDevolucion es el tipo de solicitud que exige cliente y monto.
const TipoDevolucion = "Devolución"

// Solicitud es un ticket del archivo solicitudes.csv. Se crea Pendiente y
// solo muta estado y comentario de cierre al cerrarse; el id nunca se reusa.
type Solicitud struct {
	ID                string `json:"id"`
	Timestamp         string `json:"timestamp"`
	SolicitanteNombre string `json:"solicitante_nombre"`
	Tipo              string `json:"tipo"`
	ClienteNombre     string `json:"cliente_nombre"`
	Banco             string `json:"banco"`
	RUT               string `json:"rut"`
	Email             string `json:"email"`
	Monto             string `json:"monto"`
	Motivo            string `json:"motivo"`
	Estado            string `json:"estado"`
	ComentarioCierre  string `json:"comentario_cierre"`
}
