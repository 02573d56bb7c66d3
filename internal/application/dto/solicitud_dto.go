package dto

import "github.com/boadigital/bazar-ops/internal/domain/entity"

// CreateSolicitudRequest creación de un ticket de solicitud.
type CreateSolicitudRequest struct {
	Solicitante string `json:"solicitante"`
	Tipo        string `json:"tipo"`
	Cliente     string `json:"cliente"`
	Banco       string `json:"banco"`
	RUT         string `json:"rut"`
	Email       string `json:"email"`
	Monto       string `json:"monto"`
	Motivo      string `json:"motivo"`
}

// CreateSolicitudResponse devuelve el id generado.
type CreateSolicitudResponse struct {
	ID string `json:"id"`
}

// CloseSolicitudRequest cierre de un ticket; el comentario es obligatorio.
type CloseSolicitudRequest struct {
	ID         string `json:"id"`
	Comentario string `json:"comentario"`
}

// SolicitudesResponse listado ordenado por timestamp descendente.
type SolicitudesResponse struct {
	Solicitudes []entity.Solicitud `json:"solicitudes"`
}

// PendientesResponse contador para el badge de la portada.
type PendientesResponse struct {
	Pendientes int `json:"pendientes"`
}

// SolicitudLoginRequest identificación por nombre contra telefonos.csv.
type SolicitudLoginRequest struct {
	Identificador string `json:"identificador"`
}

// SolicitudLoginResponse usuario reconocido y su nivel de acceso.
type SolicitudLoginResponse struct {
	Nombre  string `json:"nombre"`
	EsAdmin bool   `json:"es_admin"`
}
