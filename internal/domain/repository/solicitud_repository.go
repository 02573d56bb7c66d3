package repository

import "github.com/boadigital/bazar-ops/internal/domain/entity"

// SolicitudRepository persistencia del archivo único solicitudes.csv.
// Crear es append-only; cerrar reescribe el archivo completo (lectura,
// mutación de un registro, reescritura). Dos cierres concurrentes corren una
// carrera lectura-modificación-escritura en la que el segundo escritor puede
// perder la actualización del primero: debilidad conocida y documentada.
type SolicitudRepository interface {
	Append(s entity.Solicitud) error

	// All devuelve todas las solicitudes en orden de archivo.
	// Archivo ausente o ilegible ⇒ slice vacío.
	All() []entity.Solicitud

	// SaveAll reescribe el archivo completo con las filas dadas.
	SaveAll(solicitudes []entity.Solicitud) error
}
