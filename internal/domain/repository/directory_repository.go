package repository

import "github.com/boadigital/bazar-ops/internal/domain/entity"

// DirectoryRepository acceso de solo lectura a los archivos informativos del
// directorio de datos. Todas las lecturas son fail-open: archivo ausente o
// ilegible ⇒ slice vacío.
type DirectoryRepository interface {
	Telefonos() []entity.Registro
	Bazares() []entity.Registro
	Puntos() []entity.Registro
	Tutoriales() []entity.Registro
}

// CommentRepository captura de comentarios en archivos por día.
type CommentRepository interface {
	// AppendEvento agrega a commentsventa_<fecha>.csv.
	AppendEvento(timestamp, comentario string) error
	// AppendPunto agrega a commentsbazar_<fecha>.csv.
	AppendPunto(timestamp, comentario string) error
}
