package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrProductoNotFound = errors.New("producto no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrSinVentas        = errors.New("no se encontraron ventas de este producto hoy")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrComentarioVacio  = errors.New("comentario vacío")
)
