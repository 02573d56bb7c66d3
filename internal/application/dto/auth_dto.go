package dto

// AuthorizeRequest contraseña de la sección de informaciones.
type AuthorizeRequest struct {
	Password string `json:"password"`
}

// AuthorizeResponse token Bearer para las rutas protegidas.
type AuthorizeResponse struct {
	Token string `json:"token"`
}

// CommentRequest comentario libre de eventos o puntos de venta.
type CommentRequest struct {
	Comentario string `json:"comment"`
}
