package dto

import "github.com/boadigital/bazar-ops/internal/domain/entity"

// SearchProductRequest consulta de producto por código.
type SearchProductRequest struct {
	Codigo string `json:"codigo"`
}

// ProductoResponse producto encontrado más la ruta de su foto si existe.
type ProductoResponse struct {
	Producto entity.Producto `json:"producto"`
	Imagen   string          `json:"imagen,omitempty"`
}
