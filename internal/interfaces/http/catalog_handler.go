package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/boadigital/bazar-ops/internal/application/dto"
	"github.com/boadigital/bazar-ops/internal/application/usecase"
	"github.com/boadigital/bazar-ops/internal/domain"
)

// CatalogHandler maneja la búsqueda de productos del catálogo.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Search godoc
// @Summary      Buscar producto por código
// @Tags         catalog
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SearchProductRequest  true  "Código de fábrica o de venta"
// @Success      200   {object}  dto.ProductoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/search_product [post]
func (h *CatalogHandler) Search(c *fiber.Ctx) error {
	var in dto.SearchProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Codigo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "codigo es requerido"})
	}
	out, err := h.uc.Buscar(in.Codigo)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CODE", Message: "formato de código no válido"})
		case errors.Is(err, domain.ErrProductoNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}
