package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/boadigital/bazar-ops/internal/application/dto"
	"github.com/boadigital/bazar-ops/internal/application/usecase"
	"github.com/boadigital/bazar-ops/internal/domain"
)

// CommentHandler maneja los comentarios libres de eventos y puntos de venta.
type CommentHandler struct {
	uc *usecase.CommentUseCase
}

// NewCommentHandler construye el handler.
func NewCommentHandler(uc *usecase.CommentUseCase) *CommentHandler {
	return &CommentHandler{uc: uc}
}

// Evento godoc
// @Summary      Guardar comentario de eventos/bazares
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CommentRequest  true  "Comentario"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/comments/eventos [post]
func (h *CommentHandler) Evento(c *fiber.Ctx) error {
	return h.guardar(c, h.uc.GuardarEvento)
}

// Punto godoc
// @Summary      Guardar comentario de puntos de venta
// @Tags         comments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CommentRequest  true  "Comentario"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/comments/puntos [post]
func (h *CommentHandler) Punto(c *fiber.Ctx) error {
	return h.guardar(c, h.uc.GuardarPunto)
}

func (h *CommentHandler) guardar(c *fiber.Ctx, fn func(string) (*dto.MessageResponse, error)) error {
	var in dto.CommentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := fn(in.Comentario)
	if err != nil {
		if errors.Is(err, domain.ErrComentarioVacio) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "comentario vacío"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
