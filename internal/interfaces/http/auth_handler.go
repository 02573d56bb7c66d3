package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/boadigital/bazar-ops/internal/application/auth"
	"github.com/boadigital/bazar-ops/internal/application/dto"
	"github.com/boadigital/bazar-ops/internal/domain"
)

// AuthHandler maneja la autorización de la sección de informaciones.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Authorize godoc
// @Summary      Autorizar acceso a informaciones y reportes
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AuthorizeRequest  true  "Contraseña"
// @Success      200   {object}  dto.AuthorizeResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/authorize [post]
func (h *AuthHandler) Authorize(c *fiber.Ctx) error {
	var in dto.AuthorizeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Authorize(in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "contraseña incorrecta"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
