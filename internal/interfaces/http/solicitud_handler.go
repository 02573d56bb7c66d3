package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/boadigital/bazar-ops/internal/application/dto"
	"github.com/boadigital/bazar-ops/internal/application/usecase"
	"github.com/boadigital/bazar-ops/internal/domain"
)

// SolicitudHandler maneja la cola de tickets de solicitudes.
type SolicitudHandler struct {
	uc *usecase.SolicitudUseCase
}

// NewSolicitudHandler construye el handler.
func NewSolicitudHandler(uc *usecase.SolicitudUseCase) *SolicitudHandler {
	return &SolicitudHandler{uc: uc}
}

// Create godoc
// @Summary      Crear solicitud
// @Tags         solicitudes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSolicitudRequest  true  "Datos de la solicitud"
// @Success      201   {object}  dto.CreateSolicitudResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/solicitudes [post]
func (h *SolicitudHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSolicitudRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Crear(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar solicitudes
// @Tags         solicitudes
// @Produce      json
// @Success      200  {object}  dto.SolicitudesResponse
// @Router       /api/solicitudes [get]
func (h *SolicitudHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.Listar())
}

// Close godoc
// @Summary      Cerrar solicitud con comentario
// @Tags         solicitudes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CloseSolicitudRequest  true  "ID y comentario de cierre"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/solicitudes/close [post]
func (h *SolicitudHandler) Close(c *fiber.Ctx) error {
	var in dto.CloseSolicitudRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Cerrar(in.ID, in.Comentario); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "solicitud no encontrada"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(dto.MessageResponse{Message: "Solicitud cerrada"})
}

// Pendientes godoc
// @Summary      Contador de solicitudes pendientes
// @Tags         solicitudes
// @Produce      json
// @Success      200  {object}  dto.PendientesResponse
// @Router       /api/solicitudes/pendientes [get]
func (h *SolicitudHandler) Pendientes(c *fiber.Ctx) error {
	return c.JSON(h.uc.Pendientes())
}

// Login godoc
// @Summary      Identificación por nombre
// @Tags         solicitudes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SolicitudLoginRequest  true  "Nombre del usuario"
// @Success      200   {object}  dto.SolicitudLoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/solicitudes/login [post]
func (h *SolicitudHandler) Login(c *fiber.Ctx) error {
	var in dto.SolicitudLoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Login(in.Identificador)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "identificador es requerido"})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no reconocido"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(out)
}
