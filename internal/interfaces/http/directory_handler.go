package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/boadigital/bazar-ops/internal/application/usecase"
)

// DirectoryHandler maneja los listados informativos de archivos planos.
type DirectoryHandler struct {
	uc *usecase.DirectoryUseCase
}

// NewDirectoryHandler construye el handler.
func NewDirectoryHandler(uc *usecase.DirectoryUseCase) *DirectoryHandler {
	return &DirectoryHandler{uc: uc}
}

// Lugares godoc
// @Summary      Lugares de venta únicos
// @Tags         directory
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/lugares [get]
func (h *DirectoryHandler) Lugares(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"lugares": h.uc.Lugares()})
}

// Bazares godoc
// @Summary      Bazares con fecha de término vigente
// @Tags         directory
// @Produce      json
// @Router       /api/bazares [get]
func (h *DirectoryHandler) Bazares(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"bazares": h.uc.BazaresActivos(time.Now())})
}

// Puntos godoc
// @Summary      Puntos de venta
// @Tags         directory
// @Produce      json
// @Router       /api/puntos [get]
func (h *DirectoryHandler) Puntos(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"puntos": h.uc.Puntos()})
}

// Tutoriales godoc
// @Summary      Tutoriales
// @Tags         directory
// @Produce      json
// @Router       /api/tutoriales [get]
func (h *DirectoryHandler) Tutoriales(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"tutoriales": h.uc.Tutoriales()})
}

// Telefonos godoc
// @Summary      Directorio telefónico (protegido)
// @Tags         directory
// @Security     Bearer
// @Produce      json
// @Router       /api/telefonos [get]
func (h *DirectoryHandler) Telefonos(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"telefonos": h.uc.Telefonos()})
}
