package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/boadigital/bazar-ops/internal/application/dto"
	"github.com/boadigital/bazar-ops/internal/application/usecase"
	"github.com/boadigital/bazar-ops/internal/domain"
)

// SalesHandler maneja el registro de ventas, devoluciones y el listado de
// transacciones del día.
type SalesHandler struct {
	uc *usecase.VentasUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *usecase.VentasUseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// RecordSale godoc
// @Summary      Registrar una venta
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordSaleRequest  true  "Lugar y código"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/record_sale [post]
func (h *SalesHandler) RecordSale(c *fiber.Ctx) error {
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.RegistrarVenta(in.Lugar, in.Codigo)
	if err != nil {
		return salesError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ProcessReturn godoc
// @Summary      Registrar una devolución
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReturnRequest  true  "Lugar, código y motivo"
// @Success      201   {object}  dto.ReturnResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/process_return [post]
func (h *SalesHandler) ProcessReturn(c *fiber.Ctx) error {
	var in dto.ReturnRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ProcesarDevolucion(in.Lugar, in.Codigo, in.Motivo)
	if err != nil {
		if errors.Is(err, domain.ErrSinVentas) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_SALES", Message: "no hay ventas del producto hoy en ese lugar"})
		}
		return salesError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DailyTransactions godoc
// @Summary      Transacciones del día de un lugar
// @Tags         sales
// @Produce      json
// @Param        lugar  path  string  true  "Lugar de venta"
// @Success      200    {object}  dto.TransaccionesDiaResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/daily_transactions/{lugar} [get]
func (h *SalesHandler) DailyTransactions(c *fiber.Ctx) error {
	lugar, err := urlParam(c, "lugar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "lugar es requerido"})
	}
	out, err := h.uc.TransaccionesDelDia(lugar)
	if err != nil {
		return salesError(c, err)
	}
	return c.JSON(out)
}

func salesError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrProductoNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
