package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/boadigital/bazar-ops/internal/application/analytics"
	"github.com/boadigital/bazar-ops/internal/application/dto"
)

const reportFechaLayout = "2006-01-02"

// ReportPDFGenerator genera el PDF del reporte.
type ReportPDFGenerator interface {
	GenerateReportPDF(reporte *dto.ReporteResponse) ([]byte, error)
}

// ReportExcelExporter genera la planilla xlsx del reporte.
type ReportExcelExporter interface {
	Export(reporte *dto.ReporteResponse) ([]byte, error)
}

// ReportHandler maneja el reporte de ventas y sus exportaciones (protegido).
type ReportHandler struct {
	uc    *analytics.ReportUseCase
	pdf   ReportPDFGenerator
	excel ReportExcelExporter
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *analytics.ReportUseCase, pdf ReportPDFGenerator, excel ReportExcelExporter) *ReportHandler {
	return &ReportHandler{uc: uc, pdf: pdf, excel: excel}
}

// Get godoc
// @Summary      Reporte de ventas por período o rango
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        period  query  string  false  "today | week | month | year"  default(today)
// @Param        start   query  string  false  "YYYY-MM-DD (junto con end)"
// @Param        end     query  string  false  "YYYY-MM-DD (junto con start)"
// @Success      200  {object}  dto.ReporteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports [get]
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	reporte, err := h.reporte(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.JSON(reporte)
}

// PDF godoc
// @Summary      Reporte de ventas en PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        period  query  string  false  "today | week | month | year"
// @Router       /api/reports/pdf [get]
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	reporte, err := h.reporte(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	data, err := h.pdf.GenerateReportPDF(reporte)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, reportDisposition("pdf", reporte))
	return c.Send(data)
}

// Excel godoc
// @Summary      Reporte de ventas en Excel
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        period  query  string  false  "today | week | month | year"
// @Router       /api/reports/excel [get]
func (h *ReportHandler) Excel(c *fiber.Ctx) error {
	reporte, err := h.reporte(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	data, err := h.excel.Export(reporte)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, reportDisposition("xlsx", reporte))
	return c.Send(data)
}

// reporte resuelve el rango pedido: start+end explícitos tienen prioridad,
// si no se usa period (por defecto today).
func (h *ReportHandler) reporte(c *fiber.Ctx) (*dto.ReporteResponse, error) {
	start := c.Query("start")
	end := c.Query("end")
	if start != "" || end != "" {
		inicio, err := time.ParseInLocation(reportFechaLayout, start, time.Local)
		if err != nil {
			return nil, fmt.Errorf("start inválido, formato YYYY-MM-DD")
		}
		fin, err := time.ParseInLocation(reportFechaLayout, end, time.Local)
		if err != nil {
			return nil, fmt.Errorf("end inválido, formato YYYY-MM-DD")
		}
		if fin.Before(inicio) {
			return nil, fmt.Errorf("end es anterior a start")
		}
		return h.uc.PorRango(inicio, fin), nil
	}
	return h.uc.PorPeriodo(c.Query("period", "today"), time.Now()), nil
}

func reportDisposition(ext string, reporte *dto.ReporteResponse) string {
	return fmt.Sprintf(`attachment; filename="reporte_%s_%s.%s"`,
		reporte.Rango.Inicio, reporte.Rango.Fin, ext)
}
