package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/dlsventas/comisiones-api/internal/application/dto"
	"github.com/dlsventas/comisiones-api/internal/application/usecase"
	"github.com/dlsventas/comisiones-api/internal/domain"
)

// ReportHandler genera los reportes PDF descargables (protegido).
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Monthly godoc
// @Summary      Reporte PDF del mes
// @Description  Resumen, tabla de facturas y rankings del mes en un PDF descargable.
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        year   query  int  true  "año (ej. 2025)"
// @Param        month  query  int  true  "mes 1-12"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/monthly [get]
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	year := c.QueryInt("year")
	month := c.QueryInt("month")
	data, err := h.uc.Monthly(year, month)
	if err != nil {
		return reportError(c, err)
	}
	return sendPDF(c, data, fmt.Sprintf("reporte-mensual-%04d-%02d.pdf", year, month))
}

// Annual godoc
// @Summary      Reporte PDF anual
// @Description  Tabla mes a mes con crecimiento y totales. Con from y to exporta solo ese rango de meses del año.
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        year  query  int  true   "año (ej. 2025)"
// @Param        from  query  int  false  "mes inicial 1-12"
// @Param        to    query  int  false  "mes final 1-12"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/annual [get]
func (h *ReportHandler) Annual(c *fiber.Ctx) error {
	year := c.QueryInt("year")
	data, err := h.uc.Annual(year, c.QueryInt("from"), c.QueryInt("to"))
	if err != nil {
		return reportError(c, err)
	}
	return sendPDF(c, data, fmt.Sprintf("reporte-anual-%04d.pdf", year))
}

// Breakdown godoc
// @Summary      Reporte PDF del desglose por producto
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        year   query  int  true  "año (ej. 2025)"
// @Param        month  query  int  true  "mes 1-12"
// @Success      200  {file}  binary
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/breakdown [get]
func (h *ReportHandler) Breakdown(c *fiber.Ctx) error {
	year := c.QueryInt("year")
	month := c.QueryInt("month")
	data, err := h.uc.Breakdown(year, month)
	if err != nil {
		return reportError(c, err)
	}
	return sendPDF(c, data, fmt.Sprintf("desglose-%04d-%02d.pdf", year, month))
}

func sendPDF(c *fiber.Ctx, data []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(data)
}

func reportError(c *fiber.Ctx, err error) error {
	if err == domain.ErrInvalidInput {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "período inválido: revise año, mes y rango"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
