package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dlsventas/comisiones-api/internal/application/dto"
	"github.com/dlsventas/comisiones-api/internal/application/usecase"
	"github.com/dlsventas/comisiones-api/internal/domain"
)

// StatsHandler expone las agregaciones mensuales, anuales y el desglose
// por producto (protegido).
type StatsHandler struct {
	uc *usecase.StatsUseCase
}

func NewStatsHandler(uc *usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Month godoc
// @Summary      Estadísticas de un mes
// @Description  Totales, serie diaria, rankings, mejor día y comparación contra el mes anterior (enero compara contra diciembre del año previo).
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Param        year   query  int  true  "año (ej. 2025)"
// @Param        month  query  int  true  "mes 1-12"
// @Success      200  {object}  dto.MonthStatsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stats/month [get]
func (h *StatsHandler) Month(c *fiber.Ctx) error {
	year := c.QueryInt("year")
	month := c.QueryInt("month")
	out, err := h.uc.Month(year, month)
	if err != nil {
		return statsError(c, err)
	}
	return c.JSON(out)
}

// Year godoc
// @Summary      Estadísticas de un año completo
// @Description  Doce cubetas mensuales con crecimiento mes a mes y totales anuales.
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Param        year  query  int  true  "año (ej. 2025)"
// @Success      200  {object}  dto.YearStatsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stats/year [get]
func (h *StatsHandler) Year(c *fiber.Ctx) error {
	out, err := h.uc.Year(c.QueryInt("year"))
	if err != nil {
		return statsError(c, err)
	}
	return c.JSON(out)
}

// Breakdown godoc
// @Summary      Desglose del mes por producto
// @Description  Para cada producto, las facturas que lo incluyen con monto y comisión; las comisiones del resto se agrupan aparte.
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Param        year   query  int  true  "año (ej. 2025)"
// @Param        month  query  int  true  "mes 1-12"
// @Success      200  {object}  dto.BreakdownResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stats/breakdown [get]
func (h *StatsHandler) Breakdown(c *fiber.Ctx) error {
	out, err := h.uc.Breakdown(c.QueryInt("year"), c.QueryInt("month"))
	if err != nil {
		return statsError(c, err)
	}
	return c.JSON(out)
}

func statsError(c *fiber.Ctx, err error) error {
	if err == domain.ErrInvalidInput {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "año y mes (1-12) son requeridos"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
