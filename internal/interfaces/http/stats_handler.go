package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcamargo/bascula-api/internal/application/dto"
	"github.com/jcamargo/bascula-api/internal/application/usecase"
)

// StatsHandler maneja el resumen agregado (protegido, solo lectura).
type StatsHandler struct {
	uc *usecase.StatsUseCase
}

// NewStatsHandler construye el handler.
func NewStatsHandler(uc *usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Summary godoc
// @Summary      Resumen agregado del período
// @Tags         stats
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Fecha inicial (inclusiva)"
// @Param        to    query  string  false  "Fecha final (inclusiva)"
// @Success      200  {object}  dto.StatsSummaryResponse
// @Router       /api/stats/summary [get]
func (h *StatsHandler) Summary(c *fiber.Ctx) error {
	var in dto.StatsRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "query inválido"})
	}
	out, err := h.uc.Summary(c.Context(), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
