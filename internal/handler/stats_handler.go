package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/payrail/payment-orchestrator/internal/dto"
	"github.com/payrail/payment-orchestrator/internal/service"
)

type StatsHandler struct {
	svc *service.StatsService
}

func NewStatsHandler(svc *service.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) GetSuccessRates(c *gin.Context) {
	h.respond(c, "")
}

func (h *StatsHandler) GetGatewaySuccessRates(c *gin.Context) {
	h.respond(c, c.Param("gateway"))
}

func (h *StatsHandler) respond(c *gin.Context, gateway string) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	windowDays, stats, err := h.svc.SuccessRates(c.Request.Context(), gateway, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "failed to aggregate success rates",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.SuccessRatesResponse{
		WindowDays: windowDays,
		Stats:      stats,
	})
}
