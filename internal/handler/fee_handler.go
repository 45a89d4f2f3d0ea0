package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/payrail/payment-orchestrator/internal/dto"
	"github.com/payrail/payment-orchestrator/internal/fees"
)

type FeeHandler struct {
	schedule *fees.Schedule
}

func NewFeeHandler(schedule *fees.Schedule) *FeeHandler {
	return &FeeHandler{schedule: schedule}
}

// CalculateFee evaluates a single (amount, mode) pair. Amounts are
// rounded for exposure; the percentage is returned raw.
func (h *FeeHandler) CalculateFee(c *gin.Context) {
	amountParam := c.Query("amount")
	paymentMode := c.Query("payment_mode")

	amount, err := strconv.ParseFloat(amountParam, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid amount"})
		return
	}
	if amount < 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "amount must not be negative"})
		return
	}
	if paymentMode == "" {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "payment_mode is required",
			Details: "known modes: " + strings.Join(h.schedule.Modes(), ", "),
		})
		return
	}

	q := h.schedule.Compute(amount, paymentMode)

	c.JSON(http.StatusOK, dto.FeeResponse{
		Amount:        amount,
		PaymentMode:   paymentMode,
		FeeAmount:     fees.Round2(q.FeeAmount),
		TotalAmount:   fees.Round2(q.TotalAmount),
		FeePercentage: q.FeePercent,
	})
}
