package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/payrail/payment-orchestrator/internal/dto"
	"github.com/payrail/payment-orchestrator/internal/service"
)

type CheckoutHandler struct {
	svc *service.QuoteService
}

func NewCheckoutHandler(svc *service.QuoteService) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	result, err := h.svc.Quote(c.Request.Context(), req.Amount)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "failed to compute quote",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.CheckoutResponse{
		OriginalAmount: result.OriginalAmount,
		PaymentOptions: result.Options,
		Recommended:    result.Recommended,
	})
}
