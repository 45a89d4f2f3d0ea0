package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/payrail/payment-orchestrator/internal/dto"
	"github.com/payrail/payment-orchestrator/internal/repository"
	"github.com/payrail/payment-orchestrator/internal/service"
)

type TransactionHandler struct {
	svc *service.TransactionService
}

func NewTransactionHandler(svc *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

func (h *TransactionHandler) Create(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "validation failed: " + err.Error(),
		})
		return
	}

	txn, err := h.svc.CreateTransaction(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			c.JSON(http.StatusConflict, dto.ErrorResponse{
				Error:   "transaction_id already exists",
				Details: err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "failed to create transaction",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, txn)
}

// Update applies a partial update from query parameters, matching the
// original surface: status, gateway_transaction_id, gateway_response.
func (h *TransactionHandler) Update(c *gin.Context) {
	transactionID := c.Param("transaction_id")

	req := dto.UpdateTransactionRequest{
		Status:               c.Query("status"),
		GatewayTransactionID: c.Query("gateway_transaction_id"),
		GatewayResponse:      c.Query("gateway_response"),
	}

	err := h.svc.UpdateTransaction(c.Request.Context(), transactionID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoFieldsToUpdate):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "no fields to update"})
		case errors.Is(err, repository.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "transaction not found"})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error:   "failed to update transaction",
				Details: err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, dto.UpdateAckResponse{
		TransactionID: transactionID,
		Message:       "transaction updated",
	})
}

func (h *TransactionHandler) Get(c *gin.Context) {
	transactionID := c.Param("transaction_id")

	txn, err := h.svc.GetTransaction(c.Request.Context(), transactionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "transaction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "failed to fetch transaction",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, txn)
}

func (h *TransactionHandler) List(c *gin.Context) {
	status := c.Query("status")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	txns, err := h.svc.ListTransactions(c.Request.Context(), status, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "failed to list transactions",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: txns,
		Count:        len(txns),
	})
}
