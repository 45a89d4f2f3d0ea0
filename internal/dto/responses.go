package dto

import "github.com/payrail/payment-orchestrator/internal/model"

type CheckoutResponse struct {
	OriginalAmount float64               `json:"original_amount"`
	PaymentOptions []model.PaymentOption `json:"payment_options"`
	Recommended    *model.PaymentOption  `json:"recommended,omitempty"`
}

type FeeResponse struct {
	Amount        float64 `json:"amount"`
	PaymentMode   string  `json:"payment_mode"`
	FeeAmount     float64 `json:"fee_amount"`
	TotalAmount   float64 `json:"total_amount"`
	FeePercentage float64 `json:"fee_percentage"`
}

type TransactionListResponse struct {
	Transactions []model.Transaction `json:"transactions"`
	Count        int                 `json:"count"`
}

type UpdateAckResponse struct {
	TransactionID string `json:"transaction_id"`
	Message       string `json:"message"`
}

type SuccessRatesResponse struct {
	WindowDays int                  `json:"window_days"`
	Stats      []model.GatewayStats `json:"stats"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
