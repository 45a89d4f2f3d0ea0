package model

import (
	"time"
)

// Transaction statuses. The column itself is an open string so
// gateway-specific statuses pass through verbatim; these are the
// lifecycle values this service writes itself.
const (
	StatusPending = "pending"
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

type Transaction struct {
	ID                   int64     `json:"id"`
	TransactionID        string    `json:"transaction_id"`
	Gateway              string    `json:"gateway"`
	PaymentMode          string    `json:"payment_mode"`
	BaseAmount           float64   `json:"base_amount"`
	FeeAmount            float64   `json:"fee_amount"`
	TotalAmount          float64   `json:"total_amount"`
	Status               string    `json:"status"`
	GatewayTransactionID string    `json:"gateway_transaction_id,omitempty"`
	GatewayResponse      string    `json:"gateway_response,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// PaymentOption is one quoted (gateway, mode) choice. Derived per
// request, never persisted.
type PaymentOption struct {
	Gateway       string   `json:"gateway"`
	PaymentMode   string   `json:"payment_mode"`
	BaseAmount    float64  `json:"base_amount"`
	FeeAmount     float64  `json:"fee_amount"`
	TotalAmount   float64  `json:"total_amount"`
	FeePercentage float64  `json:"fee_percentage"`
	SuccessRate   *float64 `json:"success_rate,omitempty"`
}

// GatewayStats is a per-(gateway, mode) aggregate over a trailing
// window of transaction history.
type GatewayStats struct {
	Gateway           string     `json:"gateway"`
	PaymentMode       string     `json:"payment_mode"`
	Total             int        `json:"total"`
	Successful        int        `json:"successful"`
	Failed            int        `json:"failed"`
	Pending           int        `json:"pending"`
	SuccessRate       float64    `json:"success_rate"`
	LastTransactionAt *time.Time `json:"last_transaction_at,omitempty"`
}
