package dto

type CheckoutRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type CreateTransactionRequest struct {
	TransactionID string  `json:"transaction_id"`
	Gateway       string  `json:"gateway" binding:"required"`
	PaymentMode   string  `json:"payment_mode" binding:"required"`
	BaseAmount    float64 `json:"base_amount" binding:"required,gt=0"`
	FeeAmount     float64 `json:"fee_amount" binding:"gte=0"`
	TotalAmount   float64 `json:"total_amount" binding:"required,gt=0"`
	Status        string  `json:"status"`
}

// UpdateTransactionRequest carries the optional fields of a partial
// update. All three come from query parameters; at least one must be
// set.
type UpdateTransactionRequest struct {
	Status               string
	GatewayTransactionID string
	GatewayResponse      string
}

func (r UpdateTransactionRequest) Empty() bool {
	return r.Status == "" && r.GatewayTransactionID == "" && r.GatewayResponse == ""
}
