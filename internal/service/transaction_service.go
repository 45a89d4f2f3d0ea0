package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/payrail/payment-orchestrator/internal/dto"
	"github.com/payrail/payment-orchestrator/internal/model"
)

// ErrNoFieldsToUpdate is returned when an update supplies none of the
// optional fields.
var ErrNoFieldsToUpdate = errors.New("no fields to update")

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// TransactionStore is the ledger's persistence surface.
type TransactionStore interface {
	Create(ctx context.Context, txn *model.Transaction) error
	Update(ctx context.Context, transactionID string, status, gatewayTxnID, gatewayResponse string) error
	GetByTransactionID(ctx context.Context, transactionID string) (*model.Transaction, error)
	List(ctx context.Context, status string, limit int) ([]model.Transaction, error)
}

type TransactionService struct {
	store TransactionStore
}

func NewTransactionService(store TransactionStore) *TransactionService {
	return &TransactionService{store: store}
}

// CreateTransaction records a chosen payment option as a pending
// transaction. A missing transaction_id gets a generated token; a
// missing status defaults to pending.
func (s *TransactionService) CreateTransaction(ctx context.Context, req *dto.CreateTransactionRequest) (*model.Transaction, error) {
	transactionID := req.TransactionID
	if transactionID == "" {
		transactionID = uuid.NewString()
	}

	status := req.Status
	if status == "" {
		status = model.StatusPending
	}

	txn := &model.Transaction{
		TransactionID: transactionID,
		Gateway:       req.Gateway,
		PaymentMode:   req.PaymentMode,
		BaseAmount:    req.BaseAmount,
		FeeAmount:     req.FeeAmount,
		TotalAmount:   req.TotalAmount,
		Status:        status,
	}

	if err := s.store.Create(ctx, txn); err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) error {
	if req.Empty() {
		return ErrNoFieldsToUpdate
	}
	return s.store.Update(ctx, transactionID, req.Status, req.GatewayTransactionID, req.GatewayResponse)
}

func (s *TransactionService) GetTransaction(ctx context.Context, transactionID string) (*model.Transaction, error) {
	return s.store.GetByTransactionID(ctx, transactionID)
}

func (s *TransactionService) ListTransactions(ctx context.Context, status string, limit int) ([]model.Transaction, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.store.List(ctx, status, limit)
}
