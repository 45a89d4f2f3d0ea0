package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payrail/payment-orchestrator/internal/dto"
	"github.com/payrail/payment-orchestrator/internal/model"
	"github.com/payrail/payment-orchestrator/internal/repository"
)

// memStore is an in-memory TransactionStore for unit tests.
type memStore struct {
	byToken map[string]*model.Transaction
	nextID  int64

	lastListStatus string
	lastListLimit  int
}

func newMemStore() *memStore {
	return &memStore{byToken: map[string]*model.Transaction{}}
}

func (m *memStore) Create(_ context.Context, txn *model.Transaction) error {
	if _, ok := m.byToken[txn.TransactionID]; ok {
		return fmt.Errorf("%w: %s", repository.ErrConflict, txn.TransactionID)
	}
	m.nextID++
	txn.ID = m.nextID
	txn.CreatedAt = time.Now()
	txn.UpdatedAt = txn.CreatedAt
	stored := *txn
	m.byToken[txn.TransactionID] = &stored
	return nil
}

func (m *memStore) Update(_ context.Context, transactionID string, status, gatewayTxnID, gatewayResponse string) error {
	txn, ok := m.byToken[transactionID]
	if !ok {
		return fmt.Errorf("%w: %s", repository.ErrNotFound, transactionID)
	}
	if status != "" {
		txn.Status = status
	}
	if gatewayTxnID != "" {
		txn.GatewayTransactionID = gatewayTxnID
	}
	if gatewayResponse != "" {
		txn.GatewayResponse = gatewayResponse
	}
	txn.UpdatedAt = txn.UpdatedAt.Add(time.Millisecond)
	return nil
}

func (m *memStore) GetByTransactionID(_ context.Context, transactionID string) (*model.Transaction, error) {
	txn, ok := m.byToken[transactionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", repository.ErrNotFound, transactionID)
	}
	copied := *txn
	return &copied, nil
}

func (m *memStore) List(_ context.Context, status string, limit int) ([]model.Transaction, error) {
	m.lastListStatus = status
	m.lastListLimit = limit
	var out []model.Transaction
	for _, txn := range m.byToken {
		if status == "" || txn.Status == status {
			out = append(out, *txn)
		}
	}
	return out, nil
}

func TestCreateTransaction_GeneratesTokenAndDefaultsStatus(t *testing.T) {
	store := newMemStore()
	svc := NewTransactionService(store)

	txn, err := svc.CreateTransaction(context.Background(), &dto.CreateTransactionRequest{
		Gateway:     "Razorpay",
		PaymentMode: "upi",
		BaseAmount:  1500,
		TotalAmount: 1500,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, txn.TransactionID)
	assert.Equal(t, model.StatusPending, txn.Status)
	assert.NotZero(t, txn.ID)

	// Two generated tokens must differ.
	txn2, err := svc.CreateTransaction(context.Background(), &dto.CreateTransactionRequest{
		Gateway:     "Razorpay",
		PaymentMode: "upi",
		BaseAmount:  1500,
		TotalAmount: 1500,
	})
	require.NoError(t, err)
	assert.NotEqual(t, txn.TransactionID, txn2.TransactionID)
}

func TestCreateTransaction_KeepsClientTokenAndStatus(t *testing.T) {
	store := newMemStore()
	svc := NewTransactionService(store)

	txn, err := svc.CreateTransaction(context.Background(), &dto.CreateTransactionRequest{
		TransactionID: "txn-abc123",
		Gateway:       "PayU",
		PaymentMode:   "credit_card",
		BaseAmount:    5000,
		FeeAmount:     5,
		TotalAmount:   5005,
		Status:        "success",
	})
	require.NoError(t, err)
	assert.Equal(t, "txn-abc123", txn.TransactionID)
	assert.Equal(t, "success", txn.Status)
}

func TestCreateTransaction_ConflictOnDuplicateToken(t *testing.T) {
	store := newMemStore()
	svc := NewTransactionService(store)

	req := &dto.CreateTransactionRequest{
		TransactionID: "dup-1",
		Gateway:       "Cashfree",
		PaymentMode:   "upi",
		BaseAmount:    100,
		TotalAmount:   100,
	}

	_, err := svc.CreateTransaction(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.CreateTransaction(context.Background(), req)
	assert.ErrorIs(t, err, repository.ErrConflict)
}

func TestUpdateTransaction_RequiresAtLeastOneField(t *testing.T) {
	svc := NewTransactionService(newMemStore())

	err := svc.UpdateTransaction(context.Background(), "whatever", dto.UpdateTransactionRequest{})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
}

func TestUpdateTransaction_RoundTrip(t *testing.T) {
	store := newMemStore()
	svc := NewTransactionService(store)

	created, err := svc.CreateTransaction(context.Background(), &dto.CreateTransactionRequest{
		TransactionID: "rt-1",
		Gateway:       "Razorpay",
		PaymentMode:   "debit_card",
		BaseAmount:    2500,
		FeeAmount:     12.50,
		TotalAmount:   2512.50,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, created.Status)

	err = svc.UpdateTransaction(context.Background(), "rt-1", dto.UpdateTransactionRequest{
		Status:               model.StatusSuccess,
		GatewayTransactionID: "gw-789",
	})
	require.NoError(t, err)

	got, err := svc.GetTransaction(context.Background(), "rt-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusSuccess, got.Status)
	assert.Equal(t, "gw-789", got.GatewayTransactionID)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	svc := NewTransactionService(newMemStore())

	err := svc.UpdateTransaction(context.Background(), "missing", dto.UpdateTransactionRequest{
		Status: model.StatusFailed,
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestListTransactions_LimitClamping(t *testing.T) {
	store := newMemStore()
	svc := NewTransactionService(store)

	_, err := svc.ListTransactions(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Equal(t, defaultListLimit, store.lastListLimit)

	_, err = svc.ListTransactions(context.Background(), "", 10000)
	require.NoError(t, err)
	assert.Equal(t, maxListLimit, store.lastListLimit)

	_, err = svc.ListTransactions(context.Background(), "failed", 25)
	require.NoError(t, err)
	assert.Equal(t, 25, store.lastListLimit)
	assert.Equal(t, "failed", store.lastListStatus)
}
