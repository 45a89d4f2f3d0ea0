package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payrail/payment-orchestrator/internal/model"
)

func TestTransactionRepository_RoundTrip(t *testing.T) {
	pool := getTestPool(t)
	repo := NewTransactionRepository(pool)
	ctx := context.Background()

	txn := &model.Transaction{
		TransactionID: "it-roundtrip-1",
		Gateway:       "Razorpay",
		PaymentMode:   "debit_card",
		BaseAmount:    2500,
		FeeAmount:     12.50,
		TotalAmount:   2512.50,
		Status:        model.StatusPending,
	}
	require.NoError(t, repo.Create(ctx, txn))
	assert.NotZero(t, txn.ID)
	assert.False(t, txn.CreatedAt.IsZero())

	got, err := repo.GetByTransactionID(ctx, "it-roundtrip-1")
	require.NoError(t, err)
	assert.Equal(t, txn.Gateway, got.Gateway)
	assert.Equal(t, txn.PaymentMode, got.PaymentMode)
	assert.Equal(t, txn.BaseAmount, got.BaseAmount)
	assert.Equal(t, txn.FeeAmount, got.FeeAmount)
	assert.Equal(t, txn.TotalAmount, got.TotalAmount)
	assert.Equal(t, model.StatusPending, got.Status)
	assert.Empty(t, got.GatewayTransactionID)

	require.NoError(t, repo.Update(ctx, "it-roundtrip-1", model.StatusSuccess, "gw-42", "captured"))

	updated, err := repo.GetByTransactionID(ctx, "it-roundtrip-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusSuccess, updated.Status)
	assert.Equal(t, "gw-42", updated.GatewayTransactionID)
	assert.Equal(t, "captured", updated.GatewayResponse)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))
}

func TestTransactionRepository_ConflictOnDuplicate(t *testing.T) {
	pool := getTestPool(t)
	repo := NewTransactionRepository(pool)
	ctx := context.Background()

	first := &model.Transaction{
		TransactionID: "it-dup-1",
		Gateway:       "PayU",
		PaymentMode:   "upi",
		BaseAmount:    100,
		TotalAmount:   100,
		Status:        model.StatusPending,
	}
	require.NoError(t, repo.Create(ctx, first))

	second := &model.Transaction{
		TransactionID: "it-dup-1",
		Gateway:       "Cashfree",
		PaymentMode:   "upi",
		BaseAmount:    200,
		TotalAmount:   200,
		Status:        model.StatusPending,
	}
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, ErrConflict)

	// The original row is untouched.
	got, err := repo.GetByTransactionID(ctx, "it-dup-1")
	require.NoError(t, err)
	assert.Equal(t, "PayU", got.Gateway)
}

func TestTransactionRepository_NotFound(t *testing.T) {
	pool := getTestPool(t)
	repo := NewTransactionRepository(pool)
	ctx := context.Background()

	_, err := repo.GetByTransactionID(ctx, "it-missing")
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.Update(ctx, "it-missing", model.StatusFailed, "", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTransactionRepository_ListFilterAndOrder(t *testing.T) {
	pool := getTestPool(t)
	repo := NewTransactionRepository(pool)
	ctx := context.Background()

	seed := []struct {
		id     string
		status string
	}{
		{"it-list-1", model.StatusSuccess},
		{"it-list-2", model.StatusFailed},
		{"it-list-3", model.StatusSuccess},
	}
	for _, s := range seed {
		require.NoError(t, repo.Create(ctx, &model.Transaction{
			TransactionID: s.id,
			Gateway:       "Razorpay",
			PaymentMode:   "upi",
			BaseAmount:    100,
			TotalAmount:   100,
			Status:        s.status,
		}))
	}

	all, err := repo.List(ctx, "", 50)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i-1].CreatedAt.Before(all[i].CreatedAt), "newest first")
	}

	succeeded, err := repo.List(ctx, model.StatusSuccess, 50)
	require.NoError(t, err)
	assert.Len(t, succeeded, 2)

	limited, err := repo.List(ctx, "", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
