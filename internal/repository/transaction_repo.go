package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/payrail/payment-orchestrator/internal/model"
)

type TransactionRepository struct {
	pool *pgxpool.Pool
}

func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

const uniqueViolation = "23505"

// Create inserts txn inside its own database transaction and fills in
// the storage-assigned id and timestamps. A transaction_id collision
// surfaces as ErrConflict.
func (r *TransactionRepository) Create(ctx context.Context, txn *model.Transaction) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO transactions (transaction_id, gateway, payment_mode, base_amount, fee_amount, total_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		txn.TransactionID, txn.Gateway, txn.PaymentMode,
		txn.BaseAmount, txn.FeeAmount, txn.TotalAmount, txn.Status,
	).Scan(&txn.ID, &txn.CreatedAt, &txn.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: %s", ErrConflict, txn.TransactionID)
		}
		return fmt.Errorf("insert transaction: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit create: %w", err)
	}
	return nil
}

// Update writes only the supplied fields and always refreshes
// updated_at. The caller guarantees at least one field is set.
func (r *TransactionRepository) Update(ctx context.Context, transactionID string, status, gatewayTxnID, gatewayResponse string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin update: %w", err)
	}
	defer tx.Rollback(ctx)

	sets := []string{"updated_at = NOW()"}
	args := []any{}
	arg := 1

	if status != "" {
		sets = append(sets, fmt.Sprintf("status = $%d", arg))
		args = append(args, status)
		arg++
	}
	if gatewayTxnID != "" {
		sets = append(sets, fmt.Sprintf("gateway_transaction_id = $%d", arg))
		args = append(args, gatewayTxnID)
		arg++
	}
	if gatewayResponse != "" {
		sets = append(sets, fmt.Sprintf("gateway_response = $%d", arg))
		args = append(args, gatewayResponse)
		arg++
	}

	args = append(args, transactionID)
	query := fmt.Sprintf("UPDATE transactions SET %s WHERE transaction_id = $%d",
		strings.Join(sets, ", "), arg)

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, transactionID)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit update: %w", err)
	}
	return nil
}

func (r *TransactionRepository) GetByTransactionID(ctx context.Context, transactionID string) (*model.Transaction, error) {
	var txn model.Transaction
	var gatewayTxnID, gatewayResponse *string

	err := r.pool.QueryRow(ctx,
		`SELECT id, transaction_id, gateway, payment_mode, base_amount, fee_amount, total_amount,
			status, gateway_transaction_id, gateway_response, created_at, updated_at
		FROM transactions
		WHERE transaction_id = $1`,
		transactionID,
	).Scan(&txn.ID, &txn.TransactionID, &txn.Gateway, &txn.PaymentMode,
		&txn.BaseAmount, &txn.FeeAmount, &txn.TotalAmount,
		&txn.Status, &gatewayTxnID, &gatewayResponse, &txn.CreatedAt, &txn.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, transactionID)
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}

	if gatewayTxnID != nil {
		txn.GatewayTransactionID = *gatewayTxnID
	}
	if gatewayResponse != nil {
		txn.GatewayResponse = *gatewayResponse
	}
	return &txn, nil
}

// List returns transactions newest first, optionally filtered by
// status.
func (r *TransactionRepository) List(ctx context.Context, status string, limit int) ([]model.Transaction, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, transaction_id, gateway, payment_mode, base_amount, fee_amount, total_amount,
			status, gateway_transaction_id, gateway_response, created_at, updated_at
		FROM transactions
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2`,
		status, limit)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	var txns []model.Transaction
	for rows.Next() {
		var txn model.Transaction
		var gatewayTxnID, gatewayResponse *string
		err := rows.Scan(&txn.ID, &txn.TransactionID, &txn.Gateway, &txn.PaymentMode,
			&txn.BaseAmount, &txn.FeeAmount, &txn.TotalAmount,
			&txn.Status, &gatewayTxnID, &gatewayResponse, &txn.CreatedAt, &txn.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		if gatewayTxnID != nil {
			txn.GatewayTransactionID = *gatewayTxnID
		}
		if gatewayResponse != nil {
			txn.GatewayResponse = *gatewayResponse
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}

	return txns, nil
}
