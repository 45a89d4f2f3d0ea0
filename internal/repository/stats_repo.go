package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/payrail/payment-orchestrator/internal/model"
)

type StatsRepository struct {
	pool *pgxpool.Pool
}

func NewStatsRepository(pool *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{pool: pool}
}

// SuccessRate returns the percentage of successful transactions for
// the pair over the trailing window. sampled is false when the pair
// has no history in the window; the caller decides the cold-start
// default.
func (r *StatsRepository) SuccessRate(ctx context.Context, gateway, paymentMode string, windowDays int) (rate float64, sampled bool, err error) {
	var total, successful int
	err = r.pool.QueryRow(ctx,
		`SELECT COUNT(*),
			COUNT(*) FILTER (WHERE status = 'success')
		FROM transactions
		WHERE gateway = $1
			AND payment_mode = $2
			AND created_at >= NOW() - ($3 * INTERVAL '1 day')`,
		gateway, paymentMode, windowDays,
	).Scan(&total, &successful)
	if err != nil {
		return 0, false, fmt.Errorf("query success rate: %w", err)
	}

	if total == 0 {
		return 0, false, nil
	}
	return float64(successful) / float64(total) * 100, true, nil
}

// AggregateSuccessRates groups the trailing window by (gateway, mode),
// ordered by success rate descending then volume descending. Pass an
// empty gateway to cover all of them.
func (r *StatsRepository) AggregateSuccessRates(ctx context.Context, gateway string, windowDays int) ([]model.GatewayStats, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT gateway, payment_mode,
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE status = 'success') AS successful,
			COUNT(*) FILTER (WHERE status = 'failed') AS failed,
			COUNT(*) FILTER (WHERE status = 'pending') AS pending,
			ROUND(COUNT(*) FILTER (WHERE status = 'success')::numeric / COUNT(*)::numeric * 100, 2) AS success_rate,
			MAX(created_at) AS last_transaction_at
		FROM transactions
		WHERE created_at >= NOW() - ($1 * INTERVAL '1 day')
			AND ($2 = '' OR gateway = $2)
		GROUP BY gateway, payment_mode
		ORDER BY success_rate DESC, total DESC`,
		windowDays, gateway)
	if err != nil {
		return nil, fmt.Errorf("query aggregated success rates: %w", err)
	}
	defer rows.Close()

	var stats []model.GatewayStats
	for rows.Next() {
		var s model.GatewayStats
		var last *time.Time
		err := rows.Scan(&s.Gateway, &s.PaymentMode, &s.Total, &s.Successful,
			&s.Failed, &s.Pending, &s.SuccessRate, &last)
		if err != nil {
			return nil, fmt.Errorf("scan stats row: %w", err)
		}
		s.LastTransactionAt = last
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stats: %w", err)
	}

	return stats, nil
}
