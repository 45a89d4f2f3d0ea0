package database

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/payrail/payment-orchestrator/internal/fees"
	"github.com/payrail/payment-orchestrator/internal/model"
)

type seedProfile struct {
	Gateway     string
	PaymentMode string
	TxnRange    [2]int     // min, max transactions over the window
	SuccessRate [2]float64 // min, max share of successful outcomes
	AmountRange [2]float64
}

// Per-pair profiles mirror the quote catalog so every quotable pair
// has history. Rates are deliberately uneven so recommendations have
// something to discriminate on.
var seedProfiles = []seedProfile{
	{"Razorpay", fees.ModeDebitCard, [2]int{40, 60}, [2]float64{0.90, 0.96}, [2]float64{200, 5000}},
	{"Razorpay", fees.ModeCreditCard, [2]int{35, 55}, [2]float64{0.85, 0.93}, [2]float64{500, 30000}},
	{"Razorpay", fees.ModeNetbanking, [2]int{25, 40}, [2]float64{0.80, 0.90}, [2]float64{1000, 60000}},
	{"Razorpay", fees.ModeUPI, [2]int{60, 90}, [2]float64{0.93, 0.98}, [2]float64{50, 2000}},
	{"PayU", fees.ModeDebitCard, [2]int{30, 45}, [2]float64{0.86, 0.93}, [2]float64{200, 5000}},
	{"PayU", fees.ModeCreditCard, [2]int{25, 40}, [2]float64{0.82, 0.90}, [2]float64{500, 30000}},
	{"PayU", fees.ModeUPI, [2]int{45, 70}, [2]float64{0.91, 0.96}, [2]float64{50, 2000}},
	{"Cashfree", fees.ModeDebitCard, [2]int{20, 35}, [2]float64{0.84, 0.92}, [2]float64{200, 5000}},
	{"Cashfree", fees.ModeUPI, [2]int{35, 55}, [2]float64{0.88, 0.95}, [2]float64{50, 2000}},
}

// SeedHistory generates a deterministic 60-day transaction history so
// success-rate aggregation and recommendations work on a fresh
// database. Idempotent: skips when any rows already exist.
func SeedHistory(ctx context.Context, pool *pgxpool.Pool) error {
	rng := rand.New(rand.NewSource(42))
	schedule := fees.DefaultSchedule()

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM transactions").Scan(&count); err != nil {
		return fmt.Errorf("check existing data: %w", err)
	}
	if count > 0 {
		log.Info().Msg("transaction history already present, skipping seed")
		return nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now().UTC()
	total := 0

	for _, p := range seedProfiles {
		numTxns := p.TxnRange[0] + rng.Intn(p.TxnRange[1]-p.TxnRange[0]+1)
		successShare := p.SuccessRate[0] + rng.Float64()*(p.SuccessRate[1]-p.SuccessRate[0])

		for i := 0; i < numTxns; i++ {
			amount := p.AmountRange[0] + rng.Float64()*(p.AmountRange[1]-p.AmountRange[0])
			amount = math.Round(amount*100) / 100

			q := schedule.Compute(amount, p.PaymentMode)

			status := model.StatusSuccess
			if roll := rng.Float64(); roll > successShare {
				if rng.Float64() < 0.8 {
					status = model.StatusFailed
				} else {
					status = model.StatusPending
				}
			}

			createdAt := now.
				AddDate(0, 0, -rng.Intn(60)).
				Add(-time.Duration(rng.Intn(24)) * time.Hour).
				Add(-time.Duration(rng.Intn(60)) * time.Minute)

			_, err := tx.Exec(ctx,
				`INSERT INTO transactions (transaction_id, gateway, payment_mode, base_amount, fee_amount, total_amount, status, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)`,
				uuid.NewString(), p.Gateway, p.PaymentMode,
				amount, fees.Round2(q.FeeAmount), fees.Round2(q.TotalAmount),
				status, createdAt)
			if err != nil {
				return fmt.Errorf("insert seed transaction: %w", err)
			}
			total++
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}

	log.Info().Int("count", total).Msg("seeded transaction history")
	return nil
}
