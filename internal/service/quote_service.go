package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/payrail/payment-orchestrator/internal/fees"
	"github.com/payrail/payment-orchestrator/internal/model"
)

// CatalogEntry is one (gateway, payment mode) pair eligible for
// quoting.
type CatalogEntry struct {
	Gateway     string
	PaymentMode string
}

// Catalog lists the quotable pairs in display order. Order also
// breaks recommendation ties: the first entry with the highest score
// wins.
var Catalog = []CatalogEntry{
	{"Razorpay", fees.ModeDebitCard},
	{"Razorpay", fees.ModeCreditCard},
	{"Razorpay", fees.ModeNetbanking},
	{"Razorpay", fees.ModeUPI},
	{"PayU", fees.ModeDebitCard},
	{"PayU", fees.ModeCreditCard},
	{"PayU", fees.ModeUPI},
	{"Cashfree", fees.ModeDebitCard},
	{"Cashfree", fees.ModeUPI},
}

const (
	// DefaultSuccessRate is assumed for a pair with no history in the
	// window. A new pair should rank as reliable-but-unproven rather
	// than be penalized to zero.
	DefaultSuccessRate = 95.0

	// costWeight scales the inverse-cost term into the same magnitude
	// range as the 0-100 success rate. Changing it changes rankings.
	costWeight = 1000.0

	successRateWindowDays = 30
)

// SuccessRateSource provides the trailing-window success rate for a
// pair. sampled is false when the pair has no history.
type SuccessRateSource interface {
	SuccessRate(ctx context.Context, gateway, paymentMode string, windowDays int) (rate float64, sampled bool, err error)
}

type QuoteService struct {
	schedule *fees.Schedule
	rates    SuccessRateSource
}

func NewQuoteService(schedule *fees.Schedule, rates SuccessRateSource) *QuoteService {
	return &QuoteService{schedule: schedule, rates: rates}
}

type QuoteResult struct {
	OriginalAmount float64
	Options        []model.PaymentOption
	Recommended    *model.PaymentOption
}

// Quote evaluates every catalog entry for amount: fee via the
// schedule, success rate from history (computed once per pair and
// reused for scoring), and picks the highest-scoring option with
// score = costWeight/total + rate.
func (s *QuoteService) Quote(ctx context.Context, amount float64) (*QuoteResult, error) {
	rates := make([]float64, len(Catalog))

	// Each lookup is independent and read-only, so they fan out.
	g, gctx := errgroup.WithContext(ctx)
	for i, entry := range Catalog {
		i, entry := i, entry
		g.Go(func() error {
			rate, sampled, err := s.rates.SuccessRate(gctx, entry.Gateway, entry.PaymentMode, successRateWindowDays)
			if err != nil {
				return fmt.Errorf("success rate for %s/%s: %w", entry.Gateway, entry.PaymentMode, err)
			}
			if !sampled {
				rate = DefaultSuccessRate
			}
			rates[i] = rate
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &QuoteResult{
		OriginalAmount: amount,
		Options:        make([]model.PaymentOption, len(Catalog)),
	}

	bestScore := 0.0
	bestIdx := -1

	for i, entry := range Catalog {
		q := s.schedule.Compute(amount, entry.PaymentMode)
		rate := rates[i]
		// Exposed rate is rounded like the aggregate endpoint's;
		// scoring stays on full precision.
		displayRate := fees.Round2(rate)

		result.Options[i] = model.PaymentOption{
			Gateway:       entry.Gateway,
			PaymentMode:   entry.PaymentMode,
			BaseAmount:    amount,
			FeeAmount:     fees.Round2(q.FeeAmount),
			TotalAmount:   fees.Round2(q.TotalAmount),
			FeePercentage: q.FeePercent,
			SuccessRate:   &displayRate,
		}

		// Score on the full-precision total, not the rounded one.
		score := costWeight/q.TotalAmount + rate
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestIdx >= 0 {
		recommended := result.Options[bestIdx]
		result.Recommended = &recommended
	}

	return result, nil
}
