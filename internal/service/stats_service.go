package service

import (
	"context"

	"github.com/payrail/payment-orchestrator/internal/model"
)

const maxWindowDays = 365

// StatsSource provides grouped success-rate aggregates.
type StatsSource interface {
	AggregateSuccessRates(ctx context.Context, gateway string, windowDays int) ([]model.GatewayStats, error)
}

type StatsService struct {
	source StatsSource
}

func NewStatsService(source StatsSource) *StatsService {
	return &StatsService{source: source}
}

// SuccessRates returns per-pair aggregates over the trailing window,
// optionally scoped to one gateway. The effective window is returned
// alongside the stats.
func (s *StatsService) SuccessRates(ctx context.Context, gateway string, windowDays int) (int, []model.GatewayStats, error) {
	if windowDays <= 0 {
		windowDays = successRateWindowDays
	}
	if windowDays > maxWindowDays {
		windowDays = maxWindowDays
	}

	stats, err := s.source.AggregateSuccessRates(ctx, gateway, windowDays)
	if err != nil {
		return 0, nil, err
	}
	return windowDays, stats, nil
}
