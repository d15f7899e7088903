package valuation

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/tradecraft/tradecraft/internal/models"
)

// Benchmark series parameters. The benchmark is synthetic noise around a fixed
// daily drift, standing in for real index data until a market-data provider
// exists. Only its shape is meaningful.
const (
	benchmarkBase        = 100.0
	benchmarkDailyChange = 0.0005
)

// PeriodRange maps a performance period to its date range, anchored at today.
// Unrecognized periods fall back to one month rather than erroring.
func PeriodRange(period models.PerformancePeriod, today time.Time) (start, end time.Time) {
	end = today
	switch period {
	case models.Period1M:
		start = end.AddDate(0, -1, 0)
	case models.Period3M:
		start = end.AddDate(0, -3, 0)
	case models.Period6M:
		start = end.AddDate(0, -6, 0)
	case models.Period1Y:
		start = end.AddDate(-1, 0, 0)
	case models.PeriodYTD:
		start = time.Date(end.Year(), 1, 1, 0, 0, 0, 0, end.Location())
	default:
		start = end.AddDate(0, -1, 0)
	}
	return start, end
}

// GeneratePerformanceSeries produces a dense daily series of portfolio value
// over the requested period, one entry per calendar day inclusive of both
// endpoints, plus an equal-length synthetic benchmark series.
func (s *Service) GeneratePerformanceSeries(ctx context.Context, portfolioID string, period models.PerformancePeriod) (*models.PerformanceSeries, error) {
	trades, err := s.trades.ListByPortfolio(ctx, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trades for portfolio '%s': %w", portfolioID, err)
	}

	today := s.now()
	start, end := PeriodRange(period, today)

	series := &models.PerformanceSeries{
		PortfolioID: portfolioID,
		Period:      period,
	}

	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		series.Dates = append(series.Dates, d)
		series.Values = append(series.Values, TotalMarketValue(HoldingsAsOf(trades, d)))
	}

	series.BenchmarkValues = benchmarkSeries(len(series.Dates), s.newRand())

	s.logger.Info().
		Str("portfolio", portfolioID).
		Str("period", string(period)).
		Int("points", len(series.Dates)).
		Msg("Performance series generated")

	return series, nil
}

// benchmarkSeries generates n synthetic benchmark values starting from 100.0,
// each day drifting by the fixed daily change scaled by a random factor in
// [0.999, 1.001].
func benchmarkSeries(n int, rng *rand.Rand) []float64 {
	values := make([]float64, n)
	base := benchmarkBase
	for i := 0; i < n; i++ {
		randomFactor := 1.0 + (rng.Float64()*0.002 - 0.001)
		base *= 1 + benchmarkDailyChange*randomFactor
		values[i] = base
	}
	return values
}
