package valuation

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/tradecraft/tradecraft/internal/common"
	"github.com/tradecraft/tradecraft/internal/interfaces"
	"github.com/tradecraft/tradecraft/internal/models"
)

// Service implements ValuationService on top of a TradeStore collaborator.
// Every calculation is a pure function of the trade list it fetches; the
// service keeps no mutable state between calls.
type Service struct {
	trades interfaces.TradeStore
	logger *common.Logger

	// now and newRand are swapped out in tests for deterministic series.
	// newRand builds a fresh source per call so concurrent requests never
	// share seed state.
	now     func() time.Time
	newRand func() *rand.Rand
}

// NewService creates a new valuation service
func NewService(trades interfaces.TradeStore, logger *common.Logger) *Service {
	return &Service{
		trades: trades,
		logger: logger,
		now:    time.Now,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

// GetHoldings computes current holdings for a portfolio from its full trade history.
func (s *Service) GetHoldings(ctx context.Context, portfolioID string) (map[string]*models.Holding, error) {
	trades, err := s.trades.ListByPortfolio(ctx, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trades for portfolio '%s': %w", portfolioID, err)
	}

	holdings := ComputeHoldings(trades)

	s.logger.Debug().
		Str("portfolio", portfolioID).
		Int("trades", len(trades)).
		Int("holdings", len(holdings)).
		Msg("Holdings computed")

	return holdings, nil
}

// ValuePortfolio computes the current portfolio snapshot.
func (s *Service) ValuePortfolio(ctx context.Context, portfolioID string) (*models.PortfolioSnapshot, error) {
	holdings, err := s.GetHoldings(ctx, portfolioID)
	if err != nil {
		return nil, err
	}

	snapshot := Summarize(portfolioID, s.now(), holdings)

	s.logger.Info().
		Str("portfolio", portfolioID).
		Float64("totalValue", snapshot.TotalValue).
		Float64("profitLoss", snapshot.ProfitLoss).
		Msg("Portfolio valued")

	return snapshot, nil
}

// ValueAtDate computes the portfolio's market value as of a historical date by
// replaying only the trades dated at or before the cutoff.
func (s *Service) ValueAtDate(ctx context.Context, portfolioID string, asOf time.Time) (float64, error) {
	trades, err := s.trades.ListByPortfolio(ctx, portfolioID)
	if err != nil {
		return 0, fmt.Errorf("failed to list trades for portfolio '%s': %w", portfolioID, err)
	}

	return TotalMarketValue(HoldingsAsOf(trades, asOf)), nil
}
