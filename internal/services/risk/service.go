// Package risk computes portfolio risk analytics from trade history.
package risk

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/tradecraft/tradecraft/internal/common"
	"github.com/tradecraft/tradecraft/internal/interfaces"
	"github.com/tradecraft/tradecraft/internal/models"
	"github.com/tradecraft/tradecraft/internal/services/valuation"
)

// VaR parameters. The daily baseline is a fixed illustrative figure,
// independent of the trade data; horizons scale by the square root of trading
// days per the usual approximation.
const (
	baseDailyVaR        = 0.032
	baselineConfidence  = 95.0
	confidenceAdjFactor = 0.0008
)

// diversificationFactor is the flat benefit applied when summing VaR across
// portfolios in an organization.
const diversificationFactor = 0.9

// fallbackSector is reported for symbols absent from the sector table.
const fallbackSector = "Other"

// Service implements RiskService. The classification tables are injected at
// construction and never mutated; randomized placeholder figures draw from a
// per-call source so concurrent requests stay independent.
type Service struct {
	trades     interfaces.TradeStore
	portfolios interfaces.PortfolioStore
	provider   interfaces.AnalyticsProvider
	sectors    map[string]string
	liquidity  map[string]string
	logger     *common.Logger

	newRand func() *rand.Rand
}

// NewService creates a new risk service
func NewService(
	trades interfaces.TradeStore,
	portfolios interfaces.PortfolioStore,
	provider interfaces.AnalyticsProvider,
	cfg common.RiskConfig,
	logger *common.Logger,
) *Service {
	return &Service{
		trades:     trades,
		portfolios: portfolios,
		provider:   provider,
		sectors:    cfg.Sectors,
		liquidity:  cfg.Liquidity,
		logger:     logger,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

func (s *Service) holdingsFor(ctx context.Context, portfolioID string) (map[string]*models.Holding, error) {
	trades, err := s.trades.ListByPortfolio(ctx, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trades for portfolio '%s': %w", portfolioID, err)
	}
	return valuation.ComputeHoldings(trades), nil
}

// PortfolioRisk builds the full risk report for a portfolio. Only VaR is
// computed; the remaining figures come from the analytics provider.
func (s *Service) PortfolioRisk(ctx context.Context, portfolioID string) (*models.RiskReport, error) {
	s.logger.Info().Str("portfolio", portfolioID).Msg("Computing portfolio risk")

	report := &models.RiskReport{
		PortfolioID:      portfolioID,
		ValueAtRisk:      computeValueAtRisk(baselineConfidence),
		SharpeRatio:      s.provider.SharpeRatio(),
		Beta:             s.provider.Beta(),
		Volatility:       s.provider.Volatility(),
		Drawdown:         s.provider.Drawdown(),
		TrackingError:    s.provider.TrackingError(),
		InformationRatio: s.provider.InformationRatio(),
		SortinoRatio:     s.provider.SortinoRatio(),
		LiquidityRisk:    s.provider.LiquidityRating(),
		StressTestLoss:   s.provider.StressTestLoss(),
	}

	return report, nil
}

// ValueAtRisk returns VaR per horizon at the given confidence level.
func (s *Service) ValueAtRisk(ctx context.Context, portfolioID string, confidenceLevel float64) (map[string]float64, error) {
	if _, err := s.trades.ListByPortfolio(ctx, portfolioID); err != nil {
		return nil, fmt.Errorf("failed to list trades for portfolio '%s': %w", portfolioID, err)
	}
	return computeValueAtRisk(confidenceLevel), nil
}

// computeValueAtRisk scales the fixed daily baseline to weekly (5 trading
// days) and monthly (21 trading days) horizons, shifting the baseline by
// 0.0008 per confidence point above or below 95.
func computeValueAtRisk(confidenceLevel float64) map[string]float64 {
	daily := baseDailyVaR
	weekly := daily * math.Sqrt(5)
	monthly := daily * math.Sqrt(21)

	adjustment := (confidenceLevel - baselineConfidence) * confidenceAdjFactor
	daily += adjustment
	weekly += adjustment * math.Sqrt(5)
	monthly += adjustment * math.Sqrt(21)

	return map[string]float64{
		models.VaRHorizonDaily:   daily,
		models.VaRHorizonWeekly:  weekly,
		models.VaRHorizonMonthly: monthly,
	}
}

// SectorExposure groups holdings by sector and reports each sector's share of
// total market value, sorted descending.
func (s *Service) SectorExposure(ctx context.Context, portfolioID string) ([]models.SectorExposure, error) {
	holdings, err := s.holdingsFor(ctx, portfolioID)
	if err != nil {
		return nil, err
	}

	bySector := make(map[string]float64)
	totalMarketValue := 0.0
	for _, h := range holdings {
		sector, ok := s.sectors[h.Symbol]
		if !ok {
			sector = fallbackSector
		}
		bySector[sector] += h.MarketValue
		totalMarketValue += h.MarketValue
	}

	result := make([]models.SectorExposure, 0, len(bySector))
	if totalMarketValue <= 0 {
		return result, nil
	}

	for sector, value := range bySector {
		result = append(result, models.SectorExposure{
			Sector:   sector,
			Exposure: value / totalMarketValue * 100,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Exposure != result[j].Exposure {
			return result[i].Exposure > result[j].Exposure
		}
		return result[i].Sector < result[j].Sector
	})

	return result, nil
}

// ConcentrationRisk ranks holdings by portfolio weight and estimates each
// position's risk contribution. The per-symbol beta is a placeholder drawn
// uniformly from [1.0, 1.5) per call.
func (s *Service) ConcentrationRisk(ctx context.Context, portfolioID string) ([]models.ConcentrationEntry, error) {
	holdings, err := s.holdingsFor(ctx, portfolioID)
	if err != nil {
		return nil, err
	}

	totalMarketValue := valuation.TotalMarketValue(holdings)
	result := make([]models.ConcentrationEntry, 0, len(holdings))
	if totalMarketValue <= 0 {
		return result, nil
	}

	rng := s.newRand()
	for _, h := range holdings {
		weight := h.MarketValue / totalMarketValue * 100
		beta := 1.0 + rng.Float64()*0.5
		result = append(result, models.ConcentrationEntry{
			Symbol:           h.Symbol,
			Weight:           weight,
			RiskContribution: weight * beta / float64(len(holdings)),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Weight != result[j].Weight {
			return result[i].Weight > result[j].Weight
		}
		return result[i].Symbol < result[j].Symbol
	})

	return result, nil
}

// MarketRisk returns the portfolio's market factor sensitivities from the
// analytics provider.
func (s *Service) MarketRisk(ctx context.Context, portfolioID string) (*models.MarketRisk, error) {
	if _, err := s.trades.ListByPortfolio(ctx, portfolioID); err != nil {
		return nil, fmt.Errorf("failed to list trades for portfolio '%s': %w", portfolioID, err)
	}
	mr := s.provider.MarketRisk()
	return &mr, nil
}

// LiquidityRisk reports the provider's liquidation profile plus a per-symbol
// liquidity tier for each open holding from the injected table.
func (s *Service) LiquidityRisk(ctx context.Context, portfolioID string) (*models.LiquidityRisk, error) {
	holdings, err := s.holdingsFor(ctx, portfolioID)
	if err != nil {
		return nil, err
	}

	overall, daysToLiquidate, liquidationCost := s.provider.LiquidityProfile()

	symbolLiquidity := make(map[string]string, len(holdings))
	for symbol := range holdings {
		tier, ok := s.liquidity[symbol]
		if !ok {
			tier = fallbackSector
		}
		symbolLiquidity[symbol] = tier
	}

	return &models.LiquidityRisk{
		OverallRisk:     overall,
		DaysToLiquidate: daysToLiquidate,
		LiquidationCost: liquidationCost,
		SymbolLiquidity: symbolLiquidity,
	}, nil
}
