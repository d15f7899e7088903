package interfaces

import (
	"context"
	"time"

	"github.com/tradecraft/tradecraft/internal/models"
)

// ValuationService derives holdings, totals, and performance from trade history.
type ValuationService interface {
	GetHoldings(ctx context.Context, portfolioID string) (map[string]*models.Holding, error)
	ValuePortfolio(ctx context.Context, portfolioID string) (*models.PortfolioSnapshot, error)
	ValueAtDate(ctx context.Context, portfolioID string, asOf time.Time) (float64, error)
	GeneratePerformanceSeries(ctx context.Context, portfolioID string, period models.PerformancePeriod) (*models.PerformanceSeries, error)
}

// RiskService computes risk analytics for a portfolio's trade history.
type RiskService interface {
	PortfolioRisk(ctx context.Context, portfolioID string) (*models.RiskReport, error)
	ValueAtRisk(ctx context.Context, portfolioID string, confidenceLevel float64) (map[string]float64, error)
	SectorExposure(ctx context.Context, portfolioID string) ([]models.SectorExposure, error)
	ConcentrationRisk(ctx context.Context, portfolioID string) ([]models.ConcentrationEntry, error)
	MarketRisk(ctx context.Context, portfolioID string) (*models.MarketRisk, error)
	LiquidityRisk(ctx context.Context, portfolioID string) (*models.LiquidityRisk, error)
	OrganizationRisk(ctx context.Context, organizationID string) (*models.RiskReport, error)
}

// AnalyticsProvider supplies the risk figures that are not derived from trade
// data. The default implementation returns fixed illustrative values; a real
// market-data-backed provider can be swapped in without touching the holdings
// calculator or any call site.
type AnalyticsProvider interface {
	SharpeRatio() float64
	Beta() float64
	Volatility() string
	Drawdown() string
	TrackingError() string
	InformationRatio() float64
	SortinoRatio() float64
	LiquidityRating() string
	StressTestLoss() string
	MarketRisk() models.MarketRisk
	LiquidityProfile() (overallRisk string, daysToLiquidate, liquidationCost float64)
}
