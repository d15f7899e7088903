package risk

import "github.com/tradecraft/tradecraft/internal/models"

// SyntheticProvider is the placeholder AnalyticsProvider. Every figure it
// returns is a fixed illustrative value, not a statistic derived from market
// data. A real provider backed by historical returns can replace it without
// touching the holdings calculator or any call site.
type SyntheticProvider struct{}

// NewSyntheticProvider creates the placeholder analytics provider.
func NewSyntheticProvider() *SyntheticProvider {
	return &SyntheticProvider{}
}

// SharpeRatio returns (expected return - risk-free rate) / volatility for the
// illustrative 8% / 2% / 15% figures.
func (p *SyntheticProvider) SharpeRatio() float64 {
	expectedReturn := 0.08
	riskFreeRate := 0.02
	volatility := 0.15
	return (expectedReturn - riskFreeRate) / volatility
}

func (p *SyntheticProvider) Beta() float64 { return 1.15 }

func (p *SyntheticProvider) Volatility() string { return "15.0%" }

func (p *SyntheticProvider) Drawdown() string { return "8.5%" }

func (p *SyntheticProvider) TrackingError() string { return "3.2%" }

func (p *SyntheticProvider) InformationRatio() float64 { return 0.85 }

func (p *SyntheticProvider) SortinoRatio() float64 { return 1.25 }

func (p *SyntheticProvider) LiquidityRating() string { return "Low" }

func (p *SyntheticProvider) StressTestLoss() string { return "12.5%" }

func (p *SyntheticProvider) MarketRisk() models.MarketRisk {
	return models.MarketRisk{
		Beta:                    1.15,
		InterestRateSensitivity: 0.25,
		CurrencyRisk:            "Low",
		CommodityExposure:       "Medium",
	}
}

func (p *SyntheticProvider) LiquidityProfile() (string, float64, float64) {
	return "Low", 2.5, 0.8
}
