package models

// VaR horizons reported by the risk service.
const (
	VaRHorizonDaily   = "daily"
	VaRHorizonWeekly  = "weekly"
	VaRHorizonMonthly = "monthly"
)

// RiskReport contains risk metrics for a portfolio. Apart from valueAtRisk,
// the figures come from the analytics provider — the default provider returns
// fixed illustrative values, not statistics derived from the trade data.
type RiskReport struct {
	PortfolioID      string             `json:"portfolio_id"`
	ValueAtRisk      map[string]float64 `json:"value_at_risk"` // horizon -> loss fraction
	SharpeRatio      float64            `json:"sharpe_ratio"`
	Beta             float64            `json:"beta"`
	Volatility       string             `json:"volatility"`
	Drawdown         string             `json:"drawdown"`
	TrackingError    string             `json:"tracking_error"`
	InformationRatio float64            `json:"information_ratio"`
	SortinoRatio     float64            `json:"sortino_ratio"`
	LiquidityRisk    string             `json:"liquidity_risk"`
	StressTestLoss   string             `json:"stress_test_loss"`
}

// SectorExposure is one sector's share of total portfolio market value.
type SectorExposure struct {
	Sector   string  `json:"sector"`
	Exposure float64 `json:"exposure"` // percent of total market value
}

// ConcentrationEntry ranks a holding's weight and its contribution to risk.
type ConcentrationEntry struct {
	Symbol           string  `json:"symbol"`
	Weight           float64 `json:"weight"` // percent of total market value
	RiskContribution float64 `json:"risk_contribution"`
}

// MarketRisk describes portfolio sensitivity to broad market factors.
// Illustrative values from the analytics provider.
type MarketRisk struct {
	Beta                    float64 `json:"beta"`
	InterestRateSensitivity float64 `json:"interest_rate_sensitivity"`
	CurrencyRisk            string  `json:"currency_risk"`
	CommodityExposure       string  `json:"commodity_exposure"`
}

// LiquidityRisk describes how quickly the portfolio could be unwound.
type LiquidityRisk struct {
	OverallRisk     string            `json:"overall_risk"`
	DaysToLiquidate float64           `json:"days_to_liquidate"`
	LiquidationCost float64           `json:"liquidation_cost"` // percent cost to liquidate the portfolio
	SymbolLiquidity map[string]string `json:"symbol_liquidity"` // symbol -> tier
}
