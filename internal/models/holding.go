package models

import "time"

// CalculationMethodAverageCost documents the cost basis methodology used by
// the holdings fold: a running average cost consumed pro-rata on each sell.
// This is an average-cost approximation, not per-lot FIFO.
const CalculationMethodAverageCost = "average_cost"

// Holding represents a computed position in one symbol, derived from trade
// history. Holdings are recomputed on every request and never stored.
type Holding struct {
	Symbol            string  `json:"symbol"`
	Quantity          int64   `json:"quantity"`
	TotalCost         float64 `json:"total_cost"`
	AverageCost       float64 `json:"average_cost"`
	CurrentPrice      float64 `json:"current_price"` // last applied trade price, not a live quote
	MarketValue       float64 `json:"market_value"`
	ProfitLoss        float64 `json:"profit_loss"`
	ProfitLossPercent float64 `json:"profit_loss_percent"`
}

// PortfolioSnapshot aggregates holdings into portfolio totals at a point in time.
type PortfolioSnapshot struct {
	PortfolioID       string    `json:"portfolio_id"`
	AsOf              time.Time `json:"as_of"`
	TotalValue        float64   `json:"total_value"`
	TotalCost         float64   `json:"total_cost"`
	ProfitLoss        float64   `json:"profit_loss"`
	ProfitLossPercent float64   `json:"profit_loss_percent"`
	HoldingCount      int       `json:"holding_count"`
	CalculationMethod string    `json:"calculation_method"`
}

// PerformancePeriod selects the date range for a performance series.
type PerformancePeriod string

const (
	Period1M  PerformancePeriod = "1m"
	Period3M  PerformancePeriod = "3m"
	Period6M  PerformancePeriod = "6m"
	Period1Y  PerformancePeriod = "1y"
	PeriodYTD PerformancePeriod = "ytd"
)

// PerformanceSeries holds a dense daily portfolio value series with a
// synthetic benchmark for comparison. The benchmark is generated noise around
// a fixed drift, not real index data.
type PerformanceSeries struct {
	PortfolioID     string            `json:"portfolio_id"`
	Period          PerformancePeriod `json:"period"`
	Dates           []time.Time       `json:"dates"`
	Values          []float64         `json:"values"`
	BenchmarkValues []float64         `json:"benchmark_values"`
}
