// Package valuation derives holdings, portfolio totals, and performance
// series from trade history.
package valuation

import (
	"math"
	"sort"
	"time"

	"github.com/tradecraft/tradecraft/internal/models"
)

// ComputeHoldings folds a trade list into per-symbol positions using
// average-cost accounting: each sell consumes cost basis at the running
// average cost per share. This approximates FIFO without tracking individual
// lots and is the single shared implementation for every consumer.
//
// Trades are applied in trade-date order with a stable tie-break on input
// sequence, so callers may pass unordered lists. The last applied trade price
// per symbol stands in for a market quote. Symbols whose final quantity is
// zero are dropped. A sell exceeding the held quantity is not rejected; it
// propagates as a negative (short) position.
func ComputeHoldings(trades []*models.Trade) map[string]*models.Holding {
	ordered := make([]*models.Trade, len(trades))
	copy(ordered, trades)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].TradeDate.Before(ordered[j].TradeDate)
	})

	holdings := make(map[string]*models.Holding)

	for _, t := range ordered {
		h, ok := holdings[t.Symbol]
		if !ok {
			h = &models.Holding{Symbol: t.Symbol}
			holdings[t.Symbol] = h
		}

		switch t.Side {
		case models.TradeSideBuy:
			h.Quantity += t.Quantity
			h.TotalCost += t.Price*float64(t.Quantity) + t.CommissionOrZero()
		case models.TradeSideSell:
			costBasisPerShare := 0.0
			if h.Quantity > 0 {
				costBasisPerShare = h.TotalCost / float64(h.Quantity)
			}
			h.TotalCost -= costBasisPerShare * float64(t.Quantity)
			h.Quantity -= t.Quantity
		}

		h.CurrentPrice = t.Price
	}

	for symbol, h := range holdings {
		if h.Quantity == 0 {
			delete(holdings, symbol)
			continue
		}
		finalizeHolding(h)
	}

	return holdings
}

// finalizeHolding recomputes the derived fields from final quantity, cost, and price.
func finalizeHolding(h *models.Holding) {
	h.AverageCost = 0
	if h.Quantity > 0 {
		h.AverageCost = h.TotalCost / float64(h.Quantity)
	}
	h.MarketValue = h.CurrentPrice * float64(h.Quantity)
	h.ProfitLoss = h.MarketValue - h.TotalCost
	h.ProfitLossPercent = 0
	if h.TotalCost > 0 {
		h.ProfitLossPercent = h.ProfitLoss / h.TotalCost * 100
	}

	h.AverageCost = finite(h.AverageCost)
	h.MarketValue = finite(h.MarketValue)
	h.ProfitLoss = finite(h.ProfitLoss)
	h.ProfitLossPercent = finite(h.ProfitLossPercent)
}

// finite clamps NaN and infinities to zero so they never reach a result.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Summarize sums holdings into portfolio-level totals.
func Summarize(portfolioID string, asOf time.Time, holdings map[string]*models.Holding) *models.PortfolioSnapshot {
	snapshot := &models.PortfolioSnapshot{
		PortfolioID:       portfolioID,
		AsOf:              asOf,
		HoldingCount:      len(holdings),
		CalculationMethod: models.CalculationMethodAverageCost,
	}

	for _, h := range holdings {
		snapshot.TotalValue += h.MarketValue
		snapshot.TotalCost += h.TotalCost
		snapshot.ProfitLoss += h.ProfitLoss
	}

	if snapshot.TotalCost > 0 {
		snapshot.ProfitLossPercent = finite(snapshot.ProfitLoss / snapshot.TotalCost * 100)
	}

	return snapshot
}

// TotalMarketValue sums the market value across holdings.
func TotalMarketValue(holdings map[string]*models.Holding) float64 {
	total := 0.0
	for _, h := range holdings {
		total += h.MarketValue
	}
	return total
}

// HoldingsAsOf folds only the trades dated at or before the cutoff.
func HoldingsAsOf(trades []*models.Trade, asOf time.Time) map[string]*models.Holding {
	filtered := make([]*models.Trade, 0, len(trades))
	for _, t := range trades {
		if !t.TradeDate.After(asOf) {
			filtered = append(filtered, t)
		}
	}
	return ComputeHoldings(filtered)
}
