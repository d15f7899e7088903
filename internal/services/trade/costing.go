// Package trade provides trade lifecycle calculations: commission, settlement
// date, and signed total amount. These feed the cost-basis math in the
// valuation engine.
package trade

import (
	"math"
	"time"

	"github.com/tradecraft/tradecraft/internal/models"
)

const (
	commissionRate    = 0.005 // 0.5% of trade value
	minimumCommission = 1.00
	settlementDays    = 2 // T+2 settlement
)

// Commission calculates the commission for a trade: 0.5% of trade value with
// a $1.00 floor.
func Commission(quantity int64, price float64) float64 {
	return math.Max(minimumCommission, float64(quantity)*price*commissionRate)
}

// SettlementDate returns the T+2 settlement date for a trade date.
func SettlementDate(tradeDate time.Time) time.Time {
	return tradeDate.AddDate(0, 0, settlementDays)
}

// TotalAmount computes the signed cash impact of a trade: buys pay the
// commission on top of the trade value, sells net it out of the proceeds.
func TotalAmount(side models.TradeSide, quantity int64, price, commission float64) float64 {
	total := float64(quantity) * price
	if side == models.TradeSideBuy {
		return total + commission
	}
	return total - commission
}

// Enrich fills the derived lifecycle fields on an ingested trade: id,
// commission (when not supplied), settlement date, total amount, status, and
// timestamps. The trade must already be validated.
func Enrich(t *models.Trade) {
	now := time.Now()

	if t.ID == "" {
		t.ID = models.NewTradeID()
	}
	if t.Commission == nil {
		c := Commission(t.Quantity, t.Price)
		t.Commission = &c
	}
	t.SettlementDate = SettlementDate(t.TradeDate)
	t.TotalAmount = TotalAmount(t.Side, t.Quantity, t.Price, *t.Commission)
	if t.Status == "" {
		t.Status = models.TradeStatusPending
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
}
