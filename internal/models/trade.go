// Package models defines data structures for TradeCraft
package models

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TradeSide indicates the direction of a trade
type TradeSide string

const (
	TradeSideBuy  TradeSide = "BUY"
	TradeSideSell TradeSide = "SELL"
)

// TradeStatus tracks the lifecycle state of a trade. Valuation never consults
// the status; callers decide which statuses belong in the trade list.
type TradeStatus string

const (
	TradeStatusPending   TradeStatus = "PENDING"
	TradeStatusExecuted  TradeStatus = "EXECUTED"
	TradeStatusSettled   TradeStatus = "SETTLED"
	TradeStatusCancelled TradeStatus = "CANCELLED"
)

// Trade represents a single buy or sell of a security within a portfolio.
// Trades are immutable inputs to the valuation engine.
type Trade struct {
	ID             string      `json:"id"`
	PortfolioID    string      `json:"portfolio_id"`
	Symbol         string      `json:"symbol"`
	Side           TradeSide   `json:"side"`
	Quantity       int64       `json:"quantity"`
	Price          float64     `json:"price"`
	Commission     *float64    `json:"commission,omitempty"`
	TradeDate      time.Time   `json:"trade_date"`
	SettlementDate time.Time   `json:"settlement_date,omitempty"`
	Status         TradeStatus `json:"status"`
	TotalAmount    float64     `json:"total_amount,omitempty"`
	Notes          string      `json:"notes,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// NewTradeID generates a unique trade identifier.
func NewTradeID() string {
	return uuid.NewString()
}

// ParseTradeSide parses a trade side string (case-insensitive).
func ParseTradeSide(s string) (TradeSide, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BUY":
		return TradeSideBuy, nil
	case "SELL":
		return TradeSideSell, nil
	default:
		return "", fmt.Errorf("%w: unknown trade side '%s'", ErrInvalidInput, s)
	}
}

// Normalize uppercases the symbol and trims whitespace.
func (t *Trade) Normalize() {
	t.Symbol = strings.ToUpper(strings.TrimSpace(t.Symbol))
}

// Validate rejects malformed trades at ingestion so the valuation engine can
// assume well-formed numeric input. Oversells are not rejected here: selling
// more than held is a position-level concern, not a field-level one.
func (t *Trade) Validate() error {
	if strings.TrimSpace(t.Symbol) == "" {
		return fmt.Errorf("%w: symbol is required", ErrInvalidInput)
	}
	if t.Side != TradeSideBuy && t.Side != TradeSideSell {
		return fmt.Errorf("%w: side must be BUY or SELL, got '%s'", ErrInvalidInput, t.Side)
	}
	if t.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive, got %d", ErrInvalidInput, t.Quantity)
	}
	if t.Price <= 0 || math.IsNaN(t.Price) || math.IsInf(t.Price, 0) {
		return fmt.Errorf("%w: price must be a positive finite number, got %v", ErrInvalidInput, t.Price)
	}
	if t.Commission != nil {
		c := *t.Commission
		if c < 0 || math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("%w: commission must be a non-negative finite number, got %v", ErrInvalidInput, c)
		}
	}
	if t.TradeDate.IsZero() {
		return fmt.Errorf("%w: trade date is required", ErrInvalidInput)
	}
	return nil
}

// CommissionOrZero returns the commission, treating nil as zero.
func (t *Trade) CommissionOrZero() float64 {
	if t.Commission == nil {
		return 0
	}
	return *t.Commission
}

// Portfolio identifies a portfolio and its owning organization. Portfolio and
// organization records live with the storage collaborator; the engine only
// needs identity for attribution in results.
type Portfolio struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
