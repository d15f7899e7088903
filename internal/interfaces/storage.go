// Package interfaces defines service contracts for TradeCraft
package interfaces

import (
	"context"

	"github.com/tradecraft/tradecraft/internal/models"
)

// TradeStore supplies the trade history the engine computes over. Access
// control and status filtering happen behind this interface: the engine
// receives exactly the trade list the caller decided counts.
type TradeStore interface {
	SaveTrade(ctx context.Context, trade *models.Trade) error
	GetTrade(ctx context.Context, id string) (*models.Trade, error)
	DeleteTrade(ctx context.Context, id string) error

	// ListByPortfolio returns all trades for a portfolio, in insertion order.
	ListByPortfolio(ctx context.Context, portfolioID string) ([]*models.Trade, error)

	Close() error
}

// PortfolioStore manages portfolio identity records.
type PortfolioStore interface {
	SavePortfolio(ctx context.Context, portfolio *models.Portfolio) error
	GetPortfolio(ctx context.Context, id string) (*models.Portfolio, error)
	DeletePortfolio(ctx context.Context, id string) error
	ListByOrganization(ctx context.Context, organizationID string) ([]*models.Portfolio, error)
}
