// Package tradedb implements the TradeStore and PortfolioStore collaborator
// contracts using BadgerHold. It is the embedded reference store the CLI and
// tests run against; the engine itself never touches storage directly.
package tradedb

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/timshannon/badgerhold/v4"

	"github.com/tradecraft/tradecraft/internal/common"
	"github.com/tradecraft/tradecraft/internal/models"
)

// Store implements interfaces.TradeStore and interfaces.PortfolioStore.
type Store struct {
	db     *badgerhold.Store
	logger *common.Logger
}

// NewStore creates a new trade store backed by BadgerHold.
func NewStore(logger *common.Logger, path string) (*Store, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, fmt.Errorf("failed to create trade db path %s: %w", path, err)
	}
	opts := badgerhold.DefaultOptions
	opts.Dir = path
	opts.ValueDir = path
	opts.Logger = nil
	db, err := badgerhold.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open trade db at %s: %w", path, err)
	}
	logger.Info().Str("path", path).Msg("TradeDB opened")
	return &Store{db: db, logger: logger}, nil
}

// --- Trades ---

func (s *Store) SaveTrade(_ context.Context, trade *models.Trade) error {
	if err := trade.Validate(); err != nil {
		return err
	}
	now := time.Now()
	if trade.CreatedAt.IsZero() {
		trade.CreatedAt = now
	}
	trade.UpdatedAt = now

	if err := s.db.Upsert(trade.ID, trade); err != nil {
		return fmt.Errorf("failed to save trade '%s': %w", trade.ID, err)
	}
	s.logger.Debug().Str("trade_id", trade.ID).Str("symbol", trade.Symbol).Msg("Trade saved")
	return nil
}

func (s *Store) GetTrade(_ context.Context, id string) (*models.Trade, error) {
	var trade models.Trade
	if err := s.db.Get(id, &trade); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("%w: trade '%s'", models.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get trade '%s': %w", id, err)
	}
	return &trade, nil
}

func (s *Store) DeleteTrade(_ context.Context, id string) error {
	if err := s.db.Delete(id, models.Trade{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return fmt.Errorf("%w: trade '%s'", models.ErrNotFound, id)
		}
		return fmt.Errorf("failed to delete trade '%s': %w", id, err)
	}
	s.logger.Debug().Str("trade_id", id).Msg("Trade deleted")
	return nil
}

// ListByPortfolio returns a portfolio's trades ordered by insertion time.
func (s *Store) ListByPortfolio(_ context.Context, portfolioID string) ([]*models.Trade, error) {
	var trades []*models.Trade
	if err := s.db.Find(&trades, badgerhold.Where("PortfolioID").Eq(portfolioID)); err != nil {
		return nil, fmt.Errorf("failed to list trades for portfolio '%s': %w", portfolioID, err)
	}
	sort.SliceStable(trades, func(i, j int) bool {
		if !trades[i].CreatedAt.Equal(trades[j].CreatedAt) {
			return trades[i].CreatedAt.Before(trades[j].CreatedAt)
		}
		return trades[i].ID < trades[j].ID
	})
	return trades, nil
}

// --- Portfolios ---

func (s *Store) SavePortfolio(_ context.Context, portfolio *models.Portfolio) error {
	now := time.Now()
	var existing models.Portfolio
	if err := s.db.Get(portfolio.ID, &existing); err == nil {
		portfolio.CreatedAt = existing.CreatedAt
	} else if portfolio.CreatedAt.IsZero() {
		portfolio.CreatedAt = now
	}
	portfolio.UpdatedAt = now

	if err := s.db.Upsert(portfolio.ID, portfolio); err != nil {
		return fmt.Errorf("failed to save portfolio '%s': %w", portfolio.ID, err)
	}
	s.logger.Debug().Str("portfolio_id", portfolio.ID).Msg("Portfolio saved")
	return nil
}

func (s *Store) GetPortfolio(_ context.Context, id string) (*models.Portfolio, error) {
	var portfolio models.Portfolio
	if err := s.db.Get(id, &portfolio); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, fmt.Errorf("%w: portfolio '%s'", models.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get portfolio '%s': %w", id, err)
	}
	return &portfolio, nil
}

func (s *Store) DeletePortfolio(ctx context.Context, id string) error {
	trades, err := s.ListByPortfolio(ctx, id)
	if err != nil {
		return err
	}
	if len(trades) > 0 {
		return fmt.Errorf("%w: portfolio '%s' has %d associated trades", models.ErrInvalidInput, id, len(trades))
	}
	if err := s.db.Delete(id, models.Portfolio{}); err != nil && err != badgerhold.ErrNotFound {
		return fmt.Errorf("failed to delete portfolio '%s': %w", id, err)
	}
	s.logger.Debug().Str("portfolio_id", id).Msg("Portfolio deleted")
	return nil
}

func (s *Store) ListByOrganization(_ context.Context, organizationID string) ([]*models.Portfolio, error) {
	var portfolios []*models.Portfolio
	if err := s.db.Find(&portfolios, badgerhold.Where("OrganizationID").Eq(organizationID)); err != nil {
		return nil, fmt.Errorf("failed to list portfolios for organization '%s': %w", organizationID, err)
	}
	sort.Slice(portfolios, func(i, j int) bool { return portfolios[i].ID < portfolios[j].ID })
	return portfolios, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
