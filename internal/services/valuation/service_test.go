package valuation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/tradecraft/tradecraft/internal/common"
	"github.com/tradecraft/tradecraft/internal/models"
)

// fakeTradeStore serves a canned trade list per portfolio.
type fakeTradeStore struct {
	trades map[string][]*models.Trade
}

func (f *fakeTradeStore) SaveTrade(_ context.Context, trade *models.Trade) error {
	f.trades[trade.PortfolioID] = append(f.trades[trade.PortfolioID], trade)
	return nil
}

func (f *fakeTradeStore) GetTrade(_ context.Context, id string) (*models.Trade, error) {
	for _, trades := range f.trades {
		for _, t := range trades {
			if t.ID == id {
				return t, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: trade '%s'", models.ErrNotFound, id)
}

func (f *fakeTradeStore) DeleteTrade(_ context.Context, _ string) error { return nil }

func (f *fakeTradeStore) ListByPortfolio(_ context.Context, portfolioID string) ([]*models.Trade, error) {
	return f.trades[portfolioID], nil
}

func (f *fakeTradeStore) Close() error { return nil }

func newTestService(trades map[string][]*models.Trade) *Service {
	return NewService(&fakeTradeStore{trades: trades}, common.NewSilentLogger())
}

func TestValuePortfolio(t *testing.T) {
	svc := newTestService(map[string][]*models.Trade{
		"p1": {
			buy("AAPL", 10, 100, 5, day(2024, 1, 10)),
			buy("AAPL", 10, 120, 5, day(2024, 2, 10)),
		},
	})

	snapshot, err := svc.ValuePortfolio(context.Background(), "p1")
	if err != nil {
		t.Fatalf("ValuePortfolio failed: %v", err)
	}

	if !approx(snapshot.TotalValue, 2400) {
		t.Errorf("totalValue = %v, want 2400", snapshot.TotalValue)
	}
	if !approx(snapshot.TotalCost, 2210) {
		t.Errorf("totalCost = %v, want 2210", snapshot.TotalCost)
	}
	if !approx(snapshot.ProfitLoss, 190) {
		t.Errorf("profitLoss = %v, want 190", snapshot.ProfitLoss)
	}
}

func TestValuePortfolioAllClosed(t *testing.T) {
	svc := newTestService(map[string][]*models.Trade{
		"p1": {
			buy("AAPL", 10, 100, 0, day(2024, 1, 10)),
			sell("AAPL", 10, 150, 0, day(2024, 2, 10)),
		},
	})

	snapshot, err := svc.ValuePortfolio(context.Background(), "p1")
	if err != nil {
		t.Fatalf("ValuePortfolio failed: %v", err)
	}
	if snapshot.TotalValue != 0 || snapshot.TotalCost != 0 || snapshot.ProfitLoss != 0 {
		t.Errorf("closed-out portfolio should value to zero, got %+v", snapshot)
	}
	if snapshot.HoldingCount != 0 {
		t.Errorf("holdingCount = %d, want 0", snapshot.HoldingCount)
	}
}

func TestValueAtDate(t *testing.T) {
	svc := newTestService(map[string][]*models.Trade{
		"p1": {
			buy("AAPL", 10, 100, 0, day(2024, 1, 10)),
			buy("AAPL", 10, 120, 0, day(2024, 6, 10)),
		},
	})

	tests := []struct {
		name string
		asOf time.Time
		want float64
	}{
		{"before any trade", day(2023, 12, 31), 0},
		{"after first buy", day(2024, 3, 1), 1000},
		{"after second buy", day(2024, 7, 1), 2400},
		{"on second trade date inclusive", day(2024, 6, 10), 2400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ValueAtDate(context.Background(), "p1", tt.asOf)
			if err != nil {
				t.Fatalf("ValueAtDate failed: %v", err)
			}
			if !approx(got, tt.want) {
				t.Errorf("value = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValueAtDateIsPure(t *testing.T) {
	svc := newTestService(map[string][]*models.Trade{
		"p1": {buy("AAPL", 10, 100, 0, day(2024, 1, 10))},
	})

	asOf := day(2024, 3, 1)
	first, err := svc.ValueAtDate(context.Background(), "p1", asOf)
	if err != nil {
		t.Fatalf("ValueAtDate failed: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := svc.ValueAtDate(context.Background(), "p1", asOf)
		if err != nil {
			t.Fatalf("ValueAtDate failed: %v", err)
		}
		if !approx(again, first) {
			t.Fatalf("repeated call changed result: %v vs %v", again, first)
		}
	}
}
