package tradedb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradecraft/tradecraft/internal/common"
	"github.com/tradecraft/tradecraft/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(common.NewSilentLogger(), t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testTrade(id, portfolioID, symbol string) *models.Trade {
	return &models.Trade{
		ID:          id,
		PortfolioID: portfolioID,
		Symbol:      symbol,
		Side:        models.TradeSideBuy,
		Quantity:    10,
		Price:       100.0,
		TradeDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:      models.TradeStatusPending,
	}
}

func TestSaveAndGetTrade(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	trade := testTrade("t-1", "p-1", "AAPL")
	require.NoError(t, store.SaveTrade(ctx, trade))
	assert.False(t, trade.CreatedAt.IsZero())

	got, err := store.GetTrade(ctx, "t-1")
	require.NoError(t, err)
	assert.Equal(t, "AAPL", got.Symbol)
	assert.Equal(t, int64(10), got.Quantity)
	assert.Equal(t, "p-1", got.PortfolioID)
}

func TestSaveTradeRejectsInvalid(t *testing.T) {
	store := newTestStore(t)

	trade := testTrade("t-bad", "p-1", "AAPL")
	trade.Quantity = 0
	err := store.SaveTrade(context.Background(), trade)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidInput)
}

func TestGetTradeNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetTrade(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeleteTrade(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveTrade(ctx, testTrade("t-1", "p-1", "AAPL")))
	require.NoError(t, store.DeleteTrade(ctx, "t-1"))

	_, err := store.GetTrade(ctx, "t-1")
	assert.ErrorIs(t, err, models.ErrNotFound)

	err = store.DeleteTrade(ctx, "t-1")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListByPortfolioOrdersByInsertion(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"t-c", "t-a", "t-b"} {
		trade := testTrade(id, "p-1", "AAPL")
		trade.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, store.SaveTrade(ctx, trade))
	}
	require.NoError(t, store.SaveTrade(ctx, testTrade("t-other", "p-2", "MSFT")))

	trades, err := store.ListByPortfolio(ctx, "p-1")
	require.NoError(t, err)
	require.Len(t, trades, 3)
	assert.Equal(t, "t-c", trades[0].ID)
	assert.Equal(t, "t-a", trades[1].ID)
	assert.Equal(t, "t-b", trades[2].ID)
}

func TestListByPortfolioEmpty(t *testing.T) {
	store := newTestStore(t)

	trades, err := store.ListByPortfolio(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, trades)
}

func TestSavePortfolioPreservesCreatedAt(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	portfolio := &models.Portfolio{ID: "p-1", OrganizationID: "org-1", Name: "Growth"}
	require.NoError(t, store.SavePortfolio(ctx, portfolio))
	created := portfolio.CreatedAt
	require.False(t, created.IsZero())

	updated := &models.Portfolio{ID: "p-1", OrganizationID: "org-1", Name: "Growth Fund"}
	require.NoError(t, store.SavePortfolio(ctx, updated))
	assert.True(t, updated.CreatedAt.Equal(created))

	got, err := store.GetPortfolio(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, "Growth Fund", got.Name)
}

func TestGetPortfolioNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetPortfolio(context.Background(), "missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestDeletePortfolioWithTradesRejected(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SavePortfolio(ctx, &models.Portfolio{ID: "p-1", OrganizationID: "org-1", Name: "Growth"}))
	require.NoError(t, store.SaveTrade(ctx, testTrade("t-1", "p-1", "AAPL")))

	err := store.DeletePortfolio(ctx, "p-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	require.NoError(t, store.DeleteTrade(ctx, "t-1"))
	require.NoError(t, store.DeletePortfolio(ctx, "p-1"))

	_, err = store.GetPortfolio(ctx, "p-1")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestListByOrganization(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SavePortfolio(ctx, &models.Portfolio{ID: "p-2", OrganizationID: "org-1", Name: "Income"}))
	require.NoError(t, store.SavePortfolio(ctx, &models.Portfolio{ID: "p-1", OrganizationID: "org-1", Name: "Growth"}))
	require.NoError(t, store.SavePortfolio(ctx, &models.Portfolio{ID: "p-3", OrganizationID: "org-2", Name: "Other"}))

	portfolios, err := store.ListByOrganization(ctx, "org-1")
	require.NoError(t, err)
	require.Len(t, portfolios, 2)
	assert.Equal(t, "p-1", portfolios[0].ID)
	assert.Equal(t, "p-2", portfolios[1].ID)
}
