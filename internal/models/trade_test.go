package models

import (
	"errors"
	"math"
	"testing"
	"time"
)

func validTrade() *Trade {
	return &Trade{
		Symbol:    "AAPL",
		Side:      TradeSideBuy,
		Quantity:  10,
		Price:     100,
		TradeDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}
}

func TestTradeValidate(t *testing.T) {
	negCommission := -1.0
	nanCommission := math.NaN()

	tests := []struct {
		name    string
		mutate  func(*Trade)
		wantErr bool
	}{
		{"valid trade", func(*Trade) {}, false},
		{"empty symbol", func(tr *Trade) { tr.Symbol = "  " }, true},
		{"bad side", func(tr *Trade) { tr.Side = "HOLD" }, true},
		{"zero quantity", func(tr *Trade) { tr.Quantity = 0 }, true},
		{"negative quantity", func(tr *Trade) { tr.Quantity = -5 }, true},
		{"zero price", func(tr *Trade) { tr.Price = 0 }, true},
		{"negative price", func(tr *Trade) { tr.Price = -1 }, true},
		{"NaN price", func(tr *Trade) { tr.Price = math.NaN() }, true},
		{"infinite price", func(tr *Trade) { tr.Price = math.Inf(1) }, true},
		{"negative commission", func(tr *Trade) { tr.Commission = &negCommission }, true},
		{"NaN commission", func(tr *Trade) { tr.Commission = &nanCommission }, true},
		{"zero trade date", func(tr *Trade) { tr.TradeDate = time.Time{} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := validTrade()
			tt.mutate(tr)
			err := tr.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("expected ErrInvalidInput, got %v", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestParseTradeSide(t *testing.T) {
	tests := []struct {
		input   string
		want    TradeSide
		wantErr bool
	}{
		{"BUY", TradeSideBuy, false},
		{"buy", TradeSideBuy, false},
		{" Sell ", TradeSideSell, false},
		{"short", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTradeSide(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("expected ErrInvalidInput, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseTradeSide(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTradeNormalize(t *testing.T) {
	tr := &Trade{Symbol: "  aapl "}
	tr.Normalize()
	if tr.Symbol != "AAPL" {
		t.Errorf("symbol = %q, want AAPL", tr.Symbol)
	}
}

func TestCommissionOrZero(t *testing.T) {
	tr := validTrade()
	if tr.CommissionOrZero() != 0 {
		t.Errorf("nil commission should read as 0, got %v", tr.CommissionOrZero())
	}
	c := 5.0
	tr.Commission = &c
	if tr.CommissionOrZero() != 5 {
		t.Errorf("commission = %v, want 5", tr.CommissionOrZero())
	}
}

func TestNewTradeID(t *testing.T) {
	a, b := NewTradeID(), NewTradeID()
	if a == "" || b == "" || a == b {
		t.Errorf("expected distinct non-empty ids, got %q and %q", a, b)
	}
}
