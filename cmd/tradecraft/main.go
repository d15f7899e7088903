// Command tradecraft imports trade records into the embedded store and runs
// the valuation and risk analytics over them.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/tradecraft/tradecraft/internal/common"
	"github.com/tradecraft/tradecraft/internal/models"
	"github.com/tradecraft/tradecraft/internal/services/risk"
	"github.com/tradecraft/tradecraft/internal/services/trade"
	"github.com/tradecraft/tradecraft/internal/services/valuation"
	"github.com/tradecraft/tradecraft/internal/storage/tradedb"
)

const usage = `Usage: tradecraft [flags] <command>

Commands:
  import         import trades from -file into the store
  holdings       print current holdings for -portfolio
  value          print the portfolio snapshot for -portfolio
  performance    print the daily value series for -portfolio and -period
  risk           print the full risk report for -portfolio
  var            print value-at-risk for -portfolio at -confidence
  sectors        print sector exposure for -portfolio
  concentration  print concentration risk for -portfolio
  liquidity      print liquidity risk for -portfolio
  orgrisk        print aggregated risk for -org
`

func main() {
	var (
		configPath  = flag.String("config", os.Getenv("TRADECRAFT_CONFIG"), "path to config file")
		portfolioID = flag.String("portfolio", "", "portfolio id")
		orgID       = flag.String("org", "", "organization id")
		filePath    = flag.String("file", "", "trade import file (JSON)")
		period      = flag.String("period", "1m", "performance period (1m, 3m, 6m, 1y, ytd)")
		confidence  = flag.Float64("confidence", 95.0, "VaR confidence level")
		chartPath   = flag.String("chart", "", "write performance chart PNG to this path")
	)
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	command := flag.Arg(0)

	config, err := common.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := common.NewLogger(config.Logging.Level)
	common.PrintBanner(config, logger)

	store, err := tradedb.NewStore(logger, config.Storage.Path)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to open trade store")
		os.Exit(1)
	}
	defer store.Close()

	valuationSvc := valuation.NewService(store, logger)
	riskSvc := risk.NewService(store, store, risk.NewSyntheticProvider(), config.Risk, logger)

	ctx := context.Background()
	var result any

	switch command {
	case "import":
		result, err = importTrades(ctx, store, *filePath)
	case "holdings":
		result, err = valuationSvc.GetHoldings(ctx, *portfolioID)
	case "value":
		result, err = valuationSvc.ValuePortfolio(ctx, *portfolioID)
	case "performance":
		var series *models.PerformanceSeries
		series, err = valuationSvc.GeneratePerformanceSeries(ctx, *portfolioID, models.PerformancePeriod(*period))
		if err == nil && *chartPath != "" {
			err = writeChart(series, *chartPath, logger)
		}
		result = series
	case "risk":
		result, err = riskSvc.PortfolioRisk(ctx, *portfolioID)
	case "var":
		result, err = riskSvc.ValueAtRisk(ctx, *portfolioID, *confidence)
	case "sectors":
		result, err = riskSvc.SectorExposure(ctx, *portfolioID)
	case "concentration":
		result, err = riskSvc.ConcentrationRisk(ctx, *portfolioID)
	case "liquidity":
		result, err = riskSvc.LiquidityRisk(ctx, *portfolioID)
	case "orgrisk":
		result, err = riskSvc.OrganizationRisk(ctx, *orgID)
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		logger.Error().Err(err).Str("command", command).Msg("Command failed")
		os.Exit(1)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		logger.Error().Err(err).Msg("Failed to encode result")
		os.Exit(1)
	}
}

// importRecord is the wire shape of one trade in an import file.
type importRecord struct {
	PortfolioID    string   `json:"portfolio_id"`
	OrganizationID string   `json:"organization_id"`
	Symbol         string   `json:"symbol"`
	Side           string   `json:"side"`
	Quantity       int64    `json:"quantity"`
	Price          float64  `json:"price"`
	Commission     *float64 `json:"commission,omitempty"`
	TradeDate      string   `json:"trade_date"`
	Notes          string   `json:"notes,omitempty"`
}

type importSummary struct {
	Imported   int      `json:"imported"`
	Portfolios []string `json:"portfolios"`
}

// importTrades loads a JSON trade file, validates and enriches each record,
// and saves it. Portfolio records are created on first sight.
func importTrades(ctx context.Context, store *tradedb.Store, path string) (*importSummary, error) {
	if path == "" {
		return nil, errors.New("import requires -file")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read import file: %w", err)
	}

	var records []importRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse import file: %w", err)
	}

	summary := &importSummary{}
	seen := make(map[string]bool)

	for i, rec := range records {
		side, err := models.ParseTradeSide(rec.Side)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		tradeDate, err := time.Parse("2006-01-02", rec.TradeDate)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w: bad trade date '%s'", i, models.ErrInvalidInput, rec.TradeDate)
		}

		t := &models.Trade{
			PortfolioID: rec.PortfolioID,
			Symbol:      rec.Symbol,
			Side:        side,
			Quantity:    rec.Quantity,
			Price:       rec.Price,
			Commission:  rec.Commission,
			TradeDate:   tradeDate,
			Notes:       rec.Notes,
		}
		t.Normalize()
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		trade.Enrich(t)

		if err := store.SaveTrade(ctx, t); err != nil {
			return nil, err
		}

		if !seen[rec.PortfolioID] {
			seen[rec.PortfolioID] = true
			summary.Portfolios = append(summary.Portfolios, rec.PortfolioID)
			if _, err := store.GetPortfolio(ctx, rec.PortfolioID); errors.Is(err, models.ErrNotFound) {
				p := &models.Portfolio{
					ID:             rec.PortfolioID,
					OrganizationID: rec.OrganizationID,
					Name:           rec.PortfolioID,
				}
				if err := store.SavePortfolio(ctx, p); err != nil {
					return nil, err
				}
			}
		}

		summary.Imported++
	}

	return summary, nil
}

func writeChart(series *models.PerformanceSeries, path string, logger *common.Logger) error {
	png, err := valuation.RenderPerformanceChart(series)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, png, 0644); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	logger.Info().Str("path", path).Int("bytes", len(png)).Msg("Chart written")
	return nil
}
