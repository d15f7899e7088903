package risk

import (
	"context"
	"fmt"

	"github.com/tradecraft/tradecraft/internal/models"
	"github.com/tradecraft/tradecraft/internal/services/valuation"
)

// OrganizationRisk aggregates risk across all of an organization's portfolios.
func (s *Service) OrganizationRisk(ctx context.Context, organizationID string) (*models.RiskReport, error) {
	portfolios, err := s.portfolios.ListByOrganization(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios for organization '%s': %w", organizationID, err)
	}
	if len(portfolios) == 0 {
		return nil, fmt.Errorf("%w: no portfolios for organization '%s'", models.ErrNotFound, organizationID)
	}

	reports := make([]WeightedReport, 0, len(portfolios))
	for _, p := range portfolios {
		report, err := s.PortfolioRisk(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		holdings, err := s.holdingsFor(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		reports = append(reports, WeightedReport{
			Report:     report,
			TotalValue: valuation.TotalMarketValue(holdings),
		})
	}

	aggregated := AggregateReports(reports)
	aggregated.PortfolioID = ""

	s.logger.Info().
		Str("organization", organizationID).
		Int("portfolios", len(reports)).
		Msg("Organization risk aggregated")

	return aggregated, nil
}

// WeightedReport pairs a portfolio's risk report with its total market value.
// The value is carried for a future weighted aggregation; the current fold
// does not consult it.
type WeightedReport struct {
	Report     *models.RiskReport
	TotalValue float64
}

// AggregateReports folds a sequence of risk reports into one. Sharpe ratio and
// beta are pairwise-averaged: each step averages the running aggregate with
// the next report, so the result depends on input order and is not a
// value-weighted mean. VaR is summed per horizon with the diversification
// factor applied at each step after the first.
func AggregateReports(reports []WeightedReport) *models.RiskReport {
	aggregated := &models.RiskReport{}

	for _, wr := range reports {
		report := wr.Report
		if aggregated.SharpeRatio == 0 {
			aggregated.SharpeRatio = report.SharpeRatio
		} else {
			aggregated.SharpeRatio = (aggregated.SharpeRatio + report.SharpeRatio) / 2
		}

		if aggregated.Beta == 0 {
			aggregated.Beta = report.Beta
		} else {
			aggregated.Beta = (aggregated.Beta + report.Beta) / 2
		}

		if aggregated.ValueAtRisk == nil {
			aggregated.ValueAtRisk = make(map[string]float64, len(report.ValueAtRisk))
			for horizon, v := range report.ValueAtRisk {
				aggregated.ValueAtRisk[horizon] = v
			}
		} else {
			for horizon, v := range report.ValueAtRisk {
				combined := aggregated.ValueAtRisk[horizon] + v
				aggregated.ValueAtRisk[horizon] = combined * diversificationFactor
			}
		}
	}

	return aggregated
}
