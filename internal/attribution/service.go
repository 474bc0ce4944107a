package attribution

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/leadspring/attribution-go/internal/models"
	"github.com/leadspring/attribution-go/internal/obs"
)

// SalesSource and CostSource are the upstream query contracts. The
// implementations are fail-soft: on persistent upstream failure they
// return an empty slice, never an error, so a report is always
// producible (degrading to zeros for the unreachable side).
type SalesSource interface {
	FindLeads(ctx context.Context, f models.Filters) []models.Lead
	FindDeals(ctx context.Context, f models.Filters) []models.Deal
}

type CostSource interface {
	FindCosts(ctx context.Context, f models.Filters) []models.Cost
}

type Service struct {
	sales SalesSource
	costs CostSource
	log   *slog.Logger
}

func NewService(sales SalesSource, costs CostSource, log *slog.Logger) *Service {
	return &Service{sales: sales, costs: costs, log: log}
}

// Report fetches leads, deals and costs concurrently, then runs the
// grouping pass once per dimension plus the raw-collection summary.
// The three fetches have no ordering dependency and a failure in one
// never cancels the other two.
func (s *Service) Report(ctx context.Context, f models.Filters) models.Report {
	start := time.Now()

	var (
		leads []models.Lead
		deals []models.Deal
		spend []models.Cost
		wg    sync.WaitGroup
	)
	wg.Add(3)
	go func() { defer wg.Done(); leads = s.sales.FindLeads(ctx, f) }()
	go func() { defer wg.Done(); deals = s.sales.FindDeals(ctx, f) }()
	go func() { defer wg.Done(); spend = s.costs.FindCosts(ctx, f) }()
	wg.Wait()

	rep := models.Report{
		Summary:  Summarize(leads, deals, spend),
		BySource: Aggregate(leads, deals, spend, BySource),
		ByAd:     Aggregate(leads, deals, spend, ByAd),
	}

	obs.ObserveReportDuration(time.Since(start))
	s.log.Debug("report assembled",
		slog.Int("leads", len(leads)),
		slog.Int("deals", len(deals)),
		slog.Int("costs", len(spend)),
		slog.Duration("took", time.Since(start)))
	return rep
}
