package sales_metrics_refresh

import (
	"context"
	"time"

	"ordertracker/internal/entities"
	"ordertracker/pkg/logger"
)

type Service interface {
	Refresh(ctx context.Context) (*entities.SalesSummary, error)
}

// SalesMetricsRefresh re-exports the KPIs on a timer, so the gauges follow
// the calendar (today, rolling window) even when no order changes.
type SalesMetricsRefresh struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewSalesMetricsRefresh(log logger.Logger, service Service, interval time.Duration) *SalesMetricsRefresh {
	return &SalesMetricsRefresh{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *SalesMetricsRefresh) TTL() time.Duration {
	return s.interval
}

func (s *SalesMetricsRefresh) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	summary, err := s.service.Refresh(ctxWithTimeout)
	if err != nil {
		return err
	}

	s.log.With(
		logger.NewField("total_orders", summary.TotalOrders),
		logger.NewField("today_orders", summary.Today.Orders),
		logger.NewField("revenue_total", summary.Revenue.Total.String()),
	).Info("sales metrics refreshed")

	return nil
}

func (s *SalesMetricsRefresh) Info() string {
	return "sales metrics refresh"
}
