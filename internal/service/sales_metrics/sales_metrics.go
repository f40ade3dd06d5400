// Package sales_metrics keeps the sales KPIs exported as Prometheus gauges.
package sales_metrics

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"ordertracker/internal/entities"
	"ordertracker/internal/pkg/sales_summary"
)

type Service struct {
	repository Repository
	clock      func() time.Time
	windowDays int

	// serialises read-and-export from the consumer and the periodic task
	mu sync.Mutex
}

func New(repository Repository, clock func() time.Time, windowDays int) *Service {
	if windowDays <= 0 {
		windowDays = sales_summary.DefaultWindowDays
	}

	return &Service{
		repository: repository,
		clock:      clock,
		windowDays: windowDays,
	}
}

// Refresh aggregates the full order set and replaces the exported KPIs.
// On error the previous values stay in place.
func (s *Service) Refresh(ctx context.Context) (*entities.SalesSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	now := s.clock()
	summary := sales_summary.Aggregate(orders, s.windowDays, now)

	export(summary)
	LastRefresh.Set(float64(now.Unix()))

	return &summary, nil
}

func export(summary entities.SalesSummary) {
	OrdersTotal.Set(float64(summary.TotalOrders))

	RevenueTotal.WithLabelValues("product").Set(summary.Revenue.Product.InexactFloat64())
	RevenueTotal.WithLabelValues("shipping").Set(summary.Revenue.Shipping.InexactFloat64())
	RevenueTotal.WithLabelValues("total").Set(summary.Revenue.Total.InexactFloat64())

	TodayOrders.Set(float64(summary.Today.Orders))
	TodayCustomers.Set(float64(summary.Today.Customers))
	TodayRevenue.Set(summary.Today.Revenue.InexactFloat64())

	// unknown statuses come and go, stale series must not linger
	OrdersByStatus.Reset()
	for status, count := range summary.StatusHistogram {
		OrdersByStatus.WithLabelValues(status.String()).Set(float64(count))
	}

	DailyOrders.Reset()
	DailyRevenue.Reset()
	for i, day := range summary.Daily {
		daysAgo := strconv.Itoa(i)
		DailyOrders.WithLabelValues(daysAgo).Set(float64(day.Orders))
		DailyRevenue.WithLabelValues(daysAgo).Set(day.Revenue.Total.InexactFloat64())
	}
}
