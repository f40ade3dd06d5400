package order_changed

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsConsumedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_events_consumed_total",
			Help: "order.changed events by action and outcome",
		},
		[]string{"action", "result"},
	)

	EventLag = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "order_events_lag_seconds",
			Help:    "Delay between the order change and its processing",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12),
		},
	)
)
