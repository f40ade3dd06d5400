package order

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrderMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_mutations_total",
			Help: "Order writes by action and outcome",
		},
		[]string{"action", "result"},
	)

	NegativeAmountsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_negative_amounts_total",
			Help: "Saved orders carrying a negative money field",
		},
		[]string{"field"},
	)
)
