package sales_metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersTotal = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sales_orders",
		Help: "Number of stored orders",
	})

	RevenueTotal = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "sales_revenue",
			Help: "Revenue over all orders by component",
		},
		[]string{"component"},
	)

	TodayOrders = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sales_today_orders",
		Help: "Orders dated today",
	})

	TodayCustomers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sales_today_customers",
		Help: "Distinct customers with an order dated today",
	})

	TodayRevenue = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sales_today_revenue",
		Help: "Revenue of orders dated today",
	})

	OrdersByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "sales_orders_by_status",
			Help: "Order count per status",
		},
		[]string{"status"},
	)

	DailyOrders = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "sales_daily_orders",
			Help: "Orders per day of the rolling window, 0 is today",
		},
		[]string{"days_ago"},
	)

	DailyRevenue = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "sales_daily_revenue",
			Help: "Revenue per day of the rolling window, 0 is today",
		},
		[]string{"days_ago"},
	)

	LastRefresh = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sales_metrics_last_refresh_timestamp_seconds",
		Help: "Unix time of the last successful KPI refresh",
	})
)
