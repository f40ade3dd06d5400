package sales_summary

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"ordertracker/internal/entities"
)

const DefaultWindowDays = 7

type dayBucket struct {
	orders    int
	customers map[string]struct{}
	product   decimal.Decimal
	shipping  decimal.Decimal
}

// Aggregate derives the KPIs of the whole order set. "Today" is the calendar
// date of now in now's location. The rolling table has exactly windowDays rows,
// most recent first.
func Aggregate(orders []entities.Order, windowDays int, now time.Time) entities.SalesSummary {
	today := now.Format(entities.DateLayout)

	summary := entities.SalesSummary{
		TotalOrders: len(orders),
		Revenue: entities.Revenue{
			Product:  decimal.Zero,
			Shipping: decimal.Zero,
			Total:    decimal.Zero,
		},
		Today: entities.TodayFacet{
			Date:    today,
			Revenue: decimal.Zero,
		},
		StatusHistogram: newHistogram(),
		WindowDays:      max(windowDays, 0),
	}

	days := make(map[string]*dayBucket)
	for _, order := range orders {
		summary.Revenue.Product = summary.Revenue.Product.Add(order.PaidProduct)
		summary.Revenue.Shipping = summary.Revenue.Shipping.Add(order.PaidShipping)

		status, _ := entities.ParseOrderStatus(order.Status.String())
		summary.StatusHistogram[status]++

		if order.OrderDate == "" {
			continue
		}

		bucket, ok := days[order.OrderDate]
		if !ok {
			bucket = &dayBucket{
				customers: make(map[string]struct{}),
				product:   decimal.Zero,
				shipping:  decimal.Zero,
			}
			days[order.OrderDate] = bucket
		}
		bucket.orders++
		bucket.product = bucket.product.Add(order.PaidProduct)
		bucket.shipping = bucket.shipping.Add(order.PaidShipping)
		if name := customerKey(order.CustomerName); name != "" {
			bucket.customers[name] = struct{}{}
		}
	}
	summary.Revenue.Total = summary.Revenue.Product.Add(summary.Revenue.Shipping)

	if bucket, ok := days[today]; ok {
		summary.Today.Orders = bucket.orders
		summary.Today.Customers = len(bucket.customers)
		summary.Today.Revenue = bucket.product.Add(bucket.shipping)
	}

	summary.Daily = rollingTable(days, windowDays, now)
	return summary
}

func rollingTable(days map[string]*dayBucket, windowDays int, now time.Time) []entities.SalesDay {
	if windowDays <= 0 {
		return []entities.SalesDay{}
	}

	year, month, day := now.Date()
	rows := make([]entities.SalesDay, 0, windowDays)
	for i := range windowDays {
		date := time.Date(year, month, day-i, 0, 0, 0, 0, now.Location()).Format(entities.DateLayout)

		row := entities.SalesDay{
			Date: date,
			Revenue: entities.Revenue{
				Product:  decimal.Zero,
				Shipping: decimal.Zero,
				Total:    decimal.Zero,
			},
		}
		if bucket, ok := days[date]; ok {
			row.Orders = bucket.orders
			row.Customers = len(bucket.customers)
			row.Revenue = entities.Revenue{
				Product:  bucket.product,
				Shipping: bucket.shipping,
				Total:    bucket.product.Add(bucket.shipping),
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func newHistogram() map[entities.OrderStatusType]int {
	histogram := make(map[entities.OrderStatusType]int, len(entities.OrderStatuses()))
	for _, status := range entities.OrderStatuses() {
		histogram[status] = 0
	}
	return histogram
}

func customerKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
