package order_filter

import (
	"slices"
	"strings"

	"ordertracker/internal/entities"
)

// Filtered returns the orders matching every active dimension of view,
// keeping their relative order.
func Filtered(orders []entities.Order, view entities.ViewState) []entities.Order {
	query := strings.ToLower(strings.TrimSpace(view.Query))

	result := make([]entities.Order, 0, len(orders))
	for _, order := range orders {
		if matches(&order, view, query) {
			result = append(result, order)
		}
	}
	return result
}

func matches(order *entities.Order, view entities.ViewState, query string) bool {
	if !entities.IsFilterAll(view.Tab) && !strings.EqualFold(order.DeliveryMethod.String(), view.Tab) {
		return false
	}
	if !entities.IsFilterAll(view.Status) && !strings.EqualFold(order.Status.String(), view.Status) {
		return false
	}
	if !entities.IsFilterAll(view.Date) && order.OrderDate != view.Date {
		return false
	}
	if query != "" && !strings.Contains(searchText(order), query) {
		return false
	}
	return true
}

// searchText joins the searchable fields, skipping the empty ones.
func searchText(order *entities.Order) string {
	parts := make([]string, 0, 5)
	for _, field := range []string{order.OrderID, order.CustomerName, order.FBProfile, order.OrderDetails, order.Notes} {
		if field != "" {
			parts = append(parts, field)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// DateOptions lists the distinct order dates, newest first.
func DateOptions(orders []entities.Order) []string {
	seen := make(map[string]struct{}, len(orders))
	dates := make([]string, 0, len(orders))
	for _, order := range orders {
		if order.OrderDate == "" {
			continue
		}
		if _, ok := seen[order.OrderDate]; ok {
			continue
		}
		seen[order.OrderDate] = struct{}{}
		dates = append(dates, order.OrderDate)
	}

	slices.Sort(dates)
	slices.Reverse(dates)
	return dates
}
