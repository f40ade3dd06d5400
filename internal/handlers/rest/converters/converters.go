// Package converters renders domain orders and KPIs as API models.
package converters

import (
	"github.com/AlekSi/pointer"
	"ordertracker/internal/entities"
	"ordertracker/internal/generated/dto"
	"ordertracker/internal/pkg/profile_link"
	"ordertracker/internal/pkg/status_workflow"
)

// FromOrder renders an order for the API. Notes are only included on request.
func FromOrder(o entities.Order, includeNotes bool) dto.Order {
	quickActions := make([]dto.OrderStatus, 0, 2)
	for _, target := range status_workflow.QuickTargets(o.Status) {
		quickActions = append(quickActions, dto.OrderStatus(target))
	}

	res := dto.Order{
		ID:               o.ID,
		OrderID:          optional(o.OrderID),
		CustomerName:     o.CustomerName,
		FBProfile:        optional(o.FBProfile),
		FBProfileURL:     optional(profile_link.Normalize(o.FBProfile)),
		OrderDetails:     o.OrderDetails,
		Status:           dto.OrderStatus(o.Status),
		DeliveryMethod:   dto.DeliveryMethod(o.DeliveryMethod),
		OrderDate:        optional(o.OrderDate),
		OrderDateDisplay: optional(entities.FormatDMY(o.OrderDate)),
		PaidProduct:      o.PaidProduct,
		PaidShipping:     o.PaidShipping,
		ShippingLocked:   status_workflow.ShippingLocked(o.DeliveryMethod),
		ShipmentDate:     optional(o.ShipmentDate),
		AttachmentURL:    optional(o.AttachmentURL),
		QuickActions:     quickActions,
		CreatedAt:        o.CreatedAt,
	}

	if status_workflow.ReleaseDateApplies(o.DeliveryMethod) {
		res.ReleaseDate = optional(o.ReleaseDate)
	}
	if includeNotes {
		res.Notes = optional(o.Notes)
	}

	return res
}

func FromOrders(orders []entities.Order, includeNotes bool) []dto.Order {
	res := make([]dto.Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, FromOrder(o, includeNotes))
	}
	return res
}

func FromOrderList(list *entities.OrderList, includeNotes bool) dto.OrderList {
	dateOptions := list.DateOptions
	if dateOptions == nil {
		dateOptions = []string{}
	}

	return dto.OrderList{
		Orders:      FromOrders(list.Orders, includeNotes),
		Count:       len(list.Orders),
		Total:       list.Total,
		DateOptions: dateOptions,
		View: dto.View{
			Tab:    list.View.Tab,
			Status: list.View.Status,
			Date:   list.View.Date,
			Query:  list.View.Query,
		},
	}
}

func FromSaveResult(result *entities.SaveResult) dto.SaveResult {
	res := dto.SaveResult{
		Orders: FromOrders(result.Orders, false),
	}
	if len(result.Warnings) > 0 {
		res.Warnings = pointer.To(result.Warnings)
	}
	if result.Order != nil {
		res.Order = pointer.To(FromOrder(*result.Order, true))
	}
	return res
}

func FromSalesSummary(summary *entities.SalesSummary) dto.Dashboard {
	histogram := make(map[string]int, len(summary.StatusHistogram))
	for status, count := range summary.StatusHistogram {
		histogram[status.String()] = count
	}

	daily := make([]dto.SalesDay, 0, len(summary.Daily))
	for _, day := range summary.Daily {
		daily = append(daily, dto.SalesDay{
			Date:      day.Date,
			Orders:    day.Orders,
			Customers: day.Customers,
			Revenue:   fromRevenue(day.Revenue),
		})
	}

	return dto.Dashboard{
		TotalOrders: summary.TotalOrders,
		Revenue:     fromRevenue(summary.Revenue),
		Today: dto.Today{
			Date:      summary.Today.Date,
			Orders:    summary.Today.Orders,
			Customers: summary.Today.Customers,
			Revenue:   summary.Today.Revenue,
		},
		StatusHistogram: histogram,
		WindowDays:      summary.WindowDays,
		Daily:           daily,
	}
}

func fromRevenue(r entities.Revenue) dto.Revenue {
	return dto.Revenue{
		Product:  r.Product,
		Shipping: r.Shipping,
		Total:    r.Total,
	}
}

// optional leaves blank values out of the response.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
