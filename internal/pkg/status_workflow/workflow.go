// Package status_workflow holds the quick status transition table and the
// field rules that depend on the delivery method.
package status_workflow

import (
	"slices"

	"github.com/AlekSi/pointer"
	"github.com/shopspring/decimal"
	"ordertracker/internal/entities"
)

// QuickTargets returns the statuses reachable from current through a quick action.
// The table only moves forward; cancelled is reachable through a full edit only.
func QuickTargets(current entities.OrderStatusType) []entities.OrderStatusType {
	switch current {
	case entities.OrderPending:
		return []entities.OrderStatusType{entities.OrderProcessing, entities.OrderShipped}
	case entities.OrderProcessing:
		return []entities.OrderStatusType{entities.OrderShipped}
	case entities.OrderShipped:
		return []entities.OrderStatusType{entities.OrderDelivered}
	case entities.OrderDelivered, entities.OrderCancelled:
		return nil
	default:
		return nil
	}
}

func CanQuickTransition(from, to entities.OrderStatusType) bool {
	return slices.Contains(QuickTargets(from), to)
}

// ShippingLocked reports whether the shipping fee is forced to zero.
func ShippingLocked(method entities.DeliveryMethodType) bool {
	switch method {
	case entities.DeliveryWalkIn:
		return true
	case entities.DeliveryJNT, entities.DeliveryMTO:
		return false
	default:
		return false
	}
}

// ReleaseDateApplies reports whether an order keeps its release date.
func ReleaseDateApplies(method entities.DeliveryMethodType) bool {
	switch method {
	case entities.DeliveryMTO:
		return true
	case entities.DeliveryJNT, entities.DeliveryWalkIn:
		return false
	default:
		return false
	}
}

// ApplyDeliveryRules overwrites the fields the delivery method governs.
// It must run on every write that carries a delivery method.
func ApplyDeliveryRules(modify *entities.OrderModify) {
	if modify == nil || modify.DeliveryMethod == nil {
		return
	}

	method := *modify.DeliveryMethod
	if ShippingLocked(method) {
		modify.PaidShipping = pointer.To(decimal.Zero)
	}
	if !ReleaseDateApplies(method) {
		modify.ReleaseDate = pointer.To("")
	}
}
