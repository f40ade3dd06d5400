package entities

import "time"

type OrderAction string

const (
	OrderActionCreated       OrderAction = "created"
	OrderActionUpdated       OrderAction = "updated"
	OrderActionStatusChanged OrderAction = "status_changed"
	OrderActionDeleted       OrderAction = "deleted"
)

func (a OrderAction) String() string {
	return string(a)
}

// OrderEvent announces a persisted change of one order.
type OrderEvent struct {
	OrderID int64
	Action  OrderAction
	Status  OrderStatusType
	Actor   string
	At      time.Time
}
