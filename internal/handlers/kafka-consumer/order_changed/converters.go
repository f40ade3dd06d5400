package order_changed

import (
	"github.com/AlekSi/pointer"
	"ordertracker/internal/entities"
	"ordertracker/internal/generated/dto"
)

func toOrderEvent(e dto.OrderChanged) entities.OrderEvent {
	return entities.OrderEvent{
		OrderID: e.ID,
		Action:  entities.OrderAction(e.Action),
		Status:  entities.OrderStatusType(pointer.Get(e.Status)),
		Actor:   pointer.Get(e.Actor),
		At:      e.At,
	}
}
