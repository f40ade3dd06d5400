package order_events

import (
	"ordertracker/internal/entities"
	"ordertracker/internal/generated/dto"
)

func toOrderChangedDTO(event entities.OrderEvent) dto.OrderChanged {
	res := dto.OrderChanged{
		ID:     event.OrderID,
		Action: event.Action.String(),
		At:     event.At.UTC(),
	}
	if event.Status != "" {
		status := event.Status.String()
		res.Status = &status
	}
	if event.Actor != "" {
		actor := event.Actor
		res.Actor = &actor
	}
	return res
}
