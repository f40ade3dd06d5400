package order_delete

import (
	"net/http"

	"ordertracker/internal/generated/dto"
	"ordertracker/internal/handlers/rest/converters"
	"ordertracker/internal/handlers/rest/orderform"
	"ordertracker/internal/handlers/rest/response"
	"ordertracker/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := orderform.ID(r)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	orders, err := h.service.DeleteOrder(r.Context(), id)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.Info("order deleted", logger.NewField("order_id", id))

	response.JSON(w, h.log, http.StatusOK, dto.Orders{Orders: converters.FromOrders(orders, false)})
}
