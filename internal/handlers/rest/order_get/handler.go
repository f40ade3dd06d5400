package order_get

import (
	"net/http"

	"ordertracker/internal/handlers/rest/converters"
	"ordertracker/internal/handlers/rest/orderform"
	"ordertracker/internal/handlers/rest/response"
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

// ServeHTTP returns one order with its notes, for the edit form.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := orderform.ID(r)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	res, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, converters.FromOrder(*res, true))
}
