package order_put

import (
	"net/http"

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

// ServeHTTP saves the whole form over the order. Any status may be written here.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := orderform.ID(r)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	form, closeForm, err := orderform.Parse(r)
	defer closeForm()
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	res, err := h.service.UpdateOrder(r.Context(), id, form)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	if len(res.Warnings) > 0 {
		h.log.Warn("order saved with warnings",
			logger.NewField("order_id", id),
			logger.NewField("warnings", res.Warnings),
		)
	}

	response.JSON(w, h.log, http.StatusOK, converters.FromSaveResult(res))
}
