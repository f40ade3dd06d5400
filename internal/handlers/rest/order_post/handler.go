package order_post

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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	form, closeForm, err := orderform.Parse(r)
	defer closeForm()
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	res, err := h.service.CreateOrder(r.Context(), form)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	if len(res.Warnings) > 0 {
		h.log.Warn("order saved with warnings",
			logger.NewField("order_id", res.Order.ID),
			logger.NewField("warnings", res.Warnings),
		)
	}

	response.JSON(w, h.log, http.StatusCreated, converters.FromSaveResult(res))
}
