package orders_get

import (
	"net/http"
	"strconv"

	"ordertracker/internal/entities"
	"ordertracker/internal/handlers/rest/converters"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	view := entities.NewViewState(
		query.Get("tab"),
		query.Get("status"),
		query.Get("date"),
		query.Get("q"),
	)

	// anything but a parsable true keeps notes hidden
	includeNotes, _ := strconv.ParseBool(query.Get("include_notes"))

	res, err := h.service.ListOrders(r.Context(), view)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, converters.FromOrderList(res, includeNotes))
}
