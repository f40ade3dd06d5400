package dashboard_get

import (
	"fmt"
	"net/http"
	"strconv"

	"ordertracker/internal/handlers/rest/converters"
	"ordertracker/internal/handlers/rest/response"
	"ordertracker/internal/service/order"
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

// ServeHTTP returns the sales KPIs. Without ?days the configured window is used.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var windowDays int
	if raw := r.URL.Query().Get("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days <= 0 {
			response.Error(w, h.log, fmt.Errorf("%w: %q", order.ErrInvalidWindow, raw))
			return
		}
		windowDays = days
	}

	res, err := h.service.SalesSummary(r.Context(), windowDays)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, converters.FromSalesSummary(res))
}
