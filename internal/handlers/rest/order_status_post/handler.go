package order_status_post

import (
	"encoding/json"
	"fmt"
	"net/http"

	"ordertracker/internal/entities"
	"ordertracker/internal/generated/dto"
	"ordertracker/internal/handlers/rest/converters"
	"ordertracker/internal/handlers/rest/orderform"
	"ordertracker/internal/handlers/rest/response"
	"ordertracker/internal/service/order"
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

// ServeHTTP applies a quick status action. Only forward moves of the quick
// workflow are accepted.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := orderform.ID(r)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	var statusDTO dto.StatusUpdate
	err = json.NewDecoder(r.Body).Decode(&statusDTO)
	if err != nil {
		response.Error(w, h.log, fmt.Errorf("%w: %w", order.ErrInvalidStatus, err))
		return
	}

	target := entities.OrderStatusType(statusDTO.Status)

	orders, err := h.service.QuickSetStatus(r.Context(), id, target)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.Info(fmt.Sprintf("status -> %s", target), logger.NewField("order_id", id))

	response.JSON(w, h.log, http.StatusOK, dto.Orders{Orders: converters.FromOrders(orders, false)})
}
