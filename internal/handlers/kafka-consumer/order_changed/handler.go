package order_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"ordertracker/internal/generated/dto"
	"ordertracker/pkg/logger"
)

type Handler struct {
	salesService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
	now                      func() time.Time
}

func New(log handlerLogger, salesService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		salesService:             salesService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
		now:                      time.Now,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.changed: claim closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance or consumer group shutdown
			h.log.Info("order.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing recomputes the KPIs for one event. It returns true when
// ConsumeClaim must stop; the message is then left unmarked and redelivered.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var eventDTO dto.OrderChanged
	err := json.Unmarshal(message.Value, &eventDTO)
	if err != nil {
		EventsConsumedTotal.WithLabelValues("unknown", "bad_message").Inc()
		h.log.With(
			logger.NewField("offset", message.Offset),
			logger.NewField("error", err),
		).Error("order.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}
	event := toOrderEvent(eventDTO)
	action := event.Action.String()

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("action", action),
		logger.NewField("offset", message.Offset),
	)

	if !event.At.IsZero() {
		EventLag.Observe(h.now().Sub(event.At).Seconds())
	}

	summary, err := h.salesService.Refresh(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			EventsConsumedTotal.WithLabelValues(action, "retry").Inc()
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.changed handler context cancelled, message will be reprocessed")
			return true
		}

		// the periodic refresh catches up, a single failure is not worth a redelivery loop
		EventsConsumedTotal.WithLabelValues(action, "error").Inc()
		msgLog.With(
			logger.NewField("error", err),
		).Warn("order.changed handler failed to refresh sales metrics")
		sess.MarkMessage(message, "")
		return false
	}

	EventsConsumedTotal.WithLabelValues(action, "ok").Inc()
	msgLog.With(
		logger.NewField("total_orders", summary.TotalOrders),
		logger.NewField("today_orders", summary.Today.Orders),
	).Info("order.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
