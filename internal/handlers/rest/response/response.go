// Package response writes JSON bodies and maps order errors onto HTTP status codes.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"ordertracker/internal/generated/dto"
	"ordertracker/internal/service/order"
	"ordertracker/pkg/logger"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

// Error writes {"error": "..."} with the status that matches err.
// Server side failures are logged.
func Error(w http.ResponseWriter, log errorLogger, err error) {
	status := StatusCode(err)
	if status >= http.StatusInternalServerError {
		log.Error("request failed",
			logger.NewField("status", status),
			logger.NewField("error", err),
		)
	}

	JSON(w, log, status, dto.ErrorResponse{Error: err.Error()})
}

func StatusCode(err error) int {
	switch {
	case order.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, order.ErrSessionRequired):
		return http.StatusUnauthorized
	case errors.Is(err, order.ErrAdminRequired):
		return http.StatusForbidden
	case errors.Is(err, order.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrMutationInFlight):
		return http.StatusConflict
	case errors.Is(err, order.ErrAttachmentUpload):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
