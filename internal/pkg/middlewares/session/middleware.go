package session

import (
	"encoding/json"
	"net/http"
	"strings"

	"ordertracker/internal/entities"
	"ordertracker/internal/generated/dto"
	"ordertracker/pkg/logger"
)

const bearerPrefix = "Bearer "

// Middleware puts the resolved entities.Session into the request context and
// answers 401 when there is none.
func Middleware(log handlerLogger, auth *Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenString, ok := strings.CutPrefix(header, bearerPrefix)
			if !ok || strings.TrimSpace(tokenString) == "" {
				unauthorized(w, log, ErrMissingToken)
				return
			}

			session, err := auth.Resolve(strings.TrimSpace(tokenString))
			if err != nil {
				log.With(
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err),
				).Warn("session rejected")
				unauthorized(w, log, err)
				return
			}

			ctx := entities.ContextWithSession(r.Context(), session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, log handlerLogger, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Bearer realm="orders"`)
	w.WriteHeader(http.StatusUnauthorized)

	if encodeErr := json.NewEncoder(w).Encode(dto.ErrorResponse{Error: err.Error()}); encodeErr != nil {
		log.With(logger.NewField("error", encodeErr)).Error("encode JSON response")
	}
}
