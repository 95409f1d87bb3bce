package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"aisle-finder/internal/middleware"
	"aisle-finder/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response carrying the request's correlation id.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	correlationID := middleware.RequestIDFromContext(r.Context())
	logger.Error().
		Str("request_id", correlationID).
		Str("code", code).
		Str("error", message).
		Int("status", status).
		Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: correlationID,
	})
}

// writeServiceError maps a service error to its HTTP status. Domain errors keep their
// code and message; anything else becomes a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, r, statusFor(domainErr.Code), domainErr.Code, domainErr.Message, logger)
		return
	}

	logger.Error().Err(err).
		Str("request_id", middleware.RequestIDFromContext(r.Context())).
		Msg("unexpected service error")
	writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "internal server error", logger)
}

func statusFor(code string) int {
	switch code {
	case model.ErrCodeQueryRequired, model.ErrCodeQueryTooLong, model.ErrCodeInvalidParameter:
		return http.StatusBadRequest
	case model.ErrCodeProductNotFound, model.ErrCodeNotFound:
		return http.StatusNotFound
	case model.ErrCodeUnauthorised:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// NotFound answers requests that match no route with the JSON error body.
func NotFound(logger zerolog.Logger) http.Handler {
	return routingError(http.StatusNotFound, model.ErrCodeNotFound, "resource not found", logger)
}

// MethodNotAllowed answers requests whose path exists under another method.
func MethodNotAllowed(logger zerolog.Logger) http.Handler {
	return routingError(http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed, "method not allowed", logger)
}

func routingError(status int, code, message string, logger zerolog.Logger) http.Handler {
	logger = logger.With().Str("handler", "routing").Logger()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID := middleware.RequestIDFromContext(r.Context())
		logger.Debug().
			Str("request_id", correlationID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Msg("no route")
		writeJSON(w, status, model.ErrorResponse{
			Error:         code,
			Message:       message,
			CorrelationID: correlationID,
		})
	})
}
