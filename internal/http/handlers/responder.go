package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/bruins-live-service/internal/app/today"
	"github.com/preston-bernstein/bruins-live-service/internal/contracts"
	"github.com/preston-bernstein/bruins-live-service/internal/domain"
	"github.com/preston-bernstein/bruins-live-service/internal/http/middleware"
	"github.com/preston-bernstein/bruins-live-service/internal/logging"
	"github.com/preston-bernstein/bruins-live-service/internal/providers"
	"github.com/preston-bernstein/bruins-live-service/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeServiceError maps a service/poll error to an HTTP status.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status, message := statusForError(err)
	if status >= http.StatusInternalServerError {
		logging.Error(logger, "request failed", err, slog.Int(logging.FieldStatusCode, status))
	}
	writeError(w, r, status, message, logger)
}

func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, today.ErrBlankOverride),
		errors.Is(err, today.ErrInvalidDate),
		errors.Is(err, store.ErrInvalidKey),
		contracts.IsValidationError(err):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, today.ErrGameNotFound):
		return http.StatusNotFound, "game not found"
	case domain.IsConfigError(err):
		return http.StatusServiceUnavailable, "service not configured"
	case providers.IsUpstreamError(err), errors.Is(err, providers.ErrProviderUnavailable):
		return http.StatusBadGateway, "upstream unavailable"
	case domain.IsDataError(err):
		return http.StatusBadGateway, "upstream data incomplete"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
