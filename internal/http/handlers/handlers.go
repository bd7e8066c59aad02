package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/bruins-live-service/internal/app/today"
	"github.com/preston-bernstein/bruins-live-service/internal/logging"
	"github.com/preston-bernstein/bruins-live-service/internal/poller"
)

type nowFunc func() time.Time

// Handler serves the public read endpoints.
type Handler struct {
	svc      *today.Service
	logger   *slog.Logger
	now      nowFunc
	statusFn func() poller.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *today.Service, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		now:      time.Now,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports ready once the poll loop has had a recent success.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Today returns the today document for the configured timezone's current date.
func (h *Handler) Today(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	view, err := h.svc.Today(r.Context(), h.now())
	if err != nil {
		writeServiceError(w, r, err, logger)
		return
	}
	logging.Info(logger, "served today", logging.FieldDateKey, view.Today.DateKey)
	writeJSON(w, http.StatusOK, view, logger)
}

// TodayForDate returns the today document for the {dateKey} path parameter.
func (h *Handler) TodayForDate(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	view, err := h.svc.ForDate(r.Context(), chi.URLParam(r, "dateKey"))
	if err != nil {
		writeServiceError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, view, logger)
}

// GameByID returns the game document for the {gameId} path parameter.
func (h *Handler) GameByID(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	game, err := h.svc.GameByID(r.Context(), chi.URLParam(r, "gameId"))
	if err != nil {
		writeServiceError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, game, logger)
}
