package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/bruins-live-service/internal/app/today"
	"github.com/preston-bernstein/bruins-live-service/internal/logging"
	"github.com/preston-bernstein/bruins-live-service/internal/poller"
)

const maxOverrideBody = 4 << 10

// PollRunner runs one poll cycle on demand.
type PollRunner interface {
	PollOnce(ctx context.Context) (poller.Result, error)
}

// AdminHandler exposes admin-only endpoints. Authorization is enforced by the router.
type AdminHandler struct {
	svc    *today.Service
	poller PollRunner
	logger *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(svc *today.Service, runner PollRunner, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, poller: runner, logger: logger}
}

type overrideRequest struct {
	ChannelOverride     string `json:"channelOverride"`
	ChannelOverrideNote string `json:"channelOverrideNote"`
}

// SetOverride stores a channel override for {dateKey}.
func (h *AdminHandler) SetOverride(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	var body overrideRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxOverrideBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid request body", logger)
		return
	}

	dateKey := chi.URLParam(r, "dateKey")
	doc, err := h.svc.SetOverride(r.Context(), dateKey, body.ChannelOverride, body.ChannelOverrideNote)
	if err != nil {
		writeServiceError(w, r, err, logger)
		return
	}
	logging.Info(logger, "channel override set",
		logging.FieldDateKey, dateKey,
		"channel", doc.EffectiveChannel,
	)
	writeJSON(w, http.StatusOK, doc, logger)
}

// ClearOverride removes the channel override for {dateKey}.
func (h *AdminHandler) ClearOverride(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	dateKey := chi.URLParam(r, "dateKey")
	doc, err := h.svc.ClearOverride(r.Context(), dateKey)
	if err != nil {
		writeServiceError(w, r, err, logger)
		return
	}
	logging.Info(logger, "channel override cleared", logging.FieldDateKey, dateKey)
	writeJSON(w, http.StatusOK, doc, logger)
}

// Poll runs one poll cycle and returns its result.
func (h *AdminHandler) Poll(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	if h.poller == nil {
		writeError(w, r, http.StatusServiceUnavailable, "poller not configured", logger)
		return
	}
	result, err := h.poller.PollOnce(r.Context())
	if err != nil {
		writeServiceError(w, r, err, logger)
		return
	}
	writeJSON(w, http.StatusOK, result, logger)
}
