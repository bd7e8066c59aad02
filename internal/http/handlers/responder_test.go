package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/bruins-live-service/internal/app/today"
	"github.com/preston-bernstein/bruins-live-service/internal/domain"
	"github.com/preston-bernstein/bruins-live-service/internal/providers"
	"github.com/preston-bernstein/bruins-live-service/internal/store"
	"github.com/preston-bernstein/bruins-live-service/internal/testutil"
)

func TestWriteErrorIncludesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	logger, _ := testutil.NewBufferLogger()

	req.Header.Set("X-Request-ID", "abc123")

	rr := testutil.ServeRequest(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusTeapot, "boom", logger)
	}), req)

	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected status 418, got %d", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected content type json, got %s", got)
	}
	body := rr.Body.String()
	if !bytes.Contains([]byte(body), []byte("abc123")) {
		t.Fatalf("expected requestId in body, got %s", body)
	}
}

func TestWriteJSONLogsEncodeError(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rr := testutil.Serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, make(chan int), logger)
	}), http.MethodGet, "/encode-error", nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status written even on encode error, got %d", rr.Code)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected logger to record encode error")
	}
}

func TestWriteErrorFallsBackToHeaderRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "header-id")
	writeError(rr, req, http.StatusTeapot, "boom", logger)
	if !bytes.Contains(rr.Body.Bytes(), []byte("header-id")) {
		t.Fatalf("expected header request id used when context missing")
	}
}

func TestStatusForError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"blank override", today.ErrBlankOverride, http.StatusBadRequest},
		{"invalid date", fmt.Errorf("%w: x", today.ErrInvalidDate), http.StatusBadRequest},
		{"invalid key", fmt.Errorf("%w: game id", store.ErrInvalidKey), http.StatusBadRequest},
		{"game missing", today.ErrGameNotFound, http.StatusNotFound},
		{"config", fmt.Errorf("read config: %w", &domain.ConfigError{Reason: "missing"}), http.StatusServiceUnavailable},
		{"upstream", fmt.Errorf("fetch schedule: %w", &providers.UpstreamError{Provider: "nhl", StatusCode: 500}), http.StatusBadGateway},
		{"unavailable", providers.ErrProviderUnavailable, http.StatusBadGateway},
		{"data", &domain.DataError{Field: "gameId"}, http.StatusBadGateway},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got, _ := statusForError(tc.err); got != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}
