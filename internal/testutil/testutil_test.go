package testutil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestClockHelpers(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := NowAt(now)(); !got.Equal(now) {
		t.Fatalf("expected fixed time, got %v", got)
	}
	if got := MustParseInstant("2024-01-02T03:04:05.000Z"); !got.Equal(now) {
		t.Fatalf("expected parse round trip, got %v", got)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on invalid instant")
		}
	}()
	MustParseInstant("not-a-time")
}

func TestFixturesHelper(t *testing.T) {
	g := SampleGame("2026020801")
	if g.GameID != "2026020801" || !g.Status.Valid() || g.Clock == nil {
		t.Fatalf("unexpected game fixture %+v", g)
	}
	today := SampleToday("2026-02-08", &g.GameID)
	if today.DateKey != "2026-02-08" || today.GameID == nil || today.EffectiveChannel != SampleConfig().DefaultChannel {
		t.Fatalf("unexpected today fixture %+v", today)
	}
}

func TestStoreHelpers(t *testing.T) {
	svc, mem := NewTodayService(t)
	cfg, err := mem.GetConfig(context.Background())
	if err != nil || cfg != SampleConfig() {
		t.Fatalf("expected seeded config, got %+v err %v", cfg, err)
	}
	view, err := svc.ForDate(context.Background(), "2026-02-08")
	if err != nil || view.Today.EffectiveChannel != "91" {
		t.Fatalf("unexpected view %+v err %v", view, err)
	}
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}

	req := httptest.NewRequest(http.MethodGet, "/req", nil)
	rr2 := ServeRequest(handler, req)
	AssertStatus(t, rr2, http.StatusCreated)
}

func TestServeAuthorized(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})
	rr := ServeAuthorized(handler, http.MethodPut, "/admin", "secret", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusNoContent)
}

func TestHTTPHelperErrorFormatting(t *testing.T) {
	rr := httptest.NewRecorder()
	rr.WriteHeader(http.StatusBadRequest)
	rr.WriteString(strings.Repeat("x", 600))

	if err := statusError(rr, http.StatusOK); err == nil {
		t.Fatalf("expected status error")
	} else if !strings.Contains(err.Error(), "body=") {
		t.Fatalf("expected body snippet in error, got %v", err)
	}

	rr = httptest.NewRecorder()
	rr.WriteHeader(http.StatusOK)
	if err := statusError(rr, http.StatusOK); err != nil {
		t.Fatalf("expected nil error when status matches, got %v", err)
	}

	rr = httptest.NewRecorder()
	rr.WriteString(`{"ok":true}`)
	if err := decodeJSONBody(rr, &map[string]any{}); err != nil {
		t.Fatalf("expected decode success, got %v", err)
	}
	rr = httptest.NewRecorder()
	rr.WriteString("not-json")
	var dest map[string]any
	if err := decodeJSONBody(rr, &dest); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestServerStubs(t *testing.T) {
	p := &StubPoller{Err: errors.New("stop"), PollErr: errors.New("poll")}
	if err := p.Start(context.Background()); err != nil {
		t.Fatalf("unexpected start error %v", err)
	}
	if _, err := p.PollOnce(context.Background()); !errors.Is(err, p.PollErr) {
		t.Fatalf("expected poll error")
	}
	if err := p.Stop(context.Background()); !errors.Is(err, p.Err) {
		t.Fatalf("expected stop error")
	}
	if p.StartCalls != 1 || p.StopCalls != 1 || p.PollCalls != 1 {
		t.Fatalf("unexpected call counts %+v", p)
	}

	sh := &StubHTTPServer{ListenErr: errors.New("boom"), ShutdownErr: errors.New("down")}
	sh.HandlerVal = http.NewServeMux()
	_ = sh.ListenAndServe()
	_ = sh.Shutdown(context.Background())
	_ = sh.Handler()
	_ = sh.Addr()
	if sh.ListenCalls != 1 || sh.ShutdownCalls != 1 {
		t.Fatalf("expected listen/shutdown calls, got %+v", sh)
	}

	b := &BlockingHTTPServer{Unblock: make(chan struct{}), HandlerVal: http.NewServeMux()}
	if err := b.ListenAndServe(); err != nil {
		t.Fatalf("expected nil listen error for blocking server")
	}
	done := make(chan error, 1)
	go func() { done <- b.Shutdown(context.Background()) }()
	close(b.Unblock)
	_ = b.Handler()
	if b.Addr() != b.AddrVal {
		t.Fatalf("expected blocking server addr passthrough")
	}
	if err := <-done; err != nil {
		t.Fatalf("expected nil shutdown err, got %v", err)
	}
	if b.ShutdownCalls != 1 {
		t.Fatalf("expected shutdown called once")
	}

	e := &ErrHTTPServer{}
	_ = e.ListenAndServe()
	_ = e.Shutdown(context.Background())
	_ = e.Handler()
	if e.Addr() == "" {
		t.Fatalf("expected addr from ErrHTTPServer")
	}
	if e.ShutdownCalls != 1 {
		t.Fatalf("expected shutdown call for ErrHTTPServer")
	}

	c := &CloseableHTTPServer{}
	_ = c.ListenAndServe()
	_ = c.Shutdown(context.Background())
	_ = c.Handler()
	if c.Addr() == "" {
		t.Fatalf("expected addr from CloseableHTTPServer")
	}
	if c.ShutdownCalls != 1 {
		t.Fatalf("expected shutdown call for CloseableHTTPServer")
	}

	// verify Status passthrough
	if p.Status() != p.StatusVal {
		t.Fatalf("expected status passthrough")
	}
}

func TestLoggerAndMetricsHelpers(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello", "k", "v")
	if buf.Len() == 0 {
		t.Fatalf("expected buffered log output")
	}
	rec, shutdown := NewRecorderWithShutdown()
	if rec == nil || shutdown == nil {
		t.Fatalf("expected recorder and shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil shutdown error, got %v", err)
	}
}
