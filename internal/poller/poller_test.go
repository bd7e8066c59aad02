package poller

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/preston-bernstein/bruins-live-service/internal/metrics"
	"github.com/preston-bernstein/bruins-live-service/internal/providers/fixture"
	"github.com/preston-bernstein/bruins-live-service/internal/teststubs"
)

func newTestPoller(t *testing.T, orch *Orchestrator, cfg Config) *Poller {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	p, err := New(orch, cfg, logger, metrics.NewRecorder())
	if err != nil {
		t.Fatalf("new poller: %v", err)
	}
	p.now = func() time.Time { return gameDayAfternoon }
	return p
}

func TestNewRejectsInvalidSchedule(t *testing.T) {
	if _, err := New(nil, Config{Schedule: "every now and then"}, nil, nil); err == nil {
		t.Fatalf("expected invalid schedule error")
	}
}

func TestNewDefaultsSchedule(t *testing.T) {
	p, err := New(nil, Config{}, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.schedule != DefaultSchedule {
		t.Fatalf("expected default schedule, got %q", p.schedule)
	}
}

func TestPollOnceTracksSuccess(t *testing.T) {
	p := newTestPoller(t, NewOrchestrator(fixture.New(), seededStore(t)), Config{})

	result, err := p.PollOnce(context.Background())
	if err != nil {
		t.Fatalf("poll once: %v", err)
	}
	status := p.Status()
	if !status.IsReady() {
		t.Fatalf("expected ready after success, got %+v", status)
	}
	if status.LastResult == nil || status.LastResult.DateKey != result.DateKey {
		t.Fatalf("expected last result recorded, got %+v", status.LastResult)
	}
}

func TestPollOnceTracksFailures(t *testing.T) {
	provider := &teststubs.StubProvider{ScheduleErr: errors.New("upstream down")}
	p := newTestPoller(t, NewOrchestrator(provider, seededStore(t)), Config{})

	for i := 0; i < 3; i++ {
		if _, err := p.PollOnce(context.Background()); err == nil {
			t.Fatalf("expected failure")
		}
	}
	status := p.Status()
	if status.ConsecutiveFailures != 3 || status.LastError == "" {
		t.Fatalf("unexpected status %+v", status)
	}
	if status.IsReady() {
		t.Fatalf("expected not ready without a success")
	}
}

func TestStatusIsReady(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name   string
		status Status
		want   bool
	}{
		{"never succeeded", Status{}, false},
		{"recent success", Status{LastSuccess: now}, true},
		{"failing after success", Status{LastSuccess: now, ConsecutiveFailures: 3}, false},
		{"single failure", Status{LastSuccess: now, ConsecutiveFailures: 1}, true},
	}
	for _, tc := range cases {
		if got := tc.status.IsReady(); got != tc.want {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestStartRunsOnStartAndStops(t *testing.T) {
	schedule, _ := fixture.Schedule()
	landing, _ := fixture.LiveLanding()
	provider := &teststubs.StubProvider{Schedule: schedule, Landing: landing, Notify: make(chan struct{})}
	p := newTestPoller(t, NewOrchestrator(provider, seededStore(t)), Config{Schedule: "@every 1h", RunOnStart: true})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := p.Start(ctx); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := p.Start(ctx); err != nil {
		t.Fatalf("second start should be a no-op: %v", err)
	}

	select {
	case <-provider.Notify:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for startup poll")
	}

	deadline := time.Now().Add(time.Second)
	for !p.Status().IsReady() {
		if time.Now().After(deadline) {
			t.Fatalf("poller never became ready: %+v", p.Status())
		}
		time.Sleep(5 * time.Millisecond)
	}

	stopCtx, stopCancel := context.WithTimeout(context.Background(), time.Second)
	defer stopCancel()
	if err := p.Stop(stopCtx); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if err := p.Stop(stopCtx); err != nil {
		t.Fatalf("second stop: %v", err)
	}
}

func TestStopBeforeStart(t *testing.T) {
	p := newTestPoller(t, NewOrchestrator(fixture.New(), seededStore(t)), Config{})
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
