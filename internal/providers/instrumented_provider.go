package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/bruins-live-service/internal/logging"
	"github.com/preston-bernstein/bruins-live-service/internal/metrics"
)

// instrumentedProvider records every upstream call in the metrics recorder.
// It never retries; a failed call surfaces to the caller unchanged.
type instrumentedProvider struct {
	inner    ScheduleProvider
	logger   *slog.Logger
	recorder *metrics.Recorder
	name     string
}

// NewInstrumentedProvider wraps inner with attempt/latency/rate-limit metrics and failure logging.
func NewInstrumentedProvider(inner ScheduleProvider, logger *slog.Logger, recorder *metrics.Recorder, name string) ScheduleProvider {
	if name == "" {
		name = "provider"
	}
	return &instrumentedProvider{
		inner:    inner,
		logger:   logger,
		recorder: recorder,
		name:     name,
	}
}

func (p *instrumentedProvider) GetSchedule(ctx context.Context, seasonID string) (ScheduleResponse, error) {
	if p.inner == nil {
		return ScheduleResponse{}, ErrProviderUnavailable
	}
	start := time.Now()
	resp, err := p.inner.GetSchedule(ctx, seasonID)
	p.observe(ctx, "schedule", time.Since(start), err, slog.String(logging.FieldSeasonID, seasonID))
	return resp, err
}

func (p *instrumentedProvider) GetGameLanding(ctx context.Context, gameID string) (LandingResponse, error) {
	if p.inner == nil {
		return LandingResponse{}, ErrProviderUnavailable
	}
	start := time.Now()
	resp, err := p.inner.GetGameLanding(ctx, gameID)
	p.observe(ctx, "landing", time.Since(start), err, slog.String(logging.FieldGameID, gameID))
	return resp, err
}

func (p *instrumentedProvider) observe(ctx context.Context, op string, elapsed time.Duration, err error, attrs ...any) {
	p.recorder.RecordProviderAttempt(p.name, elapsed, err)
	if err == nil {
		return
	}
	if upErr, ok := AsUpstreamError(err); ok && upErr.RateLimited() {
		p.recorder.RecordRateLimit(p.name, upErr.RetryAfter)
	}
	args := append([]any{
		slog.String("op", op),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		slog.Any("err", err),
	}, attrs...)
	logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "provider fetch failed", args...)
}
