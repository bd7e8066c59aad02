package providers

import (
	"context"
	"log/slog"

	"golang.org/x/time/rate"
)

const defaultRequestsPerMinute = 30

// rateLimitedProvider wraps a ScheduleProvider with a token-bucket limiter shared by both endpoints.
type rateLimitedProvider struct {
	next    ScheduleProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider returns a ScheduleProvider that allows at most requestsPerMinute upstream calls.
// Calls block until a token is available or ctx ends.
func NewRateLimitedProvider(next ScheduleProvider, requestsPerMinute int, logger *slog.Logger) ScheduleProvider {
	if requestsPerMinute <= 0 {
		requestsPerMinute = defaultRequestsPerMinute
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60), 1),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) GetSchedule(ctx context.Context, seasonID string) (ScheduleResponse, error) {
	if err := p.wait(ctx, "schedule"); err != nil {
		return ScheduleResponse{}, err
	}
	return p.next.GetSchedule(ctx, seasonID)
}

func (p *rateLimitedProvider) GetGameLanding(ctx context.Context, gameID string) (LandingResponse, error) {
	if err := p.wait(ctx, "landing"); err != nil {
		return LandingResponse{}, err
	}
	return p.next.GetGameLanding(ctx, gameID)
}

func (p *rateLimitedProvider) wait(ctx context.Context, op string) error {
	if p == nil || p.next == nil {
		if p != nil {
			logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "provider unavailable")
		}
		return ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate-limited fetch canceled", slog.String("op", op))
		return err
	}
	return nil
}
