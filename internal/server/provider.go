package server

import (
	"log/slog"

	"github.com/preston-bernstein/bruins-live-service/internal/config"
	"github.com/preston-bernstein/bruins-live-service/internal/metrics"
	"github.com/preston-bernstein/bruins-live-service/internal/providers"
	"github.com/preston-bernstein/bruins-live-service/internal/providers/fixture"
	"github.com/preston-bernstein/bruins-live-service/internal/providers/nhl"
)

const (
	providerNHL     = "nhl"
	providerFixture = "fixture"
)

// providerFactory assembles the provider with shared wrappers (rate limit + instrumentation).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.ScheduleProvider {
	name, base := selectProvider(cfg, f.logger)
	if name == providerNHL {
		base = providers.NewRateLimitedProvider(base, cfg.NHL.RequestsPerMinute, f.logger)
	}
	return providers.NewInstrumentedProvider(base, f.logger, f.metrics, name)
}

func selectProvider(cfg config.Config, logger *slog.Logger) (string, providers.ScheduleProvider) {
	switch cfg.Provider {
	case providerNHL, "":
		return providerNHL, nhl.NewClient(nhl.Config{
			BaseURL:    cfg.NHL.BaseURL,
			TeamAbbrev: cfg.NHL.TeamAbbrev,
			Timeout:    cfg.NHL.Timeout,
		})
	case providerFixture:
		return providerFixture, fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return providerFixture, fixture.New()
	}
}
