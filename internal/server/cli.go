package server

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/preston-bernstein/bruins-live-service/internal/config"
	"github.com/preston-bernstein/bruins-live-service/internal/domain"
	"github.com/preston-bernstein/bruins-live-service/internal/logging"
	"github.com/preston-bernstein/bruins-live-service/internal/metrics"
	"github.com/preston-bernstein/bruins-live-service/internal/poller"
	"github.com/preston-bernstein/bruins-live-service/internal/timeutil"
)

// PollOnce wires the configured store and provider, runs a single poll cycle
// and releases everything it opened.
func PollOnce(ctx context.Context, cfg config.Config, logger *slog.Logger) (poller.Result, error) {
	recorder := metrics.NewRecorder()
	provider := newProviderFactory(logger, recorder).build(cfg)
	backend, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return poller.Result{}, err
	}
	defer backend.Close()

	orch, closeNotifier, err := buildOrchestrator(ctx, cfg, logger, provider, backend, recorder)
	if err != nil {
		return poller.Result{}, err
	}
	if closeNotifier != nil {
		defer closeNotifier()
	}
	return orch.PollTodayGame(ctx, time.Time{})
}

// SetPublicConfig overwrites the public config document in the configured store.
// A blank timezone falls back to the default; an unresolvable one is rejected.
func SetPublicConfig(ctx context.Context, cfg config.Config, next domain.PublicConfig, logger *slog.Logger) error {
	next.DefaultChannel = strings.TrimSpace(next.DefaultChannel)
	if next.DefaultChannel == "" {
		return &domain.ConfigError{Reason: "default channel is required"}
	}
	next.Timezone = strings.TrimSpace(next.Timezone)
	if next.Timezone == "" {
		next.Timezone = domain.DefaultTimezone
	}
	if _, err := timeutil.ResolveLocation(next.Timezone); err != nil {
		return err
	}

	// Skip bootstrap seeding; this write replaces whatever is stored.
	cfg.Bootstrap = config.BootstrapConfig{}
	backend, err := OpenStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer backend.Close()

	if err := backend.SetConfig(ctx, next); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	logging.Info(logger, "public config written",
		"default_channel", next.DefaultChannel,
		"timezone", next.Timezone,
	)
	return nil
}
