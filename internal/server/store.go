package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/bruins-live-service/internal/config"
	"github.com/preston-bernstein/bruins-live-service/internal/domain"
	"github.com/preston-bernstein/bruins-live-service/internal/logging"
	"github.com/preston-bernstein/bruins-live-service/internal/store"
)

// OpenStore opens the configured document store with contract validation on
// writes, and seeds the public config from the bootstrap settings when absent.
func OpenStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (store.Backend, error) {
	backend, err := store.Open(ctx, store.Options{
		Backend:       cfg.Store.Backend,
		Folder:        cfg.Store.Folder,
		RetentionDays: cfg.Store.RetentionDays,
		RedisURL:      cfg.Store.RedisURL,
		TodayTTL:      cfg.Store.TodayTTL,
		DatabaseURL:   cfg.Store.DatabaseURL,
		Validate:      true,
	}, logger)
	if err != nil {
		return nil, err
	}
	if err := bootstrapConfig(ctx, backend, cfg.Bootstrap, logger); err != nil {
		_ = backend.Close()
		return nil, err
	}
	return backend, nil
}

// bootstrapConfig writes the public config only when the store has none and a
// default channel was supplied. An existing document is never overwritten.
func bootstrapConfig(ctx context.Context, backend store.Backend, boot config.BootstrapConfig, logger *slog.Logger) error {
	if boot.DefaultChannel == "" {
		return nil
	}
	_, err := backend.GetConfig(ctx)
	if err == nil {
		return nil
	}
	var cfgErr *domain.ConfigError
	if !errors.As(err, &cfgErr) {
		return fmt.Errorf("read config: %w", err)
	}
	seed := domain.PublicConfig{DefaultChannel: boot.DefaultChannel, Timezone: boot.Timezone}
	if seed.Timezone == "" {
		seed.Timezone = domain.DefaultTimezone
	}
	if err := backend.SetConfig(ctx, seed); err != nil {
		return fmt.Errorf("bootstrap config: %w", err)
	}
	logging.Info(logger, "public config bootstrapped",
		"default_channel", seed.DefaultChannel,
		"timezone", seed.Timezone,
	)
	return nil
}
