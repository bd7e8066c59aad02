package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/bruins-live-service/internal/logging"
)

const (
	BackendMemory   = "memory"
	BackendFS       = "fs"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Options selects and configures a backend for Open.
type Options struct {
	Backend       string
	Folder        string
	RetentionDays int
	RedisURL      string
	KeyPrefix     string
	TodayTTL      time.Duration
	DatabaseURL   string
	// Validate wraps the backend in a ValidatingStore.
	Validate bool
}

// Open constructs the configured backend.
func Open(ctx context.Context, opts Options, logger *slog.Logger) (Backend, error) {
	backend, err := open(ctx, opts)
	if err != nil {
		return nil, err
	}
	logging.Info(logger, "document store ready", logging.FieldBackend, backend.Name())
	if opts.Validate {
		return NewValidatingStore(backend), nil
	}
	return backend, nil
}

func open(ctx context.Context, opts Options) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(opts.Backend)) {
	case "", BackendMemory:
		return NewMemoryStore(), nil
	case BackendFS:
		if strings.TrimSpace(opts.Folder) == "" {
			return nil, fmt.Errorf("store: fs backend requires a folder")
		}
		return NewFSStore(opts.Folder, opts.RetentionDays), nil
	case BackendRedis:
		redisOpts, err := redis.ParseURL(opts.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("store: parse redis url: %w", err)
		}
		s := NewRedisStore(redis.NewClient(redisOpts), RedisOptions{KeyPrefix: opts.KeyPrefix, TodayTTL: opts.TodayTTL})
		if err := s.Ping(ctx); err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("store: ping redis: %w", err)
		}
		return s, nil
	case BackendPostgres:
		if strings.TrimSpace(opts.DatabaseURL) == "" {
			return nil, fmt.Errorf("store: postgres backend requires DATABASE_URL")
		}
		return ConnectPostgres(ctx, opts.DatabaseURL)
	default:
		return nil, fmt.Errorf("store: unknown backend %q", opts.Backend)
	}
}
