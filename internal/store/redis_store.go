package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/bruins-live-service/internal/domain"
)

// RedisStore keeps each document as a JSON string keyed by its document path.
type RedisStore struct {
	client   *redis.Client
	prefix   string
	todayTTL time.Duration
}

// RedisOptions tunes key layout and expiry for RedisStore.
type RedisOptions struct {
	// KeyPrefix is prepended to every document path.
	KeyPrefix string
	// TodayTTL expires today documents after the given duration; zero keeps them forever.
	TodayTTL time.Duration
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client, opts RedisOptions) *RedisStore {
	return &RedisStore{
		client:   client,
		prefix:   opts.KeyPrefix,
		todayTTL: opts.TodayTTL,
	}
}

func (s *RedisStore) Name() string { return "redis" }

// Client exposes the underlying client so other components can share the connection.
func (s *RedisStore) Client() *redis.Client {
	return s.client
}

func (s *RedisStore) key(path string) string {
	return s.prefix + path
}

func (s *RedisStore) GetConfig(ctx context.Context) (domain.PublicConfig, error) {
	raw, found, err := s.get(ctx, ConfigPath())
	if err != nil {
		return domain.PublicConfig{}, &domain.ConfigError{Reason: "public config document unreadable", Err: err}
	}
	return decodeConfig(raw, found)
}

func (s *RedisStore) SetConfig(ctx context.Context, cfg domain.PublicConfig) error {
	normalized, err := normalizeConfig(cfg)
	if err != nil {
		return err
	}
	return s.set(ctx, ConfigPath(), normalized, 0)
}

func (s *RedisStore) GetToday(ctx context.Context, dateKey string) (*domain.TodayState, error) {
	if err := ValidateDateKey(dateKey); err != nil {
		return nil, err
	}
	raw, found, err := s.get(ctx, TodayPath(dateKey))
	if err != nil || !found {
		return nil, err
	}
	return decodeToday(raw)
}

func (s *RedisStore) SetToday(ctx context.Context, state domain.TodayState) error {
	if err := ValidateDateKey(state.DateKey); err != nil {
		return err
	}
	return s.set(ctx, TodayPath(state.DateKey), state, s.todayTTL)
}

func (s *RedisStore) GetGame(ctx context.Context, gameID string) (*domain.GameState, error) {
	if err := ValidateGameID(gameID); err != nil {
		return nil, err
	}
	raw, found, err := s.get(ctx, GamePath(gameID))
	if err != nil || !found {
		return nil, err
	}
	return decodeGame(raw)
}

func (s *RedisStore) SetGame(ctx context.Context, state domain.GameState) error {
	if err := ValidateGameID(state.GameID); err != nil {
		return err
	}
	return s.set(ctx, GamePath(state.GameID), state, 0)
}

// Ping checks connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) get(ctx context.Context, path string) ([]byte, bool, error) {
	raw, err := s.client.Get(ctx, s.key(path)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", path, err)
	}
	return raw, true, nil
}

func (s *RedisStore) set(ctx context.Context, path string, payload any, ttl time.Duration) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}
	if err := s.client.Set(ctx, s.key(path), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", path, err)
	}
	return nil
}
