package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/preston-bernstein/bruins-live-service/internal/domain"
)

const documentsTable = "bruins_live_documents"

const schemaSQL = `CREATE TABLE IF NOT EXISTS ` + documentsTable + ` (
	path       TEXT PRIMARY KEY,
	body       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

const upsertSQL = `INSERT INTO ` + documentsTable + ` (path, body, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (path) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at`

const selectSQL = `SELECT body FROM ` + documentsTable + ` WHERE path = $1`

// PostgresStore keeps documents as JSONB rows keyed by document path.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore wraps an existing pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// ConnectPostgres opens a pool for dsn, pings it and ensures the documents table exists.
func ConnectPostgres(ctx context.Context, dsn string) (*PostgresStore, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}
	poolConfig.MaxConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := NewPostgresStore(pool)
	if err := s.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) Name() string { return "postgres" }

// EnsureSchema creates the documents table when missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create %s: %w", documentsTable, err)
	}
	return nil
}

func (s *PostgresStore) GetConfig(ctx context.Context) (domain.PublicConfig, error) {
	raw, found, err := s.get(ctx, ConfigPath())
	if err != nil {
		return domain.PublicConfig{}, &domain.ConfigError{Reason: "public config document unreadable", Err: err}
	}
	return decodeConfig(raw, found)
}

func (s *PostgresStore) SetConfig(ctx context.Context, cfg domain.PublicConfig) error {
	normalized, err := normalizeConfig(cfg)
	if err != nil {
		return err
	}
	return s.put(ctx, ConfigPath(), normalized)
}

func (s *PostgresStore) GetToday(ctx context.Context, dateKey string) (*domain.TodayState, error) {
	if err := ValidateDateKey(dateKey); err != nil {
		return nil, err
	}
	raw, found, err := s.get(ctx, TodayPath(dateKey))
	if err != nil || !found {
		return nil, err
	}
	return decodeToday(raw)
}

func (s *PostgresStore) SetToday(ctx context.Context, state domain.TodayState) error {
	if err := ValidateDateKey(state.DateKey); err != nil {
		return err
	}
	return s.put(ctx, TodayPath(state.DateKey), state)
}

func (s *PostgresStore) GetGame(ctx context.Context, gameID string) (*domain.GameState, error) {
	if err := ValidateGameID(gameID); err != nil {
		return nil, err
	}
	raw, found, err := s.get(ctx, GamePath(gameID))
	if err != nil || !found {
		return nil, err
	}
	return decodeGame(raw)
}

func (s *PostgresStore) SetGame(ctx context.Context, state domain.GameState) error {
	if err := ValidateGameID(state.GameID); err != nil {
		return err
	}
	return s.put(ctx, GamePath(state.GameID), state)
}

// Ping checks connectivity.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) get(ctx context.Context, path string) ([]byte, bool, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, selectSQL, path).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select %s: %w", path, err)
	}
	return raw, true, nil
}

func (s *PostgresStore) put(ctx context.Context, path string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", path, err)
	}
	if _, err := s.pool.Exec(ctx, upsertSQL, path, string(data)); err != nil {
		return fmt.Errorf("upsert %s: %w", path, err)
	}
	return nil
}
