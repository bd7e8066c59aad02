// Package store persists the published documents: the public config, one
// today document per date key and one game document per game id.
package store

import (
	"context"
	"errors"

	"github.com/preston-bernstein/bruins-live-service/internal/domain"
)

// ErrInvalidKey is returned for date keys or game ids that cannot address a document.
var ErrInvalidKey = errors.New("store: invalid document key")

// Store is the document store the poll orchestrator reads and writes.
// Getters return nil (not an error) when a document is absent; setters overwrite the whole document.
type Store interface {
	GetConfig(ctx context.Context) (domain.PublicConfig, error)
	GetToday(ctx context.Context, dateKey string) (*domain.TodayState, error)
	GetGame(ctx context.Context, gameID string) (*domain.GameState, error)
	SetToday(ctx context.Context, state domain.TodayState) error
	SetGame(ctx context.Context, state domain.GameState) error
}

// ConfigWriter writes the public config document (bootstrap and CLI only).
type ConfigWriter interface {
	SetConfig(ctx context.Context, cfg domain.PublicConfig) error
}

// Backend is a concrete store implementation owned by the process.
type Backend interface {
	Store
	ConfigWriter
	Name() string
	Close() error
}
