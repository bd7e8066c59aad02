package store

import (
	"context"
	"sync"

	"github.com/preston-bernstein/bruins-live-service/internal/domain"
)

// MemoryStore keeps the documents in memory. Values are copied on the way in and out.
type MemoryStore struct {
	mu     sync.RWMutex
	config *domain.PublicConfig
	today  map[string]domain.TodayState
	games  map[string]domain.GameState
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		today: make(map[string]domain.TodayState),
		games: make(map[string]domain.GameState),
	}
}

func (s *MemoryStore) Name() string { return "memory" }

func (s *MemoryStore) GetConfig(ctx context.Context) (domain.PublicConfig, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.config == nil {
		return domain.PublicConfig{}, &domain.ConfigError{Reason: "public config document missing"}
	}
	return normalizeConfig(*s.config)
}

func (s *MemoryStore) SetConfig(ctx context.Context, cfg domain.PublicConfig) error {
	_ = ctx
	normalized, err := normalizeConfig(cfg)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = &normalized
	return nil
}

func (s *MemoryStore) GetToday(ctx context.Context, dateKey string) (*domain.TodayState, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.today[dateKey]
	if !ok {
		return nil, nil
	}
	cloned := cloneToday(state)
	return &cloned, nil
}

func (s *MemoryStore) SetToday(ctx context.Context, state domain.TodayState) error {
	_ = ctx
	if err := ValidateDateKey(state.DateKey); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.today[state.DateKey] = cloneToday(state)
	return nil
}

func (s *MemoryStore) GetGame(ctx context.Context, gameID string) (*domain.GameState, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.games[gameID]
	if !ok {
		return nil, nil
	}
	cloned := cloneGame(state)
	return &cloned, nil
}

func (s *MemoryStore) SetGame(ctx context.Context, state domain.GameState) error {
	_ = ctx
	if err := ValidateGameID(state.GameID); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[state.GameID] = cloneGame(state)
	return nil
}

func (s *MemoryStore) Close() error { return nil }
