package store

import (
	"context"

	"github.com/preston-bernstein/bruins-live-service/internal/contracts"
	"github.com/preston-bernstein/bruins-live-service/internal/domain"
)

// ValidatingStore checks every written document against its published contract before delegating.
type ValidatingStore struct {
	Backend
}

// NewValidatingStore wraps next.
func NewValidatingStore(next Backend) *ValidatingStore {
	return &ValidatingStore{Backend: next}
}

func (s *ValidatingStore) SetToday(ctx context.Context, state domain.TodayState) error {
	if err := contracts.ValidateTodayState(state); err != nil {
		return err
	}
	return s.Backend.SetToday(ctx, state)
}

func (s *ValidatingStore) SetGame(ctx context.Context, state domain.GameState) error {
	if err := contracts.ValidateGameState(state); err != nil {
		return err
	}
	return s.Backend.SetGame(ctx, state)
}
