package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/bruins-live-service/internal/domain"
	"github.com/preston-bernstein/bruins-live-service/internal/providers"
	"github.com/preston-bernstein/bruins-live-service/internal/store"
)

// StubProvider is a test double for providers.ScheduleProvider.
type StubProvider struct {
	Schedule    providers.ScheduleResponse
	Landing     providers.LandingResponse
	ScheduleErr error
	LandingErr  error

	ScheduleCalls atomic.Int32
	LandingCalls  atomic.Int32
	Notify        chan struct{}

	mu         sync.Mutex
	seasonIDs  []string
	landingIDs []string
}

// GetSchedule returns the configured schedule and error while tracking calls.
func (s *StubProvider) GetSchedule(ctx context.Context, seasonID string) (providers.ScheduleResponse, error) {
	_ = ctx
	s.notify()
	s.ScheduleCalls.Add(1)
	s.mu.Lock()
	s.seasonIDs = append(s.seasonIDs, seasonID)
	s.mu.Unlock()
	return s.Schedule, s.ScheduleErr
}

// GetGameLanding returns the configured landing and error while tracking calls.
func (s *StubProvider) GetGameLanding(ctx context.Context, gameID string) (providers.LandingResponse, error) {
	_ = ctx
	s.LandingCalls.Add(1)
	s.mu.Lock()
	s.landingIDs = append(s.landingIDs, gameID)
	s.mu.Unlock()
	return s.Landing, s.LandingErr
}

// SeasonIDs returns the season ids requested so far.
func (s *StubProvider) SeasonIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.seasonIDs...)
}

// LandingIDs returns the game ids requested so far.
func (s *StubProvider) LandingIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.landingIDs...)
}

func (s *StubProvider) notify() {
	if s.Notify == nil {
		return
	}
	select {
	case <-s.Notify:
	default:
		close(s.Notify)
	}
}

// RecordingStore wraps a store and records every write in order ("game:<id>", "today:<date>").
type RecordingStore struct {
	store.Store
	SetTodayErr error
	SetGameErr  error

	mu     sync.Mutex
	writes []string
}

// NewRecordingStore wraps inner.
func NewRecordingStore(inner store.Store) *RecordingStore {
	return &RecordingStore{Store: inner}
}

func (s *RecordingStore) SetToday(ctx context.Context, state domain.TodayState) error {
	if s.SetTodayErr != nil {
		return s.SetTodayErr
	}
	s.record("today:" + state.DateKey)
	return s.Store.SetToday(ctx, state)
}

func (s *RecordingStore) SetGame(ctx context.Context, state domain.GameState) error {
	if s.SetGameErr != nil {
		return s.SetGameErr
	}
	s.record("game:" + state.GameID)
	return s.Store.SetGame(ctx, state)
}

// Writes returns the recorded writes in call order.
func (s *RecordingStore) Writes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.writes...)
}

// Reset clears the recorded writes.
func (s *RecordingStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes = nil
}

func (s *RecordingStore) record(op string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes = append(s.writes, op)
}

// StubNotifier records change notifications.
type StubNotifier struct {
	Err error

	mu    sync.Mutex
	Today []domain.TodayState
	Games []domain.GameState
}

func (n *StubNotifier) NotifyGameChanged(ctx context.Context, state domain.GameState) error {
	_ = ctx
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Games = append(n.Games, state)
	return n.Err
}

func (n *StubNotifier) NotifyTodayChanged(ctx context.Context, state domain.TodayState) error {
	_ = ctx
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Today = append(n.Today, state)
	return n.Err
}
