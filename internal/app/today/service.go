// Package today serves the published today/game documents and applies admin
// channel overrides.
package today

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/preston-bernstein/bruins-live-service/internal/domain"
	"github.com/preston-bernstein/bruins-live-service/internal/store"
	"github.com/preston-bernstein/bruins-live-service/internal/timeutil"
)

var (
	// ErrBlankOverride is returned when an override channel is empty after trimming.
	ErrBlankOverride = errors.New("channel override must not be blank")
	// ErrInvalidDate is returned for date keys that are not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date key")
	// ErrGameNotFound is returned when no game document exists for an id.
	ErrGameNotFound = errors.New("game not found")
)

// View is a today document together with the game it points at, if any.
type View struct {
	Today domain.TodayState `json:"today"`
	Game  *domain.GameState `json:"game"`
}

// Service coordinates reads and admin edits over a Store.
type Service struct {
	store store.Store
	now   func() time.Time
}

// NewService constructs a Service with the provided Store.
func NewService(st store.Store) *Service {
	return &Service{store: st, now: time.Now}
}

// Today returns the view for the configured timezone's current date.
func (s *Service) Today(ctx context.Context, now time.Time) (View, error) {
	cfg, err := s.store.GetConfig(ctx)
	if err != nil {
		return View{}, err
	}
	if now.IsZero() {
		now = s.now()
	}
	dateKey, err := timeutil.DateKey(cfg.Timezone, now)
	if err != nil {
		return View{}, err
	}
	return s.view(ctx, cfg, dateKey)
}

// ForDate returns the view for dateKey. A missing today document yields a default view.
func (s *Service) ForDate(ctx context.Context, dateKey string) (View, error) {
	if err := validateDate(dateKey); err != nil {
		return View{}, err
	}
	cfg, err := s.store.GetConfig(ctx)
	if err != nil {
		return View{}, err
	}
	return s.view(ctx, cfg, dateKey)
}

// GameByID returns a stored game document.
func (s *Service) GameByID(ctx context.Context, gameID string) (domain.GameState, error) {
	if err := store.ValidateGameID(gameID); err != nil {
		return domain.GameState{}, err
	}
	game, err := s.store.GetGame(ctx, gameID)
	if err != nil {
		return domain.GameState{}, err
	}
	if game == nil {
		return domain.GameState{}, ErrGameNotFound
	}
	return *game, nil
}

// SetOverride stores a channel override for dateKey. A blank note is cleared.
// The game id already on the document is kept.
func (s *Service) SetOverride(ctx context.Context, dateKey, channel, note string) (domain.TodayState, error) {
	channel = strings.TrimSpace(channel)
	if channel == "" {
		return domain.TodayState{}, ErrBlankOverride
	}
	var notePtr *string
	if trimmed := strings.TrimSpace(note); trimmed != "" {
		notePtr = domain.StringPtr(trimmed)
	}
	return s.writeOverride(ctx, dateKey, domain.StringPtr(channel), notePtr)
}

// ClearOverride removes the override and note, falling back to the default channel.
func (s *Service) ClearOverride(ctx context.Context, dateKey string) (domain.TodayState, error) {
	return s.writeOverride(ctx, dateKey, nil, nil)
}

func (s *Service) writeOverride(ctx context.Context, dateKey string, override, note *string) (domain.TodayState, error) {
	if err := validateDate(dateKey); err != nil {
		return domain.TodayState{}, err
	}
	cfg, err := s.store.GetConfig(ctx)
	if err != nil {
		return domain.TodayState{}, err
	}
	existing, err := s.store.GetToday(ctx, dateKey)
	if err != nil {
		return domain.TodayState{}, fmt.Errorf("read today %s: %w", dateKey, err)
	}

	next := domain.TodayState{
		DateKey:             dateKey,
		EffectiveChannel:    domain.EffectiveChannel(cfg.DefaultChannel, override),
		ChannelOverride:     override,
		ChannelOverrideNote: note,
		UpdatedAt:           timeutil.FormatInstant(s.now()),
	}
	if existing != nil {
		next.GameID = existing.GameID
	}
	if err := s.store.SetToday(ctx, next); err != nil {
		return domain.TodayState{}, fmt.Errorf("write today %s: %w", dateKey, err)
	}
	return next, nil
}

func (s *Service) view(ctx context.Context, cfg domain.PublicConfig, dateKey string) (View, error) {
	doc, err := s.store.GetToday(ctx, dateKey)
	if err != nil {
		return View{}, fmt.Errorf("read today %s: %w", dateKey, err)
	}
	if doc == nil {
		return View{Today: domain.TodayState{
			DateKey:          dateKey,
			EffectiveChannel: cfg.DefaultChannel,
		}}, nil
	}

	view := View{Today: *doc}
	if doc.GameID == nil {
		return view, nil
	}
	game, err := s.store.GetGame(ctx, *doc.GameID)
	if err != nil {
		return View{}, fmt.Errorf("read game %s: %w", *doc.GameID, err)
	}
	view.Game = game
	return view, nil
}

func validateDate(dateKey string) error {
	if err := store.ValidateDateKey(dateKey); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, dateKey)
	}
	return nil
}
