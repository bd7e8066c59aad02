package poller

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/bruins-live-service/internal/domain"
	"github.com/preston-bernstein/bruins-live-service/internal/logging"
	"github.com/preston-bernstein/bruins-live-service/internal/metrics"
	"github.com/preston-bernstein/bruins-live-service/internal/normalize"
	"github.com/preston-bernstein/bruins-live-service/internal/providers"
	"github.com/preston-bernstein/bruins-live-service/internal/store"
	"github.com/preston-bernstein/bruins-live-service/internal/timeutil"
)

// Result summarises one poll cycle.
type Result struct {
	DateKey        string             `json:"dateKey"`
	GameID         *string            `json:"gameId"`
	Status         *domain.GameStatus `json:"status"`
	HasGameChange  bool               `json:"hasGameChange"`
	HasTodayChange bool               `json:"hasTodayChange"`
}

// ChangeNotifier is told about documents a poll actually wrote.
type ChangeNotifier interface {
	NotifyGameChanged(ctx context.Context, state domain.GameState) error
	NotifyTodayChanged(ctx context.Context, state domain.TodayState) error
}

// Orchestrator runs the read-reconcile-write cycle for the current date.
// It holds no state between invocations.
type Orchestrator struct {
	provider   providers.ScheduleProvider
	store      store.Store
	normalizer normalize.Normalizer
	notifier   ChangeNotifier
	logger     *slog.Logger
	metrics    *metrics.Recorder
}

// Option customises an Orchestrator.
type Option func(*Orchestrator)

// WithNotifier registers a notifier for written documents.
func WithNotifier(n ChangeNotifier) Option {
	return func(o *Orchestrator) { o.notifier = n }
}

// WithLogger sets the fallback logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) { o.logger = logger }
}

// WithRecorder sets the metrics recorder.
func WithRecorder(rec *metrics.Recorder) Option {
	return func(o *Orchestrator) { o.metrics = rec }
}

// WithTeam sets the tracked team abbreviation used for home/away resolution.
func WithTeam(abbrev string) Option {
	return func(o *Orchestrator) { o.normalizer = normalize.Normalizer{TeamAbbrev: abbrev} }
}

// NewOrchestrator wires an orchestrator over provider and store.
func NewOrchestrator(provider providers.ScheduleProvider, st store.Store, opts ...Option) *Orchestrator {
	o := &Orchestrator{provider: provider, store: st}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// PollTodayGame runs one cycle with default options.
func PollTodayGame(ctx context.Context, provider providers.ScheduleProvider, st store.Store, now time.Time) (Result, error) {
	return NewOrchestrator(provider, st).PollTodayGame(ctx, now)
}

// PollTodayGame reads config and the stored today document, fetches the schedule,
// selects the relevant game and writes the game then today documents when they changed.
// A zero now means the current time.
func (o *Orchestrator) PollTodayGame(ctx context.Context, now time.Time) (Result, error) {
	if now.IsZero() {
		now = time.Now()
	}
	logger := logging.FromContext(ctx, o.logger)

	cfg, err := o.store.GetConfig(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("read config: %w", err)
	}
	dateKey, err := timeutil.DateKey(cfg.Timezone, now)
	if err != nil {
		return Result{}, err
	}
	logger = logging.WithDocument(logger, dateKey, "")

	existingToday, err := o.store.GetToday(ctx, dateKey)
	if err != nil {
		return Result{}, fmt.Errorf("read today %s: %w", dateKey, err)
	}
	var override, note *string
	if existingToday != nil {
		override = existingToday.ChannelOverride
		note = existingToday.ChannelOverrideNote
	}
	effective := domain.EffectiveChannel(cfg.DefaultChannel, override)
	updatedAt := timeutil.FormatInstant(now)

	seasonID := timeutil.SeasonID(now)
	schedule, err := o.provider.GetSchedule(ctx, seasonID)
	if err != nil {
		return Result{}, fmt.Errorf("fetch schedule %s: %w", seasonID, err)
	}
	logging.Debug(logger, "schedule fetched",
		logging.FieldSeasonID, seasonID,
		"games", len(schedule.Games),
	)

	selected, found := normalize.SelectRelevantGame(schedule, dateKey, now)
	if !found {
		today := domain.TodayState{
			DateKey:             dateKey,
			GameID:              nil,
			EffectiveChannel:    effective,
			ChannelOverride:     override,
			ChannelOverrideNote: note,
			UpdatedAt:           updatedAt,
		}
		changed, err := o.writeToday(ctx, logger, existingToday, today)
		if err != nil {
			return Result{}, err
		}
		logging.Info(logger, "poll found no relevant game", "has_today_change", changed)
		return Result{DateKey: dateKey, HasTodayChange: changed}, nil
	}

	gameID := selected.GameID()
	if gameID == "" {
		return Result{}, &domain.DataError{Field: "gameId"}
	}

	existingGame, err := o.store.GetGame(ctx, gameID)
	if err != nil {
		return Result{}, fmt.Errorf("read game %s: %w", gameID, err)
	}
	landing, err := o.provider.GetGameLanding(ctx, gameID)
	if err != nil {
		return Result{}, fmt.Errorf("fetch landing %s: %w", gameID, err)
	}

	o.checkStatusToken(logger, gameID, normalize.StatusToken(selected, &landing))
	game, err := o.normalizer.ToGameState(selected, &landing, updatedAt)
	if err != nil {
		return Result{}, err
	}

	gameChanged := !domain.SameGame(existingGame, game)
	if gameChanged {
		if err := o.timedWrite("game", func() error { return o.store.SetGame(ctx, game) }); err != nil {
			return Result{}, fmt.Errorf("write game %s: %w", game.GameID, err)
		}
		o.notifyGame(ctx, logger, game)
	}

	today := domain.TodayState{
		DateKey:             dateKey,
		GameID:              domain.StringPtr(game.GameID),
		EffectiveChannel:    effective,
		ChannelOverride:     override,
		ChannelOverrideNote: note,
		UpdatedAt:           updatedAt,
	}
	todayChanged, err := o.writeToday(ctx, logger, existingToday, today)
	if err != nil {
		return Result{}, err
	}

	status := game.Status
	logging.Info(logger, "poll reconciled game",
		logging.FieldGameID, game.GameID,
		logging.FieldStatus, string(status),
		"has_game_change", gameChanged,
		"has_today_change", todayChanged,
	)
	return Result{
		DateKey:        dateKey,
		GameID:         domain.StringPtr(game.GameID),
		Status:         &status,
		HasGameChange:  gameChanged,
		HasTodayChange: todayChanged,
	}, nil
}

func (o *Orchestrator) writeToday(ctx context.Context, logger *slog.Logger, existing *domain.TodayState, next domain.TodayState) (bool, error) {
	if domain.SameToday(existing, next) {
		return false, nil
	}
	if err := o.timedWrite("today", func() error { return o.store.SetToday(ctx, next) }); err != nil {
		return false, fmt.Errorf("write today %s: %w", next.DateKey, err)
	}
	if o.notifier != nil {
		if err := o.notifier.NotifyTodayChanged(ctx, next); err != nil {
			logging.Warn(logger, "change notification failed", "error", err)
		}
	}
	return true, nil
}

func (o *Orchestrator) notifyGame(ctx context.Context, logger *slog.Logger, game domain.GameState) {
	if o.notifier == nil {
		return
	}
	if err := o.notifier.NotifyGameChanged(ctx, game); err != nil {
		logging.Warn(logger, "change notification failed", logging.FieldGameID, game.GameID, "error", err)
	}
}

func (o *Orchestrator) timedWrite(kind string, write func() error) error {
	start := time.Now()
	err := write()
	o.metrics.RecordStoreWrite(kind, time.Since(start), err)
	return err
}

func (o *Orchestrator) checkStatusToken(logger *slog.Logger, gameID, token string) {
	if _, known := normalize.LookupStatus(token); known {
		return
	}
	o.metrics.RecordUnknownStatus(token)
	logging.Warn(logger, "unrecognised upstream game state, treating as scheduled",
		logging.FieldGameID, gameID,
		"game_state", token,
	)
}
