package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/bruins-live-service/internal/domain"
)

func sampleToday() domain.TodayState {
	return domain.TodayState{
		DateKey:             "2026-02-08",
		GameID:              domain.StringPtr("2026020801"),
		EffectiveChannel:    "99",
		ChannelOverride:     domain.StringPtr("99"),
		ChannelOverrideNote: domain.StringPtr("NESN+ tonight"),
		UpdatedAt:           "2026-02-08T15:00:00.000Z",
	}
}

func sampleGame() domain.GameState {
	return domain.GameState{
		GameID:          "2026020801",
		StartTime:       "2026-02-08T00:30:00Z",
		Status:          domain.StatusLive,
		OpponentName:    "Rangers",
		IsHome:          true,
		ScoreHome:       domain.IntPtr(2),
		ScoreAway:       domain.IntPtr(1),
		Period:          domain.IntPtr(2),
		Clock:           domain.StringPtr("05:43"),
		SourceUpdatedAt: "2026-02-08T15:00:00.000Z",
	}
}

// runBackendSuite exercises the document contract every backend must honour.
func runBackendSuite(t *testing.T, s Backend) {
	t.Helper()
	ctx := context.Background()

	t.Run("missing config is a config error", func(t *testing.T) {
		_, err := s.GetConfig(ctx)
		require.Error(t, err)
		assert.True(t, domain.IsConfigError(err))
	})

	t.Run("config round trip applies timezone default", func(t *testing.T) {
		require.NoError(t, s.SetConfig(ctx, domain.PublicConfig{DefaultChannel: " 91 ", ChannelLabel: "NESN"}))
		cfg, err := s.GetConfig(ctx)
		require.NoError(t, err)
		assert.Equal(t, "91", cfg.DefaultChannel)
		assert.Equal(t, domain.DefaultTimezone, cfg.Timezone)
		assert.Equal(t, "NESN", cfg.ChannelLabel)
	})

	t.Run("blank default channel rejected", func(t *testing.T) {
		err := s.SetConfig(ctx, domain.PublicConfig{DefaultChannel: "  ", Timezone: "UTC"})
		assert.True(t, domain.IsConfigError(err))
	})

	t.Run("absent documents are nil", func(t *testing.T) {
		today, err := s.GetToday(ctx, "2026-01-01")
		require.NoError(t, err)
		assert.Nil(t, today)

		game, err := s.GetGame(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, game)
	})

	t.Run("today round trip", func(t *testing.T) {
		want := sampleToday()
		require.NoError(t, s.SetToday(ctx, want))

		got, err := s.GetToday(ctx, want.DateKey)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, want, *got)

		cleared := want
		cleared.ChannelOverride = nil
		cleared.ChannelOverrideNote = nil
		cleared.EffectiveChannel = "91"
		require.NoError(t, s.SetToday(ctx, cleared))

		got, err = s.GetToday(ctx, want.DateKey)
		require.NoError(t, err)
		assert.Nil(t, got.ChannelOverride)
		assert.Nil(t, got.ChannelOverrideNote)
		assert.Equal(t, "91", got.EffectiveChannel)
	})

	t.Run("game round trip", func(t *testing.T) {
		want := sampleGame()
		require.NoError(t, s.SetGame(ctx, want))

		got, err := s.GetGame(ctx, want.GameID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, want, *got)
		assert.True(t, domain.SameGame(got, want))
	})

	t.Run("invalid keys rejected", func(t *testing.T) {
		bad := sampleToday()
		bad.DateKey = "../etc"
		assert.True(t, errors.Is(s.SetToday(ctx, bad), ErrInvalidKey))

		badGame := sampleGame()
		badGame.GameID = "a/b"
		assert.True(t, errors.Is(s.SetGame(ctx, badGame), ErrInvalidKey))
	})
}
