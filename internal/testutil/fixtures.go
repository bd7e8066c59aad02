package testutil

import (
	"github.com/preston-bernstein/bruins-live-service/internal/domain"
)

// SampleConfig is the public config seeded by NewSeededStore.
func SampleConfig() domain.PublicConfig {
	return domain.PublicConfig{DefaultChannel: "91", Timezone: domain.DefaultTimezone}
}

// SampleGame returns a live game fixture with the provided id.
func SampleGame(id string) domain.GameState {
	return domain.GameState{
		GameID:          id,
		StartTime:       "2026-02-09T00:30:00Z",
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

// SampleToday returns a today document pointing at gameID (nil for no game).
func SampleToday(dateKey string, gameID *string) domain.TodayState {
	return domain.TodayState{
		DateKey:          dateKey,
		GameID:           gameID,
		EffectiveChannel: "91",
		UpdatedAt:        "2026-02-08T15:00:00.000Z",
	}
}
