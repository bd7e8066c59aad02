package normalize

import (
	"testing"

	"github.com/preston-bernstein/bruins-live-service/internal/domain"
	"github.com/preston-bernstein/bruins-live-service/internal/providers"
)

const updatedAt = "2026-02-08T15:00:00.000Z"

func scheduleGame() providers.ScheduleGame {
	id := int64(2026020801)
	return providers.ScheduleGame{
		ID:           &id,
		GameDate:     "2026-02-08",
		StartTimeUTC: "2026-02-08T00:30:00Z",
		GameState:    "FUT",
		HomeTeam: &providers.Team{
			Abbrev:     "BOS",
			CommonName: &providers.LocalizedName{Default: "Bruins"},
		},
		AwayTeam: &providers.Team{
			Abbrev:     "NYR",
			CommonName: &providers.LocalizedName{Default: "Rangers"},
			PlaceName:  &providers.LocalizedName{Default: "New York"},
		},
	}
}

func liveLanding() *providers.LandingResponse {
	id := int64(2026020801)
	period := 2
	home, away := 2, 1
	return &providers.LandingResponse{
		ID:               &id,
		GameState:        "LIVE",
		StartTimeUTC:     "2026-02-08T00:30:00Z",
		PeriodDescriptor: &providers.PeriodDescriptor{Number: &period},
		Clock:            &providers.Clock{TimeRemaining: "05:43", Running: true},
		HomeTeam:         &providers.Team{Abbrev: "BOS", Score: &home},
		AwayTeam:         &providers.Team{Abbrev: "NYR", Score: &away},
	}
}

func TestToGameStateScheduledHasNoScores(t *testing.T) {
	game := scheduleGame()
	zero := 0
	game.HomeTeam.Score = &zero
	game.AwayTeam.Score = &zero

	state, err := ToGameState(game, nil, updatedAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Status != domain.StatusScheduled {
		t.Fatalf("expected scheduled, got %s", state.Status)
	}
	if state.ScoreHome != nil || state.ScoreAway != nil || state.Period != nil || state.Clock != nil {
		t.Fatalf("expected nil scores/period/clock while scheduled, got %+v", state)
	}
	if state.GameID != "2026020801" || state.StartTime != "2026-02-08T00:30:00Z" {
		t.Fatalf("unexpected identity %+v", state)
	}
	if !state.IsHome || state.OpponentName != "Rangers" {
		t.Fatalf("expected home game vs Rangers, got %+v", state)
	}
	if state.SourceUpdatedAt != updatedAt {
		t.Fatalf("expected sourceUpdatedAt passthrough, got %s", state.SourceUpdatedAt)
	}
}

func TestToGameStateLiveUsesLanding(t *testing.T) {
	state, err := ToGameState(scheduleGame(), liveLanding(), updatedAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Status != domain.StatusLive {
		t.Fatalf("expected live, got %s", state.Status)
	}
	if *state.ScoreHome != 2 || *state.ScoreAway != 1 {
		t.Fatalf("unexpected scores %d-%d", *state.ScoreHome, *state.ScoreAway)
	}
	if state.Period == nil || *state.Period != 2 {
		t.Fatalf("expected period 2, got %v", state.Period)
	}
	if state.Clock == nil || *state.Clock != "05:43" {
		t.Fatalf("expected clock 05:43, got %v", state.Clock)
	}
	// Landing team has only an abbreviation, so the name still resolves from it.
	if state.OpponentName != "NYR" {
		t.Fatalf("expected opponent from landing team, got %s", state.OpponentName)
	}
}

func TestToGameStateFinalDropsClock(t *testing.T) {
	landing := liveLanding()
	landing.GameState = "FINAL"
	state, err := ToGameState(scheduleGame(), landing, updatedAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Status != domain.StatusFinal || state.Clock != nil {
		t.Fatalf("expected final with nil clock, got %+v", state)
	}
	if state.ScoreHome == nil || state.Period == nil {
		t.Fatalf("expected scores and period on final game")
	}
}

func TestToGameStateLandingWinsForIdentity(t *testing.T) {
	landing := liveLanding()
	otherID := int64(2026020899)
	landing.ID = &otherID
	landing.StartTimeUTC = "2026-02-08T01:00:00Z"

	state, err := ToGameState(scheduleGame(), landing, updatedAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.GameID != "2026020899" || state.StartTime != "2026-02-08T01:00:00Z" {
		t.Fatalf("expected landing identity, got %s %s", state.GameID, state.StartTime)
	}
}

func TestToGameStateScoreFallsBackToSchedule(t *testing.T) {
	game := scheduleGame()
	home, away := 4, 3
	game.HomeTeam.Score = &home
	game.AwayTeam.Score = &away
	game.GameState = "FINAL"

	state, err := ToGameState(game, nil, updatedAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *state.ScoreHome != 4 || *state.ScoreAway != 3 {
		t.Fatalf("expected schedule scores, got %+v", state)
	}
	if state.Period != nil {
		t.Fatalf("expected nil period without landing")
	}
}

func TestToGameStateAwayGame(t *testing.T) {
	id := int64(2026021001)
	game := providers.ScheduleGame{
		ID:           &id,
		StartTimeUTC: "2026-02-11T00:00:00Z",
		HomeTeam:     &providers.Team{Abbrev: "MTL", PlaceName: &providers.LocalizedName{Default: "Montréal"}},
		AwayTeam:     &providers.Team{Abbrev: "BOS"},
	}
	state, err := ToGameState(game, nil, updatedAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.IsHome || state.OpponentName != "Montréal" {
		t.Fatalf("expected away game vs Montréal, got %+v", state)
	}
}

func TestNormalizerTracksConfiguredTeam(t *testing.T) {
	state, err := Normalizer{TeamAbbrev: "nyr"}.ToGameState(scheduleGame(), nil, updatedAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.IsHome || state.OpponentName != "Bruins" {
		t.Fatalf("expected NYR perspective, got %+v", state)
	}
}

func TestToGameStateMissingFields(t *testing.T) {
	game := scheduleGame()
	game.ID = nil
	if _, err := ToGameState(game, nil, updatedAt); !domain.IsDataError(err) {
		t.Fatalf("expected data error for missing id, got %v", err)
	}

	game = scheduleGame()
	game.StartTimeUTC = ""
	_, err := ToGameState(game, nil, updatedAt)
	if !domain.IsDataError(err) {
		t.Fatalf("expected data error for missing start time, got %v", err)
	}
}

func TestTeamNameFallbacks(t *testing.T) {
	cases := []struct {
		team *providers.Team
		want string
	}{
		{nil, "TBD"},
		{&providers.Team{}, "TBD"},
		{&providers.Team{Abbrev: "NYR"}, "NYR"},
		{&providers.Team{Abbrev: "NYR", PlaceName: &providers.LocalizedName{Default: "New York"}}, "New York"},
		{&providers.Team{Abbrev: "NYR", PlaceName: &providers.LocalizedName{Default: "New York"}, CommonName: &providers.LocalizedName{Default: "Rangers"}}, "Rangers"},
		{&providers.Team{Abbrev: "NYR", CommonName: &providers.LocalizedName{Default: " "}}, "NYR"},
	}
	for _, c := range cases {
		if got := TeamName(c.team); got != c.want {
			t.Fatalf("expected %s, got %s", c.want, got)
		}
	}
}

func TestToGameStateLiveKeepsEmptyClock(t *testing.T) {
	landing := liveLanding()
	landing.Clock = &providers.Clock{TimeRemaining: ""}
	state, err := ToGameState(scheduleGame(), landing, updatedAt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.Clock == nil || *state.Clock != "" {
		t.Fatalf("expected empty clock carried through while live, got %v", state.Clock)
	}

	landing.Clock = nil
	state, _ = ToGameState(scheduleGame(), landing, updatedAt)
	if state.Clock != nil {
		t.Fatalf("expected nil clock without a landing clock, got %v", *state.Clock)
	}
}
