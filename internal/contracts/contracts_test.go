package contracts

import (
	"testing"

	"github.com/preston-bernstein/bruins-live-service/internal/domain"
)

func validToday() domain.TodayState {
	return domain.TodayState{
		DateKey:             "2026-02-08",
		GameID:              domain.StringPtr("2026020801"),
		EffectiveChannel:    "99",
		ChannelOverride:     domain.StringPtr("99"),
		ChannelOverrideNote: nil,
		UpdatedAt:           "2026-02-08T15:00:00.000Z",
	}
}

func validGame() domain.GameState {
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

func TestValidateTodayState(t *testing.T) {
	if err := ValidateTodayState(validToday()); err != nil {
		t.Fatalf("expected valid today document, got %v", err)
	}

	noGame := validToday()
	noGame.GameID = nil
	if err := ValidateTodayState(noGame); err != nil {
		t.Fatalf("expected null gameId to be valid, got %v", err)
	}

	badDate := validToday()
	badDate.DateKey = "02/08/2026"
	if err := ValidateTodayState(badDate); !IsValidationError(err) {
		t.Fatalf("expected validation error for bad date, got %v", err)
	}

	blankChannel := validToday()
	blankChannel.EffectiveChannel = ""
	if err := ValidateTodayState(blankChannel); !IsValidationError(err) {
		t.Fatalf("expected validation error for blank channel, got %v", err)
	}
}

func TestValidateGameState(t *testing.T) {
	if err := ValidateGameState(validGame()); err != nil {
		t.Fatalf("expected valid game document, got %v", err)
	}

	scheduled := validGame()
	scheduled.Status = domain.StatusScheduled
	scheduled.ScoreHome, scheduled.ScoreAway, scheduled.Period, scheduled.Clock = nil, nil, nil, nil
	if err := ValidateGameState(scheduled); err != nil {
		t.Fatalf("expected scheduled game to be valid, got %v", err)
	}

	scheduledWithScore := scheduled
	scheduledWithScore.ScoreHome = domain.IntPtr(0)
	if err := ValidateGameState(scheduledWithScore); !IsValidationError(err) {
		t.Fatalf("expected scheduled game with score to fail, got %v", err)
	}

	finalWithClock := validGame()
	finalWithClock.Status = domain.StatusFinal
	if err := ValidateGameState(finalWithClock); !IsValidationError(err) {
		t.Fatalf("expected final game with clock to fail, got %v", err)
	}

	badStatus := validGame()
	badStatus.Status = "postponed"
	if err := ValidateGameState(badStatus); !IsValidationError(err) {
		t.Fatalf("expected unknown status to fail, got %v", err)
	}
}

func TestValidateJSONVariants(t *testing.T) {
	if err := ValidateTodayStateJSON([]byte(`{"dateKey":"2026-02-08"}`)); !IsValidationError(err) {
		t.Fatalf("expected missing fields to fail, got %v", err)
	}
	if err := ValidateGameStateJSON([]byte(`{bad`)); !IsValidationError(err) {
		t.Fatalf("expected malformed json to fail, got %v", err)
	}
	extra := `{"dateKey":"2026-02-08","gameId":null,"effectiveChannel":"91","channelOverride":null,"channelOverrideNote":null,"updatedAt":"2026-02-08T15:00:00.000Z","extra":1}`
	if err := ValidateTodayStateJSON([]byte(extra)); !IsValidationError(err) {
		t.Fatalf("expected additional property to fail, got %v", err)
	}
}

func TestSchemaEmbedded(t *testing.T) {
	for _, name := range []string{GameStateContract, TodayStateContract} {
		src, err := Schema(name)
		if err != nil || len(src) == 0 {
			t.Fatalf("expected embedded schema %s, err %v", name, err)
		}
	}
}
