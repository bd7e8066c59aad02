package providers

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
)

// LocalizedName mirrors the upstream {"default": "..."} name objects.
type LocalizedName struct {
	Default string `json:"default"`
}

// Team is a side of a game as published by the schedule and landing endpoints.
type Team struct {
	ID         *int64         `json:"id,omitempty"`
	Abbrev     string         `json:"abbrev,omitempty"`
	CommonName *LocalizedName `json:"commonName,omitempty"`
	PlaceName  *LocalizedName `json:"placeName,omitempty"`
	Score      *int           `json:"score,omitempty"`
}

// UnmarshalJSON decodes a team, turning a score that is not a whole JSON number
// into nil instead of failing the whole payload.
func (t *Team) UnmarshalJSON(data []byte) error {
	type plain Team
	var aux struct {
		plain
		Score json.RawMessage `json:"score,omitempty"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*t = Team(aux.plain)
	t.Score = coerceScore(aux.Score)
	return nil
}

func coerceScore(raw json.RawMessage) *int {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] == '"' || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil
	}
	if f != math.Trunc(f) || f < 0 || f > math.MaxInt32 {
		return nil
	}
	v := int(f)
	return &v
}

// ScheduleGame is one entry of a club season schedule.
type ScheduleGame struct {
	ID           *int64 `json:"id,omitempty"`
	GameDate     string `json:"gameDate,omitempty"`
	StartTimeUTC string `json:"startTimeUTC,omitempty"`
	GameState    string `json:"gameState,omitempty"`
	HomeTeam     *Team  `json:"homeTeam,omitempty"`
	AwayTeam     *Team  `json:"awayTeam,omitempty"`
}

// GameID renders the numeric id as a string, or "" when absent.
func (g ScheduleGame) GameID() string {
	return formatID(g.ID)
}

// ScheduleResponse is the club-schedule-season payload.
type ScheduleResponse struct {
	CurrentSeason *int64         `json:"currentSeason,omitempty"`
	Games         []ScheduleGame `json:"games"`
}

// PeriodDescriptor describes the current period of a game.
type PeriodDescriptor struct {
	Number     *int   `json:"number,omitempty"`
	PeriodType string `json:"periodType,omitempty"`
}

// Clock is the in-game clock.
type Clock struct {
	TimeRemaining  string `json:"timeRemaining,omitempty"`
	Running        bool   `json:"running"`
	InIntermission bool   `json:"inIntermission"`
}

// LandingResponse is the gamecenter landing payload for a single game.
type LandingResponse struct {
	ID               *int64            `json:"id,omitempty"`
	GameState        string            `json:"gameState,omitempty"`
	StartTimeUTC     string            `json:"startTimeUTC,omitempty"`
	PeriodDescriptor *PeriodDescriptor `json:"periodDescriptor,omitempty"`
	Clock            *Clock            `json:"clock,omitempty"`
	HomeTeam         *Team             `json:"homeTeam,omitempty"`
	AwayTeam         *Team             `json:"awayTeam,omitempty"`
}

// GameID renders the numeric id as a string, or "" when absent.
func (l LandingResponse) GameID() string {
	return formatID(l.ID)
}

func formatID(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}
