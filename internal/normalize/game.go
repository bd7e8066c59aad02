package normalize

import (
	"strings"

	"github.com/preston-bernstein/bruins-live-service/internal/domain"
	"github.com/preston-bernstein/bruins-live-service/internal/providers"
)

// DefaultTeamAbbrev is the tracked team when a Normalizer has none configured.
const DefaultTeamAbbrev = "BOS"

const unknownOpponent = "TBD"

// Normalizer converts upstream schedule/landing payloads into GameState documents
// from the perspective of the tracked team.
type Normalizer struct {
	TeamAbbrev string
}

// ToGameState normalizes with the default tracked team.
func ToGameState(game providers.ScheduleGame, landing *providers.LandingResponse, sourceUpdatedAt string) (domain.GameState, error) {
	return Normalizer{}.ToGameState(game, landing, sourceUpdatedAt)
}

// ToGameState builds a GameState, preferring landing fields and falling back to the schedule entry.
// Missing id or start time yields a *domain.DataError.
func (n Normalizer) ToGameState(game providers.ScheduleGame, landing *providers.LandingResponse, sourceUpdatedAt string) (domain.GameState, error) {
	var land providers.LandingResponse
	if landing != nil {
		land = *landing
	}

	gameID := firstNonEmpty(land.GameID(), game.GameID())
	if gameID == "" {
		return domain.GameState{}, &domain.DataError{Field: "gameId"}
	}
	startTime := firstNonEmpty(land.StartTimeUTC, game.StartTimeUTC)
	if startTime == "" {
		return domain.GameState{}, &domain.DataError{GameID: gameID, Field: "startTime"}
	}

	status := NormalizeStatus(StatusToken(game, landing))

	home := pickTeam(land.HomeTeam, game.HomeTeam)
	away := pickTeam(land.AwayTeam, game.AwayTeam)
	isHome := home != nil && strings.EqualFold(strings.TrimSpace(home.Abbrev), n.team())
	opponent := home
	if isHome {
		opponent = away
	}

	state := domain.GameState{
		GameID:          gameID,
		StartTime:       startTime,
		Status:          status,
		OpponentName:    TeamName(opponent),
		IsHome:          isHome,
		SourceUpdatedAt: sourceUpdatedAt,
	}

	if status != domain.StatusScheduled {
		state.ScoreHome = pickScore(land.HomeTeam, game.HomeTeam)
		state.ScoreAway = pickScore(land.AwayTeam, game.AwayTeam)
		if land.PeriodDescriptor != nil && land.PeriodDescriptor.Number != nil {
			state.Period = domain.IntPtr(*land.PeriodDescriptor.Number)
		}
	}
	if status == domain.StatusLive && land.Clock != nil {
		state.Clock = domain.StringPtr(land.Clock.TimeRemaining)
	}

	return state, nil
}

// StatusToken returns the raw upstream state used for status mapping: landing first, schedule fallback.
func StatusToken(game providers.ScheduleGame, landing *providers.LandingResponse) string {
	if landing != nil && strings.TrimSpace(landing.GameState) != "" {
		return landing.GameState
	}
	return game.GameState
}

// TeamName picks the display name: common name, place name, abbreviation, else "TBD".
func TeamName(team *providers.Team) string {
	if team == nil {
		return unknownOpponent
	}
	if team.CommonName != nil && strings.TrimSpace(team.CommonName.Default) != "" {
		return team.CommonName.Default
	}
	if team.PlaceName != nil && strings.TrimSpace(team.PlaceName.Default) != "" {
		return team.PlaceName.Default
	}
	if strings.TrimSpace(team.Abbrev) != "" {
		return team.Abbrev
	}
	return unknownOpponent
}

func (n Normalizer) team() string {
	if abbrev := strings.TrimSpace(n.TeamAbbrev); abbrev != "" {
		return abbrev
	}
	return DefaultTeamAbbrev
}

func pickTeam(primary, fallback *providers.Team) *providers.Team {
	if primary != nil {
		return primary
	}
	return fallback
}

func pickScore(primary, fallback *providers.Team) *int {
	if primary != nil && primary.Score != nil {
		return domain.IntPtr(*primary.Score)
	}
	if fallback != nil && fallback.Score != nil {
		return domain.IntPtr(*fallback.Score)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
