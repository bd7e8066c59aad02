package domain

// GameStatus is the normalized lifecycle state of a game.
type GameStatus string

const (
	StatusScheduled GameStatus = "scheduled"
	StatusLive      GameStatus = "live"
	StatusFinal     GameStatus = "final"
)

// Valid reports whether s is one of the published status values.
func (s GameStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusLive, StatusFinal:
		return true
	default:
		return false
	}
}

// DefaultTimezone is used when the public config omits a timezone.
const DefaultTimezone = "America/New_York"

// PublicConfig is the admin-owned configuration document.
type PublicConfig struct {
	DefaultChannel string `json:"defaultChannel"`
	Timezone       string `json:"timezone"`
	TeamID         string `json:"teamId,omitempty"`
	ChannelLabel   string `json:"channelLabel,omitempty"`
}

// TodayState is the per-date document keyed by DateKey.
// The poller owns GameID, EffectiveChannel and UpdatedAt; admin edits own the override fields.
type TodayState struct {
	DateKey             string  `json:"dateKey"`
	GameID              *string `json:"gameId"`
	EffectiveChannel    string  `json:"effectiveChannel"`
	ChannelOverride     *string `json:"channelOverride"`
	ChannelOverrideNote *string `json:"channelOverrideNote"`
	UpdatedAt           string  `json:"updatedAt"`
}

// GameState is the per-game document keyed by GameID.
type GameState struct {
	GameID          string     `json:"gameId"`
	StartTime       string     `json:"startTime"`
	Status          GameStatus `json:"status"`
	OpponentName    string     `json:"opponentName"`
	IsHome          bool       `json:"isHome"`
	ScoreHome       *int       `json:"scoreHome"`
	ScoreAway       *int       `json:"scoreAway"`
	Period          *int       `json:"period"`
	Clock           *string    `json:"clock"`
	SourceUpdatedAt string     `json:"sourceUpdatedAt"`
}

// StringPtr returns a pointer to a copy of v.
func StringPtr(v string) *string {
	return &v
}

// IntPtr returns a pointer to a copy of v.
func IntPtr(v int) *int {
	return &v
}
