package normalize

import (
	"strings"

	"github.com/preston-bernstein/bruins-live-service/internal/domain"
)

var statusTokens = map[string]domain.GameStatus{
	"LIVE":     domain.StatusLive,
	"CRIT":     domain.StatusLive,
	"FINAL":    domain.StatusFinal,
	"OFFICIAL": domain.StatusFinal,
	"OVER":     domain.StatusFinal,
	"FINALSO":  domain.StatusFinal,
	"FINALOT":  domain.StatusFinal,
	// Pre-game states map to scheduled explicitly so they are not reported as unknown.
	"FUT": domain.StatusScheduled,
	"PRE": domain.StatusScheduled,
}

// NormalizeStatus maps an upstream game state token to a GameStatus.
// Unrecognised or empty tokens map to scheduled.
func NormalizeStatus(raw string) domain.GameStatus {
	status, _ := LookupStatus(raw)
	return status
}

// LookupStatus is NormalizeStatus that also reports whether the token had an explicit mapping.
// An empty token counts as known (the upstream simply omitted it).
func LookupStatus(raw string) (domain.GameStatus, bool) {
	token := strings.ToUpper(strings.TrimSpace(raw))
	if token == "" {
		return domain.StatusScheduled, true
	}
	if status, ok := statusTokens[token]; ok {
		return status, true
	}
	return domain.StatusScheduled, false
}
