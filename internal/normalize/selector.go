package normalize

import (
	"sort"
	"time"

	"github.com/preston-bernstein/bruins-live-service/internal/providers"
	"github.com/preston-bernstein/bruins-live-service/internal/timeutil"
)

// SelectRelevantGame picks the game for dateKey (earliest start on that date),
// otherwise the earliest game starting at or after now. ok is false when neither exists.
func SelectRelevantGame(schedule providers.ScheduleResponse, dateKey string, now time.Time) (providers.ScheduleGame, bool) {
	today := make([]candidate, 0, 1)
	upcoming := make([]candidate, 0, len(schedule.Games))

	for _, game := range schedule.Games {
		start, parsed := timeutil.ParseInstant(game.StartTimeUTC)
		c := candidate{game: game, start: start, parsed: parsed}
		if game.GameDate == dateKey {
			today = append(today, c)
			continue
		}
		if parsed && !start.Before(now) {
			upcoming = append(upcoming, c)
		}
	}

	if len(today) > 0 {
		return earliest(today), true
	}
	if len(upcoming) > 0 {
		return earliest(upcoming), true
	}
	return providers.ScheduleGame{}, false
}

type candidate struct {
	game   providers.ScheduleGame
	start  time.Time
	parsed bool
}

// earliest stable-sorts by start time. A candidate without a parseable start
// compares equal to everything, so it keeps its list position relative to its
// neighbours instead of moving to either end.
func earliest(candidates []candidate) providers.ScheduleGame {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		return a.parsed && b.parsed && a.start.Before(b.start)
	})
	return candidates[0].game
}
