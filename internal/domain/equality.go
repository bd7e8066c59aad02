package domain

// SameToday reports whether next matches the stored document, ignoring UpdatedAt.
// A missing stored document never matches.
func SameToday(existing *TodayState, next TodayState) bool {
	if existing == nil {
		return false
	}
	return existing.DateKey == next.DateKey &&
		equalString(existing.GameID, next.GameID) &&
		existing.EffectiveChannel == next.EffectiveChannel &&
		equalString(existing.ChannelOverride, next.ChannelOverride) &&
		equalString(existing.ChannelOverrideNote, next.ChannelOverrideNote)
}

// SameGame reports whether next matches the stored document, ignoring SourceUpdatedAt.
// A missing stored document never matches.
func SameGame(existing *GameState, next GameState) bool {
	if existing == nil {
		return false
	}
	return existing.GameID == next.GameID &&
		existing.StartTime == next.StartTime &&
		existing.Status == next.Status &&
		existing.OpponentName == next.OpponentName &&
		existing.IsHome == next.IsHome &&
		equalInt(existing.ScoreHome, next.ScoreHome) &&
		equalInt(existing.ScoreAway, next.ScoreAway) &&
		equalInt(existing.Period, next.Period) &&
		equalString(existing.Clock, next.Clock)
}

func equalString(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func equalInt(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
