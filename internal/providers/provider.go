package providers

import "context"

// ScheduleProvider fetches a team's season schedule and per-game landing payloads.
// Implementations must be safe for concurrent use and honour ctx cancellation.
type ScheduleProvider interface {
	GetSchedule(ctx context.Context, seasonID string) (ScheduleResponse, error)
	GetGameLanding(ctx context.Context, gameID string) (LandingResponse, error)
}
