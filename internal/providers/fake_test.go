package providers

import (
	"context"
	"sync/atomic"
)

type fakeProvider struct {
	schedule   ScheduleResponse
	landing    LandingResponse
	err        error
	calls      atomic.Int32
	lastSeason string
	lastGameID string
}

func (f *fakeProvider) GetSchedule(ctx context.Context, seasonID string) (ScheduleResponse, error) {
	_ = ctx
	f.calls.Add(1)
	f.lastSeason = seasonID
	return f.schedule, f.err
}

func (f *fakeProvider) GetGameLanding(ctx context.Context, gameID string) (LandingResponse, error) {
	_ = ctx
	f.calls.Add(1)
	f.lastGameID = gameID
	return f.landing, f.err
}
