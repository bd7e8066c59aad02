package fixture

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/preston-bernstein/bruins-live-service/internal/providers"
)

//go:embed testdata/*.json
var payloads embed.FS

// Landing selects which embedded landing payload the provider serves.
type Landing string

const (
	LandingLive  Landing = "live"
	LandingFinal Landing = "final"
)

// Provider serves embedded NHL payloads, useful for local runs and tests.
type Provider struct {
	landing Landing
}

var _ providers.ScheduleProvider = (*Provider)(nil)

// New creates a fixture provider serving the live landing payload.
func New() *Provider {
	return &Provider{landing: LandingLive}
}

// NewWithLanding creates a fixture provider serving the given landing payload.
func NewWithLanding(landing Landing) *Provider {
	if landing != LandingFinal {
		landing = LandingLive
	}
	return &Provider{landing: landing}
}

// GetSchedule returns the embedded club schedule regardless of seasonID.
func (p *Provider) GetSchedule(ctx context.Context, seasonID string) (providers.ScheduleResponse, error) {
	_ = seasonID
	if err := ctx.Err(); err != nil {
		return providers.ScheduleResponse{}, err
	}
	return Schedule()
}

// GetGameLanding returns the embedded landing payload with its id set to gameID.
func (p *Provider) GetGameLanding(ctx context.Context, gameID string) (providers.LandingResponse, error) {
	if err := ctx.Err(); err != nil {
		return providers.LandingResponse{}, err
	}
	landing, err := p.loadLanding()
	if err != nil {
		return providers.LandingResponse{}, err
	}
	if landing.GameID() != gameID {
		return providers.LandingResponse{}, &providers.UpstreamError{Provider: "fixture", Op: "landing", StatusCode: 404, Body: "unknown game " + gameID}
	}
	return landing, nil
}

func (p *Provider) loadLanding() (providers.LandingResponse, error) {
	if p.landing == LandingFinal {
		return FinalLanding()
	}
	return LiveLanding()
}

// Schedule decodes the embedded nhl-schedule.json payload.
func Schedule() (providers.ScheduleResponse, error) {
	var resp providers.ScheduleResponse
	if err := decode("testdata/nhl-schedule.json", &resp); err != nil {
		return providers.ScheduleResponse{}, err
	}
	return resp, nil
}

// LiveLanding decodes the embedded nhl-live.json payload.
func LiveLanding() (providers.LandingResponse, error) {
	var resp providers.LandingResponse
	if err := decode("testdata/nhl-live.json", &resp); err != nil {
		return providers.LandingResponse{}, err
	}
	return resp, nil
}

// FinalLanding decodes the embedded nhl-final.json payload.
func FinalLanding() (providers.LandingResponse, error) {
	var resp providers.LandingResponse
	if err := decode("testdata/nhl-final.json", &resp); err != nil {
		return providers.LandingResponse{}, err
	}
	return resp, nil
}

func decode(name string, dest any) error {
	raw, err := payloads.ReadFile(name)
	if err != nil {
		return fmt.Errorf("fixture: read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("fixture: decode %s: %w", name, err)
	}
	return nil
}
