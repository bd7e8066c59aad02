package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/preston-bernstein/bruins-live-service/internal/domain"
	"github.com/preston-bernstein/bruins-live-service/internal/timeutil"
)

// normalizeConfig applies the timezone default and rejects unusable config documents.
func normalizeConfig(cfg domain.PublicConfig) (domain.PublicConfig, error) {
	cfg.DefaultChannel = strings.TrimSpace(cfg.DefaultChannel)
	cfg.Timezone = strings.TrimSpace(cfg.Timezone)
	if cfg.DefaultChannel == "" {
		return domain.PublicConfig{}, &domain.ConfigError{Reason: "defaultChannel is blank"}
	}
	if cfg.Timezone == "" {
		cfg.Timezone = domain.DefaultTimezone
	}
	if _, err := timeutil.ResolveLocation(cfg.Timezone); err != nil {
		return domain.PublicConfig{}, err
	}
	return cfg, nil
}

func decodeConfig(raw []byte, found bool) (domain.PublicConfig, error) {
	if !found {
		return domain.PublicConfig{}, &domain.ConfigError{Reason: "public config document missing"}
	}
	var cfg domain.PublicConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return domain.PublicConfig{}, &domain.ConfigError{Reason: "public config document unreadable", Err: err}
	}
	return normalizeConfig(cfg)
}

func decodeToday(raw []byte) (*domain.TodayState, error) {
	var state domain.TodayState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("store: decode today document: %w", err)
	}
	return &state, nil
}

func decodeGame(raw []byte) (*domain.GameState, error) {
	var state domain.GameState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("store: decode game document: %w", err)
	}
	return &state, nil
}

func cloneToday(s domain.TodayState) domain.TodayState {
	s.GameID = cloneString(s.GameID)
	s.ChannelOverride = cloneString(s.ChannelOverride)
	s.ChannelOverrideNote = cloneString(s.ChannelOverrideNote)
	return s
}

func cloneGame(g domain.GameState) domain.GameState {
	g.ScoreHome = cloneInt(g.ScoreHome)
	g.ScoreAway = cloneInt(g.ScoreAway)
	g.Period = cloneInt(g.Period)
	g.Clock = cloneString(g.Clock)
	return g
}

func cloneString(v *string) *string {
	if v == nil {
		return nil
	}
	return domain.StringPtr(*v)
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	return domain.IntPtr(*v)
}
