package config

import (
	"strings"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the service.
type Config struct {
	Port           string
	PollSchedule   string
	PollOnStart    bool
	Provider       string
	AdminToken     string
	CORSOrigins    []string
	PublishUpdates bool
	NHL            NHLConfig
	Store          StoreConfig
	Bootstrap      BootstrapConfig
	Log            LogConfig
	Metrics        MetricsConfig
}

// NHLConfig controls how we talk to the NHL web API.
type NHLConfig struct {
	BaseURL           string
	TeamAbbrev        string
	Timeout           Duration
	RequestsPerMinute int
}

// StoreConfig selects and configures the document store backend.
type StoreConfig struct {
	Backend       string
	Folder        string
	RetentionDays int
	RedisURL      string
	TodayTTL      Duration
	DatabaseURL   string
}

// BootstrapConfig seeds the public config document when the store has none.
type BootstrapConfig struct {
	DefaultChannel string
	Timezone       string
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is loaded first when present; real
// environment variables win over it.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads configuration from the current environment only.
func FromEnv() Config {
	return Config{
		Port:           envOrDefault(envPort, defaultPort),
		PollSchedule:   envOrDefault(envPollSchedule, defaultPollSchedule),
		PollOnStart:    boolEnvOrDefault(envPollOnStart, defaultPollOnStart),
		Provider:       strings.ToLower(envOrDefault(envProvider, defaultProvider)),
		AdminToken:     envOrDefault(envAdminToken, ""),
		CORSOrigins:    listEnv(envCORSOrigins),
		PublishUpdates: boolEnvOrDefault(envPublishUpdates, false),
		NHL: NHLConfig{
			BaseURL:           envOrDefault(envNHLBaseURL, defaultNHLBaseURL),
			TeamAbbrev:        strings.ToUpper(envOrDefault(envTeamAbbrev, defaultTeamAbbrev)),
			Timeout:           durationEnvOrDefault(envNHLTimeout, defaultNHLTimeout, false),
			RequestsPerMinute: intEnvOrDefault(envNHLRPM, defaultNHLRPM),
		},
		Store: StoreConfig{
			Backend:       strings.ToLower(envOrDefault(envStoreBackend, defaultStoreBackend)),
			Folder:        envOrDefault(envStoreFolder, defaultStoreFolder),
			RetentionDays: intEnvOrDefault(envStoreRetention, defaultStoreRetention),
			RedisURL:      envOrDefault(envRedisURL, defaultRedisURL),
			TodayTTL:      todayTTL(),
			DatabaseURL:   envOrDefault(envDatabaseURL, ""),
		},
		Bootstrap: BootstrapConfig{
			DefaultChannel: strings.TrimSpace(envOrDefault(envDefaultChannel, "")),
			Timezone:       strings.TrimSpace(envOrDefault(envTimezone, "")),
		},
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		Metrics: loadMetrics(),
	}
}

// todayTTL reads TODAY_TTL. Zero keeps today documents forever; any positive
// value is raised to minTodayTTL.
func todayTTL() Duration {
	ttl := durationEnvOrDefault(envTodayTTL, 0, true)
	if ttl > 0 && ttl < minTodayTTL {
		return minTodayTTL
	}
	return ttl
}

// AdminEnabled reports whether admin routes should be mounted.
func (c Config) AdminEnabled() bool {
	return strings.TrimSpace(c.AdminToken) != ""
}
