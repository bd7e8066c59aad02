package config

import "time"

const (
	envPort           = "PORT"
	envPollSchedule   = "POLL_SCHEDULE"
	envPollOnStart    = "POLL_ON_START"
	envProvider       = "PROVIDER"
	envTeamAbbrev     = "TEAM_ABBREV"
	envNHLBaseURL     = "NHL_BASE_URL"
	envNHLTimeout     = "NHL_TIMEOUT"
	envNHLRPM         = "NHL_REQUESTS_PER_MINUTE"
	envStoreBackend   = "STORE_BACKEND"
	envStoreFolder    = "STORE_FOLDER"
	envStoreRetention = "STORE_RETENTION_DAYS"
	envRedisURL       = "REDIS_URL"
	envTodayTTL       = "TODAY_TTL"
	envDatabaseURL    = "DATABASE_URL"
	envPublishUpdates = "PUBLISH_UPDATES"
	envAdminToken     = "ADMIN_TOKEN"
	envCORSOrigins    = "CORS_ALLOWED_ORIGINS"
	envDefaultChannel = "DEFAULT_CHANNEL"
	envTimezone       = "TIMEZONE"
	envLogLevel       = "LOG_LEVEL"
	envLogFormat      = "LOG_FORMAT"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort = "4000"
	// Upstream schedule data refreshes on roughly this cadence.
	defaultPollSchedule   = "@every 5m"
	defaultPollOnStart    = true
	defaultProvider       = "nhl"
	defaultTeamAbbrev     = "BOS"
	defaultNHLBaseURL     = "https://api-web.nhle.com/v1"
	defaultNHLTimeout     = 10 * Duration(time.Second)
	defaultNHLRPM         = 30
	defaultStoreBackend   = "memory"
	defaultStoreFolder    = "data/bruins-live"
	defaultStoreRetention = 30
	defaultRedisURL       = "redis://localhost:6379/0"
	defaultLogLevel       = "info"
	defaultLogFormat      = "text"
	defaultMetricsPort    = "9090"
	defaultServiceName    = "bruins-live-service"

	// A today document must outlive the local day it describes plus the
	// largest timezone offset, or overrides stop reconciling mid-day.
	minTodayTTL = 48 * time.Hour
)
