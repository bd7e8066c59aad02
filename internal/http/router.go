package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/bruins-live-service/internal/http/handlers"
	"github.com/preston-bernstein/bruins-live-service/internal/http/middleware"
	"github.com/preston-bernstein/bruins-live-service/internal/metrics"
)

// RouterConfig collects what NewRouter mounts.
type RouterConfig struct {
	Handler     *handlers.Handler
	Admin       *handlers.AdminHandler
	AdminToken  string
	CORSOrigins []string
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
}

// NewRouter registers HTTP routes on a chi router. Admin routes are only mounted
// when both an admin handler and a token are configured.
func NewRouter(cfg RouterConfig) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging(cfg.Logger, cfg.Metrics))
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSOrigins,
			AllowedMethods:   []string{"GET", "PUT", "POST", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	h := cfg.Handler
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Get("/today", h.Today)
	r.Get("/today/{dateKey}", h.TodayForDate)
	r.Get("/games/{gameId}", h.GameByID)

	if cfg.Admin != nil && cfg.AdminToken != "" {
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireBearerToken(cfg.AdminToken, cfg.Logger))
			r.Put("/today/{dateKey}/override", cfg.Admin.SetOverride)
			r.Delete("/today/{dateKey}/override", cfg.Admin.ClearOverride)
			r.Post("/poll", cfg.Admin.Poll)
		})
	}
	return r
}
