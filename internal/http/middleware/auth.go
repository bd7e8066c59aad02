package middleware

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/bruins-live-service/internal/http/requestutil"
	"github.com/preston-bernstein/bruins-live-service/internal/logging"
)

// RequireBearerToken rejects requests whose bearer token does not match token.
// An empty token rejects everything.
func RequireBearerToken(token string, fallback *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := requestutil.BearerToken(r)
			if token == "" || got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				logging.Warn(logging.FromContext(r.Context(), fallback), "admin unauthorized",
					slog.String(logging.FieldPath, r.URL.Path),
					slog.String("client_ip", requestutil.ClientIP(r)),
				)
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("WWW-Authenticate", `Bearer realm="admin"`)
				w.WriteHeader(http.StatusUnauthorized)
				body := map[string]string{"error": "unauthorized"}
				if reqID := RequestIDFromContext(r.Context()); reqID != "" {
					body["requestId"] = reqID
				}
				_ = json.NewEncoder(w).Encode(body)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
