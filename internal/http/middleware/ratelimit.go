package middleware

import (
	"net/http"

	"github.com/go-chi/httprate"

	"github.com/labcrm/crm-api/internal/config"
)

// RateLimit limits requests per client IP. Disabled limits pass
// requests through untouched.
func RateLimit(cfg config.RateLimitConfig) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.LimitByIP(cfg.Requests, cfg.Window)
}
