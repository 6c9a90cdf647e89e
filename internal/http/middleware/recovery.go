package middleware

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/labcrm/crm-api/internal/domain"
)

// Recovery converts panics into 500 responses instead of dropped
// connections.
func Recovery(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rec),
						zap.String("path", r.URL.Path),
						zap.Stack("stack"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(domain.NewAPIError(
						http.StatusInternalServerError, "Internal Server Error", ""))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
