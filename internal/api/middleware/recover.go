package middleware

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Recover returns middleware that converts a panic anywhere downstream into
// a 500 with a generic JSON body, so no fault reaches the transport layer
// uncaught. The panic value and request id are logged; the client only sees
// the generic message.
func Recover(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rec),
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.String("request_id", RequestIDFromContext(r.Context())),
						zap.Stack("stack"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{"error": "An unexpected error occurred"})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
