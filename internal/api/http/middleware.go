package http

import (
	"net/http"
	"time"

	"github.com/AleksandrYakovlevgtn/shareit/internal/logger"

	"github.com/google/uuid"
)

// RequestLogging tags each request with a generated request id and logs
// method, path and duration.
func RequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-Id", requestID)

		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info("request handled",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start))
	})
}
