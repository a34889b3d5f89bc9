package web

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/chartlens-labs/chartlens-cli/internal/logger"
)

// logRequests logs every request with its duration when verbose logging
// is enabled.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("%s %s (%s)", r.Method, r.URL.Path, time.Since(start))
	})
}

// rateLimit applies a token-bucket limit across all clients. The
// dashboard is a local single-user tool, so one shared bucket is enough.
func (s *Server) rateLimit(rps float64) func(http.Handler) http.Handler {
	burst := int(rps)
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
