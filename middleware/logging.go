package middleware

import (
	"log"
	"net/http"
	"time"
)

// WithLogging logs each request with its method, path and duration.
func WithLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s completed in %dms", r.Method, r.URL.Path, time.Since(start).Milliseconds())
	})
}
