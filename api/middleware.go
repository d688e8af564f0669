package api

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type contextKey string

const contextKeyRequestID contextKey = "requestID"

// RequestIDMiddleware tags every request with an ID for log correlation.
// An incoming X-Request-ID header is honored so a reverse proxy can thread
// its own IDs through.
func RequestIDMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-ID")
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set("X-Request-ID", id)
			ctx := context.WithValue(r.Context(), contextKeyRequestID, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetRequestID returns the request's ID, or "" outside the middleware.
func GetRequestID(r *http.Request) string {
	if id, ok := r.Context().Value(contextKeyRequestID).(string); ok {
		return id
	}
	return ""
}

// statusRecorder captures the status code a handler writes.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware writes one access-log line per request.
func LoggingMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			log.Printf("%s %s %d %s rid=%s",
				r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Millisecond), GetRequestID(r))
		})
	}
}
