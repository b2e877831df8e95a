// Package middleware holds the router-level HTTP middleware.
package middleware

import (
	"context"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// maxRequestIDLength limits request ID size to prevent unbounded memory usage.
const maxRequestIDLength = 128

// isValidRequestID validates a request ID for safe logging. Only printable
// ASCII (0x20-0x7E) is allowed; control characters and high bytes could
// enable log injection.
func isValidRequestID(id string) bool {
	if len(id) == 0 || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		if c < 0x20 || c > 0x7E {
			return false
		}
	}
	return true
}

// RequestID returns middleware that injects a UUIDv4 request identifier.
// If the incoming request provides a valid X-Request-Id header, that value is
// reused; invalid values are discarded and a new UUID generated instead.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := r.Header.Get(chimiddleware.RequestIDHeader)
			if !isValidRequestID(reqID) {
				reqID = uuid.NewString()
			}

			r = r.WithContext(context.WithValue(r.Context(), chimiddleware.RequestIDKey, reqID))
			w.Header().Set(chimiddleware.RequestIDHeader, reqID)
			next.ServeHTTP(w, r)
		})
	}
}
