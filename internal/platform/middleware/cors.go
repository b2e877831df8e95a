package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS returns a middleware that applies permissive defaults suitable for a
// public read-only API.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		MaxAge: 300,
	})
}
