// Package respond provides the router-level fallback handlers and panic
// recovery, emitting RFC 7807 problem documents in the same shape huma uses
// for its own error responses.
package respond

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	applog "github.com/slynj/simple-api-docker/internal/platform/logging"
)

// NotFoundHandler renders a problem-details 404 for unmatched paths.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeProblem(w, r, http.StatusNotFound, "resource not found")
	}
}

// MethodNotAllowedHandler renders a problem-details 405, including an Allow
// header listing the methods the matched route does accept.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allow := allowedMethods(r); len(allow) > 0 {
			w.Header().Set("Allow", strings.Join(allow, ", "))
		}
		writeProblem(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// Recoverer converts panics into problem-details 500 responses, logging the
// panic value and stack at error level.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					var err error
					switch v := rec.(type) {
					case error:
						err = v
					default:
						err = fmt.Errorf("%v", v)
					}
					applog.LogError(r.Context(), "panic recovered", err,
						zap.String("method", r.Method),
						zap.String("path", r.URL.Path),
						zap.String("stack", string(debug.Stack())),
					)
					writeProblem(w, r, http.StatusInternalServerError, "internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func writeProblem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	problem := huma.ErrorModel{
		Status: status,
		Title:  http.StatusText(status),
		Detail: detail,
	}
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(&problem); err != nil {
		applog.LogError(r.Context(), "failed to render problem response", err)
	}
}

// allowedMethods inspects chi's routing context to discover allowed methods.
func allowedMethods(r *http.Request) []string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return nil
	}

	routePath := rctx.RoutePath
	if routePath == "" {
		if r.URL.RawPath != "" {
			routePath = r.URL.RawPath
		} else {
			routePath = r.URL.Path
		}
		if routePath == "" {
			routePath = "/"
		}
	}

	methods := []string{
		http.MethodGet,
		http.MethodHead,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
		http.MethodOptions,
	}
	allowed := make([]string, 0, len(methods))
	for _, method := range methods {
		tctx := chi.NewRouteContext()
		if rctx.Routes.Match(tctx, method, routePath) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
