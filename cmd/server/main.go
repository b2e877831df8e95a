package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/slynj/simple-api-docker/internal/config"
	"github.com/slynj/simple-api-docker/internal/http/routes"
	applog "github.com/slynj/simple-api-docker/internal/platform/logging"
	appmiddleware "github.com/slynj/simple-api-docker/internal/platform/middleware"
	"github.com/slynj/simple-api-docker/internal/platform/respond"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		applog.LogError(context.Background(), "invalid configuration", err)
		os.Exit(1)
	}

	router := newRouter()
	api := newAPI(router)
	routes.Register(api)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		applog.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		applog.LogError(ctx, "server shutdown error", err)
	}
	applog.LogInfo(context.Background(), "server exited")
}

func newRouter() chi.Router {
	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security("/api-docs"),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP extracts client IP from X-Real-IP or X-Forwarded-For headers.
		// SECURITY: Only use behind a trusted reverse proxy.
		chimiddleware.RealIP,
		// RequestSize limits request body size to prevent memory exhaustion from large payloads.
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)
	return router
}

func newAPI(router chi.Router) huma.API {
	cfg := huma.DefaultConfig("Simple API", Version)
	cfg.DocsPath = "/api-docs"
	// DefaultConfig installs a transformer that injects a $schema field into
	// every struct response. The /api body is the bare one-key mapping, so
	// responses go out untransformed.
	cfg.Transformers = nil
	api := humachi.New(router, cfg)

	// Mirror JSON content into application/cbor in the OpenAPI document so
	// both negotiated formats are advertised.
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation,
		func(_ *huma.OpenAPI, op *huma.Operation) {
			if op.RequestBody != nil && op.RequestBody.Content != nil {
				if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
					op.RequestBody.Content["application/cbor"] = jsonContent
				}
			}
			for _, resp := range op.Responses {
				if resp.Content == nil {
					continue
				}
				if jsonContent, ok := resp.Content["application/json"]; ok {
					resp.Content["application/cbor"] = jsonContent
				}
			}
		},
	)
	return api
}
