// Package routes is the route registry.
package routes

import (
	"github.com/danielgtaylor/huma/v2"

	apihandler "github.com/slynj/simple-api-docker/internal/http/api"
	"github.com/slynj/simple-api-docker/internal/http/health"
)

// Register wires all HTTP routes into the provided API router.
func Register(api huma.API) {
	apihandler.Register(api)
	health.Register(api)
}
