// Package api serves the /api route.
package api

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"go.uber.org/zap"

	applog "github.com/slynj/simple-api-docker/internal/platform/logging"
)

// message is the constant payload value; it never changes at runtime.
const message = "Hello, Docker!"

// GetOutput is the response wrapper for the api endpoint.
type GetOutput struct {
	Body Data
}

// Register wires the api route into the provided API router.
func Register(api huma.API) {
	huma.Get(api, "/api", getHandler)
}

func getHandler(ctx context.Context, _ *struct{}) (*GetOutput, error) {
	applog.LogInfo(ctx, "api get", zap.String("path", "/api"))
	return &GetOutput{Body: Data{Message: message}}, nil
}
