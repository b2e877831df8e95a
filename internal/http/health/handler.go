// Package health serves the liveness route.
package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
)

// Status models the liveness payload.
type Status struct {
	Status string `json:"status" doc:"Service liveness status" example:"ok"`
}

// GetOutput is the response wrapper for the health endpoint.
type GetOutput struct {
	Body Status
}

// Register wires the health route into the provided API router.
func Register(api huma.API) {
	huma.Get(api, "/health", getHandler)
}

func getHandler(_ context.Context, _ *struct{}) (*GetOutput, error) {
	return &GetOutput{Body: Status{Status: "ok"}}, nil
}
