// ABOUTME: Health check handler for the Huma API
// ABOUTME: Reports service liveness for deployment probes

package handlers

import (
	"context"
	"net/http"
	"time"

	"article-labels-api/api/dto/responses"
	"github.com/danielgtaylor/huma/v2"
)

// HealthHandler handles health check requests
type HealthHandler struct {
	serviceName string
	version     string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(serviceName, version string) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
	}
}

// RegisterRoutes registers the health check route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/health",
		Summary:     "Health check",
		Description: "Reports whether the service is up and able to serve requests",
		Tags:        []string{"Health"},
	}, h.HealthCheck)
}

// HealthCheckOutput defines the output for the HealthCheck operation
type HealthCheckOutput struct {
	Body responses.HealthResponse
}

// HealthCheck handles the GET /health endpoint
func (h *HealthHandler) HealthCheck(ctx context.Context, _ *struct{}) (*HealthCheckOutput, error) {
	return &HealthCheckOutput{
		Body: responses.HealthResponse{
			Status:    "healthy",
			Service:   h.serviceName,
			Version:   h.version,
			Timestamp: time.Now().UTC(),
		},
	}, nil
}
