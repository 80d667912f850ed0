// ABOUTME: Liveness probe for load balancers and container orchestration
// ABOUTME: Answers without touching any upstream

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"rotter-news-api/api/dto/responses"
)

// HealthOutput defines the output for the health check
type HealthOutput struct {
	Body responses.HealthResponse
}

// RegisterHealth registers GET /healthz
func RegisterHealth(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "healthz",
		Method:      http.MethodGet,
		Path:        "/healthz",
		Summary:     "Liveness probe",
		Tags:        []string{"Health"},
	}, func(ctx context.Context, input *struct{}) (*HealthOutput, error) {
		return &HealthOutput{Body: responses.HealthResponse{Status: "ok"}}, nil
	})
}
