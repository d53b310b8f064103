package handlers

import (
	"encoding/json"
	"net/http"
)

// HealthResponse represents the static health-check payload
// swagger:model HealthResponse
type HealthResponse struct {
	// Service status
	// default: ok
	Status string `json:"status"`

	// Service name
	// default: funds-api
	Service string `json:"service"`
}

// NewHealthHandler returns an HTTP handler for the health check.
// @Summary Health check
// @Description Returns a static OK payload.
// @Tags funds
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Service is up"
// @Router /funds/health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HealthResponse{Status: "ok", Service: "funds-api"})
	}
}
