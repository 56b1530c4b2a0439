package handler

import (
	"net/http"

	"github.com/osse101/ItemRegistry_Go/internal/logger"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// RecordCounter reports how many item records are loaded
type RecordCounter interface {
	Len() int
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz reports ready once the item registry holds records
// @Summary Readiness check
// @Description Returns OK if the item database has been loaded
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(registry RecordCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if registry.Len() == 0 {
			logger.FromContext(r.Context()).Warn(LogMsgReadinessFailed, "reason", ErrMsgRegistryEmpty)
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  "unavailable",
				Message: ErrMsgRegistryEmpty,
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
