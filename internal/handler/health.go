package handler

import (
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// HealthHandler reports process and database liveness.
type HealthHandler struct {
	client *mongo.Client
}

func NewHealthHandler(client *mongo.Client) *HealthHandler {
	return &HealthHandler{client: client}
}

type healthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Health handles GET /api/health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.client.Ping(r.Context(), readpref.Primary()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, response{
			Success: false,
			Message: "database unreachable",
			Data:    healthStatus{Status: "unhealthy", Database: "down"},
		})
		return
	}

	respondData(w, http.StatusOK, healthStatus{Status: "ok", Database: "up"})
}
