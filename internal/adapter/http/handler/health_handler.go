package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check endpoints. The only dependency worth
// reporting is the remote sentiment provider, which is configured at
// startup; reachability is only known per-request.
type HealthHandler struct {
	provider string
	model    string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(provider, model string) *HealthHandler {
	return &HealthHandler{
		provider: provider,
		model:    model,
	}
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthStatus{
		Status: "healthy",
		Components: map[string]string{
			"classifier": h.provider + " (" + h.model + ")",
		},
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
