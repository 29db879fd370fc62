package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"billbook/internal/logger"
	"billbook/internal/service"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	summary service.SummaryService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(summary service.SummaryService) *HealthHandler {
	return &HealthHandler{summary: summary}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz. It probes the ledger backend and reports
// which driver and storage slot the process is serving.
func (h *HealthHandler) Readiness(c *gin.Context) {
	status := h.summary.Status(c.Request.Context())
	body := gin.H{"driver": status.Driver, "storageKey": status.StorageKey}

	if err := h.summary.Ping(c.Request.Context()); err != nil {
		log := logger.WithComponent("health")
		log.Warn().Err(err).Str("driver", status.Driver).Msg("ledger backend not ready")
		body["status"] = "unavailable"
		body["error"] = "ledger store not reachable"
		c.JSON(http.StatusServiceUnavailable, body)
		return
	}
	body["status"] = "ok"
	c.JSON(http.StatusOK, body)
}
