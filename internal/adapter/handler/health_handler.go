package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lanshare/lanshare/internal/domain/entities"
	"github.com/lanshare/lanshare/internal/usecase"
)

// HealthHandler handles the health endpoint
type HealthHandler struct {
	health *usecase.HealthUseCase
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(health *usecase.HealthUseCase) *HealthHandler {
	return &HealthHandler{health: health}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/health", h.GetHealth)
}

// GetHealth reports whether the service and its backing stores are reachable
func (h *HealthHandler) GetHealth(c *gin.Context) {
	report := h.health.Report(c.Request.Context())

	code := http.StatusOK
	if report.Status == entities.HealthStatusDown {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, report)
}
