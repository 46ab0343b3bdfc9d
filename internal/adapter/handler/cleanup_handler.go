package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lanshare/lanshare/internal/usecase"
	"github.com/lanshare/lanshare/pkg/middleware"
)

// CleanupHandler exposes the forced sweep, both as a cron entrypoint and
// as a rate-limited manual trigger
type CleanupHandler struct {
	sweeper *usecase.Sweeper
}

// NewCleanupHandler creates a new cleanup handler
func NewCleanupHandler(sweeper *usecase.Sweeper) *CleanupHandler {
	return &CleanupHandler{sweeper: sweeper}
}

// RegisterRoutes registers cleanup routes
func (h *CleanupHandler) RegisterRoutes(router *gin.Engine, limiter *middleware.FixedWindowLimiter) {
	api := router.Group("/api")
	api.GET("/cleanup", h.Cleanup)
	api.POST("/manual", middleware.RateLimit(limiter, cleanupLimit, time.Minute), h.Manual)
}

// Cleanup runs a forced sweep. Intended for scheduled invocation.
func (h *CleanupHandler) Cleanup(c *gin.Context) {
	stats, err := h.sweeper.Force(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cleanup completed",
		"stats":   stats,
	})
}

// Manual runs a forced sweep on user request.
func (h *CleanupHandler) Manual(c *gin.Context) {
	stats, err := h.sweeper.Force(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Manual cleanup completed",
		"stats":     stats,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
