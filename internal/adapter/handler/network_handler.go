package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lanshare/lanshare/internal/usecase"
	"github.com/lanshare/lanshare/pkg/middleware"
)

// NetworkHandler handles network identity resolution
type NetworkHandler struct {
	network *usecase.NetworkUseCase
}

// NewNetworkHandler creates a new network handler
func NewNetworkHandler(network *usecase.NetworkUseCase) *NetworkHandler {
	return &NetworkHandler{network: network}
}

// RegisterRoutes registers the network route
func (h *NetworkHandler) RegisterRoutes(router *gin.Engine, limiter *middleware.FixedWindowLimiter) {
	api := router.Group("/api")
	api.GET("/network", middleware.RateLimit(limiter, readLimit, time.Minute), h.GetNetwork)
}

// GetNetwork resolves the caller's network identity, refreshes its
// presence session and reports connected users
func (h *NetworkHandler) GetNetwork(c *gin.Context) {
	clientIP := middleware.GetClientIP(c)

	info, err := h.network.Resolve(c.Request.Context(), clientIP, c.GetHeader("User-Agent"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    info,
	})
}
