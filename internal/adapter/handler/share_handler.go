package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lanshare/lanshare/internal/usecase"
	"github.com/lanshare/lanshare/pkg/middleware"
	"github.com/lanshare/lanshare/pkg/validation"
)

// ShareHandler handles the item CRUD endpoints
type ShareHandler struct {
	share   *usecase.ShareUseCase
	sweeper *usecase.Sweeper
}

// NewShareHandler creates a new share handler
func NewShareHandler(share *usecase.ShareUseCase, sweeper *usecase.Sweeper) *ShareHandler {
	return &ShareHandler{
		share:   share,
		sweeper: sweeper,
	}
}

// RegisterRoutes registers item routes with their per-route rate limits
func (h *ShareHandler) RegisterRoutes(router *gin.Engine, limiter *middleware.FixedWindowLimiter) {
	read := middleware.RateLimit(limiter, readLimit, time.Minute)

	api := router.Group("/api")
	api.GET("/items", read, h.ListItems)
	api.POST("/items", middleware.RateLimit(limiter, textLimit, time.Minute), h.CreateText)
	api.DELETE("/items/:id", read, h.DeleteItem)
	api.POST("/items/:id/download", read, h.TrackDownload)
	api.POST("/upload", middleware.RateLimit(limiter, uploadLimit, time.Minute), h.Upload)
	api.GET("/download/:id", read, h.Download)
	api.GET("/preview/:id", read, h.Preview)
	api.GET("/stats", read, h.Stats)
}

// ListItems returns the live items shared on the caller's network
func (h *ShareHandler) ListItems(c *gin.Context) {
	networkID := c.Query("networkId")
	if !validation.ValidNetworkID(networkID) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Valid network ID required"})
		return
	}

	h.sweepOpportunistically(c)

	items, err := h.share.List(c.Request.Context(), networkID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"items": items},
	})
}

type createTextRequest struct {
	Type      string `json:"type"`
	Content   string `json:"content"`
	NetworkID string `json:"networkId"`
}

// CreateText shares a text snippet
func (h *ShareHandler) CreateText(c *gin.Context) {
	var req createTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}
	if !validation.ValidNetworkID(req.NetworkID) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Valid network ID required"})
		return
	}
	if req.Type != "text" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Valid type required (text)"})
		return
	}

	item, err := h.share.CreateText(c.Request.Context(), req.NetworkID, req.Content)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"itemId": item.ID},
		"message": "Item shared successfully",
	})
}

// DeleteItem removes a shared item
func (h *ShareHandler) DeleteItem(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	if err := h.share.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Item deleted successfully",
	})
}

// TrackDownload increments the informational download counter
func (h *ShareHandler) TrackDownload(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	if err := h.share.TrackDownload(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Download tracked",
	})
}

// Upload shares a file: payload goes to the blob store, the record to the
// durable store
func (h *ShareHandler) Upload(c *gin.Context) {
	networkID := c.PostForm("networkId")
	if !validation.ValidNetworkID(networkID) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Valid network ID required"})
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "File is required"})
		return
	}
	defer file.Close()

	item, err := h.share.CreateFile(c.Request.Context(), networkID,
		header.Filename, header.Header.Get("Content-Type"), header.Size, file)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"item": item},
		"message": "File uploaded successfully",
	})
}

// Download redirects to the blob URL of a live file item
func (h *ShareHandler) Download(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	url, err := h.share.DownloadURL(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Redirect(http.StatusFound, url)
}

// Preview redirects to the blob URL of a live image item
func (h *ShareHandler) Preview(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	url, err := h.share.PreviewURL(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Redirect(http.StatusFound, url)
}

// Stats returns live aggregate activity for the caller's network
func (h *ShareHandler) Stats(c *gin.Context) {
	networkID := c.Query("networkId")
	if !validation.ValidNetworkID(networkID) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Valid network ID required"})
		return
	}

	h.sweepOpportunistically(c)

	stats, err := h.share.Stats(c.Request.Context(), networkID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    stats,
	})
}

// sweepOpportunistically triggers the throttled sweep. A failure must not
// break the request being served.
func (h *ShareHandler) sweepOpportunistically(c *gin.Context) {
	if _, err := h.sweeper.Opportunistic(c.Request.Context()); err != nil {
		log.Printf("opportunistic cleanup failed: %v", err)
	}
}

func itemID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid item ID"})
		return "", false
	}
	return id, true
}
