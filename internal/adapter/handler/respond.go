package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lanshare/lanshare/internal/domain/repository"
	"github.com/lanshare/lanshare/internal/usecase"
)

// Per-route rate limit parameters. Mutating and sweep endpoints are
// stricter than reads.
const (
	readLimit    = 30
	textLimit    = 5
	uploadLimit  = 3
	cleanupLimit = 2
)

// writeError maps lifecycle outcomes to HTTP statuses: validation 400,
// quota 413, not-found-or-expired 404, anything else a backend failure.
func writeError(c *gin.Context, err error) {
	var (
		validationErr *usecase.ValidationError
		quotaErr      *usecase.QuotaError
	)
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": validationErr.Error()})
	case errors.As(err, &quotaErr):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"success": false, "error": quotaErr.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Not found or expired"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
	}
}
