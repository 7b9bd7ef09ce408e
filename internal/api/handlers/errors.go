package handlers

import (
	"net/http"

	apperrors "fleetops-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy onto HTTP statuses:
// conflicts and duplicates are 409, missing entities 404, everything the
// caller could have avoided 400.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsConflict(err), apperrors.IsOccupiedDate(err), apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	}
}
