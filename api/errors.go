package api

import (
	"net/http"

	"github.com/Domenick1991/travelgo/internal/domain"
	"github.com/gin-gonic/gin"
)

// writeError maps domain errors onto the API's status codes. Error bodies are
// always {"message": ...}.
func writeError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err), domain.IsDuplicate(err):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case domain.IsInvalidCredentials(err):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "invalid credentials"})
	case domain.IsInvalidToken(err):
		c.JSON(http.StatusForbidden, gin.H{"message": "invalid or expired token"})
	case domain.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}
