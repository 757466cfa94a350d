package response

import (
	"log"
	"net/http"

	"anoa.com/sekolahadmin/pkg/apperror"
	"github.com/gin-gonic/gin"
)

// GetUserID retrieves the authenticated user ID from the context
func GetUserID(c *gin.Context) (string, error) {
	userID, exists := c.Get("user_id")
	if !exists {
		return "", apperror.ErrUnauthorized
	}

	id, ok := userID.(string)
	if !ok || id == "" {
		return "", apperror.ErrUnauthorized
	}

	return id, nil
}

// ResponseError standardized error response
func ResponseError(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal/upstream detail, clients only get the generic message
	switch code {
	case http.StatusInternalServerError:
		log.Printf("[Internal Error]: %v", err)
		c.JSON(code, gin.H{"error": apperror.ErrInternal.Error()})
	case http.StatusBadGateway:
		log.Printf("[Upstream Error]: %v", err)
		c.JSON(code, gin.H{"error": apperror.ErrUpstream.Error()})
	default:
		c.JSON(code, gin.H{"error": err.Error()})
	}
}
