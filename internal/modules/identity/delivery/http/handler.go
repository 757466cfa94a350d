package handler

import (
	"net/http"

	identity "anoa.com/sekolahadmin/internal/modules/identity/service"
	"anoa.com/sekolahadmin/pkg/response"
	"github.com/gin-gonic/gin"
)

type IdentityHandler struct {
	directory identity.DirectoryService
}

func NewIdentityHandler(directory identity.DirectoryService) *IdentityHandler {
	return &IdentityHandler{directory: directory}
}

// ListIdentityUsers proxies the provider's full user list.
func (h *IdentityHandler) ListIdentityUsers(c *gin.Context) {
	users, err := h.directory.ListIdentities(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// SearchIdentityUsers serves the identity picker.
func (h *IdentityHandler) SearchIdentityUsers(c *gin.Context) {
	query := c.Query("q")

	profiles, err := h.directory.Search(c.Request.Context(), query)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": profiles})
}

// RefreshIdentities drops the cached identity list and rebuilds the picker
// index.
func (h *IdentityHandler) RefreshIdentities(c *gin.Context) {
	count, err := h.directory.Refresh(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "identity list refreshed", "count": count})
}
