package handler

import (
	"net/http"

	attachment "anoa.com/sekolahadmin/internal/modules/attachment/service"
	"anoa.com/sekolahadmin/pkg/response"
	"github.com/gin-gonic/gin"
)

// 8 MiB, matches the provider-side transformation limit for avatars
const maxUploadSize = 8 << 20

type AttachmentHandler struct {
	service attachment.AttachmentService
}

func NewAttachmentHandler(service attachment.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{service: service}
}

func (h *AttachmentHandler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	if header.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is too large"})
		return
	}

	file, err := header.Open()
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	defer file.Close()

	url, err := h.service.Upload(c.Request.Context(), file, header.Filename)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"fileUrl": url})
}
