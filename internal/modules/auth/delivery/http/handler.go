package handler

import (
	"net/http"

	"anoa.com/sekolahadmin/internal/modules/auth/dto"
	auth "anoa.com/sekolahadmin/internal/modules/auth/service"
	"anoa.com/sekolahadmin/pkg/response"
	"anoa.com/sekolahadmin/pkg/validator"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service auth.AuthService
}

func NewAuthHandler(service auth.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}
