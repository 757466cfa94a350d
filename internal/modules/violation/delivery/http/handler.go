package handler

import (
	"net/http"

	"anoa.com/sekolahadmin/internal/modules/violation/dto"
	violation "anoa.com/sekolahadmin/internal/modules/violation/service"
	"anoa.com/sekolahadmin/pkg/response"
	"anoa.com/sekolahadmin/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ViolationHandler struct {
	service violation.ViolationService
}

func NewViolationHandler(service violation.ViolationService) *ViolationHandler {
	return &ViolationHandler{service: service}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid uuid format"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *ViolationHandler) GetAllTypes(c *gin.Context) {
	types, err := h.service.GetAllTypes(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *ViolationHandler) CreateType(c *gin.Context) {
	var req dto.CreateViolationTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, err := h.service.CreateType(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *ViolationHandler) UpdateType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch dto.ViolationTypePatch
	if err := validator.DecodeStrict(c.Request.Body, &patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, err := h.service.UpdateType(c.Request.Context(), id, patch)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ViolationHandler) DeleteType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteType(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "violation type deleted successfully"})
}

func (h *ViolationHandler) GetAllViolations(c *gin.Context) {
	violations, err := h.service.GetAllViolations(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, violations)
}

func (h *ViolationHandler) CreateViolation(c *gin.Context) {
	var req dto.CreateViolationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, err := h.service.CreateViolation(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *ViolationHandler) UpdateViolation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch dto.ViolationPatch
	if err := validator.DecodeStrict(c.Request.Body, &patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, err := h.service.UpdateViolation(c.Request.Context(), id, patch)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ViolationHandler) DeleteViolation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteViolation(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "violation deleted successfully"})
}
