package handler

import (
	"net/http"

	"anoa.com/sekolahadmin/internal/modules/academics/dto"
	academics "anoa.com/sekolahadmin/internal/modules/academics/service"
	"anoa.com/sekolahadmin/pkg/response"
	"anoa.com/sekolahadmin/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AcademicsHandler struct {
	service academics.AcademicsService
}

func NewAcademicsHandler(service academics.AcademicsService) *AcademicsHandler {
	return &AcademicsHandler{service: service}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid uuid format"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *AcademicsHandler) GetAllMajors(c *gin.Context) {
	majors, err := h.service.GetAllMajors(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, majors)
}

func (h *AcademicsHandler) CreateMajor(c *gin.Context) {
	var req dto.CreateMajorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, err := h.service.CreateMajor(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *AcademicsHandler) UpdateMajor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch dto.MajorPatch
	if err := validator.DecodeStrict(c.Request.Body, &patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, err := h.service.UpdateMajor(c.Request.Context(), id, patch)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *AcademicsHandler) DeleteMajor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteMajor(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "major deleted successfully"})
}

func (h *AcademicsHandler) GetAllAcademicYears(c *gin.Context) {
	years, err := h.service.GetAllAcademicYears(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, years)
}

func (h *AcademicsHandler) CreateAcademicYear(c *gin.Context) {
	var req dto.CreateAcademicYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, err := h.service.CreateAcademicYear(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *AcademicsHandler) UpdateAcademicYear(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch dto.AcademicYearPatch
	if err := validator.DecodeStrict(c.Request.Body, &patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, err := h.service.UpdateAcademicYear(c.Request.Context(), id, patch)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *AcademicsHandler) DeleteAcademicYear(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteAcademicYear(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "academic year deleted successfully"})
}

func (h *AcademicsHandler) GetAllClasses(c *gin.Context) {
	classes, err := h.service.GetAllClasses(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

func (h *AcademicsHandler) CreateClass(c *gin.Context) {
	var req dto.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, err := h.service.CreateClass(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *AcademicsHandler) UpdateClass(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch dto.ClassPatch
	if err := validator.DecodeStrict(c.Request.Body, &patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, err := h.service.UpdateClass(c.Request.Context(), id, patch)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *AcademicsHandler) DeleteClass(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteClass(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "class deleted successfully"})
}

func (h *AcademicsHandler) GetAllSubjects(c *gin.Context) {
	subjects, err := h.service.GetAllSubjects(c.Request.Context())
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, subjects)
}

func (h *AcademicsHandler) CreateSubject(c *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, err := h.service.CreateSubject(c.Request.Context(), req)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *AcademicsHandler) UpdateSubject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var patch dto.SubjectPatch
	if err := validator.DecodeStrict(c.Request.Body, &patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": validator.FormatValidationError(err)})
		return
	}

	res, err := h.service.UpdateSubject(c.Request.Context(), id, patch)
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *AcademicsHandler) DeleteSubject(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteSubject(c.Request.Context(), id); err != nil {
		response.ResponseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "subject deleted successfully"})
}
