package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	resumeUC "github.com/hrahman/profilio/internal/application/usecase/resume"
	"github.com/hrahman/profilio/pkg/apperror"
)

type ResumeHandler struct {
	resumeUseCase *resumeUC.ResumeUseCase
}

func NewResumeHandler(uc *resumeUC.ResumeUseCase) *ResumeHandler {
	return &ResumeHandler{resumeUseCase: uc}
}

// Heading

func (h *ResumeHandler) UpsertHeading(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req HeadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	heading, err := h.resumeUseCase.UpsertHeading(c.Request.Context(), resumeUC.HeadingInput{
		OwnerID:     ownerID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Profession:  req.Profession,
		City:        req.City,
		Country:     req.Country,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, heading)
}

func (h *ResumeHandler) GetHeading(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	heading, err := h.resumeUseCase.GetHeading(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, heading)
}

func (h *ResumeHandler) DeleteHeading(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	if err := h.resumeUseCase.DeleteHeading(c.Request.Context(), ownerID); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Heading deleted successfully"})
}

// Summary

func (h *ResumeHandler) UpsertSummary(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	summary, err := h.resumeUseCase.UpsertSummary(c.Request.Context(), ownerID, req.Content)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ResumeHandler) GetSummary(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	summary, err := h.resumeUseCase.GetSummary(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *ResumeHandler) DeleteSummary(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	if err := h.resumeUseCase.DeleteSummary(c.Request.Context(), ownerID); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Summary deleted successfully"})
}

// Education

func (h *ResumeHandler) CreateEducation(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	education, err := h.resumeUseCase.CreateEducation(c.Request.Context(), educationInput(uuid.Nil, ownerID, req))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, education)
}

func (h *ResumeHandler) ListEducations(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	educations, err := h.resumeUseCase.ListEducations(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, EducationListResponse{Educations: educations})
}

func (h *ResumeHandler) UpdateEducation(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid education ID", err))
		return
	}

	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	education, err := h.resumeUseCase.UpdateEducation(c.Request.Context(), educationInput(id, ownerID, req))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, education)
}

func (h *ResumeHandler) DeleteEducation(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid education ID", err))
		return
	}

	if err := h.resumeUseCase.DeleteEducation(c.Request.Context(), id, ownerID); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Education deleted successfully"})
}

// Experience

func (h *ResumeHandler) CreateExperience(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	experience, err := h.resumeUseCase.CreateExperience(c.Request.Context(), experienceInput(uuid.Nil, ownerID, req))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, experience)
}

func (h *ResumeHandler) ListExperiences(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	experiences, err := h.resumeUseCase.ListExperiences(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ExperienceListResponse{Experiences: experiences})
}

func (h *ResumeHandler) UpdateExperience(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid experience ID", err))
		return
	}

	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	experience, err := h.resumeUseCase.UpdateExperience(c.Request.Context(), experienceInput(id, ownerID, req))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, experience)
}

func (h *ResumeHandler) DeleteExperience(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid experience ID", err))
		return
	}

	if err := h.resumeUseCase.DeleteExperience(c.Request.Context(), id, ownerID); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Experience deleted successfully"})
}

// Skill

func (h *ResumeHandler) CreateSkill(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	skill, err := h.resumeUseCase.CreateSkill(c.Request.Context(), resumeUC.SkillInput{
		OwnerID: ownerID,
		Name:    req.Name,
		Rating:  req.Rating,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, skill)
}

func (h *ResumeHandler) ListSkills(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	skills, err := h.resumeUseCase.ListSkills(c.Request.Context(), ownerID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, SkillListResponse{Skills: skills})
}

func (h *ResumeHandler) UpdateSkill(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid skill ID", err))
		return
	}

	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	skill, err := h.resumeUseCase.UpdateSkill(c.Request.Context(), resumeUC.SkillInput{
		ID:      id,
		OwnerID: ownerID,
		Name:    req.Name,
		Rating:  req.Rating,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, skill)
}

func (h *ResumeHandler) DeleteSkill(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid skill ID", err))
		return
	}

	if err := h.resumeUseCase.DeleteSkill(c.Request.Context(), id, ownerID); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Skill deleted successfully"})
}

func educationInput(id, ownerID uuid.UUID, req EducationRequest) resumeUC.EducationInput {
	return resumeUC.EducationInput{
		ID:              id,
		OwnerID:         ownerID,
		CollegeName:     req.CollegeName,
		CollegeLocation: req.CollegeLocation,
		Degree:          req.Degree,
		FieldOfStudy:    req.FieldOfStudy,
		Grade:           req.Grade,
		GraduationYear:  req.GraduationYear,
	}
}

func experienceInput(id, ownerID uuid.UUID, req ExperienceRequest) resumeUC.ExperienceInput {
	return resumeUC.ExperienceInput{
		ID:              id,
		OwnerID:         ownerID,
		ExperienceType:  req.ExperienceType,
		CompanyName:     req.CompanyName,
		CompanyLocation: req.CompanyLocation,
		Title:           req.Title,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		CurrentlyWork:   req.CurrentlyWork,
	}
}
