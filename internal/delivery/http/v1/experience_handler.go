package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"job-portal-backend/internal/delivery/http/middleware"
	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
)

type ExperienceHandler struct {
	experienceUC domain.ExperienceUsecase
}

func NewExperienceHandler(r *gin.RouterGroup, auth *middleware.Authorizer, experienceUC domain.ExperienceUsecase) {
	handler := &ExperienceHandler{experienceUC: experienceUC}
	owner := auth.RequireOwnerOrAdmin(domain.ResourceExperience, "experience_id")

	group := r.Group("/experiences")
	{
		group.GET("", auth.RequireAuthenticated(), handler.List)
		// applicant_id comes from the query string
		group.POST("", auth.RequireOwnerOrAdmin(domain.ResourceApplicant, "applicant_id"), handler.Create)
		group.PUT("/:experience_id", owner, handler.Update)
		group.DELETE("/:experience_id", owner, handler.Delete)
	}
}

type CreateExperienceRequest struct {
	CompanyName string  `json:"company_name" binding:"required,max=255"`
	JobTitle    string  `json:"job_title" binding:"required,max=255"`
	StartDate   string  `json:"start_date" binding:"required,iso_date"`
	EndDate     *string `json:"end_date" binding:"omitempty,iso_date"`
	Description string  `json:"description"`
	Skills      string  `json:"skills"`
}

type UpdateExperienceRequest struct {
	CompanyName *string `json:"company_name" binding:"omitempty,max=255"`
	JobTitle    *string `json:"job_title" binding:"omitempty,max=255"`
	StartDate   *string `json:"start_date" binding:"omitempty,iso_date"`
	EndDate     *string `json:"end_date" binding:"omitempty,iso_date"`
	Description *string `json:"description"`
	Skills      *string `json:"skills"`
}

// List godoc
// @Summary      List an applicant's experience
// @Tags         experiences
// @Produce      json
// @Param        applicant_id  query     int  true  "Applicant ID"
// @Success      200           {object}  response.Response{data=[]domain.Experience}
// @Failure      400           {object}  response.Response
// @Router       /experiences [get]
// @Security     BearerAuth
func (h *ExperienceHandler) List(c *gin.Context) {
	applicantID, ok := paramID(c, "applicant_id")
	if !ok {
		return
	}
	experiences, err := h.experienceUC.ListByApplicant(c.Request.Context(), applicantID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experiences retrieved", experiences)
}

// Create godoc
// @Summary      Add work experience
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Param        applicant_id  query     int                      true  "Applicant ID"
// @Param        experience    body      CreateExperienceRequest  true  "Experience JSON"
// @Success      201           {object}  response.Response{data=domain.Experience}
// @Failure      400           {object}  response.Response
// @Failure      403           {object}  response.Response
// @Router       /experiences [post]
// @Security     BearerAuth
func (h *ExperienceHandler) Create(c *gin.Context) {
	applicantID, ok := paramID(c, "applicant_id")
	if !ok {
		return
	}
	var req CreateExperienceRequest
	if !bindJSON(c, &req) {
		return
	}

	exp := &domain.Experience{
		CompanyName: req.CompanyName,
		JobTitle:    req.JobTitle,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
		Skills:      req.Skills,
	}
	if err := h.experienceUC.CreateExperience(c.Request.Context(), applicantID, exp); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Experience added", exp)
}

// Update godoc
// @Summary      Update work experience
// @Description  An empty end_date marks the position as current
// @Tags         experiences
// @Accept       json
// @Produce      json
// @Param        experience_id  path      int                      true  "Experience ID"
// @Param        experience     body      UpdateExperienceRequest  true  "Fields to change"
// @Success      200            {object}  response.Response{data=domain.Experience}
// @Failure      400            {object}  response.Response
// @Failure      403            {object}  response.Response
// @Router       /experiences/{experience_id} [put]
// @Security     BearerAuth
func (h *ExperienceHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "experience_id")
	if !ok {
		return
	}
	var req UpdateExperienceRequest
	if !bindJSON(c, &req) {
		return
	}

	exp, err := h.experienceUC.UpdateExperience(c.Request.Context(), id, domain.ExperienceUpdate{
		CompanyName: req.CompanyName,
		JobTitle:    req.JobTitle,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Description: req.Description,
		Skills:      req.Skills,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience updated", exp)
}

// Delete godoc
// @Summary      Delete work experience
// @Tags         experiences
// @Param        experience_id  path      int  true  "Experience ID"
// @Success      200            {object}  response.Response
// @Failure      403            {object}  response.Response
// @Router       /experiences/{experience_id} [delete]
// @Security     BearerAuth
func (h *ExperienceHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "experience_id")
	if !ok {
		return
	}
	if err := h.experienceUC.DeleteExperience(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience deleted", nil)
}
