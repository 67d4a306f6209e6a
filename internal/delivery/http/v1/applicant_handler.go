package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"job-portal-backend/internal/delivery/http/middleware"
	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
)

type ApplicantHandler struct {
	applicantUC   domain.ApplicantUsecase
	applicationUC domain.ApplicationUsecase
	experienceUC  domain.ExperienceUsecase
}

func NewApplicantHandler(r *gin.RouterGroup, auth *middleware.Authorizer, applicantUC domain.ApplicantUsecase, applicationUC domain.ApplicationUsecase, experienceUC domain.ExperienceUsecase) {
	handler := &ApplicantHandler{
		applicantUC:   applicantUC,
		applicationUC: applicationUC,
		experienceUC:  experienceUC,
	}
	owner := auth.RequireOwnerOrAdmin(domain.ResourceApplicant, "applicant_id")

	group := r.Group("/applicants")
	{
		group.GET("", auth.RequireAuthenticated(), handler.List)
		group.GET("/:applicant_id", owner, handler.Get)
		group.PUT("/:applicant_id", owner, handler.Update)
		group.DELETE("/:applicant_id", owner, handler.Delete)
		group.GET("/:applicant_id/applications", owner, handler.ListApplications)
		group.GET("/:applicant_id/experiences", owner, handler.ListExperiences)
	}
}

type UpdateApplicantRequest struct {
	LinkedIn *string `json:"linkedin" binding:"omitempty,url"`
	GitHub   *string `json:"github" binding:"omitempty,url"`
	Resume   *string `json:"resume"`
	Skills   *string `json:"skills"`
}

// List godoc
// @Summary      List applicants
// @Tags         applicants
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /applicants [get]
// @Security     BearerAuth
func (h *ApplicantHandler) List(c *gin.Context) {
	page, pageSize := pageParams(c)
	applicants, total, err := h.applicantUC.ListApplicants(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applicants retrieved", response.Page("applicants", applicants, total, page, pageSize))
}

// Get godoc
// @Summary      Get an applicant
// @Description  Applicant profile with experiences and applications
// @Tags         applicants
// @Produce      json
// @Param        applicant_id  path      int  true  "Applicant ID"
// @Success      200           {object}  response.Response{data=domain.ApplicantDetail}
// @Failure      403           {object}  response.Response
// @Failure      404           {object}  response.Response
// @Router       /applicants/{applicant_id} [get]
// @Security     BearerAuth
func (h *ApplicantHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "applicant_id")
	if !ok {
		return
	}
	detail, err := h.applicantUC.GetApplicant(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applicant retrieved", detail)
}

// Update godoc
// @Summary      Update an applicant profile
// @Tags         applicants
// @Accept       json
// @Produce      json
// @Param        applicant_id  path      int                     true  "Applicant ID"
// @Param        applicant     body      UpdateApplicantRequest  true  "Fields to change"
// @Success      200           {object}  response.Response{data=domain.Applicant}
// @Failure      400           {object}  response.Response
// @Failure      403           {object}  response.Response
// @Router       /applicants/{applicant_id} [put]
// @Security     BearerAuth
func (h *ApplicantHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "applicant_id")
	if !ok {
		return
	}
	var req UpdateApplicantRequest
	if !bindJSON(c, &req) {
		return
	}

	applicant, err := h.applicantUC.UpdateApplicant(c.Request.Context(), id, domain.ApplicantUpdate{
		LinkedIn: req.LinkedIn,
		GitHub:   req.GitHub,
		Resume:   req.Resume,
		Skills:   req.Skills,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applicant updated", applicant)
}

// Delete godoc
// @Summary      Delete an applicant
// @Tags         applicants
// @Param        applicant_id  path      int  true  "Applicant ID"
// @Success      200           {object}  response.Response
// @Failure      403           {object}  response.Response
// @Router       /applicants/{applicant_id} [delete]
// @Security     BearerAuth
func (h *ApplicantHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "applicant_id")
	if !ok {
		return
	}
	if err := h.applicantUC.DeleteApplicant(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applicant deleted", nil)
}

// ListApplications godoc
// @Summary      Applications filed by an applicant
// @Tags         applicants
// @Produce      json
// @Param        applicant_id  path      int  true  "Applicant ID"
// @Success      200           {object}  response.Response{data=[]domain.JobApplication}
// @Router       /applicants/{applicant_id}/applications [get]
// @Security     BearerAuth
func (h *ApplicantHandler) ListApplications(c *gin.Context) {
	id, ok := paramID(c, "applicant_id")
	if !ok {
		return
	}
	apps, err := h.applicationUC.ListByApplicant(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications retrieved", apps)
}

// ListExperiences godoc
// @Summary      Work experience of an applicant
// @Tags         applicants
// @Produce      json
// @Param        applicant_id  path      int  true  "Applicant ID"
// @Success      200           {object}  response.Response{data=[]domain.Experience}
// @Router       /applicants/{applicant_id}/experiences [get]
// @Security     BearerAuth
func (h *ApplicantHandler) ListExperiences(c *gin.Context) {
	id, ok := paramID(c, "applicant_id")
	if !ok {
		return
	}
	experiences, err := h.experienceUC.ListByApplicant(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experiences retrieved", experiences)
}
