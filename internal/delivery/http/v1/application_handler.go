package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"job-portal-backend/internal/delivery/http/middleware"
	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(r *gin.RouterGroup, auth *middleware.Authorizer, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}
	owner := auth.RequireOwnerOrAdmin(domain.ResourceApplication, "application_id")

	group := r.Group("/applications")
	{
		group.GET("", auth.RequireAuthenticated(), handler.List)
		group.GET("/:application_id", auth.RequireAuthenticated(), handler.Get)
		group.POST("", auth.RequireRole(domain.RoleApplicant), handler.Apply)
		group.PUT("/:application_id", owner, handler.Update)
		group.DELETE("/:application_id", owner, handler.Delete)
	}
}

type ApplyRequest struct {
	JobID  int64  `json:"job_id" binding:"required,gt=0"`
	Status string `json:"status" binding:"application_status"`
}

type UpdateApplicationRequest struct {
	CompanyName *string `json:"company_name" binding:"omitempty,max=255"`
	JobTitle    *string `json:"job_title" binding:"omitempty,max=255"`
	JobURL      *string `json:"job_url" binding:"omitempty,url"`
	Status      *string `json:"status" binding:"omitempty,application_status"`
}

// List godoc
// @Summary      List applications
// @Tags         applications
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) List(c *gin.Context) {
	page, pageSize := pageParams(c)
	apps, total, err := h.applicationUC.ListApplications(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications retrieved", response.Page("applications", apps, total, page, pageSize))
}

// Get godoc
// @Summary      Get an application
// @Tags         applications
// @Produce      json
// @Param        application_id  path      int  true  "Application ID"
// @Success      200             {object}  response.Response{data=domain.JobApplication}
// @Failure      404             {object}  response.Response
// @Router       /applications/{application_id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "application_id")
	if !ok {
		return
	}
	app, err := h.applicationUC.GetApplication(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application retrieved", app)
}

// Apply godoc
// @Summary      Apply for a job
// @Description  Files an application for the caller's applicant profile (applicant accounts only)
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application  body      ApplyRequest  true  "Application JSON"
// @Success      201          {object}  response.Response{data=domain.JobApplication}
// @Failure      400          {object}  response.Response
// @Failure      403          {object}  response.Response
// @Failure      404          {object}  response.Response
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req ApplyRequest
	if !bindJSON(c, &req) {
		return
	}

	app := &domain.JobApplication{JobID: req.JobID, Status: req.Status}
	if err := h.applicationUC.Apply(c.Request.Context(), currentUserID(c), app); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// Update godoc
// @Summary      Update an application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application_id  path      int                       true  "Application ID"
// @Param        application     body      UpdateApplicationRequest  true  "Fields to change"
// @Success      200             {object}  response.Response{data=domain.JobApplication}
// @Failure      400             {object}  response.Response
// @Failure      403             {object}  response.Response
// @Router       /applications/{application_id} [put]
// @Security     BearerAuth
func (h *ApplicationHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "application_id")
	if !ok {
		return
	}
	var req UpdateApplicationRequest
	if !bindJSON(c, &req) {
		return
	}

	app, err := h.applicationUC.UpdateApplication(c.Request.Context(), id, domain.ApplicationUpdate{
		CompanyName: req.CompanyName,
		JobTitle:    req.JobTitle,
		JobURL:      req.JobURL,
		Status:      req.Status,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application updated", app)
}

// Delete godoc
// @Summary      Withdraw an application
// @Tags         applications
// @Param        application_id  path      int  true  "Application ID"
// @Success      200             {object}  response.Response
// @Failure      403             {object}  response.Response
// @Router       /applications/{application_id} [delete]
// @Security     BearerAuth
func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "application_id")
	if !ok {
		return
	}
	if err := h.applicationUC.DeleteApplication(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application deleted", nil)
}
