package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"job-portal-backend/internal/delivery/http/middleware"
	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
)

type JobHandler struct {
	jobUC    domain.JobUsecase
	searchUC domain.SearchUsecase
}

func NewJobHandler(r *gin.RouterGroup, auth *middleware.Authorizer, jobUC domain.JobUsecase, searchUC domain.SearchUsecase) {
	handler := &JobHandler{jobUC: jobUC, searchUC: searchUC}
	owner := auth.RequireOwnerOrAdmin(domain.ResourceJob, "job_id")

	group := r.Group("/jobs")
	{
		// PUBLIC routes
		group.GET("", handler.List)
		group.GET("/search", handler.Search)
		group.GET("/:job_id", handler.GetDetails)

		group.POST("", auth.RequireRole(domain.RoleCompany), handler.Create)
		group.PUT("/:job_id", owner, handler.Update)
		group.DELETE("/:job_id", owner, handler.Delete)
	}
}

type CreateJobRequest struct {
	Title          string `json:"title" binding:"required,max=255"`
	Description    string `json:"description" binding:"required"`
	Location       string `json:"location" binding:"required,max=255"`
	ApplicationURL string `json:"application_url" binding:"omitempty,url"`
	Salary         string `json:"salary"`
	Skills         string `json:"skills"`
	Status         string `json:"status" binding:"job_status"`
	JobType        string `json:"job_type" binding:"job_type"`
}

type UpdateJobRequest struct {
	Title          *string `json:"title" binding:"omitempty,max=255"`
	Description    *string `json:"description"`
	Location       *string `json:"location" binding:"omitempty,max=255"`
	ApplicationURL *string `json:"application_url" binding:"omitempty,url"`
	Salary         *string `json:"salary"`
	Skills         *string `json:"skills"`
	Status         *string `json:"status" binding:"omitempty,job_status"`
	JobType        *string `json:"job_type" binding:"omitempty,job_type"`
}

// List godoc
// @Summary      List jobs
// @Description  Jobs with their company, newest first
// @Tags         jobs
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	page, pageSize := pageParams(c)
	jobs, total, err := h.jobUC.ListJobsWithCompany(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs retrieved", response.Page("jobs", jobs, total, page, pageSize))
}

// Search godoc
// @Summary      Search jobs
// @Description  Full text search over title, description and skills. Results are ordered by relevance; a blank query returns an empty list.
// @Tags         jobs
// @Produce      json
// @Param        q    query     string  false  "Search text"
// @Success      200  {object}  response.Response{data=[]domain.JobWithCompany}
// @Failure      503  {object}  response.Response
// @Router       /jobs/search [get]
func (h *JobHandler) Search(c *gin.Context) {
	jobs, err := h.searchUC.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Search results", jobs)
}

// GetDetails godoc
// @Summary      Get a job
// @Tags         jobs
// @Produce      json
// @Param        job_id  path      int  true  "Job ID"
// @Success      200     {object}  response.Response{data=domain.JobWithCompany}
// @Failure      404     {object}  response.Response
// @Router       /jobs/{job_id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, ok := paramID(c, "job_id")
	if !ok {
		return
	}
	job, err := h.jobUC.GetJobDetailsWithCompany(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job retrieved", job)
}

// Create godoc
// @Summary      Create a new job
// @Description  Post a job for the caller's own company (company accounts only)
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response{data=domain.Job}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if !bindJSON(c, &req) {
		return
	}

	job := &domain.Job{
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		ApplicationURL: req.ApplicationURL,
		Salary:         req.Salary,
		Skills:         req.Skills,
		Status:         req.Status,
		JobType:        req.JobType,
	}
	if err := h.jobUC.CreateJob(c.Request.Context(), currentUserID(c), job); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job created successfully", job)
}

// Update godoc
// @Summary      Update a job
// @Description  Partial update; omitted fields keep their value
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job_id  path      int               true  "Job ID"
// @Param        job     body      UpdateJobRequest  true  "Fields to change"
// @Success      200     {object}  response.Response{data=domain.Job}
// @Failure      400     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /jobs/{job_id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "job_id")
	if !ok {
		return
	}
	var req UpdateJobRequest
	if !bindJSON(c, &req) {
		return
	}

	job, err := h.jobUC.UpdateJob(c.Request.Context(), id, domain.JobPatch{
		Title:          req.Title,
		Description:    req.Description,
		Location:       req.Location,
		ApplicationURL: req.ApplicationURL,
		Salary:         req.Salary,
		Skills:         req.Skills,
		Status:         req.Status,
		JobType:        req.JobType,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job updated successfully", job)
}

// Delete godoc
// @Summary      Delete a job
// @Tags         jobs
// @Param        job_id  path      int  true  "Job ID"
// @Success      200     {object}  response.Response
// @Failure      403     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Router       /jobs/{job_id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "job_id")
	if !ok {
		return
	}
	if err := h.jobUC.DeleteJob(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job deleted successfully", nil)
}
