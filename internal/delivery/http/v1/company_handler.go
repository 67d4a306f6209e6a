package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"job-portal-backend/internal/delivery/http/middleware"
	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
	jobUC     domain.JobUsecase
}

func NewCompanyHandler(r *gin.RouterGroup, auth *middleware.Authorizer, companyUC domain.CompanyUsecase, jobUC domain.JobUsecase) {
	handler := &CompanyHandler{companyUC: companyUC, jobUC: jobUC}
	owner := auth.RequireOwnerOrAdmin(domain.ResourceCompany, "company_id")

	// Company listings are public; changes need the owning account
	group := r.Group("/companies")
	{
		group.GET("", handler.List)
		group.GET("/:company_id", handler.Get)
		group.PUT("/:company_id", owner, handler.Update)
		group.DELETE("/:company_id", owner, handler.Delete)
		group.GET("/:company_id/jobs", auth.RequireAuthenticated(), handler.ListJobs)
	}
}

type UpdateCompanyRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=255,no_emoji"`
	Industry *string `json:"industry" binding:"omitempty,max=255"`
	Logo     *string `json:"logo"`
	Brief    *string `json:"brief"`
	Website  *string `json:"website" binding:"omitempty,url"`
}

// List godoc
// @Summary      List companies
// @Tags         companies
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /companies [get]
func (h *CompanyHandler) List(c *gin.Context) {
	page, pageSize := pageParams(c)
	companies, total, err := h.companyUC.ListCompanies(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Companies retrieved", response.Page("companies", companies, total, page, pageSize))
}

// Get godoc
// @Summary      Get a company
// @Tags         companies
// @Produce      json
// @Param        company_id  path      int  true  "Company ID"
// @Success      200         {object}  response.Response{data=domain.Company}
// @Failure      404         {object}  response.Response
// @Router       /companies/{company_id} [get]
func (h *CompanyHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "company_id")
	if !ok {
		return
	}
	company, err := h.companyUC.GetCompany(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company retrieved", company)
}

// Update godoc
// @Summary      Update a company profile
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        company_id  path      int                   true  "Company ID"
// @Param        company     body      UpdateCompanyRequest  true  "Fields to change"
// @Success      200         {object}  response.Response{data=domain.Company}
// @Failure      400         {object}  response.Response
// @Failure      403         {object}  response.Response
// @Router       /companies/{company_id} [put]
// @Security     BearerAuth
func (h *CompanyHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "company_id")
	if !ok {
		return
	}
	var req UpdateCompanyRequest
	if !bindJSON(c, &req) {
		return
	}

	company, err := h.companyUC.UpdateCompany(c.Request.Context(), id, domain.CompanyUpdate{
		Name:     req.Name,
		Industry: req.Industry,
		Logo:     req.Logo,
		Brief:    req.Brief,
		Website:  req.Website,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company updated", company)
}

// Delete godoc
// @Summary      Delete a company
// @Description  Removes the company and all of its jobs
// @Tags         companies
// @Param        company_id  path      int  true  "Company ID"
// @Success      200         {object}  response.Response
// @Failure      403         {object}  response.Response
// @Router       /companies/{company_id} [delete]
// @Security     BearerAuth
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "company_id")
	if !ok {
		return
	}
	if err := h.companyUC.DeleteCompany(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company deleted", nil)
}

// ListJobs godoc
// @Summary      Jobs posted by a company
// @Tags         companies
// @Produce      json
// @Param        company_id  path      int  true   "Company ID"
// @Param        page        query     int  false  "Page number"
// @Param        page_size   query     int  false  "Page size"
// @Success      200         {object}  response.Response
// @Failure      404         {object}  response.Response
// @Router       /companies/{company_id}/jobs [get]
// @Security     BearerAuth
func (h *CompanyHandler) ListJobs(c *gin.Context) {
	id, ok := paramID(c, "company_id")
	if !ok {
		return
	}
	page, pageSize := pageParams(c)
	jobs, total, err := h.jobUC.ListJobsByCompany(c.Request.Context(), id, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Jobs retrieved", response.Page("jobs", jobs, total, page, pageSize))
}
