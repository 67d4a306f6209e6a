package v1

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"job-portal-backend/internal/delivery/http/middleware"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/validation"
)

// paramID parses a positive int64 path parameter, falling back to the query string.
func paramID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	if raw == "" {
		raw = c.Query(name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.Error(apperror.BadRequest("Invalid " + name))
		return 0, false
	}
	return id, true
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return page, pageSize
}

// bindJSON binds the body and reports validation failures as a 400.
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.Error(apperror.BadRequest(validation.Message(err)))
		return false
	}
	return true
}

func currentUserID(c *gin.Context) int64 {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return 0
	}
	return user.ID
}
