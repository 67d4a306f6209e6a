package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"job-portal-backend/internal/delivery/http/middleware"
	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(r *gin.RouterGroup, auth *middleware.Authorizer, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}
	owner := auth.RequireOwnerOrAdmin(domain.ResourceUser, "user_id")

	group := r.Group("/users")
	{
		group.GET("", auth.RequireAuthenticated(), handler.List)
		group.GET("/:user_id", owner, handler.Get)
		group.PUT("/:user_id", owner, handler.Update)
		group.DELETE("/:user_id", owner, handler.Delete)
	}
}

type UpdateUserRequest struct {
	Email    *string `json:"email" binding:"omitempty,email,max=255"`
	Name     *string `json:"name" binding:"omitempty,max=255,valid_name,no_emoji"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
}

// List godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Failure      401        {object}  response.Response
// @Router       /users [get]
// @Security     BearerAuth
func (h *UserHandler) List(c *gin.Context) {
	page, pageSize := pageParams(c)
	users, total, err := h.userUC.ListUsers(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Users retrieved", response.Page("users", users, total, page, pageSize))
}

// Get godoc
// @Summary      Get a user
// @Tags         users
// @Produce      json
// @Param        user_id  path      int  true  "User ID"
// @Success      200      {object}  response.Response{data=domain.User}
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /users/{user_id} [get]
// @Security     BearerAuth
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "user_id")
	if !ok {
		return
	}
	user, err := h.userUC.GetUser(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User retrieved", user)
}

// Update godoc
// @Summary      Update a user
// @Description  Change email, name or password. The role cannot be changed.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user_id  path      int                true  "User ID"
// @Param        user     body      UpdateUserRequest  true  "Fields to change"
// @Success      200      {object}  response.Response{data=domain.User}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /users/{user_id} [put]
// @Security     BearerAuth
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "user_id")
	if !ok {
		return
	}
	var req UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userUC.UpdateUser(c.Request.Context(), id, domain.UserUpdate{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User updated", user)
}

// Delete godoc
// @Summary      Delete a user
// @Description  Removes the user with their profile and everything that belongs to it
// @Tags         users
// @Param        user_id  path      int  true  "User ID"
// @Success      200      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /users/{user_id} [delete]
// @Security     BearerAuth
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "user_id")
	if !ok {
		return
	}
	if err := h.userUC.DeleteUser(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User deleted", nil)
}
