package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"job-portal-backend/internal/delivery/http/middleware"
	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/apperror"
	"job-portal-backend/pkg/logger"
	"job-portal-backend/pkg/metrics"
	"job-portal-backend/pkg/security"
)

type AuthHandler struct {
	authUC  domain.AuthUsecase
	tracker *security.LoginTracker
	secLog  *security.SecurityLogger
	metrics metrics.Recorder
}

func NewAuthHandler(r *gin.RouterGroup, auth *middleware.Authorizer, limit gin.HandlerFunc, authUC domain.AuthUsecase, tracker *security.LoginTracker, secLog *security.SecurityLogger, rec metrics.Recorder) {
	handler := &AuthHandler{
		authUC:  authUC,
		tracker: tracker,
		secLog:  secLog,
		metrics: rec,
	}

	group := r.Group("/auth")
	{
		group.POST("/register", limit, handler.Register)
		group.POST("/login", limit, handler.Login)
		group.GET("/profile", auth.RequireAuthenticated(), handler.Profile)
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required,oneof=applicant company"`
	Name     string `json:"name" binding:"required,max=255,valid_name,no_emoji"`
	// Applicant profile
	LinkedIn string `json:"linkedin" binding:"omitempty,url"`
	GitHub   string `json:"github" binding:"omitempty,url"`
	Resume   string `json:"resume"`
	Skills   string `json:"skills"`
	// Company profile
	CompanyName string `json:"company_name" binding:"omitempty,max=255,no_emoji"`
	Industry    string `json:"industry" binding:"max=255"`
	Brief       string `json:"brief"`
	Website     string `json:"website" binding:"omitempty,url"`
	Logo        string `json:"logo"`
}

// Register godoc
// @Summary      User Registration
// @Description  Register an applicant or company account. The role profile is created in the same transaction.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Registration Details"
// @Success      201       {object}  response.Response{data=domain.AuthResult}
// @Failure      400       {object}  response.Response
// @Failure      409       {object}  response.Response
// @Failure      429       {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.authUC.Register(c.Request.Context(), domain.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		Role:        req.Role,
		Name:        req.Name,
		LinkedIn:    req.LinkedIn,
		GitHub:      req.GitHub,
		Resume:      req.Resume,
		Skills:      req.Skills,
		CompanyName: req.CompanyName,
		Industry:    req.Industry,
		Brief:       req.Brief,
		Website:     req.Website,
		Logo:        req.Logo,
	})
	if err != nil {
		c.Error(err)
		return
	}

	h.secLog.Log(c.Request.Context(), security.Event{
		Type:         security.EventRegistered,
		SubjectType:  "user_id",
		SubjectValue: strconv.FormatInt(res.User.ID, 10),
		IP:           c.ClientIP(),
		RequestID:    response.RequestID(c),
	})
	response.Success(c, http.StatusCreated, "Registration successful", res)
}

// Login godoc
// @Summary      User Login
// @Description  Exchange email and password for a bearer token. Repeated failures block the account temporarily.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Credentials"
// @Success      200    {object}  response.Response{data=domain.AuthResult}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      429    {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	ip := c.ClientIP()
	requestID := response.RequestID(c)

	blocked, err := h.tracker.IsBlocked(ctx, req.Email)
	if err != nil {
		logger.Log.Warn("login tracker unavailable", "error", err)
	}
	if blocked {
		h.secLog.LogLoginBlocked(ctx, req.Email, ip, requestID)
		h.metrics.RecordAuthFailure("login_blocked")
		c.Error(apperror.New(http.StatusTooManyRequests, "Too many failed login attempts. Please try again later.", nil))
		return
	}

	res, err := h.authUC.Login(ctx, req.Email, req.Password)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusUnauthorized {
			h.metrics.RecordAuthFailure("invalid_credentials")
			if _, terr := h.tracker.RecordFailedAttempt(ctx, req.Email, ip, requestID); terr != nil {
				logger.Log.Warn("failed to record login attempt", "error", terr)
			}
		}
		c.Error(err)
		return
	}

	if err := h.tracker.ClearAttempts(ctx, req.Email); err != nil {
		logger.Log.Warn("failed to clear login attempts", "error", err)
	}
	h.secLog.Log(ctx, security.Event{
		Type:         security.EventLoginSuccess,
		SubjectType:  "user_id",
		SubjectValue: strconv.FormatInt(res.User.ID, 10),
		IP:           ip,
		RequestID:    requestID,
	})
	response.Success(c, http.StatusOK, "Login successful", res)
}

// Profile godoc
// @Summary      Current user profile
// @Description  The authenticated user with their applicant or company profile fields
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.UserProfile}
// @Failure      401  {object}  response.Response
// @Router       /auth/profile [get]
// @Security     BearerAuth
func (h *AuthHandler) Profile(c *gin.Context) {
	profile, err := h.authUC.Profile(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User profile", profile)
}
