package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"job-portal-backend/config"
	"job-portal-backend/internal/delivery/http/middleware"
	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/metrics"
	"job-portal-backend/pkg/security"
	"job-portal-backend/pkg/token"
	"job-portal-backend/pkg/validation"
)

// HealthChecker reports per-dependency status and whether all of them are up.
type HealthChecker interface {
	Check(ctx context.Context) (map[string]string, bool)
}

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	UserUC        domain.UserUsecase
	ApplicantUC   domain.ApplicantUsecase
	CompanyUC     domain.CompanyUsecase
	JobUC         domain.JobUsecase
	ExperienceUC  domain.ExperienceUsecase
	ApplicationUC domain.ApplicationUsecase
	SearchUC      domain.SearchUsecase
	Health        HealthChecker

	Tokens         *token.Service
	Owners         middleware.OwnerResolver
	Metrics        metrics.Recorder
	Gatherer       prometheus.Gatherer // nil disables /metrics
	SecurityLogger *security.SecurityLogger
	LoginTracker   *security.LoginTracker
	Redis          *goredis.Client // nil falls back to in-memory rate limiting
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Metrics == nil {
		deps.Metrics = metrics.Nop{}
	}
	if deps.SecurityLogger == nil {
		deps.SecurityLogger = security.Nop()
	}
	if deps.LoginTracker == nil {
		deps.LoginTracker = security.NewLoginTracker(nil, security.DefaultLoginTrackerConfig(), deps.SecurityLogger)
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	cfg := deps.Config
	isProduction := cfg.Environment == "production"
	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second
	limiter := middleware.NewRateLimiter(deps.Redis, deps.SecurityLogger)

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware([]string{cfg.FrontendURL}, !isProduction)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(isProduction))
	r.Use(middleware.ErrorHandler())

	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler(deps.Gatherer)))
	}

	v1 := r.Group("/v1")
	v1.Use(limiter.Middleware(middleware.DefaultRateLimitConfig(cfg.RateLimitGlobalThreshold, window)))

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		if deps.Health == nil {
			response.Success(c, http.StatusOK, "System operational", nil)
			return
		}
		status, ok := deps.Health.Check(c.Request.Context())
		if !ok {
			response.Error(c, http.StatusServiceUnavailable, "System degraded", status)
			return
		}
		response.Success(c, http.StatusOK, "System operational", status)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	auth := middleware.NewAuthorizer(deps.Tokens, deps.AuthUC, deps.Owners, deps.Metrics, deps.SecurityLogger)
	authLimit := limiter.Middleware(middleware.AuthRateLimitConfig(cfg.RateLimitLoginThreshold, window))

	NewAuthHandler(v1, auth, authLimit, deps.AuthUC, deps.LoginTracker, deps.SecurityLogger, deps.Metrics)
	NewUserHandler(v1, auth, deps.UserUC)
	NewApplicantHandler(v1, auth, deps.ApplicantUC, deps.ApplicationUC, deps.ExperienceUC)
	NewCompanyHandler(v1, auth, deps.CompanyUC, deps.JobUC)
	NewJobHandler(v1, auth, deps.JobUC, deps.SearchUC)
	NewExperienceHandler(v1, auth, deps.ExperienceUC)
	NewApplicationHandler(v1, auth, deps.ApplicationUC)

	return r
}
