package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	goredis "github.com/redis/go-redis/v9"

	"job-portal-backend/config"
	_ "job-portal-backend/docs" // Important for Swagger
	v1 "job-portal-backend/internal/delivery/http/v1"
	"job-portal-backend/internal/indexsync"
	"job-portal-backend/internal/ownership"
	"job-portal-backend/internal/repository/postgres"
	"job-portal-backend/internal/repository/search"
	"job-portal-backend/internal/usecase"
	"job-portal-backend/pkg/database"
	"job-portal-backend/pkg/logger"
	"job-portal-backend/pkg/metrics"
	"job-portal-backend/pkg/password"
	"job-portal-backend/pkg/redis"
	"job-portal-backend/pkg/security"
	"job-portal-backend/pkg/token"
)

//go:generate swag init -d ../../ -g cmd/api/main.go -o ../../docs

// @title           Job Portal API
// @version         1.0
// @description     Job board backend: accounts, company and applicant profiles, jobs, applications and full-text job search.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job portal backend", "port", cfg.Port, "search_engine", cfg.SearchEngine)
	secLog := security.NewSecurityLogger("job-portal-backend", cfg.Environment)
	defer func() { _ = secLog.Sync() }()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// 3. Setup Database
	if cfg.RunMigrations {
		if err := database.RunMigrations(cfg.DBUrl); err != nil {
			logger.Log.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
	}
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional)
	var redisClient *goredis.Client
	if cfg.RedisURL != "" {
		redisClient, err = redis.Connect(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
		if err != nil {
			logger.Log.Warn("Redis unavailable, falling back to in-memory rate limiting", "error", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	// 5. Setup Search Index
	index, err := search.NewIndex(cfg)
	if err != nil {
		logger.Log.Error("Failed to create search index client", "error", err)
		os.Exit(1)
	}
	if err := index.EnsureIndex(ctx); err != nil {
		// Reconciliation fills the index once the engine is reachable
		logger.Log.Warn("Search index not ready", "error", err)
	}

	// 6. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	applicantRepo := postgres.NewApplicantRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	experienceRepo := postgres.NewExperienceRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	syncTaskRepo := postgres.NewSyncTaskRepository(dbPool)
	ownershipRepo := postgres.NewOwnershipRepository(dbPool)

	// 7. Setup Credentials
	hasher := password.NewHasher(cfg.BcryptCost)
	tokens, err := token.NewService(token.Config{
		Secret: cfg.JWTSecret,
		Issuer: cfg.JWTIssuer,
		TTL:    cfg.JWTTTL,
	})
	if err != nil {
		logger.Log.Error("Failed to create token service", "error", err)
		os.Exit(1)
	}

	// 8. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo, applicantRepo, companyRepo, hasher, tokens)
	userUC := usecase.NewUserUsecase(userRepo, hasher)
	applicantUC := usecase.NewApplicantUsecase(applicantRepo, experienceRepo, applicationRepo)
	companyUC := usecase.NewCompanyUsecase(companyRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, companyRepo)
	experienceUC := usecase.NewExperienceUsecase(experienceRepo, applicantRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, applicantRepo, jobRepo)
	searchUC := usecase.NewSearchUsecase(index, jobRepo, usecase.DefaultSearchLimit)
	healthUC := usecase.NewHealthUsecase(map[string]usecase.Probe{
		"database": dbPool.Ping,
		"redis": func(ctx context.Context) error {
			if redisClient == nil {
				return nil
			}
			return redis.HealthCheck(ctx, redisClient)
		},
		"search": func(ctx context.Context) error {
			_, err := index.Search(ctx, "health", 1)
			return err
		},
	})

	// 9. Setup Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewCollector(registry)

	// 10. Start Search Sync
	pool, err := indexsync.NewPool(indexsync.PoolConfig{
		MaxWorkers:  cfg.SyncWorkers,
		QueueSize:   cfg.SyncQueueSize,
		TaskTimeout: cfg.SyncTaskTimeout,
	})
	if err != nil {
		logger.Log.Error("Invalid sync pool configuration", "error", err)
		os.Exit(1)
	}
	pool.Start()

	synchronizer := indexsync.NewSynchronizer(syncTaskRepo, jobRepo, index, indexsync.Options{
		Retry:   &indexsync.RetryPolicy{MaxRetries: cfg.SyncMaxRetries, Delay: cfg.SyncRetryDelay},
		Metrics: recorder,
		OpsLog:  secLog,
		Logger:  logger.Log,
	})
	dispatcher := indexsync.NewDispatcher(synchronizer, pool, cfg.SyncPollInterval, cfg.SyncBatchSize, logger.Log)
	reconciler := indexsync.NewReconciler(jobRepo, index, syncTaskRepo, recorder, logger.Log)

	go dispatcher.Run(ctx)
	go reconciler.Start(ctx, cfg.ReconcileInterval)

	// 11. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:         authUC,
		UserUC:         userUC,
		ApplicantUC:    applicantUC,
		CompanyUC:      companyUC,
		JobUC:          jobUC,
		ExperienceUC:   experienceUC,
		ApplicationUC:  applicationUC,
		SearchUC:       searchUC,
		Health:         healthUC,
		Tokens:         tokens,
		Owners:         ownership.NewResolver(ownershipRepo),
		Metrics:        recorder,
		Gatherer:       registry,
		SecurityLogger: secLog,
		LoginTracker: security.NewLoginTracker(redisClient, security.LoginTrackerConfig{
			MaxAttempts:   cfg.FailedLoginMaxAttempts,
			AttemptWindow: time.Duration(cfg.FailedLoginBlockMinutes) * time.Minute,
			BlockDuration: time.Duration(cfg.FailedLoginBlockMinutes) * time.Minute,
		}, secLog),
		Redis:  redisClient,
		Config: cfg,
	})

	// 12. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	// Stop claiming new sync tasks, then let in-flight ones finish
	stop()
	pool.Stop(shutdownCtx)

	logger.Log.Info("Server exiting")
}
