package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Search engine identifiers accepted by SEARCH_ENGINE
const (
	SearchEngineElasticsearch = "elasticsearch"
	SearchEngineMeilisearch   = "meilisearch"
)

type Config struct {
	Port          string
	Environment   string
	DBUrl         string
	RunMigrations bool
	FrontendURL   string
	// Token Configuration
	JWTSecret string
	JWTIssuer string
	JWTTTL    time.Duration
	// Password hashing
	BcryptCost int
	// Search Configuration
	SearchEngine          string
	SearchIndex           string
	ElasticsearchURLs     []string
	ElasticsearchUsername string
	ElasticsearchPassword string
	MeilisearchHost       string
	MeilisearchAPIKey     string
	MeilisearchTaskPoll   time.Duration
	// Index Sync Configuration
	SyncWorkers       int
	SyncQueueSize     int
	SyncBatchSize     int
	SyncPollInterval  time.Duration
	SyncMaxRetries    int
	SyncRetryDelay    time.Duration
	SyncTaskTimeout   time.Duration
	ReconcileInterval time.Duration
	// Redis Configuration
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitLoginThreshold  int
	RateLimitGlobalThreshold int
	FailedLoginBlockMinutes  int
	FailedLoginMaxAttempts   int
}

func LoadConfig() (*Config, error) {
	// .env is only present in local development
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Environment:   getEnv("APP_ENV", "development"),
		DBUrl:         getEnv("DATABASE_URL", ""),
		RunMigrations: getEnvBool("RUN_MIGRATIONS", true),
		FrontendURL:   strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// Token Configuration
		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTIssuer: getEnv("JWT_ISSUER", "job-portal-backend"),
		JWTTTL:    getEnvDuration("JWT_TTL", 7*24*time.Hour),
		// Password hashing
		BcryptCost: getEnvInt("BCRYPT_COST", 10),
		// Search Configuration
		SearchEngine:          strings.ToLower(getEnv("SEARCH_ENGINE", SearchEngineElasticsearch)),
		SearchIndex:           getEnv("SEARCH_INDEX", "jobs"),
		ElasticsearchURLs:     getEnvList("ELASTICSEARCH_URLS", []string{"http://localhost:9200"}),
		ElasticsearchUsername: getEnv("ELASTICSEARCH_USERNAME", ""),
		ElasticsearchPassword: getEnv("ELASTICSEARCH_PASSWORD", ""),
		MeilisearchHost:       strings.TrimRight(getEnv("MEILISEARCH_HOST", "http://localhost:7700"), "/"),
		MeilisearchAPIKey:     getEnv("MEILISEARCH_API_KEY", ""),
		MeilisearchTaskPoll:   getEnvDuration("MEILISEARCH_TASK_INTERVAL", 50*time.Millisecond),
		// Index Sync Configuration
		SyncWorkers:       getEnvInt("SYNC_WORKERS", 4),
		SyncQueueSize:     getEnvInt("SYNC_QUEUE_SIZE", 256),
		SyncBatchSize:     getEnvInt("SYNC_BATCH_SIZE", 50),
		SyncPollInterval:  getEnvDuration("SYNC_POLL_INTERVAL", time.Second),
		SyncMaxRetries:    getEnvInt("SYNC_MAX_RETRIES", 3),
		SyncRetryDelay:    getEnvDuration("SYNC_RETRY_DELAY", 60*time.Second),
		SyncTaskTimeout:   getEnvDuration("SYNC_TASK_TIMEOUT", 30*time.Second),
		ReconcileInterval: getEnvDuration("RECONCILE_INTERVAL", 15*time.Minute),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitLoginThreshold:  getEnvInt("RATE_LIMIT_LOGIN_THRESHOLD", 10),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		FailedLoginBlockMinutes:  getEnvInt("FAILED_LOGIN_BLOCK_MINUTES", 15),
		FailedLoginMaxAttempts:   getEnvInt("FAILED_LOGIN_MAX_ATTEMPTS", 5),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, cfg.Validate()
}

// Validate rejects configurations the server cannot run safely with.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("config: JWT_SECRET is required")
	}
	if c.JWTTTL <= 0 {
		return errors.New("config: JWT_TTL must be positive")
	}
	switch c.SearchEngine {
	case SearchEngineElasticsearch, SearchEngineMeilisearch:
	default:
		return errors.New("config: SEARCH_ENGINE must be elasticsearch or meilisearch")
	}
	if c.SyncMaxRetries < 0 {
		return errors.New("config: SYNC_MAX_RETRIES must not be negative")
	}
	if c.SyncRetryDelay < 0 {
		return errors.New("config: SYNC_RETRY_DELAY must not be negative")
	}
	if c.SyncPollInterval <= 0 {
		return errors.New("config: SYNC_POLL_INTERVAL must be positive")
	}
	if c.ReconcileInterval <= 0 {
		return errors.New("config: RECONCILE_INTERVAL must be positive")
	}
	if c.SearchEngine == SearchEngineMeilisearch && c.MeilisearchTaskPoll <= 0 {
		return errors.New("config: MEILISEARCH_TASK_INTERVAL must be positive")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvDuration accepts Go duration syntax ("90s", "15m") or a bare number of seconds
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping empty entries
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
