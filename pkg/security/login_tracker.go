package security

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// LoginTrackerConfig holds configuration for login tracking
type LoginTrackerConfig struct {
	MaxAttempts   int           // failed attempts before block
	AttemptWindow time.Duration // window the failure counter lives for
	BlockDuration time.Duration // how long a block lasts
}

// DefaultLoginTrackerConfig returns sensible defaults
func DefaultLoginTrackerConfig() LoginTrackerConfig {
	return LoginTrackerConfig{
		MaxAttempts:   5,
		AttemptWindow: 15 * time.Minute,
		BlockDuration: 15 * time.Minute,
	}
}

// LoginTracker counts failed logins per email in Redis and blocks after too many.
// With a nil client every check passes.
type LoginTracker struct {
	client *goredis.Client
	config LoginTrackerConfig
	logger *SecurityLogger
}

func NewLoginTracker(client *goredis.Client, config LoginTrackerConfig, logger *SecurityLogger) *LoginTracker {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = DefaultLoginTrackerConfig().MaxAttempts
	}
	if logger == nil {
		logger = Nop()
	}
	return &LoginTracker{client: client, config: config, logger: logger}
}

// Redis key patterns
const (
	failLoginUserPrefix    = "fail:login:user:"
	blockedLoginUserPrefix = "blocked:login:user:"
)

// Atomic increment that sets the TTL on first increment.
// KEYS[1] = counter key, ARGV[1] = TTL in seconds
const incrWithTTLScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return count
`

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// IsBlocked reports whether logins for email are currently refused.
func (lt *LoginTracker) IsBlocked(ctx context.Context, email string) (bool, error) {
	if lt.client == nil {
		return false, nil
	}
	exists, err := lt.client.Exists(ctx, blockedLoginUserPrefix+normalize(email)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check user block: %w", err)
	}
	return exists > 0, nil
}

// RecordFailedAttempt counts a failure and creates a block once MaxAttempts is reached.
func (lt *LoginTracker) RecordFailedAttempt(ctx context.Context, email, ip, requestID string) (bool, error) {
	lt.logger.LogLoginFailed(ctx, email, ip, requestID, "invalid_credentials")
	if lt.client == nil {
		return false, nil
	}

	key := failLoginUserPrefix + normalize(email)
	result, err := lt.client.Eval(ctx, incrWithTTLScript, []string{key}, int(lt.config.AttemptWindow.Seconds())).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment user counter: %w", err)
	}
	count, ok := result.(int64)
	if !ok {
		return false, errors.New("unexpected result type from Lua script")
	}

	if int(count) < lt.config.MaxAttempts {
		return false, nil
	}
	if err := lt.client.Set(ctx, blockedLoginUserPrefix+normalize(email), "1", lt.config.BlockDuration).Err(); err != nil {
		return true, fmt.Errorf("failed to set user block: %w", err)
	}
	lt.logger.Log(ctx, Event{
		Type:         EventBlockCreated,
		SubjectType:  "email",
		SubjectValue: MaskEmail(email),
		IP:           ip,
		RequestID:    requestID,
	})
	return true, nil
}

// ClearAttempts resets the failure counter after a successful login.
func (lt *LoginTracker) ClearAttempts(ctx context.Context, email string) error {
	if lt.client == nil {
		return nil
	}
	if err := lt.client.Del(ctx, failLoginUserPrefix+normalize(email)).Err(); err != nil {
		return fmt.Errorf("failed to clear user attempts: %w", err)
	}
	return nil
}
