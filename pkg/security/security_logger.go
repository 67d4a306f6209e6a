package security

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of security or operator event
type EventType string

const (
	EventLoginFailed        EventType = "login_failed"
	EventLoginBlocked       EventType = "login_blocked"
	EventLoginSuccess       EventType = "login_success"
	EventRegistered         EventType = "user_registered"
	EventRateLimitTriggered EventType = "rate_limit_triggered"
	EventUnauthorizedAccess EventType = "unauthorized_access"
	EventForbiddenAccess    EventType = "forbidden_access"
	EventBlockCreated       EventType = "block_created"
	EventSyncTaskFailed     EventType = "search_sync_task_failed"
)

// Event is a single security or operator event
type Event struct {
	Type         EventType
	SubjectType  string // "email", "ip", "user_id", "job_id"
	SubjectValue string // masked or hashed for PII
	IP           string
	RequestID    string
	Fields       []zap.Field
}

// SecurityLogger writes structured security and operator events through zap
type SecurityLogger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

// NewSecurityLogger builds a production zap logger writing JSON to stdout.
func NewSecurityLogger(serviceName, environment string) *SecurityLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		logger, _ = zap.NewProduction()
	}
	return WithZap(logger, serviceName, environment)
}

// WithZap wraps an existing zap logger.
func WithZap(logger *zap.Logger, serviceName, environment string) *SecurityLogger {
	return &SecurityLogger{
		zapLogger:   logger,
		serviceName: serviceName,
		environment: environment,
	}
}

// Nop returns a logger that discards everything.
func Nop() *SecurityLogger {
	return WithZap(zap.NewNop(), "", "")
}

// Log writes event at the level its type implies
func (sl *SecurityLogger) Log(_ context.Context, event Event) {
	fields := []zap.Field{
		zap.String("service", sl.serviceName),
		zap.String("env", sl.environment),
		zap.String("event", string(event.Type)),
		zap.String("severity", string(GetSeverity(event.Type))),
	}
	if event.SubjectType != "" {
		fields = append(fields, zap.String("subject_type", event.SubjectType))
	}
	if event.SubjectValue != "" {
		fields = append(fields, zap.String("subject_value", event.SubjectValue))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	fields = append(fields, event.Fields...)

	sl.zapLogger.Log(levelFor(event.Type), string(event.Type), fields...)
}

// LogLoginFailed logs a failed login attempt
func (sl *SecurityLogger) LogLoginFailed(ctx context.Context, email, ip, requestID, reason string) {
	sl.Log(ctx, Event{
		Type:         EventLoginFailed,
		SubjectType:  "email",
		SubjectValue: MaskEmail(email),
		IP:           ip,
		RequestID:    requestID,
		Fields:       []zap.Field{zap.String("reason", reason)},
	})
}

// LogLoginBlocked logs a login refused because of earlier failures
func (sl *SecurityLogger) LogLoginBlocked(ctx context.Context, email, ip, requestID string) {
	sl.Log(ctx, Event{
		Type:         EventLoginBlocked,
		SubjectType:  "email",
		SubjectValue: MaskEmail(email),
		IP:           ip,
		RequestID:    requestID,
	})
}

// LogRateLimitTriggered logs when rate limiting is triggered
func (sl *SecurityLogger) LogRateLimitTriggered(ctx context.Context, ip, requestID, endpoint string) {
	sl.Log(ctx, Event{
		Type:         EventRateLimitTriggered,
		SubjectType:  "ip",
		SubjectValue: ip,
		IP:           ip,
		RequestID:    requestID,
		Fields:       []zap.Field{zap.String("endpoint", endpoint)},
	})
}

// LogAccessDenied logs a 401 or 403 decided by the access control middleware
func (sl *SecurityLogger) LogAccessDenied(ctx context.Context, eventType EventType, userID, ip, requestID, reason string) {
	ev := Event{
		Type:      eventType,
		IP:        ip,
		RequestID: requestID,
		Fields:    []zap.Field{zap.String("reason", reason)},
	}
	if userID != "" {
		ev.SubjectType = "user_id"
		ev.SubjectValue = userID
	}
	sl.Log(ctx, ev)
}

// LogSyncTaskFailed reports a search sync task that will not be retried
func (sl *SecurityLogger) LogSyncTaskFailed(ctx context.Context, jobID int64, action string, attempts int, cause string) {
	sl.Log(ctx, Event{
		Type:        EventSyncTaskFailed,
		SubjectType: "job_id",
		Fields: []zap.Field{
			zap.Int64("job_id", jobID),
			zap.String("action", action),
			zap.Int("attempts", attempts),
			zap.String("error", cause),
		},
	})
}

// Sync flushes any buffered log entries
func (sl *SecurityLogger) Sync() error {
	return sl.zapLogger.Sync()
}

// MaskEmail masks an email for logging (e.g., "j***@example.com")
func MaskEmail(email string) string {
	if len(email) < 3 {
		return "***"
	}
	at := strings.IndexByte(email, '@')
	if at <= 1 {
		return "***" + email[1:]
	}
	return string(email[0]) + "***" + email[at:]
}

// HashValue returns a short SHA256 fingerprint of value
func HashValue(value string) string {
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8])
}
