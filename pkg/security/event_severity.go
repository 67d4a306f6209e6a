package security

import "go.uber.org/zap/zapcore"

// Severity is derived from the event type, never supplied by the caller
type Severity string

const (
	SeverityINFO     Severity = "INFO"
	SeverityMEDIUM   Severity = "MEDIUM"
	SeverityWARN     Severity = "WARN"
	SeverityHIGH     Severity = "HIGH"
	SeverityCRITICAL Severity = "CRITICAL"
)

// EventSeverityMap fixes the severity of every known event type
var EventSeverityMap = map[EventType]Severity{
	EventLoginSuccess: SeverityINFO,
	EventRegistered:   SeverityINFO,

	EventLoginFailed:        SeverityWARN,
	EventRateLimitTriggered: SeverityWARN,
	EventForbiddenAccess:    SeverityWARN,

	EventUnauthorizedAccess: SeverityHIGH,
	EventLoginBlocked:       SeverityHIGH,
	EventBlockCreated:       SeverityHIGH,

	// Search drift persists until an operator or the next reconciliation fixes it
	EventSyncTaskFailed: SeverityCRITICAL,
}

// GetSeverity returns the severity for an event type, MEDIUM when unmapped
func GetSeverity(eventType EventType) Severity {
	if severity, ok := EventSeverityMap[eventType]; ok {
		return severity
	}
	return SeverityMEDIUM
}

// IsHighOrAbove returns true if the event is HIGH or CRITICAL severity
func IsHighOrAbove(eventType EventType) bool {
	severity := GetSeverity(eventType)
	return severity == SeverityHIGH || severity == SeverityCRITICAL
}

// levelFor maps severity onto the zap level the event is written at.
// Unauthorized access is HIGH but routine, so it stays at warn.
func levelFor(t EventType) zapcore.Level {
	switch t {
	case EventUnauthorizedAccess:
		return zapcore.WarnLevel
	}
	switch GetSeverity(t) {
	case SeverityINFO:
		return zapcore.InfoLevel
	case SeverityHIGH, SeverityCRITICAL:
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}
