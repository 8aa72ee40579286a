// Package audit provides security audit logging for SIEM consumption.
// It logs security-relevant events in structured JSON format for easy parsing
// and integration with security information and event management systems.
package audit

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SecurityEventType categorizes security-relevant events for filtering and alerting.
type SecurityEventType string

const (
	// EventLoginFailure is logged when authentication fails for an email.
	EventLoginFailure SecurityEventType = "login_failure"
	// EventUnsafeContent is logged when libinjection flags user-submitted
	// content (review titles or bodies) as containing XSS markup.
	EventUnsafeContent SecurityEventType = "unsafe_content_submission"
)

// SecurityEvent represents an auditable security event with all relevant
// context for SIEM ingestion and analysis.
type SecurityEvent struct {
	EventID   uuid.UUID         `json:"event_id"`
	Timestamp time.Time         `json:"timestamp"`
	EventType SecurityEventType `json:"event_type"`
	UserID    int64             `json:"user_id,omitempty"`
	Email     string            `json:"email,omitempty"`
	ClientIP  string            `json:"client_ip,omitempty"`
	Details   any               `json:"details,omitempty"`
	Severity  string            `json:"severity"` // info, warning, critical
}

// UnsafeContentDetails contains specifics of a rejected content submission.
type UnsafeContentDetails struct {
	Field  string `json:"field"`  // which form field tripped the screen
	Target string `json:"target"` // "restaurant_review" or "item_review"
}

// SecurityAuditor logs security events for SIEM consumption.
type SecurityAuditor struct {
	logger *zap.Logger
}

// NewSecurityAuditor creates a new security auditor with a dedicated logger
// namespace so SIEM systems can filter on it.
func NewSecurityAuditor(logger *zap.Logger) *SecurityAuditor {
	return &SecurityAuditor{logger: logger.Named("security_audit")}
}

// LogLoginFailure records a failed authentication attempt at WARNING severity.
// Repeated failures for one email are a credential-stuffing signal; the
// client IP lets downstream tooling correlate them.
func (a *SecurityAuditor) LogLoginFailure(email, clientIP string) {
	event := SecurityEvent{
		EventID:   uuid.New(),
		Timestamp: time.Now().UTC(),
		EventType: EventLoginFailure,
		Email:     email,
		ClientIP:  clientIP,
		Severity:  "warning",
	}

	a.logger.Warn("Login failure",
		zap.String("event_id", event.EventID.String()),
		zap.String("event_type", string(event.EventType)),
		zap.String("email", event.Email),
		zap.String("client_ip", event.ClientIP),
		zap.String("severity", event.Severity),
	)
}

// LogUnsafeContent records a rejected review submission at WARNING severity.
// The offending value itself is not logged; stored XSS payloads don't belong
// in log pipelines either.
func (a *SecurityAuditor) LogUnsafeContent(userID int64, details UnsafeContentDetails) {
	event := SecurityEvent{
		EventID:   uuid.New(),
		Timestamp: time.Now().UTC(),
		EventType: EventUnsafeContent,
		UserID:    userID,
		Details:   details,
		Severity:  "warning",
	}

	a.logger.Warn("Unsafe content submission",
		zap.String("event_id", event.EventID.String()),
		zap.String("event_type", string(event.EventType)),
		zap.Int64("user_id", event.UserID),
		zap.String("field", details.Field),
		zap.String("target", details.Target),
		zap.String("severity", event.Severity),
	)
}
