package security

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"jobboard-backend/internal/domain"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of security event
type EventType string

const (
	EventRegistered         EventType = "user_registered"
	EventRegisterConflict   EventType = "register_conflict"
	EventLoginSuccess       EventType = "login_success"
	EventLoginFailed        EventType = "login_failed"
	EventUnauthorizedAccess EventType = "unauthorized_access"
)

// AuditEvent is one security-relevant action.
type AuditEvent struct {
	Timestamp    time.Time
	Event        EventType
	SubjectType  string // "username", "user_id"
	SubjectValue string // masked or hashed
	RequestID    string
	Details      map[string]any
}

// AuditLogger writes security events as structured zap entries.
type AuditLogger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

// InitAuditLogger builds a production zap logger writing to stdout.
func InitAuditLogger(serviceName, environment string) *AuditLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddCaller())
	if err != nil {
		logger, _ = zap.NewProduction()
	}
	return NewAuditLogger(logger, serviceName, environment)
}

// NewAuditLogger wraps an existing zap logger. A nil logger discards events.
func NewAuditLogger(logger *zap.Logger, serviceName, environment string) *AuditLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuditLogger{
		zapLogger:   logger,
		serviceName: serviceName,
		environment: environment,
	}
}

// Log logs a security event
func (al *AuditLogger) Log(ctx context.Context, event AuditEvent) {
	if al == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if event.RequestID == "" {
		event.RequestID = requestIDFrom(ctx)
	}

	level := zapcore.WarnLevel
	switch event.Event {
	case EventLoginSuccess, EventRegistered:
		level = zapcore.InfoLevel
	case EventLoginFailed, EventRegisterConflict, EventUnauthorizedAccess:
		level = zapcore.WarnLevel
	}

	fields := []zap.Field{
		zap.String("service", al.serviceName),
		zap.String("env", al.environment),
		zap.String("event", string(event.Event)),
		zap.Time("event_time", event.Timestamp),
	}
	if event.SubjectType != "" {
		fields = append(fields, zap.String("subject_type", event.SubjectType))
	}
	if event.SubjectValue != "" {
		fields = append(fields, zap.String("subject_value", event.SubjectValue))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		fields = append(fields, zap.Any("details", event.Details))
	}

	al.zapLogger.Log(level, string(event.Event), fields...)
}

// LogRegistered logs a new account.
func (al *AuditLogger) LogRegistered(ctx context.Context, userID, username string) {
	al.Log(ctx, AuditEvent{
		Event:        EventRegistered,
		SubjectType:  "username",
		SubjectValue: MaskUsername(username),
		Details:      map[string]any{"user_id": userID},
	})
}

// LogRegisterConflict logs an attempt to take an existing username.
func (al *AuditLogger) LogRegisterConflict(ctx context.Context, username string) {
	al.Log(ctx, AuditEvent{
		Event:        EventRegisterConflict,
		SubjectType:  "username",
		SubjectValue: MaskUsername(username),
	})
}

// LogLoginSuccess logs a successful login
func (al *AuditLogger) LogLoginSuccess(ctx context.Context, userID, username string) {
	al.Log(ctx, AuditEvent{
		Event:        EventLoginSuccess,
		SubjectType:  "username",
		SubjectValue: MaskUsername(username),
		Details:      map[string]any{"user_id": userID},
	})
}

// LogLoginFailed logs a failed login attempt
func (al *AuditLogger) LogLoginFailed(ctx context.Context, username, reason string) {
	al.Log(ctx, AuditEvent{
		Event:        EventLoginFailed,
		SubjectType:  "username",
		SubjectValue: MaskUsername(username),
		Details:      map[string]any{"reason": reason},
	})
}

// LogUnauthorizedAccess logs a rejected bearer token or role.
func (al *AuditLogger) LogUnauthorizedAccess(ctx context.Context, path, reason string) {
	al.Log(ctx, AuditEvent{
		Event:   EventUnauthorizedAccess,
		Details: map[string]any{"path": path, "reason": reason},
	})
}

// Sync flushes any buffered log entries
func (al *AuditLogger) Sync() error {
	if al == nil {
		return nil
	}
	return al.zapLogger.Sync()
}

// --- Helper Functions ---

// MaskUsername keeps the first and last rune, e.g. "a***n".
func MaskUsername(username string) string {
	r := []rune(username)
	if len(r) < 3 {
		return "***"
	}
	return string(r[0]) + "***" + string(r[len(r)-1])
}

// HashValue creates a SHA256 hash of a value (for logging without PII)
func HashValue(value string) string {
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8])
}

func requestIDFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(domain.KeyRequestID).(string); ok {
		return id
	}
	return ""
}
