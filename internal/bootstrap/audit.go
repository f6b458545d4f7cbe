package bootstrap

import (
	"time"

	"go.uber.org/zap"
)

// AuditLog is one lifecycle event worth keeping: startup, shutdown, fatal
// wiring failures.
type AuditLog struct {
	Event  string
	Detail string
	At     time.Time
}

type AuditLogger interface {
	Log(entry AuditLog)
}

type zapAuditLogger struct {
	logger *zap.Logger
}

func NewZapAuditLogger(logger *zap.Logger) AuditLogger {
	return &zapAuditLogger{logger: logger.Named("audit")}
}

func (a *zapAuditLogger) Log(entry AuditLog) {
	if entry.At.IsZero() {
		entry.At = time.Now()
	}
	a.logger.Info(entry.Event,
		zap.String("detail", entry.Detail),
		zap.Time("at", entry.At),
	)
}
