package internal

import (
	"context"
	"log/slog"
	"strings"
)

type RequestAuditLogger interface {
	LogRequest(ctx context.Context, endpoint string, status *int, window *RequestWindow)
}

func NewSlogAuditLogger(logger *slog.Logger) *SlogAuditLogger {
	return &SlogAuditLogger{logger: logger}
}

// SlogAuditLogger records outbound requests at debug level.
type SlogAuditLogger struct {
	logger *slog.Logger
}

func (l *SlogAuditLogger) LogRequest(ctx context.Context, endpoint string, status *int, window *RequestWindow) {
	p := strings.TrimSpace(endpoint)
	p = strings.Trim(p, "/")
	if p == "" {
		p = "unknown"
	}

	attrs := []any{slog.String("path", p)}
	if status != nil {
		attrs = append(attrs, slog.Int("status", *status))
	}
	if window != nil {
		attrs = append(attrs, slog.String("start", window.Start.String()), slog.String("end", window.End.String()))
	}
	l.logger.DebugContext(ctx, "outbound request", attrs...)
}
