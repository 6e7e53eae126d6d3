package internal_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bpi-report/internal"
)

func TestSlogAuditLogger_LogRequest(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	audit := internal.NewSlogAuditLogger(logger)

	status := 200
	window := internal.NewRequestWindow(time.Date(2022, 8, 4, 0, 0, 0, 0, time.UTC), 30)
	audit.LogRequest(context.Background(), " /historical/close.json ", &status, &window)

	out := buf.String()
	assert.Contains(t, out, "msg=\"outbound request\"")
	assert.Contains(t, out, "path=historical/close.json")
	assert.Contains(t, out, "status=200")
	assert.Contains(t, out, "start=2022-07-05")
	assert.Contains(t, out, "end=2022-08-04")
}

func TestSlogAuditLogger_LogRequest_EmptyPath(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	internal.NewSlogAuditLogger(logger).LogRequest(context.Background(), "/", nil, nil)

	assert.Contains(t, buf.String(), "path=unknown")
	assert.NotContains(t, buf.String(), "status=")
}

func TestSlogAuditLogger_SilentAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	internal.NewSlogAuditLogger(logger).LogRequest(context.Background(), "/currentprice/eur.json", nil, nil)

	assert.Empty(t, buf.String())
}
