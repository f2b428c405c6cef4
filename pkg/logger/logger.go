package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger is a thin slog wrapper with helpers for the events the
// console cares about in aggregate (check-ins, cancellations, scans).
type Logger struct {
	*slog.Logger
}

// New builds a logger from LOG_LEVEL. Debug mode gets a text handler,
// everything else structured JSON.
func New() *Logger {
	level := parseLevel(os.Getenv("LOG_LEVEL"))
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, opts)
	if gin.Mode() == gin.DebugMode {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return &Logger{Logger: slog.New(handler)}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithError returns a logger carrying the error as a field.
func (l *Logger) WithError(err error) *Logger {
	return &Logger{Logger: l.Logger.With(slog.String("error", err.Error()))}
}

// LogHTTPRequest records one served request.
func (l *Logger) LogHTTPRequest(c *gin.Context, duration time.Duration) {
	l.InfoContext(c.Request.Context(), "http request",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("query", c.Request.URL.RawQuery),
		slog.Int("status", c.Writer.Status()),
		slog.Duration("duration", duration),
		slog.String("ip", c.ClientIP()),
		slog.Int("size", c.Writer.Size()),
	)
}

// LogCheckIn records a completed check-in.
func (l *Logger) LogCheckIn(ctx context.Context, ticketID, eventID, operatorID string) {
	l.InfoContext(ctx, "ticket checked in",
		slog.String("ticket_id", ticketID),
		slog.String("event_id", eventID),
		slog.String("operator_id", operatorID),
	)
}

// LogCheckInRejected records a scan that was refused and why.
func (l *Logger) LogCheckInRejected(ctx context.Context, qrCode, reason string) {
	l.WarnContext(ctx, "check-in rejected",
		slog.String("qr_code", qrCode),
		slog.String("reason", reason),
	)
}

// LogTicketCancelled records a cancellation and the quoted refund.
func (l *Logger) LogTicketCancelled(ctx context.Context, ticketID, userID string, refundAmount float64) {
	l.InfoContext(ctx, "ticket cancelled",
		slog.String("ticket_id", ticketID),
		slog.String("user_id", userID),
		slog.Float64("refund_amount", refundAmount),
	)
}

// LogScanDebounced records a scan dropped by the debounce window.
func (l *Logger) LogScanDebounced(ctx context.Context, qrCode string) {
	l.DebugContext(ctx, "scan debounced", slog.String("qr_code", qrCode))
}

var defaultLogger = New()

// GetDefault returns the process-wide logger.
func GetDefault() *Logger {
	return defaultLogger
}
