package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"barberbook/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const ctxRequestIDKey = "request_id"

// Logger owns the process-wide slog logger: JSON in release mode, text
// otherwise, timestamps rendered in the configured zone.
type Logger struct {
	logger   *slog.Logger
	timezone *time.Location
}

func NewLogger(cfg config.LogConfig) *Logger {
	timezone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.In(timezone).Format(cfg.TimeFormat))
				}
			}
			return a
		},
	}

	var handler slog.Handler
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return &Logger{logger: logger, timezone: timezone}
}

func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoggingMiddleware logs one line per completed request, leveled by status
// class, with a per-request id shared between the start and end lines.
func LoggingMiddleware(cfg config.LogConfig) gin.HandlerFunc {
	l := NewLogger(cfg)
	return func(c *gin.Context) {
		start := time.Now()
		requestID := l.newRequestID()
		c.Set(ctxRequestIDKey, requestID)

		attrs := []any{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		}
		l.logger.Info("request started", attrs...)

		c.Next()

		status := c.Writer.Status()
		attrs = append(attrs,
			slog.Int("status_code", status),
			slog.Duration("duration", time.Since(start)),
		)
		if size := c.Writer.Size(); size > 0 {
			attrs = append(attrs, slog.Int("response_size", size))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		switch {
		case status >= 500:
			l.logger.Error("request completed", attrs...)
		case status >= 400:
			l.logger.Warn("request completed", attrs...)
		default:
			l.logger.Info("request completed", attrs...)
		}
	}
}

func (l *Logger) newRequestID() string {
	stamp := time.Now().In(l.timezone).Format("20060102150405")

	random := make([]byte, 4)
	if _, err := rand.Read(random); err != nil {
		return fmt.Sprintf("%s-%d", stamp, time.Now().UnixNano())
	}
	return fmt.Sprintf("%s-%s", stamp, hex.EncodeToString(random))
}
