package middleware

import (
	"log/slog"
	"time"

	"petfeeder/config"
	deliverycontext "petfeeder/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes an access line per request. Without debug only
// failed requests are logged.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
	now    func() time.Time
}

func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
		now:    time.Now,
	}
}

func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := m.now()
		err := next(c)
		if err != nil {
			// Render now so the logged status is the one the client sees.
			c.Error(err)
		}

		level := accessLevel(c.Response().Status)
		if m.debug || level > slog.LevelInfo {
			m.access(c, level, m.now().Sub(start), err)
		}

		return nil
	}
}

// access logs the route template, never the raw path: device verification
// carries the factory secret in the URL.
func (m *LoggerMiddleware) access(c echo.Context, level slog.Level, latency time.Duration, err error) {
	req := c.Request()
	route := c.Path()
	if route == "" {
		route = "unmatched"
	}

	attrs := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", route),
		slog.Int("status", c.Response().Status),
		slog.Duration("latency", latency),
		slog.String("remote_ip", c.RealIP()),
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}

	ctx := req.Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, level, "http request", attrs...)
}

func accessLevel(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
