// Package logs builds the process wide slog logger.
package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"petfeeder/config"
	"petfeeder/internal/errors"

	"go.uber.org/fx"
)

// redactedKeys never reach log output, whatever level or handler.
var redactedKeys = map[string]struct{}{ //nolint:gochecknoglobals
	"device_key":      {},
	"secret":          {},
	"activation_code": {},
	"password":        {},
	"token":           {},
}

type Params struct {
	fx.In

	Config *config.Config
}

func New(params Params) (*slog.Logger, error) {
	return newLogger(os.Stdout, params.Config)
}

func newLogger(w io.Writer, cfg *config.Config) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Env.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level:       level,
		AddSource:   cfg.Env.Debug,
		ReplaceAttr: redact,
	}

	var handler slog.Handler = slog.NewJSONHandler(w, opts)
	if cfg.Env.Log.Pretty {
		handler = slog.NewTextHandler(w, opts)
	}

	var attrs []any
	if cfg.Env.ServiceName != "" {
		attrs = append(attrs, slog.String("service", cfg.Env.ServiceName))
	}
	if cfg.Env.Env != "" {
		attrs = append(attrs, slog.String("env", cfg.Env.Env))
	}

	return slog.New(handler).With(attrs...), nil
}

func redact(_ []string, a slog.Attr) slog.Attr {
	if _, ok := redactedKeys[a.Key]; ok {
		return slog.String(a.Key, "[redacted]")
	}

	return a
}

// parseLogLevel accepts slog's own names ("info", "WARN+2") plus "warning".
// Empty means info.
func parseLogLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "":
		return slog.LevelInfo, nil
	case "warning":
		return slog.LevelWarn, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo, errors.Errorf("unknown log level %q", name)
	}

	return level, nil
}
