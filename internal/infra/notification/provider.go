package notification

import (
	"context"
	"log/slog"

	"petfeeder/config"
	"petfeeder/internal/domain/service"

	"go.uber.org/fx"
)

// NotifierParams holds dependencies for the Notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotifier builds the channels enabled in configuration. Both are optional;
// with none configured every message ends in the error state.
func NewNotifier(params NotifierParams) (service.Notifier, error) {
	var channels []Channel

	if cfg := params.Config.Pushover; cfg != nil && cfg.AppToken != "" {
		channels = append(channels, NewPushoverNotifier(cfg.AppToken, cfg.RatePerSecond))
		params.Logger.Info("Pushover channel enabled")
	}

	if cfg := params.Config.Firebase; cfg != nil && cfg.CredentialsPath != "" {
		fcm, err := NewFCMNotifier(params.Ctx, cfg.CredentialsPath)
		if err != nil {
			return nil, err
		}
		channels = append(channels, fcm)
		params.Logger.Info("FCM channel enabled", slog.String("project_id", cfg.ProjectID))
	}

	if len(channels) == 0 {
		params.Logger.Warn("No notification channel configured")
	}

	return NewMultiNotifier(params.Logger, channels...), nil
}
