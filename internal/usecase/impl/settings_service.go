package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "petfeeder/internal/delivery/context"
	"petfeeder/internal/domain/entity"
	domainerrors "petfeeder/internal/domain/errors"
	"petfeeder/internal/domain/repository"
	"petfeeder/internal/domain/schedule"
	"petfeeder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// settingsService implements the SettingsUsecase interface.
type settingsService struct {
	txManager            repository.TransactionManager
	settingsRepo         repository.UserSettingsRepository
	notificationSettings repository.NotificationSettingsRepository
	logger               *slog.Logger
	now                  func() time.Time
}

// SettingsServiceParams holds dependencies for SettingsService, injected by Fx.
type SettingsServiceParams struct {
	fx.In

	TxManager            repository.TransactionManager
	SettingsRepo         repository.UserSettingsRepository
	NotificationSettings repository.NotificationSettingsRepository
	Logger               *slog.Logger
}

// NewSettingsService is the constructor for settingsService.
func NewSettingsService(params SettingsServiceParams) usecase.SettingsUsecase {
	return &settingsService{
		txManager:            params.TxManager,
		settingsRepo:         params.SettingsRepo,
		notificationSettings: params.NotificationSettings,
		logger:               params.Logger,
		now:                  time.Now,
	}
}

func (srv *settingsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Get persists the record when an older version had to be upgraded.
func (srv *settingsService) Get(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	settings, err := srv.settingsRepo.FindUserSettings(ctx, userID)
	if errors.Is(err, repository.ErrSettingsNotFound) {
		return srv.freshSettings(userID), nil
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load settings")
	}

	if settings.Record.Upgrade() {
		settings.UpdatedAt = srv.now()
		if err := srv.settingsRepo.SaveUserSettings(ctx, settings); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to save upgraded settings")
		}
		srv.log(ctx).Info("Upgraded user settings", slog.Any("userID", userID), slog.Int("version", settings.Record.Version))
	}

	return settings, nil
}

// Update merges patch and queues a settings sync on every feeder of the user.
func (srv *settingsService) Update(ctx context.Context, userID uuid.UUID, patch entity.SettingsRecord) (*entity.UserSettings, error) {
	if patch.Timezone != nil {
		if _, err := schedule.LoadLocation(*patch.Timezone); err != nil {
			return nil, domainerrors.ErrInvalidTimezone.WithDetails(*patch.Timezone)
		}
	}
	now := srv.now()

	var saved *entity.UserSettings
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		settingsRepo := repoFactory.NewUserSettingsRepository()

		current, err := settingsRepo.FindUserSettings(ctx, userID)
		if errors.Is(err, repository.ErrSettingsNotFound) {
			current = srv.freshSettings(userID)
		} else if err != nil {
			return errors.Wrap(err, "failed to load settings")
		}

		current.Record.Upgrade()
		current.Record.Merge(patch)
		current.UpdatedAt = now
		if err := settingsRepo.SaveUserSettings(ctx, current); err != nil {
			return errors.Wrap(err, "failed to save settings")
		}
		saved = current

		owners, err := repoFactory.NewDeviceOwnerRepository().FindOwnersByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find feeders")
		}
		for _, owner := range owners {
			if _, err := enqueueEvent(ctx, repoFactory, owner, entity.EventSettingsSync, nil, now); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, toAppError(srv.log(ctx), err, "failed to update settings")
	}

	return saved, nil
}

// GetNotificationSettings returns everything switched off for users that never saved any.
func (srv *settingsService) GetNotificationSettings(ctx context.Context, userID uuid.UUID) (*entity.NotificationSettings, error) {
	settings, err := srv.notificationSettings.FindNotificationSettings(ctx, userID)
	if errors.Is(err, repository.ErrNotificationSettingsNotFound) {
		return &entity.NotificationSettings{UserID: userID}, nil
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load notification settings")
	}

	return settings, nil
}

func (srv *settingsService) UpdateNotificationSettings(ctx context.Context, userID uuid.UUID, settings *entity.NotificationSettings) (*entity.NotificationSettings, error) {
	settings.UserID = userID
	settings.PushoverUserKey = strings.TrimSpace(settings.PushoverUserKey)
	settings.PushoverDevices = compactStrings(settings.PushoverDevices)
	settings.PushTokens = compactStrings(settings.PushTokens)
	settings.UpdatedAt = srv.now()

	if err := srv.notificationSettings.SaveNotificationSettings(ctx, settings); err != nil {
		return nil, toAppError(srv.log(ctx), err, "failed to save notification settings")
	}

	return settings, nil
}

func (srv *settingsService) freshSettings(userID uuid.UUID) *entity.UserSettings {
	settings := &entity.UserSettings{UserID: userID, UpdatedAt: srv.now()}
	settings.Record.Upgrade()

	return settings
}

// compactStrings trims entries and drops empty ones and repeats.
func compactStrings(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}
