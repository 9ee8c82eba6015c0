package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"petfeeder/config"
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

// scheduleService implements the ScheduleUsecase interface.
type scheduleService struct {
	txManager       repository.TransactionManager
	ownerRepo       repository.DeviceOwnerRepository
	scheduleRepo    repository.ScheduleRepository
	settingsRepo    repository.UserSettingsRepository
	defaultTimezone string
	logger          *slog.Logger
	now             func() time.Time
}

// ScheduleServiceParams holds dependencies for ScheduleService, injected by Fx.
type ScheduleServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	OwnerRepo    repository.DeviceOwnerRepository
	ScheduleRepo repository.ScheduleRepository
	SettingsRepo repository.UserSettingsRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewScheduleService is the constructor for scheduleService.
func NewScheduleService(params ScheduleServiceParams) usecase.ScheduleUsecase {
	return &scheduleService{
		txManager:       params.TxManager,
		ownerRepo:       params.OwnerRepo,
		scheduleRepo:    params.ScheduleRepo,
		settingsRepo:    params.SettingsRepo,
		defaultTimezone: defaultTimezone(params.Config),
		logger:          params.Logger,
		now:             time.Now,
	}
}

func (srv *scheduleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *scheduleService) List(ctx context.Context, userID, ownerID uuid.UUID) ([]*entity.FeedingSchedule, error) {
	owner, err := findUserOwner(ctx, srv.ownerRepo, userID, ownerID)
	if err != nil {
		return nil, err
	}

	schedules, err := srv.scheduleRepo.FindSchedulesByOwner(ctx, owner.ID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list schedules")
	}

	return schedules, nil
}

func (srv *scheduleService) Create(ctx context.Context, userID, ownerID uuid.UUID, input *usecase.ScheduleInput) (*entity.FeedingSchedule, error) {
	utc, err := validateScheduleInput(input)
	if err != nil {
		return nil, err
	}
	loc := srv.userLocation(ctx, userID)
	now := srv.now()

	created := &entity.FeedingSchedule{
		ID:        uuid.Must(uuid.NewV7()),
		CreatedAt: now,
	}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		owner, err := srv.checkReferences(ctx, repoFactory, userID, ownerID, input)
		if err != nil {
			return err
		}

		applyScheduleInput(created, owner.ID, input, utc, loc, now)
		if err := repoFactory.NewScheduleRepository().CreateSchedule(ctx, created); err != nil {
			return errors.Wrap(err, "failed to create schedule")
		}

		_, err = enqueueEvent(ctx, repoFactory, owner, entity.EventScheduleSync, nil, now)

		return err
	})
	if err != nil {
		return nil, toAppError(srv.log(ctx), err, "failed to create schedule")
	}

	srv.log(ctx).Info("Schedule created", slog.Any("ownerID", ownerID), slog.Any("scheduleID", created.ID))

	return created, nil
}

func (srv *scheduleService) Update(ctx context.Context, userID, ownerID, scheduleID uuid.UUID, input *usecase.ScheduleInput) (*entity.FeedingSchedule, error) {
	utc, err := validateScheduleInput(input)
	if err != nil {
		return nil, err
	}
	loc := srv.userLocation(ctx, userID)
	now := srv.now()

	var updated *entity.FeedingSchedule
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		owner, err := srv.checkReferences(ctx, repoFactory, userID, ownerID, input)
		if err != nil {
			return err
		}

		scheduleRepo := repoFactory.NewScheduleRepository()
		current, err := findOwnerSchedule(ctx, scheduleRepo, owner.ID, scheduleID)
		if err != nil {
			return err
		}

		applyScheduleInput(current, owner.ID, input, utc, loc, now)
		if err := scheduleRepo.UpdateSchedule(ctx, current); err != nil {
			if errors.Is(err, repository.ErrScheduleNotFound) {
				return domainerrors.ErrScheduleNotFound
			}

			return errors.Wrap(err, "failed to update schedule")
		}
		updated = current

		_, err = enqueueEvent(ctx, repoFactory, owner, entity.EventScheduleSync, nil, now)

		return err
	})
	if err != nil {
		return nil, toAppError(srv.log(ctx), err, "failed to update schedule")
	}

	return updated, nil
}

func (srv *scheduleService) Delete(ctx context.Context, userID, ownerID, scheduleID uuid.UUID) error {
	now := srv.now()

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		owner, err := findUserOwner(ctx, repoFactory.NewDeviceOwnerRepository(), userID, ownerID)
		if err != nil {
			return err
		}

		scheduleRepo := repoFactory.NewScheduleRepository()
		if _, err := findOwnerSchedule(ctx, scheduleRepo, owner.ID, scheduleID); err != nil {
			return err
		}
		if err := scheduleRepo.DeleteSchedule(ctx, scheduleID); err != nil {
			if errors.Is(err, repository.ErrScheduleNotFound) {
				return domainerrors.ErrScheduleNotFound
			}

			return errors.Wrap(err, "failed to delete schedule")
		}

		_, err = enqueueEvent(ctx, repoFactory, owner, entity.EventScheduleSync, nil, now)

		return err
	})
	if err != nil {
		return toAppError(srv.log(ctx), err, "failed to delete schedule")
	}

	srv.log(ctx).Info("Schedule deleted", slog.Any("ownerID", ownerID), slog.Any("scheduleID", scheduleID))

	return nil
}

// checkReferences makes sure the feeder and pet belong to the user and the portion exists.
func (srv *scheduleService) checkReferences(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	userID, ownerID uuid.UUID,
	input *usecase.ScheduleInput,
) (*entity.DeviceOwner, error) {
	owner, err := findUserOwner(ctx, repoFactory.NewDeviceOwnerRepository(), userID, ownerID)
	if err != nil {
		return nil, err
	}

	pet, err := repoFactory.NewPetRepository().FindPetByID(ctx, input.PetID)
	if errors.Is(err, repository.ErrPetNotFound) || (err == nil && pet.UserID != userID) {
		return nil, domainerrors.ErrPetNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pet")
	}

	if _, err := repoFactory.NewMotorTimingRepository().FindMotorTimingByID(ctx, input.MotorTimingID); err != nil {
		if errors.Is(err, repository.ErrMotorTimingNotFound) {
			return nil, domainerrors.ErrPortionNotFound
		}

		return nil, errors.Wrap(err, "failed to find motor timing")
	}

	return owner, nil
}

// userLocation resolves the user's timezone for display times. Broken or
// missing settings fall back to the configured default.
func (srv *scheduleService) userLocation(ctx context.Context, userID uuid.UUID) *time.Location {
	name := srv.defaultTimezone

	settings, err := srv.settingsRepo.FindUserSettings(ctx, userID)
	if err == nil {
		name = settings.Record.TimezoneOr(name)
	} else if !errors.Is(err, repository.ErrSettingsNotFound) {
		srv.log(ctx).Warn("Failed to load user settings", slog.Any("userID", userID), slog.Any("error", err))
	}

	loc, err := schedule.LoadLocation(name)
	if err != nil {
		return time.UTC
	}

	return loc
}

func findOwnerSchedule(ctx context.Context, scheduleRepo repository.ScheduleRepository, ownerID, scheduleID uuid.UUID) (*entity.FeedingSchedule, error) {
	current, err := scheduleRepo.FindScheduleByID(ctx, scheduleID)
	if errors.Is(err, repository.ErrScheduleNotFound) || (err == nil && current.DeviceOwnerID != ownerID) {
		return nil, domainerrors.ErrScheduleNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find schedule")
	}

	return current, nil
}

func validateScheduleInput(input *usecase.ScheduleInput) (entity.TimeOfDay, error) {
	if !input.Days.Valid() {
		return 0, domainerrors.ErrInvalidDayMask
	}

	utc, err := entity.ParseTimeOfDay(strings.TrimSpace(input.Time))
	if err != nil {
		return 0, domainerrors.ErrInvalidTimeOfDay
	}

	return utc, nil
}

func applyScheduleInput(s *entity.FeedingSchedule, ownerID uuid.UUID, input *usecase.ScheduleInput, utc entity.TimeOfDay, loc *time.Location, now time.Time) {
	s.DeviceOwnerID = ownerID
	s.PetID = input.PetID
	s.MotorTimingID = input.MotorTimingID
	s.Label = strings.TrimSpace(input.Label)
	s.Days = input.Days
	s.UTCTime = utc
	s.LocalTime = localClock(utc, loc, now)
	s.Active = input.Active
	s.UpdatedAt = now
}

// localClock converts a UTC clock time to loc using today's offset.
func localClock(utc entity.TimeOfDay, loc *time.Location, now time.Time) entity.TimeOfDay {
	day := now.UTC()
	at := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC).Add(utc.Duration())

	return entity.ClockOf(at.In(loc))
}

func defaultTimezone(cfg *config.Config) string {
	if cfg == nil || cfg.Feeder == nil || cfg.Feeder.DefaultTimezone == "" {
		return "UTC"
	}

	return cfg.Feeder.DefaultTimezone
}
