package impl

import (
	"context"
	"log/slog"
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

// mealService implements the MealUsecase interface.
type mealService struct {
	ownerRepo       repository.DeviceOwnerRepository
	scheduleRepo    repository.ScheduleRepository
	settingsRepo    repository.UserSettingsRepository
	defaultTimezone string
	logger          *slog.Logger
	now             func() time.Time
}

// MealServiceParams holds dependencies for MealService, injected by Fx.
type MealServiceParams struct {
	fx.In

	OwnerRepo    repository.DeviceOwnerRepository
	ScheduleRepo repository.ScheduleRepository
	SettingsRepo repository.UserSettingsRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewMealService is the constructor for mealService.
func NewMealService(params MealServiceParams) usecase.MealUsecase {
	return &mealService{
		ownerRepo:       params.OwnerRepo,
		scheduleRepo:    params.ScheduleRepo,
		settingsRepo:    params.SettingsRepo,
		defaultTimezone: defaultTimezone(params.Config),
		logger:          params.Logger,
		now:             time.Now,
	}
}

func (srv *mealService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// NextFeeding reports the sentinel for feeders the user cannot see.
func (srv *mealService) NextFeeding(ctx context.Context, userID, ownerID uuid.UUID, tz string) (*schedule.NextMeal, error) {
	loc, err := srv.location(ctx, userID, tz)
	if err != nil {
		return nil, err
	}

	owner, err := findUserOwner(ctx, srv.ownerRepo, userID, ownerID)
	if errors.Is(err, domainerrors.ErrFeederNotFound) {
		meal := schedule.NoMeal()

		return &meal, nil
	}
	if err != nil {
		return nil, err
	}

	return srv.resolve(ctx, owner, loc)
}

func (srv *mealService) NextFeedings(ctx context.Context, userID uuid.UUID, tz string) ([]*schedule.NextMeal, error) {
	loc, err := srv.location(ctx, userID, tz)
	if err != nil {
		return nil, err
	}

	owners, err := srv.ownerRepo.FindOwnersByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find feeders")
	}

	meals := make([]*schedule.NextMeal, 0, len(owners))
	for _, owner := range owners {
		meal, err := srv.resolve(ctx, owner, loc)
		if err != nil {
			return nil, err
		}
		meals = append(meals, meal)
	}

	return meals, nil
}

func (srv *mealService) NextFeedingForDevice(ctx context.Context, owner *entity.DeviceOwner, tz string) (*schedule.NextMeal, error) {
	loc, err := srv.location(ctx, owner.UserID, tz)
	if err != nil {
		return nil, err
	}

	return srv.resolve(ctx, owner, loc)
}

func (srv *mealService) resolve(ctx context.Context, owner *entity.DeviceOwner, loc *time.Location) (*schedule.NextMeal, error) {
	meals, err := srv.scheduleRepo.FindActiveMeals(ctx, owner.ID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load schedule")
	}

	occ, ok := schedule.Resolve(meals, srv.now())
	if !ok {
		meal := schedule.NoMeal()
		ownerID := owner.ID
		meal.DeviceOwnerID = &ownerID

		return &meal, nil
	}

	meal := schedule.Describe(occ, loc)

	return &meal, nil
}

// location applies the timezone precedence: explicit value, user settings,
// configured default. Only an explicit value can fail.
func (srv *mealService) location(ctx context.Context, userID uuid.UUID, tz string) (*time.Location, error) {
	if tz != "" {
		loc, err := schedule.LoadLocation(tz)
		if err != nil {
			return nil, domainerrors.ErrInvalidTimezone.WithDetails(tz)
		}

		return loc, nil
	}

	settings, err := srv.settingsRepo.FindUserSettings(ctx, userID)
	switch {
	case err == nil && settings.Record.Timezone != nil && *settings.Record.Timezone != "":
		loc, loadErr := schedule.LoadLocation(*settings.Record.Timezone)
		if loadErr == nil {
			return loc, nil
		}
		srv.log(ctx).Warn("Stored timezone is invalid", slog.Any("userID", userID), slog.String("timezone", *settings.Record.Timezone))
	case err != nil && !errors.Is(err, repository.ErrSettingsNotFound):
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load settings")
	}

	loc, err := schedule.LoadLocation(srv.defaultTimezone)
	if err != nil {
		return time.UTC, nil
	}

	return loc, nil
}
