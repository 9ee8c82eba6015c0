package impl

import (
	"context"
	"testing"
	"time"

	"petfeeder/internal/domain/constants"
	"petfeeder/internal/domain/entity"
	domainerrors "petfeeder/internal/domain/errors"
	"petfeeder/internal/domain/repository"
	"petfeeder/internal/domain/schedule"
	mockRepo "petfeeder/internal/mocks/repository"
	"petfeeder/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mealServiceFixtures struct {
	service      usecase.MealUsecase
	ownerRepo    *mockRepo.MockDeviceOwnerRepository
	scheduleRepo *mockRepo.MockScheduleRepository
	settingsRepo *mockRepo.MockUserSettingsRepository
}

func createTestMealService(t *testing.T) mealServiceFixtures {
	fx := mealServiceFixtures{
		ownerRepo:    mockRepo.NewMockDeviceOwnerRepository(t),
		scheduleRepo: mockRepo.NewMockScheduleRepository(t),
		settingsRepo: mockRepo.NewMockUserSettingsRepository(t),
	}

	svc := NewMealService(MealServiceParams{
		OwnerRepo:    fx.ownerRepo,
		ScheduleRepo: fx.scheduleRepo,
		SettingsRepo: fx.settingsRepo,
		Config:       newTestConfig(constants.RegistrationModeOpen),
		Logger:       newDiscardLogger(),
	})
	svc.(*mealService).now = func() time.Time { return fixedNow }
	fx.service = svc

	return fx
}

// lunch is at 13:00 UTC on Mondays, an hour after fixedNow.
func lunchFor(owner *entity.DeviceOwner) entity.ScheduledMeal {
	return entity.ScheduledMeal{
		Schedule: &entity.FeedingSchedule{
			ID:            uuid.New(),
			DeviceOwnerID: owner.ID,
			Label:         "Lunch",
			Days:          entity.DayBit(time.Monday),
			UTCTime:       entity.TimeOfDay(13 * 3600),
			Active:        true,
		},
		PetName: "Miso",
		Timing:  entity.MotorTiming{FeedAmount: entity.Portion{Num: 1, Den: 3}, MotorDuration: 1200, InterrupterCount: 9},
	}
}

func settingsWithTimezone(userID uuid.UUID, tz string) *entity.UserSettings {
	return &entity.UserSettings{UserID: userID, Record: entity.SettingsRecord{Version: 2, Timezone: &tz}}
}

func TestMealService_NextFeeding_TimezonePrecedence(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		stored   *string
		wantTZ   string
	}{
		{name: "explicit wins", explicit: "Asia/Tokyo", wantTZ: "22:00:00"},
		{name: "user settings", stored: strPtr("Europe/Berlin"), wantTZ: "15:00:00"},
		{name: "configured default", wantTZ: "09:00:00"},
		{name: "broken stored zone", stored: strPtr("Mars/Olympus"), wantTZ: "09:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMealService(t)
			ctx := context.Background()
			owner := newTestOwner()

			if tt.explicit == "" {
				if tt.stored != nil {
					fx.settingsRepo.EXPECT().FindUserSettings(ctx, owner.UserID).Return(settingsWithTimezone(owner.UserID, *tt.stored), nil)
				} else {
					fx.settingsRepo.EXPECT().FindUserSettings(ctx, owner.UserID).Return(nil, repository.ErrSettingsNotFound)
				}
			}
			fx.ownerRepo.EXPECT().FindOwnerByID(ctx, owner.ID).Return(owner, nil)
			fx.scheduleRepo.EXPECT().FindActiveMeals(ctx, owner.ID).Return([]entity.ScheduledMeal{lunchFor(owner)}, nil)

			meal, err := fx.service.NextFeeding(ctx, owner.UserID, owner.ID, tt.explicit)

			require.NoError(t, err)
			assert.True(t, meal.HasMeal)
			assert.Equal(t, "Lunch", meal.MealName)
			assert.Equal(t, "13:00:00", meal.FeedTimeUTC)
			assert.Equal(t, tt.wantTZ, meal.FeedTimeTZ)
			assert.Equal(t, "today", meal.Day)
			assert.Equal(t, "1/3", meal.Size)
		})
	}
}

func TestMealService_NextFeeding_InvalidExplicitTimezone(t *testing.T) {
	fx := createTestMealService(t)

	_, err := fx.service.NextFeeding(context.Background(), uuid.New(), uuid.New(), "Nowhere/Special")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidTimezone)
}

func TestMealService_NextFeeding_UnknownFeeder(t *testing.T) {
	fx := createTestMealService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	fx.ownerRepo.EXPECT().FindOwnerByID(ctx, ownerID).Return(nil, repository.ErrOwnerNotFound)

	meal, err := fx.service.NextFeeding(ctx, uuid.New(), ownerID, "UTC")

	require.NoError(t, err)
	assert.False(t, meal.HasMeal)
	assert.Equal(t, schedule.NoMealName, meal.MealName)
}

func TestMealService_NextFeedings(t *testing.T) {
	fx := createTestMealService(t)
	ctx := context.Background()
	withMeal := newTestOwner()
	empty := newTestOwner()
	empty.UserID = withMeal.UserID

	fx.ownerRepo.EXPECT().FindOwnersByUser(ctx, withMeal.UserID).Return([]*entity.DeviceOwner{withMeal, empty}, nil)
	fx.scheduleRepo.EXPECT().FindActiveMeals(ctx, withMeal.ID).Return([]entity.ScheduledMeal{lunchFor(withMeal)}, nil)
	fx.scheduleRepo.EXPECT().FindActiveMeals(ctx, empty.ID).Return(nil, nil)

	meals, err := fx.service.NextFeedings(ctx, withMeal.UserID, "UTC")

	require.NoError(t, err)
	require.Len(t, meals, 2)
	assert.True(t, meals[0].HasMeal)
	assert.False(t, meals[1].HasMeal)
	require.NotNil(t, meals[1].DeviceOwnerID)
	assert.Equal(t, empty.ID, *meals[1].DeviceOwnerID)
}

func strPtr(v string) *string { return &v }
