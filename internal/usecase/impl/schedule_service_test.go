package impl

import (
	"context"
	"testing"
	"time"

	"petfeeder/internal/domain/constants"
	"petfeeder/internal/domain/entity"
	domainerrors "petfeeder/internal/domain/errors"
	"petfeeder/internal/domain/repository"
	mockRepo "petfeeder/internal/mocks/repository"
	"petfeeder/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type scheduleServiceFixtures struct {
	service      usecase.ScheduleUsecase
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	ownerRepo    *mockRepo.MockDeviceOwnerRepository
	scheduleRepo *mockRepo.MockScheduleRepository
	settingsRepo *mockRepo.MockUserSettingsRepository
	petRepo      *mockRepo.MockPetRepository
	timingRepo   *mockRepo.MockMotorTimingRepository
	eventRepo    *mockRepo.MockEventRepository
	statusRepo   *mockRepo.MockDeviceStatusRepository
}

func createTestScheduleService(t *testing.T) scheduleServiceFixtures {
	fx := scheduleServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		ownerRepo:    mockRepo.NewMockDeviceOwnerRepository(t),
		scheduleRepo: mockRepo.NewMockScheduleRepository(t),
		settingsRepo: mockRepo.NewMockUserSettingsRepository(t),
		petRepo:      mockRepo.NewMockPetRepository(t),
		timingRepo:   mockRepo.NewMockMotorTimingRepository(t),
		eventRepo:    mockRepo.NewMockEventRepository(t),
		statusRepo:   mockRepo.NewMockDeviceStatusRepository(t),
	}

	svc := NewScheduleService(ScheduleServiceParams{
		TxManager:    fx.txManager,
		OwnerRepo:    fx.ownerRepo,
		ScheduleRepo: fx.scheduleRepo,
		SettingsRepo: fx.settingsRepo,
		Config:       newTestConfig(constants.RegistrationModeOpen),
		Logger:       newDiscardLogger(),
	})
	svc.(*scheduleService).now = func() time.Time { return fixedNow }
	fx.service = svc

	return fx
}

func (fx scheduleServiceFixtures) expectReferences(owner *entity.DeviceOwner, pet *entity.Pet, timingID uuid.UUID) {
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewDeviceOwnerRepository().Return(fx.ownerRepo)
	fx.factory.EXPECT().NewPetRepository().Return(fx.petRepo)
	fx.ownerRepo.EXPECT().FindOwnerByID(mock.Anything, owner.ID).Return(owner, nil)
	fx.petRepo.EXPECT().FindPetByID(mock.Anything, pet.ID).Return(pet, nil)
	if timingID != uuid.Nil {
		fx.factory.EXPECT().NewMotorTimingRepository().Return(fx.timingRepo)
		fx.timingRepo.EXPECT().FindMotorTimingByID(mock.Anything, timingID).Return(&entity.MotorTiming{ID: timingID}, nil)
	}
}

func (fx scheduleServiceFixtures) expectScheduleSync(owner *entity.DeviceOwner) {
	fx.factory.EXPECT().NewEventRepository().Return(fx.eventRepo)
	fx.factory.EXPECT().NewDeviceStatusRepository().Return(fx.statusRepo)
	fx.eventRepo.EXPECT().
		GetOrCreatePending(mock.Anything, mock.MatchedBy(func(e *entity.EventQueueEntry) bool {
			return e.Code == entity.EventScheduleSync
		})).
		RunAndReturn(func(_ context.Context, e *entity.EventQueueEntry) (*entity.EventQueueEntry, bool, error) {
			return e, true, nil
		})
	fx.statusRepo.EXPECT().SetHasEvent(mock.Anything, owner.DeviceID, true).Return(nil)
}

func TestScheduleService_Create(t *testing.T) {
	fx := createTestScheduleService(t)
	ctx := context.Background()
	owner := newTestOwner()
	pet := &entity.Pet{ID: uuid.New(), UserID: owner.UserID, Name: "Miso"}
	timingID := uuid.New()
	tz := "Europe/Berlin"

	fx.settingsRepo.EXPECT().
		FindUserSettings(ctx, owner.UserID).
		Return(&entity.UserSettings{UserID: owner.UserID, Record: entity.SettingsRecord{Version: 2, Timezone: &tz}}, nil)
	fx.expectReferences(owner, pet, timingID)
	fx.factory.EXPECT().NewScheduleRepository().Return(fx.scheduleRepo)
	fx.scheduleRepo.EXPECT().CreateSchedule(ctx, mock.AnythingOfType("*entity.FeedingSchedule")).Return(nil)
	fx.expectScheduleSync(owner)

	created, err := fx.service.Create(ctx, owner.UserID, owner.ID, &usecase.ScheduleInput{
		PetID:         pet.ID,
		MotorTimingID: timingID,
		Label:         " Breakfast ",
		Days:          entity.DayBit(time.Monday) | entity.DayBit(time.Friday),
		Time:          "06:30",
		Active:        true,
	})

	require.NoError(t, err)
	assert.Equal(t, "Breakfast", created.Label)
	assert.Equal(t, owner.ID, created.DeviceOwnerID)
	assert.Equal(t, "06:30:00", created.UTCTime.String())
	// Berlin is UTC+2 in May.
	assert.Equal(t, "08:30:00", created.LocalTime.String())
	assert.Equal(t, fixedNow, created.CreatedAt)
}

func TestScheduleService_Create_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input usecase.ScheduleInput
		want  error
	}{
		{name: "no days", input: usecase.ScheduleInput{Days: 0, Time: "06:00"}, want: domainerrors.ErrInvalidDayMask},
		{name: "unknown day bit", input: usecase.ScheduleInput{Days: 0x80, Time: "06:00"}, want: domainerrors.ErrInvalidDayMask},
		{name: "hour out of range", input: usecase.ScheduleInput{Days: entity.AllDays, Time: "25:00"}, want: domainerrors.ErrInvalidTimeOfDay},
		{name: "not a time", input: usecase.ScheduleInput{Days: entity.AllDays, Time: "noon"}, want: domainerrors.ErrInvalidTimeOfDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestScheduleService(t)

			_, err := fx.service.Create(context.Background(), uuid.New(), uuid.New(), &tt.input)

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestScheduleService_Create_ForeignPet(t *testing.T) {
	fx := createTestScheduleService(t)
	ctx := context.Background()
	owner := newTestOwner()
	pet := &entity.Pet{ID: uuid.New(), UserID: uuid.New()}

	fx.settingsRepo.EXPECT().FindUserSettings(ctx, owner.UserID).Return(nil, repository.ErrSettingsNotFound)
	fx.expectReferences(owner, pet, uuid.Nil)

	_, err := fx.service.Create(ctx, owner.UserID, owner.ID, &usecase.ScheduleInput{
		PetID: pet.ID,
		Days:  entity.AllDays,
		Time:  "07:00",
	})

	assert.ErrorIs(t, err, domainerrors.ErrPetNotFound)
}

func TestScheduleService_Delete_OtherFeedersSchedule(t *testing.T) {
	fx := createTestScheduleService(t)
	ctx := context.Background()
	owner := newTestOwner()
	foreign := &entity.FeedingSchedule{ID: uuid.New(), DeviceOwnerID: uuid.New()}

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewDeviceOwnerRepository().Return(fx.ownerRepo)
	fx.factory.EXPECT().NewScheduleRepository().Return(fx.scheduleRepo)
	fx.ownerRepo.EXPECT().FindOwnerByID(ctx, owner.ID).Return(owner, nil)
	fx.scheduleRepo.EXPECT().FindScheduleByID(ctx, foreign.ID).Return(foreign, nil)

	err := fx.service.Delete(ctx, owner.UserID, owner.ID, foreign.ID)

	assert.ErrorIs(t, err, domainerrors.ErrScheduleNotFound)
}

func TestScheduleService_Delete(t *testing.T) {
	fx := createTestScheduleService(t)
	ctx := context.Background()
	owner := newTestOwner()
	current := &entity.FeedingSchedule{ID: uuid.New(), DeviceOwnerID: owner.ID}

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewDeviceOwnerRepository().Return(fx.ownerRepo)
	fx.factory.EXPECT().NewScheduleRepository().Return(fx.scheduleRepo)
	fx.ownerRepo.EXPECT().FindOwnerByID(ctx, owner.ID).Return(owner, nil)
	fx.scheduleRepo.EXPECT().FindScheduleByID(ctx, current.ID).Return(current, nil)
	fx.scheduleRepo.EXPECT().DeleteSchedule(ctx, current.ID).Return(nil)
	fx.expectScheduleSync(owner)

	require.NoError(t, fx.service.Delete(ctx, owner.UserID, owner.ID, current.ID))
}

func TestScheduleService_List_ForeignFeeder(t *testing.T) {
	fx := createTestScheduleService(t)
	ctx := context.Background()
	owner := newTestOwner()

	fx.ownerRepo.EXPECT().FindOwnerByID(ctx, owner.ID).Return(owner, nil)

	_, err := fx.service.List(ctx, uuid.New(), owner.ID)

	assert.ErrorIs(t, err, domainerrors.ErrFeederNotFound)
}

func TestPetService(t *testing.T) {
	petRepo := mockRepo.NewMockPetRepository(t)
	svc := NewPetService(PetServiceParams{PetRepo: petRepo, Logger: newDiscardLogger()})
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.Create(ctx, userID, "   ")
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())

	petRepo.EXPECT().CreatePet(ctx, mock.AnythingOfType("*entity.Pet")).Return(nil)
	pet, err := svc.Create(ctx, userID, " Miso ")
	require.NoError(t, err)
	assert.Equal(t, "Miso", pet.Name)
	assert.Equal(t, userID, pet.UserID)
}
