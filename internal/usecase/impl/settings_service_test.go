package impl

import (
	"context"
	"testing"
	"time"

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

type settingsServiceFixtures struct {
	service              usecase.SettingsUsecase
	txManager            *mockRepo.MockTransactionManager
	factory              *mockRepo.MockRepositoryFactory
	settingsRepo         *mockRepo.MockUserSettingsRepository
	notificationSettings *mockRepo.MockNotificationSettingsRepository
	ownerRepo            *mockRepo.MockDeviceOwnerRepository
	eventRepo            *mockRepo.MockEventRepository
	statusRepo           *mockRepo.MockDeviceStatusRepository
}

func createTestSettingsService(t *testing.T) settingsServiceFixtures {
	fx := settingsServiceFixtures{
		txManager:            mockRepo.NewMockTransactionManager(t),
		factory:              mockRepo.NewMockRepositoryFactory(t),
		settingsRepo:         mockRepo.NewMockUserSettingsRepository(t),
		notificationSettings: mockRepo.NewMockNotificationSettingsRepository(t),
		ownerRepo:            mockRepo.NewMockDeviceOwnerRepository(t),
		eventRepo:            mockRepo.NewMockEventRepository(t),
		statusRepo:           mockRepo.NewMockDeviceStatusRepository(t),
	}

	svc := NewSettingsService(SettingsServiceParams{
		TxManager:            fx.txManager,
		SettingsRepo:         fx.settingsRepo,
		NotificationSettings: fx.notificationSettings,
		Logger:               newDiscardLogger(),
	})
	svc.(*settingsService).now = func() time.Time { return fixedNow }
	fx.service = svc

	return fx
}

func TestSettingsService_Get_NoRecord(t *testing.T) {
	fx := createTestSettingsService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.settingsRepo.EXPECT().FindUserSettings(ctx, userID).Return(nil, repository.ErrSettingsNotFound)

	settings, err := fx.service.Get(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, entity.SettingsVersion, settings.Record.Version)
	require.NotNil(t, settings.Record.IsSetupDone)
	assert.False(t, *settings.Record.IsSetupDone)
	require.NotNil(t, settings.Record.Clock24h)
	assert.True(t, *settings.Record.Clock24h)
	assert.Nil(t, settings.Record.Timezone)
}

func TestSettingsService_Get_UpgradesOldRecord(t *testing.T) {
	fx := createTestSettingsService(t)
	ctx := context.Background()
	userID := uuid.New()
	done := true
	stored := &entity.UserSettings{UserID: userID, Record: entity.SettingsRecord{Version: 1, IsSetupDone: &done}}

	fx.settingsRepo.EXPECT().FindUserSettings(ctx, userID).Return(stored, nil)
	fx.settingsRepo.EXPECT().
		SaveUserSettings(ctx, stored).
		Run(func(_ context.Context, s *entity.UserSettings) {
			assert.Equal(t, entity.SettingsVersion, s.Record.Version)
			assert.Equal(t, fixedNow, s.UpdatedAt)
		}).
		Return(nil)

	settings, err := fx.service.Get(ctx, userID)

	require.NoError(t, err)
	assert.True(t, *settings.Record.IsSetupDone)
	assert.True(t, *settings.Record.Clock24h)
}

func TestSettingsService_Get_CurrentRecordNotRewritten(t *testing.T) {
	fx := createTestSettingsService(t)
	ctx := context.Background()
	userID := uuid.New()
	done, clock := true, false
	stored := &entity.UserSettings{UserID: userID, Record: entity.SettingsRecord{Version: 2, IsSetupDone: &done, Clock24h: &clock}}

	fx.settingsRepo.EXPECT().FindUserSettings(ctx, userID).Return(stored, nil)

	settings, err := fx.service.Get(ctx, userID)

	require.NoError(t, err)
	assert.False(t, *settings.Record.Clock24h)
}

func TestSettingsService_Update_QueuesSettingsSync(t *testing.T) {
	fx := createTestSettingsService(t)
	ctx := context.Background()
	userID := uuid.New()
	first, second := newTestOwner(), newTestOwner()
	tz := "Europe/Berlin"

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewUserSettingsRepository().Return(fx.settingsRepo)
	fx.factory.EXPECT().NewDeviceOwnerRepository().Return(fx.ownerRepo)
	fx.factory.EXPECT().NewEventRepository().Return(fx.eventRepo)
	fx.factory.EXPECT().NewDeviceStatusRepository().Return(fx.statusRepo)

	fx.settingsRepo.EXPECT().FindUserSettings(ctx, userID).Return(nil, repository.ErrSettingsNotFound)
	fx.settingsRepo.EXPECT().SaveUserSettings(ctx, mock.AnythingOfType("*entity.UserSettings")).Return(nil)
	fx.ownerRepo.EXPECT().FindOwnersByUser(ctx, userID).Return([]*entity.DeviceOwner{first, second}, nil)
	fx.eventRepo.EXPECT().
		GetOrCreatePending(ctx, mock.MatchedBy(func(e *entity.EventQueueEntry) bool {
			return e.Code == entity.EventSettingsSync
		})).
		RunAndReturn(func(_ context.Context, e *entity.EventQueueEntry) (*entity.EventQueueEntry, bool, error) {
			return e, true, nil
		}).
		Times(2)
	fx.statusRepo.EXPECT().SetHasEvent(ctx, first.DeviceID, true).Return(nil)
	fx.statusRepo.EXPECT().SetHasEvent(ctx, second.DeviceID, true).Return(nil)

	settings, err := fx.service.Update(ctx, userID, entity.SettingsRecord{Timezone: &tz})

	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", *settings.Record.Timezone)
	assert.Equal(t, entity.SettingsVersion, settings.Record.Version)
	assert.Equal(t, fixedNow, settings.UpdatedAt)
}

func TestSettingsService_Update_InvalidTimezone(t *testing.T) {
	fx := createTestSettingsService(t)
	tz := "Atlantis/Central"

	_, err := fx.service.Update(context.Background(), uuid.New(), entity.SettingsRecord{Timezone: &tz})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INVALID_TIMEZONE", appErr.ErrorCode())
}

func TestSettingsService_NotificationSettings(t *testing.T) {
	fx := createTestSettingsService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.notificationSettings.EXPECT().FindNotificationSettings(ctx, userID).Return(nil, repository.ErrNotificationSettingsNotFound)

	current, err := fx.service.GetNotificationSettings(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, userID, current.UserID)
	assert.False(t, current.FeederOffline)
	assert.False(t, current.HasDeliveryTarget())

	fx.notificationSettings.EXPECT().SaveNotificationSettings(ctx, mock.AnythingOfType("*entity.NotificationSettings")).Return(nil)

	saved, err := fx.service.UpdateNotificationSettings(ctx, userID, &entity.NotificationSettings{
		UserID:          uuid.New(),
		PushoverUserKey: " u-key ",
		PushoverDevices: []string{"phone", " ", "phone", "tablet "},
		FeederOffline:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, userID, saved.UserID)
	assert.Equal(t, "u-key", saved.PushoverUserKey)
	assert.Equal(t, []string{"phone", "tablet"}, saved.PushoverDevices)
	assert.Empty(t, saved.PushTokens)
	assert.True(t, saved.FeederOffline)
}
