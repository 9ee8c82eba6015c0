package impl

import (
	"context"
	"testing"
	"time"

	"petfeeder/internal/domain/constants"
	"petfeeder/internal/domain/entity"
	"petfeeder/internal/domain/repository"
	"petfeeder/internal/domain/service"
	mockRepo "petfeeder/internal/mocks/repository"
	mockSvc "petfeeder/internal/mocks/service"
	"petfeeder/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type alertServiceFixtures struct {
	service      usecase.AlertUsecase
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	settingsRepo *mockRepo.MockNotificationSettingsRepository
	trackingRepo *mockRepo.MockAlertTrackingRepository
	messageRepo  *mockRepo.MockMessageRepository
	statusRepo   *mockRepo.MockDeviceStatusRepository
	publisher    *mockSvc.MockEventPublisher
}

func createTestAlertService(t *testing.T) alertServiceFixtures {
	fx := alertServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		settingsRepo: mockRepo.NewMockNotificationSettingsRepository(t),
		trackingRepo: mockRepo.NewMockAlertTrackingRepository(t),
		messageRepo:  mockRepo.NewMockMessageRepository(t),
		statusRepo:   mockRepo.NewMockDeviceStatusRepository(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	svc := NewAlertService(AlertServiceParams{
		TxManager:    fx.txManager,
		SettingsRepo: fx.settingsRepo,
		Publisher:    fx.publisher,
		Config:       newTestConfig(constants.RegistrationModeOpen),
		Logger:       newDiscardLogger(),
	})
	svc.(*alertService).now = func() time.Time { return fixedNow }
	fx.service = svc

	return fx
}

// withTracking serves the same tracking row to every transaction.
func (fx alertServiceFixtures) withTracking(tracking *entity.AlertTracking) {
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewAlertTrackingRepository().Return(fx.trackingRepo)
	fx.trackingRepo.EXPECT().LockTracking(mock.Anything, tracking.DeviceOwnerID).Return(tracking, nil)
}

// withCurrentStatus serves the row RaiseOffline re-reads under the lock.
func (fx alertServiceFixtures) withCurrentStatus(status *entity.DeviceStatus) {
	fx.factory.EXPECT().NewDeviceStatusRepository().Return(fx.statusRepo)
	fx.statusRepo.EXPECT().FindStatusByDeviceID(mock.Anything, status.DeviceID).Return(status, nil)
}

// collectMessages captures the text of every queued message.
func (fx alertServiceFixtures) collectMessages(texts *[]string) {
	fx.factory.EXPECT().NewMessageRepository().Return(fx.messageRepo)
	fx.messageRepo.EXPECT().
		CreateMessage(mock.Anything, mock.AnythingOfType("*entity.MessageQueueEntry")).
		Run(func(_ context.Context, message *entity.MessageQueueEntry) {
			*texts = append(*texts, message.Message)
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishMessagesQueued(mock.Anything, mock.MatchedBy(func(e *service.MessagesQueuedEvent) bool {
			return len(e.MessageIDs) == 1
		})).
		Return(nil)
}

func TestAlertService_PowerDisconnect_EdgeTriggered(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	owner := newTestOwner()
	tracking := &entity.AlertTracking{DeviceOwnerID: owner.ID}
	settings := &entity.NotificationSettings{UserID: owner.UserID, PowerDisconnected: true}

	var texts []string
	fx.settingsRepo.EXPECT().FindNotificationSettings(ctx, owner.UserID).Return(settings, nil)
	fx.withTracking(tracking)
	fx.collectMessages(&texts)
	fx.trackingRepo.EXPECT().SaveTracking(mock.Anything, tracking).Return(nil).Times(2)

	for _, onPower := range []bool{true, false, false, true} {
		status := &entity.DeviceStatus{DeviceID: owner.DeviceID, OnPower: onPower}
		require.NoError(t, fx.service.EvaluateHeartbeat(ctx, owner, status))
	}

	require.Len(t, texts, 2)
	assert.Equal(t, "Power has been disconnected from your feeder. It is currently running on battery.", texts[0])
	assert.Equal(t, "The power to your feeder has been restored.", texts[1])
	assert.False(t, tracking.PowerDisconnected)
}

func TestAlertService_LowBattery_InsideWindow(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	owner := newTestOwner()
	tracking := &entity.AlertTracking{DeviceOwnerID: owner.ID}
	settings := &entity.NotificationSettings{UserID: owner.UserID, LowBattery: true}

	var texts []string
	fx.settingsRepo.EXPECT().FindNotificationSettings(ctx, owner.UserID).Return(settings, nil)
	fx.withTracking(tracking)
	fx.collectMessages(&texts)
	fx.trackingRepo.EXPECT().SaveTracking(mock.Anything, tracking).Return(nil).Once()

	// 10% at -22%/h leaves about 1636 seconds.
	status := &entity.DeviceStatus{
		DeviceID:       owner.DeviceID,
		OnPower:        false,
		BatterySOC:     10,
		BatteryCRate:   -22,
		BatteryVoltage: 3.2,
	}
	require.NoError(t, fx.service.EvaluateHeartbeat(ctx, owner, status))
	// Still draining: already alerting, nothing new.
	require.NoError(t, fx.service.EvaluateHeartbeat(ctx, owner, status))

	require.Len(t, texts, 1)
	assert.Contains(t, texts[0], "27 minutes of running time remaining")
	assert.True(t, tracking.LowBattery)
}

func TestAlertService_DisabledKindsAreIgnored(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	owner := newTestOwner()
	settings := &entity.NotificationSettings{UserID: owner.UserID, PushoverUserKey: "u-key"}

	fx.settingsRepo.EXPECT().FindNotificationSettings(ctx, owner.UserID).Return(settings, nil)

	status := &entity.DeviceStatus{DeviceID: owner.DeviceID, OnPower: false, IsHopperLow: true}
	require.NoError(t, fx.service.EvaluateHeartbeat(ctx, owner, status))
}

func TestAlertService_NoSettings(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	owner := newTestOwner()

	fx.settingsRepo.EXPECT().FindNotificationSettings(ctx, owner.UserID).Return(nil, repository.ErrNotificationSettingsNotFound)

	status := &entity.DeviceStatus{DeviceID: owner.DeviceID, OnPower: false}
	require.NoError(t, fx.service.EvaluateHeartbeat(ctx, owner, status))

	raised, err := fx.service.RaiseOffline(ctx, owner, status, time.Hour)
	require.NoError(t, err)
	assert.False(t, raised)
}

func TestAlertService_OfflineRaiseThenRecover(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	owner := newTestOwner()
	tracking := &entity.AlertTracking{DeviceOwnerID: owner.ID}
	settings := &entity.NotificationSettings{UserID: owner.UserID, FeederOffline: true}
	status := &entity.DeviceStatus{DeviceID: owner.DeviceID, OnPower: true, LastPing: fixedNow.Add(-6 * time.Minute)}

	var texts []string
	fx.settingsRepo.EXPECT().FindNotificationSettings(ctx, owner.UserID).Return(settings, nil)
	fx.withTracking(tracking)
	fx.withCurrentStatus(status)
	fx.collectMessages(&texts)
	fx.trackingRepo.EXPECT().SaveTracking(mock.Anything, tracking).Return(nil).Times(2)

	raised, err := fx.service.RaiseOffline(ctx, owner, status, 6*time.Minute)
	require.NoError(t, err)
	assert.True(t, raised)

	raised, err = fx.service.RaiseOffline(ctx, owner, status, 7*time.Minute)
	require.NoError(t, err)
	assert.False(t, raised)

	require.NoError(t, fx.service.EvaluateHeartbeat(ctx, owner, status))

	require.Len(t, texts, 2)
	assert.Contains(t, texts[0], "currently offline")
	assert.Equal(t, "Your feeder is back online.", texts[1])
	assert.False(t, tracking.Offline)
}

func TestAlertService_RaiseOffline_BelowThreshold(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	owner := newTestOwner()
	tracking := &entity.AlertTracking{DeviceOwnerID: owner.ID}
	settings := &entity.NotificationSettings{UserID: owner.UserID, FeederOffline: true}

	status := &entity.DeviceStatus{DeviceID: owner.DeviceID, LastPing: fixedNow.Add(-4 * time.Minute)}

	fx.settingsRepo.EXPECT().FindNotificationSettings(ctx, owner.UserID).Return(settings, nil)
	fx.withTracking(tracking)
	fx.withCurrentStatus(status)

	raised, err := fx.service.RaiseOffline(ctx, owner, status, 4*time.Minute)

	require.NoError(t, err)
	assert.False(t, raised)
	assert.False(t, tracking.Offline)
}

func TestAlertService_RaiseOffline_HeartbeatSinceSweep(t *testing.T) {
	fx := createTestAlertService(t)
	ctx := context.Background()
	owner := newTestOwner()
	tracking := &entity.AlertTracking{DeviceOwnerID: owner.ID}
	settings := &entity.NotificationSettings{UserID: owner.UserID, FeederOffline: true}
	swept := &entity.DeviceStatus{DeviceID: owner.DeviceID, LastPing: fixedNow.Add(-10 * time.Minute)}

	fx.settingsRepo.EXPECT().FindNotificationSettings(ctx, owner.UserID).Return(settings, nil)
	fx.withTracking(tracking)
	fx.withCurrentStatus(&entity.DeviceStatus{DeviceID: owner.DeviceID, LastPing: fixedNow.Add(-5 * time.Second)})

	raised, err := fx.service.RaiseOffline(ctx, owner, swept, 10*time.Minute)

	require.NoError(t, err)
	assert.False(t, raised)
	assert.False(t, tracking.Offline)
}
