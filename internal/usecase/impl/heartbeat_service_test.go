package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"petfeeder/internal/domain/entity"
	domainerrors "petfeeder/internal/domain/errors"
	"petfeeder/internal/domain/repository"
	mockRepo "petfeeder/internal/mocks/repository"
	mockSvc "petfeeder/internal/mocks/service"
	mockUsecase "petfeeder/internal/mocks/usecase"
	"petfeeder/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type heartbeatServiceFixtures struct {
	service    usecase.HeartbeatUsecase
	txManager  *mockRepo.MockTransactionManager
	factory    *mockRepo.MockRepositoryFactory
	ownerRepo  *mockRepo.MockDeviceOwnerRepository
	statusRepo *mockRepo.MockDeviceStatusRepository
	alerts     *mockUsecase.MockAlertUsecase
	events     *mockUsecase.MockEventUsecase
	telemetry  *mockSvc.MockTelemetryRecorder
}

func createTestHeartbeatService(t *testing.T) heartbeatServiceFixtures {
	fx := heartbeatServiceFixtures{
		txManager:  mockRepo.NewMockTransactionManager(t),
		factory:    mockRepo.NewMockRepositoryFactory(t),
		ownerRepo:  mockRepo.NewMockDeviceOwnerRepository(t),
		statusRepo: mockRepo.NewMockDeviceStatusRepository(t),
		alerts:     mockUsecase.NewMockAlertUsecase(t),
		events:     mockUsecase.NewMockEventUsecase(t),
		telemetry:  mockSvc.NewMockTelemetryRecorder(t),
	}

	svc := NewHeartbeatService(HeartbeatServiceParams{
		TxManager:  fx.txManager,
		OwnerRepo:  fx.ownerRepo,
		StatusRepo: fx.statusRepo,
		Alerts:     fx.alerts,
		Events:     fx.events,
		Telemetry:  fx.telemetry,
		Logger:     newDiscardLogger(),
	})
	svc.(*heartbeatService).now = func() time.Time { return fixedNow }
	fx.service = svc

	return fx
}

func floatPtr(v float64) *float64 { return &v }

func boolPtr(v bool) *bool { return &v }

func TestHeartbeatService_Process_AppliesTelemetry(t *testing.T) {
	fx := createTestHeartbeatService(t)
	ctx := context.Background()
	owner := newTestOwner()
	update := entity.TelemetryUpdate{
		BatterySOC: floatPtr(42),
		OnPower:    boolPtr(false),
	}
	current := &entity.DeviceStatus{
		DeviceID:        owner.DeviceID,
		LastPing:        fixedNow,
		BatterySOC:      42,
		HopperLevel:     55,
		FirmwareVersion: "1.0.0",
	}

	fx.ownerRepo.EXPECT().FindOwnerByUserAndKey(ctx, owner.UserID, owner.DeviceKey).Return(owner, nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewDeviceStatusRepository().Return(fx.statusRepo)
	fx.statusRepo.EXPECT().ApplyTelemetry(ctx, owner.DeviceID, update, fixedNow).Return(nil)
	fx.statusRepo.EXPECT().FindStatusByDeviceID(ctx, owner.DeviceID).Return(current, nil)
	fx.telemetry.EXPECT().Record(ctx, owner, current).Return()
	fx.alerts.EXPECT().EvaluateHeartbeat(ctx, owner, current).Return(nil)
	fx.events.EXPECT().PeekOldestPending(ctx, owner.ID).Return(nil, nil)

	result, err := fx.service.Process(ctx, owner.UserID, owner.DeviceKey, update)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.Status)
	assert.False(t, result.HasEvent)
	assert.Nil(t, result.Event)
}

func TestHeartbeatService_Process_CorrectsStaleFlag(t *testing.T) {
	tests := []struct {
		name     string
		stored   bool
		pending  *entity.EventQueueEntry
		expected bool
	}{
		{name: "flag set but queue empty", stored: true, pending: nil, expected: false},
		{name: "flag clear but entry waiting", stored: false, pending: &entity.EventQueueEntry{ID: uuid.New(), Code: entity.EventFeedNow}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestHeartbeatService(t)
			ctx := context.Background()
			owner := newTestOwner()
			current := &entity.DeviceStatus{DeviceID: owner.DeviceID, OnPower: true, HasEvent: tt.stored}

			fx.ownerRepo.EXPECT().FindOwnerByUserAndKey(ctx, owner.UserID, owner.DeviceKey).Return(owner, nil)
			expectTx(fx.txManager, fx.factory)
			fx.factory.EXPECT().NewDeviceStatusRepository().Return(fx.statusRepo)
			fx.statusRepo.EXPECT().ApplyTelemetry(ctx, owner.DeviceID, entity.TelemetryUpdate{}, fixedNow).Return(nil)
			fx.statusRepo.EXPECT().FindStatusByDeviceID(ctx, owner.DeviceID).Return(current, nil)
			fx.telemetry.EXPECT().Record(ctx, owner, current).Return()
			fx.alerts.EXPECT().EvaluateHeartbeat(ctx, owner, current).Return(nil)
			fx.events.EXPECT().PeekOldestPending(ctx, owner.ID).Return(tt.pending, nil)
			fx.statusRepo.EXPECT().SetHasEvent(ctx, owner.DeviceID, tt.expected).Return(nil)

			result, err := fx.service.Process(ctx, owner.UserID, owner.DeviceKey, entity.TelemetryUpdate{})

			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.HasEvent)
			assert.Equal(t, tt.pending, result.Event)
		})
	}
}

func TestHeartbeatService_Process_FirstHeartbeatCreatesStatus(t *testing.T) {
	fx := createTestHeartbeatService(t)
	ctx := context.Background()
	owner := newTestOwner()

	fx.ownerRepo.EXPECT().FindOwnerByUserAndKey(ctx, owner.UserID, owner.DeviceKey).Return(owner, nil)
	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewDeviceStatusRepository().Return(fx.statusRepo)
	fx.statusRepo.EXPECT().ApplyTelemetry(ctx, owner.DeviceID, mock.Anything, fixedNow).Return(repository.ErrStatusNotFound)
	fx.statusRepo.EXPECT().
		SaveStatus(ctx, mock.MatchedBy(func(s *entity.DeviceStatus) bool {
			return s.DeviceID == owner.DeviceID && s.LastBoot.Equal(fixedNow) && s.FirmwareVersion == "2.1.0"
		})).
		Return(nil)
	fx.telemetry.EXPECT().Record(ctx, owner, mock.AnythingOfType("*entity.DeviceStatus")).Return()
	fx.alerts.EXPECT().EvaluateHeartbeat(ctx, owner, mock.AnythingOfType("*entity.DeviceStatus")).Return(nil)
	fx.events.EXPECT().PeekOldestPending(ctx, owner.ID).Return(nil, nil)

	fw := "2.1.0"
	result, err := fx.service.Process(ctx, owner.UserID, owner.DeviceKey, entity.TelemetryUpdate{FirmwareVersion: &fw})

	require.NoError(t, err)
	assert.False(t, result.HasEvent)
}

func TestHeartbeatService_Process_UnknownKey(t *testing.T) {
	fx := createTestHeartbeatService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.ownerRepo.EXPECT().FindOwnerByUserAndKey(ctx, userID, "nope").Return(nil, repository.ErrOwnerNotFound)

	_, err := fx.service.Process(ctx, userID, "nope", entity.TelemetryUpdate{})

	assert.ErrorIs(t, err, domainerrors.ErrDeviceKeyInvalid)
}
