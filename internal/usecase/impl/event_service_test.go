package impl

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"petfeeder/internal/domain/entity"
	domainerrors "petfeeder/internal/domain/errors"
	"petfeeder/internal/domain/repository"
	mockRepo "petfeeder/internal/mocks/repository"
	"petfeeder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type eventServiceFixtures struct {
	service    usecase.EventUsecase
	txManager  *mockRepo.MockTransactionManager
	factory    *mockRepo.MockRepositoryFactory
	eventRepo  *mockRepo.MockEventRepository
	ownerRepo  *mockRepo.MockDeviceOwnerRepository
	statusRepo *mockRepo.MockDeviceStatusRepository
}

func createTestEventService(t *testing.T) eventServiceFixtures {
	fx := eventServiceFixtures{
		txManager:  mockRepo.NewMockTransactionManager(t),
		factory:    mockRepo.NewMockRepositoryFactory(t),
		eventRepo:  mockRepo.NewMockEventRepository(t),
		ownerRepo:  mockRepo.NewMockDeviceOwnerRepository(t),
		statusRepo: mockRepo.NewMockDeviceStatusRepository(t),
	}

	svc := NewEventService(EventServiceParams{
		TxManager: fx.txManager,
		EventRepo: fx.eventRepo,
		Logger:    newDiscardLogger(),
	})
	svc.(*eventService).now = func() time.Time { return fixedNow }
	fx.service = svc

	return fx
}

func TestEventService_Enqueue_RefreshesCoalescedPayload(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()
	owner := newTestOwner()
	existing := &entity.EventQueueEntry{
		ID:            uuid.New(),
		DeviceOwnerID: owner.ID,
		Code:          entity.EventFeedNow,
		Status:        entity.EventStatusPending,
		Payload:       json.RawMessage(`{"feed_amt":0.2,"ticks":5}`),
		UpdatedAt:     fixedNow.Add(-time.Minute),
	}

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewDeviceOwnerRepository().Return(fx.ownerRepo)
	fx.factory.EXPECT().NewEventRepository().Return(fx.eventRepo)
	fx.factory.EXPECT().NewDeviceStatusRepository().Return(fx.statusRepo)

	fx.ownerRepo.EXPECT().FindOwnerByID(ctx, owner.ID).Return(owner, nil)
	fx.eventRepo.EXPECT().
		GetOrCreatePending(ctx, mock.AnythingOfType("*entity.EventQueueEntry")).
		Return(existing, false, nil)
	fx.eventRepo.EXPECT().
		RefreshPayload(ctx, existing.ID, mock.AnythingOfType("json.RawMessage"), fixedNow).
		Run(func(_ context.Context, _ uuid.UUID, raw json.RawMessage, _ time.Time) {
			var payload entity.FeedNowPayload
			require.NoError(t, json.Unmarshal(raw, &payload))
			assert.InDelta(t, 0.5, payload.FeedAmount, 0.0001)
			assert.Equal(t, 12, payload.Ticks)
		}).
		Return(nil)
	fx.statusRepo.EXPECT().SetHasEvent(ctx, owner.DeviceID, true).Return(nil)

	entry, err := fx.service.Enqueue(ctx, owner.ID, entity.EventFeedNow, entity.FeedNowPayload{FeedAmount: 0.5, Ticks: 12})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, entry.ID)
	assert.Equal(t, fixedNow, entry.UpdatedAt)

	var payload entity.FeedNowPayload
	require.NoError(t, json.Unmarshal(entry.Payload, &payload))
	assert.InDelta(t, 0.5, payload.FeedAmount, 0.0001)
}

func TestEventService_Enqueue_CoalescedWithoutPayload(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()
	owner := newTestOwner()
	existing := &entity.EventQueueEntry{ID: uuid.New(), DeviceOwnerID: owner.ID, Code: entity.EventScheduleSync, Status: entity.EventStatusPending}

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewDeviceOwnerRepository().Return(fx.ownerRepo)
	fx.factory.EXPECT().NewEventRepository().Return(fx.eventRepo)
	fx.factory.EXPECT().NewDeviceStatusRepository().Return(fx.statusRepo)

	fx.ownerRepo.EXPECT().FindOwnerByID(ctx, owner.ID).Return(owner, nil)
	fx.eventRepo.EXPECT().
		GetOrCreatePending(ctx, mock.MatchedBy(func(e *entity.EventQueueEntry) bool {
			return e.Code == entity.EventScheduleSync && e.Payload == nil
		})).
		Return(existing, false, nil)
	fx.statusRepo.EXPECT().SetHasEvent(ctx, owner.DeviceID, true).Return(nil)

	entry, err := fx.service.Enqueue(ctx, owner.ID, entity.EventScheduleSync, nil)

	require.NoError(t, err)
	assert.Equal(t, existing, entry)
}

func TestEventService_Enqueue_UnknownFeeder(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()
	ownerID := uuid.New()

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewDeviceOwnerRepository().Return(fx.ownerRepo)
	fx.ownerRepo.EXPECT().FindOwnerByID(ctx, ownerID).Return(nil, repository.ErrOwnerNotFound)

	_, err := fx.service.Enqueue(ctx, ownerID, entity.EventScheduleSync, nil)

	assert.ErrorIs(t, err, domainerrors.ErrFeederNotFound)
}

func TestEventService_Complete_LastPendingClearsFlag(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()
	owner := newTestOwner()
	precise := fixedNow.Add(1500 * time.Nanosecond)
	fx.service.(*eventService).now = func() time.Time { return precise }
	entry := &entity.EventQueueEntry{ID: uuid.New(), DeviceOwnerID: owner.ID, Code: entity.EventScheduleSync, Status: entity.EventStatusPending}
	stored := &entity.EventQueueEntry{
		ID:            entry.ID,
		DeviceOwnerID: owner.ID,
		Code:          entity.EventScheduleSync,
		Status:        entity.EventStatusCompleted,
		UpdatedAt:     precise.Truncate(time.Microsecond),
	}

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewEventRepository().Return(fx.eventRepo)
	fx.factory.EXPECT().NewDeviceStatusRepository().Return(fx.statusRepo)

	fx.eventRepo.EXPECT().FindEventForOwner(ctx, owner.ID, entry.ID).Return(entry, nil).Once()
	fx.eventRepo.EXPECT().MarkCompleted(ctx, entry.ID, precise).Return(true, nil).Once()
	fx.eventRepo.EXPECT().FindEventForOwner(ctx, owner.ID, entry.ID).Return(stored, nil)
	fx.eventRepo.EXPECT().CountPending(ctx, owner.ID).Return(int64(0), nil).Once()
	fx.statusRepo.EXPECT().SetHasEvent(ctx, owner.DeviceID, false).Return(nil).Once()
	fx.statusRepo.EXPECT().TouchPing(ctx, owner.DeviceID, precise).Return(nil).Once()

	first, err := fx.service.Complete(ctx, owner, entry.ID)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, first.Status)
	assert.Equal(t, entity.EventStatusCompleted, first.Event.Status)
	assert.Equal(t, stored.UpdatedAt, first.Event.UpdatedAt)

	again, err := fx.service.Complete(ctx, owner, entry.ID)

	require.NoError(t, err)
	assert.Equal(t, first.Event.UpdatedAt, again.Event.UpdatedAt)
}

func TestEventService_Complete_OthersStillPending(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()
	owner := newTestOwner()
	entry := &entity.EventQueueEntry{ID: uuid.New(), DeviceOwnerID: owner.ID, Code: entity.EventFeedNow, Status: entity.EventStatusPending}

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewEventRepository().Return(fx.eventRepo)
	fx.factory.EXPECT().NewDeviceStatusRepository().Return(fx.statusRepo)

	fx.eventRepo.EXPECT().FindEventForOwner(ctx, owner.ID, entry.ID).Return(entry, nil).Once()
	fx.eventRepo.EXPECT().MarkCompleted(ctx, entry.ID, fixedNow).Return(true, nil)
	fx.eventRepo.EXPECT().FindEventForOwner(ctx, owner.ID, entry.ID).Return(&entity.EventQueueEntry{ID: entry.ID, Status: entity.EventStatusCompleted}, nil).Once()
	fx.eventRepo.EXPECT().CountPending(ctx, owner.ID).Return(int64(2), nil)
	fx.statusRepo.EXPECT().SetHasEvent(ctx, owner.DeviceID, true).Return(nil)
	fx.statusRepo.EXPECT().TouchPing(ctx, owner.DeviceID, fixedNow).Return(nil)

	_, err := fx.service.Complete(ctx, owner, entry.ID)

	require.NoError(t, err)
}

func TestEventService_Complete_AlreadyCompleted(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()
	owner := newTestOwner()
	done := &entity.EventQueueEntry{
		ID:            uuid.New(),
		DeviceOwnerID: owner.ID,
		Code:          entity.EventFeedNow,
		Status:        entity.EventStatusCompleted,
		UpdatedAt:     fixedNow.Add(-time.Minute),
	}

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewEventRepository().Return(fx.eventRepo)
	fx.factory.EXPECT().NewDeviceStatusRepository().Return(fx.statusRepo)
	fx.eventRepo.EXPECT().FindEventForOwner(ctx, owner.ID, done.ID).Return(done, nil)

	result, err := fx.service.Complete(ctx, owner, done.ID)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.Status)
	assert.Equal(t, done, result.Event)
	assert.Equal(t, fixedNow.Add(-time.Minute), result.Event.UpdatedAt)
}

func TestEventService_Complete_ConcurrentAck(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()
	owner := newTestOwner()
	entry := &entity.EventQueueEntry{ID: uuid.New(), DeviceOwnerID: owner.ID, Status: entity.EventStatusPending}
	stored := &entity.EventQueueEntry{ID: entry.ID, DeviceOwnerID: owner.ID, Status: entity.EventStatusCompleted}

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewEventRepository().Return(fx.eventRepo)
	fx.factory.EXPECT().NewDeviceStatusRepository().Return(fx.statusRepo)

	fx.eventRepo.EXPECT().FindEventForOwner(ctx, owner.ID, entry.ID).Return(entry, nil).Once()
	fx.eventRepo.EXPECT().MarkCompleted(ctx, entry.ID, fixedNow).Return(false, nil)
	fx.eventRepo.EXPECT().FindEventForOwner(ctx, owner.ID, entry.ID).Return(stored, nil).Once()

	result, err := fx.service.Complete(ctx, owner, entry.ID)

	require.NoError(t, err)
	assert.Equal(t, stored, result.Event)
}

func TestEventService_Complete_ForeignEntry(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()
	owner := newTestOwner()
	entryID := uuid.New()

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewEventRepository().Return(fx.eventRepo)
	fx.factory.EXPECT().NewDeviceStatusRepository().Return(fx.statusRepo)
	fx.eventRepo.EXPECT().FindEventForOwner(ctx, owner.ID, entryID).Return(nil, repository.ErrEventNotFound)

	_, err := fx.service.Complete(ctx, owner, entryID)

	assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
}

func TestEventService_Complete_DatabaseError(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()
	owner := newTestOwner()
	entryID := uuid.New()

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewEventRepository().Return(fx.eventRepo)
	fx.factory.EXPECT().NewDeviceStatusRepository().Return(fx.statusRepo)
	fx.eventRepo.EXPECT().FindEventForOwner(ctx, owner.ID, entryID).Return(nil, errors.New("connection reset"))

	_, err := fx.service.Complete(ctx, owner, entryID)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode())
}

func TestEventService_PeekOldestPending(t *testing.T) {
	fx := createTestEventService(t)
	ctx := context.Background()
	ownerID := uuid.New()
	oldest := &entity.EventQueueEntry{ID: uuid.New(), DeviceOwnerID: ownerID, Status: entity.EventStatusPending}

	fx.eventRepo.EXPECT().FindOldestPending(ctx, ownerID).Return(oldest, nil).Once()
	fx.eventRepo.EXPECT().FindOldestPending(ctx, ownerID).Return(nil, repository.ErrEventNotFound).Once()

	got, err := fx.service.PeekOldestPending(ctx, ownerID)
	require.NoError(t, err)
	assert.Equal(t, oldest, got)

	got, err = fx.service.PeekOldestPending(ctx, ownerID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
