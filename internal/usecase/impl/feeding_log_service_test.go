package impl

import (
	"context"
	"testing"
	"time"

	"petfeeder/internal/domain/entity"
	domainerrors "petfeeder/internal/domain/errors"
	"petfeeder/internal/domain/service"
	mockRepo "petfeeder/internal/mocks/repository"
	mockSvc "petfeeder/internal/mocks/service"
	"petfeeder/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type feedingLogServiceFixtures struct {
	service      usecase.FeedingLogUsecase
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	ownerRepo    *mockRepo.MockDeviceOwnerRepository
	logRepo      *mockRepo.MockFeedingLogRepository
	settingsRepo *mockRepo.MockNotificationSettingsRepository
	messageRepo  *mockRepo.MockMessageRepository
	publisher    *mockSvc.MockEventPublisher
}

func createTestFeedingLogService(t *testing.T) feedingLogServiceFixtures {
	fx := feedingLogServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		ownerRepo:    mockRepo.NewMockDeviceOwnerRepository(t),
		logRepo:      mockRepo.NewMockFeedingLogRepository(t),
		settingsRepo: mockRepo.NewMockNotificationSettingsRepository(t),
		messageRepo:  mockRepo.NewMockMessageRepository(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	svc := NewFeedingLogService(FeedingLogServiceParams{
		TxManager: fx.txManager,
		OwnerRepo: fx.ownerRepo,
		LogRepo:   fx.logRepo,
		Publisher: fx.publisher,
		Logger:    newDiscardLogger(),
	})
	svc.(*feedingLogService).now = func() time.Time { return fixedNow }
	fx.service = svc

	return fx
}

func TestFeedingLogService_Record_Notifies(t *testing.T) {
	tests := []struct {
		name     string
		feedType entity.FeedType
		settings entity.NotificationSettings
		want     string
	}{
		{
			name:     "manual",
			feedType: entity.FeedTypeManual,
			settings: entity.NotificationSettings{ManualFood: true},
			want:     "1/4 cup was manually dispensed from the feeder.",
		},
		{
			name:     "remote",
			feedType: entity.FeedTypeRemote,
			settings: entity.NotificationSettings{ManualFood: true},
			want:     "1/4 cup was manually dispensed from a remote computer or mobile device.",
		},
		{
			name:     "scheduled",
			feedType: entity.FeedTypeScheduled,
			settings: entity.NotificationSettings{AutoFood: true},
			want:     "1/4 cup was automatically dispensed for Miso.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestFeedingLogService(t)
			ctx := context.Background()
			owner := newTestOwner()
			settings := tt.settings

			expectTx(fx.txManager, fx.factory)
			fx.factory.EXPECT().NewFeedingLogRepository().Return(fx.logRepo)
			fx.factory.EXPECT().NewNotificationSettingsRepository().Return(fx.settingsRepo)
			fx.factory.EXPECT().NewMessageRepository().Return(fx.messageRepo)
			fx.logRepo.EXPECT().CreateFeedingLog(ctx, mock.AnythingOfType("*entity.FeedingLog")).Return(nil)
			fx.settingsRepo.EXPECT().FindNotificationSettings(ctx, owner.UserID).Return(&settings, nil)
			fx.messageRepo.EXPECT().
				CreateMessage(ctx, mock.MatchedBy(func(m *entity.MessageQueueEntry) bool {
					return m.Message == tt.want && m.Title == owner.Name && m.Status == entity.MessageStatusPending
				})).
				Return(nil)
			fx.publisher.EXPECT().
				PublishMessagesQueued(ctx, mock.MatchedBy(func(e *service.MessagesQueuedEvent) bool {
					return len(e.MessageIDs) == 1
				})).
				Return(nil)

			record, err := fx.service.Record(ctx, owner, &usecase.FeedingLogInput{
				FeedType:   tt.feedType,
				PetName:    "Miso",
				FeedAmount: entity.Portion{Num: 1, Den: 4},
			})

			require.NoError(t, err)
			assert.Equal(t, fixedNow, record.FedAt)
			assert.Equal(t, owner.ID, record.DeviceOwnerID)
		})
	}
}

func TestFeedingLogService_Record_ToggleOff(t *testing.T) {
	fx := createTestFeedingLogService(t)
	ctx := context.Background()
	owner := newTestOwner()
	fedAt := fixedNow.Add(-time.Minute)

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewFeedingLogRepository().Return(fx.logRepo)
	fx.factory.EXPECT().NewNotificationSettingsRepository().Return(fx.settingsRepo)
	fx.logRepo.EXPECT().CreateFeedingLog(ctx, mock.AnythingOfType("*entity.FeedingLog")).Return(nil)
	fx.settingsRepo.EXPECT().FindNotificationSettings(ctx, owner.UserID).Return(&entity.NotificationSettings{ManualFood: true}, nil)

	record, err := fx.service.Record(ctx, owner, &usecase.FeedingLogInput{
		FeedType:   entity.FeedTypeScheduled,
		FeedAmount: entity.Portion{Num: 1, Den: 2},
		FedAt:      fedAt,
	})

	require.NoError(t, err)
	assert.Equal(t, fedAt, record.FedAt)
}

func TestFeedingLogService_Record_UnknownType(t *testing.T) {
	fx := createTestFeedingLogService(t)

	_, err := fx.service.Record(context.Background(), newTestOwner(), &usecase.FeedingLogInput{FeedType: "X"})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestFeedingLogService_List_ClampsLimit(t *testing.T) {
	fx := createTestFeedingLogService(t)
	ctx := context.Background()
	owner := newTestOwner()

	fx.ownerRepo.EXPECT().FindOwnerByID(ctx, owner.ID).Return(owner, nil)
	fx.logRepo.EXPECT().FindFeedingLogs(ctx, owner.ID, 50).Return(nil, nil).Once()
	fx.logRepo.EXPECT().FindFeedingLogs(ctx, owner.ID, 500).Return([]*entity.FeedingLog{{ID: uuid.New()}}, nil).Once()

	_, err := fx.service.List(ctx, owner.UserID, owner.ID, 0)
	require.NoError(t, err)

	logs, err := fx.service.List(ctx, owner.UserID, owner.ID, 10_000)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}
