package impl

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"petfeeder/internal/domain/entity"
	"petfeeder/internal/domain/repository"
	mockRepo "petfeeder/internal/mocks/repository"
	mockSvc "petfeeder/internal/mocks/service"
	"petfeeder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatchServiceFixtures struct {
	service      usecase.DispatchUsecase
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	messageRepo  *mockRepo.MockMessageRepository
	settingsRepo *mockRepo.MockNotificationSettingsRepository
	notifier     *mockSvc.MockNotifier
}

func createTestDispatchService(t *testing.T) dispatchServiceFixtures {
	fx := dispatchServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		messageRepo:  mockRepo.NewMockMessageRepository(t),
		settingsRepo: mockRepo.NewMockNotificationSettingsRepository(t),
		notifier:     mockSvc.NewMockNotifier(t),
	}

	fx.service = NewDispatchService(DispatchServiceParams{
		TxManager:   fx.txManager,
		MessageRepo: fx.messageRepo,
		Notifier:    fx.notifier,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestDispatchService_DispatchPending(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()
	withTarget := uuid.New()
	noTarget := uuid.New()

	sent := &entity.MessageQueueEntry{ID: uuid.New(), UserID: withTarget, Message: "hello"}
	failing := &entity.MessageQueueEntry{ID: uuid.New(), UserID: withTarget, Message: "boom"}
	unreachable := &entity.MessageQueueEntry{ID: uuid.New(), UserID: noTarget}
	takenID := uuid.New()
	settings := &entity.NotificationSettings{UserID: withTarget, PushoverUserKey: "u-key"}

	fx.messageRepo.EXPECT().
		FindPendingMessageIDs(ctx, 5).
		Return([]uuid.UUID{sent.ID, failing.ID, unreachable.ID, takenID}, nil)

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewMessageRepository().Return(fx.messageRepo)
	fx.factory.EXPECT().NewNotificationSettingsRepository().Return(fx.settingsRepo)

	fx.messageRepo.EXPECT().LockPendingMessage(ctx, sent.ID).Return(sent, nil)
	fx.messageRepo.EXPECT().LockPendingMessage(ctx, failing.ID).Return(failing, nil)
	fx.messageRepo.EXPECT().LockPendingMessage(ctx, unreachable.ID).Return(unreachable, nil)
	fx.messageRepo.EXPECT().LockPendingMessage(ctx, takenID).Return(nil, repository.ErrMessageNotFound)

	fx.settingsRepo.EXPECT().FindNotificationSettings(ctx, withTarget).Return(settings, nil)
	fx.settingsRepo.EXPECT().FindNotificationSettings(ctx, noTarget).Return(nil, repository.ErrNotificationSettingsNotFound)

	fx.notifier.EXPECT().Send(ctx, settings, sent).Return(nil)
	fx.notifier.EXPECT().Send(ctx, settings, failing).Return(errors.New("x" + strings.Repeat("\u00e9", 400)))

	fx.messageRepo.EXPECT().UpdateMessageStatus(ctx, sent.ID, entity.MessageStatusSent, "").Return(nil)
	fx.messageRepo.EXPECT().
		UpdateMessageStatus(ctx, failing.ID, entity.MessageStatusError, mock.MatchedBy(func(text string) bool {
			return len(text) == 499 && utf8.ValidString(text)
		})).
		Return(nil)
	fx.messageRepo.EXPECT().
		UpdateMessageStatus(ctx, unreachable.ID, entity.MessageStatusError, "no delivery target configured").
		Return(nil)

	report, err := fx.service.DispatchPending(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Sent)
	assert.Equal(t, 2, report.Failed)
	assert.Equal(t, 1, report.Skipped)
}

func TestDispatchService_DispatchMessages_DatabaseErrorKeepsGoing(t *testing.T) {
	fx := createTestDispatchService(t)
	ctx := context.Background()
	brokenID := uuid.New()
	message := &entity.MessageQueueEntry{ID: uuid.New(), UserID: uuid.New(), Message: "hopper low"}
	settings := &entity.NotificationSettings{UserID: message.UserID, PushoverUserKey: "u-key"}

	expectTx(fx.txManager, fx.factory)
	fx.factory.EXPECT().NewMessageRepository().Return(fx.messageRepo)
	fx.factory.EXPECT().NewNotificationSettingsRepository().Return(fx.settingsRepo)
	fx.messageRepo.EXPECT().LockPendingMessage(ctx, brokenID).Return(nil, errors.New("connection reset"))
	fx.messageRepo.EXPECT().LockPendingMessage(ctx, message.ID).Return(message, nil)
	fx.settingsRepo.EXPECT().FindNotificationSettings(ctx, message.UserID).Return(settings, nil)
	fx.notifier.EXPECT().Send(ctx, settings, message).Return(nil)
	fx.messageRepo.EXPECT().UpdateMessageStatus(ctx, message.ID, entity.MessageStatusSent, "").Return(nil)

	report, err := fx.service.DispatchMessages(ctx, []uuid.UUID{brokenID, message.ID})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
	assert.Equal(t, 1, report.Errored)
	assert.Equal(t, 1, report.Sent)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		limit    int
		expected string
	}{
		{name: "short text untouched", input: "timeout", limit: 10, expected: "timeout"},
		{name: "ascii cut at limit", input: "abcdef", limit: 4, expected: "abcd"},
		{name: "multibyte rune kept whole", input: "abécd", limit: 3, expected: "ab"},
		{name: "cut after complete rune", input: "abécd", limit: 4, expected: "abé"},
		{name: "four byte rune", input: "🐶🐶", limit: 6, expected: "🐶"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.input, tt.limit)

			assert.Equal(t, tt.expected, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}
