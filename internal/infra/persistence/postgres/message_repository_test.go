package postgres

import (
	"context"
	"testing"
	"time"

	"petfeeder/internal/domain/entity"
	"petfeeder/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageRepository_PendingLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()
	owner := &entity.DeviceOwner{ID: uuid.New(), UserID: uuid.New(), Name: "Kitchen"}

	older := entity.NewOwnerMessage(owner, "first", testNow)
	newer := entity.NewOwnerMessage(owner, "second", testNow.Add(time.Second))
	require.NoError(t, repo.CreateMessage(ctx, newer))
	require.NoError(t, repo.CreateMessage(ctx, older))

	ids, err := repo.FindPendingMessageIDs(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{older.ID, newer.ID}, ids)

	locked, err := repo.LockPendingMessage(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kitchen", locked.Title)

	require.NoError(t, repo.UpdateMessageStatus(ctx, older.ID, entity.MessageStatusSent, ""))
	_, err = repo.LockPendingMessage(ctx, older.ID)
	assert.ErrorIs(t, err, repository.ErrMessageNotFound)

	ids, err = repo.FindPendingMessageIDs(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{newer.ID}, ids)
}

func TestMessageRepository_DetachOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewMessageRepository(db)
	ctx := context.Background()
	owner := &entity.DeviceOwner{ID: uuid.New(), UserID: uuid.New(), Name: "Kitchen"}
	message := entity.NewOwnerMessage(owner, "hello", testNow)
	require.NoError(t, repo.CreateMessage(ctx, message))

	require.NoError(t, repo.DetachOwner(ctx, owner.ID))

	locked, err := repo.LockPendingMessage(ctx, message.ID)
	require.NoError(t, err)
	assert.Nil(t, locked.DeviceOwnerID)
	assert.Equal(t, owner.UserID, locked.UserID)
}
