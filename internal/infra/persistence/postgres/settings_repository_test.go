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

func TestNotificationSettingsRepository_Upsert(t *testing.T) {
	db := newTestDB(t)
	repo := NewNotificationSettingsRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	_, err := repo.FindNotificationSettings(ctx, userID)
	assert.ErrorIs(t, err, repository.ErrNotificationSettingsNotFound)

	settings := &entity.NotificationSettings{
		UserID:          userID,
		PushoverUserKey: "ukey",
		PushoverDevices: []string{"phone"},
		FeederOffline:   true,
	}
	require.NoError(t, repo.SaveNotificationSettings(ctx, settings))

	settings.FeederOffline = false
	settings.LowHopper = true
	settings.PushTokens = []string{"fcm-1", "fcm-2"}
	require.NoError(t, repo.SaveNotificationSettings(ctx, settings))

	found, err := repo.FindNotificationSettings(ctx, userID)
	require.NoError(t, err)
	assert.False(t, found.FeederOffline)
	assert.True(t, found.LowHopper)
	assert.Equal(t, []string{"phone"}, found.PushoverDevices)
	assert.Equal(t, []string{"fcm-1", "fcm-2"}, found.PushTokens)
}

func TestUserSettingsRepository_Upsert(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserSettingsRepository(db)
	ctx := context.Background()
	userID := uuid.New()
	tz := "Europe/Berlin"

	_, err := repo.FindUserSettings(ctx, userID)
	assert.ErrorIs(t, err, repository.ErrSettingsNotFound)

	settings := &entity.UserSettings{UserID: userID, Record: entity.SettingsRecord{Version: entity.SettingsVersion, Timezone: &tz}}
	require.NoError(t, repo.SaveUserSettings(ctx, settings))

	posix := "CET-1CEST,M3.5.0,M10.5.0/3"
	settings.Record.TzPosix = &posix
	require.NoError(t, repo.SaveUserSettings(ctx, settings))

	found, err := repo.FindUserSettings(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", found.Record.TimezoneOr("UTC"))
	require.NotNil(t, found.Record.TzPosix)
	assert.Equal(t, posix, *found.Record.TzPosix)
}

func TestFeedingLogRepository_NewestFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewFeedingLogRepository(db)
	ctx := context.Background()
	ownerID := uuid.New()

	for i, feedType := range []entity.FeedType{entity.FeedTypeScheduled, entity.FeedTypeManual, entity.FeedTypeRemote} {
		require.NoError(t, repo.CreateFeedingLog(ctx, &entity.FeedingLog{
			DeviceOwnerID: ownerID,
			FeedType:      feedType,
			FeedAmount:    entity.Portion{Num: 1, Den: 2},
			FedAt:         testNow.Add(time.Duration(i) * time.Hour),
		}))
	}

	logs, err := repo.FindFeedingLogs(ctx, ownerID, 2)

	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, entity.FeedTypeRemote, logs[0].FeedType)
	assert.Equal(t, "1/2", logs[0].FeedAmount.String())
}
