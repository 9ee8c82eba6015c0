package postgres

import (
	"context"
	"testing"

	"petfeeder/internal/domain/entity"
	"petfeeder/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertTrackingRepository_LockCreatesOnce(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()
	ownerID := uuid.New()

	var firstID uuid.UUID
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		tracking, err := f.NewAlertTrackingRepository().LockTracking(ctx, ownerID)
		if err != nil {
			return err
		}
		assert.False(t, tracking.PowerDisconnected)
		firstID = tracking.ID
		tracking.SetAlerting(entity.AlertPowerDisconnected, true)

		return f.NewAlertTrackingRepository().SaveTracking(ctx, tracking)
	})
	require.NoError(t, err)

	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		tracking, err := f.NewAlertTrackingRepository().LockTracking(ctx, ownerID)
		if err != nil {
			return err
		}
		assert.Equal(t, firstID, tracking.ID)
		assert.True(t, tracking.Alerting(entity.AlertPowerDisconnected))

		return nil
	})
	require.NoError(t, err)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()
	ownerID := uuid.New()

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if _, err := f.NewAlertTrackingRepository().LockTracking(ctx, ownerID); err != nil {
			return err
		}

		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	var count int64
	require.NoError(t, db.Table("notification_alert_tracking").Where("device_owner_id = ?", ownerID).Count(&count).Error)
	assert.Zero(t, count)
}
