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

func TestDeviceStatusRepository_SaveInsertsThenUpdates(t *testing.T) {
	db := newTestDB(t)
	repo := NewDeviceStatusRepository(db)
	ctx := context.Background()
	deviceID := uuid.New()

	_, err := repo.FindStatusByDeviceID(ctx, deviceID)
	assert.ErrorIs(t, err, repository.ErrStatusNotFound)

	status := entity.NewDeviceStatus(deviceID, testNow)
	require.NoError(t, repo.SaveStatus(ctx, status))

	status.OnPower = false
	status.IsHopperLow = true
	require.NoError(t, repo.SaveStatus(ctx, status))

	found, err := repo.FindStatusByDeviceID(ctx, deviceID)
	require.NoError(t, err)
	assert.Equal(t, status.ID, found.ID)
	assert.False(t, found.OnPower)
	assert.True(t, found.IsHopperLow)
}

func TestDeviceStatusRepository_FindSilentSince(t *testing.T) {
	db := newTestDB(t)
	repo := NewDeviceStatusRepository(db)
	ctx := context.Background()

	silent := entity.NewDeviceStatus(uuid.New(), testNow.Add(-10*time.Minute))
	fresh := entity.NewDeviceStatus(uuid.New(), testNow.Add(-time.Minute))
	require.NoError(t, repo.SaveStatus(ctx, silent))
	require.NoError(t, repo.SaveStatus(ctx, fresh))

	found, err := repo.FindSilentSince(ctx, testNow.Add(-5*time.Minute))

	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, silent.DeviceID, found[0].DeviceID)
}

func TestDeviceStatusRepository_FlagUpdates(t *testing.T) {
	db := newTestDB(t)
	repo := NewDeviceStatusRepository(db)
	ctx := context.Background()
	status := entity.NewDeviceStatus(uuid.New(), testNow)
	require.NoError(t, repo.SaveStatus(ctx, status))

	require.NoError(t, repo.SetHasEvent(ctx, status.DeviceID, true))
	require.NoError(t, repo.TouchPing(ctx, status.DeviceID, testNow.Add(time.Minute)))

	found, err := repo.FindStatusByDeviceID(ctx, status.DeviceID)
	require.NoError(t, err)
	assert.True(t, found.HasEvent)
	assert.True(t, found.LastPing.Equal(testNow.Add(time.Minute)))

	assert.ErrorIs(t, repo.SetHasEvent(ctx, uuid.New(), true), repository.ErrStatusNotFound)
}

func TestDeviceStatusRepository_ApplyTelemetryKeepsOtherColumns(t *testing.T) {
	db := newTestDB(t)
	repo := NewDeviceStatusRepository(db)
	ctx := context.Background()
	status := entity.NewDeviceStatus(uuid.New(), testNow)
	status.HopperLevel = 60
	status.FirmwareVersion = "1.0.0"
	require.NoError(t, repo.SaveStatus(ctx, status))
	require.NoError(t, repo.SetHasEvent(ctx, status.DeviceID, true))

	soc := 42.0
	onPower := false
	at := testNow.Add(time.Minute)
	require.NoError(t, repo.ApplyTelemetry(ctx, status.DeviceID, entity.TelemetryUpdate{
		BatterySOC: &soc,
		OnPower:    &onPower,
	}, at))

	found, err := repo.FindStatusByDeviceID(ctx, status.DeviceID)
	require.NoError(t, err)
	assert.InDelta(t, 42.0, found.BatterySOC, 0.001)
	assert.False(t, found.OnPower)
	assert.True(t, found.LastPing.Equal(at))
	assert.True(t, found.HasEvent)
	assert.InDelta(t, 60.0, found.HopperLevel, 0.001)
	assert.Equal(t, "1.0.0", found.FirmwareVersion)

	err = repo.ApplyTelemetry(ctx, uuid.New(), entity.TelemetryUpdate{BatterySOC: &soc}, at)
	assert.ErrorIs(t, err, repository.ErrStatusNotFound)
}

func TestDeviceStatusRepository_TouchBoot(t *testing.T) {
	db := newTestDB(t)
	repo := NewDeviceStatusRepository(db)
	ctx := context.Background()
	status := entity.NewDeviceStatus(uuid.New(), testNow.Add(-time.Hour))
	require.NoError(t, repo.SaveStatus(ctx, status))
	require.NoError(t, repo.SetHasEvent(ctx, status.DeviceID, true))

	require.NoError(t, repo.TouchBoot(ctx, status.DeviceID, testNow))

	found, err := repo.FindStatusByDeviceID(ctx, status.DeviceID)
	require.NoError(t, err)
	assert.True(t, found.LastBoot.Equal(testNow))
	assert.True(t, found.LastPing.Equal(testNow))
	assert.True(t, found.HasEvent)

	assert.ErrorIs(t, repo.TouchBoot(ctx, uuid.New(), testNow), repository.ErrStatusNotFound)
}
