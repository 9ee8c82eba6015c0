package postgres

import (
	"context"
	"testing"
	"time"

	"petfeeder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, AutoMigrate(db))

	return db
}

var testNow = time.Date(2024, time.May, 15, 10, 0, 0, 0, time.UTC)

func seedOwner(t *testing.T, db *gorm.DB) *entity.DeviceOwner {
	t.Helper()
	ctx := context.Background()

	device := &entity.Device{Identifier: "ESP32-ab12-" + uuid.NewString()[:8], SecretHash: "hash"}
	require.NoError(t, NewDeviceRepository(db).CreateDevice(ctx, device))

	owner := &entity.DeviceOwner{
		DeviceID:  device.ID,
		UserID:    uuid.New(),
		Name:      "Kitchen",
		DeviceKey: uuid.NewString(),
	}
	require.NoError(t, NewDeviceOwnerRepository(db).CreateOwner(ctx, owner))

	return owner
}
