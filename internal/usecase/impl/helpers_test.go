package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"petfeeder/config"
	"petfeeder/internal/domain/entity"
	"petfeeder/internal/domain/repository"
	mockRepo "petfeeder/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// fixedNow is a Monday.
var fixedNow = time.Date(2024, time.May, 6, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(mode string) *config.Config {
	return &config.Config{
		Feeder: &config.FeederConfig{
			RegistrationMode: mode,
			OfflineThreshold: 5 * time.Minute,
			DefaultTimezone:  "America/New_York",
		},
	}
}

// expectTx runs every transaction against factory.
func expectTx(txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func newTestOwner() *entity.DeviceOwner {
	return &entity.DeviceOwner{
		ID:        uuid.New(),
		DeviceID:  uuid.New(),
		UserID:    uuid.New(),
		Name:      "Kitchen",
		DeviceKey: "device-key",
	}
}
