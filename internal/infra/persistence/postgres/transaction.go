package postgres

import (
	"context"

	"petfeeder/internal/domain/repository"
	"petfeeder/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object (*gorm.Tx) and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
}

func (f *gormRepositoryFactory) NewDeviceRepository() repository.DeviceRepository {
	return NewDeviceRepository(f.tx)
}

func (f *gormRepositoryFactory) NewDeviceOwnerRepository() repository.DeviceOwnerRepository {
	return NewDeviceOwnerRepository(f.tx)
}

func (f *gormRepositoryFactory) NewDeviceStatusRepository() repository.DeviceStatusRepository {
	return NewDeviceStatusRepository(f.tx)
}

func (f *gormRepositoryFactory) NewMotorTimingRepository() repository.MotorTimingRepository {
	return NewMotorTimingRepository(f.tx)
}

func (f *gormRepositoryFactory) NewPetRepository() repository.PetRepository {
	return NewPetRepository(f.tx)
}

func (f *gormRepositoryFactory) NewScheduleRepository() repository.ScheduleRepository {
	return NewScheduleRepository(f.tx)
}

func (f *gormRepositoryFactory) NewEventRepository() repository.EventRepository {
	return NewEventRepository(f.tx)
}

func (f *gormRepositoryFactory) NewMessageRepository() repository.MessageRepository {
	return NewMessageRepository(f.tx)
}

func (f *gormRepositoryFactory) NewAlertTrackingRepository() repository.AlertTrackingRepository {
	return NewAlertTrackingRepository(f.tx)
}

func (f *gormRepositoryFactory) NewNotificationSettingsRepository() repository.NotificationSettingsRepository {
	return NewNotificationSettingsRepository(f.tx)
}

func (f *gormRepositoryFactory) NewUserSettingsRepository() repository.UserSettingsRepository {
	return NewUserSettingsRepository(f.tx)
}

func (f *gormRepositoryFactory) NewFeedingLogRepository() repository.FeedingLogRepository {
	return NewFeedingLogRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// Roll back on panic, then let the panic continue.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Join(err, errors.Wrap(rbErr, "transaction rollback failed"))
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
