package model

import (
	"time"

	"github.com/google/uuid"
)

// MotorTimingModel is the GORM-specific struct for the 'motor_timings' table.
// The feed amount is kept as an exact fraction.
type MotorTimingModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	FeedAmountNum    int64     `gorm:"not null;uniqueIndex:idx_motor_timings_feed_amount"`
	FeedAmountDen    int64     `gorm:"not null;uniqueIndex:idx_motor_timings_feed_amount"`
	MotorDuration    int       `gorm:"not null"`
	InterrupterCount int       `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (MotorTimingModel) TableName() string {
	return "motor_timings"
}

// PetModel is the GORM-specific struct for the 'pets' table.
type PetModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PetModel) TableName() string {
	return "pets"
}

// FeedingScheduleModel is the GORM-specific struct for the 'feeding_schedules' table.
// Times are seconds after midnight.
type FeedingScheduleModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeviceOwnerID uuid.UUID `gorm:"type:uuid;not null;index"`
	PetID         uuid.UUID `gorm:"type:uuid;not null"`
	MotorTimingID uuid.UUID `gorm:"type:uuid;not null"`
	Label         string    `gorm:"type:varchar(100);not null"`
	DayMask       int16     `gorm:"type:smallint;not null"`
	UTCSeconds    int       `gorm:"column:utc_seconds;not null"`
	LocalSeconds  int       `gorm:"not null"`
	Active        bool      `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (FeedingScheduleModel) TableName() string {
	return "feeding_schedules"
}

// FeedingLogModel is the GORM-specific struct for the 'feeding_logs' table.
type FeedingLogModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeviceOwnerID uuid.UUID `gorm:"type:uuid;not null;index:idx_feeding_logs_owner_fed_at"`
	PetName       string    `gorm:"type:varchar(100)"`
	FeedType      string    `gorm:"type:char(1);not null"`
	FeedAmountNum int64     `gorm:"not null"`
	FeedAmountDen int64     `gorm:"not null"`
	FedAt         time.Time `gorm:"not null;index:idx_feeding_logs_owner_fed_at"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (FeedingLogModel) TableName() string {
	return "feeding_logs"
}
