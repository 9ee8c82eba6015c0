// Package model holds the GORM-specific table structs.
package model

// All returns every model in migration order.
func All() []any {
	return []any{
		&DeviceModel{},
		&DeviceOwnerModel{},
		&DeviceStatusModel{},
		&MotorTimingModel{},
		&PetModel{},
		&FeedingScheduleModel{},
		&FeedingLogModel{},
		&EventQueueModel{},
		&MessageQueueModel{},
		&AlertTrackingModel{},
		&NotificationSettingsModel{},
		&UserSettingsModel{},
	}
}
