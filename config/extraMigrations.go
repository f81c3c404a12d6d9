package config

import "gorm.io/gorm"

// CreateDeviceNaturalKeyPartialIndex enforces the (customer_id, device_name)
// natural key at the database level, ignoring soft-deleted rows.
//
// AutoMigrate builds idx_devices_customer_name as a plain index, which lets
// a race between two concurrent imports slip a duplicate past the
// application-level check. The partial unique index closes that gap while
// still allowing a device to be recreated after its predecessor was
// soft-deleted.
func CreateDeviceNaturalKeyPartialIndex(db *gorm.DB) error {
	return db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_devices_customer_name_active
		ON devices (customer_id, device_name)
		WHERE deleted_at IS NULL;
	`).Error
}
