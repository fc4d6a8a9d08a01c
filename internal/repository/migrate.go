package repository

import "gorm.io/gorm"

// Migrate brings the schema up to date for both entities, including the
// unique index on accounts.username.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&accountModel{},
		&bookingModel{},
	)
}
