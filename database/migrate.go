package database

import (
	"jobify_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every model. The uuid
// primary keys need the uuid-ossp extension.
func AutoMigrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Job{},
	)
}
