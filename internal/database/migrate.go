package database

import (
	"careswipe_backend/internal/logger"
	"careswipe_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every model, including the
// unique indexes the swipe ledger and match resolver rely on.
func Migrate(db *gorm.DB) error {
	logger.Info("Running database migrations")
	return db.AutoMigrate(
		&models.User{},
		&models.FamilyProfile{},
		&models.CaregiverProfile{},
		&models.JobPost{},
		&models.Swipe{},
		&models.Match{},
		&models.Review{},
	)
}
