package helpers

import (
	"testing"

	"careswipe_backend/internal/database"
	"careswipe_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewTestDB opens a fresh in-memory SQLite database with the full schema.
// Each call gets its own database, so tests never see each other's rows.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "open in-memory sqlite")

	// One connection only: a second connection to :memory: would see a
	// brand-new empty database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db), "migrate test schema")

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}

// SeedFamily creates a family user with its profile and returns both.
func SeedFamily(t *testing.T, db *gorm.DB, name, location string) (*models.User, *models.FamilyProfile) {
	t.Helper()

	user := &models.User{
		Email:        name + "@families.test",
		PasswordHash: "x",
		Role:         models.UserRoleFamily,
		Status:       models.UserStatusActive,
	}
	require.NoError(t, db.Create(user).Error)

	profile := &models.FamilyProfile{
		UserID:   user.ID,
		Name:     name,
		Bio:      "We need help with our kids",
		Phone:    "+1-555-0100",
		Location: location,
	}
	require.NoError(t, db.Create(profile).Error)
	return user, profile
}

// SeedCaregiver creates a caregiver user with its public profile.
func SeedCaregiver(t *testing.T, db *gorm.DB, name, location string, rate float64) (*models.User, *models.CaregiverProfile) {
	t.Helper()

	user := &models.User{
		Email:        name + "@caregivers.test",
		PasswordHash: "x",
		Role:         models.UserRoleCaregiver,
		Status:       models.UserStatusActive,
	}
	require.NoError(t, db.Create(user).Error)

	profile := &models.CaregiverProfile{
		UserID:     user.ID,
		Name:       name,
		Bio:        "Experienced caregiver",
		Phone:      "+1-555-0200",
		Location:   location,
		HourlyRate: rate,
		IsPublic:   true,
	}
	require.NoError(t, db.Create(profile).Error)
	return user, profile
}

// SeedJobPost creates an active job post for the family profile.
func SeedJobPost(t *testing.T, db *gorm.DB, familyID, title string) *models.JobPost {
	t.Helper()

	job := &models.JobPost{
		FamilyID:     familyID,
		Title:        title,
		Description:  "After-school care",
		HoursPerWeek: 20,
		RatePerHour:  25,
		Status:       models.JobStatusActive,
	}
	require.NoError(t, db.Create(job).Error)
	return job
}
