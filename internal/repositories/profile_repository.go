package repositories

import (
	"errors"

	"careswipe_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
)

// CaregiverSearchCriteria drives the family-side candidate query. Each field
// is independently optional; unrecognized query keys never reach this struct.
type CaregiverSearchCriteria struct {
	ExcludeIDs []string
	Location   string
	MinRate    *float64
	MaxRate    *float64
	Limit      int
}

type ProfileRepository interface {
	CreateFamilyProfile(db *gorm.DB, profile *models.FamilyProfile) error
	CreateCaregiverProfile(db *gorm.DB, profile *models.CaregiverProfile) error

	FindFamilyProfileByID(db *gorm.DB, id string) (*models.FamilyProfile, error)
	FindCaregiverProfileByID(db *gorm.DB, id string) (*models.CaregiverProfile, error)
	FindFamilyProfileByUserID(db *gorm.DB, userID string) (*models.FamilyProfile, error)
	FindCaregiverProfileByUserID(db *gorm.DB, userID string) (*models.CaregiverProfile, error)

	UpdateFamilyProfile(db *gorm.DB, profile *models.FamilyProfile) error
	UpdateCaregiverProfile(db *gorm.DB, profile *models.CaregiverProfile) error

	// SearchCaregivers lists public caregiver profiles outside the exclusion
	// set, location-filtered by substring when requested, in creation order.
	// Ranking happens above the repository.
	SearchCaregivers(db *gorm.DB, criteria CaregiverSearchCriteria) ([]models.CaregiverProfile, error)
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

func (r *ProfileRepositoryImpl) CreateFamilyProfile(db *gorm.DB, profile *models.FamilyProfile) error {
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) CreateCaregiverProfile(db *gorm.DB, profile *models.CaregiverProfile) error {
	return db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindFamilyProfileByID(db *gorm.DB, id string) (*models.FamilyProfile, error) {
	var profile models.FamilyProfile
	if err := db.First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindCaregiverProfileByID(db *gorm.DB, id string) (*models.CaregiverProfile, error) {
	var profile models.CaregiverProfile
	if err := db.First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindFamilyProfileByUserID(db *gorm.DB, userID string) (*models.FamilyProfile, error) {
	var profile models.FamilyProfile
	if err := db.First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindCaregiverProfileByUserID(db *gorm.DB, userID string) (*models.CaregiverProfile, error) {
	var profile models.CaregiverProfile
	if err := db.First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateFamilyProfile(db *gorm.DB, profile *models.FamilyProfile) error {
	return db.Save(profile).Error
}

func (r *ProfileRepositoryImpl) UpdateCaregiverProfile(db *gorm.DB, profile *models.CaregiverProfile) error {
	return db.Save(profile).Error
}

func (r *ProfileRepositoryImpl) SearchCaregivers(db *gorm.DB, criteria CaregiverSearchCriteria) ([]models.CaregiverProfile, error) {
	query := db.Model(&models.CaregiverProfile{}).Where("is_public = ?", true)

	if len(criteria.ExcludeIDs) > 0 {
		query = query.Where("id NOT IN ?", criteria.ExcludeIDs)
	}
	if criteria.Location != "" {
		query = query.Where("location LIKE ?", "%"+criteria.Location+"%")
	}
	if criteria.MinRate != nil {
		query = query.Where("hourly_rate >= ?", *criteria.MinRate)
	}
	if criteria.MaxRate != nil {
		query = query.Where("hourly_rate <= ?", *criteria.MaxRate)
	}
	if criteria.Limit > 0 {
		query = query.Limit(criteria.Limit)
	}

	var profiles []models.CaregiverProfile
	err := query.Order("created_at ASC").Find(&profiles).Error
	return profiles, err
}
