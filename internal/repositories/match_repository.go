package repositories

import (
	"errors"

	"careswipe_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrMatchNotFound = errors.New("match not found")
)

type MatchRepository interface {
	// CreateIfAbsent inserts the match unless the triple is already matched.
	// Concurrent reciprocal likes race here; the unique index plus
	// ON CONFLICT DO NOTHING guarantees at most one row survives.
	CreateIfAbsent(db *gorm.DB, match *models.Match) (bool, error)

	FindByTriple(db *gorm.DB, familyID, caregiverID, jobPostID string) (*models.Match, error)
	ListByFamily(db *gorm.DB, familyID string) ([]models.Match, error)
	ListByCaregiver(db *gorm.DB, caregiverID string) ([]models.Match, error)

	// Exists reports whether the pair is matched under any job context.
	// Messaging/scheduling use this as their authorization check.
	Exists(db *gorm.DB, familyID, caregiverID string) (bool, error)
}

type MatchRepositoryImpl struct{}

func NewMatchRepository() MatchRepository {
	return &MatchRepositoryImpl{}
}

func (r *MatchRepositoryImpl) CreateIfAbsent(db *gorm.DB, match *models.Match) (bool, error) {
	result := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "family_id"},
			{Name: "caregiver_id"},
			{Name: "job_post_id"},
		},
		DoNothing: true,
	}).Create(match)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *MatchRepositoryImpl) FindByTriple(db *gorm.DB, familyID, caregiverID, jobPostID string) (*models.Match, error) {
	var match models.Match
	err := db.Where("family_id = ? AND caregiver_id = ? AND job_post_id = ?",
		familyID, caregiverID, jobPostID).
		First(&match).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *MatchRepositoryImpl) ListByFamily(db *gorm.DB, familyID string) ([]models.Match, error) {
	var matches []models.Match
	err := db.Preload("Caregiver").Preload("JobPost").
		Where("family_id = ?", familyID).
		Order("created_at DESC").
		Find(&matches).Error
	return matches, err
}

func (r *MatchRepositoryImpl) ListByCaregiver(db *gorm.DB, caregiverID string) ([]models.Match, error) {
	var matches []models.Match
	err := db.Preload("Family").Preload("JobPost").
		Where("caregiver_id = ?", caregiverID).
		Order("created_at DESC").
		Find(&matches).Error
	return matches, err
}

func (r *MatchRepositoryImpl) Exists(db *gorm.DB, familyID, caregiverID string) (bool, error) {
	var count int64
	err := db.Model(&models.Match{}).
		Where("family_id = ? AND caregiver_id = ?", familyID, caregiverID).
		Count(&count).Error
	return count > 0, err
}
