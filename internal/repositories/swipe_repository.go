package repositories

import (
	"errors"

	"careswipe_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrSwipeNotFound = errors.New("swipe not found")
)

// SwipeRepository persists the append-only ledger of directional decisions.
type SwipeRepository interface {
	// CreateIfAbsent inserts the swipe unless a row for the same
	// (family, caregiver, job, side) already exists. Returns whether a new
	// row was written. The unique index is the correctness mechanism; the
	// insert never errors on a duplicate.
	CreateIfAbsent(db *gorm.DB, swipe *models.Swipe) (bool, error)

	FindByTripleAndSide(db *gorm.DB, familyID, caregiverID, jobPostID string, side models.SwipeSide) (*models.Swipe, error)
	FindLikeByTriple(db *gorm.DB, familyID, caregiverID, jobPostID string) (*models.Swipe, error)

	// CountLikesByTriple counts like rows stored under the canonical triple.
	// Two rows (one per side) mean mutual interest.
	CountLikesByTriple(db *gorm.DB, familyID, caregiverID, jobPostID string) (int64, error)

	// Exclusion sets for the candidate feed. Only the actor's own decisions
	// exclude a candidate; the other party's swipe must not hide it.
	ListSwipedCaregiverIDs(db *gorm.DB, familyID string) ([]string, error)
	ListSwipedJobPostIDs(db *gorm.DB, caregiverID string) ([]string, error)

	ListByFamily(db *gorm.DB, familyID string) ([]models.Swipe, error)
	ListByCaregiver(db *gorm.DB, caregiverID string) ([]models.Swipe, error)
}

type SwipeRepositoryImpl struct{}

func NewSwipeRepository() SwipeRepository {
	return &SwipeRepositoryImpl{}
}

func (r *SwipeRepositoryImpl) CreateIfAbsent(db *gorm.DB, swipe *models.Swipe) (bool, error) {
	result := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "family_id"},
			{Name: "caregiver_id"},
			{Name: "job_post_id"},
			{Name: "side"},
		},
		DoNothing: true,
	}).Create(swipe)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *SwipeRepositoryImpl) FindByTripleAndSide(db *gorm.DB, familyID, caregiverID, jobPostID string, side models.SwipeSide) (*models.Swipe, error) {
	var swipe models.Swipe
	err := db.Where("family_id = ? AND caregiver_id = ? AND job_post_id = ? AND side = ?",
		familyID, caregiverID, jobPostID, side).
		First(&swipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSwipeNotFound
		}
		return nil, err
	}
	return &swipe, nil
}

func (r *SwipeRepositoryImpl) FindLikeByTriple(db *gorm.DB, familyID, caregiverID, jobPostID string) (*models.Swipe, error) {
	var swipe models.Swipe
	err := db.Where("family_id = ? AND caregiver_id = ? AND job_post_id = ? AND direction = ?",
		familyID, caregiverID, jobPostID, models.SwipeDirectionLike).
		First(&swipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSwipeNotFound
		}
		return nil, err
	}
	return &swipe, nil
}

func (r *SwipeRepositoryImpl) CountLikesByTriple(db *gorm.DB, familyID, caregiverID, jobPostID string) (int64, error) {
	var count int64
	err := db.Model(&models.Swipe{}).
		Where("family_id = ? AND caregiver_id = ? AND job_post_id = ? AND direction = ?",
			familyID, caregiverID, jobPostID, models.SwipeDirectionLike).
		Count(&count).Error
	return count, err
}

func (r *SwipeRepositoryImpl) ListSwipedCaregiverIDs(db *gorm.DB, familyID string) ([]string, error) {
	var ids []string
	err := db.Model(&models.Swipe{}).
		Distinct("caregiver_id").
		Where("family_id = ? AND side = ?", familyID, models.SwipeSideFamily).
		Pluck("caregiver_id", &ids).Error
	return ids, err
}

func (r *SwipeRepositoryImpl) ListSwipedJobPostIDs(db *gorm.DB, caregiverID string) ([]string, error) {
	var ids []string
	err := db.Model(&models.Swipe{}).
		Distinct("job_post_id").
		Where("caregiver_id = ? AND side = ?", caregiverID, models.SwipeSideCaregiver).
		Pluck("job_post_id", &ids).Error
	return ids, err
}

func (r *SwipeRepositoryImpl) ListByFamily(db *gorm.DB, familyID string) ([]models.Swipe, error) {
	var swipes []models.Swipe
	err := db.Where("family_id = ? AND side = ?", familyID, models.SwipeSideFamily).
		Order("created_at DESC").
		Find(&swipes).Error
	return swipes, err
}

func (r *SwipeRepositoryImpl) ListByCaregiver(db *gorm.DB, caregiverID string) ([]models.Swipe, error) {
	var swipes []models.Swipe
	err := db.Where("caregiver_id = ? AND side = ?", caregiverID, models.SwipeSideCaregiver).
		Order("created_at DESC").
		Find(&swipes).Error
	return swipes, err
}
