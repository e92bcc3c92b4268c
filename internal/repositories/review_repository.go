package repositories

import (
	"errors"

	"careswipe_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrReviewNotFound       = errors.New("review not found")
	ErrInvalidReviewRating  = errors.New("rating must be between 1 and 5")
	ErrSelfReviewNotAllowed = errors.New("cannot review yourself")
)

// RatingStats is the aggregate the compatibility scorer consumes.
type RatingStats struct {
	AverageRating float64 `json:"average_rating"`
	TotalReviews  int64   `json:"total_reviews"`
}

type ReviewRepository interface {
	CreateReview(db *gorm.DB, review *models.Review) error
	FindReviewByID(db *gorm.DB, id string) (*models.Review, error)
	FindReviewsByCaregiver(db *gorm.DB, caregiverID string) ([]models.Review, error)

	// GetCaregiverRatingStats aggregates approved reviews into the mean
	// rating and count used for feed ordering.
	GetCaregiverRatingStats(db *gorm.DB, caregiverID string) (*RatingStats, error)

	UpdateCaregiverRating(db *gorm.DB, caregiverID string) error
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) CreateReview(db *gorm.DB, review *models.Review) error {
	if review.Rating < 1 || review.Rating > 5 {
		return ErrInvalidReviewRating
	}
	if review.CaregiverID == review.FamilyID {
		return ErrSelfReviewNotAllowed
	}

	if err := db.Create(review).Error; err != nil {
		return err
	}

	// Keep the denormalized profile rating in sync.
	return r.UpdateCaregiverRating(db, review.CaregiverID)
}

func (r *ReviewRepositoryImpl) FindReviewByID(db *gorm.DB, id string) (*models.Review, error) {
	var review models.Review
	err := db.First(&review, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) FindReviewsByCaregiver(db *gorm.DB, caregiverID string) ([]models.Review, error) {
	var reviews []models.Review
	err := db.Where("caregiver_id = ? AND status = ?", caregiverID, models.ReviewStatusApproved).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepositoryImpl) GetCaregiverRatingStats(db *gorm.DB, caregiverID string) (*RatingStats, error) {
	var stats RatingStats
	err := db.Model(&models.Review{}).
		Where("caregiver_id = ? AND status = ?", caregiverID, models.ReviewStatusApproved).
		Select("COUNT(*) as total_reviews, COALESCE(AVG(rating), 0) as average_rating").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *ReviewRepositoryImpl) UpdateCaregiverRating(db *gorm.DB, caregiverID string) error {
	stats, err := r.GetCaregiverRatingStats(db, caregiverID)
	if err != nil {
		return err
	}

	return db.Model(&models.CaregiverProfile{}).
		Where("id = ?", caregiverID).
		Update("rating", stats.AverageRating).Error
}
