package services

import (
	"careswipe_backend/internal/models"
	"careswipe_backend/internal/repositories"
	"careswipe_backend/internal/services/dto"
	"careswipe_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ReviewService interface {
	CreateReview(db *gorm.DB, actorID string, req *dto.CreateReviewRequest) (*models.Review, error)
	GetCaregiverReviews(db *gorm.DB, caregiverID string) ([]models.Review, error)
	GetCaregiverRatingStats(db *gorm.DB, caregiverID string) (*repositories.RatingStats, error)
}

type reviewService struct {
	reviewRepo  repositories.ReviewRepository
	profileRepo repositories.ProfileRepository
	matchRepo   repositories.MatchRepository
}

func NewReviewService(
	reviewRepo repositories.ReviewRepository,
	profileRepo repositories.ProfileRepository,
	matchRepo repositories.MatchRepository,
) ReviewService {
	return &reviewService{
		reviewRepo:  reviewRepo,
		profileRepo: profileRepo,
		matchRepo:   matchRepo,
	}
}

func (s *reviewService) CreateReview(db *gorm.DB, actorID string, req *dto.CreateReviewRequest) (*models.Review, error) {
	family, err := s.profileRepo.FindFamilyProfileByUserID(db, actorID)
	if err != nil {
		return nil, apperrors.ErrInvalidUserRole
	}

	if _, err := s.profileRepo.FindCaregiverProfileByID(db, req.CaregiverID); err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	// Only matched pairs may review: the match is the working-relationship
	// proof, mirroring the messaging authorization boundary.
	matched, err := s.matchRepo.Exists(db, family.ID, req.CaregiverID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !matched {
		return nil, apperrors.ErrInvalidOperation("review", "You can only review caregivers you matched with")
	}

	review := &models.Review{
		CaregiverID: req.CaregiverID,
		FamilyID:    family.ID,
		JobPostID:   req.JobPostID,
		Rating:      req.Rating,
		ReviewText:  req.ReviewText,
		Status:      models.ReviewStatusApproved,
	}

	if err := s.reviewRepo.CreateReview(db, review); err != nil {
		switch err {
		case repositories.ErrInvalidReviewRating:
			return nil, apperrors.NewBadRequestError("Rating must be between 1 and 5")
		case repositories.ErrSelfReviewNotAllowed:
			return nil, apperrors.ErrSelfReviewNotAllowed
		default:
			return nil, apperrors.InternalError(err)
		}
	}
	return review, nil
}

func (s *reviewService) GetCaregiverReviews(db *gorm.DB, caregiverID string) ([]models.Review, error) {
	reviews, err := s.reviewRepo.FindReviewsByCaregiver(db, caregiverID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return reviews, nil
}

func (s *reviewService) GetCaregiverRatingStats(db *gorm.DB, caregiverID string) (*repositories.RatingStats, error) {
	stats, err := s.reviewRepo.GetCaregiverRatingStats(db, caregiverID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return stats, nil
}
