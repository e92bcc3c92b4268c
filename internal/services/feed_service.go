package services

import (
	"sort"

	"careswipe_backend/internal/algorithms"
	"careswipe_backend/internal/logger"
	"careswipe_backend/internal/models"
	"careswipe_backend/internal/repositories"
	"careswipe_backend/internal/services/dto"
	"careswipe_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// FeedService produces the next page of swipeable candidates for an actor.
// The service is stateless between calls: the "already seen" set is derived
// from the swipe ledger on every request, never cached, so decisions made on
// another device take effect immediately.
type FeedService interface {
	GetCandidates(db *gorm.DB, actorID string, role models.UserRole, filters dto.FeedFilters, limit int) ([]dto.Candidate, error)
}

type feedService struct {
	swipeRepo    repositories.SwipeRepository
	jobRepo      repositories.JobPostRepository
	profileRepo  repositories.ProfileRepository
	reviewRepo   repositories.ReviewRepository
	defaultLimit int
	maxLimit     int
}

func NewFeedService(
	swipeRepo repositories.SwipeRepository,
	jobRepo repositories.JobPostRepository,
	profileRepo repositories.ProfileRepository,
	reviewRepo repositories.ReviewRepository,
	defaultLimit, maxLimit int,
) FeedService {
	if defaultLimit <= 0 {
		defaultLimit = 20
	}
	if maxLimit <= 0 {
		maxLimit = 100
	}
	return &feedService{
		swipeRepo:    swipeRepo,
		jobRepo:      jobRepo,
		profileRepo:  profileRepo,
		reviewRepo:   reviewRepo,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

func (s *feedService) GetCandidates(db *gorm.DB, actorID string, role models.UserRole, filters dto.FeedFilters, limit int) ([]dto.Candidate, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}

	switch role {
	case models.UserRoleFamily:
		return s.caregiverFeed(db, actorID, filters, limit)
	case models.UserRoleCaregiver:
		return s.jobFeed(db, actorID, filters, limit)
	default:
		return nil, apperrors.ErrInvalidUserRole
	}
}

func (s *feedService) caregiverFeed(db *gorm.DB, actorID string, filters dto.FeedFilters, limit int) ([]dto.Candidate, error) {
	family, err := s.profileRepo.FindFamilyProfileByUserID(db, actorID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	// A swipe needs a job to attach to; browsing without one is an error
	// the UI turns into a "create a job first" prompt.
	jobCount, err := s.jobRepo.CountByFamily(db, family.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if jobCount == 0 {
		return nil, apperrors.ErrMissingJobContext
	}

	excluded, err := s.swipeRepo.ListSwipedCaregiverIDs(db, family.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	profiles, err := s.profileRepo.SearchCaregivers(db, repositories.CaregiverSearchCriteria{
		ExcludeIDs: excluded,
		Location:   filters.Location,
		MinRate:    filters.MinRate,
		MaxRate:    filters.MaxRate,
		Limit:      limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	familyFacts := profileFactsFromFamily(family)
	candidates := make([]dto.Candidate, 0, len(profiles))
	for i := range profiles {
		caregiver := &profiles[i]
		score, reasons := algorithms.CompatibilityScore(
			familyFacts,
			profileFactsFromCaregiver(caregiver),
			s.ratingFacts(db, caregiver.ID),
		)
		candidates = append(candidates, dto.Candidate{
			Kind:      dto.CandidateKindCaregiver,
			Caregiver: caregiver,
			Score:     score,
			Reasons:   reasons,
		})
	}

	sortByScore(candidates)
	return candidates, nil
}

func (s *feedService) jobFeed(db *gorm.DB, actorID string, filters dto.FeedFilters, limit int) ([]dto.Candidate, error) {
	caregiver, err := s.profileRepo.FindCaregiverProfileByUserID(db, actorID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	excluded, err := s.swipeRepo.ListSwipedJobPostIDs(db, caregiver.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	jobs, err := s.jobRepo.SearchActive(db, repositories.JobSearchCriteria{
		ExcludeIDs: excluded,
		Location:   filters.Location,
		MinRate:    filters.MinRate,
		MaxRate:    filters.MaxRate,
		MinHours:   filters.MinHours,
		MaxHours:   filters.MaxHours,
		Limit:      limit,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	caregiverFacts := profileFactsFromCaregiver(caregiver)
	rating := s.ratingFacts(db, caregiver.ID)

	candidates := make([]dto.Candidate, 0, len(jobs))
	for i := range jobs {
		job := &jobs[i]
		score, reasons := algorithms.CompatibilityScore(
			profileFactsFromFamily(&job.Family),
			caregiverFacts,
			rating,
		)
		candidates = append(candidates, dto.Candidate{
			Kind:    dto.CandidateKindJobPost,
			JobPost: job,
			Score:   score,
			Reasons: reasons,
		})
	}

	sortByScore(candidates)
	return candidates, nil
}

// ratingFacts degrades gracefully: a failed rating lookup contributes zero
// instead of failing the whole feed.
func (s *feedService) ratingFacts(db *gorm.DB, caregiverID string) algorithms.RatingFacts {
	stats, err := s.reviewRepo.GetCaregiverRatingStats(db, caregiverID)
	if err != nil {
		logger.Debug("rating lookup failed, scoring without it", "caregiver_id", caregiverID, "error", err)
		return algorithms.RatingFacts{}
	}
	return algorithms.RatingFacts{Mean: stats.AverageRating, Count: stats.TotalReviews}
}

// sortByScore orders a page best-first. Stable so equal scores keep the
// repository's creation order.
func sortByScore(candidates []dto.Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
}

func profileFactsFromFamily(p *models.FamilyProfile) algorithms.ProfileFacts {
	return algorithms.ProfileFacts{
		Name:     p.Name,
		Bio:      p.Bio,
		Phone:    p.Phone,
		Location: p.Location,
	}
}

func profileFactsFromCaregiver(p *models.CaregiverProfile) algorithms.ProfileFacts {
	return algorithms.ProfileFacts{
		Name:     p.Name,
		Bio:      p.Bio,
		Phone:    p.Phone,
		Location: p.Location,
	}
}
