package services

import (
	"careswipe_backend/internal/email"
	"careswipe_backend/internal/logger"
	"careswipe_backend/internal/models"
	"careswipe_backend/internal/repositories"
	"careswipe_backend/internal/services/dto"
	"careswipe_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// SwipeService is the swipe ledger plus the match resolver. Recording a
// decision and evaluating reciprocity are separate operations so that the
// ledger has no match-creation side effects.
type SwipeService interface {
	// RecordSwipe persists one actor's directional decision. Resubmitting
	// the same decision is a no-op returning the existing row, so a client
	// that lost the first response can safely retry.
	RecordSwipe(db *gorm.DB, actorID string, req *dto.RecordSwipeRequest) (*dto.SwipeResult, error)

	// EvaluateAndMatch decides whether the triple has become mutual and, if
	// so, creates the Match exactly once. Called after a recorded like;
	// passes short-circuit to a non-match.
	EvaluateAndMatch(db *gorm.DB, familyID, caregiverID, jobPostID string, direction models.SwipeDirection) (*dto.MatchOutcome, error)

	// ListMatchesForUser returns the actor's matches with the counterpart
	// profile and job embedded.
	ListMatchesForUser(db *gorm.DB, actorID string) ([]models.Match, error)

	// ListSwipesForUser returns the actor's own side of the ledger, most
	// recent first.
	ListSwipesForUser(db *gorm.DB, actorID string) ([]models.Swipe, error)
}

type swipeService struct {
	swipeRepo   repositories.SwipeRepository
	matchRepo   repositories.MatchRepository
	jobRepo     repositories.JobPostRepository
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
	emails      email.Provider
}

func NewSwipeService(
	swipeRepo repositories.SwipeRepository,
	matchRepo repositories.MatchRepository,
	jobRepo repositories.JobPostRepository,
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	emails email.Provider,
) SwipeService {
	return &swipeService{
		swipeRepo:   swipeRepo,
		matchRepo:   matchRepo,
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
		emails:      emails,
	}
}

func (s *swipeService) RecordSwipe(db *gorm.DB, actorID string, req *dto.RecordSwipeRequest) (*dto.SwipeResult, error) {
	direction := models.SwipeDirection(req.Direction)
	if !models.ValidSwipeDirection(direction) {
		return nil, apperrors.ErrInvalidSwipeDirection
	}

	swipe, err := s.resolveSwipe(db, actorID, req, direction)
	if err != nil {
		return nil, err
	}

	// Pre-lookup keeps the common resubmission path cheap; the unique index
	// plus insert-or-skip below handles the concurrent case.
	if existing, err := s.swipeRepo.FindByTripleAndSide(db, swipe.FamilyID, swipe.CaregiverID, swipe.JobPostID, swipe.Side); err == nil {
		return &dto.SwipeResult{Swipe: existing, WasNew: false}, nil
	} else if err != repositories.ErrSwipeNotFound {
		return nil, apperrors.InternalError(err)
	}

	created, err := s.swipeRepo.CreateIfAbsent(db, swipe)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !created {
		// Lost a race against the same actor on another device.
		existing, err := s.swipeRepo.FindByTripleAndSide(db, swipe.FamilyID, swipe.CaregiverID, swipe.JobPostID, swipe.Side)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		return &dto.SwipeResult{Swipe: existing, WasNew: false}, nil
	}

	return &dto.SwipeResult{Swipe: swipe, WasNew: true}, nil
}

// resolveSwipe canonicalizes the request into a ledger row. The storage key
// is always (familyID, caregiverID, jobPostID) regardless of which side
// initiated; Side records the initiating party, derived from the
// authenticated actor rather than the request body.
func (s *swipeService) resolveSwipe(db *gorm.DB, actorID string, req *dto.RecordSwipeRequest, direction models.SwipeDirection) (*models.Swipe, error) {
	if family, err := s.profileRepo.FindFamilyProfileByUserID(db, actorID); err == nil {
		if req.CaregiverID == "" {
			return nil, apperrors.NewBadRequestError("caregiver_id is required for a family swipe")
		}
		if _, err := s.profileRepo.FindCaregiverProfileByID(db, req.CaregiverID); err != nil {
			return nil, apperrors.ErrNotFound(err)
		}

		jobPostID := req.JobPostID
		if jobPostID == "" {
			// No explicit job: default to the family's most recent post.
			job, err := s.jobRepo.LatestByFamily(db, family.ID)
			if err == repositories.ErrJobPostNotFound {
				return nil, apperrors.ErrMissingJobContext
			} else if err != nil {
				return nil, apperrors.InternalError(err)
			}
			jobPostID = job.ID
		} else {
			job, err := s.jobRepo.FindByID(db, jobPostID)
			if err != nil {
				return nil, apperrors.ErrNotFound(err)
			}
			if job.FamilyID != family.ID {
				return nil, apperrors.ErrNotSwipeParticipant
			}
		}

		return &models.Swipe{
			FamilyID:    family.ID,
			CaregiverID: req.CaregiverID,
			JobPostID:   jobPostID,
			Side:        models.SwipeSideFamily,
			Direction:   direction,
		}, nil
	}

	if caregiver, err := s.profileRepo.FindCaregiverProfileByUserID(db, actorID); err == nil {
		if req.JobPostID == "" {
			return nil, apperrors.NewBadRequestError("job_post_id is required for a caregiver swipe")
		}
		if req.CaregiverID != "" && req.CaregiverID != caregiver.ID {
			return nil, apperrors.ErrNotSwipeParticipant
		}

		job, err := s.jobRepo.FindByID(db, req.JobPostID)
		if err != nil {
			return nil, apperrors.ErrNotFound(err)
		}

		return &models.Swipe{
			FamilyID:    job.FamilyID,
			CaregiverID: caregiver.ID,
			JobPostID:   job.ID,
			Side:        models.SwipeSideCaregiver,
			Direction:   direction,
		}, nil
	}

	return nil, apperrors.ErrNotSwipeParticipant
}

func (s *swipeService) EvaluateAndMatch(db *gorm.DB, familyID, caregiverID, jobPostID string, direction models.SwipeDirection) (*dto.MatchOutcome, error) {
	if !models.ValidSwipeDirection(direction) {
		return nil, apperrors.ErrInvalidSwipeDirection
	}

	// Passes never trigger matching, whatever the ledger holds.
	if direction != models.SwipeDirectionLike {
		return &dto.MatchOutcome{IsMatch: false}, nil
	}

	// Defensive: a like must have been recorded before evaluation.
	if _, err := s.swipeRepo.FindLikeByTriple(db, familyID, caregiverID, jobPostID); err != nil {
		if err == repositories.ErrSwipeNotFound {
			return nil, apperrors.ErrSwipeNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	// Mutual interest: the triple accumulated a like from each side.
	likes, err := s.swipeRepo.CountLikesByTriple(db, familyID, caregiverID, jobPostID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if likes < 2 {
		return &dto.MatchOutcome{IsMatch: false}, nil
	}

	match := &models.Match{
		FamilyID:    familyID,
		CaregiverID: caregiverID,
		JobPostID:   jobPostID,
	}
	created, err := s.matchRepo.CreateIfAbsent(db, match)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !created {
		// A concurrent evaluator (or an earlier call) already created the
		// match; return it as success, never as a conflict.
		existing, err := s.matchRepo.FindByTriple(db, familyID, caregiverID, jobPostID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		return &dto.MatchOutcome{IsMatch: true, Match: existing}, nil
	}

	s.notifyMatch(db, match)
	return &dto.MatchOutcome{IsMatch: true, Match: match}, nil
}

func (s *swipeService) ListMatchesForUser(db *gorm.DB, actorID string) ([]models.Match, error) {
	if family, err := s.profileRepo.FindFamilyProfileByUserID(db, actorID); err == nil {
		matches, err := s.matchRepo.ListByFamily(db, family.ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		return matches, nil
	}

	if caregiver, err := s.profileRepo.FindCaregiverProfileByUserID(db, actorID); err == nil {
		matches, err := s.matchRepo.ListByCaregiver(db, caregiver.ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		return matches, nil
	}

	return nil, apperrors.ErrInvalidUserRole
}

func (s *swipeService) ListSwipesForUser(db *gorm.DB, actorID string) ([]models.Swipe, error) {
	if family, err := s.profileRepo.FindFamilyProfileByUserID(db, actorID); err == nil {
		swipes, err := s.swipeRepo.ListByFamily(db, family.ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		return swipes, nil
	}

	if caregiver, err := s.profileRepo.FindCaregiverProfileByUserID(db, actorID); err == nil {
		swipes, err := s.swipeRepo.ListByCaregiver(db, caregiver.ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		return swipes, nil
	}

	return nil, apperrors.ErrInvalidUserRole
}

// notifyMatch emails both parties. All lookups run synchronously on the
// request's db handle (it may be a transaction that closes once the request
// ends); only the sends are deferred to a goroutine. Failures are logged and
// never fail the match.
func (s *swipeService) notifyMatch(db *gorm.DB, match *models.Match) {
	family, err := s.profileRepo.FindFamilyProfileByID(db, match.FamilyID)
	if err != nil {
		logger.Warn("match notification skipped: family profile lookup failed", "error", err)
		return
	}
	caregiver, err := s.profileRepo.FindCaregiverProfileByID(db, match.CaregiverID)
	if err != nil {
		logger.Warn("match notification skipped: caregiver profile lookup failed", "error", err)
		return
	}
	job, err := s.jobRepo.FindByID(db, match.JobPostID)
	if err != nil {
		logger.Warn("match notification skipped: job lookup failed", "error", err)
		return
	}

	recipients := make([]*email.Message, 0, 2)
	if user, err := s.userRepo.FindUserByID(db, family.UserID); err == nil {
		msg := email.MatchNotification(family.Name, caregiver.Name, job.Title)
		msg.To = user.Email
		recipients = append(recipients, msg)
	}
	if user, err := s.userRepo.FindUserByID(db, caregiver.UserID); err == nil {
		msg := email.MatchNotification(caregiver.Name, family.Name, job.Title)
		msg.To = user.Email
		recipients = append(recipients, msg)
	}

	go func() {
		for _, msg := range recipients {
			if err := s.emails.Send(msg); err != nil {
				logger.Warn("match notification send failed", "to", msg.To, "error", err)
			}
		}
	}()
}
