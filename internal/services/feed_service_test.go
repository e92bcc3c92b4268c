package services_test

import (
	"errors"
	"testing"

	"careswipe_backend/internal/models"
	"careswipe_backend/internal/repositories"
	"careswipe_backend/internal/services"
	"careswipe_backend/internal/services/dto"
	"careswipe_backend/pkg/apperrors"
	"careswipe_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newFeedService() services.FeedService {
	return services.NewFeedService(
		repositories.NewSwipeRepository(),
		repositories.NewJobPostRepository(),
		repositories.NewProfileRepository(),
		repositories.NewReviewRepository(),
		20, 100,
	)
}

func recordLedgerRow(t *testing.T, db *gorm.DB, familyID, caregiverID, jobID string, side models.SwipeSide, direction models.SwipeDirection) {
	t.Helper()
	require.NoError(t, db.Create(&models.Swipe{
		FamilyID:    familyID,
		CaregiverID: caregiverID,
		JobPostID:   jobID,
		Side:        side,
		Direction:   direction,
	}).Error)
}

func TestFamilyFeed_ExcludesAlreadySwiped(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newFeedService()

	famUser, fam := helpers.SeedFamily(t, db, "miller", "Austin, TX")
	job := helpers.SeedJobPost(t, db, fam.ID, "Nanny")
	_, seen := helpers.SeedCaregiver(t, db, "anna", "Austin, TX", 25)
	_, fresh := helpers.SeedCaregiver(t, db, "maria", "Austin, TX", 22)

	// Any decision hides the candidate, a pass as much as a like.
	recordLedgerRow(t, db, fam.ID, seen.ID, job.ID, models.SwipeSideFamily, models.SwipeDirectionPass)

	candidates, err := svc.GetCandidates(db, famUser.ID, models.UserRoleFamily, dto.FeedFilters{}, 0)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, dto.CandidateKindCaregiver, candidates[0].Kind)
	assert.Equal(t, fresh.ID, candidates[0].Caregiver.ID)
}

func TestFamilyFeed_ExclusionSpansJobs(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newFeedService()

	famUser, fam := helpers.SeedFamily(t, db, "miller", "Austin, TX")
	job1 := helpers.SeedJobPost(t, db, fam.ID, "Nanny")
	helpers.SeedJobPost(t, db, fam.ID, "Weekend sitter")
	_, cg := helpers.SeedCaregiver(t, db, "anna", "Austin, TX", 25)

	// The decision was made in job1's context, but the caregiver stays
	// hidden from the family's feed entirely.
	recordLedgerRow(t, db, fam.ID, cg.ID, job1.ID, models.SwipeSideFamily, models.SwipeDirectionLike)

	candidates, err := svc.GetCandidates(db, famUser.ID, models.UserRoleFamily, dto.FeedFilters{}, 0)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestFamilyFeed_CaregiverSwipesDoNotHide(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newFeedService()

	famUser, fam := helpers.SeedFamily(t, db, "miller", "Austin, TX")
	job := helpers.SeedJobPost(t, db, fam.ID, "Nanny")
	_, cg := helpers.SeedCaregiver(t, db, "anna", "Austin, TX", 25)

	// The caregiver already liked the job, but the family has not decided
	// yet, so the caregiver must still show up in the family's feed.
	recordLedgerRow(t, db, fam.ID, cg.ID, job.ID, models.SwipeSideCaregiver, models.SwipeDirectionLike)

	candidates, err := svc.GetCandidates(db, famUser.ID, models.UserRoleFamily, dto.FeedFilters{}, 0)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, cg.ID, candidates[0].Caregiver.ID)
}

func TestFamilyFeed_EmptyIsSuccess(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newFeedService()

	famUser, fam := helpers.SeedFamily(t, db, "miller", "Austin, TX")
	helpers.SeedJobPost(t, db, fam.ID, "Nanny")

	candidates, err := svc.GetCandidates(db, famUser.ID, models.UserRoleFamily, dto.FeedFilters{}, 0)
	require.NoError(t, err)
	assert.NotNil(t, candidates)
	assert.Empty(t, candidates)
}

func TestFamilyFeed_RequiresJobPost(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newFeedService()

	famUser, _ := helpers.SeedFamily(t, db, "jobless", "Austin, TX")
	helpers.SeedCaregiver(t, db, "anna", "Austin, TX", 25)

	_, err := svc.GetCandidates(db, famUser.ID, models.UserRoleFamily, dto.FeedFilters{}, 0)
	assert.ErrorIs(t, err, apperrors.ErrMissingJobContext)
}

func TestFamilyFeed_OrdersByScoreDescending(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newFeedService()

	famUser, fam := helpers.SeedFamily(t, db, "miller", "Austin, TX")
	helpers.SeedJobPost(t, db, fam.ID, "Nanny")
	_, far := helpers.SeedCaregiver(t, db, "distant", "Portland, OR", 25)
	_, near := helpers.SeedCaregiver(t, db, "local", "Austin, TX", 25)

	candidates, err := svc.GetCandidates(db, famUser.ID, models.UserRoleFamily, dto.FeedFilters{}, 0)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, near.ID, candidates[0].Caregiver.ID)
	assert.Equal(t, far.ID, candidates[1].Caregiver.ID)
	assert.Greater(t, candidates[0].Score, candidates[1].Score)
	assert.Contains(t, candidates[0].Reasons, "Same location")
}

func TestFamilyFeed_RatedCaregiverScoresHigher(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newFeedService()

	famUser, fam := helpers.SeedFamily(t, db, "miller", "Austin, TX")
	helpers.SeedJobPost(t, db, fam.ID, "Nanny")
	_, unrated := helpers.SeedCaregiver(t, db, "newcomer", "Austin, TX", 25)
	_, rated := helpers.SeedCaregiver(t, db, "veteran", "Austin, TX", 25)

	_, reviewer := helpers.SeedFamily(t, db, "pastclient", "Dallas, TX")
	require.NoError(t, db.Create(&models.Review{
		CaregiverID: rated.ID,
		FamilyID:    reviewer.ID,
		Rating:      5,
		Status:      models.ReviewStatusApproved,
	}).Error)

	candidates, err := svc.GetCandidates(db, famUser.ID, models.UserRoleFamily, dto.FeedFilters{}, 0)
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.Equal(t, rated.ID, candidates[0].Caregiver.ID)
	assert.Equal(t, unrated.ID, candidates[1].Caregiver.ID)
}

func TestFamilyFeed_Filters(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newFeedService()

	famUser, fam := helpers.SeedFamily(t, db, "miller", "Austin, TX")
	helpers.SeedJobPost(t, db, fam.ID, "Nanny")
	helpers.SeedCaregiver(t, db, "cheap", "Austin, TX", 15)
	_, mid := helpers.SeedCaregiver(t, db, "mid", "Austin, TX", 25)
	helpers.SeedCaregiver(t, db, "premium", "Austin, TX", 60)
	helpers.SeedCaregiver(t, db, "elsewhere", "Portland, OR", 25)

	minRate, maxRate := 20.0, 40.0
	candidates, err := svc.GetCandidates(db, famUser.ID, models.UserRoleFamily, dto.FeedFilters{
		Location: "Austin",
		MinRate:  &minRate,
		MaxRate:  &maxRate,
	}, 0)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, mid.ID, candidates[0].Caregiver.ID)
}

func TestFamilyFeed_HidesPrivateProfiles(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newFeedService()

	famUser, fam := helpers.SeedFamily(t, db, "miller", "Austin, TX")
	helpers.SeedJobPost(t, db, fam.ID, "Nanny")
	_, hidden := helpers.SeedCaregiver(t, db, "private", "Austin, TX", 25)
	require.NoError(t, db.Model(hidden).Update("is_public", false).Error)

	candidates, err := svc.GetCandidates(db, famUser.ID, models.UserRoleFamily, dto.FeedFilters{}, 0)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}

func TestFamilyFeed_LimitApplied(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newFeedService()

	famUser, fam := helpers.SeedFamily(t, db, "miller", "Austin, TX")
	helpers.SeedJobPost(t, db, fam.ID, "Nanny")
	helpers.SeedCaregiver(t, db, "one", "Austin, TX", 20)
	helpers.SeedCaregiver(t, db, "two", "Austin, TX", 21)
	helpers.SeedCaregiver(t, db, "three", "Austin, TX", 22)

	candidates, err := svc.GetCandidates(db, famUser.ID, models.UserRoleFamily, dto.FeedFilters{}, 2)
	require.NoError(t, err)
	assert.Len(t, candidates, 2)
}

func TestCaregiverFeed_ExcludesSwipedJobs(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newFeedService()

	_, fam := helpers.SeedFamily(t, db, "miller", "Austin, TX")
	cgUser, cg := helpers.SeedCaregiver(t, db, "anna", "Austin, TX", 25)
	seen := helpers.SeedJobPost(t, db, fam.ID, "Nanny")
	fresh := helpers.SeedJobPost(t, db, fam.ID, "Weekend sitter")

	recordLedgerRow(t, db, fam.ID, cg.ID, seen.ID, models.SwipeSideCaregiver, models.SwipeDirectionPass)

	candidates, err := svc.GetCandidates(db, cgUser.ID, models.UserRoleCaregiver, dto.FeedFilters{}, 0)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, dto.CandidateKindJobPost, candidates[0].Kind)
	assert.Equal(t, fresh.ID, candidates[0].JobPost.ID)
}

func TestCaregiverFeed_OnlyActiveJobs(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newFeedService()

	_, fam := helpers.SeedFamily(t, db, "miller", "Austin, TX")
	cgUser, _ := helpers.SeedCaregiver(t, db, "anna", "Austin, TX", 25)
	active := helpers.SeedJobPost(t, db, fam.ID, "Nanny")
	closed := helpers.SeedJobPost(t, db, fam.ID, "Old job")
	require.NoError(t, db.Model(closed).Update("status", models.JobStatusClosed).Error)

	candidates, err := svc.GetCandidates(db, cgUser.ID, models.UserRoleCaregiver, dto.FeedFilters{}, 0)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, active.ID, candidates[0].JobPost.ID)
}

// brokenRatingsRepo simulates an unavailable ratings store; every aggregate
// lookup fails while the rest of the repository keeps working.
type brokenRatingsRepo struct {
	repositories.ReviewRepository
}

func (r brokenRatingsRepo) GetCaregiverRatingStats(db *gorm.DB, caregiverID string) (*repositories.RatingStats, error) {
	return nil, errors.New("ratings store unavailable")
}

func TestFamilyFeed_RatingLookupFailureDegrades(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := services.NewFeedService(
		repositories.NewSwipeRepository(),
		repositories.NewJobPostRepository(),
		repositories.NewProfileRepository(),
		brokenRatingsRepo{repositories.NewReviewRepository()},
		20, 100,
	)

	famUser, fam := helpers.SeedFamily(t, db, "miller", "Austin, TX")
	helpers.SeedJobPost(t, db, fam.ID, "Nanny")
	_, cg := helpers.SeedCaregiver(t, db, "anna", "Austin, TX", 25)

	// A failed rating lookup contributes zero to the score; it never fails
	// the feed.
	candidates, err := svc.GetCandidates(db, famUser.ID, models.UserRoleFamily, dto.FeedFilters{}, 0)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, cg.ID, candidates[0].Caregiver.ID)
	assert.GreaterOrEqual(t, candidates[0].Score, 0.0)
	assert.LessOrEqual(t, candidates[0].Score, 100.0)
	assert.NotContains(t, candidates[0].Reasons, "Highly rated caregiver")
}

func TestFeed_InvalidRole(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newFeedService()

	_, err := svc.GetCandidates(db, "whoever", models.UserRoleAdmin, dto.FeedFilters{}, 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
}
