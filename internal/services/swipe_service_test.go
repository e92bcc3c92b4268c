package services_test

import (
	"testing"
	"time"

	"careswipe_backend/internal/email"
	"careswipe_backend/internal/models"
	"careswipe_backend/internal/repositories"
	"careswipe_backend/internal/services"
	"careswipe_backend/internal/services/dto"
	"careswipe_backend/pkg/apperrors"
	"careswipe_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSwipeService() services.SwipeService {
	return services.NewSwipeService(
		repositories.NewSwipeRepository(),
		repositories.NewMatchRepository(),
		repositories.NewJobPostRepository(),
		repositories.NewProfileRepository(),
		repositories.NewUserRepository(),
		email.NewMockProvider(),
	)
}

func TestRecordSwipe_Idempotent(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newSwipeService()

	famUser, fam := helpers.SeedFamily(t, db, "miller", "Austin, TX")
	_, cg := helpers.SeedCaregiver(t, db, "anna", "Austin, TX", 25)
	job := helpers.SeedJobPost(t, db, fam.ID, "After-school nanny")

	req := &dto.RecordSwipeRequest{CaregiverID: cg.ID, JobPostID: job.ID, Direction: "like"}

	first, err := svc.RecordSwipe(db, famUser.ID, req)
	require.NoError(t, err)
	assert.True(t, first.WasNew)
	assert.Equal(t, models.SwipeDirectionLike, first.Swipe.Direction)
	assert.Equal(t, models.SwipeSideFamily, first.Swipe.Side)

	second, err := svc.RecordSwipe(db, famUser.ID, req)
	require.NoError(t, err)
	assert.False(t, second.WasNew)
	assert.Equal(t, first.Swipe.ID, second.Swipe.ID)

	// Resubmission with the opposite direction is still a no-op: the first
	// decision stands.
	flipped, err := svc.RecordSwipe(db, famUser.ID, &dto.RecordSwipeRequest{
		CaregiverID: cg.ID, JobPostID: job.ID, Direction: "pass",
	})
	require.NoError(t, err)
	assert.False(t, flipped.WasNew)
	assert.Equal(t, models.SwipeDirectionLike, flipped.Swipe.Direction)

	var count int64
	require.NoError(t, db.Model(&models.Swipe{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestRecordSwipe_DefaultsToLatestJob(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newSwipeService()

	famUser, fam := helpers.SeedFamily(t, db, "chen", "Austin, TX")
	_, cg := helpers.SeedCaregiver(t, db, "maria", "Austin, TX", 22)

	older := helpers.SeedJobPost(t, db, fam.ID, "Weekend sitter")
	require.NoError(t, db.Model(older).Update("created_at", time.Now().Add(-time.Hour)).Error)
	newer := helpers.SeedJobPost(t, db, fam.ID, "Full-time nanny")

	result, err := svc.RecordSwipe(db, famUser.ID, &dto.RecordSwipeRequest{
		CaregiverID: cg.ID, Direction: "like",
	})
	require.NoError(t, err)
	assert.Equal(t, newer.ID, result.Swipe.JobPostID)
}

func TestRecordSwipe_RequiresJobContext(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newSwipeService()

	famUser, _ := helpers.SeedFamily(t, db, "jobless", "Austin, TX")
	_, cg := helpers.SeedCaregiver(t, db, "anna", "Austin, TX", 25)

	_, err := svc.RecordSwipe(db, famUser.ID, &dto.RecordSwipeRequest{
		CaregiverID: cg.ID, Direction: "like",
	})
	assert.ErrorIs(t, err, apperrors.ErrMissingJobContext)
}

func TestRecordSwipe_InvalidDirection(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newSwipeService()

	famUser, fam := helpers.SeedFamily(t, db, "miller", "Austin, TX")
	_, cg := helpers.SeedCaregiver(t, db, "anna", "Austin, TX", 25)
	job := helpers.SeedJobPost(t, db, fam.ID, "Nanny")

	for _, direction := range []string{"", "superlike", "LIKE"} {
		_, err := svc.RecordSwipe(db, famUser.ID, &dto.RecordSwipeRequest{
			CaregiverID: cg.ID, JobPostID: job.ID, Direction: direction,
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidSwipeDirection, "direction %q", direction)
	}
}

func TestRecordSwipe_NonParticipantRejected(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newSwipeService()

	_, fam := helpers.SeedFamily(t, db, "miller", "Austin, TX")
	_, cg := helpers.SeedCaregiver(t, db, "anna", "Austin, TX", 25)
	job := helpers.SeedJobPost(t, db, fam.ID, "Nanny")

	// An account with no profile on either side cannot swipe at all.
	stranger := &models.User{Email: "stranger@test", PasswordHash: "x", Role: models.UserRoleAdmin}
	require.NoError(t, db.Create(stranger).Error)

	_, err := svc.RecordSwipe(db, stranger.ID, &dto.RecordSwipeRequest{
		CaregiverID: cg.ID, JobPostID: job.ID, Direction: "like",
	})
	assert.ErrorIs(t, err, apperrors.ErrNotSwipeParticipant)

	// A family cannot attach its swipe to another family's job post.
	otherUser, _ := helpers.SeedFamily(t, db, "other", "Dallas, TX")
	_, err = svc.RecordSwipe(db, otherUser.ID, &dto.RecordSwipeRequest{
		CaregiverID: cg.ID, JobPostID: job.ID, Direction: "like",
	})
	assert.ErrorIs(t, err, apperrors.ErrNotSwipeParticipant)
}

func TestMutualLike_CreatesMatchExactlyOnce(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newSwipeService()

	famUser, fam := helpers.SeedFamily(t, db, "miller", "Austin, TX")
	cgUser, cg := helpers.SeedCaregiver(t, db, "anna", "Austin, TX", 25)
	job := helpers.SeedJobPost(t, db, fam.ID, "Nanny")

	// Family likes first: no match yet.
	res, err := svc.RecordSwipe(db, famUser.ID, &dto.RecordSwipeRequest{
		CaregiverID: cg.ID, JobPostID: job.ID, Direction: "like",
	})
	require.NoError(t, err)
	outcome, err := svc.EvaluateAndMatch(db, res.Swipe.FamilyID, res.Swipe.CaregiverID, res.Swipe.JobPostID, res.Swipe.Direction)
	require.NoError(t, err)
	assert.False(t, outcome.IsMatch)

	// Caregiver reciprocates: match appears.
	res, err = svc.RecordSwipe(db, cgUser.ID, &dto.RecordSwipeRequest{
		JobPostID: job.ID, Direction: "like",
	})
	require.NoError(t, err)
	assert.Equal(t, models.SwipeSideCaregiver, res.Swipe.Side)

	outcome, err = svc.EvaluateAndMatch(db, res.Swipe.FamilyID, res.Swipe.CaregiverID, res.Swipe.JobPostID, res.Swipe.Direction)
	require.NoError(t, err)
	require.True(t, outcome.IsMatch)
	require.NotNil(t, outcome.Match)
	matchID := outcome.Match.ID

	// Re-evaluating (retry, second device) reports the same match as
	// success rather than a conflict, no matter how often it runs.
	for i := 0; i < 3; i++ {
		again, err := svc.EvaluateAndMatch(db, fam.ID, cg.ID, job.ID, models.SwipeDirectionLike)
		require.NoError(t, err)
		assert.True(t, again.IsMatch)
		assert.Equal(t, matchID, again.Match.ID)

		var count int64
		require.NoError(t, db.Model(&models.Match{}).Count(&count).Error)
		assert.EqualValues(t, 1, count)
	}
}

func TestOneSidedLike_NeverMatches(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newSwipeService()

	famUser, fam := helpers.SeedFamily(t, db, "miller", "Austin, TX")
	_, cg := helpers.SeedCaregiver(t, db, "anna", "Austin, TX", 25)
	job := helpers.SeedJobPost(t, db, fam.ID, "Nanny")

	res, err := svc.RecordSwipe(db, famUser.ID, &dto.RecordSwipeRequest{
		CaregiverID: cg.ID, JobPostID: job.ID, Direction: "like",
	})
	require.NoError(t, err)

	outcome, err := svc.EvaluateAndMatch(db, res.Swipe.FamilyID, res.Swipe.CaregiverID, res.Swipe.JobPostID, res.Swipe.Direction)
	require.NoError(t, err)
	assert.False(t, outcome.IsMatch)

	var count int64
	require.NoError(t, db.Model(&models.Match{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestPass_NeverProducesMatch(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newSwipeService()

	famUser, fam := helpers.SeedFamily(t, db, "miller", "Austin, TX")
	cgUser, cg := helpers.SeedCaregiver(t, db, "anna", "Austin, TX", 25)
	job := helpers.SeedJobPost(t, db, fam.ID, "Nanny")

	// Family likes, caregiver passes.
	_, err := svc.RecordSwipe(db, famUser.ID, &dto.RecordSwipeRequest{
		CaregiverID: cg.ID, JobPostID: job.ID, Direction: "like",
	})
	require.NoError(t, err)
	res, err := svc.RecordSwipe(db, cgUser.ID, &dto.RecordSwipeRequest{
		JobPostID: job.ID, Direction: "pass",
	})
	require.NoError(t, err)

	// A pass short-circuits the resolver.
	outcome, err := svc.EvaluateAndMatch(db, res.Swipe.FamilyID, res.Swipe.CaregiverID, res.Swipe.JobPostID, res.Swipe.Direction)
	require.NoError(t, err)
	assert.False(t, outcome.IsMatch)

	// Re-evaluating the family's like also finds only one like on the
	// triple, so the pass still blocks the match.
	outcome, err = svc.EvaluateAndMatch(db, fam.ID, cg.ID, job.ID, models.SwipeDirectionLike)
	require.NoError(t, err)
	assert.False(t, outcome.IsMatch)
}

func TestEvaluate_WithoutRecordedLike(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newSwipeService()

	_, fam := helpers.SeedFamily(t, db, "miller", "Austin, TX")
	_, cg := helpers.SeedCaregiver(t, db, "anna", "Austin, TX", 25)
	job := helpers.SeedJobPost(t, db, fam.ID, "Nanny")

	_, err := svc.EvaluateAndMatch(db, fam.ID, cg.ID, job.ID, models.SwipeDirectionLike)
	assert.ErrorIs(t, err, apperrors.ErrSwipeNotFound)
}

func TestListSwipesForUser_OwnSideOnly(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newSwipeService()

	famUser, fam := helpers.SeedFamily(t, db, "miller", "Austin, TX")
	cgUser, cg := helpers.SeedCaregiver(t, db, "anna", "Austin, TX", 25)
	job := helpers.SeedJobPost(t, db, fam.ID, "Nanny")

	_, err := svc.RecordSwipe(db, famUser.ID, &dto.RecordSwipeRequest{
		CaregiverID: cg.ID, JobPostID: job.ID, Direction: "like",
	})
	require.NoError(t, err)
	_, err = svc.RecordSwipe(db, cgUser.ID, &dto.RecordSwipeRequest{
		JobPostID: job.ID, Direction: "pass",
	})
	require.NoError(t, err)

	// Each party's history holds its own decision only.
	famSwipes, err := svc.ListSwipesForUser(db, famUser.ID)
	require.NoError(t, err)
	require.Len(t, famSwipes, 1)
	assert.Equal(t, models.SwipeSideFamily, famSwipes[0].Side)
	assert.Equal(t, models.SwipeDirectionLike, famSwipes[0].Direction)

	cgSwipes, err := svc.ListSwipesForUser(db, cgUser.ID)
	require.NoError(t, err)
	require.Len(t, cgSwipes, 1)
	assert.Equal(t, models.SwipeSideCaregiver, cgSwipes[0].Side)
	assert.Equal(t, models.SwipeDirectionPass, cgSwipes[0].Direction)
}

func TestListMatchesForUser_BothSidesSeeIt(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newSwipeService()

	famUser, fam := helpers.SeedFamily(t, db, "miller", "Austin, TX")
	cgUser, cg := helpers.SeedCaregiver(t, db, "anna", "Austin, TX", 25)
	job := helpers.SeedJobPost(t, db, fam.ID, "Nanny")

	_, err := svc.RecordSwipe(db, famUser.ID, &dto.RecordSwipeRequest{
		CaregiverID: cg.ID, JobPostID: job.ID, Direction: "like",
	})
	require.NoError(t, err)
	_, err = svc.RecordSwipe(db, cgUser.ID, &dto.RecordSwipeRequest{
		JobPostID: job.ID, Direction: "like",
	})
	require.NoError(t, err)

	outcome, err := svc.EvaluateAndMatch(db, fam.ID, cg.ID, job.ID, models.SwipeDirectionLike)
	require.NoError(t, err)
	require.True(t, outcome.IsMatch)

	familyMatches, err := svc.ListMatchesForUser(db, famUser.ID)
	require.NoError(t, err)
	require.Len(t, familyMatches, 1)
	assert.Equal(t, outcome.Match.ID, familyMatches[0].ID)

	caregiverMatches, err := svc.ListMatchesForUser(db, cgUser.ID)
	require.NoError(t, err)
	require.Len(t, caregiverMatches, 1)
	assert.Equal(t, outcome.Match.ID, caregiverMatches[0].ID)
}
