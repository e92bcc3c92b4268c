package services_test

import (
	"testing"

	"careswipe_backend/internal/models"
	"careswipe_backend/internal/repositories"
	"careswipe_backend/internal/services"
	"careswipe_backend/internal/services/dto"
	"careswipe_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReviewService() services.ReviewService {
	return services.NewReviewService(
		repositories.NewReviewRepository(),
		repositories.NewProfileRepository(),
		repositories.NewMatchRepository(),
	)
}

func TestCreateReview_RequiresMatch(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newReviewService()

	famUser, fam := helpers.SeedFamily(t, db, "miller", "Austin, TX")
	_, cg := helpers.SeedCaregiver(t, db, "anna", "Austin, TX", 25)
	job := helpers.SeedJobPost(t, db, fam.ID, "Nanny")

	req := &dto.CreateReviewRequest{CaregiverID: cg.ID, Rating: 5, ReviewText: "Wonderful with the kids"}

	// No match yet: the review is rejected.
	_, err := svc.CreateReview(db, famUser.ID, req)
	require.Error(t, err)

	require.NoError(t, db.Create(&models.Match{
		FamilyID:    fam.ID,
		CaregiverID: cg.ID,
		JobPostID:   job.ID,
	}).Error)

	review, err := svc.CreateReview(db, famUser.ID, req)
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, fam.ID, review.FamilyID)

	// The caregiver's denormalized rating follows the review.
	var updated models.CaregiverProfile
	require.NoError(t, db.First(&updated, "id = ?", cg.ID).Error)
	assert.Equal(t, 5.0, updated.Rating)
}

func TestGetCaregiverRatingStats_ApprovedOnly(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newReviewService()

	_, fam := helpers.SeedFamily(t, db, "miller", "Austin, TX")
	_, cg := helpers.SeedCaregiver(t, db, "anna", "Austin, TX", 25)

	require.NoError(t, db.Create(&models.Review{
		CaregiverID: cg.ID, FamilyID: fam.ID, Rating: 5, Status: models.ReviewStatusApproved,
	}).Error)
	require.NoError(t, db.Create(&models.Review{
		CaregiverID: cg.ID, FamilyID: fam.ID, Rating: 3, Status: models.ReviewStatusApproved,
	}).Error)
	require.NoError(t, db.Create(&models.Review{
		CaregiverID: cg.ID, FamilyID: fam.ID, Rating: 1, Status: models.ReviewStatusRejected,
	}).Error)

	stats, err := svc.GetCaregiverRatingStats(db, cg.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalReviews)
	assert.Equal(t, 4.0, stats.AverageRating)
}

func TestGetCaregiverReviews_EmptyForUnknown(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newReviewService()

	reviews, err := svc.GetCaregiverReviews(db, "no-such-caregiver")
	require.NoError(t, err)
	assert.Empty(t, reviews)
}
