package services_test

import (
	"testing"

	"careswipe_backend/internal/models"
	"careswipe_backend/internal/repositories"
	"careswipe_backend/internal/services"
	"careswipe_backend/internal/services/dto"
	"careswipe_backend/pkg/apperrors"
	"careswipe_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobService() services.JobService {
	return services.NewJobService(
		repositories.NewJobPostRepository(),
		repositories.NewProfileRepository(),
	)
}

func TestCreateJob_DefaultsLocationToFamily(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newJobService()

	famUser, _ := helpers.SeedFamily(t, db, "miller", "Austin, TX")

	job, err := svc.CreateJob(db, famUser.ID, &dto.CreateJobRequest{
		Title:        "After-school nanny",
		HoursPerWeek: 20,
		RatePerHour:  25,
	})
	require.NoError(t, err)
	assert.Equal(t, "Austin, TX", job.Location)
	assert.Equal(t, models.JobStatusActive, job.Status)
}

func TestCreateJob_CaregiverRejected(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newJobService()

	cgUser, _ := helpers.SeedCaregiver(t, db, "anna", "Austin, TX", 25)

	_, err := svc.CreateJob(db, cgUser.ID, &dto.CreateJobRequest{
		Title: "Nope", HoursPerWeek: 20, RatePerHour: 25,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
}

func TestUpdateJob_OwnershipEnforced(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newJobService()

	_, fam := helpers.SeedFamily(t, db, "miller", "Austin, TX")
	otherUser, _ := helpers.SeedFamily(t, db, "other", "Dallas, TX")
	job := helpers.SeedJobPost(t, db, fam.ID, "Nanny")

	title := "Hijacked"
	_, err := svc.UpdateJob(db, otherUser.ID, job.ID, &dto.UpdateJobRequest{Title: &title})
	assert.ErrorIs(t, err, apperrors.ErrNotJobOwner)

	err = svc.DeleteJob(db, otherUser.ID, job.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotJobOwner)
}

func TestUpdateJob_PartialUpdate(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newJobService()

	famUser, fam := helpers.SeedFamily(t, db, "miller", "Austin, TX")
	job := helpers.SeedJobPost(t, db, fam.ID, "Nanny")

	status := "closed"
	updated, err := svc.UpdateJob(db, famUser.ID, job.ID, &dto.UpdateJobRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusClosed, updated.Status)
	assert.Equal(t, "Nanny", updated.Title)
}

func TestDeleteJob_LeavesNoTrace(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newJobService()

	famUser, fam := helpers.SeedFamily(t, db, "miller", "Austin, TX")
	job := helpers.SeedJobPost(t, db, fam.ID, "Nanny")

	require.NoError(t, svc.DeleteJob(db, famUser.ID, job.ID))

	// Deletion is soft, but lookups and listings no longer see the row.
	_, err := svc.GetJob(db, job.ID)
	assert.ErrorIs(t, err, apperrors.ErrJobPostNotFound)

	jobs, err := svc.ListMyJobs(db, famUser.ID)
	require.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestGetJob_NotFound(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newJobService()

	_, err := svc.GetJob(db, "missing-id")
	assert.ErrorIs(t, err, apperrors.ErrJobPostNotFound)
}
