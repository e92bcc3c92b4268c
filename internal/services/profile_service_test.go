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

func newProfileService() services.ProfileService {
	return services.NewProfileService(repositories.NewProfileRepository())
}

func TestGetMyProfile(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newProfileService()

	famUser, fam := helpers.SeedFamily(t, db, "miller", "Austin, TX")
	cgUser, cg := helpers.SeedCaregiver(t, db, "anna", "Austin, TX", 25)

	view, err := svc.GetMyProfile(db, famUser.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleFamily, view.Role)
	require.NotNil(t, view.Family)
	assert.Equal(t, fam.ID, view.Family.ID)
	assert.Nil(t, view.Caregiver)

	view, err = svc.GetMyProfile(db, cgUser.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleCaregiver, view.Role)
	require.NotNil(t, view.Caregiver)
	assert.Equal(t, cg.ID, view.Caregiver.ID)

	_, err = svc.GetMyProfile(db, "no-such-user")
	assert.Error(t, err)
}

func TestUpdateMyProfile_Family(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newProfileService()

	famUser, _ := helpers.SeedFamily(t, db, "miller", "Austin, TX")

	name, location := "The Miller Family", "Dallas, TX"
	view, err := svc.UpdateMyProfile(db, famUser.ID, &dto.UpdateProfileRequest{
		Name:     &name,
		Location: &location,
	})
	require.NoError(t, err)
	assert.Equal(t, "The Miller Family", view.Family.Name)
	assert.Equal(t, "Dallas, TX", view.Family.Location)

	// Untouched fields keep their value.
	var stored models.FamilyProfile
	require.NoError(t, db.First(&stored, "user_id = ?", famUser.ID).Error)
	assert.NotEmpty(t, stored.Bio)

	// Caregiver-only fields are rejected, not silently dropped.
	rate := 30.0
	_, err = svc.UpdateMyProfile(db, famUser.ID, &dto.UpdateProfileRequest{HourlyRate: &rate})
	assert.Error(t, err)
}

func TestUpdateMyProfile_Caregiver(t *testing.T) {
	db := helpers.NewTestDB(t)
	svc := newProfileService()

	cgUser, _ := helpers.SeedCaregiver(t, db, "anna", "Austin, TX", 25)

	rate, hidden := 32.5, false
	years := 4
	view, err := svc.UpdateMyProfile(db, cgUser.ID, &dto.UpdateProfileRequest{
		HourlyRate:      &rate,
		ExperienceYears: &years,
		IsPublic:        &hidden,
	})
	require.NoError(t, err)
	assert.Equal(t, 32.5, view.Caregiver.HourlyRate)
	assert.Equal(t, 4, view.Caregiver.ExperienceYears)
	assert.False(t, view.Caregiver.IsPublic)

	var stored models.CaregiverProfile
	require.NoError(t, db.First(&stored, "user_id = ?", cgUser.ID).Error)
	assert.False(t, stored.IsPublic)
}
