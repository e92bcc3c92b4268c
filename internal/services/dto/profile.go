package dto

import "careswipe_backend/internal/models"

// UpdateProfileRequest carries partial edits to the actor's own profile.
// The rate, experience and visibility fields only apply to caregivers.
type UpdateProfileRequest struct {
	Name            *string  `json:"name,omitempty" validate:"omitempty,min=2,max=120"`
	Bio             *string  `json:"bio,omitempty" validate:"omitempty,max=2000"`
	Phone           *string  `json:"phone,omitempty" validate:"omitempty,max=30"`
	Location        *string  `json:"location,omitempty" validate:"omitempty,max=200"`
	HourlyRate      *float64 `json:"hourly_rate,omitempty" validate:"omitempty,gt=0"`
	ExperienceYears *int     `json:"experience_years,omitempty" validate:"omitempty,gte=0"`
	IsPublic        *bool    `json:"is_public,omitempty"`
}

// ProfileView is the actor's own profile, whichever side it lives on.
type ProfileView struct {
	Role      models.UserRole          `json:"role"`
	Family    *models.FamilyProfile    `json:"family_profile,omitempty"`
	Caregiver *models.CaregiverProfile `json:"caregiver_profile,omitempty"`
}
