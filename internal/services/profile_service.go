package services

import (
	"careswipe_backend/internal/models"
	"careswipe_backend/internal/repositories"
	"careswipe_backend/internal/services/dto"
	"careswipe_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProfileService interface {
	GetMyProfile(db *gorm.DB, actorID string) (*dto.ProfileView, error)
	UpdateMyProfile(db *gorm.DB, actorID string, req *dto.UpdateProfileRequest) (*dto.ProfileView, error)
}

type profileService struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
	}
}

func (s *profileService) GetMyProfile(db *gorm.DB, actorID string) (*dto.ProfileView, error) {
	if family, err := s.profileRepo.FindFamilyProfileByUserID(db, actorID); err == nil {
		return &dto.ProfileView{Role: models.UserRoleFamily, Family: family}, nil
	}
	if caregiver, err := s.profileRepo.FindCaregiverProfileByUserID(db, actorID); err == nil {
		return &dto.ProfileView{Role: models.UserRoleCaregiver, Caregiver: caregiver}, nil
	}
	return nil, apperrors.ErrNotFound(repositories.ErrProfileNotFound)
}

func (s *profileService) UpdateMyProfile(db *gorm.DB, actorID string, req *dto.UpdateProfileRequest) (*dto.ProfileView, error) {
	if family, err := s.profileRepo.FindFamilyProfileByUserID(db, actorID); err == nil {
		if req.HourlyRate != nil || req.ExperienceYears != nil || req.IsPublic != nil {
			return nil, apperrors.NewBadRequestError("hourly_rate, experience_years and is_public apply to caregiver profiles only")
		}
		applyCommonProfileEdits(req, &family.Name, &family.Bio, &family.Phone, &family.Location)
		if err := s.profileRepo.UpdateFamilyProfile(db, family); err != nil {
			return nil, apperrors.InternalError(err)
		}
		return &dto.ProfileView{Role: models.UserRoleFamily, Family: family}, nil
	}

	if caregiver, err := s.profileRepo.FindCaregiverProfileByUserID(db, actorID); err == nil {
		applyCommonProfileEdits(req, &caregiver.Name, &caregiver.Bio, &caregiver.Phone, &caregiver.Location)
		if req.HourlyRate != nil {
			caregiver.HourlyRate = *req.HourlyRate
		}
		if req.ExperienceYears != nil {
			caregiver.ExperienceYears = *req.ExperienceYears
		}
		if req.IsPublic != nil {
			caregiver.IsPublic = *req.IsPublic
		}
		if err := s.profileRepo.UpdateCaregiverProfile(db, caregiver); err != nil {
			return nil, apperrors.InternalError(err)
		}
		return &dto.ProfileView{Role: models.UserRoleCaregiver, Caregiver: caregiver}, nil
	}

	return nil, apperrors.ErrNotFound(repositories.ErrProfileNotFound)
}

func applyCommonProfileEdits(req *dto.UpdateProfileRequest, name, bio, phone, location *string) {
	if req.Name != nil {
		*name = *req.Name
	}
	if req.Bio != nil {
		*bio = *req.Bio
	}
	if req.Phone != nil {
		*phone = *req.Phone
	}
	if req.Location != nil {
		*location = *req.Location
	}
}
