package services

import (
	"careswipe_backend/internal/auth"
	"careswipe_backend/internal/models"
	"careswipe_backend/internal/repositories"
	"careswipe_backend/internal/services/dto"
	"careswipe_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*models.User, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authService struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewAuthService(userRepo repositories.UserRepository, profileRepo repositories.ProfileRepository) AuthService {
	return &authService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

func (s *authService) Register(db *gorm.DB, req *dto.RegisterRequest) (*models.User, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	role := models.UserRole(req.Role)
	if role != models.UserRoleFamily && role != models.UserRoleCaregiver {
		return nil, apperrors.ErrInvalidUserRole
	}

	exists, err := s.userRepo.EmailExists(db, req.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		Status:       models.UserStatusActive,
	}
	if err := s.userRepo.CreateUser(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Every account gets its role profile immediately; the feed and the
	// swipe ledger resolve actors through these rows.
	switch role {
	case models.UserRoleFamily:
		profile := &models.FamilyProfile{
			UserID:   user.ID,
			Name:     req.Name,
			Bio:      req.Bio,
			Phone:    req.Phone,
			Location: req.Location,
		}
		if err := s.profileRepo.CreateFamilyProfile(db, profile); err != nil {
			return nil, apperrors.InternalError(err)
		}
	case models.UserRoleCaregiver:
		profile := &models.CaregiverProfile{
			UserID:   user.ID,
			Name:     req.Name,
			Bio:      req.Bio,
			Phone:    req.Phone,
			Location: req.Location,
			IsPublic: true,
		}
		if err := s.profileRepo.CreateCaregiverProfile(db, profile); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return user, nil
}

func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindUserByEmail(db, req.Email)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		UserID:      user.ID,
		Role:        user.Role,
	}, nil
}
