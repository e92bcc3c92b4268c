package services

import (
	"careswipe_backend/internal/models"
	"careswipe_backend/internal/repositories"
	"careswipe_backend/internal/services/dto"
	"careswipe_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type JobService interface {
	CreateJob(db *gorm.DB, actorID string, req *dto.CreateJobRequest) (*models.JobPost, error)
	GetJob(db *gorm.DB, jobID string) (*models.JobPost, error)
	UpdateJob(db *gorm.DB, actorID, jobID string, req *dto.UpdateJobRequest) (*models.JobPost, error)
	DeleteJob(db *gorm.DB, actorID, jobID string) error
	ListMyJobs(db *gorm.DB, actorID string) ([]models.JobPost, error)
}

type jobService struct {
	jobRepo     repositories.JobPostRepository
	profileRepo repositories.ProfileRepository
}

func NewJobService(jobRepo repositories.JobPostRepository, profileRepo repositories.ProfileRepository) JobService {
	return &jobService{
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
	}
}

func (s *jobService) CreateJob(db *gorm.DB, actorID string, req *dto.CreateJobRequest) (*models.JobPost, error) {
	family, err := s.profileRepo.FindFamilyProfileByUserID(db, actorID)
	if err != nil {
		return nil, apperrors.ErrInvalidUserRole
	}

	job := &models.JobPost{
		FamilyID:     family.ID,
		Title:        req.Title,
		Description:  req.Description,
		Location:     req.Location,
		HoursPerWeek: req.HoursPerWeek,
		RatePerHour:  req.RatePerHour,
		Status:       models.JobStatusActive,
	}
	if job.Location == "" {
		job.Location = family.Location
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *jobService) GetJob(db *gorm.DB, jobID string) (*models.JobPost, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err == repositories.ErrJobPostNotFound {
		return nil, apperrors.ErrJobPostNotFound
	} else if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *jobService) UpdateJob(db *gorm.DB, actorID, jobID string, req *dto.UpdateJobRequest) (*models.JobPost, error) {
	job, err := s.authorizeJobOwner(db, actorID, jobID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Description != nil {
		job.Description = *req.Description
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.HoursPerWeek != nil {
		job.HoursPerWeek = *req.HoursPerWeek
	}
	if req.RatePerHour != nil {
		job.RatePerHour = *req.RatePerHour
	}
	if req.Status != nil {
		job.Status = models.JobStatus(*req.Status)
	}

	if err := s.jobRepo.Update(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *jobService) DeleteJob(db *gorm.DB, actorID, jobID string) error {
	if _, err := s.authorizeJobOwner(db, actorID, jobID); err != nil {
		return err
	}
	if err := s.jobRepo.Delete(db, jobID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *jobService) ListMyJobs(db *gorm.DB, actorID string) ([]models.JobPost, error) {
	family, err := s.profileRepo.FindFamilyProfileByUserID(db, actorID)
	if err != nil {
		return nil, apperrors.ErrInvalidUserRole
	}
	jobs, err := s.jobRepo.ListByFamily(db, family.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *jobService) authorizeJobOwner(db *gorm.DB, actorID, jobID string) (*models.JobPost, error) {
	family, err := s.profileRepo.FindFamilyProfileByUserID(db, actorID)
	if err != nil {
		return nil, apperrors.ErrInvalidUserRole
	}
	job, err := s.jobRepo.FindByID(db, jobID)
	if err == repositories.ErrJobPostNotFound {
		return nil, apperrors.ErrJobPostNotFound
	} else if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if job.FamilyID != family.ID {
		return nil, apperrors.ErrNotJobOwner
	}
	return job, nil
}
