package repositories

import (
	"errors"

	"careswipe_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrJobPostNotFound = errors.New("job post not found")
)

// JobSearchCriteria drives the caregiver-side candidate query.
type JobSearchCriteria struct {
	ExcludeIDs []string
	Location   string
	MinRate    *float64
	MaxRate    *float64
	MinHours   *int
	MaxHours   *int
	Limit      int
}

type JobPostRepository interface {
	Create(db *gorm.DB, job *models.JobPost) error
	FindByID(db *gorm.DB, id string) (*models.JobPost, error)
	Update(db *gorm.DB, job *models.JobPost) error
	Delete(db *gorm.DB, id string) error

	ListByFamily(db *gorm.DB, familyID string) ([]models.JobPost, error)
	CountByFamily(db *gorm.DB, familyID string) (int64, error)

	// LatestByFamily returns the family's most recently created job post,
	// the default swipe context when none is named explicitly.
	LatestByFamily(db *gorm.DB, familyID string) (*models.JobPost, error)

	// SearchActive lists active job posts outside the exclusion set with the
	// posting family preloaded, so the feed needs no second round-trip.
	SearchActive(db *gorm.DB, criteria JobSearchCriteria) ([]models.JobPost, error)
}

type JobPostRepositoryImpl struct{}

func NewJobPostRepository() JobPostRepository {
	return &JobPostRepositoryImpl{}
}

func (r *JobPostRepositoryImpl) Create(db *gorm.DB, job *models.JobPost) error {
	return db.Create(job).Error
}

func (r *JobPostRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.JobPost, error) {
	var job models.JobPost
	if err := db.Preload("Family").First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobPostNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobPostRepositoryImpl) Update(db *gorm.DB, job *models.JobPost) error {
	result := db.Model(job).Updates(map[string]interface{}{
		"title":          job.Title,
		"description":    job.Description,
		"location":       job.Location,
		"hours_per_week": job.HoursPerWeek,
		"rate_per_hour":  job.RatePerHour,
		"status":         job.Status,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobPostNotFound
	}
	return nil
}

func (r *JobPostRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.JobPost{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobPostNotFound
	}
	return nil
}

func (r *JobPostRepositoryImpl) ListByFamily(db *gorm.DB, familyID string) ([]models.JobPost, error) {
	var jobs []models.JobPost
	err := db.Where("family_id = ?", familyID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *JobPostRepositoryImpl) CountByFamily(db *gorm.DB, familyID string) (int64, error) {
	var count int64
	err := db.Model(&models.JobPost{}).
		Where("family_id = ?", familyID).
		Count(&count).Error
	return count, err
}

func (r *JobPostRepositoryImpl) LatestByFamily(db *gorm.DB, familyID string) (*models.JobPost, error) {
	var job models.JobPost
	err := db.Where("family_id = ?", familyID).
		Order("created_at DESC").
		First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobPostNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobPostRepositoryImpl) SearchActive(db *gorm.DB, criteria JobSearchCriteria) ([]models.JobPost, error) {
	query := db.Model(&models.JobPost{}).
		Preload("Family").
		Where("status = ?", models.JobStatusActive)

	if len(criteria.ExcludeIDs) > 0 {
		query = query.Where("id NOT IN ?", criteria.ExcludeIDs)
	}
	if criteria.Location != "" {
		query = query.Where("location LIKE ?", "%"+criteria.Location+"%")
	}
	if criteria.MinRate != nil {
		query = query.Where("rate_per_hour >= ?", *criteria.MinRate)
	}
	if criteria.MaxRate != nil {
		query = query.Where("rate_per_hour <= ?", *criteria.MaxRate)
	}
	if criteria.MinHours != nil {
		query = query.Where("hours_per_week >= ?", *criteria.MinHours)
	}
	if criteria.MaxHours != nil {
		query = query.Where("hours_per_week <= ?", *criteria.MaxHours)
	}
	if criteria.Limit > 0 {
		query = query.Limit(criteria.Limit)
	}

	var jobs []models.JobPost
	err := query.Order("created_at ASC").Find(&jobs).Error
	return jobs, err
}
