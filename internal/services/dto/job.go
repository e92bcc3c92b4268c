package dto

type CreateJobRequest struct {
	Title        string  `json:"title" binding:"required" validate:"required,min=3,max=120"`
	Description  string  `json:"description" validate:"max=4000"`
	Location     string  `json:"location" validate:"max=200"`
	HoursPerWeek int     `json:"hours_per_week" binding:"required" validate:"required,gt=0"`
	RatePerHour  float64 `json:"rate_per_hour" binding:"required" validate:"required,gt=0"`
}

type UpdateJobRequest struct {
	Title        *string  `json:"title,omitempty" validate:"omitempty,min=3,max=120"`
	Description  *string  `json:"description,omitempty" validate:"omitempty,max=4000"`
	Location     *string  `json:"location,omitempty" validate:"omitempty,max=200"`
	HoursPerWeek *int     `json:"hours_per_week,omitempty" validate:"omitempty,gt=0"`
	RatePerHour  *float64 `json:"rate_per_hour,omitempty" validate:"omitempty,gt=0"`
	Status       *string  `json:"status,omitempty" validate:"omitempty,is-job-status"`
}
