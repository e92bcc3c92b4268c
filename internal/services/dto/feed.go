package dto

import "careswipe_backend/internal/models"

// FeedFilters enumerates the recognized feed facets. Each field is
// independently optional; unknown query keys are ignored upstream.
type FeedFilters struct {
	Location string   `form:"location" json:"location,omitempty"`
	MinRate  *float64 `form:"min_rate" json:"min_rate,omitempty"`
	MaxRate  *float64 `form:"max_rate" json:"max_rate,omitempty"`
	MinHours *int     `form:"min_hours" json:"min_hours,omitempty"`
	MaxHours *int     `form:"max_hours" json:"max_hours,omitempty"`
}

const (
	CandidateKindCaregiver = "caregiver"
	CandidateKindJobPost   = "job_post"
)

// Candidate is one swipeable entry of a feed page, annotated with enough
// embedded data that the caller needs no additional round-trip.
type Candidate struct {
	Kind      string                   `json:"kind"`
	Caregiver *models.CaregiverProfile `json:"caregiver,omitempty"`
	JobPost   *models.JobPost          `json:"job_post,omitempty"`
	Score     float64                  `json:"score"`
	Reasons   []string                 `json:"reasons,omitempty"`
}
