package dto

type CreateReviewRequest struct {
	CaregiverID string  `json:"caregiver_id" binding:"required" validate:"required"`
	JobPostID   *string `json:"job_post_id,omitempty"`
	Rating      int     `json:"rating" binding:"required" validate:"required,min=1,max=5"`
	ReviewText  string  `json:"review_text" validate:"max=2000"`
}
