package dto

import "careswipe_backend/internal/models"

// RecordSwipeRequest is one actor's decision about a candidate.
// Family actors name the caregiver (job defaults to their latest post);
// caregiver actors name the job post they are swiping on.
type RecordSwipeRequest struct {
	CaregiverID string `json:"caregiver_id"`
	JobPostID   string `json:"job_post_id"`
	Direction   string `json:"direction" binding:"required" validate:"required,is-swipe-direction"`
}

// SwipeResult reports the ledger row plus whether this call created it.
// WasNew=false means the same actor already decided on this candidate and
// the resubmission was a no-op.
type SwipeResult struct {
	Swipe  *models.Swipe `json:"swipe"`
	WasNew bool          `json:"was_new"`
}

// MatchOutcome is the resolver's verdict for one evaluated like.
type MatchOutcome struct {
	IsMatch bool          `json:"is_match"`
	Match   *models.Match `json:"match,omitempty"`
}
