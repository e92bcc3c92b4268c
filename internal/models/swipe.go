package models

// Swipe is one party's directional decision about one candidate within one
// job context. Rows are append-only and never deleted in normal operation.
//
// Both parties' decisions are keyed by the same canonical
// (family_id, caregiver_id, job_post_id) triple; Side records which party
// the row belongs to, and the composite unique index makes a resubmission
// by the same party a no-op rather than a duplicate.
type Swipe struct {
	BaseModel
	FamilyID    string         `gorm:"not null;uniqueIndex:idx_swipe_triple_side" json:"family_id"`
	CaregiverID string         `gorm:"not null;uniqueIndex:idx_swipe_triple_side" json:"caregiver_id"`
	JobPostID   string         `gorm:"not null;uniqueIndex:idx_swipe_triple_side" json:"job_post_id"`
	Side        SwipeSide      `gorm:"type:varchar(20);not null;uniqueIndex:idx_swipe_triple_side" json:"side"`
	Direction   SwipeDirection `gorm:"type:varchar(10);not null" json:"direction"`

	// Relations
	Family    FamilyProfile    `gorm:"foreignKey:FamilyID" json:"-"`
	Caregiver CaregiverProfile `gorm:"foreignKey:CaregiverID" json:"-"`
	JobPost   JobPost          `gorm:"foreignKey:JobPostID" json:"-"`
}
