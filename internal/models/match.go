package models

// Match confirms that both sides of a triple expressed a like. It is the
// authorization boundary downstream messaging/scheduling reads from, so a
// triple must never hold more than one row; the unique index is the
// correctness mechanism under concurrent reciprocal likes.
type Match struct {
	BaseModel
	FamilyID    string `gorm:"not null;uniqueIndex:idx_match_triple" json:"family_id"`
	CaregiverID string `gorm:"not null;uniqueIndex:idx_match_triple" json:"caregiver_id"`
	JobPostID   string `gorm:"not null;uniqueIndex:idx_match_triple" json:"job_post_id"`

	// Relations
	Family    FamilyProfile    `gorm:"foreignKey:FamilyID" json:"family,omitempty"`
	Caregiver CaregiverProfile `gorm:"foreignKey:CaregiverID" json:"caregiver,omitempty"`
	JobPost   JobPost          `gorm:"foreignKey:JobPostID" json:"job_post,omitempty"`
}
