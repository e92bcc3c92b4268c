package models

type Review struct {
	BaseModel
	CaregiverID string       `gorm:"not null;index" json:"caregiver_id"`
	FamilyID    string       `gorm:"not null;index" json:"family_id"`
	JobPostID   *string      `gorm:"index" json:"job_post_id,omitempty"`
	Rating      int          `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	ReviewText  string       `json:"review_text"`
	Status      ReviewStatus `gorm:"type:varchar(20);default:'approved'" json:"status"`

	// Relations
	Caregiver CaregiverProfile `gorm:"foreignKey:CaregiverID" json:"-"`
	Family    FamilyProfile    `gorm:"foreignKey:FamilyID" json:"-"`
	JobPost   *JobPost         `gorm:"foreignKey:JobPostID" json:"-"`
}
