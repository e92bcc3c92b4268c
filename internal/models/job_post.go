package models

// JobPost binds a family to a specific caregiving need. It is the context
// every swipe and match is scoped to; a family swiping without an explicit
// job defaults to its most recently created post.
//
// Deletion is soft: swipes and matches keep referencing the row, but it
// drops out of every feed and lookup.
type JobPost struct {
	BaseModelWithDeleted
	FamilyID     string    `gorm:"not null;index" json:"family_id"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `json:"description"`
	Location     string    `gorm:"index" json:"location"`
	HoursPerWeek int       `gorm:"not null;check:hours_per_week > 0" json:"hours_per_week"`
	RatePerHour  float64   `gorm:"not null;check:rate_per_hour > 0" json:"rate_per_hour"`
	Status       JobStatus `gorm:"type:varchar(20);default:'active'" json:"status"`

	// Relations
	Family FamilyProfile `gorm:"foreignKey:FamilyID" json:"family,omitempty"`
}
