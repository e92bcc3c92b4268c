package models

// FamilyProfile is the family-side identity shown to caregivers browsing
// job posts. Rating is the denormalized mean of approved reviews about
// the family.
type FamilyProfile struct {
	BaseModel
	UserID   string  `gorm:"not null;uniqueIndex" json:"user_id"`
	Name     string  `json:"name"`
	Bio      string  `json:"bio"`
	Phone    string  `json:"phone"`
	Location string  `gorm:"index" json:"location"`
	Rating   float64 `json:"rating"`
}

// CaregiverProfile is the caregiver-side identity shown in a family's
// candidate feed.
type CaregiverProfile struct {
	BaseModel
	UserID          string  `gorm:"not null;uniqueIndex" json:"user_id"`
	Name            string  `json:"name"`
	Bio             string  `json:"bio"`
	Phone           string  `json:"phone"`
	Location        string  `gorm:"index" json:"location"`
	HourlyRate      float64 `json:"hourly_rate"`
	ExperienceYears int     `json:"experience_years"`
	Rating          float64 `json:"rating"`
	IsPublic        bool    `gorm:"default:true" json:"is_public"`
}
