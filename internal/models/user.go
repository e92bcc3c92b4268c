package models

type User struct {
	BaseModel
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         UserRole   `gorm:"type:varchar(20);not null" json:"role"`
	Status       UserStatus `gorm:"type:varchar(20);default:'active'" json:"status"`

	// Relations
	FamilyProfile    *FamilyProfile    `gorm:"foreignKey:UserID" json:"family_profile,omitempty"`
	CaregiverProfile *CaregiverProfile `gorm:"foreignKey:UserID" json:"caregiver_profile,omitempty"`
}
