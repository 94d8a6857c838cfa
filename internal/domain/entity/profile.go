package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents the application-level user record keyed 1:1 to a User.
type Profile struct {
	UserID         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	FullName       string     `gorm:"type:varchar(255);not null" json:"full_name"`
	Phone          string     `gorm:"type:varchar(20);index" json:"phone,omitempty"`
	Gender         string     `gorm:"type:varchar(10)" json:"gender,omitempty"`
	DateOfBirth    *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	MedicalHistory string     `gorm:"type:text" json:"medical_history,omitempty"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Profile) TableName() string {
	return "profiles"
}
