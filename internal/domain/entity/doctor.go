package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Doctor represents the bookable-doctor record, keyed 1:1 to a User.
// Created unverified at doctor signup; the verification fields are written
// only by the admin approval workflow.
type Doctor struct {
	UserID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"user_id"`
	LicenseNumber   string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	Specialization  string          `gorm:"type:varchar(100);not null;index" json:"specialization"`
	ExperienceYears int             `gorm:"not null;default:0" json:"experience_years"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"consultation_fee"`
	Location        string          `gorm:"type:varchar(255);not null;index" json:"location"`
	Address         string          `gorm:"type:text" json:"address,omitempty"`
	Qualifications  StringList      `gorm:"type:jsonb" json:"qualifications,omitempty"`
	Languages       StringList      `gorm:"type:jsonb" json:"languages,omitempty"`
	Bio             string          `gorm:"type:text" json:"bio,omitempty"`
	Availability    JSON            `gorm:"type:jsonb" json:"availability,omitempty"`
	IsVerified      bool            `gorm:"not null;default:false;index" json:"is_verified"`
	VerifiedAt      *time.Time      `json:"verified_at,omitempty"`
	VerifiedBy      *uuid.UUID      `gorm:"type:uuid" json:"verified_by,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User         User                `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Applications []DoctorApplication `gorm:"foreignKey:UserID;references:UserID" json:"applications,omitempty"`
	Appointments []Appointment       `gorm:"foreignKey:DoctorID" json:"appointments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}
