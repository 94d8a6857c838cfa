package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ApplicationStatus represents the status of a doctor application
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// DoctorApplication is the pending/approved/rejected request record created
// at doctor signup. The status transitions from pending to a terminal state
// exactly once in intended use and never back.
type DoctorApplication struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	LicenseNumber   string            `gorm:"type:varchar(50);not null" json:"license_number"`
	Specialization  string            `gorm:"type:varchar(100);not null" json:"specialization"`
	ExperienceYears int               `gorm:"not null;default:0" json:"experience_years"`
	Documents       StringList        `gorm:"type:jsonb" json:"documents,omitempty"`
	Status          ApplicationStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	SubmittedAt     time.Time         `gorm:"autoCreateTime;index" json:"submitted_at"`

	// Relationships
	User      User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Doctor    *Doctor    `gorm:"foreignKey:UserID;references:UserID" json:"doctor,omitempty"`
	Approvals []Approval `gorm:"foreignKey:ApplicationID" json:"approvals,omitempty"`
}

func (DoctorApplication) TableName() string {
	return "doctor_applications"
}

func (a *DoctorApplication) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// IsPending checks if the application has not been decided yet
func (a *DoctorApplication) IsPending() bool {
	return a.Status == ApplicationStatusPending
}

// IsTerminal checks if the application reached a terminal state
func (a *DoctorApplication) IsTerminal() bool {
	return a.Status == ApplicationStatusApproved || a.Status == ApplicationStatusRejected
}
