package entity

import (
	"time"

	"github.com/google/uuid"
)

// Approval is the append-only audit entry produced by an admin decision on a
// doctor application. One row is expected per terminal transition, but the
// workflow does not deduplicate: a re-run decision appends another row.
type Approval struct {
	ID            int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	ApplicationID uuid.UUID         `gorm:"type:uuid;not null;index" json:"application_id"`
	ApprovedBy    uuid.UUID         `gorm:"type:uuid;not null" json:"approved_by"`
	Status        ApplicationStatus `gorm:"type:varchar(20);not null" json:"status"`
	Comments      string            `gorm:"type:text" json:"comments,omitempty"`
	CreatedAt     time.Time         `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Application DoctorApplication `gorm:"foreignKey:ApplicationID" json:"application,omitempty"`
	Admin       User              `gorm:"foreignKey:ApprovedBy" json:"admin,omitempty"`
}

func (Approval) TableName() string {
	return "approvals"
}
