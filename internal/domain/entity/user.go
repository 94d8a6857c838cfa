package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents the centralized authentication table. The credential
// (email + password hash) lives here; everything user-facing lives in the
// associated Profile row.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RoleID    int       `gorm:"not null;index" json:"role_id"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	IsActive  *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role    Role     `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Profile *Profile `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Doctor  *Doctor  `gorm:"foreignKey:UserID" json:"doctor,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// BeforeCreate assigns an ID when the database does not (SQLite in tests).
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.RoleID == RoleIDAdmin
}

// IsDoctor reports whether the user holds the doctor role.
func (u *User) IsDoctor() bool {
	return u.RoleID == RoleIDDoctor
}
