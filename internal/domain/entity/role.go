package entity

// Role represents a user role in the system
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants
const (
	RoleIDAdmin  = 1
	RoleIDDoctor = 2
	RoleIDUser   = 3
)

// Role name constants
const (
	RoleAdmin  = "admin"
	RoleDoctor = "doctor"
	RoleUser   = "user"
)

// RoleName maps a role ID to its name; unknown IDs map to the default role.
func RoleName(roleID int) string {
	switch roleID {
	case RoleIDAdmin:
		return RoleAdmin
	case RoleIDDoctor:
		return RoleDoctor
	default:
		return RoleUser
	}
}
