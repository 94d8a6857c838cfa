package repository

import (
	"symptocare-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DoctorFilter narrows public doctor listings.
type DoctorFilter struct {
	Specialization string
	Location       string
}

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error)
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
	// FindAllVerified is the read side of the verification gate: it never
	// returns a doctor with is_verified = false.
	FindAllVerified(db *gorm.DB, filter *DoctorFilter) ([]entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
}
