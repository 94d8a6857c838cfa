package repository

import (
	"symptocare-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
}
