package repository

import (
	"errors"

	"symptocare-backend/internal/domain/entity"
	domainRepo "symptocare-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.
		Preload("Patient").Preload("Patient.Profile").
		Preload("Doctor").Preload("Doctor.User.Profile").
		Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Preload("Doctor").Preload("Doctor.User.Profile").
		Where("patient_id = ?", patientID).
		Order("scheduled_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.
		Preload("Patient").Preload("Patient.Profile").
		Where("doctor_id = ?", doctorID).
		Order("scheduled_at ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Save(appointment).Error
}
