package repository

import (
	"symptocare-backend/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicineRepository interface {
	Create(db *gorm.DB, medicine *entity.Medicine) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Medicine, error)
	FindAll(db *gorm.DB, limit, offset int) ([]entity.Medicine, int64, error)
	Update(db *gorm.DB, medicine *entity.Medicine) error
	Delete(db *gorm.DB, id uuid.UUID) error
}

type MedicineOrderRepository interface {
	Create(db *gorm.DB, order *entity.MedicineOrder) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.MedicineOrder, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.MedicineOrder, error)
}
