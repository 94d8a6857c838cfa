package repository

import (
	"errors"

	"symptocare-backend/internal/domain/entity"
	domainRepo "symptocare-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medicineRepository struct{}

func NewMedicineRepository() domainRepo.MedicineRepository {
	return &medicineRepository{}
}

func (r *medicineRepository) Create(db *gorm.DB, medicine *entity.Medicine) error {
	return db.Create(medicine).Error
}

func (r *medicineRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Medicine, error) {
	var medicine entity.Medicine
	err := db.Where("id = ?", id).First(&medicine).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &medicine, nil
}

func (r *medicineRepository) FindAll(db *gorm.DB, limit, offset int) ([]entity.Medicine, int64, error) {
	var medicines []entity.Medicine
	var total int64

	if err := db.Model(&entity.Medicine{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("name ASC").Limit(limit).Offset(offset).Find(&medicines).Error
	if err != nil {
		return nil, 0, err
	}
	return medicines, total, nil
}

func (r *medicineRepository) Update(db *gorm.DB, medicine *entity.Medicine) error {
	return db.Save(medicine).Error
}

func (r *medicineRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Medicine{}).Error
}

type medicineOrderRepository struct{}

func NewMedicineOrderRepository() domainRepo.MedicineOrderRepository {
	return &medicineOrderRepository{}
}

func (r *medicineOrderRepository) Create(db *gorm.DB, order *entity.MedicineOrder) error {
	return db.Create(order).Error
}

func (r *medicineOrderRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.MedicineOrder, error) {
	var order entity.MedicineOrder
	err := db.Preload("Items").Preload("Items.Medicine").Where("id = ?", id).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *medicineOrderRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.MedicineOrder, error) {
	var orders []entity.MedicineOrder
	err := db.
		Preload("Items").Preload("Items.Medicine").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
