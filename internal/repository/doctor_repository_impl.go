package repository

import (
	"errors"
	"strings"

	"symptocare-backend/internal/domain/entity"
	domainRepo "symptocare-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Preload("User").Preload("User.Profile").Where("user_id = ?", userID).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Preload("User").Preload("User.Profile").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindAllVerified(db *gorm.DB, filter *domainRepo.DoctorFilter) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	query := db.Where("is_verified = ?", true)

	if filter != nil {
		if filter.Specialization != "" {
			query = query.Where("LOWER(specialization) LIKE ?", "%"+strings.ToLower(filter.Specialization)+"%")
		}
		if filter.Location != "" {
			query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(filter.Location)+"%")
		}
	}

	err := query.
		Preload("User").Preload("User.Profile").
		Order("created_at ASC, user_id ASC").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Save(doctor).Error
}
