package repository

import (
	"errors"

	"symptocare-backend/internal/domain/entity"
	domainRepo "symptocare-backend/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorApplicationRepository struct{}

func NewDoctorApplicationRepository() domainRepo.DoctorApplicationRepository {
	return &doctorApplicationRepository{}
}

func (r *doctorApplicationRepository) Create(db *gorm.DB, application *entity.DoctorApplication) error {
	return db.Create(application).Error
}

func (r *doctorApplicationRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.DoctorApplication, error) {
	var application entity.DoctorApplication
	err := db.
		Preload("User").Preload("User.Profile").Preload("Doctor").
		Where("id = ?", id).First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &application, nil
}

func (r *doctorApplicationRepository) FindPendingByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorApplication, error) {
	var application entity.DoctorApplication
	err := db.
		Where("user_id = ? AND status = ?", userID, entity.ApplicationStatusPending).
		First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &application, nil
}

func (r *doctorApplicationRepository) FindAll(db *gorm.DB) ([]entity.DoctorApplication, error) {
	var applications []entity.DoctorApplication
	err := db.
		Preload("User").Preload("User.Profile").Preload("Doctor").
		Order("submitted_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *doctorApplicationRepository) Update(db *gorm.DB, application *entity.DoctorApplication) error {
	return db.Save(application).Error
}

type approvalRepository struct{}

func NewApprovalRepository() domainRepo.ApprovalRepository {
	return &approvalRepository{}
}

func (r *approvalRepository) Create(db *gorm.DB, approval *entity.Approval) error {
	return db.Create(approval).Error
}

func (r *approvalRepository) FindByApplicationID(db *gorm.DB, applicationID uuid.UUID) ([]entity.Approval, error) {
	var approvals []entity.Approval
	err := db.
		Where("application_id = ?", applicationID).
		Order("created_at ASC, id ASC").
		Find(&approvals).Error
	if err != nil {
		return nil, err
	}
	return approvals, nil
}
