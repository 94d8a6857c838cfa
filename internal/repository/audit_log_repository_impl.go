package repository

import (
	"errors"

	"symptocare-backend/internal/domain/entity"
	domainRepo "symptocare-backend/internal/domain/repository"

	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	return db.Create(log).Error
}

func (r *auditLogRepository) FindAll(db *gorm.DB) ([]entity.AuditLog, error) {
	var logs []entity.AuditLog
	err := db.Preload("User").Order("created_at DESC").Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *auditLogRepository) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	var log entity.AuditLog
	err := db.Preload("User").Where("id = ?", id).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}
