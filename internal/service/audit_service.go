package service

import (
	"symptocare-backend/internal/domain/entity"
	"symptocare-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// AuditService writes JSONB audit trail rows. Failures are logged but never
// fail the surrounding workflow; the trail is diagnostic, not an
// access-control input.
type AuditService interface {
	Log(db *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON) error
	LogChange(db *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
	}
}

func (s *auditService) Log(db *gorm.DB, userID *uuid.UUID, action string, metadata entity.JSON) error {
	auditLog := &entity.AuditLog{
		UserID:   userID,
		Action:   action,
		Metadata: metadata,
	}

	if err := s.auditRepo.Create(db, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
		return err
	}

	return nil
}

// LogChange records an action together with before/after snapshots.
func (s *auditService) LogChange(db *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	metadata := entity.JSON{
		"entity":    entityName,
		"entity_id": entityID,
		"old_value": oldValue,
		"new_value": newValue,
	}

	return s.Log(db, userID, action, metadata)
}
