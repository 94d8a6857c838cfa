package converter

import (
	"symptocare-backend/internal/delivery/dto"
	"symptocare-backend/internal/domain/entity"
)

// AuditLogToResponse converts an AuditLog entity to an AuditLogResponse DTO
func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	return &dto.AuditLogResponse{
		ID:        log.ID,
		UserID:    log.UserID,
		Action:    log.Action,
		Metadata:  log.Metadata,
		CreatedAt: log.CreatedAt,
	}
}

// AuditLogsToResponses converts a slice of AuditLog entities to
// AuditLogResponse DTOs
func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, len(logs))
	for i := range logs {
		responses[i] = *AuditLogToResponse(&logs[i])
	}
	return responses
}
