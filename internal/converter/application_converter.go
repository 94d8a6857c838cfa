package converter

import (
	"symptocare-backend/internal/delivery/dto"
	"symptocare-backend/internal/domain/entity"
)

// ApplicationToResponse converts a DoctorApplication entity to an
// ApplicationResponse DTO
func ApplicationToResponse(application *entity.DoctorApplication) *dto.ApplicationResponse {
	if application == nil {
		return nil
	}

	resp := &dto.ApplicationResponse{
		ID:              application.ID,
		UserID:          application.UserID,
		Email:           application.User.Email,
		LicenseNumber:   application.LicenseNumber,
		Specialization:  application.Specialization,
		ExperienceYears: application.ExperienceYears,
		Documents:       application.Documents,
		Status:          string(application.Status),
		SubmittedAt:     application.SubmittedAt,
	}

	if application.User.Profile != nil {
		resp.FullName = application.User.Profile.FullName
		resp.Phone = application.User.Profile.Phone
	}

	return resp
}

// ApplicationsToResponses converts a slice of DoctorApplication entities to
// ApplicationResponse DTOs
func ApplicationsToResponses(applications []entity.DoctorApplication) []dto.ApplicationResponse {
	responses := make([]dto.ApplicationResponse, len(applications))
	for i := range applications {
		responses[i] = *ApplicationToResponse(&applications[i])
	}
	return responses
}

// ApprovalToResponse converts an Approval entity to an ApprovalResponse DTO
func ApprovalToResponse(approval *entity.Approval) *dto.ApprovalResponse {
	if approval == nil {
		return nil
	}

	return &dto.ApprovalResponse{
		ID:            approval.ID,
		ApplicationID: approval.ApplicationID,
		ApprovedBy:    approval.ApprovedBy,
		Status:        string(approval.Status),
		Comments:      approval.Comments,
		CreatedAt:     approval.CreatedAt,
	}
}

// ApprovalsToResponses converts a slice of Approval entities to
// ApprovalResponse DTOs
func ApprovalsToResponses(approvals []entity.Approval) []dto.ApprovalResponse {
	responses := make([]dto.ApprovalResponse, len(approvals))
	for i := range approvals {
		responses[i] = *ApprovalToResponse(&approvals[i])
	}
	return responses
}
