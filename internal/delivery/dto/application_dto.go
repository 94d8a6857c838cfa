package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// DecisionRequest carries an admin decision on a doctor application.
type DecisionRequest struct {
	Decision string `json:"decision" validate:"required,oneof=approved rejected"`
	Comments string `json:"comments" validate:"omitempty,max=2000"`
}

// Response DTOs

type ApplicationResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	FullName        string    `json:"full_name,omitempty"`
	Email           string    `json:"email,omitempty"`
	Phone           string    `json:"phone,omitempty"`
	LicenseNumber   string    `json:"license_number"`
	Specialization  string    `json:"specialization"`
	ExperienceYears int       `json:"experience_years"`
	Documents       []string  `json:"documents,omitempty"`
	Status          string    `json:"status"`
	SubmittedAt     time.Time `json:"submitted_at"`
}

type ApplicationListResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Total        int                   `json:"total"`
}

type ApprovalResponse struct {
	ID            int64     `json:"id"`
	ApplicationID uuid.UUID `json:"application_id"`
	ApprovedBy    uuid.UUID `json:"approved_by"`
	Status        string    `json:"status"`
	Comments      string    `json:"comments,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// ApplicationDetailResponse is the admin detail view: the application plus
// its doctor record and full approval history.
type ApplicationDetailResponse struct {
	Application ApplicationResponse `json:"application"`
	Doctor      *DoctorResponse     `json:"doctor,omitempty"`
	Approvals   []ApprovalResponse  `json:"approvals,omitempty"`
}
