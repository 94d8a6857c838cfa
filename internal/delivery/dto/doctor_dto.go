package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

// UpdateDoctorProfileRequest is the verified doctor's self-service update.
type UpdateDoctorProfileRequest struct {
	ConsultationFee string   `json:"consultation_fee" validate:"omitempty"`
	Location        string   `json:"location" validate:"omitempty"`
	Address         string   `json:"address" validate:"omitempty"`
	Qualifications  string   `json:"qualifications" validate:"omitempty"`
	Languages       []string `json:"languages" validate:"omitempty"`
	Bio             string   `json:"bio" validate:"omitempty"`
}

// Response DTOs

type DoctorResponse struct {
	ID              uuid.UUID       `json:"id"`
	FullName        string          `json:"full_name,omitempty"`
	Email           string          `json:"email,omitempty"`
	Phone           string          `json:"phone,omitempty"`
	LicenseNumber   string          `json:"license_number"`
	Specialization  string          `json:"specialization"`
	ExperienceYears int             `json:"experience_years"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
	Location        string          `json:"location"`
	Address         string          `json:"address,omitempty"`
	Qualifications  []string        `json:"qualifications,omitempty"`
	Languages       []string        `json:"languages,omitempty"`
	Bio             string          `json:"bio,omitempty"`
	IsVerified      bool            `json:"is_verified"`
	VerifiedAt      *time.Time      `json:"verified_at,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
