package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RegisterPatientRequest registers a regular (patient) account.
type RegisterPatientRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	FullName       string `json:"full_name" validate:"required,min=2"`
	Phone          string `json:"phone" validate:"omitempty,min=7,max=20"`
	Gender         string `json:"gender" validate:"omitempty,oneof=male female other"`
	DateOfBirth    string `json:"date_of_birth" validate:"omitempty"` // Format: YYYY-MM-DD
	MedicalHistory string `json:"medical_history" validate:"omitempty"`
}

// RegisterDoctorRequest opens a doctor account plus a pending application.
// ExperienceYears and ConsultationFee arrive as free text from the signup
// form; unparseable values coerce to 0 rather than failing the signup.
// Qualifications is free text normalized by comma-splitting.
type RegisterDoctorRequest struct {
	Email           string   `json:"email" validate:"required,email"`
	Password        string   `json:"password" validate:"required,min=6"`
	FullName        string   `json:"full_name" validate:"required,min=2"`
	Phone           string   `json:"phone" validate:"omitempty,min=7,max=20"`
	LicenseNumber   string   `json:"license_number" validate:"required"`
	Specialization  string   `json:"specialization" validate:"required"`
	ExperienceYears string   `json:"experience_years" validate:"omitempty"`
	ConsultationFee string   `json:"consultation_fee" validate:"omitempty"`
	Location        string   `json:"location" validate:"required"`
	Address         string   `json:"address" validate:"omitempty"`
	Qualifications  string   `json:"qualifications" validate:"omitempty"`
	Languages       []string `json:"languages" validate:"omitempty"`
	Bio             string   `json:"bio" validate:"omitempty"`
	Documents       []string `json:"documents" validate:"omitempty"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DoctorSignupResponse returns the freshly created account together with the
// pending application so the client can show the verification status.
type DoctorSignupResponse struct {
	User        UserResponse        `json:"user"`
	Application ApplicationResponse `json:"application"`
	Doctor      DoctorResponse      `json:"doctor"`
}
