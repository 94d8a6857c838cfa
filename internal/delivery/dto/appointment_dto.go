package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type BookAppointmentRequest struct {
	DoctorID         uuid.UUID `json:"doctor_id" validate:"required"`
	ScheduledAt      string    `json:"scheduled_at" validate:"required"` // RFC 3339
	DurationMinutes  int       `json:"duration_minutes" validate:"omitempty,gte=10,lte=120"`
	ConsultationType string    `json:"consultation_type" validate:"required,oneof=video in_person phone"`
	Reason           string    `json:"reason" validate:"required,min=3"`
	PatientNotes     string    `json:"patient_notes" validate:"omitempty"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled confirmed completed cancelled"`
}

// Response DTOs

type AppointmentResponse struct {
	ID               uuid.UUID `json:"id"`
	PatientID        uuid.UUID `json:"patient_id"`
	PatientName      string    `json:"patient_name,omitempty"`
	DoctorID         uuid.UUID `json:"doctor_id"`
	DoctorName       string    `json:"doctor_name,omitempty"`
	Specialization   string    `json:"specialization,omitempty"`
	ScheduledAt      time.Time `json:"scheduled_at"`
	DurationMinutes  int       `json:"duration_minutes"`
	Status           string    `json:"status"`
	ConsultationType string    `json:"consultation_type"`
	Reason           string    `json:"reason"`
	PatientNotes     string    `json:"patient_notes,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
