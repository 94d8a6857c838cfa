package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// appointmentTransitions is the set of legal status edges. Completed and
// cancelled are terminal.
var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusScheduled: {AppointmentStatusConfirmed, AppointmentStatusCancelled},
	AppointmentStatusConfirmed: {AppointmentStatusCompleted, AppointmentStatusCancelled},
}

// ConsultationType constants
const (
	ConsultationTypeVideo    = "video"
	ConsultationTypeInPerson = "in_person"
	ConsultationTypePhone    = "phone"
)

// DefaultDurationMinutes is the appointment slot length used when the
// booking request does not specify one.
const DefaultDurationMinutes = 30

// Appointment represents a patient consultation with a verified doctor
type Appointment struct {
	ID               uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	PatientID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID         uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	ScheduledAt      time.Time         `gorm:"not null;index" json:"scheduled_at"`
	DurationMinutes  int               `gorm:"not null;default:30" json:"duration_minutes"`
	Status           AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	ConsultationType string            `gorm:"type:varchar(20);not null" json:"consultation_type"`
	Reason           string            `gorm:"type:text;not null" json:"reason"`
	PatientNotes     string            `gorm:"type:text" json:"patient_notes,omitempty"`
	CreatedAt        time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient User   `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor `gorm:"foreignKey:DoctorID;references:UserID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// CanTransitionTo reports whether moving to next is a legal status edge.
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range appointmentTransitions[a.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsValidAppointmentStatus reports whether s is one of the four known states.
func IsValidAppointmentStatus(s AppointmentStatus) bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusConfirmed,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}
