package usecase

import (
	"context"
	"errors"
	"time"

	"symptocare-backend/internal/converter"
	"symptocare-backend/internal/delivery/dto"
	"symptocare-backend/internal/domain/entity"
	"symptocare-backend/internal/domain/repository"
	"symptocare-backend/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound      = errors.New("appointment not found")
	ErrAppointmentNotOwned      = errors.New("appointment does not belong to this doctor")
	ErrInvalidStatusTransition  = errors.New("invalid appointment status transition")
	ErrScheduledTimeInPast      = errors.New("scheduled time must be in the future")
	ErrInvalidScheduledAtFormat = errors.New("scheduled_at must be RFC 3339")
)

type AppointmentUsecase interface {
	Book(ctx context.Context, patientID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	GetMyAppointments(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error)
	GetDoctorAppointments(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error)
	UpdateStatus(ctx context.Context, appointmentID, doctorID uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	doctorUsecase   DoctorUsecase
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	doctorUsecase DoctorUsecase,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		doctorUsecase:   doctorUsecase,
		auditService:    auditService,
	}
}

// Book creates a scheduled appointment against a verified doctor. The
// bookable check goes through the same gate the public listing uses, so an
// unverified doctor is unreachable here even with a known ID.
func (u *appointmentUsecase) Book(ctx context.Context, patientID uuid.UUID, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	bookable, err := u.doctorUsecase.IsBookable(ctx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to check doctor availability: %+v", err)
		return nil, err
	}
	if !bookable {
		return nil, ErrDoctorNotAvailable
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return nil, ErrInvalidScheduledAtFormat
	}
	if !scheduledAt.After(time.Now()) {
		return nil, ErrScheduledTimeInPast
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = entity.DefaultDurationMinutes
	}

	db := u.db.WithContext(ctx)

	appointment := &entity.Appointment{
		PatientID:        patientID,
		DoctorID:         req.DoctorID,
		ScheduledAt:      scheduledAt,
		DurationMinutes:  duration,
		Status:           entity.AppointmentStatusScheduled,
		ConsultationType: req.ConsultationType,
		Reason:           req.Reason,
		PatientNotes:     req.PatientNotes,
	}

	if err := u.appointmentRepo.Create(db, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.auditService.Log(db, &patientID, entity.AuditActionAppointmentBook, entity.JSON{
		"appointment_id": appointment.ID.String(),
		"doctor_id":      req.DoctorID.String(),
		"scheduled_at":   scheduledAt.Format(time.RFC3339),
	})

	created, err := u.appointmentRepo.FindByID(db, appointment.ID)
	if err != nil || created == nil {
		return converter.AppointmentToResponse(appointment), nil
	}
	return converter.AppointmentToResponse(created), nil
}

func (u *appointmentUsecase) GetMyAppointments(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list patient appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetDoctorAppointments(ctx context.Context, doctorID uuid.UUID) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindByDoctorID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to list doctor appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// UpdateStatus moves an appointment along the lifecycle. Only the owning
// doctor may move it, and only along a legal edge of the transition table.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, appointmentID, doctorID uuid.UUID, req *dto.UpdateAppointmentStatusRequest) (*dto.AppointmentResponse, error) {
	db := u.db.WithContext(ctx)

	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	if appointment.DoctorID != doctorID {
		return nil, ErrAppointmentNotOwned
	}

	newStatus := entity.AppointmentStatus(req.Status)
	if !entity.IsValidAppointmentStatus(newStatus) || !appointment.CanTransitionTo(newStatus) {
		return nil, ErrInvalidStatusTransition
	}

	oldStatus := appointment.Status
	appointment.Status = newStatus
	if err := u.appointmentRepo.Update(db, appointment); err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}

	u.auditService.Log(db, &doctorID, entity.AuditActionAppointmentStatus, entity.JSON{
		"appointment_id": appointment.ID.String(),
		"from":           string(oldStatus),
		"to":             string(newStatus),
	})

	return converter.AppointmentToResponse(appointment), nil
}
