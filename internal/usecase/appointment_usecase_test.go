package usecase

import (
	"context"
	"testing"
	"time"

	"symptocare-backend/internal/delivery/dto"
	"symptocare-backend/internal/domain/entity"
	"symptocare-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newAppointmentUsecase(db *gorm.DB) AppointmentUsecase {
	return NewAppointmentUsecase(
		db,
		testLogger(),
		repository.NewAppointmentRepository(),
		newDoctorUsecase(db),
		testAuditService(),
	)
}

func bookRequest(doctorID uuid.UUID) *dto.BookAppointmentRequest {
	return &dto.BookAppointmentRequest{
		DoctorID:         doctorID,
		ScheduledAt:      time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		ConsultationType: entity.ConsultationTypeVideo,
		Reason:           "persistent headaches",
	}
}

func TestBookAppointmentWithVerifiedDoctor(t *testing.T) {
	db := setupTestDB(t)
	uc := newAppointmentUsecase(db)

	patient := createTestUser(t, db, "patient@example.com", entity.RoleIDUser)
	doctor := createTestDoctor(t, db, "doc@example.com", true)

	appointment, err := uc.Book(context.Background(), patient.ID, bookRequest(doctor.UserID))
	assert.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusScheduled), appointment.Status)
	assert.Equal(t, entity.DefaultDurationMinutes, appointment.DurationMinutes)
	assert.Equal(t, patient.ID, appointment.PatientID)
	assert.Equal(t, doctor.UserID, appointment.DoctorID)
}

func TestBookAppointmentUnverifiedDoctorRejected(t *testing.T) {
	db := setupTestDB(t)
	uc := newAppointmentUsecase(db)

	patient := createTestUser(t, db, "patient@example.com", entity.RoleIDUser)
	doctor := createTestDoctor(t, db, "pending@example.com", false)

	_, err := uc.Book(context.Background(), patient.ID, bookRequest(doctor.UserID))
	assert.ErrorIs(t, err, ErrDoctorNotAvailable)
}

func TestBookAppointmentInPast(t *testing.T) {
	db := setupTestDB(t)
	uc := newAppointmentUsecase(db)

	patient := createTestUser(t, db, "patient@example.com", entity.RoleIDUser)
	doctor := createTestDoctor(t, db, "doc@example.com", true)

	req := bookRequest(doctor.UserID)
	req.ScheduledAt = time.Now().Add(-time.Hour).Format(time.RFC3339)

	_, err := uc.Book(context.Background(), patient.ID, req)
	assert.ErrorIs(t, err, ErrScheduledTimeInPast)
}

func TestUpdateStatusLegalTransitions(t *testing.T) {
	db := setupTestDB(t)
	uc := newAppointmentUsecase(db)

	patient := createTestUser(t, db, "patient@example.com", entity.RoleIDUser)
	doctor := createTestDoctor(t, db, "doc@example.com", true)

	appointment, err := uc.Book(context.Background(), patient.ID, bookRequest(doctor.UserID))
	assert.NoError(t, err)
	appointmentID := appointment.ID

	updated, err := uc.UpdateStatus(context.Background(), appointmentID, doctor.UserID, &dto.UpdateAppointmentStatusRequest{Status: "confirmed"})
	assert.NoError(t, err)
	assert.Equal(t, "confirmed", updated.Status)

	updated, err = uc.UpdateStatus(context.Background(), appointmentID, doctor.UserID, &dto.UpdateAppointmentStatusRequest{Status: "completed"})
	assert.NoError(t, err)
	assert.Equal(t, "completed", updated.Status)
}

func TestUpdateStatusIllegalTransitions(t *testing.T) {
	db := setupTestDB(t)
	uc := newAppointmentUsecase(db)

	patient := createTestUser(t, db, "patient@example.com", entity.RoleIDUser)
	doctor := createTestDoctor(t, db, "doc@example.com", true)

	appointment, err := uc.Book(context.Background(), patient.ID, bookRequest(doctor.UserID))
	assert.NoError(t, err)

	// scheduled cannot jump straight to completed
	_, err = uc.UpdateStatus(context.Background(), appointment.ID, doctor.UserID, &dto.UpdateAppointmentStatusRequest{Status: "completed"})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)

	// cancelled is terminal
	_, err = uc.UpdateStatus(context.Background(), appointment.ID, doctor.UserID, &dto.UpdateAppointmentStatusRequest{Status: "cancelled"})
	assert.NoError(t, err)
	_, err = uc.UpdateStatus(context.Background(), appointment.ID, doctor.UserID, &dto.UpdateAppointmentStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestUpdateStatusOwnershipEnforced(t *testing.T) {
	db := setupTestDB(t)
	uc := newAppointmentUsecase(db)

	patient := createTestUser(t, db, "patient@example.com", entity.RoleIDUser)
	doctor := createTestDoctor(t, db, "doc@example.com", true)
	other := createTestDoctor(t, db, "other@example.com", true)

	appointment, err := uc.Book(context.Background(), patient.ID, bookRequest(doctor.UserID))
	assert.NoError(t, err)

	_, err = uc.UpdateStatus(context.Background(), appointment.ID, other.UserID, &dto.UpdateAppointmentStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrAppointmentNotOwned)
}

func TestAppointmentListsByParty(t *testing.T) {
	db := setupTestDB(t)
	uc := newAppointmentUsecase(db)

	patient := createTestUser(t, db, "patient@example.com", entity.RoleIDUser)
	doctor := createTestDoctor(t, db, "doc@example.com", true)

	_, err := uc.Book(context.Background(), patient.ID, bookRequest(doctor.UserID))
	assert.NoError(t, err)

	mine, err := uc.GetMyAppointments(context.Background(), patient.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, mine.Total)

	schedule, err := uc.GetDoctorAppointments(context.Background(), doctor.UserID)
	assert.NoError(t, err)
	assert.Equal(t, 1, schedule.Total)

	none, err := uc.GetMyAppointments(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Equal(t, 0, none.Total)
}
