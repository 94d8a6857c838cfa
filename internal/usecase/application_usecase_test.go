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

func newApplicationUsecase(db *gorm.DB) ApplicationUsecase {
	return NewApplicationUsecase(
		db,
		testLogger(),
		repository.NewDoctorApplicationRepository(),
		repository.NewApprovalRepository(),
		repository.NewDoctorRepository(),
		testAuditService(),
	)
}

// seedApplication creates a doctor user, an unverified doctor record and a
// pending application, mirroring what doctor signup produces.
func seedApplication(t *testing.T, db *gorm.DB, email string) *entity.DoctorApplication {
	doctor := createTestDoctor(t, db, email, false)
	application := &entity.DoctorApplication{
		UserID:          doctor.UserID,
		LicenseNumber:   doctor.LicenseNumber,
		Specialization:  doctor.Specialization,
		ExperienceYears: doctor.ExperienceYears,
		Status:          entity.ApplicationStatusPending,
	}
	assert.NoError(t, db.Create(application).Error)
	return application
}

func TestApproveVerifiesDoctor(t *testing.T) {
	db := setupTestDB(t)
	uc := newApplicationUsecase(db)
	admin := createTestUser(t, db, "admin@example.com", entity.RoleIDAdmin)
	application := seedApplication(t, db, "pending@example.com")

	_, err := uc.Decide(context.Background(), application.ID, admin.ID, &dto.DecisionRequest{
		Decision: "approved",
		Comments: "credentials check out",
	})
	assert.NoError(t, err)

	var updated entity.DoctorApplication
	assert.NoError(t, db.First(&updated, "id = ?", application.ID).Error)
	assert.Equal(t, entity.ApplicationStatusApproved, updated.Status)

	var doctor entity.Doctor
	assert.NoError(t, db.First(&doctor, "user_id = ?", application.UserID).Error)
	assert.True(t, doctor.IsVerified)
	assert.NotNil(t, doctor.VerifiedAt)
	assert.NotNil(t, doctor.VerifiedBy)
	assert.Equal(t, admin.ID, *doctor.VerifiedBy)

	var approvals []entity.Approval
	assert.NoError(t, db.Find(&approvals, "application_id = ?", application.ID).Error)
	assert.Len(t, approvals, 1)
	assert.Equal(t, entity.ApplicationStatusApproved, approvals[0].Status)
	assert.Equal(t, "credentials check out", approvals[0].Comments)
}

func TestRejectLeavesDoctorUnverified(t *testing.T) {
	db := setupTestDB(t)
	uc := newApplicationUsecase(db)
	admin := createTestUser(t, db, "admin@example.com", entity.RoleIDAdmin)
	application := seedApplication(t, db, "rejected@example.com")

	_, err := uc.Decide(context.Background(), application.ID, admin.ID, &dto.DecisionRequest{
		Decision: "rejected",
		Comments: "license could not be confirmed",
	})
	assert.NoError(t, err)

	var updated entity.DoctorApplication
	assert.NoError(t, db.First(&updated, "id = ?", application.ID).Error)
	assert.Equal(t, entity.ApplicationStatusRejected, updated.Status)

	var doctor entity.Doctor
	assert.NoError(t, db.First(&doctor, "user_id = ?", application.UserID).Error)
	assert.False(t, doctor.IsVerified)
	assert.Nil(t, doctor.VerifiedAt)
	assert.Nil(t, doctor.VerifiedBy)

	var approvals []entity.Approval
	assert.NoError(t, db.Find(&approvals, "application_id = ?", application.ID).Error)
	assert.Len(t, approvals, 1)
	assert.Equal(t, entity.ApplicationStatusRejected, approvals[0].Status)
}

func TestDoubleDecideAppendsSecondApprovalRow(t *testing.T) {
	db := setupTestDB(t)
	uc := newApplicationUsecase(db)
	admin := createTestUser(t, db, "admin@example.com", entity.RoleIDAdmin)
	application := seedApplication(t, db, "twice@example.com")

	req := &dto.DecisionRequest{Decision: "approved"}
	_, err := uc.Decide(context.Background(), application.ID, admin.ID, req)
	assert.NoError(t, err)
	_, err = uc.Decide(context.Background(), application.ID, admin.ID, req)
	assert.NoError(t, err)

	// State converges; the approval history records both runs.
	var doctor entity.Doctor
	assert.NoError(t, db.First(&doctor, "user_id = ?", application.UserID).Error)
	assert.True(t, doctor.IsVerified)

	var count int64
	db.Model(&entity.Approval{}).Where("application_id = ?", application.ID).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestDecideUnknownApplication(t *testing.T) {
	db := setupTestDB(t)
	uc := newApplicationUsecase(db)
	admin := createTestUser(t, db, "admin@example.com", entity.RoleIDAdmin)

	_, err := uc.Decide(context.Background(), uuid.New(), admin.ID, &dto.DecisionRequest{Decision: "approved"})
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestDecideInvalidDecision(t *testing.T) {
	db := setupTestDB(t)
	uc := newApplicationUsecase(db)
	admin := createTestUser(t, db, "admin@example.com", entity.RoleIDAdmin)
	application := seedApplication(t, db, "invalid@example.com")

	_, err := uc.Decide(context.Background(), application.ID, admin.ID, &dto.DecisionRequest{Decision: "maybe"})
	assert.ErrorIs(t, err, ErrInvalidDecision)
}

func TestListApplicationsMostRecentFirst(t *testing.T) {
	db := setupTestDB(t)
	uc := newApplicationUsecase(db)

	first := seedApplication(t, db, "first@example.com")
	second := seedApplication(t, db, "second@example.com")

	// Force distinct submission times regardless of clock resolution.
	assert.NoError(t, db.Model(&entity.DoctorApplication{}).
		Where("id = ?", first.ID).
		Update("submitted_at", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)).Error)
	assert.NoError(t, db.Model(&entity.DoctorApplication{}).
		Where("id = ?", second.ID).
		Update("submitted_at", time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)).Error)

	list, err := uc.ListApplications(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 2, list.Total)
	assert.Equal(t, second.ID, list.Applications[0].ID)
	assert.Equal(t, first.ID, list.Applications[1].ID)
}

func TestGetApplicationDetailIncludesApprovalHistory(t *testing.T) {
	db := setupTestDB(t)
	uc := newApplicationUsecase(db)
	admin := createTestUser(t, db, "admin@example.com", entity.RoleIDAdmin)
	application := seedApplication(t, db, "detail@example.com")

	_, err := uc.Decide(context.Background(), application.ID, admin.ID, &dto.DecisionRequest{Decision: "approved"})
	assert.NoError(t, err)

	detail, err := uc.GetApplication(context.Background(), application.ID)
	assert.NoError(t, err)
	assert.Equal(t, application.ID, detail.Application.ID)
	assert.NotNil(t, detail.Doctor)
	assert.True(t, detail.Doctor.IsVerified)
	assert.Len(t, detail.Approvals, 1)
}
