package usecase

import (
	"context"
	"testing"

	"symptocare-backend/internal/delivery/dto"
	domain "symptocare-backend/internal/domain/repository"
	"symptocare-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newDoctorUsecase(db *gorm.DB) DoctorUsecase {
	return NewDoctorUsecase(db, testLogger(), repository.NewDoctorRepository())
}

func TestListPublicDoctorsHidesUnverified(t *testing.T) {
	db := setupTestDB(t)
	uc := newDoctorUsecase(db)

	verified := createTestDoctor(t, db, "verified@example.com", true)
	createTestDoctor(t, db, "unverified@example.com", false)

	list, err := uc.ListPublicDoctors(context.Background(), nil)
	assert.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, verified.UserID, list.Doctors[0].ID)
	assert.True(t, list.Doctors[0].IsVerified)
}

func TestListPublicDoctorsFilters(t *testing.T) {
	db := setupTestDB(t)
	uc := newDoctorUsecase(db)

	cardio := createTestDoctor(t, db, "cardio@example.com", true)
	derm := createTestDoctor(t, db, "derm@example.com", true)
	assert.NoError(t, db.Model(derm).Update("specialization", "Dermatology").Error)

	list, err := uc.ListPublicDoctors(context.Background(), &domain.DoctorFilter{Specialization: "cardio"})
	assert.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, cardio.UserID, list.Doctors[0].ID)
}

func TestGetPublicDoctorUnverifiedReadsAsUnavailable(t *testing.T) {
	db := setupTestDB(t)
	uc := newDoctorUsecase(db)

	unverified := createTestDoctor(t, db, "hidden@example.com", false)

	_, err := uc.GetPublicDoctor(context.Background(), unverified.UserID)
	assert.ErrorIs(t, err, ErrDoctorNotAvailable)

	_, err = uc.GetPublicDoctor(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrDoctorNotAvailable)
}

func TestIsBookableFollowsVerificationFlag(t *testing.T) {
	db := setupTestDB(t)
	uc := newDoctorUsecase(db)

	verified := createTestDoctor(t, db, "yes@example.com", true)
	unverified := createTestDoctor(t, db, "no@example.com", false)

	ok, err := uc.IsBookable(context.Background(), verified.UserID)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.IsBookable(context.Background(), unverified.UserID)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateSelfProfileRejectedWhilePending(t *testing.T) {
	db := setupTestDB(t)
	uc := newDoctorUsecase(db)

	pending := createTestDoctor(t, db, "pendingdoc@example.com", false)

	_, err := uc.UpdateSelfProfile(context.Background(), pending.UserID, &dto.UpdateDoctorProfileRequest{
		Bio: "new bio",
	})
	assert.ErrorIs(t, err, ErrDoctorNotVerified)
}

func TestUpdateSelfProfileVerifiedDoctor(t *testing.T) {
	db := setupTestDB(t)
	uc := newDoctorUsecase(db)

	doctor := createTestDoctor(t, db, "editor@example.com", true)

	updated, err := uc.UpdateSelfProfile(context.Background(), doctor.UserID, &dto.UpdateDoctorProfileRequest{
		Bio:            "20 years in cardiology",
		Qualifications: "MBBS, MD,  DM ",
		Location:       "Bengaluru",
	})
	assert.NoError(t, err)
	assert.Equal(t, "20 years in cardiology", updated.Bio)
	assert.Equal(t, []string{"MBBS", "MD", "DM"}, updated.Qualifications)
	assert.Equal(t, "Bengaluru", updated.Location)
}
