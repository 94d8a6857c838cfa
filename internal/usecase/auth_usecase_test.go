package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"symptocare-backend/config"
	"symptocare-backend/internal/delivery/dto"
	"symptocare-backend/internal/domain/entity"
	"symptocare-backend/internal/repository"
	"symptocare-backend/pkg/jwt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newAuthUsecase(db *gorm.DB) AuthUsecase {
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
	return NewAuthUsecase(
		db,
		testLogger(),
		repository.NewUserRepository(),
		repository.NewProfileRepository(),
		repository.NewDoctorRepository(),
		repository.NewDoctorApplicationRepository(),
		testAuditService(),
		jwtService,
		nil,
	)
}

func TestRegisterPatientCreatesUserAndProfile(t *testing.T) {
	db := setupTestDB(t)
	uc := newAuthUsecase(db)

	user, err := uc.RegisterPatient(context.Background(), &dto.RegisterPatientRequest{
		Email:    "patient@example.com",
		Password: "secret123",
		FullName: "Asha Rao",
		Phone:    "9876543210",
		Gender:   "female",
	})
	assert.NoError(t, err)
	assert.Equal(t, "patient@example.com", user.Email)
	assert.Equal(t, "Asha Rao", user.FullName)
	assert.Equal(t, entity.RoleUser, user.Role)

	var profile entity.Profile
	assert.NoError(t, db.First(&profile, "user_id = ?", user.ID).Error)
	assert.Equal(t, "Asha Rao", profile.FullName)

	var stored entity.User
	assert.NoError(t, db.First(&stored, "id = ?", user.ID).Error)
	assert.NotEqual(t, "secret123", stored.Password)
}

func TestRegisterPatientDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	uc := newAuthUsecase(db)

	req := &dto.RegisterPatientRequest{
		Email:    "dup@example.com",
		Password: "secret123",
		FullName: "First User",
	}
	_, err := uc.RegisterPatient(context.Background(), req)
	assert.NoError(t, err)

	_, err = uc.RegisterPatient(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	var count int64
	db.Model(&entity.User{}).Where("email = ?", "dup@example.com").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRegisterPatientInvalidDateOfBirth(t *testing.T) {
	db := setupTestDB(t)
	uc := newAuthUsecase(db)

	_, err := uc.RegisterPatient(context.Background(), &dto.RegisterPatientRequest{
		Email:       "dob@example.com",
		Password:    "secret123",
		FullName:    "Bad Date",
		DateOfBirth: "31-12-1990",
	})
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestRegisterDoctorCreatesPendingApplicationAndUnverifiedDoctor(t *testing.T) {
	db := setupTestDB(t)
	uc := newAuthUsecase(db)

	result, err := uc.RegisterDoctor(context.Background(), &dto.RegisterDoctorRequest{
		Email:           "doc@example.com",
		Password:        "secret123",
		FullName:        "Dr. Mehta",
		LicenseNumber:   "MH-12345",
		Specialization:  "Dermatology",
		ExperienceYears: "8",
		ConsultationFee: "500.50",
		Location:        "Pune",
		Qualifications:  "MBBS, MD",
	})
	assert.NoError(t, err)
	assert.Equal(t, entity.RoleDoctor, result.User.Role)
	assert.Equal(t, string(entity.ApplicationStatusPending), result.Application.Status)
	assert.False(t, result.Doctor.IsVerified)
	assert.Equal(t, 8, result.Doctor.ExperienceYears)
	assert.True(t, result.Doctor.ConsultationFee.Equal(decimal.RequireFromString("500.50")))

	var doctor entity.Doctor
	assert.NoError(t, db.First(&doctor, "user_id = ?", result.User.ID).Error)
	assert.False(t, doctor.IsVerified)
	assert.Nil(t, doctor.VerifiedAt)

	var application entity.DoctorApplication
	assert.NoError(t, db.First(&application, "user_id = ?", result.User.ID).Error)
	assert.Equal(t, entity.ApplicationStatusPending, application.Status)
	assert.False(t, application.SubmittedAt.IsZero())
}

func TestRegisterDoctorMissingRequiredFields(t *testing.T) {
	db := setupTestDB(t)
	uc := newAuthUsecase(db)

	_, err := uc.RegisterDoctor(context.Background(), &dto.RegisterDoctorRequest{
		Email:          "doc2@example.com",
		Password:       "secret123",
		FullName:       "Dr. Nobody",
		LicenseNumber:  "  ",
		Specialization: "Dermatology",
		Location:       "Pune",
	})
	assert.ErrorIs(t, err, ErrMissingDoctorFields)

	var count int64
	db.Model(&entity.User{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRegisterDoctorDuplicatePendingApplication(t *testing.T) {
	db := setupTestDB(t)
	uc := newAuthUsecase(db)

	req := &dto.RegisterDoctorRequest{
		Email:          "dupdoc@example.com",
		Password:       "secret123",
		FullName:       "Dr. Twice",
		LicenseNumber:  "MH-99999",
		Specialization: "Neurology",
		Location:       "Delhi",
	}
	_, err := uc.RegisterDoctor(context.Background(), req)
	assert.NoError(t, err)

	_, err = uc.RegisterDoctor(context.Background(), req)
	assert.ErrorIs(t, err, ErrDuplicateApplication)
}

func TestSplitListNormalization(t *testing.T) {
	assert.Equal(t, []string{"MBBS", "MD", "DM"}, SplitList("MBBS, MD,  DM "))
	assert.Equal(t, []string{"MBBS"}, SplitList("MBBS"))
	assert.Nil(t, SplitList(""))
	assert.Nil(t, SplitList(" , , "))
}

func TestNumericCoercion(t *testing.T) {
	assert.Equal(t, 8, ParseIntOrZero("8"))
	assert.Equal(t, 0, ParseIntOrZero(""))
	assert.Equal(t, 0, ParseIntOrZero("eight"))
	assert.Equal(t, 0, ParseIntOrZero("-3"))

	assert.True(t, ParseDecimalOrZero("500.50").Equal(decimal.RequireFromString("500.50")))
	assert.True(t, ParseDecimalOrZero("").IsZero())
	assert.True(t, ParseDecimalOrZero("free").IsZero())
	assert.True(t, ParseDecimalOrZero("-10").IsZero())
}

func TestPostgresConstraintErrorTranslation(t *testing.T) {
	dupEmail := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
	assert.True(t, isDuplicateKeyError(dupEmail, "email"))
	assert.False(t, isDuplicateKeyError(dupEmail, "license_number"))

	fkAdmin := &pgconn.PgError{Code: "23503", ConstraintName: "approvals_approved_by_fkey"}
	assert.True(t, isForeignKeyError(fkAdmin, "approved_by"))
	assert.False(t, isForeignKeyError(fkAdmin, "application_id"))

	// Wrapped errors still translate, other codes and plain errors do not.
	assert.True(t, isForeignKeyError(fmt.Errorf("create approval: %w", fkAdmin), "approved_by"))
	assert.False(t, isForeignKeyError(dupEmail, "approved_by"))
	assert.False(t, isDuplicateKeyError(errors.New("connection reset"), "email"))
	assert.False(t, isForeignKeyError(nil, "approved_by"))
}
