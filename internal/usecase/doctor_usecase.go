package usecase

import (
	"context"
	"errors"

	"symptocare-backend/internal/converter"
	"symptocare-backend/internal/delivery/dto"
	"symptocare-backend/internal/domain/entity"
	"symptocare-backend/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotAvailable = errors.New("doctor not available")
	ErrDoctorNotVerified  = errors.New("doctor account is pending verification")
)

type DoctorUsecase interface {
	ListPublicDoctors(ctx context.Context, filter *repository.DoctorFilter) (*dto.DoctorListResponse, error)
	GetPublicDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	IsBookable(ctx context.Context, doctorID uuid.UUID) (bool, error)
	UpdateSelfProfile(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorResponse, error)
}

type doctorUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
}

func NewDoctorUsecase(db *gorm.DB, log *logrus.Logger, doctorRepo repository.DoctorRepository) DoctorUsecase {
	return &doctorUsecase{db: db, log: log, doctorRepo: doctorRepo}
}

func (u *doctorUsecase) ListPublicDoctors(ctx context.Context, filter *repository.DoctorFilter) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAllVerified(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

// GetPublicDoctor does not distinguish an unverified doctor from a missing
// one: both read as unavailable to the public surface.
func (u *doctorUsecase) GetPublicDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil || !doctor.IsVerified {
		return nil, ErrDoctorNotAvailable
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) IsBookable(ctx context.Context, doctorID uuid.UUID) (bool, error) {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		return false, err
	}
	return doctor != nil && doctor.IsVerified, nil
}

// UpdateSelfProfile lets a verified doctor maintain their public card.
// While the application is pending, the approval workflow is the only
// writer of the doctor record.
func (u *doctorUsecase) UpdateSelfProfile(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorProfileRequest) (*dto.DoctorResponse, error) {
	db := u.db.WithContext(ctx)

	doctor, err := u.doctorRepo.FindByUserID(db, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotAvailable
	}
	if !doctor.IsVerified {
		return nil, ErrDoctorNotVerified
	}

	if req.ConsultationFee != "" {
		doctor.ConsultationFee = ParseDecimalOrZero(req.ConsultationFee)
	}
	if req.Location != "" {
		doctor.Location = req.Location
	}
	if req.Address != "" {
		doctor.Address = req.Address
	}
	if req.Qualifications != "" {
		doctor.Qualifications = entity.StringList(SplitList(req.Qualifications))
	}
	if len(req.Languages) > 0 {
		doctor.Languages = entity.StringList(req.Languages)
	}
	if req.Bio != "" {
		doctor.Bio = req.Bio
	}

	if err := u.doctorRepo.Update(db, doctor); err != nil {
		u.log.Warnf("Failed to update doctor profile: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}
