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
	ErrApplicationNotFound = errors.New("application not found")
	ErrInvalidDecision     = errors.New("decision must be approved or rejected")
	ErrDecidingAdminGone   = errors.New("deciding admin account no longer exists")
)

type ApplicationUsecase interface {
	ListApplications(ctx context.Context) (*dto.ApplicationListResponse, error)
	GetApplication(ctx context.Context, id uuid.UUID) (*dto.ApplicationDetailResponse, error)
	Decide(ctx context.Context, applicationID, adminID uuid.UUID, req *dto.DecisionRequest) (*dto.ApplicationListResponse, error)
}

type applicationUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	applicationRepo repository.DoctorApplicationRepository
	approvalRepo    repository.ApprovalRepository
	doctorRepo      repository.DoctorRepository
	auditService    service.AuditService
}

func NewApplicationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	applicationRepo repository.DoctorApplicationRepository,
	approvalRepo repository.ApprovalRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) ApplicationUsecase {
	return &applicationUsecase{
		db:              db,
		log:             log,
		applicationRepo: applicationRepo,
		approvalRepo:    approvalRepo,
		doctorRepo:      doctorRepo,
		auditService:    auditService,
	}
}

func (u *applicationUsecase) ListApplications(ctx context.Context) (*dto.ApplicationListResponse, error) {
	applications, err := u.applicationRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list applications: %+v", err)
		return nil, err
	}

	return &dto.ApplicationListResponse{
		Applications: converter.ApplicationsToResponses(applications),
		Total:        len(applications),
	}, nil
}

func (u *applicationUsecase) GetApplication(ctx context.Context, id uuid.UUID) (*dto.ApplicationDetailResponse, error) {
	db := u.db.WithContext(ctx)

	application, err := u.applicationRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find application: %+v", err)
		return nil, err
	}
	if application == nil {
		return nil, ErrApplicationNotFound
	}

	doctor, err := u.doctorRepo.FindByUserID(db, application.UserID)
	if err != nil {
		u.log.Warnf("Failed to find doctor record: %+v", err)
		return nil, err
	}

	approvals, err := u.approvalRepo.FindByApplicationID(db, application.ID)
	if err != nil {
		u.log.Warnf("Failed to find approvals: %+v", err)
		return nil, err
	}

	return &dto.ApplicationDetailResponse{
		Application: *converter.ApplicationToResponse(application),
		Doctor:      converter.DoctorToResponse(doctor),
		Approvals:   converter.ApprovalsToResponses(approvals),
	}, nil
}

// Decide records an admin decision as an ordered sequence of writes:
// application status first, then the doctor verification flag on approval,
// then one Approval history row. A re-run of the same decision converges
// on the same application and doctor state but appends another Approval
// row, so the history reads at-least-once.
func (u *applicationUsecase) Decide(ctx context.Context, applicationID, adminID uuid.UUID, req *dto.DecisionRequest) (*dto.ApplicationListResponse, error) {
	db := u.db.WithContext(ctx)

	status := entity.ApplicationStatus(req.Decision)
	if status != entity.ApplicationStatusApproved && status != entity.ApplicationStatusRejected {
		return nil, ErrInvalidDecision
	}

	application, err := u.applicationRepo.FindByID(db, applicationID)
	if err != nil {
		u.log.Warnf("Failed to find application: %+v", err)
		return nil, err
	}
	if application == nil {
		return nil, ErrApplicationNotFound
	}

	application.Status = status
	if err := u.applicationRepo.Update(db, application); err != nil {
		u.log.Warnf("Failed to update application status: %+v", err)
		return nil, err
	}

	if status == entity.ApplicationStatusApproved {
		doctor, err := u.doctorRepo.FindByUserID(db, application.UserID)
		if err != nil {
			u.log.Warnf("Failed to find doctor record: %+v", err)
			return nil, err
		}
		if doctor != nil {
			now := time.Now()
			doctor.IsVerified = true
			doctor.VerifiedAt = &now
			doctor.VerifiedBy = &adminID
			if err := u.doctorRepo.Update(db, doctor); err != nil {
				u.log.Warnf("Failed to verify doctor: %+v", err)
				return nil, err
			}
		}
	}

	approval := &entity.Approval{
		ApplicationID: application.ID,
		ApprovedBy:    adminID,
		Status:        status,
		Comments:      req.Comments,
	}
	if err := u.approvalRepo.Create(db, approval); err != nil {
		u.log.Warnf("Failed to record approval: %+v", err)
		if isForeignKeyError(err, "approved_by") {
			return nil, ErrDecidingAdminGone
		}
		return nil, err
	}

	action := entity.AuditActionApplicationApprove
	if status == entity.ApplicationStatusRejected {
		action = entity.AuditActionApplicationReject
	}
	u.auditService.Log(db, &adminID, action, entity.JSON{
		"application_id": application.ID.String(),
		"applicant_id":   application.UserID.String(),
		"comments":       req.Comments,
	})

	return u.ListApplications(ctx)
}
