package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"symptocare-backend/internal/converter"
	"symptocare-backend/internal/delivery/dto"
	"symptocare-backend/internal/domain/entity"
	"symptocare-backend/internal/domain/repository"
	"symptocare-backend/internal/service"
	"symptocare-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists   = errors.New("email already exists")
	ErrLicenseAlreadyExists = errors.New("license number already exists")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrTokenRevoked         = errors.New("token has been revoked")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidDateFormat    = errors.New("invalid date format, use YYYY-MM-DD")
	ErrMissingDoctorFields  = errors.New("license number, specialization and location are required")
	ErrDuplicateApplication = errors.New("a pending application already exists for this account")
)

type AuthUsecase interface {
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.UserResponse, error)
	RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.DoctorSignupResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, accessTokenID, refreshTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

type authUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	userRepo        repository.UserRepository
	profileRepo     repository.ProfileRepository
	doctorRepo      repository.DoctorRepository
	applicationRepo repository.DoctorApplicationRepository
	auditService    service.AuditService
	jwtService      *jwt.JWTService
	redisClient     *redis.Client
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	doctorRepo repository.DoctorRepository,
	applicationRepo repository.DoctorApplicationRepository,
	auditService service.AuditService,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
) AuthUsecase {
	return &authUsecase{
		db:              db,
		log:             log,
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		doctorRepo:      doctorRepo,
		applicationRepo: applicationRepo,
		auditService:    auditService,
		jwtService:      jwtService,
		redisClient:     redisClient,
	}
}

// RegisterPatient creates the credential and profile rows in one
// transaction, so a profile-insert failure can never leave an orphaned
// credential behind.
func (u *authUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	var dob *time.Time
	if req.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		dob = &parsed
	}

	user, err := u.createUser(tx, req.Email, req.Password, entity.RoleIDUser)
	if err != nil {
		return nil, err
	}

	profile := &entity.Profile{
		UserID:         user.ID,
		FullName:       req.FullName,
		Phone:          req.Phone,
		Gender:         req.Gender,
		DateOfBirth:    dob,
		MedicalHistory: req.MedicalHistory,
	}

	if err := u.profileRepo.Create(tx, profile); err != nil {
		u.log.Warnf("Failed to create profile: %+v", err)
		return nil, err
	}

	u.auditService.Log(tx, &user.ID, entity.AuditActionUserRegister, entity.JSON{
		"email": user.Email,
		"role":  entity.RoleUser,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	user.Profile = profile
	return converter.UserToResponse(user), nil
}

// RegisterDoctor is the doctor application intake: one transaction creates
// the credential, the profile, a pending application, and an unverified
// doctor record. The doctor becomes bookable only through the admin
// approval workflow.
func (u *authUsecase) RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.DoctorSignupResponse, error) {
	if strings.TrimSpace(req.LicenseNumber) == "" ||
		strings.TrimSpace(req.Specialization) == "" ||
		strings.TrimSpace(req.Location) == "" {
		return nil, ErrMissingDoctorFields
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// A resubmitted signup for an email that already carries a pending
	// application is a duplicate application, not just a taken email.
	if existing, err := u.userRepo.FindByEmail(tx, req.Email); err != nil {
		u.log.Warnf("Failed to check existing email: %+v", err)
		return nil, err
	} else if existing != nil {
		pending, err := u.applicationRepo.FindPendingByUserID(tx, existing.ID)
		if err != nil {
			u.log.Warnf("Failed to check pending application: %+v", err)
			return nil, err
		}
		if pending != nil {
			return nil, ErrDuplicateApplication
		}
		return nil, ErrEmailAlreadyExists
	}

	user, err := u.createUser(tx, req.Email, req.Password, entity.RoleIDDoctor)
	if err != nil {
		return nil, err
	}

	profile := &entity.Profile{
		UserID:   user.ID,
		FullName: req.FullName,
		Phone:    req.Phone,
	}

	if err := u.profileRepo.Create(tx, profile); err != nil {
		u.log.Warnf("Failed to create profile: %+v", err)
		return nil, err
	}

	experienceYears := ParseIntOrZero(req.ExperienceYears)
	consultationFee := ParseDecimalOrZero(req.ConsultationFee)

	application := &entity.DoctorApplication{
		UserID:          user.ID,
		LicenseNumber:   req.LicenseNumber,
		Specialization:  req.Specialization,
		ExperienceYears: experienceYears,
		Documents:       entity.StringList(req.Documents),
		Status:          entity.ApplicationStatusPending,
	}

	if err := u.applicationRepo.Create(tx, application); err != nil {
		u.log.Warnf("Failed to create doctor application: %+v", err)
		return nil, err
	}

	doctor := &entity.Doctor{
		UserID:          user.ID,
		LicenseNumber:   req.LicenseNumber,
		Specialization:  req.Specialization,
		ExperienceYears: experienceYears,
		ConsultationFee: consultationFee,
		Location:        req.Location,
		Address:         req.Address,
		Qualifications:  entity.StringList(SplitList(req.Qualifications)),
		Languages:       entity.StringList(req.Languages),
		Bio:             req.Bio,
		IsVerified:      false,
	}

	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		if isDuplicateKeyError(err, "license_number") {
			return nil, ErrLicenseAlreadyExists
		}
		u.log.Warnf("Failed to create doctor record: %+v", err)
		return nil, err
	}

	u.auditService.Log(tx, &user.ID, entity.AuditActionDoctorApply, entity.JSON{
		"email":          user.Email,
		"application_id": application.ID.String(),
		"license_number": req.LicenseNumber,
		"specialization": req.Specialization,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	user.Profile = profile
	application.User = *user
	doctor.User = *user

	return &dto.DoctorSignupResponse{
		User:        *converter.UserToResponse(user),
		Application: *converter.ApplicationToResponse(application),
		Doctor:      *converter.DoctorToResponse(doctor),
	}, nil
}

// createUser inserts the credential row for either registration flow. The
// email pre-check makes the duplicate conflict detectable on any backing
// store; the pgconn translation below stays as the race-window net.
func (u *authUsecase) createUser(tx *gorm.DB, email, password string, roleID int) (*entity.User, error) {
	existing, err := u.userRepo.FindByEmail(tx, email)
	if err != nil {
		u.log.Warnf("Failed to check existing email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashedPassword),
		RoleID:   roleID,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Email, user.RoleID)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(user.ID, user.Email, user.RoleID)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.storeTokens(ctx, user.ID, accessTokenID, refreshTokenID); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	patterns := []string{
		fmt.Sprintf("access_token:*:%s", accessTokenID),
	}
	if refreshTokenID != "" {
		patterns = append(patterns, fmt.Sprintf("refresh_token:*:%s", refreshTokenID))
	}

	for _, pattern := range patterns {
		keys, err := u.redisClient.Keys(ctx, pattern).Result()
		if err != nil {
			u.log.Warnf("Failed to get token keys: %+v", err)
			return err
		}
		if len(keys) > 0 {
			if err := u.redisClient.Del(ctx, keys...).Err(); err != nil {
				u.log.Warnf("Failed to delete tokens: %+v", err)
				return err
			}
		}
	}

	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	refreshKey := fmt.Sprintf("refresh_token:%s:%s", claims.UserID.String(), claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrTokenRevoked
	}

	// Rotate: old refresh token is single-use
	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(claims.UserID, claims.Email, claims.RoleID)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(claims.UserID, claims.Email, claims.RoleID)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.storeTokens(ctx, claims.UserID, accessTokenID, refreshTokenID); err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) storeTokens(ctx context.Context, userID uuid.UUID, accessTokenID, refreshTokenID string) error {
	accessKey := fmt.Sprintf("access_token:%s:%s", userID.String(), accessTokenID)
	refreshKey := fmt.Sprintf("refresh_token:%s:%s", userID.String(), refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return err
	}

	if err := u.redisClient.Set(ctx, refreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return err
	}

	return nil
}

// SplitList normalizes comma-separated free text into a list: split, trim,
// drop empties, order preserved. "MBBS, MD, " -> ["MBBS", "MD"].
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

// ParseIntOrZero coerces free-text numeric input; empty or unparseable
// input stores 0 by policy rather than failing the signup.
func ParseIntOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// ParseDecimalOrZero coerces free-text money input, same policy as
// ParseIntOrZero.
func ParseDecimalOrZero(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint
// violation containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key
// violation containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
