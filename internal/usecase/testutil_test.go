package usecase

import (
	"fmt"
	"io"
	"testing"
	"time"

	"symptocare-backend/internal/domain/entity"
	"symptocare-backend/internal/repository"
	"symptocare-backend/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:testdb_usecase_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)

	err = db.AutoMigrate(
		&entity.Role{},
		&entity.User{},
		&entity.Profile{},
		&entity.Doctor{},
		&entity.DoctorApplication{},
		&entity.Approval{},
		&entity.Appointment{},
		&entity.Medicine{},
		&entity.MedicineOrder{},
		&entity.MedicineOrderItem{},
		&entity.Post{},
		&entity.PostLike{},
		&entity.AuditLog{},
	)
	assert.NoError(t, err)

	seedRoles(t, db)

	return db
}

func seedRoles(t *testing.T, db *gorm.DB) {
	roles := []entity.Role{
		{ID: entity.RoleIDAdmin, RoleName: entity.RoleAdmin},
		{ID: entity.RoleIDDoctor, RoleName: entity.RoleDoctor},
		{ID: entity.RoleIDUser, RoleName: entity.RoleUser},
	}
	for _, role := range roles {
		assert.NoError(t, db.Create(&role).Error)
	}
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testAuditService() service.AuditService {
	return service.NewAuditService(testLogger(), repository.NewAuditLogRepository())
}

// createTestUser inserts a bare credential row with the given role.
func createTestUser(t *testing.T, db *gorm.DB, email string, roleID int) *entity.User {
	user := &entity.User{
		Email:    email,
		Password: "$2a$10$hashedpasswordplaceholder",
		RoleID:   roleID,
	}
	assert.NoError(t, db.Create(user).Error)
	return user
}

// createTestDoctor inserts a doctor user plus its doctor record.
func createTestDoctor(t *testing.T, db *gorm.DB, email string, verified bool) *entity.Doctor {
	user := createTestUser(t, db, email, entity.RoleIDDoctor)
	doctor := &entity.Doctor{
		UserID:          user.ID,
		LicenseNumber:   "LIC-" + uuid.New().String()[:8],
		Specialization:  "Cardiology",
		ExperienceYears: 5,
		ConsultationFee: decimal.NewFromInt(100),
		Location:        "Mumbai",
		IsVerified:      verified,
	}
	assert.NoError(t, db.Create(doctor).Error)
	return doctor
}

// createTestMedicine inserts a medicine with the given price and stock.
func createTestMedicine(t *testing.T, db *gorm.DB, name string, price string, stock int) *entity.Medicine {
	p, err := decimal.NewFromString(price)
	assert.NoError(t, err)
	medicine := &entity.Medicine{
		Name:  name,
		Price: p,
		Stock: stock,
	}
	assert.NoError(t, db.Create(medicine).Error)
	return medicine
}

// The schema must migrate cleanly on sqlite, which has no uuid functions,
// so primary keys come from the BeforeCreate hooks rather than column
// defaults.
func TestSchemaMigratesAndHooksAssignIDs(t *testing.T) {
	db := setupTestDB(t)

	user := createTestUser(t, db, "hooked@example.com", entity.RoleIDUser)
	assert.NotEqual(t, uuid.Nil, user.ID)

	medicine := createTestMedicine(t, db, "Ibuprofen", "4.20", 10)
	assert.NotEqual(t, uuid.Nil, medicine.ID)

	post := &entity.Post{AuthorID: user.ID, Content: "hydrate"}
	assert.NoError(t, db.Create(post).Error)
	assert.NotEqual(t, uuid.Nil, post.ID)
}
