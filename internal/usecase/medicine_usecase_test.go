package usecase

import (
	"context"
	"testing"

	"symptocare-backend/internal/delivery/dto"
	"symptocare-backend/internal/domain/entity"
	"symptocare-backend/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newMedicineUsecase(db *gorm.DB) MedicineUsecase {
	return NewMedicineUsecase(
		db,
		testLogger(),
		repository.NewMedicineRepository(),
		repository.NewMedicineOrderRepository(),
		testAuditService(),
	)
}

func TestPlaceOrderDecrementsStockAndComputesTotal(t *testing.T) {
	db := setupTestDB(t)
	uc := newMedicineUsecase(db)

	patient := createTestUser(t, db, "buyer@example.com", entity.RoleIDUser)
	paracetamol := createTestMedicine(t, db, "Paracetamol", "12.50", 100)
	vitaminC := createTestMedicine(t, db, "Vitamin C", "8.25", 50)

	order, err := uc.PlaceOrder(context.Background(), patient.ID, &dto.PlaceOrderRequest{
		Items: []dto.OrderItemRequest{
			{MedicineID: paracetamol.ID, Quantity: 2},
			{MedicineID: vitaminC.ID, Quantity: 3},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, string(entity.OrderStatusPlaced), order.Status)
	// 2 * 12.50 + 3 * 8.25 = 49.75
	assert.True(t, order.Total.Equal(decimal.RequireFromString("49.75")))
	assert.Len(t, order.Items, 2)

	var storedParacetamol entity.Medicine
	assert.NoError(t, db.First(&storedParacetamol, "id = ?", paracetamol.ID).Error)
	assert.Equal(t, 98, storedParacetamol.Stock)

	var storedVitaminC entity.Medicine
	assert.NoError(t, db.First(&storedVitaminC, "id = ?", vitaminC.ID).Error)
	assert.Equal(t, 47, storedVitaminC.Stock)
}

func TestPlaceOrderInsufficientStockRollsBack(t *testing.T) {
	db := setupTestDB(t)
	uc := newMedicineUsecase(db)

	patient := createTestUser(t, db, "buyer@example.com", entity.RoleIDUser)
	plenty := createTestMedicine(t, db, "Plenty", "5.00", 100)
	scarce := createTestMedicine(t, db, "Scarce", "5.00", 1)

	_, err := uc.PlaceOrder(context.Background(), patient.ID, &dto.PlaceOrderRequest{
		Items: []dto.OrderItemRequest{
			{MedicineID: plenty.ID, Quantity: 10},
			{MedicineID: scarce.ID, Quantity: 5},
		},
	})
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// The first item's decrement must not survive the failed order.
	var stored entity.Medicine
	assert.NoError(t, db.First(&stored, "id = ?", plenty.ID).Error)
	assert.Equal(t, 100, stored.Stock)

	var count int64
	db.Model(&entity.MedicineOrder{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestPlaceOrderUnknownMedicine(t *testing.T) {
	db := setupTestDB(t)
	uc := newMedicineUsecase(db)

	patient := createTestUser(t, db, "buyer@example.com", entity.RoleIDUser)
	ghost := createTestMedicine(t, db, "Ghost", "5.00", 10)
	assert.NoError(t, db.Delete(&entity.Medicine{}, "id = ?", ghost.ID).Error)

	_, err := uc.PlaceOrder(context.Background(), patient.ID, &dto.PlaceOrderRequest{
		Items: []dto.OrderItemRequest{{MedicineID: ghost.ID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrMedicineNotFound)
}

func TestGetMyOrdersScopedToPatient(t *testing.T) {
	db := setupTestDB(t)
	uc := newMedicineUsecase(db)

	buyer := createTestUser(t, db, "buyer@example.com", entity.RoleIDUser)
	other := createTestUser(t, db, "other@example.com", entity.RoleIDUser)
	medicine := createTestMedicine(t, db, "Ibuprofen", "20.00", 10)

	_, err := uc.PlaceOrder(context.Background(), buyer.ID, &dto.PlaceOrderRequest{
		Items: []dto.OrderItemRequest{{MedicineID: medicine.ID, Quantity: 1}},
	})
	assert.NoError(t, err)

	mine, err := uc.GetMyOrders(context.Background(), buyer.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, mine.Total)

	none, err := uc.GetMyOrders(context.Background(), other.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0, none.Total)
}

func TestMedicineCRUD(t *testing.T) {
	db := setupTestDB(t)
	uc := newMedicineUsecase(db)

	created, err := uc.CreateMedicine(context.Background(), &dto.CreateMedicineRequest{
		Name:     "Cetirizine",
		Category: "Allergy",
		Price:    decimal.RequireFromString("15.00"),
		Stock:    25,
	})
	assert.NoError(t, err)

	updated, err := uc.UpdateMedicine(context.Background(), created.ID, &dto.UpdateMedicineRequest{
		Name:  "Cetirizine 10mg",
		Price: decimal.RequireFromString("16.00"),
		Stock: 30,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Cetirizine 10mg", updated.Name)
	assert.Equal(t, 30, updated.Stock)

	assert.NoError(t, uc.DeleteMedicine(context.Background(), created.ID))

	_, err = uc.GetMedicine(context.Background(), created.ID)
	assert.ErrorIs(t, err, ErrMedicineNotFound)
}
