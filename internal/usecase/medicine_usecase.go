package usecase

import (
	"context"
	"errors"
	"fmt"

	"symptocare-backend/internal/converter"
	"symptocare-backend/internal/delivery/dto"
	"symptocare-backend/internal/domain/entity"
	"symptocare-backend/internal/domain/repository"
	"symptocare-backend/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrMedicineNotFound  = errors.New("medicine not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrOrderNotFound     = errors.New("order not found")
)

type MedicineUsecase interface {
	CreateMedicine(ctx context.Context, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error)
	GetMedicine(ctx context.Context, id uuid.UUID) (*dto.MedicineResponse, error)
	ListMedicines(ctx context.Context, limit, offset int) ([]dto.MedicineResponse, int64, error)
	UpdateMedicine(ctx context.Context, id uuid.UUID, req *dto.UpdateMedicineRequest) (*dto.MedicineResponse, error)
	DeleteMedicine(ctx context.Context, id uuid.UUID) error
	PlaceOrder(ctx context.Context, patientID uuid.UUID, req *dto.PlaceOrderRequest) (*dto.OrderResponse, error)
	GetMyOrders(ctx context.Context, patientID uuid.UUID) (*dto.OrderListResponse, error)
}

type medicineUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	medicineRepo repository.MedicineRepository
	orderRepo    repository.MedicineOrderRepository
	auditService service.AuditService
}

func NewMedicineUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	medicineRepo repository.MedicineRepository,
	orderRepo repository.MedicineOrderRepository,
	auditService service.AuditService,
) MedicineUsecase {
	return &medicineUsecase{
		db:           db,
		log:          log,
		medicineRepo: medicineRepo,
		orderRepo:    orderRepo,
		auditService: auditService,
	}
}

func (u *medicineUsecase) CreateMedicine(ctx context.Context, req *dto.CreateMedicineRequest) (*dto.MedicineResponse, error) {
	medicine := &entity.Medicine{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
	}

	if err := u.medicineRepo.Create(u.db.WithContext(ctx), medicine); err != nil {
		u.log.Warnf("Failed to create medicine: %+v", err)
		return nil, err
	}

	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) GetMedicine(ctx context.Context, id uuid.UUID) (*dto.MedicineResponse, error) {
	medicine, err := u.medicineRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find medicine: %+v", err)
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}

	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) ListMedicines(ctx context.Context, limit, offset int) ([]dto.MedicineResponse, int64, error) {
	medicines, total, err := u.medicineRepo.FindAll(u.db.WithContext(ctx), limit, offset)
	if err != nil {
		u.log.Warnf("Failed to list medicines: %+v", err)
		return nil, 0, err
	}

	return converter.MedicinesToResponses(medicines), total, nil
}

func (u *medicineUsecase) UpdateMedicine(ctx context.Context, id uuid.UUID, req *dto.UpdateMedicineRequest) (*dto.MedicineResponse, error) {
	db := u.db.WithContext(ctx)

	medicine, err := u.medicineRepo.FindByID(db, id)
	if err != nil {
		u.log.Warnf("Failed to find medicine: %+v", err)
		return nil, err
	}
	if medicine == nil {
		return nil, ErrMedicineNotFound
	}

	medicine.Name = req.Name
	medicine.Description = req.Description
	medicine.Category = req.Category
	medicine.Price = req.Price
	medicine.Stock = req.Stock

	if err := u.medicineRepo.Update(db, medicine); err != nil {
		u.log.Warnf("Failed to update medicine: %+v", err)
		return nil, err
	}

	return converter.MedicineToResponse(medicine), nil
}

func (u *medicineUsecase) DeleteMedicine(ctx context.Context, id uuid.UUID) error {
	db := u.db.WithContext(ctx)

	medicine, err := u.medicineRepo.FindByID(db, id)
	if err != nil {
		return err
	}
	if medicine == nil {
		return ErrMedicineNotFound
	}

	return u.medicineRepo.Delete(db, id)
}

// PlaceOrder checks and decrements stock, snapshots unit prices, and
// computes subtotals and the order total with decimal arithmetic, all
// inside one transaction.
func (u *medicineUsecase) PlaceOrder(ctx context.Context, patientID uuid.UUID, req *dto.PlaceOrderRequest) (*dto.OrderResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	total := decimal.Zero
	items := make([]entity.MedicineOrderItem, 0, len(req.Items))

	for _, item := range req.Items {
		medicine, err := u.medicineRepo.FindByID(tx, item.MedicineID)
		if err != nil {
			u.log.Warnf("Failed to find medicine: %+v", err)
			return nil, err
		}
		if medicine == nil {
			return nil, ErrMedicineNotFound
		}
		if medicine.Stock < item.Quantity {
			return nil, fmt.Errorf("%w: %s", ErrInsufficientStock, medicine.Name)
		}

		medicine.Stock -= item.Quantity
		if err := u.medicineRepo.Update(tx, medicine); err != nil {
			u.log.Warnf("Failed to decrement stock: %+v", err)
			return nil, err
		}

		subtotal := medicine.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(subtotal)

		items = append(items, entity.MedicineOrderItem{
			MedicineID: medicine.ID,
			Quantity:   item.Quantity,
			UnitPrice:  medicine.Price,
			Subtotal:   subtotal,
		})
	}

	order := &entity.MedicineOrder{
		PatientID: patientID,
		Status:    entity.OrderStatusPlaced,
		Total:     total,
		Items:     items,
	}

	if err := u.orderRepo.Create(tx, order); err != nil {
		u.log.Warnf("Failed to create order: %+v", err)
		return nil, err
	}

	u.auditService.Log(tx, &patientID, entity.AuditActionOrderPlace, entity.JSON{
		"order_id": order.ID.String(),
		"total":    total.String(),
		"items":    len(items),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	created, err := u.orderRepo.FindByID(u.db.WithContext(ctx), order.ID)
	if err != nil || created == nil {
		return converter.OrderToResponse(order), nil
	}
	return converter.OrderToResponse(created), nil
}

func (u *medicineUsecase) GetMyOrders(ctx context.Context, patientID uuid.UUID) (*dto.OrderListResponse, error) {
	orders, err := u.orderRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to list orders: %+v", err)
		return nil, err
	}

	return &dto.OrderListResponse{
		Orders: converter.OrdersToResponses(orders),
		Total:  len(orders),
	}, nil
}
