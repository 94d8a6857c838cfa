package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateMedicineRequest struct {
	Name        string          `json:"name" validate:"required,min=2"`
	Description string          `json:"description" validate:"omitempty"`
	Category    string          `json:"category" validate:"omitempty"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Stock       int             `json:"stock" validate:"gte=0"`
}

type UpdateMedicineRequest struct {
	Name        string          `json:"name" validate:"required,min=2"`
	Description string          `json:"description" validate:"omitempty"`
	Category    string          `json:"category" validate:"omitempty"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Stock       int             `json:"stock" validate:"gte=0"`
}

type OrderItemRequest struct {
	MedicineID uuid.UUID `json:"medicine_id" validate:"required"`
	Quantity   int       `json:"quantity" validate:"required,gte=1"`
}

type PlaceOrderRequest struct {
	Items []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// Response DTOs

type MedicineResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
}

type OrderItemResponse struct {
	MedicineID   uuid.UUID       `json:"medicine_id"`
	MedicineName string          `json:"medicine_name,omitempty"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

type OrderResponse struct {
	ID        uuid.UUID           `json:"id"`
	PatientID uuid.UUID           `json:"patient_id"`
	Status    string              `json:"status"`
	Total     decimal.Decimal     `json:"total"`
	Items     []OrderItemResponse `json:"items"`
	CreatedAt time.Time           `json:"created_at"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}
