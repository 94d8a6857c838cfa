package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus represents the status of a medicine order
type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// MedicineOrder is a patient purchase; Total is the decimal sum of its
// item subtotals computed at order time.
type MedicineOrder struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	PatientID uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_id"`
	Status    OrderStatus     `gorm:"type:varchar(20);not null;default:'placed'" json:"status"`
	Total     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total"`
	CreatedAt time.Time       `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Patient User                `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Items   []MedicineOrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

func (MedicineOrder) TableName() string {
	return "medicine_orders"
}

func (o *MedicineOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// MedicineOrderItem is a single line of a MedicineOrder. UnitPrice is a
// snapshot of the medicine price at purchase time.
type MedicineOrderItem struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	MedicineID uuid.UUID       `gorm:"type:uuid;not null;index" json:"medicine_id"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
	Subtotal   decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"subtotal"`

	// Relationships
	Medicine Medicine `gorm:"foreignKey:MedicineID" json:"medicine,omitempty"`
}

func (MedicineOrderItem) TableName() string {
	return "medicine_order_items"
}
