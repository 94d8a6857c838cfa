package converter

import (
	"symptocare-backend/internal/delivery/dto"
	"symptocare-backend/internal/domain/entity"
)

// MedicineToResponse converts a Medicine entity to a MedicineResponse DTO
func MedicineToResponse(medicine *entity.Medicine) *dto.MedicineResponse {
	if medicine == nil {
		return nil
	}

	return &dto.MedicineResponse{
		ID:          medicine.ID,
		Name:        medicine.Name,
		Description: medicine.Description,
		Category:    medicine.Category,
		Price:       medicine.Price,
		Stock:       medicine.Stock,
	}
}

// MedicinesToResponses converts a slice of Medicine entities to
// MedicineResponse DTOs
func MedicinesToResponses(medicines []entity.Medicine) []dto.MedicineResponse {
	responses := make([]dto.MedicineResponse, len(medicines))
	for i := range medicines {
		responses[i] = *MedicineToResponse(&medicines[i])
	}
	return responses
}

// OrderToResponse converts a MedicineOrder entity (with items preloaded) to
// an OrderResponse DTO
func OrderToResponse(order *entity.MedicineOrder) *dto.OrderResponse {
	if order == nil {
		return nil
	}

	items := make([]dto.OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = dto.OrderItemResponse{
			MedicineID:   item.MedicineID,
			MedicineName: item.Medicine.Name,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			Subtotal:     item.Subtotal,
		}
	}

	return &dto.OrderResponse{
		ID:        order.ID,
		PatientID: order.PatientID,
		Status:    string(order.Status),
		Total:     order.Total,
		Items:     items,
		CreatedAt: order.CreatedAt,
	}
}

// OrdersToResponses converts a slice of MedicineOrder entities to
// OrderResponse DTOs
func OrdersToResponses(orders []entity.MedicineOrder) []dto.OrderResponse {
	responses := make([]dto.OrderResponse, len(orders))
	for i := range orders {
		responses[i] = *OrderToResponse(&orders[i])
	}
	return responses
}
