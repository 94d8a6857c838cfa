package handler

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"symptocare-backend/internal/delivery/dto"
	"symptocare-backend/internal/delivery/http/middleware"
	"symptocare-backend/internal/usecase"
	"symptocare-backend/pkg/response"
	"symptocare-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type MedicineHandler struct {
	medicineUsecase usecase.MedicineUsecase
	validator       *validator.CustomValidator
}

func NewMedicineHandler(medicineUsecase usecase.MedicineUsecase, validator *validator.CustomValidator) *MedicineHandler {
	return &MedicineHandler{
		medicineUsecase: medicineUsecase,
		validator:       validator,
	}
}

// ListMedicines handles the public medicine catalog
// @Summary List medicines
// @Description List medicines with pagination
// @Tags Medicines
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Router /medicines [get]
func (h *MedicineHandler) ListMedicines(w http.ResponseWriter, r *http.Request) {
	page, limit := paginationParams(r)

	medicines, total, err := h.medicineUsecase.ListMedicines(r.Context(), limit, (page-1)*limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list medicines")
		return
	}

	meta := &response.Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
	response.SuccessWithMeta(w, http.StatusOK, "Medicines retrieved successfully", medicines, meta)
}

// GetMedicine handles the medicine detail view
// @Summary Get a medicine
// @Description Get a single medicine by ID
// @Tags Medicines
// @Produce json
// @Param id path string true "Medicine ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /medicines/{id} [get]
func (h *MedicineHandler) GetMedicine(w http.ResponseWriter, r *http.Request) {
	medicineID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid medicine ID")
		return
	}

	medicine, err := h.medicineUsecase.GetMedicine(r.Context(), medicineID)
	if err != nil {
		switch err {
		case usecase.ErrMedicineNotFound:
			response.NotFound(w, "Medicine not found")
		default:
			response.InternalServerError(w, "Failed to get medicine")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medicine retrieved successfully", medicine)
}

// CreateMedicine handles admin catalog additions
// @Summary Create a medicine
// @Description Add a medicine to the catalog
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateMedicineRequest true "Create Medicine Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/medicines [post]
func (h *MedicineHandler) CreateMedicine(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medicine, err := h.medicineUsecase.CreateMedicine(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create medicine")
		return
	}

	response.Success(w, http.StatusCreated, "Medicine created successfully", medicine)
}

// UpdateMedicine handles admin catalog updates
// @Summary Update a medicine
// @Description Update a catalog medicine
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Medicine ID"
// @Param request body dto.UpdateMedicineRequest true "Update Medicine Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/medicines/{id} [put]
func (h *MedicineHandler) UpdateMedicine(w http.ResponseWriter, r *http.Request) {
	medicineID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid medicine ID")
		return
	}

	var req dto.UpdateMedicineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	medicine, err := h.medicineUsecase.UpdateMedicine(r.Context(), medicineID, &req)
	if err != nil {
		switch err {
		case usecase.ErrMedicineNotFound:
			response.NotFound(w, "Medicine not found")
		default:
			response.InternalServerError(w, "Failed to update medicine")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medicine updated successfully", medicine)
}

// DeleteMedicine handles admin catalog removals
// @Summary Delete a medicine
// @Description Remove a medicine from the catalog
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Medicine ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/medicines/{id} [delete]
func (h *MedicineHandler) DeleteMedicine(w http.ResponseWriter, r *http.Request) {
	medicineID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid medicine ID")
		return
	}

	if err := h.medicineUsecase.DeleteMedicine(r.Context(), medicineID); err != nil {
		switch err {
		case usecase.ErrMedicineNotFound:
			response.NotFound(w, "Medicine not found")
		default:
			response.InternalServerError(w, "Failed to delete medicine")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medicine deleted successfully", nil)
}

// PlaceOrder handles patient medicine purchases
// @Summary Place a medicine order
// @Description Order medicines; stock is checked and decremented atomically
// @Tags Orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.PlaceOrderRequest true "Place Order Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /orders [post]
func (h *MedicineHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	order, err := h.medicineUsecase.PlaceOrder(r.Context(), patientID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMedicineNotFound):
			response.NotFound(w, "Medicine not found")
		case errors.Is(err, usecase.ErrInsufficientStock):
			response.Error(w, http.StatusConflict, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to place order")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Order placed successfully", order)
}

// GetMyOrders handles the patient order history
// @Summary List own orders
// @Description List the authenticated patient's medicine orders
// @Tags Orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /orders [get]
func (h *MedicineHandler) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	orders, err := h.medicineUsecase.GetMyOrders(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to list orders")
		return
	}

	response.Success(w, http.StatusOK, "Orders retrieved successfully", orders)
}

// paginationParams reads page and limit query parameters, with defaults and
// an upper bound on page size.
func paginationParams(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}
