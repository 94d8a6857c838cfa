package handler

import (
	"encoding/json"
	"net/http"

	"symptocare-backend/internal/delivery/dto"
	"symptocare-backend/internal/delivery/http/middleware"
	"symptocare-backend/internal/domain/repository"
	"symptocare-backend/internal/usecase"
	"symptocare-backend/pkg/response"
	"symptocare-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

// ListDoctors handles the public doctor directory
// @Summary List verified doctors
// @Description List verified doctors with optional specialization and location filters
// @Tags Doctors
// @Produce json
// @Param specialization query string false "Filter by specialization"
// @Param location query string false "Filter by location"
// @Success 200 {object} response.Response
// @Router /doctors [get]
func (h *DoctorHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	filter := &repository.DoctorFilter{
		Specialization: r.URL.Query().Get("specialization"),
		Location:       r.URL.Query().Get("location"),
	}

	doctors, err := h.doctorUsecase.ListPublicDoctors(r.Context(), filter)
	if err != nil {
		response.InternalServerError(w, "Failed to list doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

// GetDoctor handles the public doctor detail view
// @Summary Get a verified doctor
// @Description Get a single verified doctor by ID
// @Tags Doctors
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id} [get]
func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	doctorID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	doctor, err := h.doctorUsecase.GetPublicDoctor(r.Context(), doctorID)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotAvailable:
			response.NotFound(w, "Doctor not available")
		default:
			response.InternalServerError(w, "Failed to get doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

// UpdateProfile handles the verified doctor's self-service profile update
// @Summary Update own doctor profile
// @Description Update the authenticated doctor's public profile
// @Tags Doctors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateDoctorProfileRequest true "Update Doctor Profile Request"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /doctors/me [put]
func (h *DoctorHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdateDoctorProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.UpdateSelfProfile(r.Context(), userID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotAvailable:
			response.NotFound(w, "Doctor record not found")
		case usecase.ErrDoctorNotVerified:
			response.Forbidden(w, "Doctor account is pending verification")
		default:
			response.InternalServerError(w, "Failed to update doctor profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor profile updated successfully", doctor)
}
