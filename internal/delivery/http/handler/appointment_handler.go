package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"symptocare-backend/internal/delivery/dto"
	"symptocare-backend/internal/delivery/http/middleware"
	"symptocare-backend/internal/usecase"
	"symptocare-backend/pkg/response"
	"symptocare-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// Book handles appointment booking
// @Summary Book an appointment
// @Description Book an appointment with a verified doctor
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BookAppointmentRequest true "Book Appointment Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.BookAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Book(r.Context(), patientID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotAvailable:
			response.NotFound(w, "Doctor not available")
		case usecase.ErrInvalidScheduledAtFormat, usecase.ErrScheduledTimeInPast:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to book appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment booked successfully", appointment)
}

// GetMyAppointments handles the patient appointment list
// @Summary List own appointments
// @Description List the authenticated patient's appointments
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /appointments [get]
func (h *AppointmentHandler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	patientID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointments, err := h.appointmentUsecase.GetMyAppointments(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// GetDoctorAppointments handles the doctor's schedule view
// @Summary List doctor appointments
// @Description List appointments booked with the authenticated doctor
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /doctors/me/appointments [get]
func (h *AppointmentHandler) GetDoctorAppointments(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointments, err := h.appointmentUsecase.GetDoctorAppointments(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// UpdateStatus handles appointment lifecycle changes by the owning doctor
// @Summary Update appointment status
// @Description Move an appointment along its lifecycle
// @Tags Appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.UpdateAppointmentStatusRequest true "Update Status Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/{id}/status [patch]
func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	appointmentID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid appointment ID")
		return
	}

	var req dto.UpdateAppointmentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.UpdateStatus(r.Context(), appointmentID, doctorID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAppointmentNotFound):
			response.NotFound(w, "Appointment not found")
		case errors.Is(err, usecase.ErrAppointmentNotOwned):
			response.Forbidden(w, "Appointment does not belong to this doctor")
		case errors.Is(err, usecase.ErrInvalidStatusTransition):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to update appointment status")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment status updated successfully", appointment)
}
