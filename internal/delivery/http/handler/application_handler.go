package handler

import (
	"encoding/json"
	"net/http"

	"symptocare-backend/internal/delivery/dto"
	"symptocare-backend/internal/delivery/http/middleware"
	"symptocare-backend/internal/usecase"
	"symptocare-backend/pkg/response"
	"symptocare-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type ApplicationHandler struct {
	applicationUsecase usecase.ApplicationUsecase
	validator          *validator.CustomValidator
}

func NewApplicationHandler(applicationUsecase usecase.ApplicationUsecase, validator *validator.CustomValidator) *ApplicationHandler {
	return &ApplicationHandler{
		applicationUsecase: applicationUsecase,
		validator:          validator,
	}
}

// ListApplications handles the admin application queue
// @Summary List doctor applications
// @Description List all doctor applications, most recent first
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/applications [get]
func (h *ApplicationHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	applications, err := h.applicationUsecase.ListApplications(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list applications")
		return
	}

	response.Success(w, http.StatusOK, "Applications retrieved successfully", applications)
}

// GetApplication handles the admin application detail view
// @Summary Get a doctor application
// @Description Get one application with its doctor record and approval history
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/applications/{id} [get]
func (h *ApplicationHandler) GetApplication(w http.ResponseWriter, r *http.Request) {
	applicationID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid application ID")
		return
	}

	detail, err := h.applicationUsecase.GetApplication(r.Context(), applicationID)
	if err != nil {
		switch err {
		case usecase.ErrApplicationNotFound:
			response.NotFound(w, "Application not found")
		default:
			response.InternalServerError(w, "Failed to get application")
		}
		return
	}

	response.Success(w, http.StatusOK, "Application retrieved successfully", detail)
}

// Decide handles an admin decision on a doctor application
// @Summary Decide a doctor application
// @Description Approve or reject an application; approval verifies the doctor
// @Tags Admin
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param request body dto.DecisionRequest true "Decision Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/applications/{id}/decision [post]
func (h *ApplicationHandler) Decide(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	applicationID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.BadRequest(w, "Invalid application ID")
		return
	}

	var req dto.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	applications, err := h.applicationUsecase.Decide(r.Context(), applicationID, adminID, &req)
	if err != nil {
		switch err {
		case usecase.ErrApplicationNotFound:
			response.NotFound(w, "Application not found")
		case usecase.ErrInvalidDecision:
			response.BadRequest(w, err.Error())
		case usecase.ErrDecidingAdminGone:
			response.Conflict(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to record decision")
		}
		return
	}

	response.Success(w, http.StatusOK, "Decision recorded successfully", applications)
}
