package handler

import (
	"encoding/json"
	"net/http"

	"symptocare-backend/internal/delivery/dto"
	"symptocare-backend/internal/usecase"
	"symptocare-backend/pkg/response"
	"symptocare-backend/pkg/validator"
)

type SymptomHandler struct {
	symptomUsecase usecase.SymptomUsecase
	validator      *validator.CustomValidator
}

func NewSymptomHandler(symptomUsecase usecase.SymptomUsecase, validator *validator.CustomValidator) *SymptomHandler {
	return &SymptomHandler{
		symptomUsecase: symptomUsecase,
		validator:      validator,
	}
}

// Analyze handles symptom analysis requests
// @Summary Analyze symptoms
// @Description Suggest possible conditions for free-text symptoms
// @Tags Symptoms
// @Accept json
// @Produce json
// @Param request body dto.AnalyzeSymptomsRequest true "Analyze Symptoms Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /symptoms/analyze [post]
func (h *SymptomHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req dto.AnalyzeSymptomsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.symptomUsecase.Analyze(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to analyze symptoms")
		return
	}

	response.Success(w, http.StatusOK, "Symptoms analyzed successfully", result)
}
