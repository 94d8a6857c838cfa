package handler

import (
	"net/http"
	"strconv"

	"symptocare-backend/internal/usecase"
	"symptocare-backend/pkg/response"

	"github.com/gorilla/mux"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{auditLogUsecase: auditLogUsecase}
}

// ListAuditLogs handles the admin audit trail listing
// @Summary List audit logs
// @Description List all audit log entries
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /admin/audit-logs [get]
func (h *AuditLogHandler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.auditLogUsecase.GetAllAuditLogs(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list audit logs")
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", logs)
}

// GetAuditLog handles the admin audit entry detail view
// @Summary Get an audit log entry
// @Description Get one audit log entry by ID
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Param id path int true "Audit Log ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/audit-logs/{id} [get]
func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid audit log ID")
		return
	}

	auditLog, err := h.auditLogUsecase.GetAuditLog(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrAuditLogNotFound:
			response.NotFound(w, "Audit log not found")
		default:
			response.InternalServerError(w, "Failed to get audit log")
		}
		return
	}

	response.Success(w, http.StatusOK, "Audit log retrieved successfully", auditLog)
}
