package handler

import (
	"net/http"

	"prenatal-care-api/internal/delivery/dto"
	"prenatal-care-api/internal/usecase"
	"prenatal-care-api/pkg/response"
	"prenatal-care-api/pkg/validator"
)

// AuditLogHandler lets admins browse the audit trail.
type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
	validator       *validator.CustomValidator
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase, validator *validator.CustomValidator) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
		validator:       validator,
	}
}

func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", "audit log")
	if !ok {
		return
	}

	auditLog, err := h.auditLogUsecase.GetAuditLog(r.Context(), id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Audit log retrieved successfully", auditLog)
}

// ListAuditLogs returns a page of the audit trail
// @Summary List audit logs
// @Tags Admin
// @Security BearerAuth
// @Param action query string false "Action (patient.update) or entity prefix (patient)"
// @Param user_id query string false "Acting user"
// @Router /admin/audit-logs [get]
func (h *AuditLogHandler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	page, ok := queryInt(w, r, "page", 1)
	if !ok {
		return
	}
	limit, ok := queryInt(w, r, "limit", 0)
	if !ok {
		return
	}

	req := dto.ListAuditLogsRequest{
		Action: r.URL.Query().Get("action"),
		UserID: r.URL.Query().Get("user_id"),
		Page:   page,
		Limit:  limit,
	}
	if !validate(w, h.validator, &req) {
		return
	}

	res, err := h.auditLogUsecase.ListAuditLogs(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Audit logs retrieved successfully", res.Logs, response.NewMeta(res.Page, res.Limit, res.Total))
}
