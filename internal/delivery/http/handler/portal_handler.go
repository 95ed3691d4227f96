package handler

import (
	"net/http"

	"prenatal-care-api/internal/delivery/dto"
	"prenatal-care-api/internal/usecase"
	"prenatal-care-api/pkg/response"
	"prenatal-care-api/pkg/validator"
)

type PortalHandler struct {
	portalUsecase usecase.PortalUsecase
	validator     *validator.CustomValidator
}

func NewPortalHandler(portalUsecase usecase.PortalUsecase, validator *validator.CustomValidator) *PortalHandler {
	return &PortalHandler{
		portalUsecase: portalUsecase,
		validator:     validator,
	}
}

// GetPage returns the caller's linked patient with appointments, log entries and reminders
// @Summary Get portal page
// @Tags Portal
// @Security BearerAuth
// @Failure 404 {object} response.Response "no linked patient"
// @Router /portal [get]
func (h *PortalHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	page, err := h.portalUsecase.GetPage(r.Context(), userID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Portal retrieved successfully", page)
}

// Link attaches the caller to a patient record
// @Summary Link portal account
// @Tags Portal
// @Security BearerAuth
// @Param request body dto.LinkPortalRequest true "Link Request"
// @Success 201 {object} response.Response
// @Success 200 {object} response.Response "already linked to the same patient"
// @Failure 409 {object} response.Response
// @Router /portal [post]
func (h *PortalHandler) Link(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req dto.LinkPortalRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	page, created, err := h.portalUsecase.Link(r.Context(), userID, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	if !created {
		response.Success(w, http.StatusOK, "Portal already linked", page)
		return
	}
	response.Success(w, http.StatusCreated, "Portal linked successfully", page)
}

// GetDashboard returns the caller's dashboard summary
// @Summary Get portal dashboard
// @Tags Portal
// @Security BearerAuth
// @Router /portal/dashboard [get]
func (h *PortalHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	dashboard, err := h.portalUsecase.GetDashboard(r.Context(), userID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}
