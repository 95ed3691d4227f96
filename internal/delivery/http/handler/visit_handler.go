package handler

import (
	"net/http"

	"prenatal-care-api/internal/delivery/dto"
	"prenatal-care-api/internal/usecase"
	"prenatal-care-api/pkg/response"
	"prenatal-care-api/pkg/validator"
)

// VisitHandler serves the prenatal visits nested under a patient.
type VisitHandler struct {
	visitUsecase usecase.VisitUsecase
	validator    *validator.CustomValidator
}

func NewVisitHandler(visitUsecase usecase.VisitUsecase, validator *validator.CustomValidator) *VisitHandler {
	return &VisitHandler{
		visitUsecase: visitUsecase,
		validator:    validator,
	}
}

func (h *VisitHandler) ListVisits(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(w, r, "patientId", "patient")
	if !ok {
		return
	}

	visits, err := h.visitUsecase.ListVisits(r.Context(), patientID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Visits retrieved successfully", visits)
}

func (h *VisitHandler) CreateVisit(w http.ResponseWriter, r *http.Request) {
	actorID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	patientID, ok := pathID(w, r, "patientId", "patient")
	if !ok {
		return
	}

	var req dto.CreateVisitRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	visit, err := h.visitUsecase.CreateVisit(r.Context(), actorID, patientID, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Visit created successfully", visit)
}

func (h *VisitHandler) GetVisit(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(w, r, "patientId", "patient")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", "visit")
	if !ok {
		return
	}

	visit, err := h.visitUsecase.GetVisit(r.Context(), patientID, id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Visit retrieved successfully", visit)
}

func (h *VisitHandler) UpdateVisit(w http.ResponseWriter, r *http.Request) {
	actorID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	patientID, ok := pathID(w, r, "patientId", "patient")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", "visit")
	if !ok {
		return
	}

	var req dto.UpdateVisitRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	visit, err := h.visitUsecase.UpdateVisit(r.Context(), actorID, patientID, id, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Visit updated successfully", visit)
}

func (h *VisitHandler) DeleteVisit(w http.ResponseWriter, r *http.Request) {
	actorID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	patientID, ok := pathID(w, r, "patientId", "patient")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", "visit")
	if !ok {
		return
	}

	if err := h.visitUsecase.DeleteVisit(r.Context(), actorID, patientID, id); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Visit deleted successfully", nil)
}
