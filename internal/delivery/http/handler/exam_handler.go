package handler

import (
	"net/http"

	"prenatal-care-api/internal/delivery/dto"
	"prenatal-care-api/internal/usecase"
	"prenatal-care-api/pkg/response"
	"prenatal-care-api/pkg/validator"
)

// ExamHandler serves the medical exams nested under a patient.
type ExamHandler struct {
	examUsecase usecase.ExamUsecase
	validator   *validator.CustomValidator
}

func NewExamHandler(examUsecase usecase.ExamUsecase, validator *validator.CustomValidator) *ExamHandler {
	return &ExamHandler{
		examUsecase: examUsecase,
		validator:   validator,
	}
}

func (h *ExamHandler) ListExams(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(w, r, "patientId", "patient")
	if !ok {
		return
	}

	exams, err := h.examUsecase.ListExams(r.Context(), patientID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Exams retrieved successfully", exams)
}

func (h *ExamHandler) CreateExam(w http.ResponseWriter, r *http.Request) {
	actorID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	patientID, ok := pathID(w, r, "patientId", "patient")
	if !ok {
		return
	}

	var req dto.CreateExamRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	exam, err := h.examUsecase.CreateExam(r.Context(), actorID, patientID, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Exam created successfully", exam)
}

func (h *ExamHandler) GetExam(w http.ResponseWriter, r *http.Request) {
	patientID, ok := pathID(w, r, "patientId", "patient")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", "exam")
	if !ok {
		return
	}

	exam, err := h.examUsecase.GetExam(r.Context(), patientID, id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Exam retrieved successfully", exam)
}

func (h *ExamHandler) UpdateExam(w http.ResponseWriter, r *http.Request) {
	actorID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	patientID, ok := pathID(w, r, "patientId", "patient")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", "exam")
	if !ok {
		return
	}

	var req dto.UpdateExamRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	exam, err := h.examUsecase.UpdateExam(r.Context(), actorID, patientID, id, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Exam updated successfully", exam)
}

func (h *ExamHandler) DeleteExam(w http.ResponseWriter, r *http.Request) {
	actorID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	patientID, ok := pathID(w, r, "patientId", "patient")
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", "exam")
	if !ok {
		return
	}

	if err := h.examUsecase.DeleteExam(r.Context(), actorID, patientID, id); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Exam deleted successfully", nil)
}
