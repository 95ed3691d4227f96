package handler

import (
	"net/http"

	"prenatal-care-api/internal/delivery/dto"
	"prenatal-care-api/internal/usecase"
	"prenatal-care-api/pkg/response"
	"prenatal-care-api/pkg/validator"
)

// LogEntryHandler serves the caller's gestation diary.
type LogEntryHandler struct {
	logEntryUsecase usecase.LogEntryUsecase
	validator       *validator.CustomValidator
}

func NewLogEntryHandler(logEntryUsecase usecase.LogEntryUsecase, validator *validator.CustomValidator) *LogEntryHandler {
	return &LogEntryHandler{
		logEntryUsecase: logEntryUsecase,
		validator:       validator,
	}
}

func (h *LogEntryHandler) ListLogEntries(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	req := dto.ListLogEntriesRequest{
		Category: q.Get("category"),
		Start:    q.Get("start"),
		End:      q.Get("end"),
	}
	if !validate(w, h.validator, &req) {
		return
	}

	entries, err := h.logEntryUsecase.ListLogEntries(r.Context(), userID, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Log entries retrieved successfully", entries)
}

func (h *LogEntryHandler) CreateLogEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req dto.CreateLogEntryRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	entry, err := h.logEntryUsecase.CreateLogEntry(r.Context(), userID, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Log entry created successfully", entry)
}

func (h *LogEntryHandler) GetLogEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", "log entry")
	if !ok {
		return
	}

	entry, err := h.logEntryUsecase.GetLogEntry(r.Context(), userID, id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Log entry retrieved successfully", entry)
}

func (h *LogEntryHandler) UpdateLogEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", "log entry")
	if !ok {
		return
	}

	var req dto.UpdateLogEntryRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	entry, err := h.logEntryUsecase.UpdateLogEntry(r.Context(), userID, id, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Log entry updated successfully", entry)
}

func (h *LogEntryHandler) DeleteLogEntry(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", "log entry")
	if !ok {
		return
	}

	if err := h.logEntryUsecase.DeleteLogEntry(r.Context(), userID, id); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Log entry deleted successfully", nil)
}
