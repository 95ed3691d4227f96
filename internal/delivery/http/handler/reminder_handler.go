package handler

import (
	"net/http"

	"prenatal-care-api/internal/delivery/dto"
	"prenatal-care-api/internal/usecase"
	"prenatal-care-api/pkg/response"
	"prenatal-care-api/pkg/validator"
)

type ReminderHandler struct {
	reminderUsecase usecase.ReminderUsecase
	validator       *validator.CustomValidator
}

func NewReminderHandler(reminderUsecase usecase.ReminderUsecase, validator *validator.CustomValidator) *ReminderHandler {
	return &ReminderHandler{
		reminderUsecase: reminderUsecase,
		validator:       validator,
	}
}

// ListReminders returns the caller's reminders, optionally filtered by the active and completed flags
// and a start/end date range on remind_at
// @Summary List reminders
// @Tags Portal
// @Security BearerAuth
// @Param active query bool false "Active flag"
// @Param completed query bool false "Completed flag"
// @Param start query string false "First day (YYYY-MM-DD)"
// @Param end query string false "Last day (YYYY-MM-DD)"
// @Router /portal/reminders [get]
func (h *ReminderHandler) ListReminders(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	active, ok := queryBool(w, r, "active")
	if !ok {
		return
	}
	completed, ok := queryBool(w, r, "completed")
	if !ok {
		return
	}

	q := r.URL.Query()
	req := dto.ListRemindersRequest{
		Active:    active,
		Completed: completed,
		Start:     q.Get("start"),
		End:       q.Get("end"),
	}
	if !validate(w, h.validator, &req) {
		return
	}

	reminders, err := h.reminderUsecase.ListReminders(r.Context(), userID, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Reminders retrieved successfully", reminders)
}

func (h *ReminderHandler) CreateReminder(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req dto.CreateReminderRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	reminder, err := h.reminderUsecase.CreateReminder(r.Context(), userID, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Reminder created successfully", reminder)
}

func (h *ReminderHandler) GetReminder(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", "reminder")
	if !ok {
		return
	}

	reminder, err := h.reminderUsecase.GetReminder(r.Context(), userID, id)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Reminder retrieved successfully", reminder)
}

func (h *ReminderHandler) UpdateReminder(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", "reminder")
	if !ok {
		return
	}

	var req dto.UpdateReminderRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	reminder, err := h.reminderUsecase.UpdateReminder(r.Context(), userID, id, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Reminder updated successfully", reminder)
}

func (h *ReminderHandler) DeleteReminder(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", "reminder")
	if !ok {
		return
	}

	if err := h.reminderUsecase.DeleteReminder(r.Context(), userID, id); err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Reminder deleted successfully", nil)
}
