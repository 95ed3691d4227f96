package converter

import (
	"prenatal-care-api/internal/delivery/dto"
	"prenatal-care-api/internal/domain/entity"
)

func PortalAccountToResponse(account *entity.PortalAccount) *dto.PortalAccountResponse {
	if account == nil {
		return nil
	}

	return &dto.PortalAccountResponse{
		ID:        account.ID,
		PatientID: account.PatientID,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}

func AppointmentToResponse(a *entity.ScheduledAppointment) *dto.AppointmentResponse {
	if a == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:              a.ID,
		Title:           a.Title,
		AppointmentType: string(a.Type),
		TypeLabel:       a.Type.Label(),
		ScheduledAt:     a.ScheduledAt,
		Location:        a.Location,
		Provider:        a.Provider,
		ContactPhone:    a.ContactPhone,
		Notes:           a.Notes,
		Status:          string(a.Status),
		StatusLabel:     a.Status.Label(),
		ReminderSent:    a.ReminderSent,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func AppointmentsToResponses(appointments []entity.ScheduledAppointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

func LogEntryToResponse(e *entity.GestationLogEntry) *dto.LogEntryResponse {
	if e == nil {
		return nil
	}

	return &dto.LogEntryResponse{
		ID:            e.ID,
		Category:      string(e.Category),
		CategoryLabel: e.Category.Label(),
		Title:         e.Title,
		Description:   e.Description,
		NumericValue:  nullDecimalPtr(e.NumericValue),
		Unit:          e.Unit,
		RecordedAt:    e.RecordedAt,
		Important:     e.Important,
		CreatedAt:     e.CreatedAt,
	}
}

func LogEntriesToResponses(entries []entity.GestationLogEntry) []dto.LogEntryResponse {
	responses := make([]dto.LogEntryResponse, len(entries))
	for i := range entries {
		responses[i] = *LogEntryToResponse(&entries[i])
	}
	return responses
}

func ReminderToResponse(r *entity.Reminder) *dto.ReminderResponse {
	if r == nil {
		return nil
	}

	return &dto.ReminderResponse{
		ID:                  r.ID,
		Title:               r.Title,
		Description:         r.Description,
		ReminderType:        string(r.Type),
		TypeLabel:           r.Type.Label(),
		RemindAt:            r.RemindAt,
		Repeat:              r.Repeat,
		RepeatIntervalHours: r.RepeatIntervalHours,
		Active:              r.Active,
		Completed:           r.Completed,
		CreatedAt:           r.CreatedAt,
	}
}

func RemindersToResponses(reminders []entity.Reminder) []dto.ReminderResponse {
	responses := make([]dto.ReminderResponse, len(reminders))
	for i := range reminders {
		responses[i] = *ReminderToResponse(&reminders[i])
	}
	return responses
}
