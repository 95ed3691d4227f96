package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Portal account

type LinkPortalRequest struct {
	PatientID int64 `json:"patient_id" validate:"required,gt=0"`
}

type PortalAccountResponse struct {
	ID        int64     `json:"id"`
	PatientID int64     `json:"patient_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PortalPageResponse is the full self-service page of the caller.
type PortalPageResponse struct {
	Account             PortalAccountResponse `json:"account"`
	Patient             PatientResponse       `json:"patient"`
	Appointments        []AppointmentResponse `json:"appointments"`
	LogEntries          []LogEntryResponse    `json:"log_entries"`
	Reminders           []ReminderResponse    `json:"reminders"`
	PendingAppointments int64                 `json:"pending_appointments"`
	NextAppointment     *AppointmentResponse  `json:"next_appointment"`
	PendingReminders    int64                 `json:"pending_reminders"`
}

// Scheduled appointments

type CreateAppointmentRequest struct {
	Title           string     `json:"title" validate:"required,max=200"`
	AppointmentType string     `json:"appointment_type" validate:"omitempty,oneof=prenatal ultrasound exam emergency routine"`
	ScheduledAt     *time.Time `json:"scheduled_at" validate:"required"`
	Location        string     `json:"location" validate:"required,max=200"`
	Provider        *string    `json:"provider" validate:"omitempty,max=100"`
	ContactPhone    *string    `json:"contact_phone" validate:"omitempty,max=15"`
	Notes           *string    `json:"notes"`
	Status          string     `json:"status" validate:"omitempty,oneof=scheduled confirmed completed cancelled rescheduled"`
	ReminderSent    bool       `json:"reminder_sent"`
}

type UpdateAppointmentRequest struct {
	Title           *string    `json:"title" validate:"omitempty,min=1,max=200"`
	AppointmentType *string    `json:"appointment_type" validate:"omitempty,oneof=prenatal ultrasound exam emergency routine"`
	ScheduledAt     *time.Time `json:"scheduled_at"`
	Location        *string    `json:"location" validate:"omitempty,min=1,max=200"`
	Provider        *string    `json:"provider" validate:"omitempty,max=100"`
	ContactPhone    *string    `json:"contact_phone" validate:"omitempty,max=15"`
	Notes           *string    `json:"notes"`
	Status          *string    `json:"status" validate:"omitempty,oneof=scheduled confirmed completed cancelled rescheduled"`
	ReminderSent    *bool      `json:"reminder_sent"`
}

// ListAppointmentsRequest carries the query string filters. Start and End apply
// only when both are present.
type ListAppointmentsRequest struct {
	Status string `validate:"omitempty,oneof=scheduled confirmed completed cancelled rescheduled"`
	Start  string `validate:"omitempty,isodate"`
	End    string `validate:"omitempty,isodate"`
}

type AppointmentResponse struct {
	ID              int64     `json:"id"`
	Title           string    `json:"title"`
	AppointmentType string    `json:"appointment_type"`
	TypeLabel       string    `json:"appointment_type_label"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	Location        string    `json:"location"`
	Provider        *string   `json:"provider"`
	ContactPhone    *string   `json:"contact_phone"`
	Notes           *string   `json:"notes"`
	Status          string    `json:"status"`
	StatusLabel     string    `json:"status_label"`
	ReminderSent    bool      `json:"reminder_sent"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Gestation log

type CreateLogEntryRequest struct {
	Category     string           `json:"category" validate:"required,oneof=weight blood_pressure symptoms medication diet exercise mood fetal_movement other"`
	Title        string           `json:"title" validate:"required,max=200"`
	Description  string           `json:"description" validate:"required"`
	NumericValue *decimal.Decimal `json:"numeric_value"`
	Unit         *string          `json:"unit" validate:"omitempty,max=20"`
	RecordedAt   *time.Time       `json:"recorded_at" validate:"required"`
	Important    bool             `json:"important"`
}

type UpdateLogEntryRequest struct {
	Category     *string          `json:"category" validate:"omitempty,oneof=weight blood_pressure symptoms medication diet exercise mood fetal_movement other"`
	Title        *string          `json:"title" validate:"omitempty,min=1,max=200"`
	Description  *string          `json:"description" validate:"omitempty,min=1"`
	NumericValue *decimal.Decimal `json:"numeric_value"`
	Unit         *string          `json:"unit" validate:"omitempty,max=20"`
	RecordedAt   *time.Time       `json:"recorded_at"`
	Important    *bool            `json:"important"`
}

type ListLogEntriesRequest struct {
	Category string `validate:"omitempty,oneof=weight blood_pressure symptoms medication diet exercise mood fetal_movement other"`
	Start    string `validate:"omitempty,isodate"`
	End      string `validate:"omitempty,isodate"`
}

type LogEntryResponse struct {
	ID            int64            `json:"id"`
	Category      string           `json:"category"`
	CategoryLabel string           `json:"category_label"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	NumericValue  *decimal.Decimal `json:"numeric_value"`
	Unit          *string          `json:"unit"`
	RecordedAt    time.Time        `json:"recorded_at"`
	Important     bool             `json:"important"`
	CreatedAt     time.Time        `json:"created_at"`
}

// Reminders

type CreateReminderRequest struct {
	Title               string     `json:"title" validate:"required,max=200"`
	Description         *string    `json:"description"`
	ReminderType        string     `json:"reminder_type" validate:"omitempty,oneof=medication appointment exam exercise diet vitamin other"`
	RemindAt            *time.Time `json:"remind_at" validate:"required"`
	Repeat              bool       `json:"repeat"`
	RepeatIntervalHours *int       `json:"repeat_interval_hours" validate:"omitempty,gt=0"`
	Active              *bool      `json:"active"`
	Completed           bool       `json:"completed"`
}

type UpdateReminderRequest struct {
	Title               *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description         *string    `json:"description"`
	ReminderType        *string    `json:"reminder_type" validate:"omitempty,oneof=medication appointment exam exercise diet vitamin other"`
	RemindAt            *time.Time `json:"remind_at"`
	Repeat              *bool      `json:"repeat"`
	RepeatIntervalHours *int       `json:"repeat_interval_hours" validate:"omitempty,gt=0"`
	Active              *bool      `json:"active"`
	Completed           *bool      `json:"completed"`
}

// ListRemindersRequest filters reminders; nil means the flag is not filtered. Start
// and End apply only when both are present.
type ListRemindersRequest struct {
	Active    *bool
	Completed *bool
	Start     string `validate:"omitempty,isodate"`
	End       string `validate:"omitempty,isodate"`
}

type ReminderResponse struct {
	ID                  int64     `json:"id"`
	Title               string    `json:"title"`
	Description         *string   `json:"description"`
	ReminderType        string    `json:"reminder_type"`
	TypeLabel           string    `json:"reminder_type_label"`
	RemindAt            time.Time `json:"remind_at"`
	Repeat              bool      `json:"repeat"`
	RepeatIntervalHours *int      `json:"repeat_interval_hours"`
	Active              bool      `json:"active"`
	Completed           bool      `json:"completed"`
	CreatedAt           time.Time `json:"created_at"`
}

// Dashboard

type DashboardResponse struct {
	Patient      DashboardPatient      `json:"patient"`
	Appointments DashboardAppointments `json:"appointments"`
	Reminders    DashboardReminders    `json:"reminders"`
	Log          DashboardLog          `json:"log"`
}

type DashboardPatient struct {
	Name             string  `json:"name"`
	DueDate          *string `json:"due_date"`
	GestationalWeeks *int    `json:"gestational_weeks"`
}

type DashboardAppointments struct {
	TotalPending    int64                `json:"total_pending"`
	Next            *AppointmentResponse `json:"next"`
	WithinNext7Days int64                `json:"within_next_7_days"`
}

type DashboardReminders struct {
	TotalPending int64 `json:"total_pending"`
	DueToday     int64 `json:"due_today"`
}

type DashboardLog struct {
	TotalEntries        int64                `json:"total_entries"`
	LatestWeight        *LatestWeight        `json:"latest_weight"`
	LatestBloodPressure *LatestBloodPressure `json:"latest_blood_pressure"`
}

type LatestWeight struct {
	Value      *decimal.Decimal `json:"value"`
	Unit       *string          `json:"unit"`
	RecordedAt time.Time        `json:"recorded_at"`
}

type LatestBloodPressure struct {
	Value      string    `json:"value"`
	RecordedAt time.Time `json:"recorded_at"`
}
