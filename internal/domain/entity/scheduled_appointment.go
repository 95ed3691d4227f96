package entity

import "time"

// AppointmentType is the kind of appointment a patient books.
type AppointmentType string

const (
	AppointmentTypePrenatal   AppointmentType = "prenatal"
	AppointmentTypeUltrasound AppointmentType = "ultrasound"
	AppointmentTypeExam       AppointmentType = "exam"
	AppointmentTypeEmergency  AppointmentType = "emergency"
	AppointmentTypeRoutine    AppointmentType = "routine"
)

var appointmentTypeLabels = map[AppointmentType]string{
	AppointmentTypePrenatal:   "Prenatal",
	AppointmentTypeUltrasound: "Ultrasound",
	AppointmentTypeExam:       "Exam",
	AppointmentTypeEmergency:  "Emergency",
	AppointmentTypeRoutine:    "Routine checkup",
}

func (t AppointmentType) IsValid() bool {
	_, ok := appointmentTypeLabels[t]
	return ok
}

func (t AppointmentType) Label() string {
	return appointmentTypeLabels[t]
}

// AppointmentStatus represents the lifecycle of a scheduled appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled   AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed   AppointmentStatus = "confirmed"
	AppointmentStatusCompleted   AppointmentStatus = "completed"
	AppointmentStatusCancelled   AppointmentStatus = "cancelled"
	AppointmentStatusRescheduled AppointmentStatus = "rescheduled"
)

var appointmentStatusLabels = map[AppointmentStatus]string{
	AppointmentStatusScheduled:   "Scheduled",
	AppointmentStatusConfirmed:   "Confirmed",
	AppointmentStatusCompleted:   "Completed",
	AppointmentStatusCancelled:   "Cancelled",
	AppointmentStatusRescheduled: "Rescheduled",
}

func (s AppointmentStatus) IsValid() bool {
	_, ok := appointmentStatusLabels[s]
	return ok
}

func (s AppointmentStatus) Label() string {
	return appointmentStatusLabels[s]
}

// PendingAppointmentStatuses are the statuses counted as upcoming on the dashboard.
var PendingAppointmentStatuses = []AppointmentStatus{
	AppointmentStatusScheduled,
	AppointmentStatusConfirmed,
}

// ScheduledAppointment is an appointment the patient books for themselves.
type ScheduledAppointment struct {
	ID              int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	PortalAccountID int64             `gorm:"not null;index" json:"portal_account_id"`
	Title           string            `gorm:"type:varchar(200);not null" json:"title"`
	Type            AppointmentType   `gorm:"column:appointment_type;type:varchar(20);not null;default:'prenatal'" json:"appointment_type"`
	ScheduledAt     time.Time         `gorm:"not null;index" json:"scheduled_at"`
	Location        string            `gorm:"type:varchar(200);not null" json:"location"`
	Provider        *string           `gorm:"type:varchar(100)" json:"provider,omitempty"`
	ContactPhone    *string           `gorm:"type:varchar(15)" json:"contact_phone,omitempty"`
	Notes           *string           `gorm:"type:text" json:"notes,omitempty"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	ReminderSent    bool              `gorm:"not null;default:false" json:"reminder_sent"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ScheduledAppointment) TableName() string {
	return "scheduled_appointments"
}
