package entity

import "time"

// ReminderType classifies a personal reminder.
type ReminderType string

const (
	ReminderTypeMedication  ReminderType = "medication"
	ReminderTypeAppointment ReminderType = "appointment"
	ReminderTypeExam        ReminderType = "exam"
	ReminderTypeExercise    ReminderType = "exercise"
	ReminderTypeDiet        ReminderType = "diet"
	ReminderTypeVitamin     ReminderType = "vitamin"
	ReminderTypeOther       ReminderType = "other"
)

var reminderTypeLabels = map[ReminderType]string{
	ReminderTypeMedication:  "Medication",
	ReminderTypeAppointment: "Appointment",
	ReminderTypeExam:        "Exam",
	ReminderTypeExercise:    "Exercise",
	ReminderTypeDiet:        "Diet",
	ReminderTypeVitamin:     "Vitamin / supplement",
	ReminderTypeOther:       "Other",
}

func (t ReminderType) IsValid() bool {
	_, ok := reminderTypeLabels[t]
	return ok
}

func (t ReminderType) Label() string {
	return reminderTypeLabels[t]
}

// Reminder is a personal reminder set by the patient.
type Reminder struct {
	ID                  int64        `gorm:"primaryKey;autoIncrement" json:"id"`
	PortalAccountID     int64        `gorm:"not null;index" json:"portal_account_id"`
	Title               string       `gorm:"type:varchar(200);not null" json:"title"`
	Description         *string      `gorm:"type:text" json:"description,omitempty"`
	Type                ReminderType `gorm:"column:reminder_type;type:varchar(20);not null;default:'other'" json:"reminder_type"`
	RemindAt            time.Time    `gorm:"not null;index" json:"remind_at"`
	Repeat              bool         `gorm:"not null;default:false" json:"repeat"`
	RepeatIntervalHours *int         `json:"repeat_interval_hours,omitempty"`
	Active              bool         `gorm:"not null" json:"active"`
	Completed           bool         `gorm:"not null;default:false" json:"completed"`
	CreatedAt           time.Time    `gorm:"autoCreateTime" json:"created_at"`
}

func (Reminder) TableName() string {
	return "reminders"
}
