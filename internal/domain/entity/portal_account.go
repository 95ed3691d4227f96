package entity

import (
	"time"

	"github.com/google/uuid"
)

// PortalAccount links one authenticated user to the patient whose self-service data
// they manage. Both links are unique.
type PortalAccount struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID int64     `gorm:"not null;uniqueIndex" json:"patient_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient      Patient                `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	User         User                   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Appointments []ScheduledAppointment `gorm:"foreignKey:PortalAccountID;constraint:OnDelete:CASCADE" json:"appointments,omitempty"`
	LogEntries   []GestationLogEntry    `gorm:"foreignKey:PortalAccountID;constraint:OnDelete:CASCADE" json:"log_entries,omitempty"`
	Reminders    []Reminder             `gorm:"foreignKey:PortalAccountID;constraint:OnDelete:CASCADE" json:"reminders,omitempty"`
}

func (PortalAccount) TableName() string {
	return "portal_accounts"
}
