package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditLog represents a system audit trail entry
type AuditLog struct {
	ID        int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    *uuid.UUID     `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action    string         `gorm:"type:varchar(100);not null;index" json:"action"`
	Metadata  datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"user,omitempty"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Common audit actions
const (
	AuditActionUserRegister  = "user.register"
	AuditActionStaffCreate   = "staff.create"
	AuditActionPatientCreate = "patient.create"
	AuditActionPatientUpdate = "patient.update"
	AuditActionPatientDelete = "patient.delete"
	AuditActionVisitCreate   = "visit.create"
	AuditActionVisitUpdate   = "visit.update"
	AuditActionVisitDelete   = "visit.delete"
	AuditActionExamCreate    = "exam.create"
	AuditActionExamUpdate    = "exam.update"
	AuditActionExamDelete    = "exam.delete"
	AuditActionPortalLink    = "portal.link"
)
