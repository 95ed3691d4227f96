package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ListAuditLogsRequest struct {
	Action string `validate:"omitempty,max=100"`
	UserID string `validate:"omitempty,uuid"`
	Page   int
	Limit  int
}

// Response DTOs

type AuditLogResponse struct {
	ID        int64          `json:"id"`
	UserID    *uuid.UUID     `json:"user_id"`
	User      *UserResponse  `json:"user,omitempty"`
	Action    string         `json:"action"`
	Metadata  datatypes.JSON `json:"metadata"`
	CreatedAt time.Time      `json:"created_at"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int64              `json:"total"`
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
}
