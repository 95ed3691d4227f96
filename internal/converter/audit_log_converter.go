package converter

import (
	"prenatal-care-api/internal/delivery/dto"
	"prenatal-care-api/internal/domain/entity"
)

// AuditLogToResponse maps an audit entry. UserID is nil for entries written
// without an actor, such as those from the create-admin command.
func AuditLogToResponse(entry *entity.AuditLog) *dto.AuditLogResponse {
	if entry == nil {
		return nil
	}

	res := &dto.AuditLogResponse{
		ID:        entry.ID,
		UserID:    entry.UserID,
		Action:    entry.Action,
		Metadata:  entry.Metadata,
		CreatedAt: entry.CreatedAt,
	}
	if entry.User != nil {
		res.User = UserToResponse(entry.User)
	}
	return res
}

func AuditLogsToResponses(entries []entity.AuditLog) []dto.AuditLogResponse {
	out := make([]dto.AuditLogResponse, 0, len(entries))
	for i := range entries {
		out = append(out, *AuditLogToResponse(&entries[i]))
	}
	return out
}
