package entity

import (
	"time"

	"github.com/google/uuid"
)

// DateRange is an inclusive range of calendar dates. Both bounds are dates at
// midnight UTC; a zero bound means the range is open on that side.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// PatientFilter is a domain-level filter for listing patients.
// Used by repository layer to avoid coupling with delivery DTOs.
type PatientFilter struct {
	Search string // Filter by name (case-insensitive substring)
	Limit  int
	Offset int
}

// AuditLogFilter narrows the audit trail. Action is either a full action such as
// "patient.update" or an entity prefix such as "patient".
type AuditLogFilter struct {
	Action string
	UserID *uuid.UUID
	Limit  int
	Offset int
}

// AppointmentFilter narrows a portal account's appointments.
type AppointmentFilter struct {
	Status AppointmentStatus
	Window TimeWindow // already widened to whole days by the caller
}

// LogEntryFilter narrows a portal account's gestation log.
type LogEntryFilter struct {
	Category LogCategory
	Window   TimeWindow
}

// ReminderFilter narrows a portal account's reminders. Nil means "any".
type ReminderFilter struct {
	Active    *bool
	Completed *bool
	Window    TimeWindow
}

// TimeWindow is a half-open interval [From, Until) of instants, used for
// timestamp columns. A zero bound leaves that side open.
type TimeWindow struct {
	From  time.Time
	Until time.Time
}
