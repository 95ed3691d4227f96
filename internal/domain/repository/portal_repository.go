package repository

import (
	"context"
	"time"

	"prenatal-care-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PortalAccountRepository interface {
	Create(ctx context.Context, db *gorm.DB, account *entity.PortalAccount) error
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.PortalAccount, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID int64) (*entity.PortalAccount, error)
	DeleteByPatientID(ctx context.Context, db *gorm.DB, patientID int64) error
}

// Every lookup below is scoped by portal account: a record owned by another
// account is reported exactly like a missing one (nil, nil).

type AppointmentRepository interface {
	Create(ctx context.Context, db *gorm.DB, appointment *entity.ScheduledAppointment) error
	FindByID(ctx context.Context, db *gorm.DB, accountID, id int64) (*entity.ScheduledAppointment, error)
	FindByAccount(ctx context.Context, db *gorm.DB, accountID int64, filter *entity.AppointmentFilter) ([]entity.ScheduledAppointment, error)
	Update(ctx context.Context, db *gorm.DB, appointment *entity.ScheduledAppointment) error
	Delete(ctx context.Context, db *gorm.DB, accountID, id int64) (int64, error)
	CountByStatus(ctx context.Context, db *gorm.DB, accountID int64, statuses []entity.AppointmentStatus, window entity.TimeWindow) (int64, error)
	FindNext(ctx context.Context, db *gorm.DB, accountID int64, statuses []entity.AppointmentStatus, from time.Time) (*entity.ScheduledAppointment, error)
}

type LogEntryRepository interface {
	Create(ctx context.Context, db *gorm.DB, entry *entity.GestationLogEntry) error
	FindByID(ctx context.Context, db *gorm.DB, accountID, id int64) (*entity.GestationLogEntry, error)
	FindByAccount(ctx context.Context, db *gorm.DB, accountID int64, filter *entity.LogEntryFilter) ([]entity.GestationLogEntry, error)
	Update(ctx context.Context, db *gorm.DB, entry *entity.GestationLogEntry) error
	Delete(ctx context.Context, db *gorm.DB, accountID, id int64) (int64, error)
	Count(ctx context.Context, db *gorm.DB, accountID int64) (int64, error)
	FindLatestByCategory(ctx context.Context, db *gorm.DB, accountID int64, category entity.LogCategory) (*entity.GestationLogEntry, error)
}

type ReminderRepository interface {
	Create(ctx context.Context, db *gorm.DB, reminder *entity.Reminder) error
	FindByID(ctx context.Context, db *gorm.DB, accountID, id int64) (*entity.Reminder, error)
	FindByAccount(ctx context.Context, db *gorm.DB, accountID int64, filter *entity.ReminderFilter) ([]entity.Reminder, error)
	Update(ctx context.Context, db *gorm.DB, reminder *entity.Reminder) error
	Delete(ctx context.Context, db *gorm.DB, accountID, id int64) (int64, error)
	CountPending(ctx context.Context, db *gorm.DB, accountID int64, window entity.TimeWindow) (int64, error)
}
