package repository

import (
	"context"

	"prenatal-care-api/internal/domain/entity"

	"gorm.io/gorm"
)

// ReportRepository runs the read-only queries behind the staff reports. Date
// ranges apply to date columns, time windows to timestamp columns.
type ReportRepository interface {
	CountPatients(ctx context.Context, db *gorm.DB) (int64, error)
	CountVisits(ctx context.Context, db *gorm.DB) (int64, error)
	CountExams(ctx context.Context, db *gorm.DB) (int64, error)
	CountPatientsWithVisits(ctx context.Context, db *gorm.DB) (int64, error)

	CountPatientsRegistered(ctx context.Context, db *gorm.DB, window entity.TimeWindow) (int64, error)
	CountVisitsIn(ctx context.Context, db *gorm.DB, r entity.DateRange) (int64, error)
	CountExamsIn(ctx context.Context, db *gorm.DB, r entity.DateRange) (int64, error)
	CountPatientsDue(ctx context.Context, db *gorm.DB, r entity.DateRange) (int64, error)

	CountExamsByType(ctx context.Context, db *gorm.DB, r entity.DateRange, limit int) ([]entity.GroupCount, error)
	FindRecentExamsByType(ctx context.Context, db *gorm.DB, examType string, limit int) ([]entity.Exam, error)

	FindPatientsRegistered(ctx context.Context, db *gorm.DB, window entity.TimeWindow) ([]entity.Patient, error)
	FindVisitsIn(ctx context.Context, db *gorm.DB, r entity.DateRange) ([]entity.Visit, error)
	FindPatientsDue(ctx context.Context, db *gorm.DB, r entity.DateRange) ([]entity.Patient, error)
}
