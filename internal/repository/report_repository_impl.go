package repository

import (
	"context"

	"prenatal-care-api/internal/domain/entity"
	domainRepo "prenatal-care-api/internal/domain/repository"

	"gorm.io/gorm"
)

type reportRepository struct{}

func NewReportRepository() domainRepo.ReportRepository {
	return &reportRepository{}
}

func (r *reportRepository) CountPatients(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&entity.Patient{}).Count(&total).Error
	return total, err
}

func (r *reportRepository) CountVisits(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&entity.Visit{}).Count(&total).Error
	return total, err
}

func (r *reportRepository) CountExams(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&entity.Exam{}).Count(&total).Error
	return total, err
}

func (r *reportRepository) CountPatientsWithVisits(ctx context.Context, db *gorm.DB) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&entity.Visit{}).
		Distinct("patient_id").
		Count(&total).Error
	return total, err
}

func (r *reportRepository) CountPatientsRegistered(ctx context.Context, db *gorm.DB, window entity.TimeWindow) (int64, error) {
	var total int64
	query := db.WithContext(ctx).Model(&entity.Patient{})
	err := applyTimeWindow(query, "registered_at", window).Count(&total).Error
	return total, err
}

func (r *reportRepository) CountVisitsIn(ctx context.Context, db *gorm.DB, dr entity.DateRange) (int64, error) {
	var total int64
	query := db.WithContext(ctx).Model(&entity.Visit{})
	err := applyDateRange(query, "date", dr).Count(&total).Error
	return total, err
}

func (r *reportRepository) CountExamsIn(ctx context.Context, db *gorm.DB, dr entity.DateRange) (int64, error) {
	var total int64
	query := db.WithContext(ctx).Model(&entity.Exam{})
	err := applyDateRange(query, "date", dr).Count(&total).Error
	return total, err
}

func (r *reportRepository) CountPatientsDue(ctx context.Context, db *gorm.DB, dr entity.DateRange) (int64, error) {
	var total int64
	query := db.WithContext(ctx).Model(&entity.Patient{}).Where("due_date IS NOT NULL")
	err := applyDateRange(query, "due_date", dr).Count(&total).Error
	return total, err
}

// CountExamsByType groups exams by type, most frequent first. A non-positive limit
// returns every type.
func (r *reportRepository) CountExamsByType(ctx context.Context, db *gorm.DB, dr entity.DateRange, limit int) ([]entity.GroupCount, error) {
	var rows []entity.GroupCount

	query := db.WithContext(ctx).Model(&entity.Exam{}).
		Select("exam_type AS key, COUNT(*) AS total")
	query = applyDateRange(query, "date", dr).
		Group("exam_type").
		Order("total DESC, exam_type ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *reportRepository) FindRecentExamsByType(ctx context.Context, db *gorm.DB, examType string, limit int) ([]entity.Exam, error) {
	var exams []entity.Exam
	err := db.WithContext(ctx).Preload("Patient").
		Where("exam_type = ?", examType).
		Order("date DESC, id DESC").
		Limit(limit).
		Find(&exams).Error
	if err != nil {
		return nil, err
	}
	return exams, nil
}

func (r *reportRepository) FindPatientsRegistered(ctx context.Context, db *gorm.DB, window entity.TimeWindow) ([]entity.Patient, error) {
	var patients []entity.Patient
	query := applyTimeWindow(db.WithContext(ctx), "registered_at", window)
	if err := query.Order("registered_at DESC, id DESC").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *reportRepository) FindVisitsIn(ctx context.Context, db *gorm.DB, dr entity.DateRange) ([]entity.Visit, error) {
	var visits []entity.Visit
	query := applyDateRange(db.WithContext(ctx).Preload("Patient"), "date", dr)
	if err := query.Order("date DESC, id DESC").Find(&visits).Error; err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *reportRepository) FindPatientsDue(ctx context.Context, db *gorm.DB, dr entity.DateRange) ([]entity.Patient, error) {
	var patients []entity.Patient
	query := db.WithContext(ctx).Where("due_date IS NOT NULL")
	if err := applyDateRange(query, "due_date", dr).Order("due_date ASC, id ASC").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}
