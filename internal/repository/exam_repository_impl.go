package repository

import (
	"context"
	"errors"

	"prenatal-care-api/internal/domain/entity"
	domainRepo "prenatal-care-api/internal/domain/repository"

	"gorm.io/gorm"
)

type examRepository struct{}

func NewExamRepository() domainRepo.ExamRepository {
	return &examRepository{}
}

func (r *examRepository) Create(ctx context.Context, db *gorm.DB, exam *entity.Exam) error {
	return db.WithContext(ctx).Omit("Patient").Create(exam).Error
}

func (r *examRepository) FindByID(ctx context.Context, db *gorm.DB, patientID, id int64) (*entity.Exam, error) {
	var exam entity.Exam
	err := db.WithContext(ctx).Where("id = ? AND patient_id = ?", id, patientID).First(&exam).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID int64) ([]entity.Exam, error) {
	var exams []entity.Exam
	err := db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("date DESC, id DESC").
		Find(&exams).Error
	if err != nil {
		return nil, err
	}
	return exams, nil
}

func (r *examRepository) Update(ctx context.Context, db *gorm.DB, exam *entity.Exam) error {
	return db.WithContext(ctx).Omit("Patient").Save(exam).Error
}

func (r *examRepository) Delete(ctx context.Context, db *gorm.DB, patientID, id int64) (int64, error) {
	result := db.WithContext(ctx).Where("id = ? AND patient_id = ?", id, patientID).Delete(&entity.Exam{})
	return result.RowsAffected, result.Error
}

func (r *examRepository) DeleteByPatientID(ctx context.Context, db *gorm.DB, patientID int64) error {
	return db.WithContext(ctx).Where("patient_id = ?", patientID).Delete(&entity.Exam{}).Error
}
