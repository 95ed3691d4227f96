package repository

import (
	"context"
	"errors"

	"prenatal-care-api/internal/domain/entity"
	domainRepo "prenatal-care-api/internal/domain/repository"

	"gorm.io/gorm"
)

type visitRepository struct{}

func NewVisitRepository() domainRepo.VisitRepository {
	return &visitRepository{}
}

func (r *visitRepository) Create(ctx context.Context, db *gorm.DB, visit *entity.Visit) error {
	return db.WithContext(ctx).Omit("Patient").Create(visit).Error
}

func (r *visitRepository) FindByID(ctx context.Context, db *gorm.DB, patientID, id int64) (*entity.Visit, error) {
	var visit entity.Visit
	err := db.WithContext(ctx).Where("id = ? AND patient_id = ?", id, patientID).First(&visit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &visit, nil
}

func (r *visitRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID int64) ([]entity.Visit, error) {
	var visits []entity.Visit
	err := db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("date DESC, id DESC").
		Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *visitRepository) Update(ctx context.Context, db *gorm.DB, visit *entity.Visit) error {
	return db.WithContext(ctx).Omit("Patient").Save(visit).Error
}

func (r *visitRepository) Delete(ctx context.Context, db *gorm.DB, patientID, id int64) (int64, error) {
	result := db.WithContext(ctx).Where("id = ? AND patient_id = ?", id, patientID).Delete(&entity.Visit{})
	return result.RowsAffected, result.Error
}

func (r *visitRepository) DeleteByPatientID(ctx context.Context, db *gorm.DB, patientID int64) error {
	return db.WithContext(ctx).Where("patient_id = ?", patientID).Delete(&entity.Visit{}).Error
}
