package repository

import (
	"context"
	"errors"

	"prenatal-care-api/internal/domain/entity"
	domainRepo "prenatal-care-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type portalAccountRepository struct{}

func NewPortalAccountRepository() domainRepo.PortalAccountRepository {
	return &portalAccountRepository{}
}

func (r *portalAccountRepository) Create(ctx context.Context, db *gorm.DB, account *entity.PortalAccount) error {
	return db.WithContext(ctx).Omit("Patient", "User").Create(account).Error
}

func (r *portalAccountRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) (*entity.PortalAccount, error) {
	var account entity.PortalAccount
	err := db.WithContext(ctx).Preload("Patient").Where("user_id = ?", userID).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *portalAccountRepository) FindByPatientID(ctx context.Context, db *gorm.DB, patientID int64) (*entity.PortalAccount, error) {
	var account entity.PortalAccount
	err := db.WithContext(ctx).Where("patient_id = ?", patientID).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// DeleteByPatientID removes the account and everything recorded through it.
func (r *portalAccountRepository) DeleteByPatientID(ctx context.Context, db *gorm.DB, patientID int64) error {
	accountIDs := db.Model(&entity.PortalAccount{}).Select("id").Where("patient_id = ?", patientID)

	for _, model := range []interface{}{
		&entity.ScheduledAppointment{},
		&entity.GestationLogEntry{},
		&entity.Reminder{},
	} {
		if err := db.WithContext(ctx).Where("portal_account_id IN (?)", accountIDs).Delete(model).Error; err != nil {
			return err
		}
	}

	return db.WithContext(ctx).Where("patient_id = ?", patientID).Delete(&entity.PortalAccount{}).Error
}
