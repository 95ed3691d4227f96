package repository

import (
	"context"
	"errors"

	"prenatal-care-api/internal/domain/entity"
	domainRepo "prenatal-care-api/internal/domain/repository"

	"gorm.io/gorm"
)

type logEntryRepository struct{}

func NewLogEntryRepository() domainRepo.LogEntryRepository {
	return &logEntryRepository{}
}

func (r *logEntryRepository) Create(ctx context.Context, db *gorm.DB, entry *entity.GestationLogEntry) error {
	return db.WithContext(ctx).Create(entry).Error
}

func (r *logEntryRepository) FindByID(ctx context.Context, db *gorm.DB, accountID, id int64) (*entity.GestationLogEntry, error) {
	var entry entity.GestationLogEntry
	err := db.WithContext(ctx).
		Where("id = ? AND portal_account_id = ?", id, accountID).
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *logEntryRepository) FindByAccount(ctx context.Context, db *gorm.DB, accountID int64, filter *entity.LogEntryFilter) ([]entity.GestationLogEntry, error) {
	var entries []entity.GestationLogEntry

	query := db.WithContext(ctx).Where("portal_account_id = ?", accountID)
	if filter != nil {
		if filter.Category != "" {
			query = query.Where("category = ?", filter.Category)
		}
		query = applyTimeWindow(query, "recorded_at", filter.Window)
	}

	err := query.Order("recorded_at DESC, id DESC").Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *logEntryRepository) Update(ctx context.Context, db *gorm.DB, entry *entity.GestationLogEntry) error {
	return db.WithContext(ctx).Save(entry).Error
}

func (r *logEntryRepository) Delete(ctx context.Context, db *gorm.DB, accountID, id int64) (int64, error) {
	result := db.WithContext(ctx).
		Where("id = ? AND portal_account_id = ?", id, accountID).
		Delete(&entity.GestationLogEntry{})
	return result.RowsAffected, result.Error
}

func (r *logEntryRepository) Count(ctx context.Context, db *gorm.DB, accountID int64) (int64, error) {
	var total int64
	err := db.WithContext(ctx).Model(&entity.GestationLogEntry{}).
		Where("portal_account_id = ?", accountID).
		Count(&total).Error
	return total, err
}

func (r *logEntryRepository) FindLatestByCategory(ctx context.Context, db *gorm.DB, accountID int64, category entity.LogCategory) (*entity.GestationLogEntry, error) {
	var entry entity.GestationLogEntry
	err := db.WithContext(ctx).
		Where("portal_account_id = ? AND category = ?", accountID, category).
		Order("recorded_at DESC, id DESC").
		First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}
