package repository

import (
	"context"
	"errors"

	"prenatal-care-api/internal/domain/entity"
	domainRepo "prenatal-care-api/internal/domain/repository"

	"gorm.io/gorm"
)

type reminderRepository struct{}

func NewReminderRepository() domainRepo.ReminderRepository {
	return &reminderRepository{}
}

func (r *reminderRepository) Create(ctx context.Context, db *gorm.DB, reminder *entity.Reminder) error {
	return db.WithContext(ctx).Create(reminder).Error
}

func (r *reminderRepository) FindByID(ctx context.Context, db *gorm.DB, accountID, id int64) (*entity.Reminder, error) {
	var reminder entity.Reminder
	err := db.WithContext(ctx).
		Where("id = ? AND portal_account_id = ?", id, accountID).
		First(&reminder).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &reminder, nil
}

func (r *reminderRepository) FindByAccount(ctx context.Context, db *gorm.DB, accountID int64, filter *entity.ReminderFilter) ([]entity.Reminder, error) {
	var reminders []entity.Reminder

	query := db.WithContext(ctx).Where("portal_account_id = ?", accountID)
	if filter != nil {
		if filter.Active != nil {
			query = query.Where("active = ?", *filter.Active)
		}
		if filter.Completed != nil {
			query = query.Where("completed = ?", *filter.Completed)
		}
		query = applyTimeWindow(query, "remind_at", filter.Window)
	}

	err := query.Order("remind_at ASC, id ASC").Find(&reminders).Error
	if err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *reminderRepository) Update(ctx context.Context, db *gorm.DB, reminder *entity.Reminder) error {
	return db.WithContext(ctx).Save(reminder).Error
}

func (r *reminderRepository) Delete(ctx context.Context, db *gorm.DB, accountID, id int64) (int64, error) {
	result := db.WithContext(ctx).
		Where("id = ? AND portal_account_id = ?", id, accountID).
		Delete(&entity.Reminder{})
	return result.RowsAffected, result.Error
}

// CountPending counts active, not yet completed reminders due inside window.
func (r *reminderRepository) CountPending(ctx context.Context, db *gorm.DB, accountID int64, window entity.TimeWindow) (int64, error) {
	var total int64
	query := db.WithContext(ctx).Model(&entity.Reminder{}).
		Where("portal_account_id = ? AND active = ? AND completed = ?", accountID, true, false)
	err := applyTimeWindow(query, "remind_at", window).Count(&total).Error
	return total, err
}
