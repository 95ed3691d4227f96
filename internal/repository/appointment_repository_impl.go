package repository

import (
	"context"
	"errors"
	"time"

	"prenatal-care-api/internal/domain/entity"
	domainRepo "prenatal-care-api/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(ctx context.Context, db *gorm.DB, appointment *entity.ScheduledAppointment) error {
	return db.WithContext(ctx).Create(appointment).Error
}

func (r *appointmentRepository) FindByID(ctx context.Context, db *gorm.DB, accountID, id int64) (*entity.ScheduledAppointment, error) {
	var appointment entity.ScheduledAppointment
	err := db.WithContext(ctx).
		Where("id = ? AND portal_account_id = ?", id, accountID).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByAccount(ctx context.Context, db *gorm.DB, accountID int64, filter *entity.AppointmentFilter) ([]entity.ScheduledAppointment, error) {
	var appointments []entity.ScheduledAppointment

	query := db.WithContext(ctx).Where("portal_account_id = ?", accountID)
	if filter != nil {
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
		query = applyTimeWindow(query, "scheduled_at", filter.Window)
	}

	err := query.Order("scheduled_at ASC, id ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(ctx context.Context, db *gorm.DB, appointment *entity.ScheduledAppointment) error {
	return db.WithContext(ctx).Save(appointment).Error
}

func (r *appointmentRepository) Delete(ctx context.Context, db *gorm.DB, accountID, id int64) (int64, error) {
	result := db.WithContext(ctx).
		Where("id = ? AND portal_account_id = ?", id, accountID).
		Delete(&entity.ScheduledAppointment{})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) CountByStatus(ctx context.Context, db *gorm.DB, accountID int64, statuses []entity.AppointmentStatus, window entity.TimeWindow) (int64, error) {
	var total int64
	query := db.WithContext(ctx).Model(&entity.ScheduledAppointment{}).
		Where("portal_account_id = ?", accountID)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}
	err := applyTimeWindow(query, "scheduled_at", window).Count(&total).Error
	return total, err
}

// FindNext returns the earliest appointment at or after from whose status is one of statuses.
func (r *appointmentRepository) FindNext(ctx context.Context, db *gorm.DB, accountID int64, statuses []entity.AppointmentStatus, from time.Time) (*entity.ScheduledAppointment, error) {
	var appointment entity.ScheduledAppointment
	query := db.WithContext(ctx).
		Where("portal_account_id = ? AND scheduled_at >= ?", accountID, from)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}
	err := query.Order("scheduled_at ASC, id ASC").First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// applyTimeWindow restricts column to [w.From, w.Until); zero bounds are skipped.
func applyTimeWindow(query *gorm.DB, column string, w entity.TimeWindow) *gorm.DB {
	if !w.From.IsZero() {
		query = query.Where(column+" >= ?", w.From)
	}
	if !w.Until.IsZero() {
		query = query.Where(column+" < ?", w.Until)
	}
	return query
}

// applyDateRange restricts a date column to the inclusive range r.
func applyDateRange(query *gorm.DB, column string, r entity.DateRange) *gorm.DB {
	if !r.Start.IsZero() {
		query = query.Where(column+" >= ?", r.Start)
	}
	if !r.End.IsZero() {
		query = query.Where(column+" <= ?", r.End)
	}
	return query
}
