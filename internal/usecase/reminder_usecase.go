package usecase

import (
	"context"
	"strings"

	"prenatal-care-api/internal/converter"
	"prenatal-care-api/internal/delivery/dto"
	"prenatal-care-api/internal/domain/entity"
	"prenatal-care-api/internal/domain/repository"
	"prenatal-care-api/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var errInvalidReminderType = apperror.Validation("reminder_type is not a known reminder type")

type ReminderUsecase interface {
	ListReminders(ctx context.Context, userID uuid.UUID, req *dto.ListRemindersRequest) ([]dto.ReminderResponse, error)
	CreateReminder(ctx context.Context, userID uuid.UUID, req *dto.CreateReminderRequest) (*dto.ReminderResponse, error)
	GetReminder(ctx context.Context, userID uuid.UUID, id int64) (*dto.ReminderResponse, error)
	UpdateReminder(ctx context.Context, userID uuid.UUID, id int64, req *dto.UpdateReminderRequest) (*dto.ReminderResponse, error)
	DeleteReminder(ctx context.Context, userID uuid.UUID, id int64) error
}

type reminderUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	clock        Clock
	portalRepo   repository.PortalAccountRepository
	reminderRepo repository.ReminderRepository
}

func NewReminderUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clock Clock,
	portalRepo repository.PortalAccountRepository,
	reminderRepo repository.ReminderRepository,
) ReminderUsecase {
	return &reminderUsecase{
		db:           db,
		log:          log,
		clock:        clock,
		portalRepo:   portalRepo,
		reminderRepo: reminderRepo,
	}
}

func (u *reminderUsecase) ListReminders(ctx context.Context, userID uuid.UUID, req *dto.ListRemindersRequest) ([]dto.ReminderResponse, error) {
	account, err := resolveAccount(ctx, u.db, u.portalRepo, u.log, userID)
	if err != nil {
		return nil, err
	}

	window, err := parseOptionalWindow(req.Start, req.End, u.clock.Location())
	if err != nil {
		return nil, err
	}

	filter := &entity.ReminderFilter{
		Active:    req.Active,
		Completed: req.Completed,
		Window:    window,
	}

	reminders, err := u.reminderRepo.FindByAccount(ctx, u.db, account.ID, filter)
	if err != nil {
		u.log.Warnf("Failed to find reminders: %+v", err)
		return nil, err
	}

	return converter.RemindersToResponses(reminders), nil
}

func (u *reminderUsecase) CreateReminder(ctx context.Context, userID uuid.UUID, req *dto.CreateReminderRequest) (*dto.ReminderResponse, error) {
	reminderType := entity.ReminderTypeOther
	if req.ReminderType != "" {
		reminderType = entity.ReminderType(req.ReminderType)
		if !reminderType.IsValid() {
			return nil, errInvalidReminderType
		}
	}
	if req.RemindAt == nil {
		return nil, apperror.Validation("remind_at is required")
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	account, err := resolveAccount(ctx, tx, u.portalRepo, u.log, userID)
	if err != nil {
		return nil, err
	}

	reminder := &entity.Reminder{
		PortalAccountID:     account.ID,
		Title:               strings.TrimSpace(req.Title),
		Description:         req.Description,
		Type:                reminderType,
		RemindAt:            *req.RemindAt,
		Repeat:              req.Repeat,
		RepeatIntervalHours: req.RepeatIntervalHours,
		Active:              active,
		Completed:           req.Completed,
	}

	if err := u.reminderRepo.Create(ctx, tx, reminder); err != nil {
		u.log.Warnf("Failed to create reminder: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ReminderToResponse(reminder), nil
}

func (u *reminderUsecase) GetReminder(ctx context.Context, userID uuid.UUID, id int64) (*dto.ReminderResponse, error) {
	account, err := resolveAccount(ctx, u.db, u.portalRepo, u.log, userID)
	if err != nil {
		return nil, err
	}

	reminder, err := u.reminderRepo.FindByID(ctx, u.db, account.ID, id)
	if err != nil {
		u.log.Warnf("Failed to find reminder: %+v", err)
		return nil, err
	}
	if reminder == nil {
		return nil, ErrReminderNotFound
	}

	return converter.ReminderToResponse(reminder), nil
}

func (u *reminderUsecase) UpdateReminder(ctx context.Context, userID uuid.UUID, id int64, req *dto.UpdateReminderRequest) (*dto.ReminderResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	account, err := resolveAccount(ctx, tx, u.portalRepo, u.log, userID)
	if err != nil {
		return nil, err
	}

	reminder, err := u.reminderRepo.FindByID(ctx, tx, account.ID, id)
	if err != nil {
		u.log.Warnf("Failed to find reminder: %+v", err)
		return nil, err
	}
	if reminder == nil {
		return nil, ErrReminderNotFound
	}

	if req.Title != nil {
		reminder.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		reminder.Description = req.Description
	}
	if req.ReminderType != nil {
		t := entity.ReminderType(*req.ReminderType)
		if !t.IsValid() {
			return nil, errInvalidReminderType
		}
		reminder.Type = t
	}
	if req.RemindAt != nil {
		reminder.RemindAt = *req.RemindAt
	}
	if req.Repeat != nil {
		reminder.Repeat = *req.Repeat
	}
	if req.RepeatIntervalHours != nil {
		reminder.RepeatIntervalHours = req.RepeatIntervalHours
	}
	if req.Active != nil {
		reminder.Active = *req.Active
	}
	if req.Completed != nil {
		reminder.Completed = *req.Completed
	}

	if err := u.reminderRepo.Update(ctx, tx, reminder); err != nil {
		u.log.Warnf("Failed to update reminder: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ReminderToResponse(reminder), nil
}

func (u *reminderUsecase) DeleteReminder(ctx context.Context, userID uuid.UUID, id int64) error {
	account, err := resolveAccount(ctx, u.db, u.portalRepo, u.log, userID)
	if err != nil {
		return err
	}

	rows, err := u.reminderRepo.Delete(ctx, u.db, account.ID, id)
	if err != nil {
		u.log.Warnf("Failed to delete reminder: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrReminderNotFound
	}

	return nil
}
