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

var errInvalidLogCategory = apperror.Validation("category is not a known log category")

type LogEntryUsecase interface {
	ListLogEntries(ctx context.Context, userID uuid.UUID, req *dto.ListLogEntriesRequest) ([]dto.LogEntryResponse, error)
	CreateLogEntry(ctx context.Context, userID uuid.UUID, req *dto.CreateLogEntryRequest) (*dto.LogEntryResponse, error)
	GetLogEntry(ctx context.Context, userID uuid.UUID, id int64) (*dto.LogEntryResponse, error)
	UpdateLogEntry(ctx context.Context, userID uuid.UUID, id int64, req *dto.UpdateLogEntryRequest) (*dto.LogEntryResponse, error)
	DeleteLogEntry(ctx context.Context, userID uuid.UUID, id int64) error
}

type logEntryUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	clock        Clock
	portalRepo   repository.PortalAccountRepository
	logEntryRepo repository.LogEntryRepository
}

func NewLogEntryUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clock Clock,
	portalRepo repository.PortalAccountRepository,
	logEntryRepo repository.LogEntryRepository,
) LogEntryUsecase {
	return &logEntryUsecase{
		db:           db,
		log:          log,
		clock:        clock,
		portalRepo:   portalRepo,
		logEntryRepo: logEntryRepo,
	}
}

func (u *logEntryUsecase) ListLogEntries(ctx context.Context, userID uuid.UUID, req *dto.ListLogEntriesRequest) ([]dto.LogEntryResponse, error) {
	account, err := resolveAccount(ctx, u.db, u.portalRepo, u.log, userID)
	if err != nil {
		return nil, err
	}

	window, err := parseOptionalWindow(req.Start, req.End, u.clock.Location())
	if err != nil {
		return nil, err
	}

	filter := &entity.LogEntryFilter{
		Category: entity.LogCategory(req.Category),
		Window:   window,
	}
	if filter.Category != "" && !filter.Category.IsValid() {
		return nil, errInvalidLogCategory
	}

	entries, err := u.logEntryRepo.FindByAccount(ctx, u.db, account.ID, filter)
	if err != nil {
		u.log.Warnf("Failed to find log entries: %+v", err)
		return nil, err
	}

	return converter.LogEntriesToResponses(entries), nil
}

func (u *logEntryUsecase) CreateLogEntry(ctx context.Context, userID uuid.UUID, req *dto.CreateLogEntryRequest) (*dto.LogEntryResponse, error) {
	category := entity.LogCategory(req.Category)
	if !category.IsValid() {
		return nil, errInvalidLogCategory
	}
	if req.RecordedAt == nil {
		return nil, apperror.Validation("recorded_at is required")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	account, err := resolveAccount(ctx, tx, u.portalRepo, u.log, userID)
	if err != nil {
		return nil, err
	}

	entry := &entity.GestationLogEntry{
		PortalAccountID: account.ID,
		Category:        category,
		Title:           strings.TrimSpace(req.Title),
		Description:     req.Description,
		NumericValue:    toNullDecimal(req.NumericValue),
		Unit:            req.Unit,
		RecordedAt:      *req.RecordedAt,
		Important:       req.Important,
	}

	if err := u.logEntryRepo.Create(ctx, tx, entry); err != nil {
		u.log.Warnf("Failed to create log entry: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.LogEntryToResponse(entry), nil
}

func (u *logEntryUsecase) GetLogEntry(ctx context.Context, userID uuid.UUID, id int64) (*dto.LogEntryResponse, error) {
	account, err := resolveAccount(ctx, u.db, u.portalRepo, u.log, userID)
	if err != nil {
		return nil, err
	}

	entry, err := u.logEntryRepo.FindByID(ctx, u.db, account.ID, id)
	if err != nil {
		u.log.Warnf("Failed to find log entry: %+v", err)
		return nil, err
	}
	if entry == nil {
		return nil, ErrLogEntryNotFound
	}

	return converter.LogEntryToResponse(entry), nil
}

func (u *logEntryUsecase) UpdateLogEntry(ctx context.Context, userID uuid.UUID, id int64, req *dto.UpdateLogEntryRequest) (*dto.LogEntryResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	account, err := resolveAccount(ctx, tx, u.portalRepo, u.log, userID)
	if err != nil {
		return nil, err
	}

	entry, err := u.logEntryRepo.FindByID(ctx, tx, account.ID, id)
	if err != nil {
		u.log.Warnf("Failed to find log entry: %+v", err)
		return nil, err
	}
	if entry == nil {
		return nil, ErrLogEntryNotFound
	}

	if req.Category != nil {
		category := entity.LogCategory(*req.Category)
		if !category.IsValid() {
			return nil, errInvalidLogCategory
		}
		entry.Category = category
	}
	if req.Title != nil {
		entry.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	if req.NumericValue != nil {
		entry.NumericValue = toNullDecimal(req.NumericValue)
	}
	if req.Unit != nil {
		entry.Unit = req.Unit
	}
	if req.RecordedAt != nil {
		entry.RecordedAt = *req.RecordedAt
	}
	if req.Important != nil {
		entry.Important = *req.Important
	}

	if err := u.logEntryRepo.Update(ctx, tx, entry); err != nil {
		u.log.Warnf("Failed to update log entry: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.LogEntryToResponse(entry), nil
}

func (u *logEntryUsecase) DeleteLogEntry(ctx context.Context, userID uuid.UUID, id int64) error {
	account, err := resolveAccount(ctx, u.db, u.portalRepo, u.log, userID)
	if err != nil {
		return err
	}

	rows, err := u.logEntryRepo.Delete(ctx, u.db, account.ID, id)
	if err != nil {
		u.log.Warnf("Failed to delete log entry: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrLogEntryNotFound
	}

	return nil
}
