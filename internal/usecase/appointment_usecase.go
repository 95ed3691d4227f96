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

var (
	errInvalidAppointmentType   = apperror.Validation("appointment_type is not a known appointment type")
	errInvalidAppointmentStatus = apperror.Validation("status is not a known appointment status")
)

type AppointmentUsecase interface {
	ListAppointments(ctx context.Context, userID uuid.UUID, req *dto.ListAppointmentsRequest) ([]dto.AppointmentResponse, error)
	CreateAppointment(ctx context.Context, userID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, userID uuid.UUID, id int64) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, userID uuid.UUID, id int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, userID uuid.UUID, id int64) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	clock           Clock
	portalRepo      repository.PortalAccountRepository
	appointmentRepo repository.AppointmentRepository
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clock Clock,
	portalRepo repository.PortalAccountRepository,
	appointmentRepo repository.AppointmentRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		clock:           clock,
		portalRepo:      portalRepo,
		appointmentRepo: appointmentRepo,
	}
}

func (u *appointmentUsecase) ListAppointments(ctx context.Context, userID uuid.UUID, req *dto.ListAppointmentsRequest) ([]dto.AppointmentResponse, error) {
	account, err := resolveAccount(ctx, u.db, u.portalRepo, u.log, userID)
	if err != nil {
		return nil, err
	}

	window, err := parseOptionalWindow(req.Start, req.End, u.clock.Location())
	if err != nil {
		return nil, err
	}

	filter := &entity.AppointmentFilter{
		Status: entity.AppointmentStatus(req.Status),
		Window: window,
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, errInvalidAppointmentStatus
	}

	appointments, err := u.appointmentRepo.FindByAccount(ctx, u.db, account.ID, filter)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, userID uuid.UUID, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointmentType := entity.AppointmentTypePrenatal
	if req.AppointmentType != "" {
		appointmentType = entity.AppointmentType(req.AppointmentType)
		if !appointmentType.IsValid() {
			return nil, errInvalidAppointmentType
		}
	}
	status := entity.AppointmentStatusScheduled
	if req.Status != "" {
		status = entity.AppointmentStatus(req.Status)
		if !status.IsValid() {
			return nil, errInvalidAppointmentStatus
		}
	}
	if req.ScheduledAt == nil {
		return nil, apperror.Validation("scheduled_at is required")
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	account, err := resolveAccount(ctx, tx, u.portalRepo, u.log, userID)
	if err != nil {
		return nil, err
	}

	appointment := &entity.ScheduledAppointment{
		PortalAccountID: account.ID,
		Title:           strings.TrimSpace(req.Title),
		Type:            appointmentType,
		ScheduledAt:     *req.ScheduledAt,
		Location:        strings.TrimSpace(req.Location),
		Provider:        req.Provider,
		ContactPhone:    req.ContactPhone,
		Notes:           req.Notes,
		Status:          status,
		ReminderSent:    req.ReminderSent,
	}

	if err := u.appointmentRepo.Create(ctx, tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, userID uuid.UUID, id int64) (*dto.AppointmentResponse, error) {
	account, err := resolveAccount(ctx, u.db, u.portalRepo, u.log, userID)
	if err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, u.db, account.ID, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, userID uuid.UUID, id int64, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	account, err := resolveAccount(ctx, tx, u.portalRepo, u.log, userID)
	if err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(ctx, tx, account.ID, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if req.Title != nil {
		appointment.Title = strings.TrimSpace(*req.Title)
	}
	if req.AppointmentType != nil {
		t := entity.AppointmentType(*req.AppointmentType)
		if !t.IsValid() {
			return nil, errInvalidAppointmentType
		}
		appointment.Type = t
	}
	if req.ScheduledAt != nil {
		appointment.ScheduledAt = *req.ScheduledAt
	}
	if req.Location != nil {
		appointment.Location = strings.TrimSpace(*req.Location)
	}
	if req.Provider != nil {
		appointment.Provider = req.Provider
	}
	if req.ContactPhone != nil {
		appointment.ContactPhone = req.ContactPhone
	}
	if req.Notes != nil {
		appointment.Notes = req.Notes
	}
	if req.Status != nil {
		s := entity.AppointmentStatus(*req.Status)
		if !s.IsValid() {
			return nil, errInvalidAppointmentStatus
		}
		appointment.Status = s
	}
	if req.ReminderSent != nil {
		appointment.ReminderSent = *req.ReminderSent
	}

	if err := u.appointmentRepo.Update(ctx, tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, userID uuid.UUID, id int64) error {
	account, err := resolveAccount(ctx, u.db, u.portalRepo, u.log, userID)
	if err != nil {
		return err
	}

	rows, err := u.appointmentRepo.Delete(ctx, u.db, account.ID, id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}
