package usecase

import (
	"context"
	"strconv"

	"prenatal-care-api/internal/converter"
	"prenatal-care-api/internal/delivery/dto"
	"prenatal-care-api/internal/domain/entity"
	"prenatal-care-api/internal/domain/repository"
	"prenatal-care-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const dashboardLookaheadDays = 7

type PortalUsecase interface {
	GetPage(ctx context.Context, userID uuid.UUID) (*dto.PortalPageResponse, error)
	// Link binds the caller to a patient. created is false when the caller was
	// already linked to that same patient.
	Link(ctx context.Context, userID uuid.UUID, req *dto.LinkPortalRequest) (page *dto.PortalPageResponse, created bool, err error)
	GetDashboard(ctx context.Context, userID uuid.UUID) (*dto.DashboardResponse, error)
}

type portalUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	clock           Clock
	patientRepo     repository.PatientRepository
	portalRepo      repository.PortalAccountRepository
	appointmentRepo repository.AppointmentRepository
	logEntryRepo    repository.LogEntryRepository
	reminderRepo    repository.ReminderRepository
	auditService    service.AuditService
}

func NewPortalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clock Clock,
	patientRepo repository.PatientRepository,
	portalRepo repository.PortalAccountRepository,
	appointmentRepo repository.AppointmentRepository,
	logEntryRepo repository.LogEntryRepository,
	reminderRepo repository.ReminderRepository,
	auditService service.AuditService,
) PortalUsecase {
	return &portalUsecase{
		db:              db,
		log:             log,
		clock:           clock,
		patientRepo:     patientRepo,
		portalRepo:      portalRepo,
		appointmentRepo: appointmentRepo,
		logEntryRepo:    logEntryRepo,
		reminderRepo:    reminderRepo,
		auditService:    auditService,
	}
}

// resolveAccount returns the caller's portal account or ErrNoPortalAccount.
func resolveAccount(ctx context.Context, db *gorm.DB, repo repository.PortalAccountRepository, log *logrus.Logger, userID uuid.UUID) (*entity.PortalAccount, error) {
	account, err := repo.FindByUserID(ctx, db, userID)
	if err != nil {
		log.Warnf("Failed to find portal account: %+v", err)
		return nil, err
	}
	if account == nil {
		return nil, ErrNoPortalAccount
	}
	return account, nil
}

func (u *portalUsecase) GetPage(ctx context.Context, userID uuid.UUID) (*dto.PortalPageResponse, error) {
	account, err := resolveAccount(ctx, u.db, u.portalRepo, u.log, userID)
	if err != nil {
		return nil, err
	}
	return u.buildPage(ctx, account)
}

func (u *portalUsecase) buildPage(ctx context.Context, account *entity.PortalAccount) (*dto.PortalPageResponse, error) {
	appointments, err := u.appointmentRepo.FindByAccount(ctx, u.db, account.ID, &entity.AppointmentFilter{})
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	entries, err := u.logEntryRepo.FindByAccount(ctx, u.db, account.ID, &entity.LogEntryFilter{})
	if err != nil {
		u.log.Warnf("Failed to find log entries: %+v", err)
		return nil, err
	}

	reminders, err := u.reminderRepo.FindByAccount(ctx, u.db, account.ID, &entity.ReminderFilter{})
	if err != nil {
		u.log.Warnf("Failed to find reminders: %+v", err)
		return nil, err
	}

	pending, err := u.appointmentRepo.CountByStatus(ctx, u.db, account.ID, entity.PendingAppointmentStatuses, entity.TimeWindow{})
	if err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}

	next, err := u.appointmentRepo.FindNext(ctx, u.db, account.ID, entity.PendingAppointmentStatuses, u.clock.Now())
	if err != nil {
		u.log.Warnf("Failed to find next appointment: %+v", err)
		return nil, err
	}

	pendingReminders, err := u.reminderRepo.CountPending(ctx, u.db, account.ID, entity.TimeWindow{})
	if err != nil {
		u.log.Warnf("Failed to count reminders: %+v", err)
		return nil, err
	}

	return &dto.PortalPageResponse{
		Account:             *converter.PortalAccountToResponse(account),
		Patient:             *converter.PatientToResponse(&account.Patient, today(u.clock)),
		Appointments:        converter.AppointmentsToResponses(appointments),
		LogEntries:          converter.LogEntriesToResponses(entries),
		Reminders:           converter.RemindersToResponses(reminders),
		PendingAppointments: pending,
		NextAppointment:     converter.AppointmentToResponse(next),
		PendingReminders:    pendingReminders,
	}, nil
}

func (u *portalUsecase) Link(ctx context.Context, userID uuid.UUID, req *dto.LinkPortalRequest) (*dto.PortalPageResponse, bool, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.portalRepo.FindByUserID(ctx, tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find portal account: %+v", err)
		return nil, false, err
	}
	if existing != nil {
		if existing.PatientID != req.PatientID {
			return nil, false, ErrPortalAccountExists
		}
		tx.Rollback()
		page, err := u.buildPage(ctx, existing)
		return page, false, err
	}

	patient, err := u.patientRepo.FindByID(ctx, tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, false, err
	}
	if patient == nil {
		return nil, false, ErrPatientNotFound
	}

	linked, err := u.portalRepo.FindByPatientID(ctx, tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find portal account: %+v", err)
		return nil, false, err
	}
	if linked != nil {
		return nil, false, ErrPatientAlreadyLinked
	}

	account := &entity.PortalAccount{
		PatientID: req.PatientID,
		UserID:    userID,
	}
	if err := u.portalRepo.Create(ctx, tx, account); err != nil {
		if isDuplicateKeyError(err, "") {
			return nil, false, ErrPatientAlreadyLinked
		}
		u.log.Warnf("Failed to create portal account: %+v", err)
		return nil, false, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &userID, entity.AuditActionPortalLink, "portal_account", strconv.FormatInt(account.ID, 10), converter.PortalAccountToResponse(account)); err != nil {
		return nil, false, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, false, err
	}

	account.Patient = *patient
	page, err := u.buildPage(ctx, account)
	return page, true, err
}

func (u *portalUsecase) GetDashboard(ctx context.Context, userID uuid.UUID) (*dto.DashboardResponse, error) {
	account, err := resolveAccount(ctx, u.db, u.portalRepo, u.log, userID)
	if err != nil {
		return nil, err
	}

	now := u.clock.Now()
	day := today(u.clock)
	loc := u.clock.Location()

	response := &dto.DashboardResponse{
		Patient: dto.DashboardPatient{
			Name:    account.Patient.Name,
			DueDate: converter.PatientToResponse(&account.Patient, day).DueDate,
		},
	}
	if weeks, ok := account.Patient.GestationalWeeks(day); ok {
		response.Patient.GestationalWeeks = &weeks
	}

	if response.Appointments.TotalPending, err = u.appointmentRepo.CountByStatus(ctx, u.db, account.ID, entity.PendingAppointmentStatuses, entity.TimeWindow{}); err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}

	next, err := u.appointmentRepo.FindNext(ctx, u.db, account.ID, entity.PendingAppointmentStatuses, now)
	if err != nil {
		u.log.Warnf("Failed to find next appointment: %+v", err)
		return nil, err
	}
	response.Appointments.Next = converter.AppointmentToResponse(next)

	week := dayWindow(day, day.AddDate(0, 0, dashboardLookaheadDays), loc)
	if response.Appointments.WithinNext7Days, err = u.appointmentRepo.CountByStatus(ctx, u.db, account.ID, entity.PendingAppointmentStatuses, week); err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}

	if response.Reminders.TotalPending, err = u.reminderRepo.CountPending(ctx, u.db, account.ID, entity.TimeWindow{}); err != nil {
		u.log.Warnf("Failed to count reminders: %+v", err)
		return nil, err
	}
	if response.Reminders.DueToday, err = u.reminderRepo.CountPending(ctx, u.db, account.ID, dayWindow(day, day, loc)); err != nil {
		u.log.Warnf("Failed to count reminders: %+v", err)
		return nil, err
	}

	if response.Log.TotalEntries, err = u.logEntryRepo.Count(ctx, u.db, account.ID); err != nil {
		u.log.Warnf("Failed to count log entries: %+v", err)
		return nil, err
	}

	weight, err := u.logEntryRepo.FindLatestByCategory(ctx, u.db, account.ID, entity.LogCategoryWeight)
	if err != nil {
		u.log.Warnf("Failed to find latest weight: %+v", err)
		return nil, err
	}
	if weight != nil {
		entry := converter.LogEntryToResponse(weight)
		response.Log.LatestWeight = &dto.LatestWeight{
			Value:      entry.NumericValue,
			Unit:       entry.Unit,
			RecordedAt: entry.RecordedAt,
		}
	}

	pressure, err := u.logEntryRepo.FindLatestByCategory(ctx, u.db, account.ID, entity.LogCategoryBloodPressure)
	if err != nil {
		u.log.Warnf("Failed to find latest blood pressure: %+v", err)
		return nil, err
	}
	if pressure != nil {
		response.Log.LatestBloodPressure = &dto.LatestBloodPressure{
			Value:      pressure.Description,
			RecordedAt: pressure.RecordedAt,
		}
	}

	return response, nil
}
