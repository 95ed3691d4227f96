package usecase

import (
	"context"
	"strconv"
	"strings"

	"prenatal-care-api/internal/converter"
	"prenatal-care-api/internal/delivery/dto"
	"prenatal-care-api/internal/domain/entity"
	"prenatal-care-api/internal/domain/repository"
	"prenatal-care-api/internal/service"
	"prenatal-care-api/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

type PatientUsecase interface {
	ListPatients(ctx context.Context, req *dto.ListPatientsRequest) (*dto.PatientListResponse, error)
	CreatePatient(ctx context.Context, actorID uuid.UUID, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, id int64) (*dto.PatientDetailResponse, error)
	UpdatePatient(ctx context.Context, actorID uuid.UUID, id int64, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, actorID uuid.UUID, id int64) error
}

type patientUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	clock        Clock
	patientRepo  repository.PatientRepository
	visitRepo    repository.VisitRepository
	examRepo     repository.ExamRepository
	portalRepo   repository.PortalAccountRepository
	auditService service.AuditService
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	clock Clock,
	patientRepo repository.PatientRepository,
	visitRepo repository.VisitRepository,
	examRepo repository.ExamRepository,
	portalRepo repository.PortalAccountRepository,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		db:           db,
		log:          log,
		clock:        clock,
		patientRepo:  patientRepo,
		visitRepo:    visitRepo,
		examRepo:     examRepo,
		portalRepo:   portalRepo,
		auditService: auditService,
	}
}

func (u *patientUsecase) ListPatients(ctx context.Context, req *dto.ListPatientsRequest) (*dto.PatientListResponse, error) {
	page, limit := normalizePage(req.Page, req.Limit)

	filter := &entity.PatientFilter{
		Search: strings.TrimSpace(req.Search),
		Limit:  limit,
		Offset: (page - 1) * limit,
	}

	patients, total, err := u.patientRepo.FindAll(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients, today(u.clock)),
		Total:    total,
		Page:     page,
		Limit:    limit,
	}, nil
}

func (u *patientUsecase) CreatePatient(ctx context.Context, actorID uuid.UUID, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	nationalID := strings.TrimSpace(req.NationalID)
	if nationalID == "" {
		return nil, apperror.Validation("national_id is required")
	}

	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		return nil, err
	}
	lmp, err := parseDatePtr(req.LastMenstrualPeriod)
	if err != nil {
		return nil, err
	}
	dueDate, err := parseDatePtr(req.DueDate)
	if err != nil {
		return nil, err
	}

	patient := &entity.Patient{
		Name:                strings.TrimSpace(req.Name),
		DateOfBirth:         dob,
		NationalID:          nationalID,
		Address:             req.Address,
		Phone:               req.Phone,
		Email:               req.Email,
		LastMenstrualPeriod: lmp,
		DueDate:             dueDate,
		RegisteredAt:        u.clock.Now(),
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.patientRepo.Create(ctx, tx, patient); err != nil {
		if isDuplicateKeyError(err, "national_id") {
			return nil, ErrNationalIDExists
		}
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	response := converter.PatientToResponse(patient, today(u.clock))
	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionPatientCreate, "patient", strconv.FormatInt(patient.ID, 10), response); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id int64) (*dto.PatientDetailResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	visits, err := u.visitRepo.FindByPatientID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find visits: %+v", err)
		return nil, err
	}

	exams, err := u.examRepo.FindByPatientID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find exams: %+v", err)
		return nil, err
	}

	return &dto.PatientDetailResponse{
		PatientResponse: *converter.PatientToResponse(patient, today(u.clock)),
		Visits:          converter.VisitsToResponses(visits),
		Exams:           converter.ExamsToResponses(exams),
	}, nil
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, actorID uuid.UUID, id int64, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	asOf := today(u.clock)
	before := converter.PatientToResponse(patient, asOf)

	if err := applyPatientUpdate(patient, req); err != nil {
		return nil, err
	}

	if err := u.patientRepo.Update(ctx, tx, patient); err != nil {
		if isDuplicateKeyError(err, "national_id") {
			return nil, ErrNationalIDExists
		}
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	after := converter.PatientToResponse(patient, asOf)
	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionPatientUpdate, "patient", strconv.FormatInt(id, 10), before, after); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return after, nil
}

// applyPatientUpdate copies the supplied fields onto patient. The due date is only
// derived again when the caller clears it; editing the last menstrual period alone
// keeps the stored due date.
func applyPatientUpdate(patient *entity.Patient, req *dto.UpdatePatientRequest) error {
	if req.Name != nil {
		patient.Name = strings.TrimSpace(*req.Name)
	}
	if req.DateOfBirth != nil {
		dob, err := parseDate(*req.DateOfBirth)
		if err != nil {
			return err
		}
		patient.DateOfBirth = dob
	}
	if req.NationalID != nil {
		nationalID := strings.TrimSpace(*req.NationalID)
		if nationalID == "" {
			return apperror.Validation("national_id must not be empty")
		}
		patient.NationalID = nationalID
	}
	if req.Address != nil {
		patient.Address = *req.Address
	}
	if req.Phone != nil {
		patient.Phone = *req.Phone
	}
	if req.Email != nil {
		patient.Email = req.Email
	}
	if req.LastMenstrualPeriod != nil {
		lmp, err := parseDatePtr(req.LastMenstrualPeriod)
		if err != nil {
			return err
		}
		patient.LastMenstrualPeriod = lmp
	}
	if req.ClearDueDate {
		patient.DueDate = nil
	}
	if req.DueDate != nil {
		due, err := parseDatePtr(req.DueDate)
		if err != nil {
			return err
		}
		patient.DueDate = due
	}
	patient.EnsureDueDate()
	return nil
}

func (u *patientUsecase) DeletePatient(ctx context.Context, actorID uuid.UUID, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	if err := u.portalRepo.DeleteByPatientID(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete portal account: %+v", err)
		return err
	}
	if err := u.visitRepo.DeleteByPatientID(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete visits: %+v", err)
		return err
	}
	if err := u.examRepo.DeleteByPatientID(ctx, tx, id); err != nil {
		u.log.Warnf("Failed to delete exams: %+v", err)
		return err
	}

	rows, err := u.patientRepo.Delete(ctx, tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrPatientNotFound
	}

	before := converter.PatientToResponse(patient, today(u.clock))
	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionPatientDelete, "patient", strconv.FormatInt(id, 10), before); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}
