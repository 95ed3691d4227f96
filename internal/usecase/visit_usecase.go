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

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type VisitUsecase interface {
	ListVisits(ctx context.Context, patientID int64) ([]dto.VisitResponse, error)
	CreateVisit(ctx context.Context, actorID uuid.UUID, patientID int64, req *dto.CreateVisitRequest) (*dto.VisitResponse, error)
	GetVisit(ctx context.Context, patientID, id int64) (*dto.VisitResponse, error)
	UpdateVisit(ctx context.Context, actorID uuid.UUID, patientID, id int64, req *dto.UpdateVisitRequest) (*dto.VisitResponse, error)
	DeleteVisit(ctx context.Context, actorID uuid.UUID, patientID, id int64) error
}

type visitUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	visitRepo    repository.VisitRepository
	auditService service.AuditService
}

func NewVisitUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	visitRepo repository.VisitRepository,
	auditService service.AuditService,
) VisitUsecase {
	return &visitUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		visitRepo:    visitRepo,
		auditService: auditService,
	}
}

// patientExists loads the patient on db and maps a missing one to ErrPatientNotFound.
func patientExists(ctx context.Context, db *gorm.DB, repo repository.PatientRepository, log *logrus.Logger, id int64) error {
	patient, err := repo.FindByID(ctx, db, id)
	if err != nil {
		log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}
	return nil
}

func (u *visitUsecase) ListVisits(ctx context.Context, patientID int64) ([]dto.VisitResponse, error) {
	if err := patientExists(ctx, u.db, u.patientRepo, u.log, patientID); err != nil {
		return nil, err
	}

	visits, err := u.visitRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find visits: %+v", err)
		return nil, err
	}

	return converter.VisitsToResponses(visits), nil
}

func (u *visitUsecase) CreateVisit(ctx context.Context, actorID uuid.UUID, patientID int64, req *dto.CreateVisitRequest) (*dto.VisitResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if req.Weight == nil || !req.Weight.IsPositive() {
		return nil, ErrInvalidWeight
	}
	if req.UterineHeight != nil && !req.UterineHeight.IsPositive() {
		return nil, ErrInvalidUterineHeight
	}

	visit := &entity.Visit{
		PatientID:      patientID,
		Date:           date,
		Location:       strings.TrimSpace(req.Location),
		Provider:       strings.TrimSpace(req.Provider),
		Weight:         *req.Weight,
		BloodPressure:  req.BloodPressure,
		UterineHeight:  toNullDecimal(req.UterineHeight),
		FetalHeartRate: req.FetalHeartRate,
		Notes:          req.Notes,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := patientExists(ctx, tx, u.patientRepo, u.log, patientID); err != nil {
		return nil, err
	}

	if err := u.visitRepo.Create(ctx, tx, visit); err != nil {
		if isForeignKeyError(err) {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to create visit: %+v", err)
		return nil, err
	}

	response := converter.VisitToResponse(visit)
	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionVisitCreate, "visit", strconv.FormatInt(visit.ID, 10), response); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *visitUsecase) GetVisit(ctx context.Context, patientID, id int64) (*dto.VisitResponse, error) {
	visit, err := u.visitRepo.FindByID(ctx, u.db, patientID, id)
	if err != nil {
		u.log.Warnf("Failed to find visit: %+v", err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}

	return converter.VisitToResponse(visit), nil
}

func (u *visitUsecase) UpdateVisit(ctx context.Context, actorID uuid.UUID, patientID, id int64, req *dto.UpdateVisitRequest) (*dto.VisitResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	visit, err := u.visitRepo.FindByID(ctx, tx, patientID, id)
	if err != nil {
		u.log.Warnf("Failed to find visit: %+v", err)
		return nil, err
	}
	if visit == nil {
		return nil, ErrVisitNotFound
	}

	before := converter.VisitToResponse(visit)

	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		visit.Date = date
	}
	if req.Location != nil {
		visit.Location = strings.TrimSpace(*req.Location)
	}
	if req.Provider != nil {
		visit.Provider = strings.TrimSpace(*req.Provider)
	}
	if req.Weight != nil {
		if !req.Weight.IsPositive() {
			return nil, ErrInvalidWeight
		}
		visit.Weight = *req.Weight
	}
	if req.BloodPressure != nil {
		visit.BloodPressure = *req.BloodPressure
	}
	if req.UterineHeight != nil {
		if !req.UterineHeight.IsPositive() {
			return nil, ErrInvalidUterineHeight
		}
		visit.UterineHeight = toNullDecimal(req.UterineHeight)
	}
	if req.FetalHeartRate != nil {
		visit.FetalHeartRate = req.FetalHeartRate
	}
	if req.Notes != nil {
		visit.Notes = req.Notes
	}

	if err := u.visitRepo.Update(ctx, tx, visit); err != nil {
		u.log.Warnf("Failed to update visit: %+v", err)
		return nil, err
	}

	after := converter.VisitToResponse(visit)
	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionVisitUpdate, "visit", strconv.FormatInt(id, 10), before, after); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return after, nil
}

func (u *visitUsecase) DeleteVisit(ctx context.Context, actorID uuid.UUID, patientID, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	rows, err := u.visitRepo.Delete(ctx, tx, patientID, id)
	if err != nil {
		u.log.Warnf("Failed to delete visit: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrVisitNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionVisitDelete, "visit", strconv.FormatInt(id, 10), map[string]int64{"patient_id": patientID}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}
