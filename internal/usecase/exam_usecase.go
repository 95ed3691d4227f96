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
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ExamUsecase interface {
	ListExams(ctx context.Context, patientID int64) ([]dto.ExamResponse, error)
	CreateExam(ctx context.Context, actorID uuid.UUID, patientID int64, req *dto.CreateExamRequest) (*dto.ExamResponse, error)
	GetExam(ctx context.Context, patientID, id int64) (*dto.ExamResponse, error)
	UpdateExam(ctx context.Context, actorID uuid.UUID, patientID, id int64, req *dto.UpdateExamRequest) (*dto.ExamResponse, error)
	DeleteExam(ctx context.Context, actorID uuid.UUID, patientID, id int64) error
}

type examUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	examRepo     repository.ExamRepository
	auditService service.AuditService
}

func NewExamUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	examRepo repository.ExamRepository,
	auditService service.AuditService,
) ExamUsecase {
	return &examUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		examRepo:     examRepo,
		auditService: auditService,
	}
}

func (u *examUsecase) ListExams(ctx context.Context, patientID int64) ([]dto.ExamResponse, error) {
	if err := patientExists(ctx, u.db, u.patientRepo, u.log, patientID); err != nil {
		return nil, err
	}

	exams, err := u.examRepo.FindByPatientID(ctx, u.db, patientID)
	if err != nil {
		u.log.Warnf("Failed to find exams: %+v", err)
		return nil, err
	}

	return converter.ExamsToResponses(exams), nil
}

func (u *examUsecase) CreateExam(ctx context.Context, actorID uuid.UUID, patientID int64, req *dto.CreateExamRequest) (*dto.ExamResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	exam := &entity.Exam{
		PatientID: patientID,
		Date:      date,
		ExamType:  strings.TrimSpace(req.ExamType),
		Result:    req.Result,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := patientExists(ctx, tx, u.patientRepo, u.log, patientID); err != nil {
		return nil, err
	}

	if err := u.examRepo.Create(ctx, tx, exam); err != nil {
		if isForeignKeyError(err) {
			return nil, ErrPatientNotFound
		}
		u.log.Warnf("Failed to create exam: %+v", err)
		return nil, err
	}

	response := converter.ExamToResponse(exam)
	if err := u.auditService.LogCreate(ctx, tx, &actorID, entity.AuditActionExamCreate, "exam", strconv.FormatInt(exam.ID, 10), response); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return response, nil
}

func (u *examUsecase) GetExam(ctx context.Context, patientID, id int64) (*dto.ExamResponse, error) {
	exam, err := u.examRepo.FindByID(ctx, u.db, patientID, id)
	if err != nil {
		u.log.Warnf("Failed to find exam: %+v", err)
		return nil, err
	}
	if exam == nil {
		return nil, ErrExamNotFound
	}

	return converter.ExamToResponse(exam), nil
}

func (u *examUsecase) UpdateExam(ctx context.Context, actorID uuid.UUID, patientID, id int64, req *dto.UpdateExamRequest) (*dto.ExamResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	exam, err := u.examRepo.FindByID(ctx, tx, patientID, id)
	if err != nil {
		u.log.Warnf("Failed to find exam: %+v", err)
		return nil, err
	}
	if exam == nil {
		return nil, ErrExamNotFound
	}

	before := converter.ExamToResponse(exam)

	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		exam.Date = date
	}
	if req.ExamType != nil {
		exam.ExamType = strings.TrimSpace(*req.ExamType)
	}
	if req.Result != nil {
		exam.Result = *req.Result
	}

	if err := u.examRepo.Update(ctx, tx, exam); err != nil {
		u.log.Warnf("Failed to update exam: %+v", err)
		return nil, err
	}

	after := converter.ExamToResponse(exam)
	if err := u.auditService.LogUpdate(ctx, tx, &actorID, entity.AuditActionExamUpdate, "exam", strconv.FormatInt(id, 10), before, after); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return after, nil
}

func (u *examUsecase) DeleteExam(ctx context.Context, actorID uuid.UUID, patientID, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	rows, err := u.examRepo.Delete(ctx, tx, patientID, id)
	if err != nil {
		u.log.Warnf("Failed to delete exam: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrExamNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &actorID, entity.AuditActionExamDelete, "exam", strconv.FormatInt(id, 10), map[string]int64{"patient_id": patientID}); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}
