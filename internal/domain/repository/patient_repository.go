package repository

import (
	"context"

	"prenatal-care-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*entity.Patient, error)
	FindAll(ctx context.Context, db *gorm.DB, filter *entity.PatientFilter) ([]entity.Patient, int64, error)
	Update(ctx context.Context, db *gorm.DB, patient *entity.Patient) error
	Delete(ctx context.Context, db *gorm.DB, id int64) (int64, error)
}

type VisitRepository interface {
	Create(ctx context.Context, db *gorm.DB, visit *entity.Visit) error
	FindByID(ctx context.Context, db *gorm.DB, patientID, id int64) (*entity.Visit, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID int64) ([]entity.Visit, error)
	Update(ctx context.Context, db *gorm.DB, visit *entity.Visit) error
	Delete(ctx context.Context, db *gorm.DB, patientID, id int64) (int64, error)
	DeleteByPatientID(ctx context.Context, db *gorm.DB, patientID int64) error
}

type ExamRepository interface {
	Create(ctx context.Context, db *gorm.DB, exam *entity.Exam) error
	FindByID(ctx context.Context, db *gorm.DB, patientID, id int64) (*entity.Exam, error)
	FindByPatientID(ctx context.Context, db *gorm.DB, patientID int64) ([]entity.Exam, error)
	Update(ctx context.Context, db *gorm.DB, exam *entity.Exam) error
	Delete(ctx context.Context, db *gorm.DB, patientID, id int64) (int64, error)
	DeleteByPatientID(ctx context.Context, db *gorm.DB, patientID int64) error
}
