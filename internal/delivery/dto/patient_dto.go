package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Patient

type CreatePatientRequest struct {
	Name                string  `json:"name" validate:"required,max=100"`
	DateOfBirth         string  `json:"date_of_birth" validate:"required,isodate"`
	NationalID          string  `json:"national_id" validate:"required,max=20"`
	Address             string  `json:"address" validate:"required"`
	Phone               string  `json:"phone" validate:"required,max=15"`
	Email               *string `json:"email" validate:"omitempty,email,max=254"`
	LastMenstrualPeriod *string `json:"last_menstrual_period" validate:"omitempty,isodate"`
	DueDate             *string `json:"due_date" validate:"omitempty,isodate"`
}

// UpdatePatientRequest changes only the fields that are present. ClearDueDate drops
// the stored due date so it is derived again from the last menstrual period.
type UpdatePatientRequest struct {
	Name                *string `json:"name" validate:"omitempty,min=1,max=100"`
	DateOfBirth         *string `json:"date_of_birth" validate:"omitempty,isodate"`
	NationalID          *string `json:"national_id" validate:"omitempty,min=1,max=20"`
	Address             *string `json:"address" validate:"omitempty,min=1"`
	Phone               *string `json:"phone" validate:"omitempty,min=1,max=15"`
	Email               *string `json:"email" validate:"omitempty,email,max=254"`
	LastMenstrualPeriod *string `json:"last_menstrual_period" validate:"omitempty,isodate"`
	DueDate             *string `json:"due_date" validate:"omitempty,isodate"`
	ClearDueDate        bool    `json:"clear_due_date"`
}

type ListPatientsRequest struct {
	Search string
	Page   int
	Limit  int
}

type PatientResponse struct {
	ID                  int64     `json:"id"`
	Name                string    `json:"name"`
	DateOfBirth         string    `json:"date_of_birth"`
	NationalID          string    `json:"national_id"`
	Address             string    `json:"address"`
	Phone               string    `json:"phone"`
	Email               *string   `json:"email"`
	LastMenstrualPeriod *string   `json:"last_menstrual_period"`
	DueDate             *string   `json:"due_date"`
	GestationalWeeks    *int      `json:"gestational_weeks"`
	RegisteredAt        time.Time `json:"registered_at"`
}

type PatientDetailResponse struct {
	PatientResponse
	Visits []VisitResponse `json:"visits"`
	Exams  []ExamResponse  `json:"exams"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
}

// Visit

type CreateVisitRequest struct {
	Date           string           `json:"date" validate:"required,isodate"`
	Location       string           `json:"location" validate:"required,max=100"`
	Provider       string           `json:"provider" validate:"required,max=100"`
	Weight         *decimal.Decimal `json:"weight" validate:"required"`
	BloodPressure  string           `json:"blood_pressure" validate:"required,bloodpressure"`
	UterineHeight  *decimal.Decimal `json:"uterine_height"`
	FetalHeartRate *int             `json:"fetal_heart_rate" validate:"omitempty,gte=50,lte=250"`
	Notes          *string          `json:"notes"`
}

type UpdateVisitRequest struct {
	Date           *string          `json:"date" validate:"omitempty,isodate"`
	Location       *string          `json:"location" validate:"omitempty,min=1,max=100"`
	Provider       *string          `json:"provider" validate:"omitempty,min=1,max=100"`
	Weight         *decimal.Decimal `json:"weight"`
	BloodPressure  *string          `json:"blood_pressure" validate:"omitempty,bloodpressure"`
	UterineHeight  *decimal.Decimal `json:"uterine_height"`
	FetalHeartRate *int             `json:"fetal_heart_rate" validate:"omitempty,gte=50,lte=250"`
	Notes          *string          `json:"notes"`
}

type VisitResponse struct {
	ID             int64            `json:"id"`
	PatientID      int64            `json:"patient_id"`
	Date           string           `json:"date"`
	Location       string           `json:"location"`
	Provider       string           `json:"provider"`
	Weight         decimal.Decimal  `json:"weight"`
	BloodPressure  string           `json:"blood_pressure"`
	UterineHeight  *decimal.Decimal `json:"uterine_height"`
	FetalHeartRate *int             `json:"fetal_heart_rate"`
	Notes          *string          `json:"notes"`
	RecordedAt     time.Time        `json:"recorded_at"`
}

// Exam

type CreateExamRequest struct {
	Date     string `json:"date" validate:"required,isodate"`
	ExamType string `json:"exam_type" validate:"required,max=100"`
	Result   string `json:"result" validate:"required"`
}

type UpdateExamRequest struct {
	Date     *string `json:"date" validate:"omitempty,isodate"`
	ExamType *string `json:"exam_type" validate:"omitempty,min=1,max=100"`
	Result   *string `json:"result" validate:"omitempty,min=1"`
}

type ExamResponse struct {
	ID         int64     `json:"id"`
	PatientID  int64     `json:"patient_id"`
	Date       string    `json:"date"`
	ExamType   string    `json:"exam_type"`
	Result     string    `json:"result"`
	RecordedAt time.Time `json:"recorded_at"`
}
