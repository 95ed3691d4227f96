package converter

import (
	"time"

	"prenatal-care-api/internal/delivery/dto"
	"prenatal-care-api/internal/domain/entity"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// FormatDate renders a date column value as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func formatDatePtr(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func nullDecimalPtr(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

// PatientToResponse converts a Patient entity to PatientResponse DTO. Gestational
// weeks are computed as of today.
func PatientToResponse(patient *entity.Patient, today time.Time) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	response := &dto.PatientResponse{
		ID:                  patient.ID,
		Name:                patient.Name,
		DateOfBirth:         FormatDate(patient.DateOfBirth),
		NationalID:          patient.NationalID,
		Address:             patient.Address,
		Phone:               patient.Phone,
		Email:               patient.Email,
		LastMenstrualPeriod: formatDatePtr(patient.LastMenstrualPeriod),
		DueDate:             formatDatePtr(patient.DueDate),
		RegisteredAt:        patient.RegisteredAt,
	}

	if weeks, ok := patient.GestationalWeeks(today); ok {
		response.GestationalWeeks = &weeks
	}

	return response
}

func PatientsToResponses(patients []entity.Patient, today time.Time) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i], today)
	}
	return responses
}

func VisitToResponse(visit *entity.Visit) *dto.VisitResponse {
	if visit == nil {
		return nil
	}

	return &dto.VisitResponse{
		ID:             visit.ID,
		PatientID:      visit.PatientID,
		Date:           FormatDate(visit.Date),
		Location:       visit.Location,
		Provider:       visit.Provider,
		Weight:         visit.Weight,
		BloodPressure:  visit.BloodPressure,
		UterineHeight:  nullDecimalPtr(visit.UterineHeight),
		FetalHeartRate: visit.FetalHeartRate,
		Notes:          visit.Notes,
		RecordedAt:     visit.RecordedAt,
	}
}

func VisitsToResponses(visits []entity.Visit) []dto.VisitResponse {
	responses := make([]dto.VisitResponse, len(visits))
	for i := range visits {
		responses[i] = *VisitToResponse(&visits[i])
	}
	return responses
}

func ExamToResponse(exam *entity.Exam) *dto.ExamResponse {
	if exam == nil {
		return nil
	}

	return &dto.ExamResponse{
		ID:         exam.ID,
		PatientID:  exam.PatientID,
		Date:       FormatDate(exam.Date),
		ExamType:   exam.ExamType,
		Result:     exam.Result,
		RecordedAt: exam.RecordedAt,
	}
}

func ExamsToResponses(exams []entity.Exam) []dto.ExamResponse {
	responses := make([]dto.ExamResponse, len(exams))
	for i := range exams {
		responses[i] = *ExamToResponse(&exams[i])
	}
	return responses
}
