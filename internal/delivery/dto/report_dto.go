package dto

import "time"

// ReportPeriodRequest is an optional inclusive date range; when either bound is
// missing the trailing 30 days are used.
type ReportPeriodRequest struct {
	Start string `validate:"omitempty,isodate"`
	End   string `validate:"omitempty,isodate"`
}

type Period struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  *int   `json:"days,omitempty"`
}

type GroupCount struct {
	Name  string `json:"name"`
	Total int64  `json:"total"`
}

// General statistics

type GeneralReportResponse struct {
	Totals       GeneralTotals `json:"totals"`
	Trends       Trends        `json:"trends"`
	TopExamTypes []GroupCount  `json:"top_exam_types"`
	GeneratedAt  time.Time     `json:"generated_at"`
}

type GeneralTotals struct {
	Patients            int64   `json:"patients"`
	Visits              int64   `json:"visits"`
	Exams               int64   `json:"exams"`
	AvgVisitsPerPatient float64 `json:"avg_visits_per_patient"`
	DueNext30Days       int64   `json:"due_next_30_days"`
}

type Trends struct {
	Patients []MonthCount `json:"patients"`
	Visits   []MonthCount `json:"visits"`
	Exams    []MonthCount `json:"exams"`
}

type MonthCount struct {
	Month string `json:"month"`
	Total int64  `json:"total"`
}

// Patients by period

type PatientsByPeriodResponse struct {
	Period   Period             `json:"period"`
	Stats    PatientPeriodStats `json:"stats"`
	PerDay   []DayCount         `json:"per_day"`
	Patients []PatientSummary   `json:"patients"`
}

type PatientPeriodStats struct {
	Total   int64   `json:"total"`
	AgeMean float64 `json:"age_mean"`
	AgeMin  int     `json:"age_min"`
	AgeMax  int     `json:"age_max"`
}

type DayCount struct {
	Day   string `json:"day"`
	Total int64  `json:"total"`
}

type PatientSummary struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	DateOfBirth  string    `json:"date_of_birth"`
	RegisteredAt time.Time `json:"registered_at"`
	DueDate      *string   `json:"due_date"`
}

// Visits by period

type VisitsByPeriodResponse struct {
	Period Period           `json:"period"`
	Stats  VisitPeriodStats `json:"stats"`
	Visits []VisitSummary   `json:"visits"`
}

type VisitPeriodStats struct {
	Total      int64        `json:"total"`
	MeanWeight float64      `json:"mean_weight"`
	ByProvider []GroupCount `json:"by_provider"`
	ByLocation []GroupCount `json:"by_location"`
}

type VisitSummary struct {
	ID            int64    `json:"id"`
	PatientName   string   `json:"patient_name"`
	Date          string   `json:"date"`
	Provider      string   `json:"provider"`
	Location      string   `json:"location"`
	Weight        *float64 `json:"weight"`
	BloodPressure string   `json:"blood_pressure"`
}

// Exams by type

type ExamsByTypeResponse struct {
	Summary    ExamTypeSummary  `json:"summary"`
	ByType     []GroupCount     `json:"by_type"`
	Last30Days []GroupCount     `json:"last_30_days"`
	Details    []ExamTypeDetail `json:"details"`
}

type ExamTypeSummary struct {
	TypeCount int   `json:"type_count"`
	ExamCount int64 `json:"exam_count"`
}

type ExamTypeDetail struct {
	ExamType string        `json:"exam_type"`
	Total    int64         `json:"total"`
	Recent   []ExamSummary `json:"recent"`
}

type ExamSummary struct {
	ID          int64  `json:"id"`
	PatientName string `json:"patient_name"`
	Date        string `json:"date"`
	Result      string `json:"result"`
}

// Upcoming due dates

type UpcomingDueDatesRequest struct {
	Days *int `validate:"omitempty,gte=0"`
}

type UpcomingDueDatesResponse struct {
	Period Period         `json:"period"`
	Stats  UpcomingStats  `json:"stats"`
	ByWeek []DueWeekGroup `json:"by_week"`
	All    []UpcomingDue  `json:"all"`
}

type UpcomingStats struct {
	Total       int `json:"total"`
	DueWithin7  int `json:"due_within_7"`
	DueWithin30 int `json:"due_within_30"`
}

type DueWeekGroup struct {
	Week     string        `json:"week"`
	Patients []UpcomingDue `json:"patients"`
}

type UpcomingDue struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	DueDate        string  `json:"due_date"`
	Phone          string  `json:"phone"`
	Email          *string `json:"email"`
	WeeksAtDueDate *int    `json:"weeks_at_due_date"`
	DaysRemaining  int     `json:"days_remaining"`
}
