package handler

import (
	"net/http"

	"prenatal-care-api/internal/delivery/dto"
	"prenatal-care-api/internal/usecase"
	"prenatal-care-api/pkg/response"
	"prenatal-care-api/pkg/validator"
)

// ReportHandler exposes the read-only clinic statistics.
type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
	validator     *validator.CustomValidator
}

func NewReportHandler(reportUsecase usecase.ReportUsecase, validator *validator.CustomValidator) *ReportHandler {
	return &ReportHandler{
		reportUsecase: reportUsecase,
		validator:     validator,
	}
}

// General returns totals, six-month trends and the most frequent exam types
// @Summary General statistics
// @Tags Reports
// @Security BearerAuth
// @Router /reports/general [get]
func (h *ReportHandler) General(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.GeneralStatistics(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Report generated successfully", report)
}

// PatientsByPeriod reports patient registrations in a date range
// @Summary Patients by period
// @Tags Reports
// @Security BearerAuth
// @Param start query string false "First day (YYYY-MM-DD)"
// @Param end query string false "Last day (YYYY-MM-DD)"
// @Router /reports/patients-by-period [get]
func (h *ReportHandler) PatientsByPeriod(w http.ResponseWriter, r *http.Request) {
	req, ok := h.periodRequest(w, r)
	if !ok {
		return
	}

	report, err := h.reportUsecase.PatientsByPeriod(r.Context(), req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Report generated successfully", report)
}

// VisitsByPeriod reports visits in a date range
// @Summary Visits by period
// @Tags Reports
// @Security BearerAuth
// @Router /reports/visits-by-period [get]
func (h *ReportHandler) VisitsByPeriod(w http.ResponseWriter, r *http.Request) {
	req, ok := h.periodRequest(w, r)
	if !ok {
		return
	}

	report, err := h.reportUsecase.VisitsByPeriod(r.Context(), req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Report generated successfully", report)
}

func (h *ReportHandler) ExamsByType(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.ExamsByType(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Report generated successfully", report)
}

// UpcomingDueDates lists patients due within the next days (30 by default)
// @Summary Upcoming due dates
// @Tags Reports
// @Security BearerAuth
// @Param days query int false "Look-ahead in days"
// @Router /reports/upcoming-due-dates [get]
func (h *ReportHandler) UpcomingDueDates(w http.ResponseWriter, r *http.Request) {
	req := dto.UpcomingDueDatesRequest{}
	if raw := r.URL.Query().Get("days"); raw != "" {
		days, ok := queryInt(w, r, "days", 0)
		if !ok {
			return
		}
		req.Days = &days
	}

	report, err := h.reportUsecase.UpcomingDueDates(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Report generated successfully", report)
}

func (h *ReportHandler) periodRequest(w http.ResponseWriter, r *http.Request) (*dto.ReportPeriodRequest, bool) {
	q := r.URL.Query()
	req := &dto.ReportPeriodRequest{
		Start: q.Get("start"),
		End:   q.Get("end"),
	}
	if !validate(w, h.validator, req) {
		return nil, false
	}
	return req, true
}
