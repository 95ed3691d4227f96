package http

import (
	"net/http"

	"prenatal-care-api/internal/delivery/http/handler"
	"prenatal-care-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth        *handler.AuthHandler
	Patient     *handler.PatientHandler
	Visit       *handler.VisitHandler
	Exam        *handler.ExamHandler
	Portal      *handler.PortalHandler
	Appointment *handler.AppointmentHandler
	LogEntry    *handler.LogEntryHandler
	Reminder    *handler.ReminderHandler
	Report      *handler.ReportHandler
	AuditLog    *handler.AuditLogHandler
}

type Router struct {
	router            *mux.Router
	handlers          Handlers
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		handlers:          handlers,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	h := r.handlers

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", h.Auth.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", h.Auth.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh", h.Auth.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", h.Auth.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", h.Auth.Me).Methods(http.MethodGet)

	// Clinical records (admin and staff)
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.Use(middleware.RequireStaff)
	patients.HandleFunc("", h.Patient.ListPatients).Methods(http.MethodGet)
	patients.HandleFunc("", h.Patient.CreatePatient).Methods(http.MethodPost)
	patients.HandleFunc("/{id:[0-9]+}", h.Patient.GetPatient).Methods(http.MethodGet)
	patients.HandleFunc("/{id:[0-9]+}", h.Patient.UpdatePatient).Methods(http.MethodPut, http.MethodPatch)
	patients.HandleFunc("/{id:[0-9]+}", h.Patient.DeletePatient).Methods(http.MethodDelete)

	patients.HandleFunc("/{patientId:[0-9]+}/visits", h.Visit.ListVisits).Methods(http.MethodGet)
	patients.HandleFunc("/{patientId:[0-9]+}/visits", h.Visit.CreateVisit).Methods(http.MethodPost)
	patients.HandleFunc("/{patientId:[0-9]+}/visits/{id:[0-9]+}", h.Visit.GetVisit).Methods(http.MethodGet)
	patients.HandleFunc("/{patientId:[0-9]+}/visits/{id:[0-9]+}", h.Visit.UpdateVisit).Methods(http.MethodPut, http.MethodPatch)
	patients.HandleFunc("/{patientId:[0-9]+}/visits/{id:[0-9]+}", h.Visit.DeleteVisit).Methods(http.MethodDelete)

	patients.HandleFunc("/{patientId:[0-9]+}/exams", h.Exam.ListExams).Methods(http.MethodGet)
	patients.HandleFunc("/{patientId:[0-9]+}/exams", h.Exam.CreateExam).Methods(http.MethodPost)
	patients.HandleFunc("/{patientId:[0-9]+}/exams/{id:[0-9]+}", h.Exam.GetExam).Methods(http.MethodGet)
	patients.HandleFunc("/{patientId:[0-9]+}/exams/{id:[0-9]+}", h.Exam.UpdateExam).Methods(http.MethodPut, http.MethodPatch)
	patients.HandleFunc("/{patientId:[0-9]+}/exams/{id:[0-9]+}", h.Exam.DeleteExam).Methods(http.MethodDelete)

	// Reports (admin and staff)
	reports := api.PathPrefix("/reports").Subrouter()
	reports.Use(r.authMiddleware.Authenticate)
	reports.Use(middleware.RequireStaff)
	reports.HandleFunc("/general", h.Report.General).Methods(http.MethodGet)
	reports.HandleFunc("/patients-by-period", h.Report.PatientsByPeriod).Methods(http.MethodGet)
	reports.HandleFunc("/visits-by-period", h.Report.VisitsByPeriod).Methods(http.MethodGet)
	reports.HandleFunc("/exams-by-type", h.Report.ExamsByType).Methods(http.MethodGet)
	reports.HandleFunc("/upcoming-due-dates", h.Report.UpcomingDueDates).Methods(http.MethodGet)

	// Patient portal (any authenticated user, scoped to their own account)
	portal := api.PathPrefix("/portal").Subrouter()
	portal.Use(r.authMiddleware.Authenticate)
	portal.HandleFunc("", h.Portal.GetPage).Methods(http.MethodGet)
	portal.HandleFunc("", h.Portal.Link).Methods(http.MethodPost)
	portal.HandleFunc("/dashboard", h.Portal.GetDashboard).Methods(http.MethodGet)

	portal.HandleFunc("/appointments", h.Appointment.ListAppointments).Methods(http.MethodGet)
	portal.HandleFunc("/appointments", h.Appointment.CreateAppointment).Methods(http.MethodPost)
	portal.HandleFunc("/appointments/{id:[0-9]+}", h.Appointment.GetAppointment).Methods(http.MethodGet)
	portal.HandleFunc("/appointments/{id:[0-9]+}", h.Appointment.UpdateAppointment).Methods(http.MethodPut, http.MethodPatch)
	portal.HandleFunc("/appointments/{id:[0-9]+}", h.Appointment.DeleteAppointment).Methods(http.MethodDelete)

	portal.HandleFunc("/log-entries", h.LogEntry.ListLogEntries).Methods(http.MethodGet)
	portal.HandleFunc("/log-entries", h.LogEntry.CreateLogEntry).Methods(http.MethodPost)
	portal.HandleFunc("/log-entries/{id:[0-9]+}", h.LogEntry.GetLogEntry).Methods(http.MethodGet)
	portal.HandleFunc("/log-entries/{id:[0-9]+}", h.LogEntry.UpdateLogEntry).Methods(http.MethodPut, http.MethodPatch)
	portal.HandleFunc("/log-entries/{id:[0-9]+}", h.LogEntry.DeleteLogEntry).Methods(http.MethodDelete)

	portal.HandleFunc("/reminders", h.Reminder.ListReminders).Methods(http.MethodGet)
	portal.HandleFunc("/reminders", h.Reminder.CreateReminder).Methods(http.MethodPost)
	portal.HandleFunc("/reminders/{id:[0-9]+}", h.Reminder.GetReminder).Methods(http.MethodGet)
	portal.HandleFunc("/reminders/{id:[0-9]+}", h.Reminder.UpdateReminder).Methods(http.MethodPut, http.MethodPatch)
	portal.HandleFunc("/reminders/{id:[0-9]+}", h.Reminder.DeleteReminder).Methods(http.MethodDelete)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/users", h.Auth.CreateStaff).Methods(http.MethodPost)
	admin.HandleFunc("/audit-logs", h.AuditLog.ListAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id:[0-9]+}", h.AuditLog.GetAuditLog).Methods(http.MethodGet)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
