package usecase

import (
	"context"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"prenatal-care-api/internal/delivery/dto"
	"prenatal-care-api/internal/domain/entity"
	"prenatal-care-api/internal/repository"
	"prenatal-care-api/internal/service"
	"prenatal-care-api/internal/testutil"
	"prenatal-care-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testNow = time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptr[T any](v T) *T {
	return &v
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// testEnv bundles a throwaway database with real repositories.
type testEnv struct {
	db    *gorm.DB
	log   *logrus.Logger
	clock testutil.FixedClock
	audit service.AuditService

	users        *userFixtures
	patients     PatientUsecase
	visits       VisitUsecase
	exams        ExamUsecase
	portal       PortalUsecase
	appointments AppointmentUsecase
	logEntries   LogEntryUsecase
	reminders    ReminderUsecase
	reports      ReportUsecase
	auditLogs    AuditLogUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testutil.NewSQLiteDB(t)
	log := newTestLogger()
	clock := testutil.FixedClock{At: testNow}

	patientRepo := repository.NewPatientRepository()
	visitRepo := repository.NewVisitRepository()
	examRepo := repository.NewExamRepository()
	portalRepo := repository.NewPortalAccountRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	logEntryRepo := repository.NewLogEntryRepository()
	reminderRepo := repository.NewReminderRepository()
	auditLogRepo := repository.NewAuditLogRepository()
	audit := service.NewAuditService(log, auditLogRepo)

	return &testEnv{
		db:           db,
		log:          log,
		clock:        clock,
		audit:        audit,
		users:        &userFixtures{db: db},
		patients:     NewPatientUsecase(db, log, clock, patientRepo, visitRepo, examRepo, portalRepo, audit),
		visits:       NewVisitUsecase(db, log, patientRepo, visitRepo, audit),
		exams:        NewExamUsecase(db, log, patientRepo, examRepo, audit),
		portal:       NewPortalUsecase(db, log, clock, patientRepo, portalRepo, appointmentRepo, logEntryRepo, reminderRepo, audit),
		appointments: NewAppointmentUsecase(db, log, clock, portalRepo, appointmentRepo),
		logEntries:   NewLogEntryUsecase(db, log, clock, portalRepo, logEntryRepo),
		reminders:    NewReminderUsecase(db, log, clock, portalRepo, reminderRepo),
		reports:      NewReportUsecase(db, log, clock, repository.NewReportRepository()),
		auditLogs:    NewAuditLogUsecase(db, log, auditLogRepo),
	}
}

type userFixtures struct {
	db *gorm.DB
}

// create inserts a user directly; passwords are irrelevant outside auth tests.
func (f *userFixtures) create(t *testing.T, roleID int) uuid.UUID {
	t.Helper()
	user := &entity.User{
		Email:    uuid.NewString() + "@example.com",
		Password: "x",
		FullName: "User",
		RoleID:   roleID,
		IsActive: true,
	}
	require.NoError(t, f.db.Create(user).Error)
	return user.ID
}

func (e *testEnv) createPatient(t *testing.T, nationalID string, mutate func(*entity.Patient)) *entity.Patient {
	t.Helper()
	p := &entity.Patient{
		Name:         "Patient " + nationalID,
		DateOfBirth:  date(1994, time.March, 10),
		NationalID:   nationalID,
		Address:      "Rua A, 10",
		Phone:        "11999990000",
		RegisteredAt: testNow,
	}
	if mutate != nil {
		mutate(p)
	}
	require.NoError(t, e.db.Create(p).Error)
	return p
}

// linkedUser creates a patient user linked to a fresh patient and returns both ids.
func (e *testEnv) linkedUser(t *testing.T, nationalID string) (uuid.UUID, *entity.Patient) {
	t.Helper()
	userID := e.users.create(t, entity.RoleIDPatient)
	patient := e.createPatient(t, nationalID, nil)
	_, created, err := e.portal.Link(context.Background(), userID, &dto.LinkPortalRequest{PatientID: patient.ID})
	require.NoError(t, err)
	require.True(t, created)
	return userID, patient
}

// memoryTokenStore is a TokenStore backed by a map.
type memoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]bool
}

func newMemoryTokenStore() *memoryTokenStore {
	return &memoryTokenStore{tokens: make(map[string]bool)}
}

func tokenKey(userID uuid.UUID, tokenType jwt.TokenType, tokenID string) string {
	return string(tokenType) + ":" + userID.String() + ":" + tokenID
}

func (s *memoryTokenStore) Store(_ context.Context, userID uuid.UUID, tokenType jwt.TokenType, tokenID string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[tokenKey(userID, tokenType, tokenID)] = true
	return nil
}

func (s *memoryTokenStore) Exists(_ context.Context, userID uuid.UUID, tokenType jwt.TokenType, tokenID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens[tokenKey(userID, tokenType, tokenID)], nil
}

func (s *memoryTokenStore) Delete(_ context.Context, userID uuid.UUID, tokenType jwt.TokenType, tokenID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, tokenKey(userID, tokenType, tokenID))
	return nil
}

func (s *memoryTokenStore) RevokeAll(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key := range s.tokens {
		if containsUser(key, userID) {
			delete(s.tokens, key)
		}
	}
	return nil
}

func containsUser(key string, userID uuid.UUID) bool {
	return strings.Contains(key, ":"+userID.String()+":")
}
