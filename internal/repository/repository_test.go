package repository

import (
	"context"
	"testing"
	"time"

	"prenatal-care-api/internal/domain/entity"
	"prenatal-care-api/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedPatient(t *testing.T, db *gorm.DB, name, nationalID string, registeredAt time.Time) *entity.Patient {
	t.Helper()
	p := &entity.Patient{
		Name:         name,
		DateOfBirth:  day(1994, 3, 10),
		NationalID:   nationalID,
		Address:      "Rua A",
		Phone:        "11999990000",
		RegisteredAt: registeredAt,
	}
	require.NoError(t, NewPatientRepository().Create(context.Background(), db, p))
	return p
}

func seedExam(t *testing.T, db *gorm.DB, patientID int64, examType string, date time.Time) {
	t.Helper()
	require.NoError(t, NewExamRepository().Create(context.Background(), db, &entity.Exam{
		PatientID: patientID,
		Date:      date,
		ExamType:  examType,
		Result:    "ok",
	}))
}

func TestPatientRepository_FindAll(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()
	repo := NewPatientRepository()

	base := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	seedPatient(t, db, "Ana Souza", "001", base)
	seedPatient(t, db, "Beatriz Lima", "002", base.Add(time.Hour))
	seedPatient(t, db, "Ana Paula", "003", base.Add(2*time.Hour))

	patients, total, err := repo.FindAll(ctx, db, &entity.PatientFilter{Search: "ana", Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, patients, 1)
	assert.Equal(t, "Ana Paula", patients[0].Name)

	patients, _, err = repo.FindAll(ctx, db, &entity.PatientFilter{Search: "ana", Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, "Ana Souza", patients[0].Name)

	missing, err := repo.FindByID(ctx, db, 999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPatientRepository_DeleteCascades(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()

	p := seedPatient(t, db, "Ana", "001", time.Now().UTC())
	require.NoError(t, NewVisitRepository().Create(ctx, db, &entity.Visit{
		PatientID:     p.ID,
		Date:          day(2024, 6, 1),
		Location:      "Clinic",
		Provider:      "Dr. Ana",
		Weight:        decimal.RequireFromString("60.5"),
		BloodPressure: "120/80",
	}))
	seedExam(t, db, p.ID, "Ultrasound", day(2024, 6, 2))

	affected, err := NewPatientRepository().Delete(ctx, db, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	visits, err := NewVisitRepository().FindByPatientID(ctx, db, p.ID)
	require.NoError(t, err)
	assert.Empty(t, visits)

	exams, err := NewExamRepository().FindByPatientID(ctx, db, p.ID)
	require.NoError(t, err)
	assert.Empty(t, exams)
}

func TestVisitRepository_RejectsUnknownPatient(t *testing.T) {
	db := testutil.NewSQLiteDB(t)

	err := NewVisitRepository().Create(context.Background(), db, &entity.Visit{
		PatientID:     404,
		Date:          day(2024, 6, 1),
		Location:      "Clinic",
		Provider:      "Dr. Ana",
		Weight:        decimal.RequireFromString("60.5"),
		BloodPressure: "120/80",
	})
	assert.ErrorIs(t, err, gorm.ErrForeignKeyViolated)
}

func TestReminderRepository_FindByAccountWindow(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()

	p := seedPatient(t, db, "Ana", "001", time.Now().UTC())
	user := &entity.User{Email: "ana@example.com", Password: "x", FullName: "Ana", RoleID: entity.RoleIDPatient, IsActive: true}
	require.NoError(t, db.Create(user).Error)
	account := &entity.PortalAccount{UserID: user.ID, PatientID: p.ID}
	require.NoError(t, NewPortalAccountRepository().Create(ctx, db, account))

	repo := NewReminderRepository()
	for _, at := range []time.Time{
		time.Date(2024, 6, 14, 23, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 15, 20, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC),
	} {
		require.NoError(t, repo.Create(ctx, db, &entity.Reminder{
			PortalAccountID: account.ID,
			Title:           "Vitamina",
			Type:            entity.ReminderTypeVitamin,
			RemindAt:        at,
			Active:          true,
		}))
	}

	reminders, err := repo.FindByAccount(ctx, db, account.ID, &entity.ReminderFilter{
		Window: entity.TimeWindow{From: day(2024, 6, 15), Until: day(2024, 6, 16)},
	})
	require.NoError(t, err)
	require.Len(t, reminders, 2)
	assert.Equal(t, 8, reminders[0].RemindAt.UTC().Hour())
	assert.Equal(t, 20, reminders[1].RemindAt.UTC().Hour())
}

func TestReportRepository_CountExamsByType(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()
	repo := NewReportRepository()

	p := seedPatient(t, db, "Ana", "001", time.Now().UTC())
	seedExam(t, db, p.ID, "Ultrasound", day(2024, 5, 1))
	seedExam(t, db, p.ID, "Ultrasound", day(2024, 6, 1))
	seedExam(t, db, p.ID, "Blood count", day(2024, 6, 2))
	seedExam(t, db, p.ID, "Urine", day(2024, 6, 3))

	all, err := repo.CountExamsByType(ctx, db, entity.DateRange{}, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, entity.GroupCount{Key: "Ultrasound", Total: 2}, all[0])
	assert.Equal(t, "Blood count", all[1].Key)
	assert.Equal(t, "Urine", all[2].Key)

	june, err := repo.CountExamsByType(ctx, db, entity.DateRange{Start: day(2024, 6, 1), End: day(2024, 6, 2)}, 1)
	require.NoError(t, err)
	require.Len(t, june, 1)
	assert.Equal(t, "Blood count", june[0].Key)
	assert.Equal(t, int64(1), june[0].Total)

	total, err := repo.CountExamsIn(ctx, db, entity.DateRange{Start: day(2024, 6, 1), End: day(2024, 6, 3)})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestReportRepository_PatientsDue(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	ctx := context.Background()
	repo := NewReportRepository()

	for i, due := range []time.Time{day(2024, 7, 1), day(2024, 6, 20), day(2024, 9, 1)} {
		p := seedPatient(t, db, "Patient", string(rune('a'+i)), time.Now().UTC())
		d := due
		p.DueDate = &d
		require.NoError(t, NewPatientRepository().Update(ctx, db, p))
	}
	seedPatient(t, db, "No due date", "z", time.Now().UTC())

	window := entity.DateRange{Start: day(2024, 6, 15), End: day(2024, 7, 15)}
	patients, err := repo.FindPatientsDue(ctx, db, window)
	require.NoError(t, err)
	require.Len(t, patients, 2)
	assert.True(t, patients[0].DueDate.Equal(day(2024, 6, 20)))
	assert.True(t, patients[1].DueDate.Equal(day(2024, 7, 1)))

	count, err := repo.CountPatientsDue(ctx, db, window)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
