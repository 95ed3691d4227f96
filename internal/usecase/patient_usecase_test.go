package usecase

import (
	"context"
	"testing"
	"time"

	"prenatal-care-api/internal/delivery/dto"
	"prenatal-care-api/internal/domain/entity"
	"prenatal-care-api/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPatientRequest(nationalID string) *dto.CreatePatientRequest {
	return &dto.CreatePatientRequest{
		Name:        "Maria Souza",
		DateOfBirth: "1995-04-20",
		NationalID:  nationalID,
		Address:     "Rua das Flores, 12",
		Phone:       "11988887777",
	}
}

func TestCreatePatient_DerivesDueDate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	staff := env.users.create(t, entity.RoleIDStaff)

	req := newPatientRequest("123")
	req.LastMenstrualPeriod = ptr("2024-01-01")

	created, err := env.patients.CreatePatient(ctx, staff, req)
	require.NoError(t, err)
	require.NotNil(t, created.DueDate)
	assert.Equal(t, "2024-10-07", *created.DueDate)
	require.NotNil(t, created.GestationalWeeks)
	assert.Equal(t, 23, *created.GestationalWeeks)

	var logs []entity.AuditLog
	require.NoError(t, env.db.Where("action = ?", entity.AuditActionPatientCreate).Find(&logs).Error)
	assert.Len(t, logs, 1)
}

func TestCreatePatient_DuplicateNationalID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	staff := env.users.create(t, entity.RoleIDStaff)

	_, err := env.patients.CreatePatient(ctx, staff, newPatientRequest("123"))
	require.NoError(t, err)

	_, err = env.patients.CreatePatient(ctx, staff, newPatientRequest("123"))
	assert.ErrorIs(t, err, ErrNationalIDExists)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(err))
}

func TestCreatePatient_RejectsBlankNationalID(t *testing.T) {
	env := newTestEnv(t)
	staff := env.users.create(t, entity.RoleIDStaff)

	_, err := env.patients.CreatePatient(context.Background(), staff, newPatientRequest("   "))
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestCreatePatient_InvalidDate(t *testing.T) {
	env := newTestEnv(t)
	staff := env.users.create(t, entity.RoleIDStaff)

	req := newPatientRequest("123")
	req.DateOfBirth = "20/04/1995"

	_, err := env.patients.CreatePatient(context.Background(), staff, req)
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestUpdatePatient_KeepsDueDateWhenLMPChanges(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	staff := env.users.create(t, entity.RoleIDStaff)

	req := newPatientRequest("123")
	req.LastMenstrualPeriod = ptr("2024-01-01")
	created, err := env.patients.CreatePatient(ctx, staff, req)
	require.NoError(t, err)

	updated, err := env.patients.UpdatePatient(ctx, staff, created.ID, &dto.UpdatePatientRequest{
		LastMenstrualPeriod: ptr("2024-02-01"),
		Phone:               ptr("11900000000"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-10-07", *updated.DueDate)
	assert.Equal(t, "2024-02-01", *updated.LastMenstrualPeriod)
	assert.Equal(t, "11900000000", updated.Phone)
	assert.Equal(t, created.Name, updated.Name)

	reloaded, err := env.patients.GetPatient(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-10-07", *reloaded.DueDate)
}

func TestUpdatePatient_ClearDueDateDerivesAgain(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	staff := env.users.create(t, entity.RoleIDStaff)

	req := newPatientRequest("123")
	req.LastMenstrualPeriod = ptr("2024-01-01")
	created, err := env.patients.CreatePatient(ctx, staff, req)
	require.NoError(t, err)

	updated, err := env.patients.UpdatePatient(ctx, staff, created.ID, &dto.UpdatePatientRequest{
		LastMenstrualPeriod: ptr("2024-02-01"),
		ClearDueDate:        true,
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-11-07", *updated.DueDate)
}

func TestUpdatePatient_DuplicateNationalID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	staff := env.users.create(t, entity.RoleIDStaff)

	env.createPatient(t, "111", nil)
	other := env.createPatient(t, "222", nil)

	_, err := env.patients.UpdatePatient(ctx, staff, other.ID, &dto.UpdatePatientRequest{NationalID: ptr("111")})
	assert.ErrorIs(t, err, ErrNationalIDExists)
}

func TestUpdatePatient_NotFound(t *testing.T) {
	env := newTestEnv(t)
	staff := env.users.create(t, entity.RoleIDStaff)

	_, err := env.patients.UpdatePatient(context.Background(), staff, 999, &dto.UpdatePatientRequest{Name: ptr("x")})
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestListPatients_SearchAndPaging(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i, name := range []string{"Ana Lima", "Beatriz Costa", "Ana Paula"} {
		env.createPatient(t, string(rune('a'+i)), func(p *entity.Patient) {
			p.Name = name
			p.RegisteredAt = testNow.Add(time.Duration(i) * time.Hour)
		})
	}

	list, err := env.patients.ListPatients(ctx, &dto.ListPatientsRequest{Search: "ana"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), list.Total)
	require.Len(t, list.Patients, 2)
	assert.Equal(t, "Ana Paula", list.Patients[0].Name)
	assert.Equal(t, defaultPageLimit, list.Limit)

	page, err := env.patients.ListPatients(ctx, &dto.ListPatientsRequest{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	require.Len(t, page.Patients, 1)
	assert.Equal(t, "Ana Lima", page.Patients[0].Name)
}

func TestDeletePatient_RemovesDependents(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	staff := env.users.create(t, entity.RoleIDStaff)

	userID, patient := env.linkedUser(t, "123")
	_, err := env.visits.CreateVisit(ctx, staff, patient.ID, &dto.CreateVisitRequest{
		Date: "2024-06-01", Location: "UBS", Provider: "Dr. Ana", Weight: dec("60"), BloodPressure: "120/80",
	})
	require.NoError(t, err)
	_, err = env.reminders.CreateReminder(ctx, userID, &dto.CreateReminderRequest{Title: "Vitamin", RemindAt: ptr(testNow)})
	require.NoError(t, err)

	require.NoError(t, env.patients.DeletePatient(ctx, staff, patient.ID))

	_, err = env.patients.GetPatient(ctx, patient.ID)
	assert.ErrorIs(t, err, ErrPatientNotFound)

	var visits, accounts, reminders int64
	env.db.Model(&entity.Visit{}).Count(&visits)
	env.db.Model(&entity.PortalAccount{}).Count(&accounts)
	env.db.Model(&entity.Reminder{}).Count(&reminders)
	assert.Zero(t, visits)
	assert.Zero(t, accounts)
	assert.Zero(t, reminders)

	_, err = env.portal.GetPage(ctx, userID)
	assert.ErrorIs(t, err, ErrNoPortalAccount)

	assert.ErrorIs(t, env.patients.DeletePatient(ctx, staff, patient.ID), ErrPatientNotFound)
}
