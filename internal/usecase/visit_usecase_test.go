package usecase

import (
	"context"
	"strings"
	"testing"

	"prenatal-care-api/internal/delivery/dto"
	"prenatal-care-api/internal/domain/entity"
	"prenatal-care-api/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVisitRequest(date string, weight string) *dto.CreateVisitRequest {
	return &dto.CreateVisitRequest{
		Date:          date,
		Location:      "UBS Centro",
		Provider:      "Dr. Ana",
		Weight:        dec(weight),
		BloodPressure: "120/80",
	}
}

func TestCreateVisit_PatientMustExist(t *testing.T) {
	env := newTestEnv(t)
	staff := env.users.create(t, entity.RoleIDStaff)

	_, err := env.visits.CreateVisit(context.Background(), staff, 42, newVisitRequest("2024-06-01", "60"))
	assert.ErrorIs(t, err, ErrPatientNotFound)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
}

func TestCreateVisit_RejectsNonPositiveMeasures(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	staff := env.users.create(t, entity.RoleIDStaff)
	patient := env.createPatient(t, "123", nil)

	_, err := env.visits.CreateVisit(ctx, staff, patient.ID, newVisitRequest("2024-06-01", "0"))
	assert.ErrorIs(t, err, ErrInvalidWeight)

	req := newVisitRequest("2024-06-01", "60")
	req.UterineHeight = dec("-1")
	_, err = env.visits.CreateVisit(ctx, staff, patient.ID, req)
	assert.ErrorIs(t, err, ErrInvalidUterineHeight)
}

func TestVisits_ListNewestFirstAndScopedByPatient(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	staff := env.users.create(t, entity.RoleIDStaff)
	patient := env.createPatient(t, "123", nil)
	other := env.createPatient(t, "456", nil)

	first, err := env.visits.CreateVisit(ctx, staff, patient.ID, newVisitRequest("2024-05-01", "60"))
	require.NoError(t, err)
	_, err = env.visits.CreateVisit(ctx, staff, patient.ID, newVisitRequest("2024-06-01", "61.5"))
	require.NoError(t, err)

	visits, err := env.visits.ListVisits(ctx, patient.ID)
	require.NoError(t, err)
	require.Len(t, visits, 2)
	assert.Equal(t, "2024-06-01", visits[0].Date)
	assert.Equal(t, "61.5", visits[0].Weight.String())

	_, err = env.visits.GetVisit(ctx, other.ID, first.ID)
	assert.ErrorIs(t, err, ErrVisitNotFound)

	_, err = env.visits.ListVisits(ctx, 999)
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestUpdateVisit_Partial(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	staff := env.users.create(t, entity.RoleIDStaff)
	patient := env.createPatient(t, "123", nil)

	created, err := env.visits.CreateVisit(ctx, staff, patient.ID, newVisitRequest("2024-06-01", "60"))
	require.NoError(t, err)

	updated, err := env.visits.UpdateVisit(ctx, staff, patient.ID, created.ID, &dto.UpdateVisitRequest{
		BloodPressure:  ptr("110/70"),
		FetalHeartRate: ptr(140),
	})
	require.NoError(t, err)
	assert.Equal(t, "110/70", updated.BloodPressure)
	assert.Equal(t, 140, *updated.FetalHeartRate)
	assert.Equal(t, "Dr. Ana", updated.Provider)
	assert.True(t, updated.Weight.Equal(*dec("60")))

	_, err = env.visits.UpdateVisit(ctx, staff, patient.ID, created.ID, &dto.UpdateVisitRequest{Weight: dec("-3")})
	assert.ErrorIs(t, err, ErrInvalidWeight)
}

func TestDeleteVisit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	staff := env.users.create(t, entity.RoleIDStaff)
	patient := env.createPatient(t, "123", nil)
	other := env.createPatient(t, "456", nil)

	created, err := env.visits.CreateVisit(ctx, staff, patient.ID, newVisitRequest("2024-06-01", "60"))
	require.NoError(t, err)

	assert.ErrorIs(t, env.visits.DeleteVisit(ctx, staff, other.ID, created.ID), ErrVisitNotFound)
	require.NoError(t, env.visits.DeleteVisit(ctx, staff, patient.ID, created.ID))
	assert.ErrorIs(t, env.visits.DeleteVisit(ctx, staff, patient.ID, created.ID), ErrVisitNotFound)
}

func TestExams_CRUD(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	staff := env.users.create(t, entity.RoleIDStaff)
	patient := env.createPatient(t, "123", nil)

	_, err := env.exams.CreateExam(ctx, staff, 999, &dto.CreateExamRequest{Date: "2024-06-01", ExamType: "Hemograma", Result: "ok"})
	assert.ErrorIs(t, err, ErrPatientNotFound)

	created, err := env.exams.CreateExam(ctx, staff, patient.ID, &dto.CreateExamRequest{
		Date:     "2024-06-01",
		ExamType: " Hemograma ",
		Result:   "Normal",
	})
	require.NoError(t, err)
	assert.Equal(t, "Hemograma", created.ExamType)

	updated, err := env.exams.UpdateExam(ctx, staff, patient.ID, created.ID, &dto.UpdateExamRequest{
		Result: ptr(strings.Repeat("a", 10)),
	})
	require.NoError(t, err)
	assert.Equal(t, "aaaaaaaaaa", updated.Result)
	assert.Equal(t, "2024-06-01", updated.Date)

	exams, err := env.exams.ListExams(ctx, patient.ID)
	require.NoError(t, err)
	assert.Len(t, exams, 1)

	require.NoError(t, env.exams.DeleteExam(ctx, staff, patient.ID, created.ID))
	_, err = env.exams.GetExam(ctx, patient.ID, created.ID)
	assert.ErrorIs(t, err, ErrExamNotFound)

	var actions []string
	require.NoError(t, env.db.Model(&entity.AuditLog{}).Order("id").Pluck("action", &actions).Error)
	assert.Equal(t, []string{entity.AuditActionExamCreate, entity.AuditActionExamUpdate, entity.AuditActionExamDelete}, actions)
}
