package usecase

import (
	"context"
	"testing"
	"time"

	"prenatal-care-api/internal/delivery/dto"
	"prenatal-care-api/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecords_OtherAccountIsNotFound(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	owner, _ := env.linkedUser(t, "123")
	intruder, _ := env.linkedUser(t, "456")

	appointment, err := env.appointments.CreateAppointment(ctx, owner, &dto.CreateAppointmentRequest{
		Title: "Ultrassom", ScheduledAt: ptr(testNow), Location: "Clinica",
	})
	require.NoError(t, err)
	entry, err := env.logEntries.CreateLogEntry(ctx, owner, &dto.CreateLogEntryRequest{
		Category: "symptoms", Title: "Enjoo", Description: "manha", RecordedAt: ptr(testNow),
	})
	require.NoError(t, err)
	reminder, err := env.reminders.CreateReminder(ctx, owner, &dto.CreateReminderRequest{
		Title: "Acido folico", RemindAt: ptr(testNow),
	})
	require.NoError(t, err)

	_, err = env.appointments.GetAppointment(ctx, intruder, appointment.ID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	_, err = env.appointments.UpdateAppointment(ctx, intruder, appointment.ID, &dto.UpdateAppointmentRequest{Title: ptr("x")})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.ErrorIs(t, env.appointments.DeleteAppointment(ctx, intruder, appointment.ID), ErrAppointmentNotFound)

	_, err = env.logEntries.GetLogEntry(ctx, intruder, entry.ID)
	assert.ErrorIs(t, err, ErrLogEntryNotFound)
	_, err = env.logEntries.UpdateLogEntry(ctx, intruder, entry.ID, &dto.UpdateLogEntryRequest{Title: ptr("x")})
	assert.ErrorIs(t, err, ErrLogEntryNotFound)
	assert.ErrorIs(t, env.logEntries.DeleteLogEntry(ctx, intruder, entry.ID), ErrLogEntryNotFound)

	_, err = env.reminders.GetReminder(ctx, intruder, reminder.ID)
	assert.ErrorIs(t, err, ErrReminderNotFound)
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	_, err = env.reminders.UpdateReminder(ctx, intruder, reminder.ID, &dto.UpdateReminderRequest{Completed: ptr(true)})
	assert.ErrorIs(t, err, ErrReminderNotFound)
	assert.ErrorIs(t, env.reminders.DeleteReminder(ctx, intruder, reminder.ID), ErrReminderNotFound)

	own, err := env.reminders.GetReminder(ctx, owner, reminder.ID)
	require.NoError(t, err)
	assert.False(t, own.Completed)

	list, err := env.appointments.ListAppointments(ctx, intruder, &dto.ListAppointmentsRequest{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAppointments_DefaultsFiltersAndOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID, _ := env.linkedUser(t, "123")

	later, err := env.appointments.CreateAppointment(ctx, userID, &dto.CreateAppointmentRequest{
		Title: "Retorno", ScheduledAt: ptr(date(2024, time.July, 10).Add(9 * time.Hour)), Location: "UBS",
	})
	require.NoError(t, err)
	assert.Equal(t, "prenatal", later.AppointmentType)
	assert.Equal(t, "Prenatal", later.TypeLabel)
	assert.Equal(t, "scheduled", later.Status)

	_, err = env.appointments.CreateAppointment(ctx, userID, &dto.CreateAppointmentRequest{
		Title: "Ultrassom", AppointmentType: "ultrasound", ScheduledAt: ptr(date(2024, time.June, 20).Add(23 * time.Hour)),
		Location: "Clinica", Status: "confirmed",
	})
	require.NoError(t, err)

	all, err := env.appointments.ListAppointments(ctx, userID, &dto.ListAppointmentsRequest{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Ultrassom", all[0].Title)

	byStatus, err := env.appointments.ListAppointments(ctx, userID, &dto.ListAppointmentsRequest{Status: "scheduled"})
	require.NoError(t, err)
	require.Len(t, byStatus, 1)
	assert.Equal(t, later.ID, byStatus[0].ID)

	byDay, err := env.appointments.ListAppointments(ctx, userID, &dto.ListAppointmentsRequest{Start: "2024-06-20", End: "2024-06-20"})
	require.NoError(t, err)
	require.Len(t, byDay, 1)
	assert.Equal(t, "Ultrassom", byDay[0].Title)

	onlyStart, err := env.appointments.ListAppointments(ctx, userID, &dto.ListAppointmentsRequest{Start: "2024-07-01"})
	require.NoError(t, err)
	assert.Len(t, onlyStart, 2)

	_, err = env.appointments.ListAppointments(ctx, userID, &dto.ListAppointmentsRequest{Start: "2024-07-02", End: "2024-07-01"})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = env.appointments.CreateAppointment(ctx, userID, &dto.CreateAppointmentRequest{
		Title: "x", AppointmentType: "surgery", ScheduledAt: ptr(testNow), Location: "x",
	})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestUpdateAppointment_Partial(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID, _ := env.linkedUser(t, "123")

	created, err := env.appointments.CreateAppointment(ctx, userID, &dto.CreateAppointmentRequest{
		Title: "Consulta", ScheduledAt: ptr(testNow), Location: "UBS", Provider: ptr("Dra. Lucia"),
	})
	require.NoError(t, err)

	updated, err := env.appointments.UpdateAppointment(ctx, userID, created.ID, &dto.UpdateAppointmentRequest{
		Status: ptr("completed"),
	})
	require.NoError(t, err)
	assert.Equal(t, "completed", updated.Status)
	assert.Equal(t, "Completed", updated.StatusLabel)
	assert.Equal(t, "Consulta", updated.Title)
	assert.Equal(t, "Dra. Lucia", *updated.Provider)

	require.NoError(t, env.appointments.DeleteAppointment(ctx, userID, created.ID))
	_, err = env.appointments.GetAppointment(ctx, userID, created.ID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestLogEntries_FiltersAndOrder(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID, _ := env.linkedUser(t, "123")

	create := func(category string, at time.Time, title string) *dto.LogEntryResponse {
		entry, err := env.logEntries.CreateLogEntry(ctx, userID, &dto.CreateLogEntryRequest{
			Category: category, Title: title, Description: "d", RecordedAt: ptr(at),
		})
		require.NoError(t, err)
		return entry
	}
	create("weight", date(2024, time.June, 1).Add(8*time.Hour), "first")
	create("mood", date(2024, time.June, 10).Add(8*time.Hour), "second")
	create("weight", date(2024, time.June, 10).Add(8*time.Hour), "third")

	all, err := env.logEntries.ListLogEntries(ctx, userID, &dto.ListLogEntriesRequest{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"third", "second", "first"}, []string{all[0].Title, all[1].Title, all[2].Title})

	weights, err := env.logEntries.ListLogEntries(ctx, userID, &dto.ListLogEntriesRequest{Category: "weight", Start: "2024-06-10", End: "2024-06-10"})
	require.NoError(t, err)
	require.Len(t, weights, 1)
	assert.Equal(t, "third", weights[0].Title)
	assert.Equal(t, "Weight", weights[0].CategoryLabel)

	updated, err := env.logEntries.UpdateLogEntry(ctx, userID, all[2].ID, &dto.UpdateLogEntryRequest{Important: ptr(true)})
	require.NoError(t, err)
	assert.True(t, updated.Important)
	assert.Equal(t, "first", updated.Title)

	_, err = env.logEntries.CreateLogEntry(ctx, userID, &dto.CreateLogEntryRequest{
		Category: "sleep", Title: "x", Description: "x", RecordedAt: ptr(testNow),
	})
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
}

func TestReminders_DefaultsAndFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID, _ := env.linkedUser(t, "123")

	first, err := env.reminders.CreateReminder(ctx, userID, &dto.CreateReminderRequest{
		Title: "Vitamina", RemindAt: ptr(testNow.Add(time.Hour)),
	})
	require.NoError(t, err)
	assert.Equal(t, "other", first.ReminderType)
	assert.True(t, first.Active)
	assert.False(t, first.Completed)

	_, err = env.reminders.CreateReminder(ctx, userID, &dto.CreateReminderRequest{
		Title: "Exame", ReminderType: "exam", RemindAt: ptr(testNow), Active: ptr(false),
	})
	require.NoError(t, err)

	all, err := env.reminders.ListReminders(ctx, userID, &dto.ListRemindersRequest{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Exame", all[0].Title)

	active, err := env.reminders.ListReminders(ctx, userID, &dto.ListRemindersRequest{Active: ptr(true), Completed: ptr(false)})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, first.ID, active[0].ID)

	done, err := env.reminders.UpdateReminder(ctx, userID, first.ID, &dto.UpdateReminderRequest{Completed: ptr(true)})
	require.NoError(t, err)
	assert.True(t, done.Completed)
	assert.Equal(t, "Vitamina", done.Title)

	active, err = env.reminders.ListReminders(ctx, userID, &dto.ListRemindersRequest{Active: ptr(true), Completed: ptr(false)})
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestReminders_DateRangeFilter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	userID, _ := env.linkedUser(t, "123")

	for i, at := range []time.Time{
		date(2024, time.June, 14).Add(23 * time.Hour),
		date(2024, time.June, 15).Add(8 * time.Hour),
		date(2024, time.June, 16).Add(7 * time.Hour),
		date(2024, time.June, 17),
	} {
		_, err := env.reminders.CreateReminder(ctx, userID, &dto.CreateReminderRequest{
			Title: "Vitamina " + string(rune('A'+i)), RemindAt: ptr(at),
		})
		require.NoError(t, err)
	}

	reminders, err := env.reminders.ListReminders(ctx, userID, &dto.ListRemindersRequest{Start: "2024-06-15", End: "2024-06-16"})
	require.NoError(t, err)
	require.Len(t, reminders, 2)
	assert.Equal(t, "Vitamina B", reminders[0].Title)
	assert.Equal(t, "Vitamina C", reminders[1].Title)

	onlyStart, err := env.reminders.ListReminders(ctx, userID, &dto.ListRemindersRequest{Start: "2024-06-15"})
	require.NoError(t, err)
	assert.Len(t, onlyStart, 4)

	_, err = env.reminders.ListReminders(ctx, userID, &dto.ListRemindersRequest{Start: "2024-06-16", End: "2024-06-15"})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}
