package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestPatient_EnsureDueDate(t *testing.T) {
	lmp := day(2024, time.January, 1)
	p := &Patient{LastMenstrualPeriod: &lmp}

	p.EnsureDueDate()

	require.NotNil(t, p.DueDate)
	assert.Equal(t, day(2024, time.October, 7), *p.DueDate)
}

func TestPatient_EnsureDueDateKeepsExistingValue(t *testing.T) {
	lmp := day(2024, time.January, 1)
	p := &Patient{LastMenstrualPeriod: &lmp}
	p.EnsureDueDate()
	first := *p.DueDate

	edited := day(2024, time.February, 1)
	p.LastMenstrualPeriod = &edited
	p.EnsureDueDate()

	assert.Equal(t, first, *p.DueDate)
}

func TestPatient_EnsureDueDateAfterClearing(t *testing.T) {
	lmp := day(2024, time.January, 1)
	p := &Patient{LastMenstrualPeriod: &lmp}
	p.EnsureDueDate()

	edited := day(2024, time.February, 1)
	p.LastMenstrualPeriod = &edited
	p.DueDate = nil
	p.EnsureDueDate()

	require.NotNil(t, p.DueDate)
	assert.Equal(t, edited.AddDate(0, 0, 280), *p.DueDate)
}

func TestPatient_EnsureDueDateWithoutLastMenstrualPeriod(t *testing.T) {
	p := &Patient{}
	p.EnsureDueDate()
	assert.Nil(t, p.DueDate)
}

func TestPatient_GestationalWeeks(t *testing.T) {
	lmp := day(2024, time.January, 1)
	p := &Patient{LastMenstrualPeriod: &lmp}

	weeks, ok := p.GestationalWeeks(day(2024, time.March, 1))
	assert.True(t, ok)
	assert.Equal(t, 8, weeks)

	_, ok = (&Patient{}).GestationalWeeks(day(2024, time.March, 1))
	assert.False(t, ok)
}
