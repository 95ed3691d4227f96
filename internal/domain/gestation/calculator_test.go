package gestation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDueDate(t *testing.T) {
	assert.Equal(t, date(2024, time.October, 7), DueDate(date(2024, time.January, 1)))

	for _, lmp := range []time.Time{
		date(2023, time.February, 28),
		date(2024, time.February, 29),
		date(2025, time.December, 31),
	} {
		assert.Equal(t, lmp.AddDate(0, 0, 280), DueDate(lmp), "lmp %s", lmp)
	}
}

func TestDueDateIgnoresTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	lmp := time.Date(2024, time.January, 1, 23, 30, 0, 0, loc)
	assert.Equal(t, date(2024, time.October, 7), DueDate(lmp))
}

func TestWeeksAt(t *testing.T) {
	lmp := date(2024, time.January, 1)

	weeks, ok := WeeksAt(&lmp, date(2024, time.January, 1))
	assert.True(t, ok)
	assert.Equal(t, 0, weeks)

	weeks, _ = WeeksAt(&lmp, date(2024, time.January, 14))
	assert.Equal(t, 1, weeks)

	weeks, _ = WeeksAt(&lmp, date(2024, time.January, 15))
	assert.Equal(t, 2, weeks)

	weeks, _ = WeeksAt(&lmp, date(2023, time.December, 31))
	assert.Equal(t, -1, weeks)
}

func TestWeeksAtWithoutLastMenstrualPeriod(t *testing.T) {
	_, ok := WeeksAt(nil, date(2024, time.January, 1))
	assert.False(t, ok)

	zero := time.Time{}
	_, ok = WeeksAt(&zero, date(2024, time.January, 1))
	assert.False(t, ok)
}

func TestWeeksAtIsMonotonic(t *testing.T) {
	lmp := date(2024, time.March, 10)
	prev := -1 << 31
	for day := 0; day < 400; day++ {
		weeks, ok := WeeksAt(&lmp, lmp.AddDate(0, 0, day-30))
		assert.True(t, ok)
		assert.GreaterOrEqual(t, weeks, prev)
		prev = weeks
	}
}

func TestWeeksAtDueDate(t *testing.T) {
	lmp := date(2024, time.January, 1)
	weeks, ok := WeeksAtDueDate(&lmp, DueDate(lmp))
	assert.True(t, ok)
	assert.Equal(t, 40, weeks)
}

func TestAgeYears(t *testing.T) {
	assert.Equal(t, 30, AgeYears(date(1994, time.January, 1), date(2024, time.January, 1)))
	// 365-day years drift ahead of birthdays once enough leap days accumulate.
	assert.Equal(t, 30, AgeYears(date(1994, time.January, 10), date(2024, time.January, 3)))
	assert.Equal(t, 29, AgeYears(date(1994, time.January, 10), date(2023, time.December, 31)))
}

func TestDaysBetween(t *testing.T) {
	assert.Equal(t, 3, DaysBetween(date(2024, time.March, 9), date(2024, time.March, 12)))
	assert.Equal(t, -3, DaysBetween(date(2024, time.March, 12), date(2024, time.March, 9)))
}

func TestWeekKey(t *testing.T) {
	assert.Equal(t, "2024-W41", WeekKey(date(2024, time.October, 7)))
	assert.Equal(t, "2024-W01", WeekKey(date(2024, time.January, 1)))
	// calendar year is kept even when the ISO week belongs to the next year
	assert.Equal(t, "2024-W01", WeekKey(date(2024, time.December, 30)))
}
