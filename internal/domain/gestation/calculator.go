// Package gestation holds the date arithmetic behind due dates, gestational age and
// the approximate ages used by reports. All functions are pure and work on calendar
// dates: times are reduced to their date before any difference is taken.
package gestation

import (
	"fmt"
	"time"
)

const (
	// PregnancyDays is the span from last menstrual period to estimated due date (40 weeks).
	PregnancyDays = 280
	daysPerWeek   = 7
	daysPerYear   = 365
)

// DateOf returns midnight UTC of the calendar date t falls on in its own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from `from` to `to`.
func DaysBetween(from, to time.Time) int {
	return int(DateOf(to).Sub(DateOf(from)).Hours() / 24)
}

// DueDate returns the estimated delivery date for a last menstrual period.
func DueDate(lastMenstrualPeriod time.Time) time.Time {
	return DateOf(lastMenstrualPeriod).AddDate(0, 0, PregnancyDays)
}

// WeeksAt returns completed gestational weeks on asOf. ok is false when the last
// menstrual period is unknown.
func WeeksAt(lastMenstrualPeriod *time.Time, asOf time.Time) (weeks int, ok bool) {
	if lastMenstrualPeriod == nil || lastMenstrualPeriod.IsZero() {
		return 0, false
	}
	return floorDiv(DaysBetween(*lastMenstrualPeriod, asOf), daysPerWeek), true
}

// WeeksAtDueDate is WeeksAt evaluated on the projected due date.
func WeeksAtDueDate(lastMenstrualPeriod *time.Time, dueDate time.Time) (int, bool) {
	return WeeksAt(lastMenstrualPeriod, dueDate)
}

// AgeYears approximates age as whole 365-day years.
func AgeYears(dateOfBirth, asOf time.Time) int {
	return floorDiv(DaysBetween(dateOfBirth, asOf), daysPerYear)
}

// WeekKey labels a date as "YYYY-Www": calendar year plus ISO-8601 week number.
func WeekKey(d time.Time) string {
	_, week := d.ISOWeek()
	return fmt.Sprintf("%d-W%02d", d.Year(), week)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
