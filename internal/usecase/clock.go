package usecase

import (
	"time"

	"prenatal-care-api/internal/domain/entity"
	"prenatal-care-api/internal/domain/gestation"
)

// Clock supplies the current instant in the application timezone.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type locationClock struct {
	loc *time.Location
}

func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return locationClock{loc: loc}
}

func (c locationClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c locationClock) Location() *time.Location {
	return c.loc
}

// today is the current calendar date as UTC midnight.
func today(c Clock) time.Time {
	return gestation.DateOf(c.Now())
}

// dayWindow converts an inclusive range of calendar dates into the half-open span
// of instants those days cover in loc.
func dayWindow(start, end time.Time, loc *time.Location) entity.TimeWindow {
	return entity.TimeWindow{
		From:  time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc),
		Until: time.Date(end.Year(), end.Month(), end.Day()+1, 0, 0, 0, 0, loc),
	}
}

const dateLayout = "2006-01-02"

// parseDate reads a YYYY-MM-DD string as UTC midnight.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseOptionalWindow returns the day window for start..end when both are set, and
// a zero window otherwise.
func parseOptionalWindow(start, end string, loc *time.Location) (entity.TimeWindow, error) {
	if start == "" || end == "" {
		return entity.TimeWindow{}, nil
	}
	from, err := parseDate(start)
	if err != nil {
		return entity.TimeWindow{}, err
	}
	to, err := parseDate(end)
	if err != nil {
		return entity.TimeWindow{}, err
	}
	if from.After(to) {
		return entity.TimeWindow{}, ErrInvalidDateRange
	}
	return dayWindow(from, to, loc), nil
}
