package usecase

import (
	"time"

	"prenatal-care-api/internal/domain/entity"
)

const (
	defaultReportDays = 30
	trendMonths       = 6
)

// trailingMonths returns n month ranges ending with the month of firstOfMonth, in
// chronological order. Each earlier month is found by stepping back 30 days per
// position from firstOfMonth and rebasing to the first of the month reached, so a
// month can repeat or be skipped around short and long months.
func trailingMonths(firstOfMonth time.Time, n int) []entity.DateRange {
	months := make([]entity.DateRange, n)
	for i := 0; i < n; i++ {
		shifted := firstOfMonth.AddDate(0, 0, -30*i)
		start := time.Date(shifted.Year(), shifted.Month(), 1, 0, 0, 0, 0, time.UTC)
		months[n-1-i] = entity.DateRange{
			Start: start,
			End:   start.AddDate(0, 1, -1),
		}
	}
	return months
}

func firstOfMonth(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// resolvePeriod reads an inclusive date range. When either bound is missing the
// trailing 30 days up to today are used.
func resolvePeriod(start, end string, day time.Time) (entity.DateRange, error) {
	if start == "" || end == "" {
		return entity.DateRange{
			Start: day.AddDate(0, 0, -defaultReportDays),
			End:   day,
		}, nil
	}

	from, err := parseDate(start)
	if err != nil {
		return entity.DateRange{}, err
	}
	to, err := parseDate(end)
	if err != nil {
		return entity.DateRange{}, err
	}
	if from.After(to) {
		return entity.DateRange{}, ErrInvalidDateRange
	}
	return entity.DateRange{Start: from, End: to}, nil
}

// truncateText shortens s to limit characters followed by "...".
func truncateText(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
