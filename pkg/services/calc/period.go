package calc

import (
	"fmt"
	"strings"
	"time"
)

// WeekEndingSunday returns the Sunday on or before ref as YYYY-MM-DD.
func WeekEndingSunday(ref time.Time) string {
	return ref.AddDate(0, 0, -int(ref.Weekday())).Format(time.DateOnly)
}

// WeekStart returns the Monday that opens the week ending on weekEnding.
func WeekStart(weekEnding string) string {
	end, err := parseDate(weekEnding)
	if err != nil {
		return ""
	}
	return end.AddDate(0, 0, -6).Format(time.DateOnly)
}

// PeriodLabel renders a week as "6 Oct – 12 Oct 2025". It returns "" when
// weekEnding is not a date.
func PeriodLabel(weekEnding string) string {
	end, err := parseDate(weekEnding)
	if err != nil {
		return ""
	}
	start := end.AddDate(0, 0, -6)
	return fmt.Sprintf("%d %s – %d %s %d",
		start.Day(), start.Format("Jan"),
		end.Day(), end.Format("Jan"),
		end.Year())
}

// MonthLabel renders ref as "October 2025".
func MonthLabel(ref time.Time) string {
	return ref.Format("January 2006")
}

// DateRangeFilter keeps the rows whose date falls within [start, end].
// Rows with a missing or malformed date are dropped.
func DateRangeFilter[T any](rows []T, date func(T) string, start, end string) []T {
	from, err := parseDate(start)
	if err != nil {
		return []T{}
	}
	to, err := parseDate(end)
	if err != nil {
		return []T{}
	}

	out := make([]T, 0, len(rows))
	for _, r := range rows {
		d, err := parseDate(date(r))
		if err != nil {
			continue
		}
		if !d.Before(from) && !d.After(to) {
			out = append(out, r)
		}
	}
	return out
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(time.DateOnly, strings.TrimSpace(s))
}
