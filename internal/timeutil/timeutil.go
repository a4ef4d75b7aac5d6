package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD) used by upstream APIs.
const DateLayout = "2006-01-02"

// CompactDateLayout is the YYYYMMDD form embedded in navigation tokens and cache keys.
const CompactDateLayout = "20060102"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseCompactDate parses a YYYYMMDD date string.
func ParseCompactDate(value string) (time.Time, error) {
	return time.Parse(CompactDateLayout, value)
}

// FormatCompactDate formats a time as YYYYMMDD in its current location.
func FormatCompactDate(t time.Time) string {
	return t.Format(CompactDateLayout)
}

// Day truncates t to midnight in its own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// TrailingDays returns n calendar days ending at today's date, newest first.
func TrailingDays(today time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	start := Day(today)
	days := make([]time.Time, 0, n)
	for offset := 0; offset < n; offset++ {
		days = append(days, start.AddDate(0, 0, -offset))
	}
	return days
}
