package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// PreviousDay returns the YYYY-MM-DD string one calendar day before the
// given date string. A date that fails to parse is returned unchanged.
func PreviousDay(date string) string {
	parsed, err := ParseDate(date)
	if err != nil {
		return date
	}
	return FormatDate(parsed.AddDate(0, 0, -1))
}
