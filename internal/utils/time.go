package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/quantumlife/internal/constants"
)

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// Today returns today's date string (YYYY-MM-DD) in loc.
func Today(now time.Time, loc *time.Location) string {
	return now.In(loc).Format(constants.DateFormat)
}

// ParseDate parses a date string (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, strings.TrimSpace(dateStr))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", dateStr)
	}
	return t, nil
}

// ParseDateTimeInLocation parses "YYYY-MM-DDTHH:MM" or "YYYY-MM-DD HH:MM" in loc.
// RFC 3339 strings keep their own offset.
func ParseDateTimeInLocation(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	normalized := strings.Replace(s, " ", "T", 1)
	t, err := time.ParseInLocation(constants.DateTimeFormat, normalized, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date and time %q (expected YYYY-MM-DD HH:MM)", s)
	}
	return t, nil
}

// CombineDateAndTime combines a date string (YYYY-MM-DD) and time string (HH:MM)
// into a single time.Time in the specified timezone.
func CombineDateAndTime(dateStr, timeStr string, loc *time.Location) (time.Time, error) {
	date, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %w", err)
	}

	timeOfDay, err := time.Parse(constants.TimeFormat, timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format: %w", err)
	}

	return time.Date(
		date.Year(), date.Month(), date.Day(),
		timeOfDay.Hour(), timeOfDay.Minute(), 0, 0,
		loc,
	), nil
}

// FormatDateTime renders t in loc for display.
func FormatDateTime(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return "-"
	}
	return t.In(loc).Format(constants.DisplayDateTimeFormat)
}

// FormatDuration renders minutes as "1h 30m".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	h, m := minutes/60, minutes%60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// RelativeTime describes t relative to now, e.g. "in 5m" or "2h ago".
func RelativeTime(t, now time.Time) string {
	d := t.Sub(now)
	past := d < 0
	if past {
		d = -d
	}

	var s string
	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		s = fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 48*time.Hour:
		s = fmt.Sprintf("%dh", int(d.Hours()))
	default:
		s = fmt.Sprintf("%dd", int(d.Hours()/24))
	}
	if past {
		return s + " ago"
	}
	return "in " + s
}
