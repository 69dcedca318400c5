package constants

const (
	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DateTimeFormat is the minute-precision local datetime accepted in forms (YYYY-MM-DDTHH:MM)
	DateTimeFormat = "2006-01-02T15:04"

	// DisplayDateTimeFormat is how datetimes are shown in lists
	DisplayDateTimeFormat = "Jan 2, 2006 15:04"
)
