package domain

import "time"

// Layouts used for every date and time cell in the store.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// FormatDate renders t as a calendar day in the process-local timezone.
func FormatDate(t time.Time) string {
	return t.Local().Format(DateLayout)
}

// FormatClock renders t as an HH:MM wall-clock time in the process-local timezone.
func FormatClock(t time.Time) string {
	return t.Local().Format(ClockLayout)
}
