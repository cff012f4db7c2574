package domain

import "time"

// WorkLogEntry is one user's attendance row for one calendar day.
type WorkLogEntry struct {
	SequenceID   int64  `json:"sequenceID"`
	UserID       string `json:"userID"`
	Date         string `json:"date"`         // YYYY-MM-DD
	CheckInTime  string `json:"checkInTime"`  // HH:MM, empty when unset
	CheckOutTime string `json:"checkOutTime"` // HH:MM, empty when unset

	// RowIndex is the zero-based position among data rows at read time.
	RowIndex int `json:"-"`
}

// IsCheckedIn reports whether a check-in time has been recorded.
func (e WorkLogEntry) IsCheckedIn() bool {
	return e.CheckInTime != ""
}

// IsCheckedOut reports whether a check-out time has been recorded.
func (e WorkLogEntry) IsCheckedOut() bool {
	return e.CheckOutTime != ""
}

// WorkedDuration returns the span between check-in and check-out.
// It returns false when either time is missing or unparsable.
func (e WorkLogEntry) WorkedDuration() (time.Duration, bool) {
	if !e.IsCheckedIn() || !e.IsCheckedOut() {
		return 0, false
	}
	in, err := time.Parse(ClockLayout, e.CheckInTime)
	if err != nil {
		return 0, false
	}
	out, err := time.Parse(ClockLayout, e.CheckOutTime)
	if err != nil {
		return 0, false
	}
	if out.Before(in) {
		return 0, false
	}
	return out.Sub(in), true
}

// CheckInOutcome is the business result of a check-in attempt.
type CheckInOutcome int

const (
	CheckInRecorded CheckInOutcome = iota + 1
	AlreadyCheckedIn
)

func (o CheckInOutcome) String() string {
	switch o {
	case CheckInRecorded:
		return "recorded"
	case AlreadyCheckedIn:
		return "already_checked_in"
	default:
		return "unknown"
	}
}

// CheckOutOutcome is the business result of a check-out attempt.
type CheckOutOutcome int

const (
	CheckOutRecorded CheckOutOutcome = iota + 1
	NotCheckedInOrAlreadyOut
)

func (o CheckOutOutcome) String() string {
	switch o {
	case CheckOutRecorded:
		return "recorded"
	case NotCheckedInOrAlreadyOut:
		return "not_checked_in_or_already_out"
	default:
		return "unknown"
	}
}
