package services

import (
	"context"

	"github.com/SscSPs/attendance_bot/internal/core/domain"
)

// AttendanceLedgerSvc enforces one check-in and one check-out per user per calendar day.
type AttendanceLedgerSvc interface {
	// CheckIn records the start of work for today unless the user already checked in.
	CheckIn(ctx context.Context, userID string) (domain.CheckInOutcome, *domain.WorkLogEntry, error)

	// CheckOut records the end of work for today's open entry.
	CheckOut(ctx context.Context, userID string) (domain.CheckOutOutcome, *domain.WorkLogEntry, error)
}

// AttendanceReaderSvc exposes read access to the ledger.
type AttendanceReaderSvc interface {
	// ListDay returns every entry recorded for date (YYYY-MM-DD).
	ListDay(ctx context.Context, date string) ([]domain.WorkLogEntry, error)
}

// AttendanceSvcFacade combines all attendance service interfaces
type AttendanceSvcFacade interface {
	AttendanceLedgerSvc
	AttendanceReaderSvc
}
