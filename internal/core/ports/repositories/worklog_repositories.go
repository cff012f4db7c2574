package repositories

import (
	"context"

	"github.com/SscSPs/attendance_bot/internal/core/domain"
)

// WorkLogReader defines read operations for attendance rows
type WorkLogReader interface {
	// ListEntriesByDate returns every entry for the date with RowIndex set to its scan position.
	ListEntriesByDate(ctx context.Context, date string) ([]domain.WorkLogEntry, error)
}

// WorkLogWriter defines write operations for attendance rows
type WorkLogWriter interface {
	// AppendCheckIn appends a new entry for (userID, date) with the check-in time set.
	// The sequence id is assigned by the repository and returned in the entry.
	AppendCheckIn(ctx context.Context, userID, date, checkInTime string) (*domain.WorkLogEntry, error)

	// SetCheckOut writes the check-out time into the row found at rowIndex.
	SetCheckOut(ctx context.Context, rowIndex int, checkOutTime string) error
}

// WorkLogRepositoryFacade combines all work log repository interfaces
type WorkLogRepositoryFacade interface {
	WorkLogReader
	WorkLogWriter
}
