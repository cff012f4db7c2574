package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/attendance_bot/internal/apperrors"
	"github.com/SscSPs/attendance_bot/internal/core/domain"
	portsrepo "github.com/SscSPs/attendance_bot/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/attendance_bot/internal/core/ports/services"
)

// attendanceService implements the AttendanceSvcFacade interface
type attendanceService struct {
	BaseService
	workLogRepo portsrepo.WorkLogRepositoryFacade
	now         func() time.Time
	locks       *keyedLock
}

// AttendanceOption is a functional option for configuring the attendance service
type AttendanceOption func(*attendanceService)

// WithClock replaces time.Now, used to pin the calendar day in tests.
func WithClock(now func() time.Time) AttendanceOption {
	return func(s *attendanceService) {
		s.now = now
	}
}

// NewAttendanceService creates a new attendance service with the provided options
func NewAttendanceService(repo portsrepo.WorkLogRepositoryFacade, options ...AttendanceOption) portssvc.AttendanceSvcFacade {
	svc := &attendanceService{
		workLogRepo: repo,
		now:         time.Now,
		locks:       newKeyedLock(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AttendanceSvcFacade = (*attendanceService)(nil)

// lockDay serialises ledger operations for one user on one day.
func (s *attendanceService) lockDay(userID, date string) func() {
	return s.locks.Lock(userID + "|" + date)
}

// findOpenEntry returns the user's first entry of the day that carries a check-in time.
func findOpenEntry(entries []domain.WorkLogEntry, userID string) *domain.WorkLogEntry {
	for i := range entries {
		if entries[i].UserID == userID && entries[i].IsCheckedIn() {
			return &entries[i]
		}
	}
	return nil
}

func (s *attendanceService) CheckIn(ctx context.Context, userID string) (domain.CheckInOutcome, *domain.WorkLogEntry, error) {
	now := s.now()
	date := domain.FormatDate(now)

	unlock := s.lockDay(userID, date)
	defer unlock()

	entries, err := s.workLogRepo.ListEntriesByDate(ctx, date)
	if err != nil {
		s.LogError(ctx, err, "Failed to read work log for check-in",
			slog.String("user_id", userID),
			slog.String("date", date))
		return 0, nil, fmt.Errorf("failed to check in: %w", err)
	}

	if existing := findOpenEntry(entries, userID); existing != nil {
		s.LogDebug(ctx, "User already checked in",
			slog.String("user_id", userID),
			slog.String("date", date),
			slog.String("check_in", existing.CheckInTime))
		return domain.AlreadyCheckedIn, existing, nil
	}

	entry, err := s.workLogRepo.AppendCheckIn(ctx, userID, date, domain.FormatClock(now))
	if err != nil {
		s.LogError(ctx, err, "Failed to append check-in",
			slog.String("user_id", userID),
			slog.String("date", date))
		return 0, nil, fmt.Errorf("failed to check in: %w", err)
	}

	s.LogInfo(ctx, "Check-in recorded",
		slog.String("user_id", userID),
		slog.String("date", date),
		slog.String("check_in", entry.CheckInTime),
		slog.Int64("sequence_id", entry.SequenceID))
	return domain.CheckInRecorded, entry, nil
}

func (s *attendanceService) CheckOut(ctx context.Context, userID string) (domain.CheckOutOutcome, *domain.WorkLogEntry, error) {
	now := s.now()
	date := domain.FormatDate(now)

	unlock := s.lockDay(userID, date)
	defer unlock()

	entries, err := s.workLogRepo.ListEntriesByDate(ctx, date)
	if err != nil {
		s.LogError(ctx, err, "Failed to read work log for check-out",
			slog.String("user_id", userID),
			slog.String("date", date))
		return 0, nil, fmt.Errorf("failed to check out: %w", err)
	}

	entry := findOpenEntry(entries, userID)
	if entry == nil || entry.IsCheckedOut() {
		return domain.NotCheckedInOrAlreadyOut, entry, nil
	}

	checkOut := domain.FormatClock(now)
	if err := s.workLogRepo.SetCheckOut(ctx, entry.RowIndex, checkOut); err != nil {
		s.LogError(ctx, err, "Failed to write check-out",
			slog.String("user_id", userID),
			slog.String("date", date),
			slog.Int("row_index", entry.RowIndex))
		return 0, nil, fmt.Errorf("failed to check out: %w", err)
	}
	entry.CheckOutTime = checkOut

	s.LogInfo(ctx, "Check-out recorded",
		slog.String("user_id", userID),
		slog.String("date", date),
		slog.String("check_out", checkOut))
	return domain.CheckOutRecorded, entry, nil
}

func (s *attendanceService) ListDay(ctx context.Context, date string) ([]domain.WorkLogEntry, error) {
	if date == "" {
		date = domain.FormatDate(s.now())
	}
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", apperrors.ErrValidation)
	}
	entries, err := s.workLogRepo.ListEntriesByDate(ctx, date)
	if err != nil {
		s.LogError(ctx, err, "Failed to list work log", slog.String("date", date))
		return nil, fmt.Errorf("failed to list work log: %w", err)
	}
	if entries == nil {
		entries = []domain.WorkLogEntry{}
	}
	return entries, nil
}
