package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/attendance_bot/internal/adapters/tabular/memory"
	"github.com/SscSPs/attendance_bot/internal/apperrors"
	"github.com/SscSPs/attendance_bot/internal/core/domain"
	portsrepo "github.com/SscSPs/attendance_bot/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/attendance_bot/internal/core/ports/services"
	"github.com/SscSPs/attendance_bot/internal/core/services"
	"github.com/SscSPs/attendance_bot/internal/repositories/tabular"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// AttendanceServiceTestSuite runs the ledger against the in-memory store.
type AttendanceServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	store   *memory.Store
	now     time.Time
	service portssvc.AttendanceSvcFacade
}

func (suite *AttendanceServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = memory.NewStore()
	suite.Require().NoError(tabular.EnsureSchema(suite.ctx, suite.store))
	suite.now = time.Date(2024, time.January, 10, 9, 0, 0, 0, time.Local)
	repos := tabular.NewRepositoryProvider(suite.store)
	suite.service = services.NewAttendanceService(repos.WorkLogRepo, services.WithClock(func() time.Time { return suite.now }))
}

func TestAttendanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AttendanceServiceTestSuite))
}

func (suite *AttendanceServiceTestSuite) rows() [][]string {
	rows, err := suite.store.ReadAll(suite.ctx, portsrepo.TableWorkLog)
	suite.Require().NoError(err)
	return rows
}

func (suite *AttendanceServiceTestSuite) TestFullDayScenario() {
	outcome, entry, err := suite.service.CheckIn(suite.ctx, "42")
	suite.Require().NoError(err)
	suite.Equal(domain.CheckInRecorded, outcome)
	suite.Equal("09:00", entry.CheckInTime)

	outcome, _, err = suite.service.CheckIn(suite.ctx, "42")
	suite.Require().NoError(err)
	suite.Equal(domain.AlreadyCheckedIn, outcome)

	suite.now = time.Date(2024, time.January, 10, 17, 0, 0, 0, time.Local)
	outOutcome, entry, err := suite.service.CheckOut(suite.ctx, "42")
	suite.Require().NoError(err)
	suite.Equal(domain.CheckOutRecorded, outOutcome)
	worked, ok := entry.WorkedDuration()
	suite.True(ok)
	suite.Equal(8*time.Hour, worked)

	outOutcome, _, err = suite.service.CheckOut(suite.ctx, "42")
	suite.Require().NoError(err)
	suite.Equal(domain.NotCheckedInOrAlreadyOut, outOutcome)

	suite.Equal([][]string{{"1", "42", "2024-01-10", "09:00", "17:00"}}, suite.rows())
}

func (suite *AttendanceServiceTestSuite) TestCheckOutBeforeCheckIn_NoMutation() {
	outcome, entry, err := suite.service.CheckOut(suite.ctx, "42")

	suite.Require().NoError(err)
	suite.Equal(domain.NotCheckedInOrAlreadyOut, outcome)
	suite.Nil(entry)
	suite.Equal(0, suite.store.Writes())
}

func (suite *AttendanceServiceTestSuite) TestCheckOutTargetsOwnRow() {
	_, _, err := suite.service.CheckIn(suite.ctx, "7")
	suite.Require().NoError(err)
	_, _, err = suite.service.CheckIn(suite.ctx, "42")
	suite.Require().NoError(err)

	suite.now = suite.now.Add(8 * time.Hour)
	outcome, _, err := suite.service.CheckOut(suite.ctx, "42")
	suite.Require().NoError(err)
	suite.Equal(domain.CheckOutRecorded, outcome)

	rows := suite.rows()
	suite.Equal("", rows[0][4])
	suite.Equal("17:00", rows[1][4])
}

func (suite *AttendanceServiceTestSuite) TestNewDayAllowsNewCheckIn() {
	_, _, err := suite.service.CheckIn(suite.ctx, "42")
	suite.Require().NoError(err)

	suite.now = suite.now.AddDate(0, 0, 1)
	outcome, entry, err := suite.service.CheckIn(suite.ctx, "42")
	suite.Require().NoError(err)
	suite.Equal(domain.CheckInRecorded, outcome)
	suite.Equal("2024-01-11", entry.Date)
	suite.Equal(int64(2), entry.SequenceID)
}

func (suite *AttendanceServiceTestSuite) TestConcurrentCheckInsRecordOnce() {
	const n = 10
	var wg sync.WaitGroup
	outcomes := make([]domain.CheckInOutcome, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			outcome, _, err := suite.service.CheckIn(suite.ctx, "42")
			suite.NoError(err)
			outcomes[i] = outcome
		}(i)
	}
	wg.Wait()

	recorded := 0
	for _, o := range outcomes {
		if o == domain.CheckInRecorded {
			recorded++
		}
	}
	suite.Equal(1, recorded)
	suite.Len(suite.rows(), 1)
}

func (suite *AttendanceServiceTestSuite) TestListDay() {
	_, _, err := suite.service.CheckIn(suite.ctx, "42")
	suite.Require().NoError(err)

	entries, err := suite.service.ListDay(suite.ctx, "2024-01-10")
	suite.Require().NoError(err)
	suite.Len(entries, 1)

	entries, err = suite.service.ListDay(suite.ctx, "")
	suite.Require().NoError(err)
	suite.Len(entries, 1)

	entries, err = suite.service.ListDay(suite.ctx, "2024-01-11")
	suite.Require().NoError(err)
	suite.Empty(entries)

	_, err = suite.service.ListDay(suite.ctx, "10/01/2024")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestAttendanceService_StoreFault(t *testing.T) {
	ctx := context.Background()
	repo := new(MockWorkLogRepository)
	now := time.Date(2024, time.January, 10, 9, 0, 0, 0, time.Local)
	svc := services.NewAttendanceService(repo, services.WithClock(func() time.Time { return now }))

	storeErr := apperrors.StoreError("read", "WorkLog", errors.New("quota exceeded"))
	repo.On("ListEntriesByDate", ctx, "2024-01-10").Return(nil, storeErr).Twice()

	_, _, err := svc.CheckIn(ctx, "42")
	if !errors.Is(err, apperrors.ErrStore) {
		t.Fatalf("expected store error, got %v", err)
	}
	_, _, err = svc.CheckOut(ctx, "42")
	if !errors.Is(err, apperrors.ErrStore) {
		t.Fatalf("expected store error, got %v", err)
	}
	repo.AssertNotCalled(t, "AppendCheckIn", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
}
