package services_test

import (
	"context"
	"sync"

	"github.com/SscSPs/attendance_bot/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

// --- Mock WorkLogRepository ---
type MockWorkLogRepository struct {
	mock.Mock
}

func (m *MockWorkLogRepository) ListEntriesByDate(ctx context.Context, date string) ([]domain.WorkLogEntry, error) {
	args := m.Called(ctx, date)
	var entries []domain.WorkLogEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.WorkLogEntry)
	}
	return entries, args.Error(1)
}

func (m *MockWorkLogRepository) AppendCheckIn(ctx context.Context, userID, date, checkInTime string) (*domain.WorkLogEntry, error) {
	args := m.Called(ctx, userID, date, checkInTime)
	var entry *domain.WorkLogEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.WorkLogEntry)
	}
	return entry, args.Error(1)
}

func (m *MockWorkLogRepository) SetCheckOut(ctx context.Context, rowIndex int, checkOutTime string) error {
	args := m.Called(ctx, rowIndex, checkOutTime)
	return args.Error(0)
}

// --- Mock TaskRepository ---
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) ListTasks(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)
	var tasks []domain.Task
	if args.Get(0) != nil {
		tasks = args.Get(0).([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *MockTaskRepository) FindTaskByID(ctx context.Context, taskID int64) (*domain.Task, error) {
	args := m.Called(ctx, taskID)
	var task *domain.Task
	if args.Get(0) != nil {
		task = args.Get(0).(*domain.Task)
	}
	return task, args.Error(1)
}

func (m *MockTaskRepository) SaveTask(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) UpdateTaskStatus(ctx context.Context, taskID int64, status domain.TaskStatus) error {
	args := m.Called(ctx, taskID, status)
	return args.Error(0)
}

// --- Mock ReportRepository ---
type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) ListReports(ctx context.Context) ([]domain.Report, error) {
	args := m.Called(ctx)
	var reports []domain.Report
	if args.Get(0) != nil {
		reports = args.Get(0).([]domain.Report)
	}
	return reports, args.Error(1)
}

func (m *MockReportRepository) FindReportByID(ctx context.Context, reportID int64) (*domain.Report, error) {
	args := m.Called(ctx, reportID)
	var report *domain.Report
	if args.Get(0) != nil {
		report = args.Get(0).(*domain.Report)
	}
	return report, args.Error(1)
}

func (m *MockReportRepository) SaveReport(ctx context.Context, report *domain.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) UpdateReportStatus(ctx context.Context, reportID int64, status domain.ReportStatus) error {
	args := m.Called(ctx, reportID, status)
	return args.Error(0)
}

// recordingNotifier records deliveries and fails for the ids in failFor.
type recordingNotifier struct {
	mu        sync.Mutex
	failFor   map[string]error
	delivered []string
}

func (n *recordingNotifier) Notify(_ context.Context, userID string, _ string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if err, ok := n.failFor[userID]; ok {
		return err
	}
	n.delivered = append(n.delivered, userID)
	return nil
}
