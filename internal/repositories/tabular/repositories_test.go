package tabular_test

import (
	"context"
	"sync"
	"testing"

	"github.com/SscSPs/attendance_bot/internal/adapters/tabular/memory"
	"github.com/SscSPs/attendance_bot/internal/apperrors"
	"github.com/SscSPs/attendance_bot/internal/core/domain"
	portsrepo "github.com/SscSPs/attendance_bot/internal/core/ports/repositories"
	"github.com/SscSPs/attendance_bot/internal/models"
	"github.com/SscSPs/attendance_bot/internal/repositories/tabular"
	"github.com/stretchr/testify/suite"
)

type RepositoriesTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *memory.Store
	repos portsrepo.RepositoryProvider
}

func (suite *RepositoriesTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.store = memory.NewStore()
	suite.Require().NoError(tabular.EnsureSchema(suite.ctx, suite.store))
	suite.repos = tabular.NewRepositoryProvider(suite.store)
}

func TestRepositoriesTestSuite(t *testing.T) {
	suite.Run(t, new(RepositoriesTestSuite))
}

func (suite *RepositoriesTestSuite) TestUsers_FindAndList() {
	suite.store.Seed(portsrepo.TableUsers, models.UserHeader,
		[]string{"42", "Alice", "Employee"},
		[]string{"", "ghost", "employee"},
		[]string{"7", "Bob", "admin"},
	)

	users, err := suite.repos.UserRepo.ListUsers(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(users, 2)
	suite.Equal(domain.RoleEmployee, users[0].Role)

	bob, err := suite.repos.UserRepo.FindUserByID(suite.ctx, "7")
	suite.Require().NoError(err)
	suite.True(bob.IsAdmin())

	_, err = suite.repos.UserRepo.FindUserByID(suite.ctx, "99")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *RepositoriesTestSuite) TestWorkLog_AppendAndCheckOut() {
	suite.store.Seed(portsrepo.TableWorkLog, models.WorkLogHeader,
		[]string{"1", "7", "2024-01-09", "09:00", "18:00"},
	)

	entry, err := suite.repos.WorkLogRepo.AppendCheckIn(suite.ctx, "42", "2024-01-10", "09:00")
	suite.Require().NoError(err)
	suite.Equal(int64(2), entry.SequenceID)
	suite.Equal(1, entry.RowIndex)

	entries, err := suite.repos.WorkLogRepo.ListEntriesByDate(suite.ctx, "2024-01-10")
	suite.Require().NoError(err)
	suite.Require().Len(entries, 1)
	suite.Equal(1, entries[0].RowIndex)

	suite.Require().NoError(suite.repos.WorkLogRepo.SetCheckOut(suite.ctx, entries[0].RowIndex, "17:00"))

	rows, err := suite.store.ReadAll(suite.ctx, portsrepo.TableWorkLog)
	suite.Require().NoError(err)
	suite.Equal([]string{"2", "42", "2024-01-10", "09:00", "17:00"}, rows[1])
	suite.Equal([]string{"1", "7", "2024-01-09", "09:00", "18:00"}, rows[0])
}

func (suite *RepositoriesTestSuite) TestTasks_SaveAssignsMaxPlusOne() {
	// A gap in ids must not lead to reuse of the highest one.
	suite.store.Seed(portsrepo.TableTasks, models.TaskHeader,
		[]string{"1", "Old", "", "42", "done", "2024-01-01", "7"},
		[]string{"5.0", "Imported", "", "42,43", "in_progress", "2024-01-02", "7"},
	)

	task := &domain.Task{Title: "New", AssignedTo: []string{"43"}, Status: domain.TaskInProgress, CreatedDate: "2024-01-10", CreatedBy: "7"}
	suite.Require().NoError(suite.repos.TaskRepo.SaveTask(suite.ctx, task))
	suite.Equal(int64(6), task.TaskID)

	found, err := suite.repos.TaskRepo.FindTaskByID(suite.ctx, 5)
	suite.Require().NoError(err)
	suite.Equal([]string{"42", "43"}, found.AssignedTo)

	tasks, err := suite.repos.TaskRepo.ListTasks(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(tasks, 3)
}

func (suite *RepositoriesTestSuite) TestTasks_UpdateStatusByID() {
	suite.store.Seed(portsrepo.TableTasks, models.TaskHeader,
		[]string{"3", "A", "", "42", "in_progress", "2024-01-01", "7"},
		[]string{"1", "B", "", "42", "in_progress", "2024-01-01", "7"},
	)

	suite.Require().NoError(suite.repos.TaskRepo.UpdateTaskStatus(suite.ctx, 1, domain.TaskDone))

	rows, err := suite.store.ReadAll(suite.ctx, portsrepo.TableTasks)
	suite.Require().NoError(err)
	suite.Equal("in_progress", rows[0][models.TaskColStatus-1])
	suite.Equal("done", rows[1][models.TaskColStatus-1])

	writes := suite.store.Writes()
	err = suite.repos.TaskRepo.UpdateTaskStatus(suite.ctx, 9, domain.TaskDone)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal(writes, suite.store.Writes())
}

func (suite *RepositoriesTestSuite) TestReports_SaveApproveAndNotFound() {
	report := &domain.Report{UserID: "42", Date: "2024-01-10", TaskIDs: []int64{1, 3}, Problems: "none", Status: domain.ReportPending}
	suite.Require().NoError(suite.repos.ReportRepo.SaveReport(suite.ctx, report))
	suite.Equal(int64(1), report.ReportID)

	suite.Require().NoError(suite.repos.ReportRepo.UpdateReportStatus(suite.ctx, 1, domain.ReportApproved))

	found, err := suite.repos.ReportRepo.FindReportByID(suite.ctx, 1)
	suite.Require().NoError(err)
	suite.Equal(domain.ReportApproved, found.Status)
	suite.Equal([]int64{1, 3}, found.TaskIDs)

	writes := suite.store.Writes()
	err = suite.repos.ReportRepo.UpdateReportStatus(suite.ctx, 7, domain.ReportApproved)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal(writes, suite.store.Writes())
}

func (suite *RepositoriesTestSuite) TestConcurrentSavesGetDistinctIDs() {
	const n = 20
	ids := make([]int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			task := &domain.Task{Title: "t", AssignedTo: []string{"42"}, Status: domain.TaskInProgress}
			suite.NoError(suite.repos.TaskRepo.SaveTask(suite.ctx, task))
			ids[i] = task.TaskID
		}(i)
	}
	wg.Wait()

	seen := make(map[int64]bool, n)
	for _, id := range ids {
		suite.False(seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	suite.Len(seen, n)
}

func (suite *RepositoriesTestSuite) TestStoreFailureIsWrapped() {
	repos := tabular.NewRepositoryProvider(memory.NewStore())
	_, err := repos.ReportRepo.ListReports(suite.ctx)
	suite.ErrorIs(err, apperrors.ErrStore)
}
