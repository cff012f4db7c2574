package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/attendance_bot/internal/adapters/tabular/memory"
	"github.com/SscSPs/attendance_bot/internal/apperrors"
	"github.com/SscSPs/attendance_bot/internal/core/domain"
	portsrepo "github.com/SscSPs/attendance_bot/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/attendance_bot/internal/core/ports/services"
	"github.com/SscSPs/attendance_bot/internal/core/services"
	"github.com/SscSPs/attendance_bot/internal/dto"
	"github.com/SscSPs/attendance_bot/internal/models"
	"github.com/SscSPs/attendance_bot/internal/repositories/tabular"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportServiceTestSuite struct {
	suite.Suite
	mockReports *MockReportRepository
	mockTasks   *MockTaskRepository
	service     portssvc.ReportSvcFacade
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.mockReports = new(MockReportRepository)
	suite.mockTasks = new(MockTaskRepository)
	suite.service = services.NewReportService(suite.mockReports, suite.mockTasks)
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}

func (suite *ReportServiceTestSuite) TestCreateReport_DefaultsDetailsToTitles() {
	ctx := context.Background()
	tasks := sampleTasks()
	suite.mockTasks.On("FindTaskByID", ctx, int64(1)).Return(&tasks[0], nil).Once()
	suite.mockTasks.On("FindTaskByID", ctx, int64(3)).Return(&tasks[2], nil).Once()
	suite.mockReports.On("SaveReport", ctx, mock.AnythingOfType("*domain.Report")).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Report).ReportID = 11 }).
		Return(nil).Once()

	report, err := suite.service.CreateReport(ctx, "42", dto.CreateReportRequest{
		TaskIDs:  []int64{3, 1},
		Problems: " flaky CI ",
	})

	suite.Require().NoError(err)
	suite.Equal(int64(11), report.ReportID)
	suite.Equal([]int64{3, 1}, report.TaskIDs)
	suite.Equal("Docs; Deploy", report.TasksDoneDetails)
	suite.Equal("flaky CI", report.Problems)
	suite.Equal(domain.ReportPending, report.Status)
	suite.mockTasks.AssertExpectations(suite.T())
	suite.mockReports.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestCreateReport_RepeatedTaskRejected() {
	ctx := context.Background()
	tasks := sampleTasks()
	suite.mockTasks.On("FindTaskByID", ctx, int64(3)).Return(&tasks[2], nil).Once()
	suite.mockTasks.On("FindTaskByID", ctx, int64(1)).Return(&tasks[0], nil).Once()

	_, err := suite.service.CreateReport(ctx, "42", dto.CreateReportRequest{TaskIDs: []int64{3, 1, 3}})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, "task 3 is listed more than once")
	suite.mockReports.AssertNotCalled(suite.T(), "SaveReport", mock.Anything, mock.Anything)
}

func (suite *ReportServiceTestSuite) TestCreateReport_UnknownTask() {
	ctx := context.Background()
	suite.mockTasks.On("FindTaskByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateReport(ctx, "42", dto.CreateReportRequest{TaskIDs: []int64{99}})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReports.AssertNotCalled(suite.T(), "SaveReport", mock.Anything, mock.Anything)
}

func (suite *ReportServiceTestSuite) TestCreateReport_TaskNotAssigned() {
	ctx := context.Background()
	tasks := sampleTasks()
	suite.mockTasks.On("FindTaskByID", ctx, int64(2)).Return(&tasks[1], nil).Once()

	_, err := suite.service.CreateReport(ctx, "42", dto.CreateReportRequest{TaskIDs: []int64{2}})

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockReports.AssertNotCalled(suite.T(), "SaveReport", mock.Anything, mock.Anything)
}

func (suite *ReportServiceTestSuite) TestCreateReport_EmptyTaskList() {
	_, err := suite.service.CreateReport(context.Background(), "42", dto.CreateReportRequest{})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ReportServiceTestSuite) TestApproveReport_NotFoundNoMutation() {
	ctx := context.Background()
	suite.mockReports.On("FindReportByID", ctx, int64(7)).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.ApproveReport(ctx, 7)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockReports.AssertNotCalled(suite.T(), "UpdateReportStatus", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ReportServiceTestSuite) TestApproveReport_AlreadyApprovedIsNoop() {
	ctx := context.Background()
	suite.mockReports.On("FindReportByID", ctx, int64(3)).
		Return(&domain.Report{ReportID: 3, Status: domain.ReportApproved}, nil).Once()

	err := suite.service.ApproveReport(ctx, 3)

	suite.Require().NoError(err)
	suite.mockReports.AssertNotCalled(suite.T(), "UpdateReportStatus", mock.Anything, mock.Anything, mock.Anything)
}

// TestReportWorkflow_PendingThenApproved runs the whole workflow against the in-memory store.
func TestReportWorkflow_PendingThenApproved(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	store.Seed(portsrepo.TableTasks, models.TaskHeader,
		[]string{"1", "Deploy", "", "42", "in_progress", "2024-01-10", "7"},
	)
	store.Seed(portsrepo.TableReports, models.ReportHeader)
	repos := tabular.NewRepositoryProvider(store)
	svc := services.NewReportService(repos.ReportRepo, repos.TaskRepo)

	report, err := svc.CreateReport(ctx, "42", dto.CreateReportRequest{TaskIDs: []int64{1}, Problems: "none", Plan: "tests"})
	if err != nil {
		t.Fatalf("create report: %v", err)
	}

	pending, err := svc.ListPendingReports(ctx)
	if err != nil || len(pending) != 1 || pending[0].ReportID != report.ReportID {
		t.Fatalf("expected new report pending, got %+v (err %v)", pending, err)
	}

	if err := svc.ApproveReport(ctx, report.ReportID); err != nil {
		t.Fatalf("approve report: %v", err)
	}

	pending, err = svc.ListPendingReports(ctx)
	if err != nil || len(pending) != 0 {
		t.Fatalf("expected no pending reports, got %+v (err %v)", pending, err)
	}
}
