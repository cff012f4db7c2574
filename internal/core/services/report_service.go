package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/attendance_bot/internal/apperrors"
	"github.com/SscSPs/attendance_bot/internal/core/domain"
	portsrepo "github.com/SscSPs/attendance_bot/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/attendance_bot/internal/core/ports/services"
	"github.com/SscSPs/attendance_bot/internal/dto"
	"github.com/go-playground/validator/v10"
)

// reportService implements the ReportSvcFacade interface
type reportService struct {
	BaseService
	reportRepo portsrepo.ReportRepositoryFacade
	taskRepo   portsrepo.TaskReader
	validate   *validator.Validate
	now        func() time.Time
}

// NewReportService creates a new report service. Task ids referenced by a
// report are checked against taskRepo.
func NewReportService(reportRepo portsrepo.ReportRepositoryFacade, taskRepo portsrepo.TaskReader) portssvc.ReportSvcFacade {
	return &reportService{
		reportRepo: reportRepo,
		taskRepo:   taskRepo,
		validate:   validator.New(),
		now:        time.Now,
	}
}

var _ portssvc.ReportSvcFacade = (*reportService)(nil)

// resolveTasks loads each referenced task in request order and checks it is assigned to userID.
// A task listed twice is rejected rather than collapsed.
func (s *reportService) resolveTasks(ctx context.Context, userID string, ids []int64) ([]domain.Task, error) {
	seen := make(map[int64]bool, len(ids))
	tasks := make([]domain.Task, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			return nil, fmt.Errorf("%w: task %d is listed more than once", apperrors.ErrValidation, id)
		}
		seen[id] = true

		task, err := s.taskRepo.FindTaskByID(ctx, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: task %d does not exist", apperrors.ErrValidation, id)
			}
			return nil, err
		}
		if !task.IsAssignedTo(userID) {
			return nil, fmt.Errorf("%w: task %d is not assigned to you", apperrors.ErrValidation, id)
		}
		tasks = append(tasks, *task)
	}
	return tasks, nil
}

func (s *reportService) CreateReport(ctx context.Context, userID string, req dto.CreateReportRequest) (*domain.Report, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	tasks, err := s.resolveTasks(ctx, userID, req.TaskIDs)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to resolve report tasks", slog.String("user_id", userID))
		}
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	details := strings.TrimSpace(req.TasksDoneDetails)
	if details == "" {
		titles := make([]string, len(tasks))
		for i, t := range tasks {
			titles[i] = t.Title
		}
		details = strings.Join(titles, "; ")
	}

	report := &domain.Report{
		UserID:           userID,
		Date:             domain.FormatDate(s.now()),
		TaskIDs:          req.TaskIDs,
		TasksDoneDetails: details,
		Problems:         strings.TrimSpace(req.Problems),
		Plan:             strings.TrimSpace(req.Plan),
		Status:           domain.ReportPending,
	}
	if err := s.reportRepo.SaveReport(ctx, report); err != nil {
		s.LogError(ctx, err, "Failed to save report", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	s.LogInfo(ctx, "Report submitted",
		slog.Int64("report_id", report.ReportID),
		slog.String("user_id", userID),
		slog.Int("task_count", len(req.TaskIDs)))
	return report, nil
}

func (s *reportService) ListPendingReports(ctx context.Context) ([]domain.Report, error) {
	reports, err := s.reportRepo.ListReports(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list reports")
		return nil, fmt.Errorf("failed to list pending reports: %w", err)
	}
	pending := make([]domain.Report, 0, len(reports))
	for _, r := range reports {
		if r.IsPending() {
			pending = append(pending, r)
		}
	}
	return pending, nil
}

// ApproveReport is idempotent: approving an approved report succeeds without a write.
func (s *reportService) ApproveReport(ctx context.Context, reportID int64) error {
	report, err := s.reportRepo.FindReportByID(ctx, reportID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to look up report", slog.Int64("report_id", reportID))
		}
		return fmt.Errorf("failed to approve report %d: %w", reportID, err)
	}
	if report.Status == domain.ReportApproved {
		return nil
	}

	if err := s.reportRepo.UpdateReportStatus(ctx, reportID, domain.ReportApproved); err != nil {
		s.LogError(ctx, err, "Failed to approve report", slog.Int64("report_id", reportID))
		return fmt.Errorf("failed to approve report %d: %w", reportID, err)
	}

	s.LogInfo(ctx, "Report approved", slog.Int64("report_id", reportID))
	return nil
}
