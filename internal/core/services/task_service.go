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

// maxStatusLen bounds free-form status values written by admins.
const maxStatusLen = 50

// taskService implements the TaskSvcFacade interface
type taskService struct {
	BaseService
	taskRepo portsrepo.TaskRepositoryFacade
	validate *validator.Validate
	now      func() time.Time
}

// NewTaskService creates a new task service
func NewTaskService(repo portsrepo.TaskRepositoryFacade) portssvc.TaskSvcFacade {
	return &taskService{
		taskRepo: repo,
		validate: validator.New(),
		now:      time.Now,
	}
}

var _ portssvc.TaskSvcFacade = (*taskService)(nil)

func (s *taskService) ListTasks(ctx context.Context, filterUserID string) ([]domain.Task, error) {
	tasks, err := s.taskRepo.ListTasks(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list tasks", slog.String("filter_user_id", filterUserID))
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	if filterUserID == "" {
		return tasks, nil
	}
	filtered := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.IsAssignedTo(filterUserID) {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

func (s *taskService) AddTask(ctx context.Context, req dto.CreateTaskRequest, creatorUserID string) (*domain.Task, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	// Assignees are stored as one delimited cell, so the separator cannot appear inside an id.
	assignees := make([]string, 0, len(req.AssignedTo))
	for _, a := range req.AssignedTo {
		a = strings.TrimSpace(a)
		if a == "" || strings.Contains(a, domain.AssigneeSeparator) {
			return nil, fmt.Errorf("%w: invalid assignee %q", apperrors.ErrValidation, a)
		}
		assignees = append(assignees, a)
	}

	task := &domain.Task{
		Title:       req.Title,
		Description: req.Description,
		AssignedTo:  assignees,
		Status:      domain.TaskInProgress,
		CreatedDate: domain.FormatDate(s.now()),
		CreatedBy:   creatorUserID,
	}
	if err := s.taskRepo.SaveTask(ctx, task); err != nil {
		s.LogError(ctx, err, "Failed to save task",
			slog.String("title", task.Title),
			slog.String("created_by", creatorUserID))
		return nil, fmt.Errorf("failed to add task: %w", err)
	}

	s.LogInfo(ctx, "Task created",
		slog.Int64("task_id", task.TaskID),
		slog.String("created_by", creatorUserID))
	return task, nil
}

func (s *taskService) UpdateTaskStatus(ctx context.Context, taskID int64, status domain.TaskStatus, actor domain.User) error {
	status = domain.TaskStatus(strings.ToLower(strings.TrimSpace(string(status))))
	if status == "" || len(status) > maxStatusLen {
		return fmt.Errorf("%w: status must be 1-%d characters", apperrors.ErrValidation, maxStatusLen)
	}

	if !actor.IsAdmin() {
		task, err := s.taskRepo.FindTaskByID(ctx, taskID)
		if err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				s.LogError(ctx, err, "Failed to look up task", slog.Int64("task_id", taskID))
			}
			return fmt.Errorf("failed to update task %d: %w", taskID, err)
		}
		if !task.IsAssignedTo(actor.UserID) {
			return fmt.Errorf("task %d is not assigned to %s: %w", taskID, actor.UserID, apperrors.ErrForbidden)
		}
	}

	if err := s.taskRepo.UpdateTaskStatus(ctx, taskID, status); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update task status",
				slog.Int64("task_id", taskID),
				slog.String("status", string(status)))
		}
		return fmt.Errorf("failed to update task %d: %w", taskID, err)
	}

	s.LogInfo(ctx, "Task status updated",
		slog.Int64("task_id", taskID),
		slog.String("status", string(status)),
		slog.String("actor", actor.UserID))
	return nil
}
