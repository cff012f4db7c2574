package services

import (
	"context"

	"github.com/SscSPs/attendance_bot/internal/core/domain"
	"github.com/SscSPs/attendance_bot/internal/dto"
)

// TaskReaderSvc defines read operations for the task registry
type TaskReaderSvc interface {
	// ListTasks returns all tasks when filterUserID is empty, otherwise only the tasks assigned to that user.
	ListTasks(ctx context.Context, filterUserID string) ([]domain.Task, error)
}

// TaskWriterSvc defines write operations for the task registry
type TaskWriterSvc interface {
	// AddTask creates a task in status in_progress and returns it with its assigned id.
	AddTask(ctx context.Context, req dto.CreateTaskRequest, creatorUserID string) (*domain.Task, error)

	// UpdateTaskStatus sets the task status. Employees may only change tasks assigned to them.
	UpdateTaskStatus(ctx context.Context, taskID int64, status domain.TaskStatus, actor domain.User) error
}

// TaskSvcFacade combines all task service interfaces
type TaskSvcFacade interface {
	TaskReaderSvc
	TaskWriterSvc
}
