package repositories

import (
	"context"

	"github.com/SscSPs/attendance_bot/internal/core/domain"
)

// TaskReader defines read operations for tasks
type TaskReader interface {
	// ListTasks returns every task in store order.
	ListTasks(ctx context.Context) ([]domain.Task, error)

	// FindTaskByID scans for the task with the given id.
	FindTaskByID(ctx context.Context, taskID int64) (*domain.Task, error)
}

// TaskWriter defines write operations for tasks
type TaskWriter interface {
	// SaveTask appends the task, assigning TaskID. The assigned id is written back into task.
	SaveTask(ctx context.Context, task *domain.Task) error

	// UpdateTaskStatus finds the task by id and sets its status cell.
	UpdateTaskStatus(ctx context.Context, taskID int64, status domain.TaskStatus) error
}

// TaskRepositoryFacade combines all task repository interfaces
type TaskRepositoryFacade interface {
	TaskReader
	TaskWriter
}
