package tabular

import (
	"context"

	"github.com/SscSPs/attendance_bot/internal/apperrors"
	"github.com/SscSPs/attendance_bot/internal/core/domain"
	portsrepo "github.com/SscSPs/attendance_bot/internal/core/ports/repositories"
	"github.com/SscSPs/attendance_bot/internal/models"
)

// TaskRepository reads and writes the Tasks table.
type TaskRepository struct {
	BaseRepository
}

func newTaskRepository(store portsrepo.TabularStore) *TaskRepository {
	return &TaskRepository{BaseRepository{Store: store, Table: portsrepo.TableTasks}}
}

var _ portsrepo.TaskRepositoryFacade = (*TaskRepository)(nil)

func toModelTask(t domain.Task) models.TaskRow {
	return models.TaskRow{
		TaskID:      formatID(t.TaskID),
		Title:       t.Title,
		Description: t.Description,
		AssignedTo:  domain.JoinAssignees(t.AssignedTo),
		Status:      string(t.Status),
		CreatedDate: t.CreatedDate,
		CreatedBy:   t.CreatedBy,
	}
}

func toDomainTask(m models.TaskRow, id int64) domain.Task {
	return domain.Task{
		TaskID:      id,
		Title:       m.Title,
		Description: m.Description,
		AssignedTo:  domain.ParseAssignees(m.AssignedTo),
		Status:      domain.TaskStatus(m.Status),
		CreatedDate: m.CreatedDate,
		CreatedBy:   m.CreatedBy,
	}
}

// scan calls visit for every row with a parsable id until visit returns false.
func (r *TaskRepository) scan(ctx context.Context, visit func(index int, task domain.Task) bool) error {
	rows, err := r.readRows(ctx)
	if err != nil {
		return err
	}
	for i, cells := range rows {
		m := models.TaskRowFromCells(cells)
		id, ok := parseID(m.TaskID)
		if !ok {
			continue
		}
		if !visit(i, toDomainTask(m, id)) {
			return nil
		}
	}
	return nil
}

// ListTasks returns every task in store order.
func (r *TaskRepository) ListTasks(ctx context.Context) ([]domain.Task, error) {
	tasks := []domain.Task{}
	err := r.scan(ctx, func(_ int, t domain.Task) bool {
		tasks = append(tasks, t)
		return true
	})
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindTaskByID returns apperrors.ErrNotFound for unknown ids.
func (r *TaskRepository) FindTaskByID(ctx context.Context, taskID int64) (*domain.Task, error) {
	var found *domain.Task
	err := r.scan(ctx, func(_ int, t domain.Task) bool {
		if t.TaskID == taskID {
			found = &t
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, apperrors.ErrNotFound
	}
	return found, nil
}

// SaveTask appends the task and writes the assigned id back into it.
func (r *TaskRepository) SaveTask(ctx context.Context, task *domain.Task) error {
	id, _, err := r.appendWithNextID(ctx, models.TaskColID, func(id int64) []string {
		t := *task
		t.TaskID = id
		return toModelTask(t).Cells()
	})
	if err != nil {
		return err
	}
	task.TaskID = id
	return nil
}

// UpdateTaskStatus locates the row by its task_id cell, not by position.
func (r *TaskRepository) UpdateTaskStatus(ctx context.Context, taskID int64, status domain.TaskStatus) error {
	index := -1
	err := r.scan(ctx, func(i int, t domain.Task) bool {
		if t.TaskID == taskID {
			index = i
			return false
		}
		return true
	})
	if err != nil {
		return err
	}
	if index < 0 {
		return apperrors.ErrNotFound
	}
	return r.updateCell(ctx, index, models.TaskColStatus, string(status))
}
