package dto

import (
	"github.com/SscSPs/attendance_bot/internal/core/domain"
)

// CreateTaskRequest defines the data needed to create a new task.
type CreateTaskRequest struct {
	Title       string   `json:"title" binding:"required,max=200" validate:"required,max=200"`
	Description string   `json:"description" binding:"max=2000" validate:"max=2000"`
	AssignedTo  []string `json:"assignedTo" binding:"required,min=1,dive,required" validate:"required,min=1,dive,required"`
}

// UpdateTaskStatusRequest defines the body for a status change.
type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required,max=50"`
}

// ListTasksParams defines query parameters for listing tasks.
type ListTasksParams struct {
	AssignedTo string `form:"assignedTo"`
}

// TaskResponse defines the data returned for a task.
type TaskResponse struct {
	TaskID      int64    `json:"taskID"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	AssignedTo  []string `json:"assignedTo"`
	Status      string   `json:"status"`
	CreatedDate string   `json:"createdDate"`
	CreatedBy   string   `json:"createdBy,omitempty"`
}

// ToTaskResponse converts a domain.Task to TaskResponse DTO
func ToTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		TaskID:      t.TaskID,
		Title:       t.Title,
		Description: t.Description,
		AssignedTo:  t.AssignedTo,
		Status:      string(t.Status),
		CreatedDate: t.CreatedDate,
		CreatedBy:   t.CreatedBy,
	}
}

// ToListTaskResponse converts a slice of domain.Task to a slice of TaskResponse DTOs
func ToListTaskResponse(tasks []domain.Task) []TaskResponse {
	res := make([]TaskResponse, len(tasks))
	for i := range tasks {
		res[i] = ToTaskResponse(&tasks[i])
	}
	return res
}
