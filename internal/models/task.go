package models

import "strings"

// Tasks table columns.
const (
	TaskColID = iota + 1
	TaskColTitle
	TaskColDescription
	TaskColAssignedTo
	TaskColStatus
	TaskColCreatedDate
	TaskColCreatedBy
)

// TaskHeader is the header row of the Tasks table.
var TaskHeader = []string{"task_id", "title", "description", "assigned_to", "status", "created_date", "created_by"}

// TaskRow is one row of the Tasks table. AssignedTo is the raw comma-delimited cell.
type TaskRow struct {
	TaskID      string
	Title       string
	Description string
	AssignedTo  string
	Status      string
	CreatedDate string
	CreatedBy   string
}

// TaskRowFromCells decodes a Tasks data row.
func TaskRowFromCells(cells []string) TaskRow {
	return TaskRow{
		TaskID:      cell(cells, TaskColID),
		Title:       cell(cells, TaskColTitle),
		Description: cell(cells, TaskColDescription),
		AssignedTo:  cell(cells, TaskColAssignedTo),
		Status:      cell(cells, TaskColStatus),
		CreatedDate: cell(cells, TaskColCreatedDate),
		CreatedBy:   creatorCell(cell(cells, TaskColCreatedBy)),
	}
}

// creatorCell drops the boolean flag older sheets keep in the creator column.
func creatorCell(v string) string {
	if strings.EqualFold(v, "true") || strings.EqualFold(v, "false") {
		return ""
	}
	return v
}

// Cells encodes the row in column order.
func (r TaskRow) Cells() []string {
	return []string{r.TaskID, r.Title, r.Description, r.AssignedTo, r.Status, r.CreatedDate, r.CreatedBy}
}
