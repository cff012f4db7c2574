package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowDecoding_ShortRows(t *testing.T) {
	// Remote stores drop trailing empty cells, so an open work log row has four cells.
	row := WorkLogRowFromCells([]string{"3", " 42 ", "2024-01-10", "09:00"})
	assert.Equal(t, WorkLogRow{ID: "3", UserID: "42", Date: "2024-01-10", CheckIn: "09:00"}, row)
	assert.Len(t, row.Cells(), len(WorkLogHeader))

	task := TaskRowFromCells([]string{"1", "Fix login"})
	assert.Equal(t, "", task.Status)
	assert.Len(t, task.Cells(), len(TaskHeader))

	report := ReportRowFromCells(nil)
	assert.Len(t, report.Cells(), len(ReportHeader))
}

func TestTaskRow_LegacyFlagInCreatorColumn(t *testing.T) {
	legacy := TaskRowFromCells([]string{"4", "Inventory", "", "42", "in_progress", "2024-01-10", "False"})
	assert.Equal(t, "", legacy.CreatedBy)
	assert.Equal(t, "in_progress", legacy.Status)

	assert.Equal(t, "", TaskRowFromCells([]string{"5", "x", "", "", "", "", "TRUE"}).CreatedBy)
	assert.Equal(t, "7", TaskRowFromCells([]string{"6", "x", "", "", "", "", "7"}).CreatedBy)
}

func TestColumnsMatchHeaders(t *testing.T) {
	assert.Equal(t, "role", UserHeader[UserColRole-1])
	assert.Equal(t, "check_out", WorkLogHeader[WorkLogColCheckOut-1])
	assert.Equal(t, "status", TaskHeader[TaskColStatus-1])
	assert.Equal(t, "status", ReportHeader[ReportColStatus-1])
}
