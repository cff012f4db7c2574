package models

// Reports table columns.
const (
	ReportColID = iota + 1
	ReportColUserID
	ReportColDate
	ReportColTaskIDs
	ReportColTasksDoneDetails
	ReportColProblems
	ReportColPlan
	ReportColStatus
)

// ReportHeader is the header row of the Reports table.
var ReportHeader = []string{"report_id", "user_id", "date", "task_ids", "tasks_done_details", "problems", "plan", "status"}

// ReportRow is one row of the Reports table. TaskIDs is the raw comma-delimited cell.
type ReportRow struct {
	ReportID         string
	UserID           string
	Date             string
	TaskIDs          string
	TasksDoneDetails string
	Problems         string
	Plan             string
	Status           string
}

// ReportRowFromCells decodes a Reports data row.
func ReportRowFromCells(cells []string) ReportRow {
	return ReportRow{
		ReportID:         cell(cells, ReportColID),
		UserID:           cell(cells, ReportColUserID),
		Date:             cell(cells, ReportColDate),
		TaskIDs:          cell(cells, ReportColTaskIDs),
		TasksDoneDetails: cell(cells, ReportColTasksDoneDetails),
		Problems:         cell(cells, ReportColProblems),
		Plan:             cell(cells, ReportColPlan),
		Status:           cell(cells, ReportColStatus),
	}
}

// Cells encodes the row in column order.
func (r ReportRow) Cells() []string {
	return []string{r.ReportID, r.UserID, r.Date, r.TaskIDs, r.TasksDoneDetails, r.Problems, r.Plan, r.Status}
}
