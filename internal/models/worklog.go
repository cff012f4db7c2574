package models

// WorkLog table columns.
const (
	WorkLogColID = iota + 1
	WorkLogColUserID
	WorkLogColDate
	WorkLogColCheckIn
	WorkLogColCheckOut
)

// WorkLogHeader is the header row of the WorkLog table.
var WorkLogHeader = []string{"id", "user_id", "date", "check_in", "check_out"}

// WorkLogRow is one row of the WorkLog table.
type WorkLogRow struct {
	ID       string
	UserID   string
	Date     string
	CheckIn  string
	CheckOut string
}

// WorkLogRowFromCells decodes a WorkLog data row.
func WorkLogRowFromCells(cells []string) WorkLogRow {
	return WorkLogRow{
		ID:       cell(cells, WorkLogColID),
		UserID:   cell(cells, WorkLogColUserID),
		Date:     cell(cells, WorkLogColDate),
		CheckIn:  cell(cells, WorkLogColCheckIn),
		CheckOut: cell(cells, WorkLogColCheckOut),
	}
}

// Cells encodes the row in column order.
func (r WorkLogRow) Cells() []string {
	return []string{r.ID, r.UserID, r.Date, r.CheckIn, r.CheckOut}
}
