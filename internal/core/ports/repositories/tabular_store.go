package repositories

import "context"

// Table names one logical table (one worksheet) of the store.
type Table string

const (
	TableUsers   Table = "Users"
	TableTasks   Table = "Tasks"
	TableReports Table = "Reports"
	TableWorkLog Table = "WorkLog"
)

// HeaderRows is the number of header rows at the top of every table.
// Data row i (zero-based) lives at store row i+HeaderRows+1.
const HeaderRows = 1

// RowNumber translates a zero-based data row index into the 1-based store row address.
func RowNumber(index int) int {
	return index + HeaderRows + 1
}

// TabularReader reads whole tables.
type TabularReader interface {
	// ReadAll returns every data row of the table, header excluded, in store order.
	// Rows may be shorter than the header when trailing cells are empty.
	ReadAll(ctx context.Context, table Table) ([][]string, error)
}

// TabularWriter performs single-row mutations. There is no multi-row atomicity.
type TabularWriter interface {
	// AppendRow appends one row after the last data row.
	AppendRow(ctx context.Context, table Table, cells []string) error

	// UpdateCell sets one cell. row is the 1-based store row (see RowNumber), col is 1-based.
	UpdateCell(ctx context.Context, table Table, row, col int, value string) error
}

// TableProvisioner creates a table with its header row when it is missing.
type TableProvisioner interface {
	EnsureTable(ctx context.Context, table Table, header []string) error
}

// TabularStore is the remote row-oriented store behind every repository.
type TabularStore interface {
	TabularReader
	TabularWriter
	TableProvisioner
}
