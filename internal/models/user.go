package models

// Users table columns.
const (
	UserColID = iota + 1
	UserColName
	UserColRole
)

// UserHeader is the header row of the Users table.
var UserHeader = []string{"user_id", "name", "role"}

// UserRow is one row of the Users table.
type UserRow struct {
	UserID string
	Name   string
	Role   string
}

// UserRowFromCells decodes a Users data row.
func UserRowFromCells(cells []string) UserRow {
	return UserRow{
		UserID: cell(cells, UserColID),
		Name:   cell(cells, UserColName),
		Role:   cell(cells, UserColRole),
	}
}
