// Package gsheets implements the TabularStore on a Google spreadsheet, one
// worksheet per table, through the Sheets v4 values API.
package gsheets

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/attendance_bot/internal/core/ports/repositories"
	"github.com/xuri/excelize/v2"
	"google.golang.org/api/sheets/v4"
)

// valueInputRaw stores cells exactly as given; "0042" stays text.
const valueInputRaw = "RAW"

// Store is a Sheets-backed TabularStore. The Sheets service is safe for concurrent use.
type Store struct {
	svc           *sheets.Service
	spreadsheetID string
}

var _ portsrepo.TabularStore = (*Store)(nil)

// NewStore wraps an authorised Sheets service bound to one spreadsheet.
func NewStore(svc *sheets.Service, spreadsheetID string) *Store {
	return &Store{svc: svc, spreadsheetID: spreadsheetID}
}

func sheetRange(table portsrepo.Table) string {
	return fmt.Sprintf("'%s'", table)
}

func cellRange(table portsrepo.Table, row, col int) (string, error) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("'%s'!%s", table, cell), nil
}

// ReadAll fetches the whole worksheet and drops the header row.
func (s *Store) ReadAll(ctx context.Context, table portsrepo.Table) ([][]string, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, sheetRange(table)).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	if len(resp.Values) <= portsrepo.HeaderRows {
		return [][]string{}, nil
	}
	data := resp.Values[portsrepo.HeaderRows:]
	rows := make([][]string, len(data))
	for i, r := range data {
		rows[i] = make([]string, len(r))
		for j, v := range r {
			rows[i][j] = fmt.Sprint(v)
		}
	}
	return rows, nil
}

// AppendRow inserts one row after the table's last data row.
func (s *Store) AppendRow(ctx context.Context, table portsrepo.Table, cells []string) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{toValues(cells)}}
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, sheetRange(table)+"!A1", vr).
		ValueInputOption(valueInputRaw).
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return err
}

// UpdateCell sets one cell addressed by 1-based row and column.
func (s *Store) UpdateCell(ctx context.Context, table portsrepo.Table, row, col int, value string) error {
	if row <= portsrepo.HeaderRows {
		return fmt.Errorf("row %d is a header row", row)
	}
	rng, err := cellRange(table, row, col)
	if err != nil {
		return err
	}
	vr := &sheets.ValueRange{Values: [][]interface{}{{value}}}
	_, err = s.svc.Spreadsheets.Values.Update(s.spreadsheetID, rng, vr).
		ValueInputOption(valueInputRaw).
		Context(ctx).
		Do()
	return err
}

// EnsureTable adds the worksheet when missing and writes the header when the first row is empty.
func (s *Store) EnsureTable(ctx context.Context, table portsrepo.Table, header []string) error {
	meta, err := s.svc.Spreadsheets.Get(s.spreadsheetID).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return err
	}
	exists := false
	for _, sh := range meta.Sheets {
		if sh.Properties != nil && sh.Properties.Title == string(table) {
			exists = true
			break
		}
	}

	if !exists {
		req := &sheets.BatchUpdateSpreadsheetRequest{
			Requests: []*sheets.Request{{
				AddSheet: &sheets.AddSheetRequest{Properties: &sheets.SheetProperties{Title: string(table)}},
			}},
		}
		if _, err := s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Context(ctx).Do(); err != nil {
			return fmt.Errorf("failed to add sheet %s: %w", table, err)
		}
	} else {
		first, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, sheetRange(table)+"!1:1").Context(ctx).Do()
		if err != nil {
			return err
		}
		if len(first.Values) > 0 {
			return nil
		}
	}

	vr := &sheets.ValueRange{Values: [][]interface{}{toValues(header)}}
	_, err = s.svc.Spreadsheets.Values.Update(s.spreadsheetID, sheetRange(table)+"!A1", vr).
		ValueInputOption(valueInputRaw).
		Context(ctx).
		Do()
	return err
}

func toValues(cells []string) []interface{} {
	values := make([]interface{}, len(cells))
	for i, c := range cells {
		values[i] = c
	}
	return values
}
