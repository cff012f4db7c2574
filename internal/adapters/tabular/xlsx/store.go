// Package xlsx implements the TabularStore on a local Excel workbook, one
// worksheet per table. Every mutation is flushed to disk before returning.
package xlsx

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	portsrepo "github.com/SscSPs/attendance_bot/internal/core/ports/repositories"
	"github.com/xuri/excelize/v2"
)

// Store is a workbook-backed TabularStore. A single mutex guards the workbook
// because excelize files are not safe for concurrent mutation.
type Store struct {
	mu   sync.Mutex
	path string
	file *excelize.File
}

var _ portsrepo.TabularStore = (*Store)(nil)

// Open loads the workbook at path, creating an empty one when it does not exist.
func Open(path string) (*Store, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		f := excelize.NewFile()
		if err := f.SaveAs(path); err != nil {
			return nil, fmt.Errorf("failed to create workbook %s: %w", path, err)
		}
		return &Store{path: path, file: f}, nil
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	return &Store{path: path, file: f}, nil
}

// Close releases the workbook.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}

// EnsureTable adds a worksheet with the header row when it is missing,
// and writes the header into an existing but empty worksheet.
func (s *Store) EnsureTable(_ context.Context, table portsrepo.Table, header []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sheet := string(table)
	idx, err := s.file.GetSheetIndex(sheet)
	if err != nil {
		return err
	}
	if idx == -1 {
		if _, err := s.file.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to add sheet %s: %w", sheet, err)
		}
	} else {
		rows, err := s.file.GetRows(sheet)
		if err != nil {
			return err
		}
		if len(rows) > 0 {
			return nil
		}
	}
	if err := s.file.SetSheetRow(sheet, "A1", toRow(header)); err != nil {
		return err
	}
	return s.file.SaveAs(s.path)
}

// ReadAll returns the data rows below the header.
func (s *Store) ReadAll(ctx context.Context, table portsrepo.Table) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.file.GetRows(string(table))
	if err != nil {
		return nil, err
	}
	if len(rows) <= portsrepo.HeaderRows {
		return [][]string{}, nil
	}
	return rows[portsrepo.HeaderRows:], nil
}

// AppendRow writes cells into the first row after the last used one.
func (s *Store) AppendRow(ctx context.Context, table portsrepo.Table, cells []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	sheet := string(table)
	rows, err := s.file.GetRows(sheet)
	if err != nil {
		return err
	}
	next := len(rows) + 1
	if next <= portsrepo.HeaderRows {
		next = portsrepo.HeaderRows + 1
	}
	cell, err := excelize.CoordinatesToCellName(1, next)
	if err != nil {
		return err
	}
	if err := s.file.SetSheetRow(sheet, cell, toRow(cells)); err != nil {
		return err
	}
	return s.file.SaveAs(s.path)
}

// UpdateCell sets one cell addressed by 1-based row and column.
func (s *Store) UpdateCell(ctx context.Context, table portsrepo.Table, row, col int, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if row <= portsrepo.HeaderRows {
		return fmt.Errorf("row %d is a header row", row)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := s.file.SetCellStr(string(table), cell, value); err != nil {
		return err
	}
	return s.file.SaveAs(s.path)
}

// toRow converts cells for SetSheetRow; strings are stored as text cells so ids keep their form.
func toRow(cells []string) *[]interface{} {
	row := make([]interface{}, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return &row
}
