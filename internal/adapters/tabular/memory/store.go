// Package memory provides an in-process TabularStore. It backs tests and local
// runs without a spreadsheet; the header-row addressing matches the remote store.
package memory

import (
	"context"
	"fmt"
	"sync"

	portsrepo "github.com/SscSPs/attendance_bot/internal/core/ports/repositories"
)

type table struct {
	header []string
	rows   [][]string
}

// Store is a TabularStore held in memory. It is safe for concurrent use.
type Store struct {
	mu     sync.RWMutex
	tables map[portsrepo.Table]*table
	writes int
}

// NewStore returns an empty store with no tables.
func NewStore() *Store {
	return &Store{tables: make(map[portsrepo.Table]*table)}
}

var _ portsrepo.TabularStore = (*Store)(nil)

// EnsureTable creates the table with its header when it is missing.
func (s *Store) EnsureTable(_ context.Context, name portsrepo.Table, header []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tables[name]; ok {
		return nil
	}
	s.tables[name] = &table{header: append([]string(nil), header...)}
	return nil
}

// ReadAll returns a copy of the table's data rows.
func (s *Store) ReadAll(ctx context.Context, name portsrepo.Table) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tables[name]
	if !ok {
		return nil, fmt.Errorf("table %q not found", name)
	}
	out := make([][]string, len(t.rows))
	for i, r := range t.rows {
		out[i] = append([]string(nil), r...)
	}
	return out, nil
}

// AppendRow appends a copy of cells.
func (s *Store) AppendRow(ctx context.Context, name portsrepo.Table, cells []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[name]
	if !ok {
		return fmt.Errorf("table %q not found", name)
	}
	t.rows = append(t.rows, append([]string(nil), cells...))
	s.writes++
	return nil
}

// UpdateCell sets the cell at the 1-based store row and column.
func (s *Store) UpdateCell(ctx context.Context, name portsrepo.Table, row, col int, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[name]
	if !ok {
		return fmt.Errorf("table %q not found", name)
	}
	idx := row - portsrepo.HeaderRows - 1
	if idx < 0 || idx >= len(t.rows) || col < 1 {
		return fmt.Errorf("cell R%dC%d out of range in %q", row, col, name)
	}
	for len(t.rows[idx]) < col {
		t.rows[idx] = append(t.rows[idx], "")
	}
	t.rows[idx][col-1] = value
	s.writes++
	return nil
}

// Writes returns the number of successful mutations since creation.
func (s *Store) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// Seed creates or replaces a table with the given header and rows. Seeding is not counted as a write.
func (s *Store) Seed(name portsrepo.Table, header []string, rows ...[]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &table{header: append([]string(nil), header...)}
	for _, r := range rows {
		t.rows = append(t.rows, append([]string(nil), r...))
	}
	s.tables[name] = t
}
