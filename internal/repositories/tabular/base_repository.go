package tabular

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/SscSPs/attendance_bot/internal/apperrors"
	portsrepo "github.com/SscSPs/attendance_bot/internal/core/ports/repositories"
)

// BaseRepository provides store access for a single table. appendMu serialises
// id assignment with the append that uses it, so two writers in this process
// never compute the same id.
type BaseRepository struct {
	Store portsrepo.TabularStore
	Table portsrepo.Table

	appendMu sync.Mutex
}

func (r *BaseRepository) readRows(ctx context.Context) ([][]string, error) {
	rows, err := r.Store.ReadAll(ctx, r.Table)
	if err != nil {
		return nil, apperrors.StoreError("read", string(r.Table), err)
	}
	return rows, nil
}

func (r *BaseRepository) appendRow(ctx context.Context, cells []string) error {
	if err := r.Store.AppendRow(ctx, r.Table, cells); err != nil {
		return apperrors.StoreError("append", string(r.Table), err)
	}
	return nil
}

// updateCell writes one cell of the data row found at index during a scan.
func (r *BaseRepository) updateCell(ctx context.Context, index, col int, value string) error {
	if err := r.Store.UpdateCell(ctx, r.Table, portsrepo.RowNumber(index), col, value); err != nil {
		return apperrors.StoreError("update", string(r.Table), err)
	}
	return nil
}

// appendWithNextID reads the table, assigns max(id)+1 and appends the row built
// for that id, all while holding appendMu. It returns the id and the data row
// index the row was appended at.
func (r *BaseRepository) appendWithNextID(ctx context.Context, idCol int, build func(id int64) []string) (int64, int, error) {
	r.appendMu.Lock()
	defer r.appendMu.Unlock()

	rows, err := r.readRows(ctx)
	if err != nil {
		return 0, 0, err
	}
	id := nextID(rows, idCol)
	if err := r.appendRow(ctx, build(id)); err != nil {
		return 0, 0, err
	}
	return id, len(rows), nil
}

// nextID returns one more than the largest numeric id in column idCol.
// Unparsable ids are ignored; an empty table starts at 1.
func nextID(rows [][]string, idCol int) int64 {
	var maxID int64
	for _, row := range rows {
		if idCol > len(row) {
			continue
		}
		if id, ok := parseID(row[idCol-1]); ok && id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(trimNumeric(s), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// trimNumeric strips whitespace and the ".0" suffix spreadsheets add to numbers.
func trimNumeric(s string) string {
	return strings.TrimSuffix(strings.TrimSpace(s), ".0")
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
