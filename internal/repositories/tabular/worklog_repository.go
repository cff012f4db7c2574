package tabular

import (
	"context"

	"github.com/SscSPs/attendance_bot/internal/core/domain"
	portsrepo "github.com/SscSPs/attendance_bot/internal/core/ports/repositories"
	"github.com/SscSPs/attendance_bot/internal/models"
)

// WorkLogRepository reads and writes the WorkLog table.
type WorkLogRepository struct {
	BaseRepository
}

func newWorkLogRepository(store portsrepo.TabularStore) *WorkLogRepository {
	return &WorkLogRepository{BaseRepository{Store: store, Table: portsrepo.TableWorkLog}}
}

var _ portsrepo.WorkLogRepositoryFacade = (*WorkLogRepository)(nil)

func toDomainWorkLogEntry(m models.WorkLogRow, index int) domain.WorkLogEntry {
	id, _ := parseID(m.ID)
	return domain.WorkLogEntry{
		SequenceID:   id,
		UserID:       m.UserID,
		Date:         m.Date,
		CheckInTime:  m.CheckIn,
		CheckOutTime: m.CheckOut,
		RowIndex:     index,
	}
}

// ListEntriesByDate scans the whole table and keeps rows for date, recording each row's scan position.
func (r *WorkLogRepository) ListEntriesByDate(ctx context.Context, date string) ([]domain.WorkLogEntry, error) {
	rows, err := r.readRows(ctx)
	if err != nil {
		return nil, err
	}
	var entries []domain.WorkLogEntry
	for i, cells := range rows {
		m := models.WorkLogRowFromCells(cells)
		if m.Date != date {
			continue
		}
		entries = append(entries, toDomainWorkLogEntry(m, i))
	}
	return entries, nil
}

// AppendCheckIn appends {next id, user, date, time, ""}.
func (r *WorkLogRepository) AppendCheckIn(ctx context.Context, userID, date, checkInTime string) (*domain.WorkLogEntry, error) {
	row := models.WorkLogRow{UserID: userID, Date: date, CheckIn: checkInTime}
	_, index, err := r.appendWithNextID(ctx, models.WorkLogColID, func(id int64) []string {
		row.ID = formatID(id)
		return row.Cells()
	})
	if err != nil {
		return nil, err
	}
	entry := toDomainWorkLogEntry(row, index)
	return &entry, nil
}

// SetCheckOut writes the check-out cell of the row at rowIndex.
func (r *WorkLogRepository) SetCheckOut(ctx context.Context, rowIndex int, checkOutTime string) error {
	return r.updateCell(ctx, rowIndex, models.WorkLogColCheckOut, checkOutTime)
}
