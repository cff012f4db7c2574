package tabular

import (
	"context"

	"github.com/SscSPs/attendance_bot/internal/apperrors"
	"github.com/SscSPs/attendance_bot/internal/core/domain"
	portsrepo "github.com/SscSPs/attendance_bot/internal/core/ports/repositories"
	"github.com/SscSPs/attendance_bot/internal/models"
)

// ReportRepository reads and writes the Reports table.
type ReportRepository struct {
	BaseRepository
}

func newReportRepository(store portsrepo.TabularStore) *ReportRepository {
	return &ReportRepository{BaseRepository{Store: store, Table: portsrepo.TableReports}}
}

var _ portsrepo.ReportRepositoryFacade = (*ReportRepository)(nil)

func toModelReport(r domain.Report) models.ReportRow {
	return models.ReportRow{
		ReportID:         formatID(r.ReportID),
		UserID:           r.UserID,
		Date:             r.Date,
		TaskIDs:          domain.JoinTaskIDs(r.TaskIDs),
		TasksDoneDetails: r.TasksDoneDetails,
		Problems:         r.Problems,
		Plan:             r.Plan,
		Status:           string(r.Status),
	}
}

func toDomainReport(m models.ReportRow, id int64) domain.Report {
	// A malformed task_ids cell degrades to an empty list rather than hiding the report.
	taskIDs, err := domain.ParseTaskIDs(m.TaskIDs)
	if err != nil {
		taskIDs = nil
	}
	return domain.Report{
		ReportID:         id,
		UserID:           m.UserID,
		Date:             m.Date,
		TaskIDs:          taskIDs,
		TasksDoneDetails: m.TasksDoneDetails,
		Problems:         m.Problems,
		Plan:             m.Plan,
		Status:           domain.ReportStatus(m.Status),
	}
}

func (r *ReportRepository) scan(ctx context.Context, visit func(index int, report domain.Report) bool) error {
	rows, err := r.readRows(ctx)
	if err != nil {
		return err
	}
	for i, cells := range rows {
		m := models.ReportRowFromCells(cells)
		id, ok := parseID(m.ReportID)
		if !ok {
			continue
		}
		if !visit(i, toDomainReport(m, id)) {
			return nil
		}
	}
	return nil
}

// ListReports returns every report in store order.
func (r *ReportRepository) ListReports(ctx context.Context) ([]domain.Report, error) {
	reports := []domain.Report{}
	err := r.scan(ctx, func(_ int, rep domain.Report) bool {
		reports = append(reports, rep)
		return true
	})
	if err != nil {
		return nil, err
	}
	return reports, nil
}

// FindReportByID returns apperrors.ErrNotFound for unknown ids.
func (r *ReportRepository) FindReportByID(ctx context.Context, reportID int64) (*domain.Report, error) {
	var found *domain.Report
	err := r.scan(ctx, func(_ int, rep domain.Report) bool {
		if rep.ReportID == reportID {
			found = &rep
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, apperrors.ErrNotFound
	}
	return found, nil
}

// SaveReport appends the report and writes the assigned id back into it.
func (r *ReportRepository) SaveReport(ctx context.Context, report *domain.Report) error {
	id, _, err := r.appendWithNextID(ctx, models.ReportColID, func(id int64) []string {
		rep := *report
		rep.ReportID = id
		return toModelReport(rep).Cells()
	})
	if err != nil {
		return err
	}
	report.ReportID = id
	return nil
}

// UpdateReportStatus locates the row by its report_id cell and rewrites the status cell.
func (r *ReportRepository) UpdateReportStatus(ctx context.Context, reportID int64, status domain.ReportStatus) error {
	index := -1
	err := r.scan(ctx, func(i int, rep domain.Report) bool {
		if rep.ReportID == reportID {
			index = i
			return false
		}
		return true
	})
	if err != nil {
		return err
	}
	if index < 0 {
		return apperrors.ErrNotFound
	}
	return r.updateCell(ctx, index, models.ReportColStatus, string(status))
}
