package repositories

import (
	"context"

	"github.com/SscSPs/attendance_bot/internal/core/domain"
)

// ReportReader defines read operations for daily reports
type ReportReader interface {
	// ListReports returns every report in store order (ascending id).
	ListReports(ctx context.Context) ([]domain.Report, error)

	// FindReportByID scans for the report with the given id.
	FindReportByID(ctx context.Context, reportID int64) (*domain.Report, error)
}

// ReportWriter defines write operations for daily reports
type ReportWriter interface {
	// SaveReport appends the report, assigning ReportID. The assigned id is written back into report.
	SaveReport(ctx context.Context, report *domain.Report) error

	// UpdateReportStatus finds the report by id and sets its status cell.
	UpdateReportStatus(ctx context.Context, reportID int64, status domain.ReportStatus) error
}

// ReportRepositoryFacade combines all report repository interfaces
type ReportRepositoryFacade interface {
	ReportReader
	ReportWriter
}
