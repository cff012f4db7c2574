package services

import (
	"context"

	"github.com/SscSPs/attendance_bot/internal/core/domain"
	"github.com/SscSPs/attendance_bot/internal/dto"
)

// ReportWriterSvc defines the employee side of the daily report workflow
type ReportWriterSvc interface {
	// CreateReport stores a pending report for userID and returns it with its assigned id.
	CreateReport(ctx context.Context, userID string, req dto.CreateReportRequest) (*domain.Report, error)
}

// ReportReviewSvc defines the admin side of the daily report workflow
type ReportReviewSvc interface {
	// ListPendingReports returns pending reports oldest first.
	ListPendingReports(ctx context.Context) ([]domain.Report, error)

	// ApproveReport moves a report to approved. Returns apperrors.ErrNotFound for unknown ids.
	ApproveReport(ctx context.Context, reportID int64) error
}

// ReportSvcFacade combines all report service interfaces
type ReportSvcFacade interface {
	ReportWriterSvc
	ReportReviewSvc
}
