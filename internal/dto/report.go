package dto

import (
	"github.com/SscSPs/attendance_bot/internal/core/domain"
)

// CreateReportRequest defines the data an employee submits at the end of the day.
// TasksDoneDetails defaults to the titles of the referenced tasks when empty.
type CreateReportRequest struct {
	TaskIDs          []int64 `json:"taskIDs" validate:"required,min=1,dive,gt=0"`
	TasksDoneDetails string  `json:"tasksDoneDetails" validate:"max=2000"`
	Problems         string  `json:"problems" validate:"max=2000"`
	Plan             string  `json:"plan" validate:"max=2000"`
}

// ReportResponse defines the data returned for a report.
type ReportResponse struct {
	ReportID         int64   `json:"reportID"`
	UserID           string  `json:"userID"`
	Date             string  `json:"date"`
	TaskIDs          []int64 `json:"taskIDs"`
	TasksDoneDetails string  `json:"tasksDoneDetails"`
	Problems         string  `json:"problems"`
	Plan             string  `json:"plan"`
	Status           string  `json:"status"`
}

// ToReportResponse converts a domain.Report to ReportResponse DTO
func ToReportResponse(r *domain.Report) ReportResponse {
	return ReportResponse{
		ReportID:         r.ReportID,
		UserID:           r.UserID,
		Date:             r.Date,
		TaskIDs:          r.TaskIDs,
		TasksDoneDetails: r.TasksDoneDetails,
		Problems:         r.Problems,
		Plan:             r.Plan,
		Status:           string(r.Status),
	}
}

// ToListReportResponse converts a slice of domain.Report to a slice of ReportResponse DTOs
func ToListReportResponse(reports []domain.Report) []ReportResponse {
	res := make([]ReportResponse, len(reports))
	for i := range reports {
		res[i] = ToReportResponse(&reports[i])
	}
	return res
}
