package domain

// ReportStatus defines the approval state of a daily report.
// The only transition is pending -> approved.
type ReportStatus string

const (
	ReportPending  ReportStatus = "pending"
	ReportApproved ReportStatus = "approved"
)

// Report is an end-of-day report submitted by an employee.
type Report struct {
	ReportID         int64        `json:"reportID"`
	UserID           string       `json:"userID"`
	Date             string       `json:"date"`
	TaskIDs          []int64      `json:"taskIDs"`
	TasksDoneDetails string       `json:"tasksDoneDetails"`
	Problems         string       `json:"problems"`
	Plan             string       `json:"plan"`
	Status           ReportStatus `json:"status"`
}

// IsPending reports whether the report still awaits approval.
func (r Report) IsPending() bool {
	return r.Status == ReportPending
}
