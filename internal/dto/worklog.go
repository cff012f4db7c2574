package dto

import (
	"github.com/SscSPs/attendance_bot/internal/core/domain"
)

// ListWorkLogParams defines query parameters for the daily attendance view.
type ListWorkLogParams struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// WorkLogEntryResponse defines the data returned for one attendance row.
type WorkLogEntryResponse struct {
	SequenceID    int64  `json:"sequenceID"`
	UserID        string `json:"userID"`
	Date          string `json:"date"`
	CheckInTime   string `json:"checkInTime"`
	CheckOutTime  string `json:"checkOutTime"`
	WorkedMinutes *int   `json:"workedMinutes,omitempty"`
}

// ToWorkLogEntryResponse converts a domain.WorkLogEntry to its response DTO
func ToWorkLogEntryResponse(e *domain.WorkLogEntry) WorkLogEntryResponse {
	res := WorkLogEntryResponse{
		SequenceID:   e.SequenceID,
		UserID:       e.UserID,
		Date:         e.Date,
		CheckInTime:  e.CheckInTime,
		CheckOutTime: e.CheckOutTime,
	}
	if d, ok := e.WorkedDuration(); ok {
		minutes := int(d.Minutes())
		res.WorkedMinutes = &minutes
	}
	return res
}

// ToListWorkLogResponse converts a slice of entries to response DTOs
func ToListWorkLogResponse(entries []domain.WorkLogEntry) []WorkLogEntryResponse {
	res := make([]WorkLogEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToWorkLogEntryResponse(&entries[i])
	}
	return res
}
