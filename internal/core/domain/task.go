package domain

import (
	"strconv"
	"strings"
)

// TaskStatus defines the lifecycle state of a task. Values other than the
// constants below are stored verbatim when an admin sets them.
type TaskStatus string

const (
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

// AssigneeSeparator joins user ids inside the assigned_to cell.
const AssigneeSeparator = ","

// Task represents a unit of work assigned to one or more users.
type Task struct {
	TaskID      int64      `json:"taskID"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	AssignedTo  []string   `json:"assignedTo"`
	Status      TaskStatus `json:"status"`
	CreatedDate string     `json:"createdDate"`
	CreatedBy   string     `json:"createdBy"`
}

// IsAssignedTo reports whether userID is one of the task's assignees.
// The comparison is token-exact: "4" does not match "42".
func (t Task) IsAssignedTo(userID string) bool {
	for _, id := range t.AssignedTo {
		if id == userID {
			return true
		}
	}
	return false
}

// ParseAssignees splits a delimited assigned_to cell into trimmed user ids.
func ParseAssignees(cell string) []string {
	if strings.TrimSpace(cell) == "" {
		return []string{}
	}
	parts := strings.Split(cell, AssigneeSeparator)
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}

// JoinAssignees renders user ids back into the assigned_to cell format.
func JoinAssignees(ids []string) string {
	return strings.Join(ids, AssigneeSeparator)
}

// ParseTaskIDs parses a comma separated list of positive task ids.
func ParseTaskIDs(s string) ([]int64, error) {
	var ids []int64
	for _, p := range strings.Split(s, AssigneeSeparator) {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// JoinTaskIDs renders task ids as a comma separated list.
func JoinTaskIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, AssigneeSeparator)
}
