package bot

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/SscSPs/attendance_bot/internal/core/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// maxCellWidth bounds free-text columns so tables stay readable on a phone.
const maxCellWidth = 28

// maxReplyLen keeps replies under the Telegram 4096 character message limit.
const maxReplyLen = 3900

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-1]) + "…"
}

func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	out := t.String()
	if len(out) > maxReplyLen {
		out = out[:maxReplyLen]
		if i := strings.LastIndexByte(out, '\n'); i > 0 {
			out = out[:i]
		}
		out += "\n…"
	}
	return out
}

func renderUsers(users []domain.User) string {
	rows := make([][]string, len(users))
	for i, u := range users {
		rows[i] = []string{u.UserID, truncate(u.Name, maxCellWidth), string(u.Role)}
	}
	return renderTable([]string{"ID", "Name", "Role"}, rows)
}

func renderTasks(tasks []domain.Task) string {
	rows := make([][]string, len(tasks))
	for i, t := range tasks {
		rows[i] = []string{
			strconv.FormatInt(t.TaskID, 10),
			truncate(t.Title, maxCellWidth),
			domain.JoinAssignees(t.AssignedTo),
			string(t.Status),
		}
	}
	return renderTable([]string{"ID", "Title", "Assigned", "Status"}, rows)
}

func renderReports(reports []domain.Report) string {
	rows := make([][]string, len(reports))
	for i, r := range reports {
		rows[i] = []string{
			strconv.FormatInt(r.ReportID, 10),
			r.UserID,
			r.Date,
			domain.JoinTaskIDs(r.TaskIDs),
			truncate(r.TasksDoneDetails, maxCellWidth),
			truncate(r.Problems, maxCellWidth),
			truncate(r.Plan, maxCellWidth),
		}
	}
	return renderTable([]string{"ID", "User", "Date", "Tasks", "Done", "Problems", "Plan"}, rows)
}

func renderWorkLog(entries []domain.WorkLogEntry) string {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		worked := ""
		if d, ok := e.WorkedDuration(); ok {
			worked = formatDuration(d.Minutes())
		}
		rows[i] = []string{e.UserID, e.CheckInTime, e.CheckOutTime, worked}
	}
	return renderTable([]string{"User", "In", "Out", "Worked"}, rows)
}

func formatDuration(minutes float64) string {
	m := int(minutes)
	return strconv.Itoa(m/60) + "h" + leftPad(strconv.Itoa(m%60)) + "m"
}

func leftPad(s string) string {
	if len(s) < 2 {
		return "0" + s
	}
	return s
}
