package bot

// Fixed replies.
const (
	NotRegisteredMessage    = "You are not registered. Ask an administrator to add your Telegram id to the Users table."
	PermissionDeniedMessage = "Permission denied: this action requires the admin role."
	StoreFaultMessage       = "Something went wrong while talking to the database. Please try again later."
	UnknownCommandMessage   = "Unknown command. Send /help to see what I can do."
	PongMessage             = "Pong!"
)

// Reply keyboard labels, accepted as aliases of their commands.
const (
	LabelCheckIn  = "🟢 Start work"
	LabelCheckOut = "🔴 End work"
	LabelMyTasks  = "📋 My tasks"
	LabelUsers    = "👥 Users"
	LabelTasks    = "🗂 All tasks"
	LabelReports  = "📝 Pending reports"
	LabelHelp     = "❓ Help"
)

const employeeHelp = `Available commands:
/checkin - mark the start of work
/checkout - mark the end of work
/tasks - list your tasks
/status <task id> <status> - update one of your tasks (e.g. /status 3 done)
/report <task ids> | <problems> | <plan> - submit your daily report
/ping - check the bot is alive`

const adminHelp = `Admin commands:
/users - list all users
/tasks - list all tasks
/addtask <title> | <description> | <user ids> - create a task
/status <task id> <status> - set any task status
/reports - list pending reports
/approve <report id> - approve a report
/attendance [YYYY-MM-DD] - attendance for a day (default today)`

func keyboardFor(isAdmin bool) [][]string {
	rows := [][]string{
		{LabelCheckIn, LabelCheckOut},
		{LabelMyTasks, LabelHelp},
	}
	if isAdmin {
		rows = append(rows, []string{LabelUsers, LabelTasks}, []string{LabelReports})
	}
	return rows
}
