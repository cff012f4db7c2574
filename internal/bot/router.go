package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/SscSPs/attendance_bot/internal/apperrors"
	"github.com/SscSPs/attendance_bot/internal/core/domain"
	portssvc "github.com/SscSPs/attendance_bot/internal/core/ports/services"
	"github.com/SscSPs/attendance_bot/internal/dto"
	"github.com/SscSPs/attendance_bot/internal/middleware"
)

type handlerFunc func(ctx context.Context, user domain.User, args string) (Reply, error)

type command struct {
	adminOnly bool
	run       handlerFunc
}

// Router maps inbound actions to service calls and renders the reply.
// Every action resolves the sender against the Users table first.
type Router struct {
	services *portssvc.ServiceContainer
	commands map[string]command
	aliases  map[string]string
}

// NewRouter wires the command table onto the given services.
func NewRouter(services *portssvc.ServiceContainer) *Router {
	r := &Router{services: services}
	r.commands = map[string]command{
		"start":      {run: r.start},
		"help":       {run: r.help},
		"checkin":    {run: r.checkIn},
		"checkout":   {run: r.checkOut},
		"tasks":      {run: r.tasks},
		"mytasks":    {run: r.myTasks},
		"status":     {run: r.status},
		"report":     {run: r.report},
		"users":      {adminOnly: true, run: r.users},
		"reports":    {adminOnly: true, run: r.pendingReports},
		"approve":    {adminOnly: true, run: r.approve},
		"addtask":    {adminOnly: true, run: r.addTask},
		"attendance": {adminOnly: true, run: r.attendance},
	}
	r.aliases = map[string]string{
		LabelCheckIn:  "checkin",
		LabelCheckOut: "checkout",
		LabelMyTasks:  "mytasks",
		LabelUsers:    "users",
		LabelTasks:    "tasks",
		LabelReports:  "reports",
		LabelHelp:     "help",
	}
	return r
}

// Handle never returns an error: every fault becomes a user-facing reply.
func (r *Router) Handle(ctx context.Context, action Action) Reply {
	name, args := action.Command, action.Args
	if name == "" {
		name = r.aliases[strings.TrimSpace(action.Text)]
	}
	logger := middleware.GetLoggerFromCtx(ctx).With(
		slog.String("user_id", action.UserID),
		slog.String("command", name))
	ctx = middleware.WithLogger(ctx, logger)

	// Liveness check, answered before any store access.
	if name == "ping" {
		return Reply{Text: PongMessage}
	}

	cmd, ok := r.commands[name]
	if !ok {
		return Reply{Text: UnknownCommandMessage}
	}

	user, err := r.services.User.GetUserByID(ctx, action.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotRegistered) {
			logger.Info("Rejected action from unregistered user")
			return Reply{Text: NotRegisteredMessage}
		}
		logger.Error("Failed to resolve user", slog.String("error", err.Error()))
		return Reply{Text: StoreFaultMessage}
	}

	if cmd.adminOnly && !user.IsAdmin() {
		logger.Warn("Non-admin invoked admin command", slog.String("role", string(user.Role)))
		return Reply{Text: PermissionDeniedMessage}
	}

	reply, err := cmd.run(ctx, *user, args)
	if err != nil {
		return errorReply(ctx, err)
	}
	return reply
}

// errorReply maps service errors onto the fixed reply taxonomy.
func errorReply(ctx context.Context, err error) Reply {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return Reply{Text: "⚠️ " + validationDetail(err)}
	case errors.Is(err, apperrors.ErrForbidden):
		return Reply{Text: PermissionDeniedMessage}
	case errors.Is(err, apperrors.ErrNotFound):
		return Reply{Text: "Not found."}
	default:
		middleware.GetLoggerFromCtx(ctx).Error("Command failed", slog.String("error", err.Error()))
		return Reply{Text: StoreFaultMessage}
	}
}

// validationDetail returns the message after the validation sentinel.
func validationDetail(err error) string {
	msg := err.Error()
	marker := apperrors.ErrValidation.Error() + ": "
	if i := strings.Index(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}

func (r *Router) start(_ context.Context, user domain.User, _ string) (Reply, error) {
	name := user.Name
	if name == "" {
		name = user.UserID
	}
	return Reply{
		Text:     fmt.Sprintf("Hello, %s! You are registered as %s. Use the keyboard below or send /help.", name, user.Role),
		Keyboard: keyboardFor(user.IsAdmin()),
	}, nil
}

func (r *Router) help(_ context.Context, user domain.User, _ string) (Reply, error) {
	text := employeeHelp
	if user.IsAdmin() {
		text += "\n\n" + adminHelp
	}
	return Reply{Text: text, Keyboard: keyboardFor(user.IsAdmin())}, nil
}

func (r *Router) checkIn(ctx context.Context, user domain.User, _ string) (Reply, error) {
	outcome, entry, err := r.services.Attendance.CheckIn(ctx, user.UserID)
	if err != nil {
		return Reply{}, err
	}
	if outcome == domain.AlreadyCheckedIn {
		return Reply{Text: fmt.Sprintf("You have already checked in today at %s.", entry.CheckInTime)}, nil
	}
	return Reply{Text: fmt.Sprintf("✅ Start of work recorded at %s. Have a productive day!", entry.CheckInTime)}, nil
}

func (r *Router) checkOut(ctx context.Context, user domain.User, _ string) (Reply, error) {
	outcome, entry, err := r.services.Attendance.CheckOut(ctx, user.UserID)
	if err != nil {
		return Reply{}, err
	}
	if outcome == domain.NotCheckedInOrAlreadyOut {
		return Reply{Text: "You have not checked in today or have already checked out."}, nil
	}
	text := fmt.Sprintf("✅ End of work recorded at %s.", entry.CheckOutTime)
	if d, ok := entry.WorkedDuration(); ok {
		text += " Worked " + formatDuration(d.Minutes()) + "."
	}
	return Reply{Text: text + " Don't forget your daily /report."}, nil
}

// tasks lists every task for admins and only assigned tasks for everyone else.
func (r *Router) tasks(ctx context.Context, user domain.User, _ string) (Reply, error) {
	filter := user.UserID
	if user.IsAdmin() {
		filter = ""
	}
	return r.listTasks(ctx, filter)
}

func (r *Router) myTasks(ctx context.Context, user domain.User, _ string) (Reply, error) {
	return r.listTasks(ctx, user.UserID)
}

func (r *Router) listTasks(ctx context.Context, filterUserID string) (Reply, error) {
	tasks, err := r.services.Task.ListTasks(ctx, filterUserID)
	if err != nil {
		return Reply{}, err
	}
	if len(tasks) == 0 {
		return Reply{Text: "No tasks."}, nil
	}
	return Reply{Text: renderTasks(tasks), Preformatted: true}, nil
}

func (r *Router) status(ctx context.Context, user domain.User, args string) (Reply, error) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		return Reply{Text: "Usage: /status <task id> <status>"}, nil
	}
	taskID, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil || taskID <= 0 {
		return Reply{Text: "Task id must be a positive number."}, nil
	}
	if err := r.services.Task.UpdateTaskStatus(ctx, taskID, domain.TaskStatus(fields[1]), user); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return Reply{Text: fmt.Sprintf("Task #%d not found.", taskID)}, nil
		}
		return Reply{}, err
	}
	return Reply{Text: fmt.Sprintf("Task #%d is now %s.", taskID, strings.ToLower(fields[1]))}, nil
}

// report parses "<ids> | <problems> | <plan>"; problems and plan are optional.
func (r *Router) report(ctx context.Context, user domain.User, args string) (Reply, error) {
	parts := strings.SplitN(args, "|", 3)
	ids, err := domain.ParseTaskIDs(parts[0])
	if err != nil || len(ids) == 0 {
		return Reply{Text: "Usage: /report <task ids> | <problems> | <plan>\nExample: /report 1,3 | none | finish the release"}, nil
	}
	req := dto.CreateReportRequest{TaskIDs: ids}
	if len(parts) > 1 {
		req.Problems = strings.TrimSpace(parts[1])
	}
	if len(parts) > 2 {
		req.Plan = strings.TrimSpace(parts[2])
	}

	report, err := r.services.Report.CreateReport(ctx, user.UserID, req)
	if err != nil {
		return Reply{}, err
	}
	return Reply{Text: fmt.Sprintf("📝 Report #%d submitted and waiting for approval.", report.ReportID)}, nil
}

func (r *Router) users(ctx context.Context, _ domain.User, _ string) (Reply, error) {
	users, err := r.services.User.ListUsers(ctx)
	if err != nil {
		return Reply{}, err
	}
	if len(users) == 0 {
		return Reply{Text: "No users."}, nil
	}
	return Reply{Text: renderUsers(users), Preformatted: true}, nil
}

func (r *Router) pendingReports(ctx context.Context, _ domain.User, _ string) (Reply, error) {
	reports, err := r.services.Report.ListPendingReports(ctx)
	if err != nil {
		return Reply{}, err
	}
	if len(reports) == 0 {
		return Reply{Text: "No pending reports."}, nil
	}
	return Reply{Text: renderReports(reports), Preformatted: true}, nil
}

func (r *Router) approve(ctx context.Context, _ domain.User, args string) (Reply, error) {
	reportID, err := strconv.ParseInt(strings.TrimSpace(args), 10, 64)
	if err != nil || reportID <= 0 {
		return Reply{Text: "Usage: /approve <report id>"}, nil
	}
	if err := r.services.Report.ApproveReport(ctx, reportID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return Reply{Text: fmt.Sprintf("Report #%d not found.", reportID)}, nil
		}
		return Reply{}, err
	}
	return Reply{Text: fmt.Sprintf("Report #%d approved.", reportID)}, nil
}

// addTask parses "<title> | <description> | <user ids>".
func (r *Router) addTask(ctx context.Context, user domain.User, args string) (Reply, error) {
	parts := strings.Split(args, "|")
	if len(parts) != 3 {
		return Reply{Text: "Usage: /addtask <title> | <description> | <user ids>\nExample: /addtask Deploy v2 | roll out to prod | 42,43"}, nil
	}
	req := dto.CreateTaskRequest{
		Title:       strings.TrimSpace(parts[0]),
		Description: strings.TrimSpace(parts[1]),
		AssignedTo:  domain.ParseAssignees(parts[2]),
	}
	task, err := r.services.Task.AddTask(ctx, req, user.UserID)
	if err != nil {
		return Reply{}, err
	}
	return Reply{Text: fmt.Sprintf("Task #%d created and assigned to %s.", task.TaskID, domain.JoinAssignees(task.AssignedTo))}, nil
}

func (r *Router) attendance(ctx context.Context, _ domain.User, args string) (Reply, error) {
	entries, err := r.services.Attendance.ListDay(ctx, strings.TrimSpace(args))
	if err != nil {
		return Reply{}, err
	}
	if len(entries) == 0 {
		return Reply{Text: "Nobody has checked in."}, nil
	}
	return Reply{Text: renderWorkLog(entries), Preformatted: true}, nil
}
