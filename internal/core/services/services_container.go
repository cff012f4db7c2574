package services

import (
	"log/slog"

	portsrepo "github.com/SscSPs/attendance_bot/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/attendance_bot/internal/core/ports/services"
	"github.com/SscSPs/attendance_bot/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, notifier portssvc.Notifier, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Attendance = NewAttendanceService(repos.WorkLogRepo)
	container.Task = NewTaskService(repos.TaskRepo)
	container.Report = NewReportService(repos.ReportRepo, repos.TaskRepo)

	// The scheduler reads users through the service so role filtering stays in one place.
	container.Reminder = NewReminderService(
		container.User,
		notifier,
		WithReminderSpecs(cfg.ReminderStartSpec, cfg.ReminderEndSpec),
		WithReminderLogger(logger),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.UserSvcFacade       = (*UserService)(nil)
	_ portssvc.AttendanceSvcFacade = (*attendanceService)(nil)
	_ portssvc.TaskSvcFacade       = (*taskService)(nil)
	_ portssvc.ReportSvcFacade     = (*reportService)(nil)
	_ portssvc.ReminderSvc         = (*reminderService)(nil)
)
