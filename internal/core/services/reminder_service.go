package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/attendance_bot/internal/core/domain"
	portssvc "github.com/SscSPs/attendance_bot/internal/core/ports/services"
	"github.com/SscSPs/attendance_bot/internal/middleware"
	"github.com/robfig/cron/v3"
)

// Default trigger specs in standard 5-field cron syntax, weekdays only.
const (
	DefaultStartOfWorkSpec = "0 8 * * 1-5"
	DefaultEndOfWorkSpec   = "0 16 * * 1-5"
)

// Reminder texts pushed to employees.
const (
	StartOfWorkMessage = "Good morning! Don't forget to mark the start of work."
	EndOfWorkMessage   = "Time to wrap up! Don't forget to mark the end of work and submit your daily report."
)

// cronLogger adapts slog to the cron.Logger interface.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	args := append([]interface{}{slog.String("error", err.Error())}, keysAndValues...)
	l.logger.Error(msg, args...)
}

// reminderService implements the ReminderSvc interface on top of robfig/cron.
type reminderService struct {
	BaseService
	users    portssvc.UserReaderSvc
	notifier portssvc.Notifier
	logger   *slog.Logger

	startSpec string
	endSpec   string
	location  *time.Location

	mu      sync.Mutex
	cron    *cron.Cron
	running bool
}

// ReminderOption is a functional option for configuring the reminder service
type ReminderOption func(*reminderService)

// WithReminderSpecs overrides the start-of-work and end-of-work cron specs.
func WithReminderSpecs(startSpec, endSpec string) ReminderOption {
	return func(s *reminderService) {
		if startSpec != "" {
			s.startSpec = startSpec
		}
		if endSpec != "" {
			s.endSpec = endSpec
		}
	}
}

// WithReminderLogger sets the logger used by scheduled firings.
func WithReminderLogger(logger *slog.Logger) ReminderOption {
	return func(s *reminderService) {
		s.logger = logger
	}
}

// WithReminderLocation evaluates triggers in loc instead of time.Local.
func WithReminderLocation(loc *time.Location) ReminderOption {
	return func(s *reminderService) {
		s.location = loc
	}
}

// NewReminderService creates the scheduler. Nothing fires until Start is called.
func NewReminderService(users portssvc.UserReaderSvc, notifier portssvc.Notifier, options ...ReminderOption) portssvc.ReminderSvc {
	svc := &reminderService{
		users:     users,
		notifier:  notifier,
		logger:    slog.Default(),
		startSpec: DefaultStartOfWorkSpec,
		endSpec:   DefaultEndOfWorkSpec,
		location:  time.Local,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReminderSvc = (*reminderService)(nil)

func (s *reminderService) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return nil
	}

	logger := cronLogger{logger: s.logger.With(slog.String("component", "reminder_scheduler"))}
	c := cron.New(
		cron.WithLocation(s.location),
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger)),
	)
	if _, err := c.AddFunc(s.startSpec, s.job("start_of_work", s.BroadcastStartOfWork)); err != nil {
		return fmt.Errorf("error scheduling start-of-work reminder %q: %w", s.startSpec, err)
	}
	if _, err := c.AddFunc(s.endSpec, s.job("end_of_work", s.BroadcastEndOfWork)); err != nil {
		return fmt.Errorf("error scheduling end-of-work reminder %q: %w", s.endSpec, err)
	}

	c.Start()
	s.cron = c
	s.running = true
	s.logger.Info("Reminder scheduler started",
		slog.String("start_of_work", s.startSpec),
		slog.String("end_of_work", s.endSpec))
	return nil
}

func (s *reminderService) Stop() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		return ctx
	}
	s.running = false
	s.logger.Info("Reminder scheduler stopping")
	return s.cron.Stop()
}

// job wraps one broadcast in its own logger so every firing is traceable.
func (s *reminderService) job(trigger string, broadcast func(context.Context) portssvc.BroadcastResult) func() {
	return func() {
		logger := s.logger.With(slog.String("trigger", trigger))
		ctx := middleware.WithLogger(context.Background(), logger)
		result := broadcast(ctx)
		logger.Info("Reminder broadcast finished",
			slog.Int("recipients", result.Recipients),
			slog.Int("delivered", result.Delivered),
			slog.Int("failed", result.Failed))
	}
}

func (s *reminderService) BroadcastStartOfWork(ctx context.Context) portssvc.BroadcastResult {
	return s.broadcast(ctx, StartOfWorkMessage)
}

func (s *reminderService) BroadcastEndOfWork(ctx context.Context) portssvc.BroadcastResult {
	return s.broadcast(ctx, EndOfWorkMessage)
}

// broadcast re-reads the users table and sends text to every employee.
// A failed delivery is logged and does not stop the remaining sends.
func (s *reminderService) broadcast(ctx context.Context, text string) portssvc.BroadcastResult {
	var result portssvc.BroadcastResult

	employees, err := s.users.ListUsersByRole(ctx, domain.RoleEmployee)
	if err != nil {
		s.LogError(ctx, err, "Failed to load employees for reminder")
		return result
	}

	result.Recipients = len(employees)
	for _, u := range employees {
		if err := s.notifier.Notify(ctx, u.UserID, text); err != nil {
			result.Failed++
			s.LogError(ctx, err, "Failed to deliver reminder", slog.String("user_id", u.UserID))
			continue
		}
		result.Delivered++
	}
	return result
}
