package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/attendance_bot/internal/adapters/tabular/gsheets"
	"github.com/SscSPs/attendance_bot/internal/adapters/tabular/xlsx"
	"github.com/SscSPs/attendance_bot/internal/adapters/telegram"
	"github.com/SscSPs/attendance_bot/internal/bot"
	portsrepo "github.com/SscSPs/attendance_bot/internal/core/ports/repositories"
	"github.com/SscSPs/attendance_bot/internal/core/services"
	"github.com/SscSPs/attendance_bot/internal/handlers"
	"github.com/SscSPs/attendance_bot/internal/middleware"
	"github.com/SscSPs/attendance_bot/internal/platform/config"
	"github.com/SscSPs/attendance_bot/internal/repositories/tabular"
	"github.com/SscSPs/attendance_bot/pkg/spreadsheet"
	"github.com/gin-gonic/gin"
)

// @title Attendance Bot Admin API
// @version 1.0
// @description Admin API of the attendance, task and daily report bot.

// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Attendance bot stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	if err := tabular.EnsureSchema(ctx, store); err != nil {
		return err
	}
	logger.Info("Tabular store ready", slog.String("backend", cfg.StoreBackend))

	tg, err := telegram.NewClient(cfg.TelegramBotToken)
	if err != nil {
		return err
	}
	logger.Info("Telegram bot authorised", slog.String("username", tg.Username()))

	if cfg.TelegramWebhookURL != "" {
		if err := tg.SetWebhook(cfg.TelegramWebhookURL); err != nil {
			return err
		}
		logger.Info("Telegram webhook registered")
	}

	repos := tabular.NewRepositoryProvider(store)
	container := services.NewServiceContainer(cfg, repos, tg, logger)

	if err := container.Reminder.Start(); err != nil {
		return err
	}
	defer func() {
		select {
		case <-container.Reminder.Stop().Done():
		case <-time.After(30 * time.Second):
			logger.Warn("Timed out waiting for reminder jobs to finish")
		}
	}()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	if err := handlers.RegisterRoutes(r, cfg, container, bot.NewRouter(container), tg); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStore builds the configured tabular backend and its close func.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.TabularStore, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendXLSX:
		store, err := xlsx.Open(cfg.XLSXPath)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				logger.Error("Failed to close workbook", slog.String("error", err.Error()))
			}
		}, nil
	default:
		client, err := spreadsheet.NewHTTPClient(ctx, cfg.GoogleCredsJSON)
		if err != nil {
			return nil, nil, err
		}
		sheetsSvc, driveSvc, err := spreadsheet.NewServices(ctx, client)
		if err != nil {
			return nil, nil, err
		}
		id, err := spreadsheet.ResolveSpreadsheetID(ctx, driveSvc, cfg.SpreadsheetID, cfg.SpreadsheetName)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Using Google spreadsheet", slog.String("spreadsheet_id", id))
		return gsheets.NewStore(sheetsSvc, id), func() {}, nil
	}
}
