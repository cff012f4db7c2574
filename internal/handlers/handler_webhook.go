package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/attendance_bot/internal/adapters/telegram"
	"github.com/SscSPs/attendance_bot/internal/bot"
	"github.com/SscSPs/attendance_bot/internal/middleware"
	"github.com/SscSPs/attendance_bot/internal/platform/config"
	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Replier delivers the router's reply back to the chat an action came from.
type Replier interface {
	Send(ctx context.Context, chatID int64, reply bot.Reply) error
}

// webhookHandler turns Telegram updates into router actions.
type webhookHandler struct {
	router  *bot.Router
	replier Replier
}

func registerWebhookRoutes(r *gin.Engine, cfg *config.Config, router *bot.Router, replier Replier) error {
	limiterInstance, err := middleware.NewMemoryLimiter(cfg.WebhookRateLimit)
	if err != nil {
		return err
	}
	h := &webhookHandler{router: router, replier: replier}
	r.POST("/telegram/webhook/:secret",
		middleware.WebhookSecret(cfg.TelegramWebhookSecret),
		middleware.RateLimit(limiterInstance),
		h.handleUpdate,
	)
	return nil
}

// handleUpdate always acknowledges with 200 once the payload decodes, otherwise
// Telegram keeps redelivering the same update.
func (h *webhookHandler) handleUpdate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var update tgbotapi.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		logger.Warn("Failed to decode telegram update", slog.String("error", err.Error()))
		c.Status(http.StatusBadRequest)
		return
	}

	action, ok := telegram.ActionFromUpdate(update)
	if !ok {
		logger.Debug("Ignoring non-text update", slog.Int("update_id", update.UpdateID))
		c.Status(http.StatusOK)
		return
	}

	ctx := c.Request.Context()
	reply := h.router.Handle(ctx, action)
	if err := h.replier.Send(ctx, action.ChatID, reply); err != nil {
		logger.Error("Failed to send reply",
			slog.String("error", err.Error()),
			slog.Int64("chat_id", action.ChatID))
	}
	c.Status(http.StatusOK)
}
