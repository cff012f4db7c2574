package telegram

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"strconv"

	"github.com/SscSPs/attendance_bot/internal/bot"
	portssvc "github.com/SscSPs/attendance_bot/internal/core/ports/services"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Client wraps the Bot API. BotAPI.Send is safe for concurrent use, so one
// Client serves both command replies and scheduled broadcasts.
type Client struct {
	api *tgbotapi.BotAPI
}

type options struct {
	endpoint   string
	httpClient tgbotapi.HTTPClient
}

// Option configures a Client.
type Option func(*options)

// WithEndpoint overrides the Bot API endpoint format, "<base>/bot%s/%s".
func WithEndpoint(endpoint string) Option {
	return func(o *options) {
		o.endpoint = endpoint
	}
}

// WithHTTPClient overrides the HTTP client used for API calls.
func WithHTTPClient(client tgbotapi.HTTPClient) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// NewClient authenticates the token with getMe.
func NewClient(token string, opts ...Option) (*Client, error) {
	o := options{endpoint: tgbotapi.APIEndpoint, httpClient: &http.Client{}}
	for _, opt := range opts {
		opt(&o)
	}
	api, err := tgbotapi.NewBotAPIWithClient(token, o.endpoint, o.httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return &Client{api: api}, nil
}

var _ portssvc.Notifier = (*Client)(nil)

// Username returns the bot's @username.
func (c *Client) Username() string {
	return c.api.Self.UserName
}

// Notify sends text to a private chat. Telegram user ids double as private chat ids.
func (c *Client) Notify(ctx context.Context, userID string, text string) error {
	chatID, err := strconv.ParseInt(userID, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid telegram user id %q: %w", userID, err)
	}
	return c.Send(ctx, chatID, bot.Reply{Text: text})
}

// Send delivers reply to chatID.
func (c *Client) Send(ctx context.Context, chatID int64, reply bot.Reply) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := c.api.Send(newMessage(chatID, reply)); err != nil {
		return fmt.Errorf("failed to send message to %d: %w", chatID, err)
	}
	return nil
}

func newMessage(chatID int64, reply bot.Reply) tgbotapi.MessageConfig {
	msg := tgbotapi.NewMessage(chatID, reply.Text)
	if reply.Preformatted {
		msg.Text = "<pre>" + html.EscapeString(reply.Text) + "</pre>"
		msg.ParseMode = tgbotapi.ModeHTML
	}
	if len(reply.Keyboard) > 0 {
		rows := make([][]tgbotapi.KeyboardButton, len(reply.Keyboard))
		for i, labels := range reply.Keyboard {
			buttons := make([]tgbotapi.KeyboardButton, len(labels))
			for j, label := range labels {
				buttons[j] = tgbotapi.NewKeyboardButton(label)
			}
			rows[i] = tgbotapi.NewKeyboardButtonRow(buttons...)
		}
		keyboard := tgbotapi.NewReplyKeyboard(rows...)
		keyboard.ResizeKeyboard = true
		msg.ReplyMarkup = keyboard
	}
	return msg
}

// SetWebhook points Telegram at url.
func (c *Client) SetWebhook(url string) error {
	wh, err := tgbotapi.NewWebhook(url)
	if err != nil {
		return fmt.Errorf("invalid webhook url: %w", err)
	}
	if _, err := c.api.Request(wh); err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}
	return nil
}

// ActionFromUpdate decodes a text message update. Other update kinds are ignored.
func ActionFromUpdate(update tgbotapi.Update) (bot.Action, bool) {
	msg := update.Message
	if msg == nil || msg.From == nil || msg.Chat == nil || msg.Text == "" {
		return bot.Action{}, false
	}
	command, args := bot.ParseCommand(msg.Text)
	return bot.Action{
		UserID:  strconv.FormatInt(msg.From.ID, 10),
		ChatID:  msg.Chat.ID,
		Command: command,
		Args:    args,
		Text:    msg.Text,
	}, true
}
