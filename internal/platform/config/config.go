package config

import (
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/attendance_bot/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store backends accepted by STORE_BACKEND.
const (
	BackendGoogleSheets = "gsheets"
	BackendXLSX         = "xlsx"
)

// Config holds application configuration.
type Config struct {
	Port         string `validate:"required"`
	IsProduction bool
	LogLevel     slog.Level

	// Telegram
	TelegramBotToken      string `validate:"required"`
	TelegramWebhookURL    string `validate:"omitempty,url"`
	TelegramWebhookSecret string `validate:"required_if=IsProduction true,required_with=TelegramWebhookURL"`

	// Tabular store
	StoreBackend    string `validate:"oneof=gsheets xlsx"`
	GoogleCredsJSON string `validate:"required_if=StoreBackend gsheets"`
	SpreadsheetID   string
	SpreadsheetName string `validate:"required_without=SpreadsheetID"`
	XLSXPath        string `validate:"required_if=StoreBackend xlsx"`

	// Reminder triggers, standard 5-field cron specs
	ReminderStartSpec string `validate:"required"`
	ReminderEndSpec   string `validate:"required"`

	// Admin API, mounted only when AdminPasswordHash is set
	JWTSecret          string `validate:"required_with=AdminPasswordHash,omitempty,min=16"`
	JWTExpiryDuration  time.Duration
	JWTIssuer          string
	AdminPasswordHash  string
	CORSAllowedOrigins []string `validate:"dive,url"`

	// Rate limits in ulule/limiter format, e.g. "60-S"
	WebhookRateLimit string `validate:"required"`
	LoginRateLimit   string `validate:"required"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("TELEGRAM_BOT_TOKEN", "")
	v.SetDefault("TELEGRAM_WEBHOOK_URL", "")
	v.SetDefault("TELEGRAM_WEBHOOK_SECRET", "")
	v.SetDefault("STORE_BACKEND", BackendGoogleSheets)
	v.SetDefault("GOOGLE_CREDS_JSON", "")
	v.SetDefault("SPREADSHEET_ID", "")
	v.SetDefault("SPREADSHEET_NAME", "SulakBotDB")
	v.SetDefault("XLSX_PATH", "attendance.xlsx")
	v.SetDefault("REMINDER_START_SPEC", "0 8 * * 1-5")
	v.SetDefault("REMINDER_END_SPEC", "0 16 * * 1-5")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", "attendance-bot")
	v.SetDefault("ADMIN_PASSWORD_HASH", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")
	v.SetDefault("WEBHOOK_RATE_LIMIT", "60-S")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:                  v.GetString("PORT"),
		IsProduction:          v.GetBool("IS_PRODUCTION"),
		TelegramBotToken:      v.GetString("TELEGRAM_BOT_TOKEN"),
		TelegramWebhookURL:    v.GetString("TELEGRAM_WEBHOOK_URL"),
		TelegramWebhookSecret: v.GetString("TELEGRAM_WEBHOOK_SECRET"),
		StoreBackend:          strings.ToLower(v.GetString("STORE_BACKEND")),
		GoogleCredsJSON:       v.GetString("GOOGLE_CREDS_JSON"),
		SpreadsheetID:         v.GetString("SPREADSHEET_ID"),
		SpreadsheetName:       v.GetString("SPREADSHEET_NAME"),
		XLSXPath:              v.GetString("XLSX_PATH"),
		ReminderStartSpec:     v.GetString("REMINDER_START_SPEC"),
		ReminderEndSpec:       v.GetString("REMINDER_END_SPEC"),
		JWTSecret:             v.GetString("JWT_SECRET"),
		JWTIssuer:             v.GetString("JWT_ISSUER"),
		AdminPasswordHash:     v.GetString("ADMIN_PASSWORD_HASH"),
		CORSAllowedOrigins:    splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		WebhookRateLimit:      v.GetString("WEBHOOK_RATE_LIMIT"),
		LoginRateLimit:        v.GetString("LOGIN_RATE_LIMIT"),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString("LOG_LEVEL"))); err != nil {
		log.Printf("Warning: Invalid value for LOG_LEVEL ('%s'). Defaulting to info.\n", v.GetString("LOG_LEVEL"))
		cfg.LogLevel = slog.LevelInfo
	}

	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	if cfg.AdminPasswordHash == "" {
		log.Println("Warning: ADMIN_PASSWORD_HASH not set. Admin API is disabled.")
	} else if !utils.IsBcryptHash(cfg.AdminPasswordHash) {
		return nil, fmt.Errorf("invalid configuration: ADMIN_PASSWORD_HASH is not a bcrypt hash")
	}
	if cfg.TelegramWebhookSecret == "" && !cfg.IsProduction && cfg.TelegramWebhookURL == "" {
		log.Println("Warning: TELEGRAM_WEBHOOK_SECRET not set. The webhook path is unauthenticated.")
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// AdminAPIEnabled reports whether the login route and the /api/v1 group are served.
func (c *Config) AdminAPIEnabled() bool {
	return c.AdminPasswordHash != ""
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
