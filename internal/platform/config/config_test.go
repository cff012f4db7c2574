package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/attendance_bot/internal/utils"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseViper() *viper.Viper {
	v := viper.New()
	v.Set("PORT", "9090")
	v.Set("LOG_LEVEL", "debug")
	v.Set("TELEGRAM_BOT_TOKEN", "123:abc")
	v.Set("STORE_BACKEND", "xlsx")
	v.Set("XLSX_PATH", "/tmp/attendance.xlsx")
	v.Set("SPREADSHEET_NAME", "SulakBotDB")
	v.Set("REMINDER_START_SPEC", "0 8 * * 1-5")
	v.Set("REMINDER_END_SPEC", "0 16 * * 1-5")
	v.Set("JWT_SECRET", "test-secret-key-that-is-long-enough")
	v.Set("JWT_EXPIRY_DURATION", "30m")
	v.Set("WEBHOOK_RATE_LIMIT", "60-S")
	v.Set("LOGIN_RATE_LIMIT", "5-M")
	v.Set("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	return v
}

func TestFromViper_Valid(t *testing.T) {
	cfg, err := fromViper(baseViper())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, BackendXLSX, cfg.StoreBackend)
	assert.Equal(t, 30*time.Minute, cfg.JWTExpiryDuration)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
}

func TestFromViper_InvalidDurationFallsBack(t *testing.T) {
	v := baseViper()
	v.Set("JWT_EXPIRY_DURATION", "soon")

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
}

func TestFromViper_AdminAPIDisabledWithoutHash(t *testing.T) {
	cfg, err := fromViper(baseViper())
	require.NoError(t, err)

	assert.False(t, cfg.AdminAPIEnabled())
}

func TestFromViper_HardenedProduction(t *testing.T) {
	hash, err := utils.HashPassword("correct horse")
	require.NoError(t, err)

	v := baseViper()
	v.Set("IS_PRODUCTION", true)
	v.Set("TELEGRAM_WEBHOOK_URL", "https://bot.example.com/telegram/webhook/s3cr3t")
	v.Set("TELEGRAM_WEBHOOK_SECRET", "s3cr3t")
	v.Set("ADMIN_PASSWORD_HASH", hash)

	cfg, err := fromViper(v)
	require.NoError(t, err)
	assert.True(t, cfg.AdminAPIEnabled())
}

func TestFromViper_Rejects(t *testing.T) {
	hash, err := utils.HashPassword("correct horse")
	require.NoError(t, err)

	tests := []struct {
		name string
		set  map[string]any
	}{
		{name: "unknown backend", set: map[string]any{"STORE_BACKEND": "postgres"}},
		{name: "missing token", set: map[string]any{"TELEGRAM_BOT_TOKEN": ""}},
		{name: "gsheets without credentials", set: map[string]any{"STORE_BACKEND": "gsheets"}},
		{name: "short jwt secret", set: map[string]any{"JWT_SECRET": "short"}},
		{name: "plain admin password", set: map[string]any{"ADMIN_PASSWORD_HASH": "hunter2"}},
		{name: "admin api without jwt secret", set: map[string]any{
			"ADMIN_PASSWORD_HASH": hash,
			"JWT_SECRET":          "",
		}},
		{name: "production without webhook secret", set: map[string]any{
			"IS_PRODUCTION": true,
		}},
		{name: "webhook url without secret", set: map[string]any{
			"TELEGRAM_WEBHOOK_URL": "https://bot.example.com/telegram/webhook/x",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := baseViper()
			for key, val := range tt.set {
				v.Set(key, val)
			}
			_, err := fromViper(v)
			assert.Error(t, err)
		})
	}
}
