// Package config loads console settings from the environment (and .env).
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	APIURL     string
	ListenAddr string
	Lang       string

	ScanRefreshDelay    time.Duration
	ScanAllRefreshDelay time.Duration

	RecentCampaigns int
	AlertLimit      int

	AMQPURL     string
	AuditQueue  string
	DatabaseURL string
}

// Load reads .env when present, then the process environment.
func Load(logger *zap.Logger) Config {
	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, relying on OS environment variables")
	}
	return FromEnv(logger)
}

// FromEnv builds a Config from the environment only.
func FromEnv(logger *zap.Logger) Config {
	return Config{
		APIURL:              GetEnvDefault("API_URL", "http://localhost:8000"),
		ListenAddr:          GetEnvDefault("LISTEN_ADDR", ":8080"),
		Lang:                GetEnvDefault("CONSOLE_LANG", "ko"),
		ScanRefreshDelay:    durationEnv(logger, "SCAN_REFRESH_DELAY", 3*time.Second),
		ScanAllRefreshDelay: durationEnv(logger, "SCAN_ALL_REFRESH_DELAY", 5*time.Second),
		RecentCampaigns:     intEnv(logger, "DASHBOARD_RECENT_CAMPAIGNS", 5),
		AlertLimit:          intEnv(logger, "DASHBOARD_ALERT_LIMIT", 10),
		AMQPURL:             os.Getenv("AMQP_URL"),
		AuditQueue:          GetEnvDefault("AUDIT_QUEUE", "console_audit"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
	}
}

// GetEnvDefault is a convenience function for handling env vars
func GetEnvDefault(key, defVal string) string {
	val, ex := os.LookupEnv(key)
	if !ex || val == "" {
		return defVal
	}
	return val
}

func durationEnv(logger *zap.Logger, key string, defVal time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defVal
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		logger.Warn("invalid duration, using default", zap.String("key", key), zap.String("value", raw), zap.Duration("default", defVal))
		return defVal
	}
	return d
}

func intEnv(logger *zap.Logger, key string, defVal int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defVal
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		logger.Warn("invalid integer, using default", zap.String("key", key), zap.String("value", raw), zap.Int("default", defVal))
		return defVal
	}
	return n
}

// InitLogger sets up the Zap Logger to log to the console in a human readable format
func InitLogger() *zap.Logger {
	prodConfig := zap.NewProductionConfig()
	prodConfig.Encoding = "console"
	prodConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	prodConfig.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	logger, err := prodConfig.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
