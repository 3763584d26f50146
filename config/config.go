package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Telegram TelegramConfig
	Store    StoreConfig
	Log      LogConfig
	Metrics  MetricsConfig
}

type TelegramConfig struct {
	Token string
}

type StoreConfig struct {
	Lang     string // "ar" or "en"
	Currency string // empty uses the language default symbol
}

type LogConfig struct {
	Level  string
	Format string // "text" or "json"
}

type MetricsConfig struct {
	Addr string // empty disables the metrics listener
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	return &Config{
		Telegram: TelegramConfig{
			Token: getEnv("TOKEN", ""),
		},
		Store: StoreConfig{
			Lang:     strings.ToLower(getEnv("LANG_CODE", "ar")),
			Currency: getEnv("CURRENCY", ""),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		},
		Metrics: MetricsConfig{
			Addr: getEnv("METRICS_ADDR", ""),
		},
	}, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
