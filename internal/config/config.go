package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	HTTPPort    string `envconfig:"HTTP_PORT" default:"8080"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	DBMaxConns  int    `envconfig:"DB_MAX_CONNS" default:"10"`

	// Redis Config
	RedisAddr      string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPass      string        `envconfig:"REDIS_PASSWORD"`
	RedisDB        int           `envconfig:"REDIS_DB" default:"0"`
	RecordCacheTTL time.Duration `envconfig:"RECORD_CACHE_TTL" default:"5m"`

	// Webhook Config
	WebhookURL        string        `envconfig:"WEBHOOK_URL"`
	WebhookSecret     string        `envconfig:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `envconfig:"WEBHOOK_TIMEOUT" default:"5s"`
	WebhookMaxRetries int           `envconfig:"WEBHOOK_MAX_RETRIES" default:"3"`
	WebhookBaseDelay  time.Duration `envconfig:"WEBHOOK_BASE_DELAY" default:"1s"`

	// Dedup Config
	DedupWindow              time.Duration `envconfig:"DEDUP_WINDOW" default:"720h"`
	DedupMaxRecords          int           `envconfig:"DEDUP_MAX_RECORDS" default:"100"`
	DedupConfidenceThreshold float64       `envconfig:"DEDUP_CONFIDENCE_THRESHOLD" default:"0.8"`
	DedupPageSize            int           `envconfig:"DEDUP_PAGE_SIZE" default:"100"`
	DedupMaxPages            int           `envconfig:"DEDUP_MAX_PAGES" default:"10"`
	DedupScoringWorkers      int           `envconfig:"DEDUP_SCORING_WORKERS" default:"4"`
	DedupInterval            time.Duration `envconfig:"DEDUP_INTERVAL" default:"0"`
	DedupLockTTL             time.Duration `envconfig:"DEDUP_LOCK_TTL" default:"10m"`
	DedupProfileFile         string        `envconfig:"DEDUP_PROFILE_FILE"`

	// API Keys for authentication
	APIKeys []string `envconfig:"API_KEYS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	keys := make([]string, 0, len(cfg.APIKeys))
	for _, key := range cfg.APIKeys {
		if trimmed := strings.TrimSpace(key); trimmed != "" {
			keys = append(keys, trimmed)
		}
	}
	cfg.APIKeys = keys

	if cfg.DedupConfidenceThreshold < 0 || cfg.DedupConfidenceThreshold > 1 {
		return nil, fmt.Errorf("DEDUP_CONFIDENCE_THRESHOLD must be between 0 and 1 (got %.2f)", cfg.DedupConfidenceThreshold)
	}
	if cfg.DedupMaxRecords <= 0 {
		return nil, fmt.Errorf("DEDUP_MAX_RECORDS must be positive (got %d)", cfg.DedupMaxRecords)
	}

	return cfg, nil
}
