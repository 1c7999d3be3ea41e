package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Chat history backends.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

type Config struct {
	TelegramToken string

	HTTPAddr       string
	MaxUploadBytes int64
	MaxImagePixels int

	ModelPath         string
	ModelMetadataPath string
	ONNXLibraryPath   string

	ChatStore      string
	SQLitePath     string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	ChatHistoryTTL time.Duration

	LogLevel string
}

func Load() (*Config, error) {
	// A missing .env file is fine.
	_ = godotenv.Load()

	var errs []error

	cfg := &Config{
		TelegramToken:     os.Getenv("TELEGRAM_TOKEN"),
		HTTPAddr:          getEnv("HTTP_ADDR", ":8080"),
		ModelPath:         getEnv("MODEL_PATH", "models/brain_tumor.onnx"),
		ModelMetadataPath: os.Getenv("MODEL_METADATA_PATH"),
		ONNXLibraryPath:   os.Getenv("ONNXRUNTIME_LIB"),
		ChatStore:         strings.ToLower(getEnv("CHAT_STORE", StoreMemory)),
		SQLitePath:        getEnv("SQLITE_PATH", "data/chat.db"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.MaxUploadBytes, err = getEnvAsInt64("MAX_UPLOAD_BYTES", 10<<20); err != nil {
		errs = append(errs, err)
	}
	if cfg.MaxImagePixels, err = getEnvAsInt("MAX_IMAGE_PIXELS", 40_000_000); err != nil {
		errs = append(errs, err)
	}
	if cfg.RedisDB, err = getEnvAsInt("REDIS_DB", 0); err != nil {
		errs = append(errs, err)
	}
	if cfg.ChatHistoryTTL, err = getEnvAsDuration("CHAT_HISTORY_TTL", 0); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that do not depend on which surface is started.
func (c *Config) Validate() error {
	switch c.ChatStore {
	case StoreMemory:
	case StoreSQLite:
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required for the sqlite chat store")
		}
	case StoreRedis:
		if c.RedisAddr == "" {
			return errors.New("REDIS_ADDR is required for the redis chat store")
		}
	default:
		return fmt.Errorf("CHAT_STORE must be one of memory, sqlite, redis; got %q", c.ChatStore)
	}
	if c.MaxUploadBytes <= 0 {
		return errors.New("MAX_UPLOAD_BYTES must be positive")
	}
	if c.MaxImagePixels <= 0 {
		return errors.New("MAX_IMAGE_PIXELS must be positive")
	}
	if c.ChatHistoryTTL < 0 {
		return errors.New("CHAT_HISTORY_TTL must not be negative")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getEnvAsInt64(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
