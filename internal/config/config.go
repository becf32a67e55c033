package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageMemory = "memory"
	StorageSQLite = "sqlite"
)

type Config struct {
	Port            int
	Storage         string
	Playground      bool
	Introspection   bool
	LogVerbosity    int
	ShutdownTimeout time.Duration
}

func Default() Config {
	return Config{
		Port:            8080,
		Storage:         StorageMemory,
		Playground:      true,
		Introspection:   true,
		LogVerbosity:    0,
		ShutdownTimeout: 10 * time.Second,
	}
}

// LoadEnv подгружает .env, если он есть. Отсутствие файла ошибкой не считается.
func LoadEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}

// GetEnv возвращает значение переменной окружения или fallback
func GetEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

// FromEnv читает конфигурацию из окружения поверх значений по умолчанию
func FromEnv() (Config, error) {
	cfg := Default()
	var err error

	if cfg.Port, err = intEnv("PORT", cfg.Port); err != nil {
		return cfg, err
	}
	cfg.Storage = GetEnv("STORAGE", cfg.Storage)
	if cfg.Playground, err = boolEnv("PLAYGROUND", cfg.Playground); err != nil {
		return cfg, err
	}
	if cfg.Introspection, err = boolEnv("INTROSPECTION", cfg.Introspection); err != nil {
		return cfg, err
	}
	if cfg.LogVerbosity, err = intEnv("LOG_VERBOSITY", cfg.LogVerbosity); err != nil {
		return cfg, err
	}
	if v := os.Getenv("SHUTDOWN_TIMEOUT"); v != "" {
		cfg.ShutdownTimeout, err = time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", v, err)
		}
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	switch c.Storage {
	case StorageMemory, StorageSQLite:
	default:
		return fmt.Errorf("unknown storage type: %s", c.Storage)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive")
	}
	return nil
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func intEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return i, nil
}

func boolEnv(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return b, nil
}
