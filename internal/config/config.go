package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Dataset DatasetConfig
	Query   QueryConfig
	Client  ClientConfig
	Log     LogConfig
}

type ServerConfig struct {
	Host            string        `env:"SERVER_HOST" envDefault:"0.0.0.0"`
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatasetConfig struct {
	Size int `env:"DATASET_SIZE" envDefault:"1000"`
	// 0: сид от текущего времени
	Seed uint64 `env:"DATASET_SEED" envDefault:"0"`
}

type QueryConfig struct {
	DefaultPageSize int `env:"QUERY_DEFAULT_PAGE_SIZE" envDefault:"10"`
}

type ClientConfig struct {
	BaseURL string        `env:"CLIENT_BASE_URL" envDefault:"http://localhost:8080"`
	Timeout time.Duration `env:"CLIENT_TIMEOUT" envDefault:"10s"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
	// json или console
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load загружает конфигурацию из переменных окружения
func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения, которые env не может проверить сам
func (c *Config) Validate() error {
	if c.Dataset.Size < 0 {
		return fmt.Errorf("DATASET_SIZE must not be negative, got %d", c.Dataset.Size)
	}
	if c.Query.DefaultPageSize < 1 {
		return fmt.Errorf("QUERY_DEFAULT_PAGE_SIZE must be positive, got %d", c.Query.DefaultPageSize)
	}
	return nil
}
