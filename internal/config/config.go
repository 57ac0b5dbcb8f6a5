package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-WorkplaceService/internal/domain"
)

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Database     DatabaseConfig     `toml:"database"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Reservations ReservationsConfig `toml:"reservations"`
	Redis        RedisConfig        `toml:"redis"`
	CORS         CORSConfig         `toml:"cors"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ReservationsConfig настройки бронирования
type ReservationsConfig struct {
	HorizonDays      int    `toml:"horizon_days"`
	LockTimeoutMs    int    `toml:"lock_timeout_ms"`
	MaxRetries       int    `toml:"max_retries"`
	RetryBackoffMs   int    `toml:"retry_backoff_ms"`
	AdmissionTimeout int    `toml:"admission_timeout_ms"`
	Timezone         string `toml:"timezone"`
}

// Location временная зона, в которой определяется "сегодня"
func (r ReservationsConfig) Location() (*time.Location, error) {
	if r.Timezone == "" {
		return time.Local, nil
	}
	return time.LoadLocation(r.Timezone)
}

// RedisConfig настройки кэша
type RedisConfig struct {
	Enabled           bool   `toml:"enabled"`
	URL               string `toml:"url"`
	SummaryTTLSeconds int    `toml:"summary_ttl_seconds"`
}

// CORSConfig настройки CORS
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// Load загружает конфигурацию из TOML файла и применяет переменные окружения
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{Level: "info"},
		Metrics: MetricsConfig{
			Path:        "/metrics",
			ServiceName: "workplace-service",
		},
		Reservations: ReservationsConfig{
			HorizonDays:      domain.DefaultHorizonDays,
			LockTimeoutMs:    2000,
			MaxRetries:       3,
			RetryBackoffMs:   20,
			AdmissionTimeout: 5000,
		},
		Redis: RedisConfig{SummaryTTLSeconds: 300},
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		c.Redis.URL = v
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.Reservations.HorizonDays < 0 {
		return fmt.Errorf("%w: reservations.horizon_days must not be negative", ErrInvalidConfig)
	}
	if c.Reservations.MaxRetries < 0 {
		return fmt.Errorf("%w: reservations.max_retries must not be negative", ErrInvalidConfig)
	}
	if _, err := c.Reservations.Location(); err != nil {
		return fmt.Errorf("%w: reservations.timezone: %v", ErrInvalidConfig, err)
	}
	if c.Redis.Enabled && c.Redis.URL == "" {
		return fmt.Errorf("%w: redis.url is required when redis is enabled", ErrInvalidConfig)
	}
	return nil
}
