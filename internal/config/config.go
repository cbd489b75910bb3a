package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Драйверы хранилища сезонов
const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

var (
	// ErrInvalidConfig возвращается при некорректной конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Storage  StorageConfig  `toml:"storage"`
	Database DatabaseConfig `toml:"database"`
	Pricing  PricingConfig  `toml:"pricing"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// StorageConfig выбор хранилища: postgres или memory
type StorageConfig struct {
	Driver string `toml:"driver"`
}

// DatabaseConfig настройки PostgreSQL
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

// PricingConfig настройки расчета стоимости
type PricingConfig struct {
	// Timezone часовой пояс, в котором определяется "сегодня"
	Timezone string `toml:"timezone"`
	// MaxStayNights максимальная длина проживания в одном расчете
	MaxStayNights int `toml:"max_stay_nights"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Location возвращает часовой пояс расчета стоимости
func (p PricingConfig) Location() (*time.Location, error) {
	if p.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(p.Timezone)
}

// Load читает конфигурацию из TOML файла.
// Перед этим подгружает .env (если есть), переменные окружения SMC_* имеют приоритет над файлом.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port=%d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Storage.Driver {
	case StorageDriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("%w: database.host and database.dbname are required for postgres storage", ErrInvalidConfig)
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("%w: storage.driver=%q", ErrInvalidConfig, c.Storage.Driver)
	}

	if _, err := c.Pricing.Location(); err != nil {
		return fmt.Errorf("%w: pricing.timezone: %v", ErrInvalidConfig, err)
	}

	if c.Pricing.MaxStayNights <= 0 {
		return fmt.Errorf("%w: pricing.max_stay_nights=%d", ErrInvalidConfig, c.Pricing.MaxStayNights)
	}

	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("%w: metrics.path is required when metrics are enabled", ErrInvalidConfig)
	}

	return nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Storage: StorageConfig{Driver: StorageDriverPostgres},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Pricing: PricingConfig{Timezone: "UTC", MaxStayNights: 730},
		Logs:    LogsConfig{Level: "info"},
		Metrics: MetricsConfig{Path: "/metrics", ServiceName: "smc_season_pricing"},
	}
}

func applyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv("SMC_STORAGE_DRIVER"); ok {
		cfg.Storage.Driver = v
	}
	if v, ok := os.LookupEnv("SMC_DB_HOST"); ok {
		cfg.Database.Host = v
	}
	if v, ok := os.LookupEnv("SMC_DB_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: SMC_DB_PORT=%q", ErrInvalidConfig, v)
		}
		cfg.Database.Port = port
	}
	if v, ok := os.LookupEnv("SMC_DB_USER"); ok {
		cfg.Database.User = v
	}
	if v, ok := os.LookupEnv("SMC_DB_PASSWORD"); ok {
		cfg.Database.Password = v
	}
	if v, ok := os.LookupEnv("SMC_DB_NAME"); ok {
		cfg.Database.DBName = v
	}
	if v, ok := os.LookupEnv("SMC_LOG_LEVEL"); ok {
		cfg.Logs.Level = v
	}
	return nil
}
