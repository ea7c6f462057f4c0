package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-FotoStudio/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Session   SessionConfig   `toml:"session"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Studio    StudioConfig    `toml:"studio"`
	Admin     AdminConfig     `toml:"admin"`
	CSRF      CSRFConfig      `toml:"csrf"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type SessionConfig struct {
	CookieName    string `toml:"cookie_name"`
	IdleTimeout   int    `toml:"idle_timeout"`   // минуты
	SweepInterval int    `toml:"sweep_interval"` // минуты
	Secure        bool   `toml:"secure"`
}

type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

type StudioConfig struct {
	Name         string `toml:"name"`
	Timezone     string `toml:"timezone"`
	PhoneRegion  string `toml:"phone_region"`
	Phone        string `toml:"phone"`
	PhoneDisplay string `toml:"phone_display"`
	Email        string `toml:"email"`
	Address      string `toml:"address"`
	InstagramURL string `toml:"instagram_url"`
	TelegramURL  string `toml:"telegram_url"`
}

type AdminConfig struct {
	// ToggleEnabled разрешает переключатель режима администратора.
	// Переключатель не проверяет учетные данные.
	ToggleEnabled bool `toml:"toggle_enabled"`
}

type CSRFConfig struct {
	// Key 32-байтный ключ; задается через FOTOSTUDIO_CSRF_KEY
	Key string `toml:"-"`
}

// Load загружает .env (если есть) рядом с файлом конфигурации, затем TOML,
// применяет переопределения из окружения и значения по умолчанию.
func Load(path string) (*Config, error) {
	envPath := filepath.Join(filepath.Dir(path), ".env")
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "fotostudio",
		},
		Session: SessionConfig{
			CookieName:    "fotostudio_session",
			IdleTimeout:   120,
			SweepInterval: 5,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerSecond: 2,
			Burst:             10,
		},
		Studio: StudioConfig{
			Name:         "FotoStudio",
			Timezone:     "Europe/Moscow",
			PhoneRegion:  "RU",
			Phone:        "+79991234567",
			PhoneDisplay: "+7 (999) 123-45-67",
			Email:        "info@fotostudio.ru",
			Address:      "г. Москва, ул. Примерная, 123",
			InstagramURL: "https://instagram.com",
			TelegramURL:  "https://t.me",
		},
		Admin: AdminConfig{
			ToggleEnabled: true,
		},
	}
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv("FOTOSTUDIO_HTTP_PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid FOTOSTUDIO_HTTP_PORT %q: %w", v, err)
		}
		c.Server.HTTPPort = port
	}
	if v, ok := os.LookupEnv("FOTOSTUDIO_LOG_LEVEL"); ok {
		c.Logs.Level = v
	}
	if v, ok := os.LookupEnv("FOTOSTUDIO_TIMEZONE"); ok {
		c.Studio.Timezone = v
	}
	if v, ok := os.LookupEnv("FOTOSTUDIO_ADMIN_TOGGLE"); ok {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid FOTOSTUDIO_ADMIN_TOGGLE %q: %w", v, err)
		}
		c.Admin.ToggleEnabled = enabled
	}
	c.CSRF.Key = os.Getenv("FOTOSTUDIO_CSRF_KEY")
	return nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port must be in 1..65535, got %d", c.Server.HTTPPort)
	}
	if c.Session.CookieName == "" {
		return errors.New("session.cookie_name is required")
	}
	if c.Session.IdleTimeout <= 0 {
		return errors.New("session.idle_timeout must be positive")
	}
	if c.Session.SweepInterval <= 0 {
		return errors.New("session.sweep_interval must be positive")
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return errors.New("rate_limit.requests_per_second and rate_limit.burst must be positive")
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return errors.New("metrics.path is required when metrics are enabled")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.CSRF.Key != "" && len(c.CSRF.Key) != 32 {
		return fmt.Errorf("FOTOSTUDIO_CSRF_KEY must be 32 bytes, got %d", len(c.CSRF.Key))
	}
	return nil
}

// Location возвращает часовой пояс студии
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Studio.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid studio.timezone %q: %w", c.Studio.Timezone, err)
	}
	return loc, nil
}

// Contacts возвращает контакты студии для отображения на странице
func (s StudioConfig) Contacts() domain.Contacts {
	return domain.Contacts{
		StudioName:   s.Name,
		Phone:        s.Phone,
		PhoneDisplay: s.PhoneDisplay,
		Email:        s.Email,
		Address:      s.Address,
		InstagramURL: s.InstagramURL,
		TelegramURL:  s.TelegramURL,
	}
}
