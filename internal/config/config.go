package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

var (
	// ErrReadConfig возвращается при ошибке чтения файла конфигурации
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается при некорректных значениях конфигурации
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	CRMService    CRMServiceConfig    `toml:"crm_service"`
	BusinessHours BusinessHoursConfig `toml:"business_hours"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
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
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// CRMServiceConfig настройки интеграции с CRM
// (каталог услуг, мастера, клиенты)
type CRMServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// BusinessHoursConfig рабочее окно барбершопа
type BusinessHoursConfig struct {
	OpenHour    int    `toml:"open_hour"`
	CloseHour   int    `toml:"close_hour"`
	SlotMinutes int    `toml:"slot_minutes"`
	Timezone    string `toml:"timezone"` // фиксированное смещение, например "+06:00"
}

// Load читает и валидирует конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("%w: server.http_port must be positive", ErrInvalidConfig)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.CRMService.URL == "" {
		return fmt.Errorf("%w: crm_service.url is required", ErrInvalidConfig)
	}
	if c.BusinessHours.OpenHour < 0 || c.BusinessHours.OpenHour > 23 {
		return fmt.Errorf("%w: business_hours.open_hour must be in [0,23]", ErrInvalidConfig)
	}
	if c.BusinessHours.CloseHour <= c.BusinessHours.OpenHour || c.BusinessHours.CloseHour > 24 {
		return fmt.Errorf("%w: business_hours.close_hour must be greater than open_hour and at most 24", ErrInvalidConfig)
	}
	if c.BusinessHours.SlotMinutes <= 0 || c.BusinessHours.SlotMinutes > 60 {
		return fmt.Errorf("%w: business_hours.slot_minutes must be in (0,60]", ErrInvalidConfig)
	}
	return nil
}
