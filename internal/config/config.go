package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/sqlbuilder"
)

// Config конфигурация сервисов парковки
type Config struct {
	Server        ServerConfig        `toml:"server"`
	Database      DatabaseConfig      `toml:"database"`
	Logs          LogsConfig          `toml:"logs"`
	Metrics       MetricsConfig       `toml:"metrics"`
	Confirmations ConfirmationsConfig `toml:"confirmations"`
	Sink          SinkConfig          `toml:"sink"`
	Dispatcher    DispatcherConfig    `toml:"dispatcher"`
	LLM           LLMConfig           `toml:"llm"`
	Admin         AdminConfig         `toml:"admin"`
}

// ServerConfig HTTP сервер parking-service, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig хранилище заявок и справочных данных
type DatabaseConfig struct {
	Driver string `toml:"driver"` // sqlite | postgres

	// sqlite
	Path string `toml:"path"`

	// postgres
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	DBName   string `toml:"dbname"`
	SSLMode  string `toml:"sslmode"`

	MaxOpenConns    int `toml:"max_open_conns"`
	MaxIdleConns    int `toml:"max_idle_conns"`
	ConnMaxLifetime int `toml:"conn_max_lifetime"` // секунды

	SeedReferenceData bool `toml:"seed_reference_data"`
}

// DSN строка подключения для выбранного драйвера
func (c DatabaseConfig) DSN() string {
	if c.Driver == sqlbuilder.DriverPostgres {
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
	}
	return c.Path
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

// ConfirmationsConfig локальный журнал подтверждённых бронирований
type ConfirmationsConfig struct {
	File string `toml:"file"`
}

// SinkConfig HTTP сервис приёма подтверждений (confirmation-sink)
type SinkConfig struct {
	Host   string `toml:"host"`
	Port   int    `toml:"port"`
	APIKey string `toml:"api_key"` // пусто - без аутентификации
}

// Addr адрес, на котором слушает confirmation-sink
func (c SinkConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DispatcherConfig доставка подтверждений в удалённый sink
type DispatcherConfig struct {
	URL     string `toml:"url"` // пусто - всегда локальная запись
	APIKey  string `toml:"api_key"`
	Timeout int    `toml:"timeout"` // секунды
}

// LLMConfig OpenAI-совместимый провайдер; пустой api_key отключает LLM
type LLMConfig struct {
	APIKey  string `toml:"api_key"`
	Model   string `toml:"model"`
	BaseURL string `toml:"base_url"`
	Timeout int    `toml:"timeout"` // секунды
}

// Enabled настроен ли LLM провайдер
func (c LLMConfig) Enabled() bool {
	return c.APIKey != ""
}

// AdminConfig защита admin API parking-service
type AdminConfig struct {
	APIKey string `toml:"api_key"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    30,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Driver:            sqlbuilder.DriverSQLite,
			Path:              "data/parking.db",
			Port:              5432,
			SSLMode:           "disable",
			MaxOpenConns:      10,
			MaxIdleConns:      5,
			ConnMaxLifetime:   300,
			SeedReferenceData: true,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			Path:        "/metrics",
			ServiceName: "parking-service",
		},
		Confirmations: ConfirmationsConfig{
			File: domain.DefaultConfirmedReservationsFile,
		},
		Sink: SinkConfig{
			Host: "127.0.0.1",
			Port: 8000,
		},
		Dispatcher: DispatcherConfig{
			Timeout: 5,
		},
		LLM: LLMConfig{
			Model:   "gpt-4o-mini",
			BaseURL: "https://api.openai.com",
			Timeout: 30,
		},
	}
}

// Load читает TOML файл (если он есть), затем .env и переменные окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: decode %s: %w", path, err)
		}
	}

	// .env не обязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Database.Driver, "DB_DRIVER")
	setString(&c.Database.Path, "SQLITE_PATH")
	setString(&c.Database.Host, "DB_HOST")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.DBName, "DB_NAME")
	setString(&c.Logs.Level, "LOG_LEVEL")
	setString(&c.Confirmations.File, "CONFIRMED_RESERVATIONS_FILE")
	setString(&c.Sink.Host, "RESERVATION_SERVER_HOST")
	setString(&c.Dispatcher.URL, "RESERVATION_SERVER_URL")
	setString(&c.LLM.APIKey, "OPENAI_API_KEY")
	setString(&c.LLM.Model, "OPENAI_MODEL")
	setString(&c.LLM.BaseURL, "OPENAI_BASE_URL")
	setString(&c.Admin.APIKey, "ADMIN_API_KEY")

	// Один ключ защищает sink и используется диспетчером при отправке
	if key, ok := os.LookupEnv("RESERVATION_SERVER_API_KEY"); ok {
		c.Sink.APIKey = key
		c.Dispatcher.APIKey = key
	}

	if err := setInt(&c.Database.Port, "DB_PORT"); err != nil {
		return err
	}
	if err := setInt(&c.Sink.Port, "RESERVATION_SERVER_PORT"); err != nil {
		return err
	}
	if err := setInt(&c.Dispatcher.Timeout, "RESERVATION_SERVER_TIMEOUT"); err != nil {
		return err
	}
	return setInt(&c.Server.HTTPPort, "HTTP_PORT")
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case sqlbuilder.DriverSQLite:
		if c.Database.Path == "" {
			return errors.New("config: database.path is required for sqlite")
		}
	case sqlbuilder.DriverPostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return errors.New("config: database.host and database.dbname are required for postgres")
		}
	default:
		return fmt.Errorf("config: unsupported database.driver %q", c.Database.Driver)
	}

	if c.Confirmations.File == "" {
		return errors.New("config: confirmations.file is required")
	}
	if c.Dispatcher.Timeout <= 0 {
		return errors.New("config: dispatcher.timeout must be positive")
	}
	if c.Sink.Port <= 0 || c.Server.HTTPPort <= 0 {
		return errors.New("config: ports must be positive")
	}
	if c.Dispatcher.URL != "" && !strings.HasPrefix(c.Dispatcher.URL, "http://") && !strings.HasPrefix(c.Dispatcher.URL, "https://") {
		return fmt.Errorf("config: dispatcher.url must be http(s), got %q", c.Dispatcher.URL)
	}
	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	*dst = n
	return nil
}
