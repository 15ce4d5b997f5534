package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func init() {
	// Load .env file if it exists (silent fail if not)
	_ = godotenv.Load()
}

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Server   ServerConfig
	App      AppConfig
	Backend  BackendConfig
	Sessions SessionConfig
	Flash    FlashConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
}

// AppConfig holds application-level settings.
type AppConfig struct {
	Name        string `envconfig:"APP_NAME" default:"eso-store-web"`
	Environment string `envconfig:"APP_ENV" default:"development"`
	Debug       bool   `envconfig:"APP_DEBUG" default:"false"`
	TemplateDir string `envconfig:"TEMPLATE_DIR" default:"./web/templates"`
	StaticDir   string `envconfig:"STATIC_DIR" default:"./web/static"`
}

// BackendConfig holds settings for the storefront backend API.
type BackendConfig struct {
	BaseURL string        `envconfig:"BACKEND_BASE_URL" default:"http://localhost:3001"`
	Timeout time.Duration `envconfig:"BACKEND_TIMEOUT" default:"15s"`
}

// SessionConfig holds session store settings.
type SessionConfig struct {
	StoreType    string        `envconfig:"SESSION_STORE" default:"sqlite"` // sqlite, redis, mysql, or memory
	TTL          time.Duration `envconfig:"SESSION_TTL" default:"720h"`
	CookieName   string        `envconfig:"SESSION_COOKIE_NAME" default:"eso_session"`
	SecureCookie bool          `envconfig:"SESSION_COOKIE_SECURE" default:"false"`
	SweepEvery   time.Duration `envconfig:"SESSION_SWEEP_INTERVAL" default:"1h"`

	// SQLite settings
	Path string `envconfig:"SESSION_DB_PATH" default:"./data/sessions.db"`

	// Redis settings
	RedisHost     string `envconfig:"REDIS_HOST" default:"localhost"`
	RedisPort     int    `envconfig:"REDIS_PORT" default:"6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// MySQL settings
	MySQLHost     string `envconfig:"SESSION_DB_HOST" default:"localhost"`
	MySQLPort     int    `envconfig:"SESSION_DB_PORT" default:"3306"`
	MySQLName     string `envconfig:"SESSION_DB_NAME" default:"eso_store"`
	MySQLUser     string `envconfig:"SESSION_DB_USER" default:"root"`
	MySQLPassword string `envconfig:"SESSION_DB_PASS" default:""`
}

// FlashConfig holds the flash-message cookie settings.
type FlashConfig struct {
	Secret string `envconfig:"FLASH_SECRET" default:"eso-store-dev-secret"`
}

// Address returns the server address in host:port format.
func (s *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// RedisAddress returns the Redis address in host:port format.
func (s *SessionConfig) RedisAddress() string {
	return fmt.Sprintf("%s:%d", s.RedisHost, s.RedisPort)
}

// MySQLDSN returns the MySQL data source name.
func (s *SessionConfig) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true",
		s.MySQLUser, s.MySQLPassword, s.MySQLHost, s.MySQLPort, s.MySQLName)
}

// IsDevelopment returns true if running in development mode.
func (a *AppConfig) IsDevelopment() bool {
	return a.Environment == "development"
}

// IsProduction returns true if running in production mode.
func (a *AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &cfg, nil
}

// MustLoad loads configuration or panics on error.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
