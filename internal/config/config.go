package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Supported environments
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	Environment string         `env:"APP_ENV" envDefault:"development"`
	HTTPAddr    string         `env:"HTTP_ADDR" envDefault:":8080"`
	BotToken    string         `env:"BOT_TOKEN"`
	Database    DatabaseConfig `envPrefix:"DB_"`
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Driver string `env:"DRIVER" envDefault:"sqlite"`

	// Path is the sqlite database file. Derived from the environment when empty.
	Path string `env:"PATH"`

	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"5432"`
	Name     string `env:"NAME" envDefault:"dictionary"`
	User     string `env:"USER" envDefault:"dictionary"`
	Password string `env:"PASSWORD"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	if cfg.Database.Path == "" {
		cfg.Database.Path = defaultSQLitePath(cfg.Environment)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Environment {
	case EnvDevelopment, EnvTest, EnvProduction:
	default:
		return fmt.Errorf("APP_ENV must be one of %s, %s, %s, got %q",
			EnvDevelopment, EnvTest, EnvProduction, c.Environment)
	}

	switch c.Database.Driver {
	case DriverSQLite:
	case DriverPostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required for the postgres driver")
		}
	default:
		return fmt.Errorf("DB_DRIVER must be %s or %s, got %q", DriverSQLite, DriverPostgres, c.Database.Driver)
	}

	return nil
}

// IsProduction reports whether the application runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// DSN returns the connection string for the configured driver
func (c *Config) DSN() string {
	if c.Database.Driver == DriverPostgres {
		return fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			c.Database.Host,
			c.Database.Port,
			c.Database.User,
			c.Database.Password,
			c.Database.Name,
		)
	}

	return c.Database.Path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func defaultSQLitePath(environment string) string {
	switch environment {
	case EnvTest:
		return ":memory:"
	case EnvProduction:
		return "production.db"
	default:
		return "development.db"
	}
}
