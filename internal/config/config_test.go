package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV", "HTTP_ADDR", "BOT_TOKEN",
		"DB_DRIVER", "DB_PATH", "DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
	} {
		// Setenv registers the restore, Unsetenv leaves the variable absent
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Empty(t, cfg.BotToken)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "development.db", cfg.Database.Path)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "dictionary", cfg.Database.Name)
	assert.Equal(t, "dictionary", cfg.Database.User)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_SQLitePathPerEnvironment(t *testing.T) {
	tests := []struct {
		environment string
		expected    string
	}{
		{environment: EnvDevelopment, expected: "development.db"},
		{environment: EnvTest, expected: ":memory:"},
		{environment: EnvProduction, expected: "production.db"},
	}

	for _, tt := range tests {
		t.Run(tt.environment, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("APP_ENV", tt.environment)

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.Database.Path)
		})
	}
}

func TestLoad_ExplicitPathWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", EnvProduction)
	t.Setenv("DB_PATH", "/var/lib/dictionary/words.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/dictionary/words.db", cfg.Database.Path)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_InvalidEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "staging")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "APP_ENV")
}

func TestLoad_InvalidDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", "mysql")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "DB_DRIVER")
}

func TestLoad_PostgresRequiresPassword(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_DRIVER", DriverPostgres)

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "DB_PASSWORD")

	t.Setenv("DB_PASSWORD", "secret")

	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
}

func TestConfig_DSN(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *Config
		expected string
	}{
		{
			name: "postgres",
			cfg: &Config{
				Database: DatabaseConfig{
					Driver:   DriverPostgres,
					Host:     "localhost",
					Port:     "5432",
					User:     "testuser",
					Password: "testpass",
					Name:     "testdb",
				},
			},
			expected: "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable",
		},
		{
			name: "sqlite file",
			cfg: &Config{
				Database: DatabaseConfig{Driver: DriverSQLite, Path: "development.db"},
			},
			expected: "development.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
		},
		{
			name: "sqlite memory",
			cfg: &Config{
				Database: DatabaseConfig{Driver: DriverSQLite, Path: ":memory:"},
			},
			expected: ":memory:?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cfg.DSN())
		})
	}
}
