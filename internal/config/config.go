package config

import (
	"time"

	"github.com/spf13/viper"
)

type DatabaseDriver string

const (
	DatabaseDriverSQLite   DatabaseDriver = "sqlite"   // Local file database (default)
	DatabaseDriverPostgres DatabaseDriver = "postgres" // External PostgreSQL server
)

type (
	Config struct {
		HTTP
		Global
		Database
		Logging
		Auth
		Demo
		Tasks
		Maintenance
		Client
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Driver   DatabaseDriver
		Path     string // SQLite file path
		DSN      string // PostgreSQL connection string
		LogLevel string // silent, error, warn, info
	}
	Logging struct {
		Level  string // debug, info, warn, error
		Format string // json or console
	}
	Auth struct {
		// APIKeyHash is a bcrypt hash of the API key. Empty disables auth.
		APIKeyHash string
	}
	Demo struct {
		ReadOnly bool // Reject every write request with 403
	}
	Tasks struct {
		Enabled         bool
		Workers         int
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
	Maintenance struct {
		Enabled  bool
		Schedule string // Cron format: "0 3 * * *" = daily at 03:00
	}
	Client struct {
		BaseURL string
		Timeout time.Duration
		APIKey  string
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8080)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 5)

	v.SetDefault("database_driver", string(DatabaseDriverSQLite))
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_dsn", "")
	v.SetDefault("database_log_level", "warn")

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	v.SetDefault("api_key_hash", "")
	v.SetDefault("read_only", false)

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 1)
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")

	v.SetDefault("maintenance_enabled", true)
	v.SetDefault("maintenance_schedule", "0 3 * * *")

	// Client defaults, used by the CLI subcommands
	v.SetDefault("client_base_url", DefaultClientBaseURL)
	v.SetDefault("client_timeout", "30s")
	v.SetDefault("client_api_key", "")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Driver:   DatabaseDriver(v.GetString("DATABASE_DRIVER")),
			Path:     v.GetString("DATABASE_PATH"),
			DSN:      v.GetString("DATABASE_DSN"),
			LogLevel: v.GetString("DATABASE_LOG_LEVEL"),
		},
		Logging: Logging{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Auth: Auth{
			APIKeyHash: v.GetString("API_KEY_HASH"),
		},
		Demo: Demo{
			ReadOnly: v.GetBool("READ_ONLY"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval: v.GetDuration("TASK_CLEANUP_INTERVAL"),
		},
		Maintenance: Maintenance{
			Enabled:  v.GetBool("MAINTENANCE_ENABLED"),
			Schedule: v.GetString("MAINTENANCE_SCHEDULE"),
		},
		Client: Client{
			BaseURL: v.GetString("CLIENT_BASE_URL"),
			Timeout: v.GetDuration("CLIENT_TIMEOUT"),
			APIKey:  v.GetString("CLIENT_API_KEY"),
		},
	}
}
