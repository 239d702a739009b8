package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
	}

	HTTP struct {
		Port    int32
		Host    string
		GinMode string // release, debug or test
	}

	Global struct {
		ShutdownTimeoutInSeconds int
	}

	Database struct {
		Driver       string // sqlite or postgres
		Path         string // SQLite file path
		DSN          string // PostgreSQL connection string
		MaxOpenConns int
		MaxIdleConns int
		LogLevel     string // silent, error, warn, info
	}
)

// loadEnvFile populates the process environment from a dotenv file if one exists.
// Variables already set in the environment win over the file.
func loadEnvFile(path string) {
	if _, err := os.Stat(path); err != nil {
		return
	}
	if err := godotenv.Load(path); err != nil {
		log.Printf("WARNING: failed to load %s: %v", path, err)
		return
	}
	log.Printf("Loaded environment from %s", path)
}

func NewConfig() *Config {
	loadEnvFile(DefaultEnvFile)

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	v.SetDefault("database_driver", DriverSQLite)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_dsn", "")
	v.SetDefault("database_max_open_conns", 1) // single writer for SQLite
	v.SetDefault("database_max_idle_conns", 1)
	v.SetDefault("database_log_level", "warn")

	return &Config{
		HTTP: HTTP{
			Port:    v.GetInt32("PORT"),
			Host:    v.GetString("HOST"),
			GinMode: v.GetString("GIN_MODE"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Driver:       v.GetString("DATABASE_DRIVER"),
			Path:         v.GetString("DATABASE_PATH"),
			DSN:          v.GetString("DATABASE_DSN"),
			MaxOpenConns: v.GetInt("DATABASE_MAX_OPEN_CONNS"),
			MaxIdleConns: v.GetInt("DATABASE_MAX_IDLE_CONNS"),
			LogLevel:     v.GetString("DATABASE_LOG_LEVEL"),
		},
	}
}
