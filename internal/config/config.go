package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"wordtrainer/internal/domain"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	// DefaultStoreKey is the fixed key the word list is saved under
	DefaultStoreKey = "english_trainer_words_v1"
)

// Config holds all application configuration
type Config struct {
	Store     StoreConfig
	Bot       BotConfig
	Log       LogConfig
	Direction domain.Direction
	StatsSize int
}

// StoreConfig selects and configures the key-value backend
type StoreConfig struct {
	Driver     string
	Key        string
	SQLitePath string
	Database   DatabaseConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// BotConfig holds Telegram settings
type BotConfig struct {
	Token   string
	OwnerID int64
}

// LogConfig holds logger settings
type LogConfig struct {
	Level string
	File  string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		Store: StoreConfig{
			Driver:     getEnv("STORE_DRIVER", DriverSQLite),
			Key:        getEnv("STORE_KEY", DefaultStoreKey),
			SQLitePath: getEnv("SQLITE_PATH", "wordtrainer.db"),
			Database: DatabaseConfig{
				Host:     getEnv("DB_HOST", "localhost"),
				Port:     getEnv("DB_PORT", "5432"),
				Name:     getEnv("DB_NAME", "wordtrainer"),
				User:     getEnv("DB_USER", "wordtrainer"),
				Password: os.Getenv("DB_PASSWORD"),
			},
		},
		Bot: BotConfig{
			Token: os.Getenv("BOT_TOKEN"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  os.Getenv("LOG_FILE"),
		},
	}

	switch cfg.Store.Driver {
	case DriverSQLite:
	case DriverPostgres:
		if cfg.Store.Database.Password == "" {
			return nil, fmt.Errorf("DB_PASSWORD is required for the postgres store")
		}
	default:
		return nil, fmt.Errorf("STORE_DRIVER must be %q or %q, got %q", DriverSQLite, DriverPostgres, cfg.Store.Driver)
	}

	direction, err := domain.ParseDirection(getEnv("TRAIN_DIRECTION", string(domain.NativeToForeign)))
	if err != nil {
		return nil, fmt.Errorf("TRAIN_DIRECTION: %w", err)
	}
	cfg.Direction = direction

	cfg.StatsSize, err = strconv.Atoi(getEnv("STATS_LIMIT", "10"))
	if err != nil || cfg.StatsSize < 1 {
		return nil, fmt.Errorf("STATS_LIMIT must be a positive integer")
	}

	if owner := os.Getenv("OWNER_ID"); owner != "" {
		cfg.Bot.OwnerID, err = strconv.ParseInt(owner, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("OWNER_ID: %w", err)
		}
	}

	return cfg, nil
}

// RequireBot validates the settings only the Telegram front-end needs
func (c *Config) RequireBot() error {
	if c.Bot.Token == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	if c.Bot.OwnerID == 0 {
		return fmt.Errorf("OWNER_ID is required")
	}
	return nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Store.Database.Host,
		c.Store.Database.Port,
		c.Store.Database.User,
		c.Store.Database.Password,
		c.Store.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
