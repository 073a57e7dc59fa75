package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	sqlitedb "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"wordtrainer/internal/config"
	"wordtrainer/internal/repository"
	"wordtrainer/internal/repository/postgres"
	"wordtrainer/internal/repository/sqlite"
)

const (
	maxRetries = 30
	retryDelay = 2 * time.Second
)

// Store is an opened key-value backend
type Store struct {
	repository.KeyValueStore
	db *sql.DB
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// Open connects to the configured backend and applies its migrations
func Open(cfg *config.Config, logger *zap.Logger) (*Store, error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		db, err := connectDatabase(cfg.DSN(), logger, maxRetries, retryDelay)
		if err != nil {
			return nil, err
		}
		driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create migration driver: %w", err)
		}
		if err := runMigrations(postgres.Migrations, "postgres", driver, logger); err != nil {
			db.Close()
			return nil, err
		}
		return &Store{KeyValueStore: postgres.NewKVStore(db), db: db}, nil

	case config.DriverSQLite:
		db, err := openSQLite(cfg.Store.SQLitePath)
		if err != nil {
			return nil, err
		}
		driver, err := sqlitedb.WithInstance(db, &sqlitedb.Config{})
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create migration driver: %w", err)
		}
		if err := runMigrations(sqlite.Migrations, "sqlite3", driver, logger); err != nil {
			db.Close()
			return nil, err
		}
		logger.Info("SQLite store opened", zap.String("path", cfg.Store.SQLitePath))
		return &Store{KeyValueStore: sqlite.NewKVStore(db), db: db}, nil
	}

	return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
}

// openSQLite opens the local database file in WAL mode
func openSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One writer; the whole word list is rewritten on every save
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return db, nil
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger, retries int, delay time.Duration) (*sql.DB, error) {
	var db *sql.DB
	var err error

	for i := 0; i < retries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(delay)
			continue
		}

		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(delay)
			continue
		}

		db.SetMaxOpenConns(5)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(5 * time.Minute)

		logger.Info("Database connection established")
		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", retries, err)
}

// runMigrations applies the embedded migrations to driver
func runMigrations(migrations fs.FS, name string, driver database.Driver, logger *zap.Logger) error {
	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, name, driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("No new migrations to apply")
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	default:
		logger.Info("Migrations applied successfully")
	}

	return nil
}
