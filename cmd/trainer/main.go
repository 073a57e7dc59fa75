package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"wordtrainer/internal/app"
	"wordtrainer/internal/config"
	"wordtrainer/internal/logging"
	"wordtrainer/internal/storage"
	"wordtrainer/internal/tui"
)

// stdout belongs to the terminal UI
const defaultLogFile = "wordtrainer.log"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(cfg.Log, defaultLogFile)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("Starting word trainer", zap.String("driver", cfg.Store.Driver))

	store, err := storage.Open(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	trainer := app.Open(
		store,
		cfg.Store.Key,
		cfg.Direction,
		rand.New(rand.NewSource(time.Now().UnixNano())),
		logger,
	)

	p := tea.NewProgram(tui.New(trainer, cfg.StatsSize, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("Terminal UI stopped with error", zap.Error(err))
		return err
	}

	logger.Info("Word trainer closed")
	return nil
}
