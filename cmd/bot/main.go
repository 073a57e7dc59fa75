package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wordtrainer/internal/app"
	"wordtrainer/internal/config"
	"wordtrainer/internal/handler"
	"wordtrainer/internal/logging"
	"wordtrainer/internal/middleware"
	"wordtrainer/internal/storage"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := logging.New(cfg.Log, "stderr")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting word trainer bot")

	if err := cfg.RequireBot(); err != nil {
		logger.Fatal("Bot is not configured", zap.Error(err))
	}

	store, err := storage.Open(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open store", zap.Error(err))
	}
	defer store.Close()

	logger.Info("Store opened", zap.String("driver", cfg.Store.Driver), zap.String("key", cfg.Store.Key))

	trainer := app.Open(
		store,
		cfg.Store.Key,
		cfg.Direction,
		rand.New(rand.NewSource(time.Now().UnixNano())),
		logger,
	)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.Bot.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}
	bot.Use(middleware.OwnerOnly(cfg.Bot.OwnerID, logger))

	logger.Info("Telegram bot initialized")

	h := handler.NewHandler(bot, trainer, cfg.StatsSize, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")
	bot.Stop()
	logger.Info("Bot stopped gracefully")
}
