package app

import (
	"math/rand"

	"go.uber.org/zap"

	"wordtrainer/internal/domain"
	"wordtrainer/internal/repository"
	"wordtrainer/internal/service"
)

// Open loads the word list saved under key and builds the controller around it
func Open(store repository.KeyValueStore, key string, direction domain.Direction, rng *rand.Rand, logger *zap.Logger) *App {
	words := service.NewWordService(store, key, logger)
	words.Load()

	return New(
		words,
		service.NewTrainerService(words, rng, logger),
		service.NewStatsService(words, logger),
		service.NewTransferService(words, logger),
		direction,
		logger,
	)
}
