package service

import (
	"sort"

	"go.uber.org/zap"

	"wordtrainer/internal/domain"
)

// StatsService derives read-only views of the word store
type StatsService struct {
	words  *WordService
	logger *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(words *WordService, logger *zap.Logger) *StatsService {
	return &StatsService{
		words:  words,
		logger: logger,
	}
}

// RankedByFailures returns up to limit words with the most failures first.
// Ties keep store order. The total word count is returned regardless of limit.
func (s *StatsService) RankedByFailures(limit int) ([]domain.WordPair, int) {
	words := s.words.Words()
	total := len(words)

	if limit <= 0 {
		return []domain.WordPair{}, total
	}

	sort.SliceStable(words, func(i, j int) bool {
		return words[i].IncorrectCount > words[j].IncorrectCount
	})

	if len(words) > limit {
		words = words[:limit]
	}

	s.logger.Debug("Ranked words by failures", zap.Int("limit", limit), zap.Int("total", total))
	return words, total
}
