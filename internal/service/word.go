package service

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"wordtrainer/internal/domain"
	"wordtrainer/internal/repository"
)

// WordService owns the ordered word list and persists it as a whole
type WordService struct {
	store  repository.KeyValueStore
	key    string
	logger *zap.Logger
	words  []domain.WordPair
}

// NewWordService creates a new word service with an empty list; call Load to read the store
func NewWordService(store repository.KeyValueStore, key string, logger *zap.Logger) *WordService {
	return &WordService{
		store:  store,
		key:    key,
		logger: logger,
		words:  []domain.WordPair{},
	}
}

// Load reads the word list. Missing or unreadable data yields an empty list.
func (s *WordService) Load() {
	s.words = []domain.WordPair{}

	data, found, err := s.store.Get(s.key)
	if err != nil {
		s.logger.Warn("Failed to read word store, starting empty", zap.Error(err))
		return
	}
	if !found {
		s.logger.Info("No saved words yet", zap.String("key", s.key))
		return
	}

	words, err := decodeWordPairs(data)
	if err != nil {
		s.logger.Warn("Saved words are corrupt, starting empty", zap.Error(err))
		return
	}

	s.words = words
	s.logger.Info("Words loaded", zap.Int("count", len(words)))
}

// Words returns a copy of the list in store order
func (s *WordService) Words() []domain.WordPair {
	out := make([]domain.WordPair, len(s.words))
	copy(out, s.words)
	return out
}

// Count returns the number of stored words
func (s *WordService) Count() int {
	return len(s.words)
}

// Get returns the word at index
func (s *WordService) Get(index int) (domain.WordPair, error) {
	if index < 0 || index >= len(s.words) {
		return domain.WordPair{}, fmt.Errorf("%w: index %d", domain.ErrWordNotFound, index)
	}
	return s.words[index], nil
}

// AddWordPair appends a trimmed pair with zero counters
func (s *WordService) AddWordPair(native, foreign string) (domain.WordPair, error) {
	native = strings.TrimSpace(native)
	foreign = strings.TrimSpace(foreign)
	if native == "" || foreign == "" {
		return domain.WordPair{}, domain.ErrEmptyField
	}

	word := domain.NewWordPair(native, foreign)
	next := append(s.Words(), word)
	if err := s.commit(next); err != nil {
		return domain.WordPair{}, err
	}

	s.logger.Info("Word pair saved",
		zap.String("native", native),
		zap.String("foreign", foreign),
		zap.Int("total", len(next)),
	)
	return word, nil
}

// ClearAll removes every word
func (s *WordService) ClearAll() error {
	if err := s.commit([]domain.WordPair{}); err != nil {
		return err
	}
	s.logger.Info("Word store cleared")
	return nil
}

// ReplaceAll swaps the whole list. Every entry must have non-blank fields.
func (s *WordService) ReplaceAll(words []domain.WordPair) error {
	next := make([]domain.WordPair, 0, len(words))
	for i, w := range words {
		w.Native = strings.TrimSpace(w.Native)
		w.Foreign = strings.TrimSpace(w.Foreign)
		if w.Native == "" || w.Foreign == "" {
			return fmt.Errorf("entry %d: %w", i, domain.ErrEmptyField)
		}
		if w.CorrectCount < 0 || w.IncorrectCount < 0 {
			return fmt.Errorf("entry %d: negative counter", i)
		}
		next = append(next, w)
	}

	if err := s.commit(next); err != nil {
		return err
	}
	s.logger.Info("Word store replaced", zap.Int("count", len(next)))
	return nil
}

// RecordAnswer bumps the counter of the word at index
func (s *WordService) RecordAnswer(index int, correct bool) (domain.WordPair, error) {
	if _, err := s.Get(index); err != nil {
		return domain.WordPair{}, err
	}

	next := s.Words()
	if correct {
		next[index].CorrectCount++
	} else {
		next[index].IncorrectCount++
	}

	if err := s.commit(next); err != nil {
		return domain.WordPair{}, err
	}
	return next[index], nil
}

// commit persists next and only then makes it the current list
func (s *WordService) commit(next []domain.WordPair) error {
	data, err := encodeWordPairs(next)
	if err != nil {
		return fmt.Errorf("failed to encode words: %w", err)
	}

	if err := s.store.Set(s.key, data); err != nil {
		s.logger.Error("Failed to save words", zap.Error(err))
		return fmt.Errorf("failed to save words: %w", err)
	}

	s.words = next
	return nil
}
