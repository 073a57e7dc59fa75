package testutil

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"wordtrainer/internal/domain"
)

// TestKey is the store key used across tests
const TestKey = "test_words"

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestRand creates a deterministic random source
func NewTestRand() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

// NewTestWord creates a test word pair with counters
func NewTestWord(native, foreign string, correct, incorrect int) domain.WordPair {
	return domain.WordPair{
		Native:         native,
		Foreign:        foreign,
		CorrectCount:   correct,
		IncorrectCount: incorrect,
	}
}

// MemoryStore is an in-memory repository.KeyValueStore.
// Setting FailWrites makes every Set return an error.
type MemoryStore struct {
	Values     map[string][]byte
	Writes     int
	FailWrites bool
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{Values: make(map[string][]byte)}
}

func (s *MemoryStore) Get(key string) ([]byte, bool, error) {
	v, ok := s.Values[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(key string, value []byte) error {
	if s.FailWrites {
		return fmt.Errorf("write %q: storage unavailable", key)
	}
	s.Values[key] = append([]byte(nil), value...)
	s.Writes++
	return nil
}
