package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"wordtrainer/internal/domain"
	"wordtrainer/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newWordService(t *testing.T, words ...domain.WordPair) (*WordService, *testutil.MemoryStore) {
	t.Helper()
	store := testutil.NewMemoryStore()
	if len(words) > 0 {
		data, err := json.Marshal(words)
		require.NoError(t, err)
		store.Values[testutil.TestKey] = data
	}
	service := NewWordService(store, testutil.TestKey, testutil.NewTestLogger())
	service.Load()
	return service, store
}

func storedWords(t *testing.T, store *testutil.MemoryStore) []domain.WordPair {
	t.Helper()
	var words []domain.WordPair
	require.NoError(t, json.Unmarshal(store.Values[testutil.TestKey], &words))
	return words
}

func TestWordService_Load(t *testing.T) {
	tests := []struct {
		name          string
		mockValue     interface{}
		mockFound     bool
		mockError     error
		expectedCount int
	}{
		{
			name:          "saved words",
			mockValue:     []byte(`[{"native":"ліс","foreign":"forest","correctCount":2,"incorrectCount":1}]`),
			mockFound:     true,
			expectedCount: 1,
		},
		{
			name:          "legacy field names",
			mockValue:     []byte(`[{"ua":"ліс","en":"forest","ok":1,"fail":3},{"ua":"дім","en":"house"}]`),
			mockFound:     true,
			expectedCount: 2,
		},
		{
			name:          "never saved",
			mockValue:     nil,
			mockFound:     false,
			expectedCount: 0,
		},
		{
			name:          "corrupt value",
			mockValue:     []byte(`{not json`),
			mockFound:     true,
			expectedCount: 0,
		},
		{
			name:          "value is not an array",
			mockValue:     []byte(`{"native":"ліс"}`),
			mockFound:     true,
			expectedCount: 0,
		},
		{
			name:          "read error",
			mockValue:     nil,
			mockFound:     false,
			mockError:     fmt.Errorf("db error"),
			expectedCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(testutil.MockKeyValueStore)
			mockStore.On("Get", testutil.TestKey).Return(tt.mockValue, tt.mockFound, tt.mockError)

			service := NewWordService(mockStore, testutil.TestKey, testutil.NewTestLogger())
			service.Load()

			assert.Equal(t, tt.expectedCount, service.Count())
			assert.NotNil(t, service.Words())
			mockStore.AssertExpectations(t)
		})
	}
}

func TestWordService_Load_LegacyCounters(t *testing.T) {
	store := testutil.NewMemoryStore()
	store.Values[testutil.TestKey] = []byte(`[{"ua":"ліс","en":"forest","ok":1,"fail":3}]`)

	service := NewWordService(store, testutil.TestKey, testutil.NewTestLogger())
	service.Load()

	assert.Equal(t, []domain.WordPair{testutil.NewTestWord("ліс", "forest", 1, 3)}, service.Words())
}

func TestWordService_AddWordPair(t *testing.T) {
	tests := []struct {
		name          string
		native        string
		foreign       string
		expectedError bool
	}{
		{
			name:    "valid word pair",
			native:  "ліс",
			foreign: "forest",
		},
		{
			name:    "fields are trimmed",
			native:  "  ліс ",
			foreign: " forest; woods ",
		},
		{
			name:          "empty native",
			native:        "",
			foreign:       "x",
			expectedError: true,
		},
		{
			name:          "empty foreign",
			native:        "x",
			foreign:       "",
			expectedError: true,
		},
		{
			name:          "whitespace only",
			native:        "   ",
			foreign:       "forest",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, store := newWordService(t, testutil.NewTestWord("дім", "house", 1, 1))

			word, err := service.AddWordPair(tt.native, tt.foreign)

			if tt.expectedError {
				assert.ErrorIs(t, err, domain.ErrEmptyField)
				assert.Equal(t, 1, service.Count())
				assert.Equal(t, 0, store.Writes)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, 2, service.Count())
			assert.Equal(t, 1, store.Writes)

			last := service.Words()[1]
			assert.Equal(t, word, last)
			assert.Zero(t, last.CorrectCount)
			assert.Zero(t, last.IncorrectCount)
			assert.Equal(t, strings.TrimSpace(tt.native), last.Native)
			assert.Equal(t, strings.TrimSpace(tt.foreign), last.Foreign)
			assert.Equal(t, service.Words(), storedWords(t, store))
		})
	}
}

func TestWordService_AddWordPair_DuplicatesAllowed(t *testing.T) {
	service, _ := newWordService(t)

	_, err := service.AddWordPair("ліс", "forest")
	require.NoError(t, err)
	_, err = service.AddWordPair("ліс", "forest")
	require.NoError(t, err)

	assert.Equal(t, 2, service.Count())
}

func TestWordService_AddWordPair_SaveError(t *testing.T) {
	service, store := newWordService(t, testutil.NewTestWord("дім", "house", 0, 0))
	store.FailWrites = true

	_, err := service.AddWordPair("ліс", "forest")

	assert.Error(t, err)
	assert.Equal(t, 1, service.Count())
}

func TestWordService_ClearAll(t *testing.T) {
	service, store := newWordService(t,
		testutil.NewTestWord("дім", "house", 1, 0),
		testutil.NewTestWord("ліс", "forest", 0, 4),
	)

	err := service.ClearAll()

	assert.NoError(t, err)
	assert.Equal(t, 0, service.Count())
	assert.Equal(t, "[]", string(store.Values[testutil.TestKey]))
}

func TestWordService_ReplaceAll(t *testing.T) {
	service, store := newWordService(t, testutil.NewTestWord("дім", "house", 1, 0))

	replacement := []domain.WordPair{
		testutil.NewTestWord("ліс", "forest", 3, 2),
		testutil.NewTestWord("вода", "water", 0, 0),
	}

	err := service.ReplaceAll(replacement)

	assert.NoError(t, err)
	assert.Equal(t, replacement, service.Words())
	assert.Equal(t, replacement, storedWords(t, store))
}

func TestWordService_ReplaceAll_Invalid(t *testing.T) {
	original := testutil.NewTestWord("дім", "house", 1, 0)

	tests := []struct {
		name  string
		words []domain.WordPair
	}{
		{name: "blank native", words: []domain.WordPair{testutil.NewTestWord(" ", "x", 0, 0)}},
		{name: "negative counter", words: []domain.WordPair{testutil.NewTestWord("a", "b", -1, 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, store := newWordService(t, original)

			err := service.ReplaceAll(tt.words)

			assert.Error(t, err)
			assert.Equal(t, []domain.WordPair{original}, service.Words())
			assert.Equal(t, 0, store.Writes)
		})
	}
}

func TestWordService_RecordAnswer(t *testing.T) {
	service, store := newWordService(t,
		testutil.NewTestWord("дім", "house", 0, 0),
		testutil.NewTestWord("ліс", "forest", 0, 0),
	)

	word, err := service.RecordAnswer(1, true)
	require.NoError(t, err)
	assert.Equal(t, 1, word.CorrectCount)

	word, err = service.RecordAnswer(1, false)
	require.NoError(t, err)
	assert.Equal(t, 1, word.IncorrectCount)

	assert.Equal(t, testutil.NewTestWord("ліс", "forest", 1, 1), storedWords(t, store)[1])
	assert.Equal(t, testutil.NewTestWord("дім", "house", 0, 0), service.Words()[0])

	_, err = service.RecordAnswer(5, true)
	assert.True(t, errors.Is(err, domain.ErrWordNotFound))
}

func TestWordService_RecordAnswer_SaveError(t *testing.T) {
	mockStore := new(testutil.MockKeyValueStore)
	mockStore.On("Get", testutil.TestKey).Return([]byte(`[{"native":"ліс","foreign":"forest"}]`), true, nil)
	mockStore.On("Set", testutil.TestKey, mock.Anything).Return(fmt.Errorf("disk full"))

	service := NewWordService(mockStore, testutil.TestKey, testutil.NewTestLogger())
	service.Load()

	_, err := service.RecordAnswer(0, false)

	assert.Error(t, err)
	assert.Equal(t, 0, service.Words()[0].IncorrectCount)
	mockStore.AssertExpectations(t)
}
