package service

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"wordtrainer/internal/domain"
)

// maxCount caps imported counters so they always fit an int
const maxCount = math.MaxInt32

// Field names accepted on import; the second name of each pair is the legacy one
var (
	nativeKeys    = []string{"native", "ua"}
	foreignKeys   = []string{"foreign", "en"}
	correctKeys   = []string{"correctCount", "ok"}
	incorrectKeys = []string{"incorrectCount", "fail"}
)

// encodeWordPairs serializes the store for persistence
func encodeWordPairs(words []domain.WordPair) ([]byte, error) {
	if words == nil {
		words = []domain.WordPair{}
	}
	return json.Marshal(words)
}

// decodeWordPairs parses a JSON array of word pairs.
// The payload itself must be an array; entries that are not objects, miss a
// string native/foreign field or are blank after trimming are dropped.
func decodeWordPairs(data []byte) ([]domain.WordPair, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrImportFormat, err)
	}
	if entries == nil {
		return nil, fmt.Errorf("%w: got null", domain.ErrImportFormat)
	}

	words := make([]domain.WordPair, 0, len(entries))
	for _, entry := range entries {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(entry, &obj); err != nil || obj == nil {
			continue
		}

		native, ok := stringField(obj, nativeKeys)
		if !ok {
			continue
		}
		foreign, ok := stringField(obj, foreignKeys)
		if !ok {
			continue
		}

		native = strings.TrimSpace(native)
		foreign = strings.TrimSpace(foreign)
		if native == "" || foreign == "" {
			continue
		}

		words = append(words, domain.WordPair{
			Native:         native,
			Foreign:        foreign,
			CorrectCount:   countField(obj, correctKeys),
			IncorrectCount: countField(obj, incorrectKeys),
		})
	}

	return words, nil
}

// stringField returns the first present key, which must hold a JSON string
func stringField(obj map[string]json.RawMessage, keys []string) (string, bool) {
	for _, k := range keys {
		raw, ok := obj[k]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	}
	return "", false
}

// countField coerces the first present key to a non-negative integer, 0 otherwise
func countField(obj map[string]json.RawMessage, keys []string) int {
	for _, k := range keys {
		raw, ok := obj[k]
		if !ok {
			continue
		}
		return coerceCount(raw)
	}
	return 0
}

func coerceCount(raw json.RawMessage) int {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0
	}

	var n float64
	switch x := v.(type) {
	case float64:
		n = x
	case bool:
		if x {
			n = 1
		}
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		n = f
	default:
		return 0
	}

	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0
	}
	if n > maxCount {
		return maxCount
	}
	return int(n)
}
