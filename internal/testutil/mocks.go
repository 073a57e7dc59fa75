package testutil

import (
	"github.com/stretchr/testify/mock"
)

// MockKeyValueStore is a mock for repository.KeyValueStore
type MockKeyValueStore struct {
	mock.Mock
}

func (m *MockKeyValueStore) Get(key string) ([]byte, bool, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.Bool(1), args.Error(2)
}

func (m *MockKeyValueStore) Set(key string, value []byte) error {
	args := m.Called(key, value)
	return args.Error(0)
}
