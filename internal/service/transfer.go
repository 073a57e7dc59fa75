package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"wordtrainer/internal/domain"
)

// MaxImportSize bounds an import payload
const MaxImportSize = 8 << 20

// TransferService exports and imports the word store as JSON
type TransferService struct {
	words  *WordService
	logger *zap.Logger
}

// NewTransferService creates a new import/export service
func NewTransferService(words *WordService, logger *zap.Logger) *TransferService {
	return &TransferService{
		words:  words,
		logger: logger,
	}
}

// Export writes the store as an indented JSON array
func (s *TransferService) Export(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(s.words.Words()); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// ExportFile writes the export to filePath, owner read/write only
func (s *TransferService) ExportFile(filePath string) error {
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	if err := s.Export(file); err != nil {
		return err
	}

	s.logger.Info("Words exported", zap.String("path", filePath), zap.Int("count", s.words.Count()))
	return file.Close()
}

// ReadPayload reads at most MaxImportSize bytes from r
func ReadPayload(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImportSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read import: %w", err)
	}
	if len(data) > MaxImportSize {
		return nil, fmt.Errorf("import larger than %d bytes", MaxImportSize)
	}
	return data, nil
}

// utf8BOM is prepended to JSON files by some Windows editors
var utf8BOM = []byte("\xef\xbb\xbf")

// ParseImport validates a payload without touching the store
func ParseImport(data []byte) ([]domain.WordPair, error) {
	return decodeWordPairs(bytes.TrimPrefix(data, utf8BOM))
}

// Import replaces the store with the valid entries of data.
// A payload that is not a JSON array leaves the store untouched.
func (s *TransferService) Import(data []byte) (int, error) {
	words, err := ParseImport(data)
	if err != nil {
		s.logger.Warn("Rejected import", zap.Error(err))
		return 0, err
	}

	if err := s.words.ReplaceAll(words); err != nil {
		return 0, err
	}

	s.logger.Info("Words imported", zap.Int("count", len(words)))
	return len(words), nil
}
