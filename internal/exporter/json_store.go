package exporter

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "tablekit/internal/errors"
)

// JSONStore reads and writes plain key-value records as JSON files.
type JSONStore struct {
	logger *slog.Logger
}

// NewJSONStore creates a new JSON record store.
func NewJSONStore(logger *slog.Logger) *JSONStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &JSONStore{logger: logger}
}

// Save serializes the record to a pretty-printed JSON file at path,
// overwriting any existing file. The parent directory is created if
// missing.
func (s *JSONStore) Save(ctx context.Context, record map[string]any, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create directory for JSON output", err).
			WithContext("path", path)
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError("failed to create JSON file", err).
			WithContext("path", path)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(record); err != nil {
		return apperrors.NewStorageError("failed to encode record to JSON", err).
			WithContext("path", path)
	}

	s.logger.InfoContext(ctx, "wrote JSON record",
		slog.String("path", path),
		slog.Int("keys", len(record)))

	return nil
}

// Load deserializes a JSON object from path. A missing file fails with
// NOT_FOUND and unparsable content fails with MALFORMED_INPUT.
func (s *JSONStore) Load(ctx context.Context, path string) (map[string]any, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewNotFoundError(path)
		}
		return nil, apperrors.NewStorageError("failed to open JSON file", err).
			WithContext("path", path)
	}
	defer file.Close()

	var record map[string]any
	if err := json.NewDecoder(file).Decode(&record); err != nil {
		return nil, apperrors.NewMalformedInputError("failed to parse JSON file", err).
			WithContext("path", path)
	}

	s.logger.InfoContext(ctx, "read JSON record",
		slog.String("path", path),
		slog.Int("keys", len(record)))

	return record, nil
}
