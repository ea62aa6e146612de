package exporter

import (
	"context"
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"

	apperrors "tablekit/internal/errors"
	"tablekit/pkg/contracts/domain"
)

// CSVWriter provides CSV export functionality for datasets.
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger}
}

// WriteOptions configures CSV writing behavior
type WriteOptions struct {
	BOMPrefix bool // Add UTF-8 BOM for Excel compatibility
}

// WriteDataset writes a dataset to a CSV file with a header row, creating
// the parent directory if needed and overwriting any existing file. Null
// cells are written as empty fields.
func (w *CSVWriter) WriteDataset(ctx context.Context, ds domain.Dataset, path string) error {
	return w.WriteDatasetOptions(ctx, ds, path, WriteOptions{})
}

// WriteDatasetOptions writes a dataset to a CSV file with the given options.
func (w *CSVWriter) WriteDatasetOptions(ctx context.Context, ds domain.Dataset, path string, options WriteOptions) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create directory for CSV output", err).
			WithContext("path", path)
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError("failed to create CSV file", err).
			WithContext("path", path)
	}
	defer file.Close()

	// BOM helps Excel recognize UTF-8 content.
	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return apperrors.NewStorageError("failed to write BOM", err).
				WithContext("path", path)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(ds.ColumnNames()); err != nil {
		return apperrors.NewStorageError("failed to write CSV header row", err).
			WithContext("path", path)
	}

	record := make([]string, ds.NumColumns())
	for i := 0; i < ds.NumRows(); i++ {
		for j, col := range ds.Columns {
			record[j] = col.Cells[i].String()
		}
		if err := writer.Write(record); err != nil {
			return apperrors.NewStorageError("failed to write CSV data row", err).
				WithContext("path", path).
				WithContext("row", i)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apperrors.NewStorageError("failed to flush CSV output", err).
			WithContext("path", path)
	}

	w.logger.InfoContext(ctx, "wrote dataset to CSV",
		slog.String("path", path),
		slog.Int("rows", ds.NumRows()),
		slog.Int("columns", ds.NumColumns()))

	return nil
}
