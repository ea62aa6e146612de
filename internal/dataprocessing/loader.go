package dataprocessing

import (
	"context"
	"encoding/csv"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "tablekit/internal/errors"
	"tablekit/internal/infrastructure"
	"tablekit/pkg/contracts/domain"
)

// Loader reads tabular files into datasets, inferring a type for every
// column from its cell contents.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a new file loader.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// LoadCSV reads a comma-separated file with a header row into a Dataset.
// Each column's type is inferred from its cells: all-integer columns become
// int64, otherwise all-numeric columns become float64, everything else is
// string. Empty fields become null cells in any column.
func (l *Loader) LoadCSV(ctx context.Context, path string) (domain.Dataset, error) {
	ctx = infrastructure.EnsureTraceID(ctx)
	logger := l.logger.With("trace_id", infrastructure.GetTraceID(ctx))

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Dataset{}, apperrors.NewNotFoundError(path)
		}
		return domain.Dataset{}, apperrors.NewStorageError("failed to open CSV file", err).
			WithContext("path", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	rows, err := reader.ReadAll()
	if err != nil {
		return domain.Dataset{}, apperrors.NewMalformedInputError("failed to parse CSV file", err).
			WithContext("path", path)
	}
	if len(rows) < 2 {
		return domain.Dataset{}, apperrors.NewEmptySourceError(path)
	}

	ds := buildDataset(rows[0], rows[1:])

	logger.InfoContext(ctx, "loaded CSV file",
		slog.String("path", path),
		slog.Int("rows", ds.NumRows()),
		slog.Int("columns", ds.NumColumns()))

	return ds, nil
}

// LoadExcel reads a worksheet from an Excel file into a Dataset, applying
// the same header and type-inference rules as LoadCSV. An empty sheet name
// selects the workbook's first sheet.
func (l *Loader) LoadExcel(ctx context.Context, path, sheet string) (domain.Dataset, error) {
	ctx = infrastructure.EnsureTraceID(ctx)
	logger := l.logger.With("trace_id", infrastructure.GetTraceID(ctx))

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return domain.Dataset{}, apperrors.NewNotFoundError(path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return domain.Dataset{}, apperrors.NewMalformedInputError("failed to open Excel file", err).
			WithContext("path", path)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return domain.Dataset{}, apperrors.NewEmptySourceError(path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return domain.Dataset{}, apperrors.NewMalformedInputError("failed to read Excel sheet", err).
			WithContext("path", path).
			WithContext("sheet", sheet)
	}
	if len(rows) < 2 {
		return domain.Dataset{}, apperrors.NewEmptySourceError(path)
	}

	// excelize returns ragged rows; pad to header width so that trailing
	// empty cells become nulls instead of shifting columns.
	header := rows[0]
	records := make([][]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		for len(row) < len(header) {
			row = append(row, "")
		}
		records = append(records, row[:len(header)])
	}

	ds := buildDataset(header, records)

	logger.InfoContext(ctx, "loaded Excel sheet",
		slog.String("path", path),
		slog.String("sheet", sheet),
		slog.Int("rows", ds.NumRows()),
		slog.Int("columns", ds.NumColumns()))

	return ds, nil
}

// buildDataset assembles a Dataset from a header row and raw string records.
func buildDataset(header []string, records [][]string) domain.Dataset {
	ds := domain.Dataset{Columns: make([]domain.Column, len(header))}

	for j, name := range header {
		raw := make([]string, len(records))
		for i, record := range records {
			if j < len(record) {
				raw[i] = record[j]
			}
		}
		colType := inferColumnType(raw)
		ds.Columns[j] = domain.Column{
			Name:  strings.TrimSpace(name),
			Type:  colType,
			Cells: parseCells(raw, colType),
		}
	}

	return ds
}

// inferColumnType picks the narrowest type that fits every non-empty value.
// Only truly empty fields count as missing; a whitespace-only field is a
// text value. Numeric parsing tolerates surrounding whitespace.
func inferColumnType(values []string) domain.ColumnType {
	allInt := true
	allFloat := true
	seen := false

	for _, v := range values {
		if v == "" {
			continue
		}
		seen = true
		trimmed := strings.TrimSpace(v)
		if _, err := strconv.ParseInt(trimmed, 10, 64); err != nil {
			allInt = false
		}
		if _, err := strconv.ParseFloat(trimmed, 64); err != nil {
			allFloat = false
			break
		}
	}

	switch {
	case !seen:
		// A column of only empty cells carries no type information.
		return domain.TypeString
	case allInt:
		return domain.TypeInt
	case allFloat:
		return domain.TypeFloat
	default:
		return domain.TypeString
	}
}

func parseCells(values []string, colType domain.ColumnType) []domain.Cell {
	cells := make([]domain.Cell, len(values))
	for i, v := range values {
		if v == "" {
			cells[i] = domain.NullCell()
			continue
		}
		switch colType {
		case domain.TypeInt:
			n, _ := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			cells[i] = domain.IntCell(n)
		case domain.TypeFloat:
			f, _ := strconv.ParseFloat(strings.TrimSpace(v), 64)
			cells[i] = domain.FloatCell(f)
		default:
			cells[i] = domain.StringCell(v)
		}
	}
	return cells
}
