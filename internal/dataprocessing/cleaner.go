package dataprocessing

import (
	apperrors "tablekit/internal/errors"
	"tablekit/pkg/contracts/domain"
)

// Cleaner handles row-level transforms: null and duplicate removal, and
// equality filtering.
type Cleaner struct{}

// NewCleaner creates a new cleaner
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean removes every row containing at least one null cell, then removes
// exact duplicate rows keeping the first occurrence, preserving the order
// of surviving rows. The result is densely indexed from 0 by construction.
func (c *Cleaner) Clean(ds domain.Dataset) domain.Dataset {
	seen := make(map[string]bool)
	keep := make([]int, 0, ds.NumRows())

	for i := 0; i < ds.NumRows(); i++ {
		if rowHasNull(ds, i) {
			continue
		}
		key := ds.RowKey(i)
		if seen[key] {
			continue
		}
		seen[key] = true
		keep = append(keep, i)
	}

	return ds.TakeRows(keep)
}

// CleanStatistics describes what a Clean pass removed.
type CleanStatistics struct {
	TotalRows     int
	KeptRows      int
	NullRows      int
	DuplicateRows int
}

// CleanWithStats performs Clean and reports how many rows were dropped and why.
func (c *Cleaner) CleanWithStats(ds domain.Dataset) (domain.Dataset, CleanStatistics) {
	stats := CleanStatistics{TotalRows: ds.NumRows()}
	seen := make(map[string]bool)
	keep := make([]int, 0, ds.NumRows())

	for i := 0; i < ds.NumRows(); i++ {
		if rowHasNull(ds, i) {
			stats.NullRows++
			continue
		}
		key := ds.RowKey(i)
		if seen[key] {
			stats.DuplicateRows++
			continue
		}
		seen[key] = true
		keep = append(keep, i)
	}

	stats.KeptRows = len(keep)
	return ds.TakeRows(keep), stats
}

// FilterEquals returns the rows where the named column's value equals the
// given cell, preserving relative order. A filter that matches nothing
// returns a valid empty dataset.
func (c *Cleaner) FilterEquals(ds domain.Dataset, column string, value domain.Cell) (domain.Dataset, error) {
	col, ok := ds.Column(column)
	if !ok {
		return domain.Dataset{}, apperrors.NewUnknownColumnError(column)
	}

	keep := make([]int, 0, len(col.Cells))
	for i, cell := range col.Cells {
		if cell.Equal(value) {
			keep = append(keep, i)
		}
	}

	return ds.TakeRows(keep), nil
}

func rowHasNull(ds domain.Dataset, i int) bool {
	for _, col := range ds.Columns {
		if col.Cells[i].IsNull() {
			return true
		}
	}
	return false
}
