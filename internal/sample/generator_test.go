package sample

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tablekit/internal/errors"
	"tablekit/pkg/contracts/domain"
)

func TestGenerator_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("default shape", func(t *testing.T) {
		gen := NewGenerator(slog.Default(), DefaultConfig())
		ds, err := gen.Generate(ctx)
		require.NoError(t, err)

		assert.Equal(t, 100, ds.NumRows())
		assert.Equal(t, []string{
			"employee_id", "name", "department", "location",
			"salary", "years_experience", "performance_score",
		}, ds.ColumnNames())
	})

	t.Run("custom size", func(t *testing.T) {
		gen := NewGenerator(slog.Default(), Config{Rows: 50, Seed: 42})
		ds, err := gen.Generate(ctx)
		require.NoError(t, err)

		assert.Equal(t, 50, ds.NumRows())
		ids, _ := ds.Column("employee_id")
		assert.Equal(t, domain.IntCell(1), ids.Cells[0])
		assert.Equal(t, domain.IntCell(50), ids.Cells[49])
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		gen := NewGenerator(slog.Default(), Config{Rows: 10, Seed: 42})

		first, err := gen.Generate(ctx)
		require.NoError(t, err)
		second, err := gen.Generate(ctx)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("different seeds differ", func(t *testing.T) {
		first, err := NewGenerator(slog.Default(), Config{Rows: 10, Seed: 42}).Generate(ctx)
		require.NoError(t, err)
		second, err := NewGenerator(slog.Default(), Config{Rows: 10, Seed: 43}).Generate(ctx)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("value ranges", func(t *testing.T) {
		ds, err := NewGenerator(slog.Default(), Config{Rows: 200, Seed: 42}).Generate(ctx)
		require.NoError(t, err)

		departments, _ := ds.Column("department")
		for _, cell := range departments.Cells {
			assert.Contains(t, []string{"Engineering", "Sales", "Marketing", "HR", "Finance"}, cell.Str)
		}

		years, _ := ds.Column("years_experience")
		for _, cell := range years.Cells {
			assert.GreaterOrEqual(t, cell.Int, int64(0))
			assert.Less(t, cell.Int, int64(20))
		}

		scores, _ := ds.Column("performance_score")
		for _, cell := range scores.Cells {
			assert.GreaterOrEqual(t, cell.Float, 1.0)
			assert.LessOrEqual(t, cell.Float, 5.0)
		}
	})

	t.Run("zero rows", func(t *testing.T) {
		ds, err := NewGenerator(slog.Default(), Config{Rows: 0, Seed: 42}).Generate(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, ds.NumRows())
		assert.Equal(t, 7, ds.NumColumns())
	})

	t.Run("negative rows rejected", func(t *testing.T) {
		_, err := NewGenerator(slog.Default(), Config{Rows: -1, Seed: 42}).Generate(ctx)
		require.Error(t, err)
		assert.True(t, apperrors.IsType(err, apperrors.ErrTypeValidation))
	})
}
