package exporter

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tablekit/pkg/contracts/domain"
)

func testDataset() domain.Dataset {
	return domain.Dataset{Columns: []domain.Column{
		{Name: "name", Type: domain.TypeString, Cells: []domain.Cell{
			domain.StringCell("Alice"), domain.StringCell("Bob"),
		}},
		{Name: "age", Type: domain.TypeInt, Cells: []domain.Cell{
			domain.IntCell(25), domain.NullCell(),
		}},
		{Name: "score", Type: domain.TypeFloat, Cells: []domain.Cell{
			domain.FloatCell(85.5), domain.FloatCell(90),
		}},
	}}
}

func TestCSVWriter_WriteDataset(t *testing.T) {
	ctx := context.Background()
	writer := NewCSVWriter(slog.Default())

	t.Run("header and rows", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.csv")
		require.NoError(t, writer.WriteDataset(ctx, testDataset(), path))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "name,age,score\nAlice,25,85.5\nBob,,90\n", string(content))
	})

	t.Run("creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sub", "dir", "out.csv")
		require.NoError(t, writer.WriteDataset(ctx, testDataset(), path))
		_, err := os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("BOM prefix", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.csv")
		require.NoError(t, writer.WriteDatasetOptions(ctx, testDataset(), path, WriteOptions{BOMPrefix: true}))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(content, []byte{0xEF, 0xBB, 0xBF}))
	})

	t.Run("empty dataset writes header only", func(t *testing.T) {
		ds := domain.Dataset{Columns: []domain.Column{
			{Name: "a", Type: domain.TypeInt},
			{Name: "b", Type: domain.TypeString},
		}}
		path := filepath.Join(t.TempDir(), "empty.csv")
		require.NoError(t, writer.WriteDataset(ctx, ds, path))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "a,b\n", string(content))
	})
}

func TestRenderDataset(t *testing.T) {
	t.Run("renders header and row count", func(t *testing.T) {
		var buf bytes.Buffer
		RenderDataset(&buf, testDataset())

		out := buf.String()
		assert.Contains(t, out, "NAME")
		assert.Contains(t, out, "Alice")
		assert.Contains(t, out, "(2 rows)")
	})

	t.Run("empty dataset", func(t *testing.T) {
		var buf bytes.Buffer
		RenderDataset(&buf, domain.Dataset{})
		assert.Equal(t, "(0 rows)\n", buf.String())
	})
}
