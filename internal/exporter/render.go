package exporter

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"tablekit/pkg/contracts/domain"
)

// RenderDataset writes the dataset to w as an aligned text table.
func RenderDataset(w io.Writer, ds domain.Dataset) {
	if ds.NumRows() == 0 {
		fmt.Fprintln(w, "(0 rows)")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, ds.NumColumns())
	for j, name := range ds.ColumnNames() {
		header[j] = name
	}
	t.AppendHeader(header)

	for i := 0; i < ds.NumRows(); i++ {
		row := make(table.Row, ds.NumColumns())
		for j, col := range ds.Columns {
			row[j] = col.Cells[i].String()
		}
		t.AppendRow(row)
	}

	t.Render()
	fmt.Fprintf(w, "(%d rows)\n", ds.NumRows())
}
