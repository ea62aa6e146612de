// Package exporter moves datasets and plain records between memory and
// disk.
//
// This package contains three main components:
//
// CSVWriter: writes datasets to CSV files with headers, with optional
// UTF-8 BOM for Excel compatibility.
//
// JSONStore: serializes plain key-value records to pretty-printed JSON
// files and reads them back.
//
// RenderDataset: renders a dataset as an aligned text table for terminal
// output.
//
// Example usage:
//
//	writer := exporter.NewCSVWriter(logger)
//	err := writer.WriteDataset(ctx, dataset, "data/out/employees.csv")
//
//	store := exporter.NewJSONStore(logger)
//	err = store.Save(ctx, stats.Record(), "data/out/salary_stats.json")
package exporter
