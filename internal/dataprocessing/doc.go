// Package dataprocessing provides the core operations over in-memory
// tabular datasets: loading from delimited and spreadsheet files, cleaning,
// filtering, type validation, and statistical analysis.
//
// # Architecture
//
// The package is organized into three main components:
//
// 1. Loader: reads CSV and Excel files and infers per-column types
// 2. Cleaner: row-level transforms (null/duplicate removal, equality filters)
// 3. Analyzer: per-column summary statistics and group-aggregate queries
//
// # Data Flow
//
// The typical data flow through this package:
//
//	CSV/XLSX File → Loader → Dataset → Cleaner → Dataset → Analyzer → Stats/Dataset
//
// Datasets are immutable by convention: every transform returns a new
// Dataset and never modifies its input.
//
// # Error Handling
//
// All functions fail fast with typed errors from internal/errors. A missing
// file is NOT_FOUND, a file without data rows is EMPTY_SOURCE, a reference
// to an absent column is UNKNOWN_COLUMN, statistics over text data is
// NOT_NUMERIC, and an invalid aggregation verb is UNSUPPORTED_OPERATION.
// Nothing is retried or suppressed.
//
// # Testing
//
// The package includes comprehensive tests for all components.
// Use table-driven tests when adding new functionality.
package dataprocessing
