package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tablekit/internal/dataprocessing"
	apperrors "tablekit/internal/errors"
	"tablekit/internal/exporter"
	"tablekit/internal/infrastructure"
	"tablekit/internal/sample"
	"tablekit/pkg/contracts/domain"
)

// commandLogger returns the trace-aware logger used by every subcommand.
func commandLogger(ctx context.Context) *slog.Logger {
	return infrastructure.WithComponent(infrastructure.LoggerWithContext(ctx), "cli")
}

// loadDataset reads a dataset from a CSV or Excel file, chosen by extension.
func loadDataset(ctx context.Context, path, sheet string) (domain.Dataset, error) {
	loader := dataprocessing.NewLoader(commandLogger(ctx))
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xls":
		return loader.LoadExcel(ctx, path, sheet)
	default:
		return loader.LoadCSV(ctx, path)
	}
}

// writeOrRender writes the dataset to the given CSV path, or renders it to
// stdout when no path is given.
func writeOrRender(ctx context.Context, cmd *cobra.Command, ds domain.Dataset, out string) error {
	if out == "" {
		exporter.RenderDataset(cmd.OutOrStdout(), ds)
		return nil
	}
	return exporter.NewCSVWriter(commandLogger(ctx)).WriteDataset(ctx, ds, out)
}

// parseValue interprets a CLI filter value the same way the loader types
// CSV cells: integer, then float, then plain text.
func parseValue(s string) domain.Cell {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return domain.IntCell(n)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return domain.FloatCell(f)
	}
	return domain.StringCell(s)
}

func newGenerateCommand() *cobra.Command {
	var (
		rows int
		seed int64
		out  string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a deterministic sample employee dataset",
		Example: `  # 100 rows to the terminal
  tablekit generate

  # 500 rows to a CSV file
  tablekit generate --rows 500 --out data/employees.csv`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := infrastructure.EnsureTraceID(cmd.Context())
			if rows == 0 {
				rows = cfg.Sample.Rows
			}
			gen := sample.NewGenerator(commandLogger(ctx), sample.Config{Rows: rows, Seed: seed})
			ds, err := gen.Generate(ctx)
			if err != nil {
				return err
			}
			return writeOrRender(ctx, cmd, ds, out)
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 0, "number of rows (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed")
	cmd.Flags().StringVar(&out, "out", "", "output CSV path (default: render to stdout)")
	return cmd
}

func newCleanCommand() *cobra.Command {
	var (
		out   string
		sheet string
	)
	cmd := &cobra.Command{
		Use:   "clean FILE",
		Short: "Drop rows with missing values and duplicate rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := infrastructure.EnsureTraceID(cmd.Context())
			ds, err := loadDataset(ctx, args[0], sheet)
			if err != nil {
				return err
			}
			cleaned, stats := dataprocessing.NewCleaner().CleanWithStats(ds)
			commandLogger(ctx).InfoContext(ctx, "cleaned dataset",
				"total_rows", stats.TotalRows,
				"kept_rows", stats.KeptRows,
				"null_rows", stats.NullRows,
				"duplicate_rows", stats.DuplicateRows)
			return writeOrRender(ctx, cmd, cleaned, out)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output CSV path (default: render to stdout)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "worksheet name for Excel input")
	return cmd
}

func newFilterCommand() *cobra.Command {
	var (
		column string
		value  string
		out    string
		sheet  string
	)
	cmd := &cobra.Command{
		Use:   "filter FILE",
		Short: "Keep only rows where a column equals a value",
		Example: `  tablekit filter employees.csv --column department --value Engineering`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := infrastructure.EnsureTraceID(cmd.Context())
			ds, err := loadDataset(ctx, args[0], sheet)
			if err != nil {
				return err
			}
			filtered, err := dataprocessing.NewCleaner().FilterEquals(ds, column, parseValue(value))
			if err != nil {
				return err
			}
			return writeOrRender(ctx, cmd, filtered, out)
		},
	}
	cmd.Flags().StringVar(&column, "column", "", "column to filter on")
	cmd.Flags().StringVar(&value, "value", "", "value to match")
	cmd.Flags().StringVar(&out, "out", "", "output CSV path (default: render to stdout)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "worksheet name for Excel input")
	_ = cmd.MarkFlagRequired("column")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}

func newStatsCommand() *cobra.Command {
	var (
		column string
		out    string
		sheet  string
	)
	cmd := &cobra.Command{
		Use:   "stats FILE",
		Short: "Compute summary statistics for a numeric column",
		Example: `  tablekit stats employees.csv --column salary

  # write the result as a JSON record
  tablekit stats employees.csv --column salary --out salary_stats.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := infrastructure.EnsureTraceID(cmd.Context())
			ds, err := loadDataset(ctx, args[0], sheet)
			if err != nil {
				return err
			}
			stats, err := dataprocessing.NewAnalyzer(commandLogger(ctx)).Describe(ctx, ds, column)
			if err != nil {
				return err
			}
			if out != "" {
				return exporter.NewJSONStore(commandLogger(ctx)).Save(ctx, stats.Record(), out)
			}
			encoded, err := json.MarshalIndent(stats, "", "  ")
			if err != nil {
				return apperrors.NewStorageError("failed to encode statistics", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
			return nil
		},
	}
	cmd.Flags().StringVar(&column, "column", "", "numeric column to summarize")
	cmd.Flags().StringVar(&out, "out", "", "output JSON path (default: print to stdout)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "worksheet name for Excel input")
	_ = cmd.MarkFlagRequired("column")
	return cmd
}

func newGroupCommand() *cobra.Command {
	var (
		groupBy string
		agg     string
		op      string
		out     string
		sheet   string
	)
	cmd := &cobra.Command{
		Use:   "group FILE",
		Short: "Group rows by a column and aggregate another",
		Example: `  tablekit group employees.csv --group-by department --agg salary --op mean`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := infrastructure.EnsureTraceID(cmd.Context())
			ds, err := loadDataset(ctx, args[0], sheet)
			if err != nil {
				return err
			}
			result, err := dataprocessing.NewAnalyzer(commandLogger(ctx)).
				GroupAggregate(ctx, ds, groupBy, agg, domain.AggregateOp(op))
			if err != nil {
				return err
			}
			return writeOrRender(ctx, cmd, result, out)
		},
	}
	cmd.Flags().StringVar(&groupBy, "group-by", "", "column whose distinct values form the groups")
	cmd.Flags().StringVar(&agg, "agg", "", "column to aggregate")
	cmd.Flags().StringVar(&op, "op", "mean", "aggregation: mean, sum, count, min, max")
	cmd.Flags().StringVar(&out, "out", "", "output CSV path (default: render to stdout)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "worksheet name for Excel input")
	_ = cmd.MarkFlagRequired("group-by")
	_ = cmd.MarkFlagRequired("agg")
	return cmd
}

func newValidateCommand() *cobra.Command {
	var (
		expects []string
		sheet   string
	)
	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Check that columns have the expected types",
		Example: `  tablekit validate employees.csv --expect name=string --expect salary=numeric`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := infrastructure.EnsureTraceID(cmd.Context())
			ds, err := loadDataset(ctx, args[0], sheet)
			if err != nil {
				return err
			}
			expectations := make(map[string]string, len(expects))
			for _, e := range expects {
				parts := strings.SplitN(e, "=", 2)
				if len(parts) != 2 {
					return apperrors.NewValidationError(
						fmt.Sprintf("expectation %q must be column=type", e), nil)
				}
				expectations[parts[0]] = parts[1]
			}
			ok := dataprocessing.ValidateTypes(ds, expectations)
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			if !ok {
				return apperrors.NewValidationError("dataset failed type validation", nil)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&expects, "expect", nil, "column=type expectation (repeatable)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "worksheet name for Excel input")
	return cmd
}
