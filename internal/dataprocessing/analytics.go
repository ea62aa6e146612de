package dataprocessing

import (
	"context"
	"log/slog"
	"math"
	"sort"

	apperrors "tablekit/internal/errors"
	"tablekit/pkg/contracts/domain"
)

// Analyzer computes summary statistics and group-aggregate queries over
// datasets.
type Analyzer struct {
	logger *slog.Logger
}

// NewAnalyzer creates a new analyzer.
func NewAnalyzer(logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{logger: logger}
}

// Describe computes mean, median, sample standard deviation, min, max and
// non-null count over the named numeric column. A column whose inferred
// type is not numeric fails with NOT_NUMERIC; an all-null numeric column
// yields a zero-valued result with Count 0.
func (a *Analyzer) Describe(ctx context.Context, ds domain.Dataset, column string) (domain.ColumnStats, error) {
	col, ok := ds.Column(column)
	if !ok {
		return domain.ColumnStats{}, apperrors.NewUnknownColumnError(column)
	}
	if !col.Type.Numeric() {
		return domain.ColumnStats{}, apperrors.NewNotNumericError(column)
	}

	values := make([]float64, 0, len(col.Cells))
	for _, cell := range col.Cells {
		if v, ok := cell.AsFloat(); ok {
			values = append(values, v)
		}
	}

	stats := domain.ColumnStats{Count: len(values)}
	if len(values) == 0 {
		return stats, nil
	}

	var sum float64
	stats.Min = values[0]
	stats.Max = values[0]
	for _, v := range values {
		sum += v
		stats.Min = math.Min(stats.Min, v)
		stats.Max = math.Max(stats.Max, v)
	}
	stats.Mean = sum / float64(len(values))
	stats.Median = median(values)
	stats.Std = sampleStdDev(values, stats.Mean)

	a.logger.DebugContext(ctx, "computed column statistics",
		slog.String("column", column),
		slog.Int("count", stats.Count),
		slog.Float64("mean", stats.Mean))

	return stats, nil
}

// GroupAggregate partitions rows by the distinct values of groupColumn and
// applies op to aggColumn within each partition. The result has exactly two
// columns, named after the inputs, one row per distinct group value in
// first-seen order. Rows whose group key is null are skipped, and null
// cells of the aggregation column are ignored.
func (a *Analyzer) GroupAggregate(ctx context.Context, ds domain.Dataset, groupColumn, aggColumn string, op domain.AggregateOp) (domain.Dataset, error) {
	groupCol, ok := ds.Column(groupColumn)
	if !ok {
		return domain.Dataset{}, apperrors.NewUnknownColumnError(groupColumn)
	}
	aggCol, ok := ds.Column(aggColumn)
	if !ok {
		return domain.Dataset{}, apperrors.NewUnknownColumnError(aggColumn)
	}
	if !validOp(op) {
		valid := make([]string, 0, 5)
		for _, v := range domain.ValidAggregateOps() {
			valid = append(valid, string(v))
		}
		return domain.Dataset{}, apperrors.NewUnsupportedOperationError(string(op), valid)
	}
	// count works on any column; the numeric aggregations do not.
	if op != domain.AggCount && !aggCol.Type.Numeric() {
		return domain.Dataset{}, apperrors.NewNotNumericError(aggColumn)
	}

	type group struct {
		key    domain.Cell
		values []float64
	}
	var groups []*group
	index := make(map[string]*group)

	for i, key := range groupCol.Cells {
		if key.IsNull() {
			continue
		}
		id := key.String()
		g, ok := index[id]
		if !ok {
			g = &group{key: key}
			index[id] = g
			groups = append(groups, g)
		}
		cell := aggCol.Cells[i]
		if cell.IsNull() {
			continue
		}
		if v, ok := cell.AsFloat(); ok {
			g.values = append(g.values, v)
		} else if op == domain.AggCount {
			// Count tallies non-null cells regardless of type.
			g.values = append(g.values, 0)
		}
	}

	keys := make([]domain.Cell, len(groups))
	results := make([]domain.Cell, len(groups))
	for i, g := range groups {
		keys[i] = g.key
		results[i] = aggregate(g.values, op, aggCol.Type)
	}

	a.logger.DebugContext(ctx, "computed group aggregation",
		slog.String("group_column", groupColumn),
		slog.String("agg_column", aggColumn),
		slog.String("operation", string(op)),
		slog.Int("groups", len(groups)))

	return domain.Dataset{Columns: []domain.Column{
		{Name: groupColumn, Type: groupCol.Type, Cells: keys},
		{Name: aggColumn, Type: resultType(op, aggCol.Type), Cells: results},
	}}, nil
}

func validOp(op domain.AggregateOp) bool {
	for _, v := range domain.ValidAggregateOps() {
		if op == v {
			return true
		}
	}
	return false
}

// resultType determines the column type of the aggregation output: count is
// always integral, mean is always floating-point, and sum/min/max keep the
// input column's type.
func resultType(op domain.AggregateOp, input domain.ColumnType) domain.ColumnType {
	switch op {
	case domain.AggCount:
		return domain.TypeInt
	case domain.AggMean:
		return domain.TypeFloat
	default:
		return input
	}
}

func aggregate(values []float64, op domain.AggregateOp, input domain.ColumnType) domain.Cell {
	if op == domain.AggCount {
		return domain.IntCell(int64(len(values)))
	}
	if len(values) == 0 {
		if op == domain.AggSum {
			return numericCell(0, input)
		}
		// mean/min/max of an all-null partition has no defined value.
		return domain.NullCell()
	}

	switch op {
	case domain.AggMean:
		var sum float64
		for _, v := range values {
			sum += v
		}
		return domain.FloatCell(sum / float64(len(values)))
	case domain.AggSum:
		var sum float64
		for _, v := range values {
			sum += v
		}
		return numericCell(sum, input)
	case domain.AggMin:
		min := values[0]
		for _, v := range values {
			min = math.Min(min, v)
		}
		return numericCell(min, input)
	default: // AggMax
		max := values[0]
		for _, v := range values {
			max = math.Max(max, v)
		}
		return numericCell(max, input)
	}
}

func numericCell(v float64, colType domain.ColumnType) domain.Cell {
	if colType == domain.TypeInt {
		return domain.IntCell(int64(v))
	}
	return domain.FloatCell(v)
}

// median returns the middle value of the data, averaging the two middle
// values for even-length input. The input slice is not modified.
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// sampleStdDev computes the sample standard deviation (n-1 denominator),
// matching the convention of common statistical libraries. It is 0 for
// fewer than two values.
func sampleStdDev(values []float64, mean float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var ss float64
	for _, v := range values {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)-1))
}
