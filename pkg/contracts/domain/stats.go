package domain

// ColumnStats is the fixed-key numeric summary of a single numeric column.
// Std is the sample standard deviation (n-1 denominator); it is 0 when
// fewer than two non-null values are present.
type ColumnStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Count  int     `json:"count"`
}

// Record returns the stats as a plain key-value mapping, the shape expected
// by the JSON exporter.
func (s ColumnStats) Record() map[string]any {
	return map[string]any{
		"mean":   s.Mean,
		"median": s.Median,
		"std":    s.Std,
		"min":    s.Min,
		"max":    s.Max,
		"count":  s.Count,
	}
}

// AggregateOp is an aggregation verb accepted by GroupAggregate.
type AggregateOp string

const (
	AggMean  AggregateOp = "mean"
	AggSum   AggregateOp = "sum"
	AggCount AggregateOp = "count"
	AggMin   AggregateOp = "min"
	AggMax   AggregateOp = "max"
)

// ValidAggregateOps lists the supported aggregation verbs in a stable order
// for error messages.
func ValidAggregateOps() []AggregateOp {
	return []AggregateOp{AggMean, AggSum, AggCount, AggMin, AggMax}
}
