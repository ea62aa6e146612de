package domain

import (
	"fmt"
	"strconv"
)

// ColumnType identifies the inferred storage type of a column.
// The tag strings double as the exact dtype names used by type validation.
type ColumnType string

const (
	TypeInt    ColumnType = "int64"
	TypeFloat  ColumnType = "float64"
	TypeString ColumnType = "string"
)

// Numeric reports whether the column type holds numeric values.
func (t ColumnType) Numeric() bool {
	return t == TypeInt || t == TypeFloat
}

// CellKind tags the value stored in a Cell.
type CellKind uint8

const (
	KindNull CellKind = iota
	KindInt
	KindFloat
	KindString
)

// Cell is a single tagged value in a dataset. A Cell with KindNull is the
// explicit missing-value marker and is distinct from every valid value,
// including the empty string and zero.
type Cell struct {
	Kind  CellKind
	Int   int64
	Float float64
	Str   string
}

// NullCell returns the missing-value marker.
func NullCell() Cell {
	return Cell{Kind: KindNull}
}

// IntCell wraps an integer value.
func IntCell(v int64) Cell {
	return Cell{Kind: KindInt, Int: v}
}

// FloatCell wraps a floating-point value.
func FloatCell(v float64) Cell {
	return Cell{Kind: KindFloat, Float: v}
}

// StringCell wraps a text value.
func StringCell(v string) Cell {
	return Cell{Kind: KindString, Str: v}
}

// IsNull reports whether the cell is the missing-value marker.
func (c Cell) IsNull() bool {
	return c.Kind == KindNull
}

// IsNumeric reports whether the cell holds an integer or float value.
func (c Cell) IsNumeric() bool {
	return c.Kind == KindInt || c.Kind == KindFloat
}

// AsFloat returns the numeric value of the cell. The second return value is
// false for null and text cells.
func (c Cell) AsFloat() (float64, bool) {
	switch c.Kind {
	case KindInt:
		return float64(c.Int), true
	case KindFloat:
		return c.Float, true
	default:
		return 0, false
	}
}

// Equal reports exact value equality. Numeric cells of different kinds
// compare by numeric value, so IntCell(30) equals FloatCell(30.0); a null
// cell equals only another null cell.
func (c Cell) Equal(other Cell) bool {
	if c.Kind == KindNull || other.Kind == KindNull {
		return c.Kind == other.Kind
	}
	if c.IsNumeric() && other.IsNumeric() {
		a, _ := c.AsFloat()
		b, _ := other.AsFloat()
		return a == b
	}
	if c.Kind != other.Kind {
		return false
	}
	return c.Str == other.Str
}

// String renders the cell for display and CSV output. Null cells render as
// the empty string.
func (c Cell) String() string {
	switch c.Kind {
	case KindInt:
		return strconv.FormatInt(c.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(c.Float, 'f', -1, 64)
	case KindString:
		return c.Str
	default:
		return ""
	}
}

// Value returns the cell's native Go value (nil for null cells), suitable
// for JSON encoding.
func (c Cell) Value() any {
	switch c.Kind {
	case KindInt:
		return c.Int
	case KindFloat:
		return c.Float
	case KindString:
		return c.Str
	default:
		return nil
	}
}

// Column is a named, typed sequence of cells.
type Column struct {
	Name  string
	Type  ColumnType
	Cells []Cell
}

// Dataset is an in-memory rectangular table: an ordered sequence of named
// columns of equal length, rows positionally aligned. Every operation in
// this module returns a new Dataset and leaves its input untouched.
type Dataset struct {
	Columns []Column
}

// NumRows returns the number of rows. All columns have identical length.
func (d Dataset) NumRows() int {
	if len(d.Columns) == 0 {
		return 0
	}
	return len(d.Columns[0].Cells)
}

// NumColumns returns the number of columns.
func (d Dataset) NumColumns() int {
	return len(d.Columns)
}

// ColumnNames returns the column names in declaration order.
func (d Dataset) ColumnNames() []string {
	names := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		names[i] = col.Name
	}
	return names
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (d Dataset) ColumnIndex(name string) int {
	for i, col := range d.Columns {
		if col.Name == name {
			return i
		}
	}
	return -1
}

// Column returns the named column. The second return value is false when
// the column does not exist.
func (d Dataset) Column(name string) (Column, bool) {
	if i := d.ColumnIndex(name); i >= 0 {
		return d.Columns[i], true
	}
	return Column{}, false
}

// HasColumn reports whether the named column exists.
func (d Dataset) HasColumn(name string) bool {
	return d.ColumnIndex(name) >= 0
}

// Row returns the cells of row i in column order.
func (d Dataset) Row(i int) []Cell {
	row := make([]Cell, len(d.Columns))
	for j, col := range d.Columns {
		row[j] = col.Cells[i]
	}
	return row
}

// TakeRows builds a new Dataset containing the given row indices in the
// given order, preserving column names and types. The receiver is not
// modified.
func (d Dataset) TakeRows(indices []int) Dataset {
	out := Dataset{Columns: make([]Column, len(d.Columns))}
	for j, col := range d.Columns {
		cells := make([]Cell, 0, len(indices))
		for _, i := range indices {
			cells = append(cells, col.Cells[i])
		}
		out.Columns[j] = Column{Name: col.Name, Type: col.Type, Cells: cells}
	}
	return out
}

// RowKey returns a canonical string key for row i, used to detect exact
// duplicate rows. Null cells are encoded distinctly from empty strings.
func (d Dataset) RowKey(i int) string {
	key := ""
	for _, col := range d.Columns {
		cell := col.Cells[i]
		if cell.IsNull() {
			key += "\x00N|"
		} else {
			key += fmt.Sprintf("%d:%s|", cell.Kind, cell.String())
		}
	}
	return key
}
