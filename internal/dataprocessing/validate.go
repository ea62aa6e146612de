package dataprocessing

import (
	"strings"

	"tablekit/pkg/contracts/domain"
)

// Expected logical type tags accepted by ValidateTypes, alongside exact
// column type names such as "int64" or "float64".
const (
	ExpectNumeric = "numeric"
	ExpectString  = "string"
)

// ValidateTypes checks every (column, expected type) pair against the
// dataset and reports whether all of them hold. "numeric" accepts any
// numeric column, "string" accepts text columns only, and any other
// expectation matches against the column's type tag. The check
// short-circuits to false on the first failing pair; a missing column is a
// failure.
func ValidateTypes(ds domain.Dataset, expectations map[string]string) bool {
	for column, expected := range expectations {
		col, ok := ds.Column(column)
		if !ok {
			return false
		}

		switch expected {
		case ExpectNumeric:
			if !col.Type.Numeric() {
				return false
			}
		case ExpectString:
			if col.Type != domain.TypeString {
				return false
			}
		default:
			if !strings.Contains(string(col.Type), expected) {
				return false
			}
		}
	}
	return true
}
