package dataprocessing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateTypes(t *testing.T) {
	ds := employeeDataset()

	tests := []struct {
		name         string
		expectations map[string]string
		want         bool
	}{
		{
			name: "all expectations hold",
			expectations: map[string]string{
				"name":   "string",
				"age":    "numeric",
				"salary": "numeric",
			},
			want: true,
		},
		{
			name: "text column is not numeric",
			expectations: map[string]string{
				"name": "numeric",
				"age":  "numeric",
			},
			want: false,
		},
		{
			name: "numeric column is not string",
			expectations: map[string]string{
				"age": "string",
			},
			want: false,
		},
		{
			name: "missing column fails",
			expectations: map[string]string{
				"nonexistent_column": "numeric",
			},
			want: false,
		},
		{
			name: "exact dtype tag matches",
			expectations: map[string]string{
				"age": "int64",
			},
			want: true,
		},
		{
			name: "partial dtype tag matches",
			expectations: map[string]string{
				"age": "int",
			},
			want: true,
		},
		{
			name: "wrong dtype tag fails",
			expectations: map[string]string{
				"age": "float64",
			},
			want: false,
		},
		{
			name:         "no expectations pass vacuously",
			expectations: map[string]string{},
			want:         true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateTypes(ds, tt.expectations))
		})
	}
}

func TestValidateTypes_FloatColumn(t *testing.T) {
	ds := numericDataset()

	assert.True(t, ValidateTypes(ds, map[string]string{"scores": "numeric"}))
	assert.True(t, ValidateTypes(ds, map[string]string{"scores": "float64"}))
	assert.False(t, ValidateTypes(ds, map[string]string{"scores": "string"}))
	assert.True(t, ValidateTypes(ds, map[string]string{"category": "string"}))
}
