package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "without cause",
			err:  NewUnknownColumnError("salary"),
			want: `[UNKNOWN_COLUMN] column "salary" not found in dataset`,
		},
		{
			name: "with cause",
			err:  NewStorageError("failed to create file", errors.New("disk full")),
			want: "[STORAGE] failed to create file: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := NewMalformedInputError("bad JSON", cause)

	assert.ErrorIs(t, err, cause)

	var appErr *AppError
	require.ErrorAs(t, fmt.Errorf("wrapped: %w", err), &appErr)
	assert.Equal(t, ErrTypeMalformedInput, appErr.Type)
}

func TestIsType(t *testing.T) {
	err := NewNotFoundError("/tmp/missing.csv")

	assert.True(t, IsType(err, ErrTypeNotFound))
	assert.False(t, IsType(err, ErrTypeStorage))
	assert.True(t, IsType(fmt.Errorf("context: %w", err), ErrTypeNotFound))
	assert.False(t, IsType(errors.New("plain"), ErrTypeNotFound))
	assert.False(t, IsType(nil, ErrTypeNotFound))
}

func TestAppError_WithContext(t *testing.T) {
	err := NewNotNumericError("category").WithContext("dataset", "employees")

	assert.Equal(t, "category", err.Context["column"])
	assert.Equal(t, "employees", err.Context["dataset"])
}

func TestUnsupportedOperationError(t *testing.T) {
	err := NewUnsupportedOperationError("bogus", []string{"mean", "sum", "count", "min", "max"})

	assert.True(t, IsType(err, ErrTypeUnsupportedOp))
	assert.Contains(t, err.Error(), "bogus")
	assert.Contains(t, err.Error(), "mean")
}
