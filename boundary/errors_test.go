package boundary

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversionError_Messages(t *testing.T) {
	tests := []struct {
		name     string
		err      *ConversionError
		contains []string
	}{
		{
			name:     "not an object",
			err:      conversionErr(ErrNotAnObject, "Point"),
			contains: []string{"Point", "is not an object"},
		},
		{
			name:     "missing accessor",
			err:      conversionErr(ErrMissingAccessor, "Point"),
			contains: []string{TagMethod, "Point", "generate bindings"},
		},
		{
			name:     "type mismatch names both types",
			err:      &ConversionError{Err: ErrTypeMismatch, Expected: "Point", Actual: "Circle", Index: -1},
			contains: []string{"cannot convert Circle to Point"},
		},
		{
			name:     "identity failure carries detail",
			err:      &ConversionError{Err: ErrIdentity, Expected: "Point", Index: -1, Detail: "call trap"},
			contains: []string{"identity tag", "Point", "call trap"},
		},
		{
			name:     "invalid handle",
			err:      conversionErr(ErrInvalidHandle, "Point"),
			contains: []string{"invalid instance handle", "Point"},
		},
		{
			name:     "element index prefix",
			err:      &ConversionError{Err: ErrTypeMismatch, Expected: "Point", Actual: "Circle", Index: 3},
			contains: []string{"element 3", "Circle", "Point"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				assert.Contains(t, msg, want)
			}
		})
	}
}

func TestConversionError_Unwrap(t *testing.T) {
	err := conversionErr(ErrTypeMismatch, "Point")

	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.NotErrorIs(t, err, ErrNotAnObject)
}

func TestElementErr_KeepsSentinel(t *testing.T) {
	inner := conversionErr(ErrMissingHandle, "Point")

	wrapped := elementErr(inner, 5)
	require.ErrorIs(t, wrapped, ErrMissingHandle)

	var conv *ConversionError
	require.True(t, errors.As(wrapped, &conv))
	assert.Equal(t, 5, conv.Index)
	assert.Equal(t, "Point", conv.Expected)

	// The original error is untouched.
	assert.Equal(t, -1, inner.Index)
}

func TestElementErr_PlainError(t *testing.T) {
	wrapped := elementErr(errors.New("boom"), 2)

	var conv *ConversionError
	require.True(t, errors.As(wrapped, &conv))
	assert.Equal(t, 2, conv.Index)
	assert.Contains(t, wrapped.Error(), "element 2")
}
