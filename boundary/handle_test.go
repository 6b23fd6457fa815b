package boundary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandles_BindResolve(t *testing.T) {
	h := NewHandles()

	type thing struct{ n int }

	a := &thing{n: 1}
	b := &thing{n: 2}

	ha := h.Bind(a)
	hb := h.Bind(b)

	require.NotEqual(t, ha, hb)
	assert.Equal(t, 2, h.Len())

	got, ok := h.Resolve(ha)
	require.True(t, ok)
	assert.Same(t, a, got)

	got, ok = h.Resolve(hb)
	require.True(t, ok)
	assert.Same(t, b, got)
}

func TestHandles_ZeroNeverIssued(t *testing.T) {
	h := NewHandles()

	first := h.Bind("x")
	assert.NotZero(t, first)

	_, ok := h.Resolve(0)
	assert.False(t, ok)
}

func TestHandles_Release(t *testing.T) {
	h := NewHandles()

	id := h.Bind("x")
	h.Release(id)

	_, ok := h.Resolve(id)
	assert.False(t, ok)
	assert.Zero(t, h.Len())

	// Releasing again is a no-op.
	h.Release(id)

	// Handles are not reused after release.
	next := h.Bind("y")
	assert.NotEqual(t, id, next)
}

func TestHandles_ResolveUnknown(t *testing.T) {
	h := NewHandles()

	_, ok := h.Resolve(12345)
	assert.False(t, ok)
}
