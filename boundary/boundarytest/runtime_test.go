package boundarytest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bridge-generator/boundary"
)

func TestRuntime_ObjectModel(t *testing.T) {
	rt := NewRuntime()

	obj := NewObject(map[string]boundary.Value{"a": "b"})
	assert.True(t, rt.IsObject(obj))
	assert.False(t, rt.IsObject("a string"))
	assert.False(t, rt.IsObject(nil))

	v, ok := rt.Get(obj, "a")
	require.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = rt.Get(obj, "missing")
	assert.False(t, ok)

	_, ok = rt.Get("not an object", "a")
	assert.False(t, ok)
}

func TestRuntime_Functions(t *testing.T) {
	rt := NewRuntime()

	fn := NewFunc(func(recv boundary.Value) (boundary.Value, error) {
		return recv, nil
	})

	assert.True(t, rt.IsFunction(fn))
	assert.False(t, rt.IsFunction("fn"))

	obj := NewObject(nil)
	got, err := rt.Invoke(fn, obj)
	require.NoError(t, err)
	assert.Same(t, obj, got.(*Object))

	_, err = rt.Invoke("not a function", nil)
	assert.Error(t, err)
}

func TestRuntime_Arrays(t *testing.T) {
	rt := NewRuntime()

	arr := rt.NewArray([]boundary.Value{"a", "b", "c"})
	require.True(t, rt.IsArray(arr))
	assert.Equal(t, 3, rt.Len(arr))
	assert.Equal(t, "b", rt.Index(arr, 1))
	assert.Nil(t, rt.Index(arr, 7))
	assert.Nil(t, rt.Index(arr, -1))

	assert.False(t, rt.IsArray("abc"))
	assert.Zero(t, rt.Len("abc"))
}

func TestRuntime_WrapResolve(t *testing.T) {
	rt := NewRuntime()

	type widget struct{ n int }

	native := &widget{n: 7}
	v := rt.Wrap("Widget", native)
	require.True(t, rt.IsObject(v))
	assert.Equal(t, 1, rt.LiveHandles())

	// The counterpart carries a callable identity accessor.
	accessor, ok := rt.Get(v, boundary.TagMethod)
	require.True(t, ok)
	require.True(t, rt.IsFunction(accessor))

	tag, err := rt.Invoke(accessor, v)
	require.NoError(t, err)
	assert.Equal(t, "Widget", tag)

	// And a numeric handle that resolves back to the instance.
	handle, ok := rt.HandleOf(v)
	require.True(t, ok)

	got, ok := rt.Resolve(handle)
	require.True(t, ok)
	assert.Same(t, native, got)
}

func TestRuntime_Release(t *testing.T) {
	rt := NewRuntime()

	v := rt.Wrap("Widget", &struct{}{})
	handle, ok := rt.HandleOf(v)
	require.True(t, ok)

	rt.Release(v)
	assert.Zero(t, rt.LiveHandles())

	_, ok = rt.Resolve(handle)
	assert.False(t, ok)

	// Releasing a value with no handle is a no-op.
	rt.Release(NewObject(nil))
	rt.Release("nothing")
}

func TestRuntime_Scalars(t *testing.T) {
	rt := NewRuntime()

	s, ok := rt.AsString("hello")
	require.True(t, ok)
	assert.Equal(t, "hello", s)

	_, ok = rt.AsString(float64(1))
	assert.False(t, ok)

	n, ok := rt.AsNumber(float64(4.5))
	require.True(t, ok)
	assert.Equal(t, 4.5, n)

	_, ok = rt.AsNumber("4.5")
	assert.False(t, ok)
}
