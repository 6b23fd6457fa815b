package boundary

// Export moves an owned native value across the boundary and returns its
// counterpart. The counterpart carries v's identity tag and a handle the
// host can resolve back to the instance. Native→boundary conversion has no
// failure mode of its own.
func Export[T Cloner[T]](rt Runtime, v T, tag string) Value {
	return rt.Wrap(tag, &v)
}

// Downcast recovers an owned T from an opaque boundary value.
//
// The value is a valid representation of T only if it is object-like,
// exposes a callable identity-tag accessor, the accessor yields exactly
// tag, and its embedded handle resolves to a live *T. Any clause violation
// is a boundary-conversion failure, reported and terminal; the boundary
// value is presumed malformed or mistyped, never transiently unavailable.
//
// On success the recovered reference is cloned so the result outlives the
// host-owned instance. The boundary value itself is not consumed.
func Downcast[T Cloner[T]](rt Runtime, v Value, tag string) (T, error) {
	var zero T

	if !rt.IsObject(v) {
		return zero, conversionErr(ErrNotAnObject, tag)
	}

	accessor, ok := rt.Get(v, TagMethod)
	if !ok || !rt.IsFunction(accessor) {
		return zero, conversionErr(ErrMissingAccessor, tag)
	}

	res, err := rt.Invoke(accessor, v)
	if err != nil {
		convErr := conversionErr(ErrIdentity, tag)
		convErr.Detail = err.Error()

		return zero, convErr
	}

	actual, ok := rt.AsString(res)
	if !ok {
		return zero, conversionErr(ErrIdentity, tag)
	}

	if actual != tag {
		convErr := conversionErr(ErrTypeMismatch, tag)
		convErr.Actual = actual

		return zero, convErr
	}

	prop, ok := rt.Get(v, HandleProp)
	if !ok {
		return zero, conversionErr(ErrMissingHandle, tag)
	}

	num, ok := rt.AsNumber(prop)
	if !ok {
		return zero, conversionErr(ErrInvalidHandle, tag)
	}

	native, ok := rt.Resolve(uint64(num))
	if !ok {
		return zero, conversionErr(ErrInvalidHandle, tag)
	}

	ref, ok := native.(*T)
	if !ok {
		return zero, conversionErr(ErrInvalidHandle, tag)
	}

	return (*ref).Clone(), nil
}
