package boundary

// ExportSlice converts an owned slice of native values into a boundary
// array, consuming its input. Elements keep their original order.
//
// The export direction is effectively infallible; the error return exists
// for uniformity with ImportSlice and only surfaces what the host's own
// array construction could raise.
func ExportSlice[T Cloner[T]](rt Runtime, vals []T, tag string) (Value, error) {
	elems := make([]Value, len(vals))
	for i := range vals {
		elems[i] = Export(rt, vals[i], tag)
	}

	return rt.NewArray(elems), nil
}

// ExportSliceRef converts a borrowed slice of native values into a
// boundary array without consuming it; each element is cloned first.
func ExportSliceRef[T Cloner[T]](rt Runtime, vals []T, tag string) (Value, error) {
	elems := make([]Value, len(vals))
	for i := range vals {
		elems[i] = Export(rt, vals[i].Clone(), tag)
	}

	return rt.NewArray(elems), nil
}

// ImportSlice converts a boundary value expected to be an indexed
// collection into an owned slice of T, order preserved.
//
// Each element goes through the single-value Downcast. The first element
// failure aborts the whole operation and propagates that element's
// specific error, wrapped with its index; no partial result is returned.
func ImportSlice[T Cloner[T]](rt Runtime, v Value, tag string) ([]T, error) {
	if !rt.IsArray(v) {
		return nil, conversionErr(ErrNotAnArray, tag)
	}

	length := rt.Len(v)

	out := make([]T, 0, length)
	for i := 0; i < length; i++ {
		elem, err := Downcast[T](rt, rt.Index(v, i), tag)
		if err != nil {
			return nil, elementErr(err, i)
		}

		out = append(out, elem)
	}

	return out, nil
}
