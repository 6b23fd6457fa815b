package boundary

// Well-known boundary-side property names, fixed by convention. Generated
// counterparts expose the identity tag through TagMethod and the embedded
// native handle through HandleProp.
const (
	// TagMethod is the zero-argument accessor method used for identity-tag
	// retrieval.
	TagMethod = "__getClassname"

	// HandleProp is the numeric property carrying the embedded native
	// handle.
	HandleProp = "ptr"
)

// Value is an opaque, dynamically-typed boundary handle. It has no static
// type; it may or may not be object-like, and may or may not carry the
// identity-tag accessor. Only the host Runtime can look inside it.
type Value = any

// Runtime is the host scripting environment's reflection facility together
// with its native-instance facilities. Implementations are supplied by the
// host integration (or boundarytest for tests) and are assumed correctly
// behaved; the protocol treats them as given.
//
// All methods are synchronous and non-blocking.
type Runtime interface {
	// IsObject reports whether v is object-like.
	IsObject(v Value) bool

	// Get returns the named property of obj. The second result is false
	// when the property is absent.
	Get(obj Value, name string) (Value, bool)

	// IsFunction reports whether v is invocable.
	IsFunction(v Value) bool

	// Invoke calls fn with recv as the receiver and no arguments.
	Invoke(fn, recv Value) (Value, error)

	// AsString extracts a string from v; false if v is not a string.
	AsString(v Value) (string, bool)

	// AsNumber extracts a number from v; false if v is not numeric.
	AsNumber(v Value) (float64, bool)

	// IsArray reports whether v is an indexed collection.
	IsArray(v Value) bool

	// Len returns the reported length of an array-like value.
	Len(v Value) int

	// Index returns the element of v at index i.
	Index(v Value, i int) Value

	// NewArray builds a boundary array from elems, preserving order.
	NewArray(elems []Value) Value

	// Wrap creates the boundary counterpart of a native instance: an
	// object exposing TagMethod (returning tag) and HandleProp (a handle
	// that Resolve maps back to native). The counterpart aliases the
	// instance; it never owns it.
	Wrap(tag string, native any) Value

	// Resolve recovers the native instance bound to a numeric handle.
	// The second result is false when the handle is unknown or released.
	Resolve(handle uint64) (any, bool)
}

// Cloner is implemented by every exported type. Downcast recovers a live
// reference into the host-owned instance and must not hand that reference
// out; Clone produces the owned result.
//
// Value types without reference fields can return the receiver:
//
//	func (p Point) Clone() Point { return p }
type Cloner[T any] interface {
	Clone() T
}
