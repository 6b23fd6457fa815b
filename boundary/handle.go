package boundary

// Handles is a numeric-handle registry mapping pointer-sized integers to
// live native instances. Host runtimes build their Wrap/Resolve facilities
// on it: Bind when an instance crosses into the host environment, Resolve
// on the way back, Release when the host counterpart is destroyed.
//
// The registry does no reference counting or lifetime tracking of its own;
// an instance is live exactly between Bind and Release. It is confined to
// the host runtime's thread, matching the protocol's fully synchronous
// model.
type Handles struct {
	next uint64
	live map[uint64]any
}

// NewHandles creates an empty registry. Handle 0 is never issued, so it
// can serve as a sentinel on the boundary side.
func NewHandles() *Handles {
	return &Handles{live: make(map[uint64]any)}
}

// Bind registers a native instance and returns its handle.
func (h *Handles) Bind(native any) uint64 {
	h.next++
	h.live[h.next] = native

	return h.next
}

// Resolve returns the instance bound to handle, or false if the handle was
// never issued or has been released.
func (h *Handles) Resolve(handle uint64) (any, bool) {
	native, ok := h.live[handle]
	return native, ok
}

// Release drops the binding for handle. Releasing an unknown handle is a
// no-op.
func (h *Handles) Release(handle uint64) {
	delete(h.live, handle)
}

// Len returns the number of live bindings.
func (h *Handles) Len() int {
	return len(h.live)
}
