// Package boundarytest provides an in-memory host runtime implementing
// boundary.Runtime, so the conversion protocol and generated bindings can
// be exercised without a real scripting engine.
//
// The object model is deliberately small: objects are property bags,
// functions are Go closures, arrays are slices. Tests can also build
// malformed values (objects without the identity accessor, non-callable
// accessors, bogus handles) to drive every failure path.
package boundarytest

import (
	"fmt"

	"bridge-generator/boundary"
)

// Object is an object-like boundary value: a bag of named properties.
type Object struct {
	props map[string]boundary.Value
}

// NewObject builds an object from the given properties. Useful for
// crafting malformed boundary values in tests.
func NewObject(props map[string]boundary.Value) *Object {
	if props == nil {
		props = make(map[string]boundary.Value)
	}

	return &Object{props: props}
}

// Set assigns a property on the object.
func (o *Object) Set(name string, v boundary.Value) {
	o.props[name] = v
}

// Delete removes a property from the object.
func (o *Object) Delete(name string) {
	delete(o.props, name)
}

// Func is an invocable boundary value.
type Func struct {
	call func(recv boundary.Value) (boundary.Value, error)
}

// NewFunc wraps a Go closure as a boundary function.
func NewFunc(call func(recv boundary.Value) (boundary.Value, error)) *Func {
	return &Func{call: call}
}

// Array is an indexed boundary collection.
type Array struct {
	elems []boundary.Value
}

// NewArray builds an array value from elems.
func NewArray(elems ...boundary.Value) *Array {
	return &Array{elems: elems}
}

// Runtime is an in-memory boundary.Runtime. The zero value is not usable;
// call NewRuntime.
type Runtime struct {
	handles *boundary.Handles
}

// NewRuntime creates a runtime with an empty handle registry.
func NewRuntime() *Runtime {
	return &Runtime{handles: boundary.NewHandles()}
}

// IsObject reports whether v is an Object.
func (rt *Runtime) IsObject(v boundary.Value) bool {
	_, ok := v.(*Object)
	return ok
}

// Get returns the named property of an Object.
func (rt *Runtime) Get(obj boundary.Value, name string) (boundary.Value, bool) {
	o, ok := obj.(*Object)
	if !ok {
		return nil, false
	}

	v, ok := o.props[name]

	return v, ok
}

// IsFunction reports whether v is a Func.
func (rt *Runtime) IsFunction(v boundary.Value) bool {
	_, ok := v.(*Func)
	return ok
}

// Invoke calls fn with recv as the receiver.
func (rt *Runtime) Invoke(fn, recv boundary.Value) (boundary.Value, error) {
	f, ok := fn.(*Func)
	if !ok {
		return nil, fmt.Errorf("invoke: %v is not a function", fn)
	}

	return f.call(recv)
}

// AsString extracts a Go string from v.
func (rt *Runtime) AsString(v boundary.Value) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// AsNumber extracts a number from v. Numbers are stored as float64,
// mirroring dynamically-typed hosts.
func (rt *Runtime) AsNumber(v boundary.Value) (float64, bool) {
	n, ok := v.(float64)
	return n, ok
}

// IsArray reports whether v is an Array.
func (rt *Runtime) IsArray(v boundary.Value) bool {
	_, ok := v.(*Array)
	return ok
}

// Len returns the length of an Array, 0 for anything else.
func (rt *Runtime) Len(v boundary.Value) int {
	a, ok := v.(*Array)
	if !ok {
		return 0
	}

	return len(a.elems)
}

// Index returns the i-th element of an Array.
func (rt *Runtime) Index(v boundary.Value, i int) boundary.Value {
	a, ok := v.(*Array)
	if !ok || i < 0 || i >= len(a.elems) {
		return nil
	}

	return a.elems[i]
}

// NewArray builds a boundary array preserving element order.
func (rt *Runtime) NewArray(elems []boundary.Value) boundary.Value {
	return &Array{elems: elems}
}

// Wrap creates the boundary counterpart of a native instance: an object
// exposing the identity-tag accessor and the numeric handle, aliasing (but
// not owning) the instance.
func (rt *Runtime) Wrap(tag string, native any) boundary.Value {
	handle := rt.handles.Bind(native)

	return NewObject(map[string]boundary.Value{
		boundary.TagMethod: NewFunc(func(boundary.Value) (boundary.Value, error) {
			return tag, nil
		}),
		boundary.HandleProp: float64(handle),
	})
}

// Resolve recovers the native instance bound to handle.
func (rt *Runtime) Resolve(handle uint64) (any, bool) {
	return rt.handles.Resolve(handle)
}

// HandleOf returns the numeric handle embedded in a wrapped counterpart,
// or false if v carries none.
func (rt *Runtime) HandleOf(v boundary.Value) (uint64, bool) {
	prop, ok := rt.Get(v, boundary.HandleProp)
	if !ok {
		return 0, false
	}

	n, ok := rt.AsNumber(prop)
	if !ok {
		return 0, false
	}

	return uint64(n), true
}

// Release destroys the binding behind a wrapped counterpart, simulating
// the host's memory management collecting it. The counterpart keeps its
// properties; only handle recovery starts failing.
func (rt *Runtime) Release(v boundary.Value) {
	if handle, ok := rt.HandleOf(v); ok {
		rt.handles.Release(handle)
	}
}

// LiveHandles reports the number of live native bindings.
func (rt *Runtime) LiveHandles() int {
	return rt.handles.Len()
}
