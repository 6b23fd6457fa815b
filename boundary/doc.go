// Package boundary implements the runtime conversion protocol that
// bridge-generator's generated code is built on.
//
// Values crossing from the host scripting environment into Go arrive as
// opaque handles with no static type. The protocol identifies them by an
// embedded identity tag and recovers the native instance by a numeric
// handle:
//   - Identity tag accessor: every exported type answers its registered
//     type name, both natively (TypeTag) and through the well-known
//     boundary method.
//   - Downcast: verify object-ness, query the tag through the host's
//     reflection facility, compare against the expected name, recover the
//     native instance by its embedded handle, and clone it into an owned
//     value.
//   - Bulk marshalling: slice export/import composed from the single-value
//     conversions, order preserving, failing whole on the first bad element.
//
// The host environment itself is a collaborator behind the Runtime
// interface; package boundarytest ships an in-memory implementation for
// tests.
package boundary
