// Package gen emits the per-type boundary boilerplate from resolved
// export records.
//
// Generation approach uses text/template + go/format for readable,
// deterministic Go code. Each exported type gets one file in its own
// package directory carrying:
//   - The declared array counterpart type
//   - The identity-tag accessor method
//   - Single-value downcast and export functions
//   - Bulk export (consuming and borrowing) and bulk import functions
package gen
