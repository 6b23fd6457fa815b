// Package analyze loads the Go packages named by the export manifest and
// resolves each export entry against the real type information.
//
// Key capabilities:
//   - Package loading via go/packages (AST + go/types)
//   - Export contract checks: the type exists, is an exported struct, and
//     carries the Clone value method required by clone-on-downcast
//   - ExportInfo records carrying everything the gen stage needs
package analyze
