// Package diagnostic provides structured errors, warnings, and infos for
// the bridge generator pipeline.
//
// Key capabilities:
//   - Manifest validation failures with stable codes
//   - Export contract violations (missing type, missing Clone method)
//   - Merging across pipeline stages with one folded error value
package diagnostic
