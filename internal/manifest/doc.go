// Package manifest defines the YAML export manifest: the human-reviewed
// declaration of which native types cross the scripting boundary and under
// which array counterpart names.
//
// The manifest is the single configuration input of bridge-generator; the
// analyze and gen stages consume it verbatim.
package manifest
