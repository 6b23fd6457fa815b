package manifest

import "strings"

// File represents the root of a YAML export manifest.
type File struct {
	// Version of the manifest schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Packages lists Go package patterns to load (e.g., "./examples/shapes").
	// Accepts a single string or a list in YAML.
	Packages StringOrArray `yaml:"packages"`

	// Exports lists the types crossing the boundary.
	Exports []Export `yaml:"exports"`
}

// Export declares one exported type and its boundary configuration.
type Export struct {
	// Type identifies the exported type, qualified by package alias or
	// full package path (e.g., "shapes.Point",
	// "bridge-generator/examples/shapes.Point").
	Type string `yaml:"type"`

	// ArrayType is the declared array counterpart type name, used verbatim
	// as the result type of bulk export and the expected source of bulk
	// import. Defaults to "<Name>Array".
	ArrayType string `yaml:"array_type,omitempty"`

	// Tag overrides the identity tag. Defaults to the type's declared
	// name. The boundary comparison is exact and case-sensitive.
	Tag string `yaml:"tag,omitempty"`

	// Plural overrides the stem used for the bulk function names.
	// Defaults to the type name + "s".
	Plural string `yaml:"plural,omitempty"`
}

// Name returns the bare type name of the export (the part after the last
// dot, or the whole string when unqualified).
func (e Export) Name() string {
	if i := strings.LastIndex(e.Type, "."); i >= 0 {
		return e.Type[i+1:]
	}

	return e.Type
}

// PkgHint returns the package qualifier of the export: a full package path
// or a bare package alias, empty when the type is unqualified.
func (e Export) PkgHint() string {
	if i := strings.LastIndex(e.Type, "."); i >= 0 {
		return e.Type[:i]
	}

	return ""
}
