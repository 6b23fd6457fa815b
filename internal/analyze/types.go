package analyze

// ExportInfo is a fully resolved export entry: one exported type together
// with the boundary configuration the generator needs.
type ExportInfo struct {
	// Name is the type's declared name (e.g., "Point").
	Name string
	// PkgPath is the import path of the declaring package.
	PkgPath string
	// PkgName is the declaring package's name.
	PkgName string
	// Dir is the directory holding the declaring package's sources; the
	// generated file lands there, since the identity accessor is a method
	// and must live with the type.
	Dir string
	// Tag is the registered identity tag.
	Tag string
	// ArrayType is the declared array counterpart type name.
	ArrayType string
	// Plural is the stem used for the bulk function names.
	Plural string
}

// ID returns the qualified type identifier (e.g., "shapes.Point").
func (e ExportInfo) ID() string {
	if e.PkgPath == "" {
		return e.Name
	}

	return e.PkgPath + "." + e.Name
}
