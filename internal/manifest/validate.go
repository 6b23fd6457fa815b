package manifest

import (
	"fmt"

	"bridge-generator/internal/common"
	"bridge-generator/internal/diagnostic"
)

// Validate performs structural validation of the manifest. Contract checks
// against the actual Go types (existence, struct-ness, Clone method) happen
// later, in the analyze stage.
func Validate(mf *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if mf == nil {
		res.AddError("manifest_is_nil", "manifest is nil", "", "")
		return res
	}

	if mf.Version != "1" {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported manifest version %q", mf.Version), "", "version")
	}

	if common.IsEmpty(mf.Packages) {
		res.AddError("no_packages", "manifest declares no packages to load", "", "packages")
	}

	if common.IsEmpty(mf.Exports) {
		res.AddWarning("no_exports", "manifest declares no exports; nothing to generate", "", "exports")
	}

	seenTypes := map[string]struct{}{}
	seenTags := map[string]struct{}{}
	seenArrays := map[string]struct{}{}

	for i := range mf.Exports {
		e := &mf.Exports[i]
		validateExport(res, e)

		if _, ok := seenTypes[e.Type]; ok {
			res.AddError("duplicate_export",
				fmt.Sprintf("type %q exported more than once", e.Type), e.Type, "type")
		}

		seenTypes[e.Type] = struct{}{}

		if e.Tag != "" {
			if _, ok := seenTags[e.Tag]; ok {
				res.AddError("duplicate_tag",
					fmt.Sprintf("identity tag %q used by more than one export", e.Tag), e.Type, "tag")
			}

			seenTags[e.Tag] = struct{}{}
		}

		if e.ArrayType != "" {
			if _, ok := seenArrays[e.ArrayType]; ok {
				res.AddError("duplicate_array_type",
					fmt.Sprintf("array type %q used by more than one export", e.ArrayType), e.Type, "array_type")
			}

			seenArrays[e.ArrayType] = struct{}{}
		}
	}

	return res
}

// validateExport checks a single export entry.
func validateExport(res *diagnostic.Diagnostics, e *Export) {
	if e.Type == "" {
		res.AddError("missing_type", "export entry has no type", "", "type")
		return
	}

	if !common.IsExportedIdentifier(e.Name()) {
		res.AddError("bad_type_name",
			fmt.Sprintf("type name %q is not an exported Go identifier", e.Name()), e.Type, "type")
	}

	if !common.IsExportedIdentifier(e.ArrayType) {
		res.AddError("bad_array_type",
			fmt.Sprintf("array type %q is not an exported Go identifier", e.ArrayType), e.Type, "array_type")
	}

	if !common.IsExportedIdentifier(e.Plural) {
		res.AddError("bad_plural",
			fmt.Sprintf("plural stem %q is not an exported Go identifier", e.Plural), e.Type, "plural")
	}

	if e.Tag == "" {
		res.AddError("missing_tag", "export entry has an empty identity tag", e.Type, "tag")
	}

	// The accessor answers the tag through a plain string comparison, so a
	// tag equal to the array type would make generated names collide.
	if e.Tag == e.ArrayType {
		res.AddError("tag_array_collision",
			fmt.Sprintf("identity tag %q collides with the array type name", e.Tag), e.Type, "tag")
	}
}
