package analyze

import (
	"fmt"
	"go/types"
	"path/filepath"

	"golang.org/x/tools/go/packages"

	"bridge-generator/internal/common"
	"bridge-generator/internal/diagnostic"
	"bridge-generator/internal/manifest"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and resolves manifest exports against them.
type Analyzer struct {
	pkgs []*packages.Package
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// LoadPackages loads the specified packages. Patterns are standard Go
// package patterns (e.g., "./examples/shapes", "bridge-generator/examples/shapes").
func (a *Analyzer) LoadPackages(patterns ...string) error {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("package errors: %v", errs)
	}

	a.pkgs = pkgs

	return nil
}

// Resolve maps every manifest export onto the loaded type information,
// reporting contract violations as diagnostics. Entries that fail a check
// are omitted from the result.
func (a *Analyzer) Resolve(mf *manifest.File) ([]ExportInfo, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}

	var infos []ExportInfo

	for _, e := range mf.Exports {
		info, ok := a.resolveExport(e, diags)
		if ok {
			infos = append(infos, info)
		}
	}

	return infos, diags
}

// resolveExport resolves one manifest entry.
func (a *Analyzer) resolveExport(e manifest.Export, diags *diagnostic.Diagnostics) (ExportInfo, bool) {
	pkg := a.findPackage(e.PkgHint())
	if pkg == nil {
		diags.AddError("package_not_found",
			fmt.Sprintf("no loaded package matches %q", e.PkgHint()), e.Type, "type")

		return ExportInfo{}, false
	}

	obj := pkg.Types.Scope().Lookup(e.Name())
	typeName, ok := obj.(*types.TypeName)
	if !ok {
		diags.AddError("export_type_not_found",
			fmt.Sprintf("type %q not found in package %s", e.Name(), pkg.PkgPath), e.Type, "type")

		return ExportInfo{}, false
	}

	named, ok := typeName.Type().(*types.Named)
	if !ok {
		diags.AddError("not_a_named_type",
			fmt.Sprintf("%q is not a defined type", e.Name()), e.Type, "type")

		return ExportInfo{}, false
	}

	if _, ok := named.Underlying().(*types.Struct); !ok {
		diags.AddError("not_a_struct",
			fmt.Sprintf("exported type %q must be a struct", e.Name()), e.Type, "type")

		return ExportInfo{}, false
	}

	if !hasCloneMethod(named) {
		diags.AddError("missing_clone",
			fmt.Sprintf("exported type %q must have a value method Clone() %s; "+
				"the downcast clones the recovered reference into an owned result",
				e.Name(), e.Name()), e.Type, "type")

		return ExportInfo{}, false
	}

	return ExportInfo{
		Name:      e.Name(),
		PkgPath:   pkg.PkgPath,
		PkgName:   pkg.Name,
		Dir:       packageDir(pkg),
		Tag:       e.Tag,
		ArrayType: e.ArrayType,
		Plural:    e.Plural,
	}, true
}

// findPackage matches a manifest package qualifier against the loaded
// packages: a full import path first, then a bare package name.
func (a *Analyzer) findPackage(hint string) *packages.Package {
	if hint == "" {
		if len(a.pkgs) == 1 {
			return a.pkgs[0]
		}

		return nil
	}

	for _, pkg := range a.pkgs {
		if pkg.PkgPath == hint {
			return pkg
		}
	}

	for _, pkg := range a.pkgs {
		if pkg.Name == hint {
			return pkg
		}
	}

	return nil
}

// hasCloneMethod reports whether T carries Clone() T in its value method
// set. A pointer-receiver Clone does not qualify: the downcast's generic
// constraint instantiates over the value type.
func hasCloneMethod(named *types.Named) bool {
	ms := types.NewMethodSet(named)

	sel := ms.Lookup(nil, "Clone")
	if sel == nil {
		return false
	}

	sig, ok := sel.Obj().Type().(*types.Signature)
	if !ok {
		return false
	}

	if sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return false
	}

	return types.Identical(sig.Results().At(0).Type(), named)
}

// packageDir returns the directory containing the package's Go files.
func packageDir(pkg *packages.Package) string {
	first, ok := common.First(pkg.GoFiles)
	if !ok {
		return ""
	}

	return filepath.Dir(first)
}
