package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
	"text/template"

	"bridge-generator/internal/analyze"
	"bridge-generator/internal/common"
)

// Config holds configuration for code generation.
type Config struct {
	// RuntimePkg is the import path of the runtime protocol package the
	// generated code calls into.
	RuntimePkg string
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		RuntimePkg: "bridge-generator/boundary",
	}
}

// Generator generates boundary boilerplate from resolved exports.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the directory the file belongs in (the exported type's own
	// package directory).
	Dir string
	// Filename is the name of the file (e.g., "point_bridge.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate produces one file per export, in manifest order.
func (g *Generator) Generate(exports []analyze.ExportInfo) ([]GeneratedFile, error) {
	var files []GeneratedFile

	for i := range exports {
		file, err := g.generateExport(&exports[i])
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", exports[i].ID(), err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// templateData holds all data needed for the bridge template.
type templateData struct {
	PackageName  string
	TypeName     string
	Tag          string
	ArrayType    string
	Plural       string
	RuntimePkg   string
	RuntimeAlias string
}

// generateExport generates the bridge file for a single export.
func (g *Generator) generateExport(info *analyze.ExportInfo) (*GeneratedFile, error) {
	data := &templateData{
		PackageName:  info.PkgName,
		TypeName:     info.Name,
		Tag:          info.Tag,
		ArrayType:    info.ArrayType,
		Plural:       info.Plural,
		RuntimePkg:   g.config.RuntimePkg,
		RuntimeAlias: common.PkgAlias(g.config.RuntimePkg),
	}

	filename := g.filename(info)

	var buf bytes.Buffer
	if err := bridgeTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if info.Dir != "" {
			_ = writeDebugUnformatted(info.Dir, filename, buf.Bytes())
		}
		// Return unformatted code for debugging
		return &GeneratedFile{
			Dir:      info.Dir,
			Filename: filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Dir:      info.Dir,
		Filename: filename,
		Content:  formatted,
	}, nil
}

func (g *Generator) filename(info *analyze.ExportInfo) string {
	return strings.ToLower(info.Name) + "_bridge.go"
}

// Template for the per-type bridge file.

var bridgeTemplate = template.Must(template.New("bridge").Parse(`// Code generated by bridge-generator. DO NOT EDIT.

package {{.PackageName}}

import (
	"{{.RuntimePkg}}"
)

// {{.ArrayType}} is the declared boundary counterpart of []{{.TypeName}}.
type {{.ArrayType}} = {{.RuntimeAlias}}.Value

// TypeTag returns the registered boundary identity tag of {{.TypeName}}.
func ({{.TypeName}}) TypeTag() string {
	return "{{.Tag}}"
}

// {{.TypeName}}FromValue recovers an owned {{.TypeName}} from an opaque boundary value.
func {{.TypeName}}FromValue(rt {{.RuntimeAlias}}.Runtime, v {{.RuntimeAlias}}.Value) ({{.TypeName}}, error) {
	return {{.RuntimeAlias}}.Downcast[{{.TypeName}}](rt, v, "{{.Tag}}")
}

// {{.TypeName}}ToValue moves v across the boundary and returns its counterpart.
func {{.TypeName}}ToValue(rt {{.RuntimeAlias}}.Runtime, v {{.TypeName}}) {{.RuntimeAlias}}.Value {
	return {{.RuntimeAlias}}.Export(rt, v, "{{.Tag}}")
}

// {{.Plural}}ToArray converts an owned slice into a {{.ArrayType}}, consuming it.
func {{.Plural}}ToArray(rt {{.RuntimeAlias}}.Runtime, vals []{{.TypeName}}) ({{.ArrayType}}, error) {
	return {{.RuntimeAlias}}.ExportSlice(rt, vals, "{{.Tag}}")
}

// {{.Plural}}AsArray converts a borrowed slice into a {{.ArrayType}}, cloning each element.
func {{.Plural}}AsArray(rt {{.RuntimeAlias}}.Runtime, vals []{{.TypeName}}) ({{.ArrayType}}, error) {
	return {{.RuntimeAlias}}.ExportSliceRef(rt, vals, "{{.Tag}}")
}

// {{.Plural}}FromArray converts a boundary array back into an owned slice.
func {{.Plural}}FromArray(rt {{.RuntimeAlias}}.Runtime, v {{.RuntimeAlias}}.Value) ([]{{.TypeName}}, error) {
	return {{.RuntimeAlias}}.ImportSlice[{{.TypeName}}](rt, v, "{{.Tag}}")
}
`))
