// Package main provides the CLI entrypoint for bridge-generator.
//
// bridge-generator is a codegen tool that patches interoperability gaps
// between native Go types and a host scripting environment:
//   - Reads a YAML manifest naming the exported types
//   - Analyzes the declaring packages (AST + go/types)
//   - Validates the export contract (struct-ness, Clone method)
//   - Generates the boundary boilerplate (identity tag, downcast, bulk
//     marshalling) into the types' own packages
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"bridge-generator/internal/analyze"
	"bridge-generator/internal/diagnostic"
	"bridge-generator/internal/gen"
	"bridge-generator/internal/manifest"
)

const usage = `bridge-generator - boundary boilerplate generator

Usage:
  bridge-generator check [flags]   validate the manifest and export contract
  bridge-generator gen [flags]     validate and generate bridge files

Flags:
  -f, --manifest string   path to the export manifest (default "bridge.yaml")
      --dry-run           report what would be written without writing (gen)
  -v, --verbose           print warnings and infos
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// options holds the parsed command line.
type options struct {
	manifestPath string
	dryRun       bool
	verbose      bool
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	command := args[0]

	flags := pflag.NewFlagSet(command, pflag.ContinueOnError)
	flags.SetOutput(stderr)

	var opts options
	flags.StringVarP(&opts.manifestPath, "manifest", "f", "bridge.yaml", "path to the export manifest")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "report what would be written without writing")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "print warnings and infos")

	if err := flags.Parse(args[1:]); err != nil {
		return 2
	}

	switch command {
	case "check":
		return runCheck(&opts, stdout, stderr)
	case "gen":
		return runGen(&opts, stdout, stderr)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n%s", command, usage)
		return 2
	}
}

// resolveExports runs the manifest → analyze half of the pipeline shared
// by check and gen.
func resolveExports(opts *options, stdout, stderr io.Writer) ([]analyze.ExportInfo, bool) {
	mf, err := manifest.LoadFile(opts.manifestPath)
	if err != nil {
		fmt.Fprintf(stderr, "bridge-generator: %v\n", err)
		return nil, false
	}

	diags := manifest.Validate(mf)
	report(diags, opts, stdout, stderr)

	if diags.HasErrors() {
		return nil, false
	}

	a := analyze.NewAnalyzer()
	if err := a.LoadPackages(anchorPatterns(opts.manifestPath, mf.Packages)...); err != nil {
		fmt.Fprintf(stderr, "bridge-generator: %v\n", err)
		return nil, false
	}

	exports, resolveDiags := a.Resolve(mf)
	report(resolveDiags, opts, stdout, stderr)

	if resolveDiags.HasErrors() {
		return nil, false
	}

	return exports, true
}

func runCheck(opts *options, stdout, stderr io.Writer) int {
	exports, ok := resolveExports(opts, stdout, stderr)
	if !ok {
		return 1
	}

	fmt.Fprintf(stdout, "manifest ok: %d export(s)\n", len(exports))

	return 0
}

func runGen(opts *options, stdout, stderr io.Writer) int {
	exports, ok := resolveExports(opts, stdout, stderr)
	if !ok {
		return 1
	}

	g := gen.NewGenerator(gen.DefaultConfig())

	files, err := g.Generate(exports)
	if err != nil {
		fmt.Fprintf(stderr, "bridge-generator: %v\n", err)
		return 1
	}

	if opts.dryRun {
		for _, file := range files {
			fmt.Fprintf(stdout, "would write %s\n", filepath.Join(file.Dir, file.Filename))
		}

		return 0
	}

	if err := gen.WriteFiles(files); err != nil {
		fmt.Fprintf(stderr, "bridge-generator: %v\n", err)
		return 1
	}

	for _, file := range files {
		fmt.Fprintf(stdout, "wrote %s\n", filepath.Join(file.Dir, file.Filename))
	}

	return 0
}

// anchorPatterns resolves the manifest's relative package patterns against
// the manifest's own directory, so generation works from anywhere.
func anchorPatterns(manifestPath string, patterns []string) []string {
	base := filepath.Dir(manifestPath)

	out := make([]string, len(patterns))
	for i, p := range patterns {
		if filepath.IsAbs(p) || !isRelPattern(p) {
			out[i] = p
			continue
		}

		out[i] = "./" + filepath.ToSlash(filepath.Join(base, p))
	}

	return out
}

// isRelPattern reports whether p is a filesystem-relative pattern rather
// than an import path.
func isRelPattern(p string) bool {
	return p == "." || p == ".." ||
		len(p) >= 2 && p[:2] == "./" ||
		len(p) >= 3 && p[:3] == "../"
}

// report prints diagnostics: errors to stderr, warnings and infos to
// stdout when verbose.
func report(diags *diagnostic.Diagnostics, opts *options, stdout, stderr io.Writer) {
	for _, d := range diags.Errors {
		fmt.Fprintf(stderr, "error: %s\n", d.String())
	}

	if !opts.verbose {
		return
	}

	for _, d := range diags.Warnings {
		fmt.Fprintf(stdout, "warning: %s\n", d.String())
	}

	for _, d := range diags.Infos {
		fmt.Fprintf(stdout, "info: %s\n", d.String())
	}
}
