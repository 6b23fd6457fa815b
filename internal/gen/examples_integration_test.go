package gen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bridge-generator/internal/analyze"
	"bridge-generator/internal/manifest"
)

// The shapes example ships with its generated bridge files checked in;
// regenerating from its manifest must reproduce them byte for byte.
func TestGenerate_ShapesExampleMatchesCheckedIn(t *testing.T) {
	mf, err := manifest.LoadFile("../../examples/shapes/bridge.yaml")
	require.NoError(t, err)
	require.True(t, manifest.Validate(mf).IsValid())

	a := analyze.NewAnalyzer()
	// The manifest's relative pattern is anchored at the repo root; load
	// by import path here since tests run in this package's directory.
	require.NoError(t, a.LoadPackages("bridge-generator/examples/shapes"))

	exports, diags := a.Resolve(mf)
	require.True(t, diags.IsValid(), "unexpected diagnostics: %v", diags.Errors)
	require.Len(t, exports, 3)

	g := NewGenerator(DefaultConfig())
	files, err := g.Generate(exports)
	require.NoError(t, err)
	require.Len(t, files, 3)

	for _, file := range files {
		assert.True(t, strings.HasSuffix(filepath.ToSlash(file.Dir), "examples/shapes"),
			"unexpected output dir %s", file.Dir)

		checkedIn, err := os.ReadFile(filepath.Join("../../examples/shapes", file.Filename))
		require.NoError(t, err)
		assert.Equal(t, string(checkedIn), string(file.Content),
			"checked-in %s is stale; re-run bridge-generator gen", file.Filename)
	}
}
