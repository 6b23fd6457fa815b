package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseValid(t *testing.T, yaml string) *File {
	t.Helper()

	mf, err := Parse([]byte(yaml))
	require.NoError(t, err)

	return mf
}

func TestValidate_OK(t *testing.T) {
	mf := parseValid(t, `
packages: ./examples/shapes
exports:
  - type: shapes.Point
  - type: shapes.Circle
`)

	res := Validate(mf)
	assert.True(t, res.IsValid(), "unexpected diagnostics: %v", res.Errors)
}

func TestValidate_Nil(t *testing.T) {
	res := Validate(nil)
	require.True(t, res.HasErrors())
	assert.Equal(t, "manifest_is_nil", res.Errors[0].Code)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		code string
	}{
		{
			name: "unsupported version",
			yaml: "version: \"9\"\npackages: ./x\nexports:\n  - type: shapes.Point\n",
			code: "unsupported_version",
		},
		{
			name: "no packages",
			yaml: "exports:\n  - type: shapes.Point\n",
			code: "no_packages",
		},
		{
			name: "missing type",
			yaml: "packages: ./x\nexports:\n  - array_type: PointArray\n",
			code: "missing_type",
		},
		{
			name: "unexported type name",
			yaml: "packages: ./x\nexports:\n  - type: shapes.point\n",
			code: "bad_type_name",
		},
		{
			name: "bad array type",
			yaml: "packages: ./x\nexports:\n  - type: shapes.Point\n    array_type: \"[]Point\"\n",
			code: "bad_array_type",
		},
		{
			name: "bad plural",
			yaml: "packages: ./x\nexports:\n  - type: shapes.Point\n    plural: \"points!\"\n",
			code: "bad_plural",
		},
		{
			name: "duplicate export",
			yaml: "packages: ./x\nexports:\n  - type: shapes.Point\n  - type: shapes.Point\n    tag: Other\n    array_type: OtherArray\n    plural: Others\n",
			code: "duplicate_export",
		},
		{
			name: "duplicate tag",
			yaml: "packages: ./x\nexports:\n  - type: shapes.Point\n  - type: other.Point\n",
			code: "duplicate_tag",
		},
		{
			name: "tag collides with array type",
			yaml: "packages: ./x\nexports:\n  - type: shapes.Point\n    tag: PointArray\n",
			code: "tag_array_collision",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(parseValid(t, tt.yaml))
			require.True(t, res.HasErrors())

			var codes []string
			for _, d := range res.Errors {
				codes = append(codes, d.Code)
			}

			assert.Contains(t, codes, tt.code)
		})
	}
}

func TestValidate_NoExportsIsWarning(t *testing.T) {
	res := Validate(parseValid(t, "packages: ./x\n"))

	assert.True(t, res.IsValid())
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "no_exports", res.Warnings[0].Code)
}
