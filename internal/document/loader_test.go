package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const canonical = `{
  "parent": "Rig",
  "target": "Mannequin",
  "constraints": [
    {
      "parent": "Hand",
      "target": "Hand_R",
      "type": "COPY_LOCATION"
    }
  ]
}
`

func sampleDoc() *Document {
	return &Document{
		Parent: "Rig",
		Target: "Mannequin",
		Constraints: []Constraint{
			{Parent: "Hand", Target: "Hand_R", Type: "COPY_LOCATION"},
		},
	}
}

func TestMarshalCanonical(t *testing.T) {
	data, err := Marshal(sampleDoc())
	require.NoError(t, err)
	assert.Equal(t, canonical, string(data))
}

func TestMarshalEmptyConstraints(t *testing.T) {
	data, err := Marshal(&Document{Parent: "A", Target: "B"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"constraints": []`)
}

func TestMarshalKeepsMarkup(t *testing.T) {
	doc := &Document{Parent: "<Rig>", Target: "A&B"}

	data, err := Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"parent": "<Rig>"`)
	assert.Contains(t, string(data), `"target": "A&B"`)
}

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(canonical))
	require.NoError(t, err)
	assert.Equal(t, sampleDoc(), doc)
}

func TestParseToleratesWhitespaceAndUnknownFields(t *testing.T) {
	input := `{"version":2,"parent":"Rig","target":"Mannequin","constraints":[{"parent":"Hand","target":"Hand_R","type":"COPY_LOCATION","influence":0.5}],"extra":{"a":1}}`

	doc, err := Parse([]byte(input))
	require.NoError(t, err)
	assert.Equal(t, sampleDoc(), doc)
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `{"parent": `},
		{"array root", `[]`},
		{"missing parent", `{"target":"B","constraints":[]}`},
		{"missing target", `{"parent":"A","constraints":[]}`},
		{"missing constraints", `{"parent":"A","target":"B"}`},
		{"null constraints", `{"parent":"A","target":"B","constraints":null}`},
		{"constraint missing parent", `{"parent":"A","target":"B","constraints":[{"target":"x","type":"COPY_SCALE"}]}`},
		{"constraint missing target", `{"parent":"A","target":"B","constraints":[{"parent":"x","type":"COPY_SCALE"}]}`},
		{"constraint missing type", `{"parent":"A","target":"B","constraints":[{"parent":"x","target":"y"}]}`},
		{"unknown type", `{"parent":"A","target":"B","constraints":[{"parent":"x","target":"y","type":"COPY_ALL"}]}`},
		{"wrong field type", `{"parent":1,"target":"B","constraints":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.input))
			require.ErrorIs(t, err, ErrMalformedDocument)
			assert.Nil(t, doc)
		})
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	data, err := MarshalFormat(sampleDoc(), FormatYAML)
	require.NoError(t, err)
	assert.Contains(t, string(data), "type: COPY_LOCATION")

	doc, err := ParseFormat(data, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, sampleDoc(), doc)

	_, err = ParseFormat([]byte("parent: A\ntarget: B\n"), FormatYAML)
	assert.ErrorIs(t, err, ErrMalformedDocument)
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatJSON, FormatFor("Constraints.json"))
	assert.Equal(t, FormatJSON, FormatFor("mapping"))
	assert.Equal(t, FormatYAML, FormatFor("mapping.yaml"))
	assert.Equal(t, FormatYAML, FormatFor("mapping.YML"))
}

func TestWriteAndLoadFile(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"Constraints.json", "Constraints.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)

			require.NoError(t, WriteFile(sampleDoc(), path))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, os.FileMode(FilePerm), info.Mode().Perm())

			doc, err := LoadFile(path)
			require.NoError(t, err)
			assert.Equal(t, sampleDoc(), doc)
		})
	}

	// No temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestWriteFileReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Constraints.json")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	require.NoError(t, WriteFile(sampleDoc(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, canonical, string(data))
}

func TestWriteFileFailureLeavesTargetUntouched(t *testing.T) {
	dir := t.TempDir()

	// Renaming a file over a non-empty directory fails
	target := filepath.Join(dir, "Constraints.json")
	require.NoError(t, os.Mkdir(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep"), []byte("x"), 0o600))

	err := WriteFile(sampleDoc(), target)
	require.ErrorIs(t, err, ErrIO)

	data, err := os.ReadFile(filepath.Join(target, "keep"))
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileMissingDirectory(t *testing.T) {
	err := WriteFile(sampleDoc(), filepath.Join(t.TempDir(), "missing", "Constraints.json"))
	assert.ErrorIs(t, err, ErrIO)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, ErrIO)
}
