package codegen

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trapmap/internal/geom"
)

func writeInputs(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func TestCompile_JS(t *testing.T) {
	dir := writeInputs(t, map[string]string{
		"b.txt":     "1\n1 2 3 4\n",
		"a.txt":     "2\n0 0 4 0\n\n4 0 4 3\n",
		"empty.txt": "0\n",
		"notes.md":  "ignored",
	})
	out := filepath.Join(t.TempDir(), "js", "input_files.js")

	datasets, err := Compile(dir, "*.txt", out, FormatJS)
	require.NoError(t, err)
	require.Len(t, datasets, 3)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	want := `const INPUT_FILES = {
    "a": [
        new Edge(new Point(0, 0), new Point(4, 0)),
        new Edge(new Point(4, 0), new Point(4, 3)),
    ],
    "b": [
        new Edge(new Point(1, 2), new Point(3, 4)),
    ],
    "empty": [
    ],
};
`
	assert.Equal(t, want, string(b))

	fi, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), fi.Mode().Perm())
}

func TestCompile_JSON(t *testing.T) {
	dir := writeInputs(t, map[string]string{
		"z.txt": "1\n-1 2 3 -4\n",
		"m.txt": "0\n",
	})
	out := filepath.Join(t.TempDir(), "input_files.json")

	_, err := Compile(dir, "*.txt", out, FormatJSON)
	require.NoError(t, err)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"m\": [],\n  \"z\": [[-1,2,3,-4]]\n}\n", string(b))
	assert.JSONEq(t, `{"m": [], "z": [[-1, 2, 3, -4]]}`, string(b))
}

func TestCompile_MalformedWritesNothing(t *testing.T) {
	dir := writeInputs(t, map[string]string{
		"a.txt":   "1\n0 0 1 1\n",
		"bad.txt": "1\n0 0 1\n",
	})
	outDir := t.TempDir()
	out := filepath.Join(outDir, "input_files.js")

	_, err := Compile(dir, "*.txt", out, FormatJS)
	require.Error(t, err)
	assert.True(t, geom.IsKind(err, geom.KindMalformedRecord))
	assert.Contains(t, err.Error(), "bad.txt")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDiscover_SortsByStem(t *testing.T) {
	dir := writeInputs(t, map[string]string{
		"b.txt":   "0\n",
		"a.txt":   "0\n",
		"a-2.txt": "0\n",
		"C.txt":   "0\n",
	})
	files, err := Discover(dir, "*.txt")
	require.NoError(t, err)

	var stems []string
	for _, f := range files {
		stems = append(stems, geom.Stem(f))
	}
	assert.Equal(t, []string{"C", "a", "a-2", "b"}, stems)
}

func TestDiscover_MissingDir(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "InputFiles"), "*.txt")
	require.Error(t, err)
	assert.True(t, geom.IsKind(err, geom.KindNotFound))
}

func TestEncode_QuotesNames(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, []geom.Dataset{{Name: `we"ird`, Segments: nil}}, FormatJS)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"we\"ird": [`)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatJS, f)

	f, err = ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = ParseFormat("yaml")
	assert.Error(t, err)
}
