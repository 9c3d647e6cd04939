package artifact

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamma-delta/center-brain-archive/internal/archive"
	"github.com/gamma-delta/center-brain-archive/internal/dsp"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/tech"
	"github.com/gamma-delta/center-brain-archive/internal/schema"
)

type failingGenerator struct{ code int }

func (g failingGenerator) Generate(context.Context, *schema.Schema) ([]byte, error) {
	return nil, &schema.ExternalToolError{Command: "json2ts", ExitCode: g.code}
}

func compile(t *testing.T) *archive.Archive {
	t.Helper()
	a, err := archive.Compile(dsp.Builtin{})
	require.NoError(t, err)
	return a
}

func render(t *testing.T) Bundle {
	t.Helper()
	b, err := Render(context.Background(), compile(t), schema.Builtin{})
	require.NoError(t, err)
	return b
}

func paths(dir string) Paths {
	return Paths{
		JSON:         filepath.Join(dir, "site", "src", "dsp.json"),
		Declarations: filepath.Join(dir, "site", "src", "dsp.d.ts"),
	}
}

func TestRenderConformsToSchema(t *testing.T) {
	t.Parallel()

	b := render(t)
	require.NoError(t, Conform(b.JSON))
	assert.Contains(t, string(b.Declarations), "export interface AllDSPInfo {")
	assert.Equal(t, len(b.JSON)+len(b.Declarations), b.Size())

	again := render(t)
	assert.Equal(t, b.JSON, again.JSON)
	assert.Equal(t, b.Declarations, again.Declarations)
}

func TestRenderKeepsToolExitCode(t *testing.T) {
	t.Parallel()

	_, err := Render(context.Background(), compile(t), failingGenerator{code: 4})
	var toolErr *schema.ExternalToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, 4, toolErr.ExitCode)
}

func TestRenderRefusesInconsistentArchive(t *testing.T) {
	t.Parallel()

	a := compile(t)
	entry := a.TechTree.Get(tech.ElectromagneticDrive)
	require.NotEmpty(t, entry.Prereqs)
	entry.Prereqs[0] = tech.ElectromagneticDrive

	_, err := Render(context.Background(), a, schema.Builtin{})
	assert.ErrorIs(t, err, archive.ErrAsymmetricEdge)
}

func TestConformRejectsForeignDocuments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{"empty object", `{}`},
		{"not json", `tech_tree`},
		{"array", `[]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Error(t, Conform([]byte(tt.data)))
		})
	}
}

func TestConformRejectsBrokenCrossLinks(t *testing.T) {
	t.Parallel()

	a := compile(t)
	// Postreqs shares its backing array with the archive.
	a.TechTree.Get(tech.DysonSphereProgram).Postreqs[0] = tech.Thruster
	data, err := a.Encode()
	require.NoError(t, err)

	err = Conform(data)
	assert.ErrorIs(t, err, archive.ErrAsymmetricEdge)
}

func TestConformAppliesSchemaBounds(t *testing.T) {
	t.Parallel()

	b := render(t)
	edited := strings.Replace(string(b.JSON), `"count": 1`, `"count": -1`, 1)
	require.NotEqual(t, string(b.JSON), edited)

	err := Conform([]byte(edited))
	require.ErrorIs(t, err, schema.ErrViolation)
	var v *schema.Violation
	require.ErrorAs(t, err, &v)
	assert.Equal(t, "$.recipes.IronSmelting.ingredients[0].count", v.Path)
}

func TestWriteCreatesBoth(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	p := paths(dir)
	b := Bundle{JSON: []byte("{}\n"), Declarations: []byte("export {};\n")}

	require.NoError(t, Write(b, p))

	got, err := os.ReadFile(p.JSON)
	require.NoError(t, err)
	assert.Equal(t, b.JSON, got)
	got, err = os.ReadFile(p.Declarations)
	require.NoError(t, err)
	assert.Equal(t, b.Declarations, got)

	info, err := os.Stat(p.JSON)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(fileMode), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(p.JSON))
	require.NoError(t, err)
	assert.Len(t, entries, 2, "temporary files must not be left behind")
}

func TestWriteReplacesExisting(t *testing.T) {
	t.Parallel()

	p := paths(t.TempDir())
	require.NoError(t, Write(Bundle{JSON: []byte("old"), Declarations: []byte("old")}, p))
	require.NoError(t, Write(Bundle{JSON: []byte("new json"), Declarations: []byte("new ts")}, p))

	got, err := os.ReadFile(p.JSON)
	require.NoError(t, err)
	assert.Equal(t, "new json", string(got))
	got, err = os.ReadFile(p.Declarations)
	require.NoError(t, err)
	assert.Equal(t, "new ts", string(got))
}

func TestWriteNeitherWhenDeclarationsUnwritable(t *testing.T) {
	t.Parallel()

	p := paths(t.TempDir())
	require.NoError(t, os.MkdirAll(p.Declarations, 0o755))

	err := Write(Bundle{JSON: []byte("{}"), Declarations: []byte("x")}, p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), p.Declarations)

	_, statErr := os.Stat(p.JSON)
	assert.True(t, errors.Is(statErr, os.ErrNotExist), "json must not be written alone")

	entries, err := os.ReadDir(filepath.Dir(p.JSON))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

// Not parallel: swaps renameFile.
func TestWriteRollsBackPartialCommit(t *testing.T) {
	tests := []struct {
		name     string
		previous *Bundle
	}{
		{"fresh checkout", nil},
		{"existing artifacts", &Bundle{JSON: []byte("old json"), Declarations: []byte("old ts")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := paths(t.TempDir())
			if tt.previous != nil {
				require.NoError(t, Write(*tt.previous, p))
			}

			calls := 0
			renameFile = func(from, to string) error {
				calls++
				if calls == 2 {
					return errors.New("disk full")
				}
				return os.Rename(from, to)
			}
			t.Cleanup(func() { renameFile = os.Rename })

			err := Write(Bundle{JSON: []byte("new json"), Declarations: []byte("new ts")}, p)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "disk full")
			assert.Contains(t, err.Error(), p.Declarations)

			got, readErr := os.ReadFile(p.JSON)
			if tt.previous == nil {
				assert.True(t, errors.Is(readErr, os.ErrNotExist))
			} else {
				require.NoError(t, readErr)
				assert.Equal(t, "old json", string(got))
			}

			entries, err := os.ReadDir(filepath.Dir(p.JSON))
			require.NoError(t, err)
			for _, e := range entries {
				assert.NotContains(t, e.Name(), ".tmp-")
			}
		})
	}
}

func TestCheckReportsDrift(t *testing.T) {
	t.Parallel()

	p := paths(t.TempDir())
	b := render(t)

	drifts, err := Check(b, p)
	require.NoError(t, err)
	require.Len(t, drifts, 2)
	assert.True(t, drifts[0].Missing)
	assert.Equal(t, p.JSON, drifts[0].Path)
	assert.Empty(t, drifts[0].Got)

	require.NoError(t, Write(b, p))
	drifts, err = Check(b, p)
	require.NoError(t, err)
	assert.Empty(t, drifts)

	require.NoError(t, os.WriteFile(p.Declarations, []byte("// edited by hand\n"), fileMode))
	drifts, err = Check(b, p)
	require.NoError(t, err)
	require.Len(t, drifts, 1)
	assert.Equal(t, p.Declarations, drifts[0].Path)
	assert.False(t, drifts[0].Missing)
	assert.Equal(t, HashBytes([]byte("// edited by hand\n")), drifts[0].Got)
	assert.Equal(t, HashBytes(b.Declarations), drifts[0].Want)
}

func TestHash(t *testing.T) {
	t.Parallel()

	const empty = "sha256:e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	assert.Equal(t, empty, HashBytes(nil))

	path := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(path, nil, fileMode))
	got, err := HashFile(path)
	require.NoError(t, err)
	assert.Equal(t, empty, got)

	_, err = HashFile(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
