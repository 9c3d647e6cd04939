package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/gamma-delta/center-brain-archive/internal/archive"
	"github.com/gamma-delta/center-brain-archive/internal/artifact"
	"github.com/gamma-delta/center-brain-archive/internal/dsp"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/recipe"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/tech"
	"github.com/gamma-delta/center-brain-archive/internal/schema"
	"github.com/gamma-delta/center-brain-archive/internal/techtree"
	"github.com/gamma-delta/center-brain-archive/internal/ui"
)

type failingGenerator struct{}

func (failingGenerator) Generate(context.Context, *schema.Schema) ([]byte, error) {
	return nil, &schema.ExternalToolError{Command: "json2ts", ExitCode: 3, Stderr: "bad input"}
}

func tempPaths(t *testing.T) artifact.Paths {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "site", "src")
	return artifact.Paths{
		JSON:         filepath.Join(dir, "dsp.json"),
		Declarations: filepath.Join(dir, "dsp.d.ts"),
	}
}

func TestGenerateThenCheck(t *testing.T) {
	t.Parallel()

	paths := tempPaths(t)
	var buf bytes.Buffer
	printer := ui.NewWriter(&buf)

	if err := generate(context.Background(), printer, paths, schema.Builtin{}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"planning to write", paths.JSON, paths.Declarations, "wrote"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "planning to write") > strings.Index(out, "wrote") {
		t.Errorf("plan lines must come before the write:\n%s", out)
	}

	buf.Reset()
	if err := check(context.Background(), printer, paths, schema.Builtin{}); err != nil {
		t.Fatalf("check after generate: %v", err)
	}
	if !strings.Contains(buf.String(), "up to date") {
		t.Errorf("check output = %q, want up to date", buf.String())
	}
}

func TestCheckDetectsStaleDeclarations(t *testing.T) {
	t.Parallel()

	paths := tempPaths(t)
	printer := ui.NewWriter(&bytes.Buffer{})
	if err := generate(context.Background(), printer, paths, schema.Builtin{}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if err := os.WriteFile(paths.Declarations, []byte("export {};\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := check(context.Background(), printer, paths, schema.Builtin{})
	if err == nil || !strings.Contains(err.Error(), "1 artifact(s) out of date") {
		t.Fatalf("check() error = %v, want one stale artifact", err)
	}
}

func TestCheckRejectsNonConformingJSON(t *testing.T) {
	t.Parallel()

	paths := tempPaths(t)
	printer := ui.NewWriter(&bytes.Buffer{})
	if err := generate(context.Background(), printer, paths, schema.Builtin{}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if err := os.WriteFile(paths.JSON, []byte(`{"tech_tree":{}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	err := check(context.Background(), printer, paths, schema.Builtin{})
	if err == nil || !strings.Contains(err.Error(), "does not conform") {
		t.Fatalf("check() error = %v, want conformance failure", err)
	}
}

func TestCheckRejectsOutOfRangeValues(t *testing.T) {
	t.Parallel()

	paths := tempPaths(t)
	printer := ui.NewWriter(&bytes.Buffer{})
	if err := generate(context.Background(), printer, paths, schema.Builtin{}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	data, err := os.ReadFile(paths.JSON)
	if err != nil {
		t.Fatal(err)
	}
	edited := strings.Replace(string(data), `"time": 1,`, `"time": -1,`, 1)
	if err := os.WriteFile(paths.JSON, []byte(edited), 0o644); err != nil {
		t.Fatal(err)
	}

	err = check(context.Background(), printer, paths, schema.Builtin{})
	if err == nil || !strings.Contains(err.Error(), "$.recipes.IronSmelting.time") {
		t.Fatalf("check() error = %v, want a violation at $.recipes.IronSmelting.time", err)
	}
}

func TestGenerateToolFailureWritesNothing(t *testing.T) {
	t.Parallel()

	paths := tempPaths(t)
	var buf bytes.Buffer
	err := generate(context.Background(), ui.NewWriter(&buf), paths, failingGenerator{})
	if err == nil {
		t.Fatal("expected generate to fail")
	}
	if got := exitCode(err); got != 3 {
		t.Errorf("exitCode() = %d, want 3", got)
	}
	if strings.Contains(buf.String(), "planning to write") {
		t.Errorf("nothing should be planned when rendering fails:\n%s", buf.String())
	}
	for _, p := range []string{paths.JSON, paths.Declarations} {
		if _, err := os.Stat(p); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("%s exists after failed generate", p)
		}
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"plain", errors.New("boom"), 1},
		{"tool", &schema.ExternalToolError{ExitCode: 2}, 2},
		{"wrapped tool", fmt.Errorf("generating: %w", &schema.ExternalToolError{ExitCode: 5}), 5},
		{"killed tool", &schema.ExternalToolError{ExitCode: -1}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestValidateBuiltin(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := validate(ui.NewWriter(&buf), dsp.Builtin{}); err != nil {
		t.Fatalf("validate: %v\n%s", err, buf.String())
	}
	if !strings.Contains(buf.String(), "MiniatureParticleCollider") {
		t.Errorf("expected the self-referencing technology to be reported:\n%s", buf.String())
	}
}

func TestExportArchive(t *testing.T) {
	t.Parallel()

	a, err := archive.Compile(dsp.Builtin{})
	if err != nil {
		t.Fatal(err)
	}
	want, err := a.Encode()
	if err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	if err := exportArchive(context.Background(), &stdout, "json", ""); err != nil {
		t.Fatalf("json export: %v", err)
	}
	if !bytes.Equal(stdout.Bytes(), want) {
		t.Error("json export differs from the artifact")
	}

	out := filepath.Join(t.TempDir(), "dsp.yaml")
	stdout.Reset()
	if err := exportArchive(context.Background(), &stdout, "yaml", out); err != nil {
		t.Fatalf("yaml export: %v", err)
	}
	if stdout.Len() != 0 {
		t.Error("export with --out must not write to stdout")
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "tech_tree:\n") {
		t.Errorf("yaml export starts with %q", string(data[:20]))
	}

	db := filepath.Join(t.TempDir(), "dsp.db")
	if err := exportArchive(context.Background(), &stdout, "sqlite", db); err != nil {
		t.Fatalf("sqlite export: %v", err)
	}
	if _, err := os.Stat(db); err != nil {
		t.Errorf("sqlite export did not create %s", db)
	}

	if err := exportArchive(context.Background(), &stdout, "sqlite", ""); err == nil {
		t.Error("sqlite export without --out should fail")
	}
	if err := exportArchive(context.Background(), &stdout, "csv", ""); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestResearchPlan(t *testing.T) {
	t.Parallel()

	a, err := archive.Compile(dsp.Builtin{})
	if err != nil {
		t.Fatal(err)
	}
	g := techtree.Build(dsp.Builtin{}.Prerequisites)

	root := researchPlan(g, a, tech.DysonSphereProgram)
	if len(root.Path) != 0 {
		t.Errorf("root path = %v, want empty", root.Path)
	}
	if !slices.Contains(root.Unlocks, recipe.IronSmelting) {
		t.Errorf("root unlocks %v, want IronSmelting among them", root.Unlocks)
	}
	if !slices.Contains(root.Leads, tech.Electromagnetism) {
		t.Errorf("root leads to %v, want Electromagnetism", root.Leads)
	}

	em := researchPlan(g, a, tech.ElectromagneticMatrix)
	wantPath := []tech.Technology{tech.DysonSphereProgram, tech.Electromagnetism}
	if !slices.Equal(em.Path, wantPath) {
		t.Errorf("path = %v, want %v", em.Path, wantPath)
	}
	wantChain := []tech.Technology{tech.DysonSphereProgram, tech.Electromagnetism, tech.ElectromagneticMatrix}
	if !slices.Equal(em.Critical, wantChain) {
		t.Errorf("critical = %v, want %v", em.Critical, wantChain)
	}

	var buf bytes.Buffer
	if err := writeResearchPath(&buf, g, a, tech.ElectromagneticMatrix); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Researching ElectromagneticMatrix") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

// Not parallel: drives the shared root command.
func TestShowCommands(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{[]string{"show", "recipe", "IronSmelting"}, []string{"IronSmelting", "1x IronOre", "Unlocked by DysonSphereProgram"}},
		{[]string{"show", "item", "Diamond"}, []string{"Ways to produce Diamond", "DiamondFromKimberlite"}},
		{[]string{"show", "item", "--consume", "IronOre"}, []string{"Ways to consume IronOre"}},
		{[]string{"show", "tech", "Electromagnetism"}, []string{"Electromagnetism", "DysonSphereProgram"}},
		{[]string{"research"}, []string{"Research tiers", "tier  0", "critical:"}},
		{[]string{"research", "ElectromagneticMatrix"}, []string{"Researching ElectromagneticMatrix"}},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			var buf bytes.Buffer
			rootCmd.SetOut(&buf)
			rootCmd.SetArgs(tt.args)
			t.Cleanup(func() {
				rootCmd.SetOut(nil)
				rootCmd.SetArgs(nil)
			})

			if err := rootCmd.Execute(); err != nil {
				t.Fatalf("Execute(%v): %v", tt.args, err)
			}
			for _, want := range tt.want {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("output missing %q:\n%s", want, buf.String())
				}
			}
		})
	}

	t.Run("unknown name", func(t *testing.T) {
		rootCmd.SetOut(&bytes.Buffer{})
		rootCmd.SetArgs([]string{"show", "item", "Unobtainium"})
		t.Cleanup(func() {
			rootCmd.SetOut(nil)
			rootCmd.SetArgs(nil)
		})
		if err := rootCmd.Execute(); err == nil {
			t.Fatal("expected an error for an unknown item")
		}
	})
}

func TestCommandsRegistered(t *testing.T) {
	t.Parallel()

	var names []string
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"generate", "check", "validate", "research", "show", "export"} {
		if !slices.Contains(names, want) {
			t.Errorf("command %q not registered (have %v)", want, names)
		}
	}
}
