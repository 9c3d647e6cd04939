package schema

import (
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gamma-delta/center-brain-archive/internal/dsp/item"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/recipe"
	"github.com/gamma-delta/center-brain-archive/internal/dsp/tech"
)

// walkObjects calls fn for every object schema reachable from s.
func walkObjects(s *Schema, fn func(*Schema)) {
	if s == nil {
		return
	}
	if s.Type == "object" {
		fn(s)
	}
	walkObjects(s.Items, fn)
	for _, k := range s.Properties.Keys() {
		p, _ := s.Properties.Get(k)
		walkObjects(p, fn)
	}
	for _, k := range s.Definitions.Keys() {
		d, _ := s.Definitions.Get(k)
		walkObjects(d, fn)
	}
}

func TestForArchive(t *testing.T) {
	t.Parallel()

	doc := ForArchive()
	assert.Equal(t, RootTitle, doc.Title)
	assert.Equal(t, Draft, doc.Schema)
	assert.Equal(t, []string{"tech_tree", "recipes", "production_methods", "consumption_methods"}, doc.Required)

	tree, ok := doc.Definitions.Get(DefTechTree)
	require.True(t, ok)
	assert.Equal(t, tech.Set.Names(), tree.Required)
	assert.Equal(t, tech.Set.Names(), tree.Properties.Keys())

	recipes, ok := doc.Definitions.Get(DefRecipes)
	require.True(t, ok)
	assert.Equal(t, recipe.Set.Names(), recipes.Required)

	usages, ok := doc.Definitions.Get(DefItemUsages)
	require.True(t, ok)
	assert.Len(t, usages.Required, item.Set.Len())

	objects := 0
	walkObjects(doc, func(s *Schema) {
		objects++
		require.NotNil(t, s.AdditionalProperties)
		assert.False(t, *s.AdditionalProperties)
		assert.Equal(t, s.Properties.Keys(), s.Required)
	})
	assert.Equal(t, 7, objects)
}

func TestSchemaJSONKeepsOrder(t *testing.T) {
	t.Parallel()

	data, err := ForArchive().Compact()
	require.NoError(t, err)
	text := string(data)

	assert.True(t, strings.HasPrefix(text, `{"$schema":"`+Draft+`","title":"AllDSPInfo"`), text[:80])
	assert.Less(t, strings.Index(text, `"tech_tree"`), strings.Index(text, `"recipes"`))
	assert.Less(t, strings.Index(text, `"IronOre"`), strings.Index(text, `"CopperOre"`))

	indented, err := ForArchive().Indent()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(indented), "}\n"))

	var generic map[string]any
	require.NoError(t, json.Unmarshal(data, &generic))
}

func TestRefName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefItemStack, Ref(DefItemStack).RefName())
	assert.Equal(t, "", (&Schema{Ref: "http://example.com/x"}).RefName())
	assert.Equal(t, "", (&Schema{Type: "string"}).RefName())
}

func TestBuiltinTypeScript(t *testing.T) {
	t.Parallel()

	out, err := Builtin{}.Generate(context.Background(), ForArchive())
	require.NoError(t, err)
	ts := string(out)

	for _, want := range []string{
		"DO NOT MODIFY IT BY HAND",
		"export interface AllDSPInfo {\n  tech_tree: EnumMap_of_Technology_to_TechnologyEntry;\n  recipes: EnumMap_of_Recipe_to_RecipeDefinition;\n",
		"  production_methods: EnumMap_of_Item_to_Array_of_Recipe;\n",
		"export interface EnumMap_of_Technology_to_TechnologyEntry {\n  DysonSphereProgram: TechnologyEntry;\n",
		"  IronOre: Recipe[];\n",
		"export interface TechnologyEntry {\n  tech: Technology;\n  prereqs: Technology[];\n  postreqs: Technology[];\n}\n",
		"export type Item =\n  | \"IronOre\"\n  | \"CopperOre\"\n",
		"  | \"StorageTank\";\n",
		"export type Producer =\n",
		"export type Recipe =\n",
		"  /**\n   * Seconds per craft.\n   */\n  time: number;\n",
	} {
		assert.Contains(t, ts, want)
	}
	assert.NotContains(t, ts, "[k: string]")
	assert.Less(t, strings.Index(ts, "interface AllDSPInfo"), strings.Index(ts, "type Item ="))

	again, err := Builtin{}.Generate(context.Background(), ForArchive())
	require.NoError(t, err)
	assert.Equal(t, ts, string(again))
}

func TestBuiltinRejectsUntitledRoot(t *testing.T) {
	t.Parallel()

	_, err := Builtin{}.Generate(context.Background(), &Schema{Type: "object"})
	assert.Error(t, err)
}

func TestTSKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"tech_tree", "tech_tree"},
		{"ConveyorMK1", "ConveyorMK1"},
		{"1st", `"1st"`},
		{"made-in", `"made-in"`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tsKey(tt.in), tt.in)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	doc := object("",
		field{"color", Ref("Color")},
		field{"weight", &Schema{Type: "number", Minimum: zero()}},
		field{"tags", &Schema{Type: "array", Items: &Schema{Type: "string"}}},
		field{"ok", &Schema{Type: "boolean"}},
	)
	doc.Definitions = &Properties{}
	doc.Definitions.Set("Color", &Schema{Type: "string", Enum: []string{"Red", "Blue"}})

	tests := []struct {
		name     string
		input    string
		wantPath []string
	}{
		{"valid", `{"color":"Red","weight":2,"tags":["a"],"ok":true}`, nil},
		{"missing key", `{"color":"Red","weight":2,"tags":[]}`, []string{"$"}},
		{"extra key", `{"color":"Red","weight":2,"tags":[],"ok":false,"size":1}`, []string{"$"}},
		{"bad enum", `{"color":"Green","weight":2,"tags":[],"ok":false}`, []string{"$.color"}},
		{"negative", `{"color":"Red","weight":-1,"tags":[],"ok":false}`, []string{"$.weight"}},
		{"wrong element", `{"color":"Red","weight":1,"tags":["a",3],"ok":false}`, []string{"$.tags[1]"}},
		{"wrong type", `{"color":"Red","weight":"heavy","tags":null,"ok":1}`, []string{"$.weight", "$.tags", "$.ok"}},
		{"not an object", `[]`, []string{"$"}},
		{"nested array", `{"color":"Red","weight":1,"tags":[["a"]],"ok":false}`, []string{"$.tags[0]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var value any
			require.NoError(t, json.Unmarshal([]byte(tt.input), &value))
			err := Validate(doc, value)
			if tt.wantPath == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrViolation)
			var paths []string
			for _, e := range err.(interface{ Unwrap() []error }).Unwrap() {
				var v *Violation
				require.True(t, errors.As(e, &v))
				assert.NotEmpty(t, v.Message)
				paths = append(paths, v.Path)
			}
			assert.ElementsMatch(t, tt.wantPath, paths)
		})
	}
}

func TestValidateMessages(t *testing.T) {
	t.Parallel()

	doc := object("", field{"weight", &Schema{Type: "number", Minimum: zero()}})
	err := Validate(doc, map[string]any{"weight": -2.0, "size": 1.0})

	var v *Violation
	require.ErrorAs(t, err, &v)
	assert.Contains(t, err.Error(), "$.weight: ")
	assert.Contains(t, err.Error(), "$: ")
	assert.Contains(t, err.Error(), "size")
}

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExternalPipesSchema(t *testing.T) {
	t.Parallel()
	requireShell(t)

	gen := External{Command: "sh", Args: []string{"-c", "cat"}}
	out, err := gen.Generate(context.Background(), ForArchive())
	require.NoError(t, err)

	want, err := ForArchive().Compact()
	require.NoError(t, err)
	assert.Equal(t, string(want), string(out))
}

func TestExternalPropagatesExitCode(t *testing.T) {
	t.Parallel()
	requireShell(t)

	gen := External{Command: "sh", Args: []string{"-c", "cat >/dev/null; echo bad schema >&2; exit 3"}}
	_, err := gen.Generate(context.Background(), ForArchive())

	var toolErr *ExternalToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, 3, toolErr.ExitCode)
	assert.Equal(t, "bad schema", toolErr.Stderr)
	assert.Contains(t, err.Error(), "exited with code 3")
}

func TestExternalMissingCommand(t *testing.T) {
	t.Parallel()

	gen := External{Command: "centerbrain-no-such-generator"}
	_, err := gen.Generate(context.Background(), ForArchive())
	require.Error(t, err)

	var toolErr *ExternalToolError
	assert.False(t, errors.As(err, &toolErr))
}

func TestGeneratorFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Builtin{}, GeneratorFor(""))
	assert.Equal(t, Builtin{}, GeneratorFor("builtin"))
	assert.Equal(t, DefaultExternal(), GeneratorFor("json2ts"))
	assert.Equal(t,
		External{Command: "npx", Args: []string{"json2ts", "--no-bannerComment"}},
		GeneratorFor("npx json2ts --no-bannerComment"))
}
