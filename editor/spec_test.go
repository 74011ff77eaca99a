package editor

import (
	"strings"
	"testing"

	"github.com/milk9111/gardenpuzzle/hazard"
	"github.com/milk9111/gardenpuzzle/levels"
	"github.com/milk9111/gardenpuzzle/prefabs"
)

func TestToolsFromEmbeddedSpecMatchDefaults(t *testing.T) {
	spec, err := prefabs.LoadEditorSpec()
	if err != nil {
		t.Fatalf("load spec: %v", err)
	}
	tools, colors, err := ToolsFromSpec(spec)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	defaults := DefaultTools()
	if len(tools) != len(defaults) {
		t.Fatalf("expected %d tools, got %d", len(defaults), len(tools))
	}
	for i, want := range defaults {
		got := tools[i]
		if got.Label != want.Label || got.Kind != want.Kind || got.Tile != want.Tile ||
			got.Object != want.Object || got.Item != want.Item || got.Colored != want.Colored || got.Dir != want.Dir {
			t.Fatalf("tool %d: got %+v want %+v", i, got, want)
		}
		if (got.IsSafe == nil) != (want.IsSafe == nil) || (got.IsSafe != nil && *got.IsSafe != *want.IsSafe) {
			t.Fatalf("tool %s: IsSafe mismatch", want.Label)
		}
		if (got.IsActive == nil) != (want.IsActive == nil) || (got.IsActive != nil && *got.IsActive != *want.IsActive) {
			t.Fatalf("tool %s: IsActive mismatch", want.Label)
		}
	}

	if len(colors) != len(DefaultPalette) {
		t.Fatalf("expected %d colors, got %d", len(DefaultPalette), len(colors))
	}
	for i, c := range DefaultPalette {
		if colors[i] != c {
			t.Fatalf("color %d: got %s want %s", i, colors[i], c)
		}
	}
}

func TestToolsFromSpecErrors(t *testing.T) {
	cases := []struct {
		name string
		tool prefabs.ToolSpec
		want string
	}{
		{"no_label", prefabs.ToolSpec{Type: "tile", Tile: "EMPTY"}, "missing label"},
		{"bad_type", prefabs.ToolSpec{Label: "x", Type: "brush"}, "unknown tool type"},
		{"bad_tile", prefabs.ToolSpec{Label: "x", Type: "tile", Tile: "LAVA"}, "unknown tile"},
		{"object_tile", prefabs.ToolSpec{Label: "x", Type: "tile", Tile: "WARP"}, "use type obj"},
		{"bad_object", prefabs.ToolSpec{Label: "x", Type: "obj", Object: "cannon"}, "unknown object"},
		{"warp_without_color", prefabs.ToolSpec{Label: "x", Type: "obj", Object: "warp"}, "has_color"},
		{"colored_switch", prefabs.ToolSpec{Label: "x", Type: "obj", Object: "switch", HasColor: true}, "has_color"},
		{"bad_item", prefabs.ToolSpec{Label: "x", Type: "item", Item: "bucket"}, "unknown item"},
		{"bad_dir", prefabs.ToolSpec{Label: "x", Type: "char", Dir: "NORTH"}, "unknown direction"},
		{"active_arrow", prefabs.ToolSpec{Label: "x", Type: "obj", Object: "arrow", Props: map[string]any{"is_active": true}}, "does not take"},
		{"active_glass", prefabs.ToolSpec{Label: "x", Type: "obj", Object: "glass", Props: map[string]any{"is_active": false}}, "does not take is_active"},
		{"safe_dragon", prefabs.ToolSpec{Label: "x", Type: "obj", Object: "dragon", HasColor: true, Props: map[string]any{"is_safe": true}}, "does not take is_safe"},
		{"flagged_item", prefabs.ToolSpec{Label: "x", Type: "item", Item: "can", Props: map[string]any{"is_safe": true}}, "only objects"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec := &prefabs.EditorSpec{Tools: []prefabs.ToolSpec{c.tool}}
			_, _, err := ToolsFromSpec(spec)
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Fatalf("expected error containing %q, got %v", c.want, err)
			}
		})
	}
}

func TestSetPaletteFromSpecKeepsSelection(t *testing.T) {
	e := New(nil)
	if !e.SelectColor(DefaultPalette[1]) {
		t.Fatalf("select color failed")
	}
	spec := &prefabs.EditorSpec{
		Tools: []prefabs.ToolSpec{
			{Label: "Hole", Type: "tile", Tile: "NONE"},
			{Label: "Floor", Type: "tile", Tile: "EMPTY"},
		},
	}
	blue, _ := prefabs.ParseHexColor("#4D4DFF")
	spec.Palette = []prefabs.YAMLColor{blue}

	tools, colors, err := ToolsFromSpec(spec)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	e.SetPalette(tools, colors)
	if e.Tool().Label != "Floor" {
		t.Fatalf("expected Floor to stay selected, got %s", e.Tool().Label)
	}
	if e.Color() != "#4d4dff" {
		t.Fatalf("expected color to stay selected, got %s", e.Color())
	}
}

func TestToolsFromSpecDefaultsObjectFlags(t *testing.T) {
	spec := &prefabs.EditorSpec{Tools: []prefabs.ToolSpec{
		{Label: "Dragon", Type: "obj", Object: "dragon", HasColor: true},
		{Label: "Glass", Type: "obj", Object: "glass"},
		{Label: "Arrow", Type: "obj", Object: "arrow"},
	}}
	tools, _, err := ToolsFromSpec(spec)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	e := New(levels.New(6, 6))
	e.SetPalette(tools, DefaultPalette)

	e.SelectToolIndex(0)
	if !e.PlaceAt(0, 5) {
		t.Fatalf("dragon placement failed")
	}
	e.SelectToolIndex(1)
	if !e.PlaceAt(3, 3) {
		t.Fatalf("glass placement failed")
	}
	e.SelectToolIndex(2)
	if !e.PlaceAt(5, 5) {
		t.Fatalf("arrow placement failed")
	}

	lvl := e.Level()
	d, _ := lvl.ObjectAt(0, 5)
	if d.IsActive == nil || !*d.IsActive || d.IsSafe != nil {
		t.Fatalf("dragon should start active, got %+v", d)
	}
	if len(hazard.Project(lvl)) == 0 {
		t.Fatalf("dragon from spec should breathe fire")
	}
	g, _ := lvl.ObjectAt(3, 3)
	if g.IsSafe == nil || !*g.IsSafe || g.IsActive != nil {
		t.Fatalf("glass should start safe, got %+v", g)
	}
	a, _ := lvl.ObjectAt(5, 5)
	if a.IsSafe != nil || a.IsActive != nil {
		t.Fatalf("arrow should carry no flags, got %+v", a)
	}
}
