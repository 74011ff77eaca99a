package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadEditorSpecEmbedded(t *testing.T) {
	spec, err := LoadEditorSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.Rules != "lint" {
		t.Fatalf("expected lint rules, got %q", spec.Rules)
	}
	if len(spec.Tools) != 17 {
		t.Fatalf("expected 17 tools, got %d", len(spec.Tools))
	}
	hexes := spec.Hexes()
	if len(hexes) != 8 || hexes[0] != "#ff4d4d" {
		t.Fatalf("unexpected palette %v", hexes)
	}

	var dragon *ToolSpec
	for i := range spec.Tools {
		if spec.Tools[i].Object == "dragon" {
			dragon = &spec.Tools[i]
		}
	}
	if dragon == nil {
		t.Fatalf("dragon tool missing")
	}
	props, err := DecodeComponentSpec[ToolPropsSpec](dragon.Props)
	if err != nil {
		t.Fatalf("decode props: %v", err)
	}
	if props.IsActive == nil || !*props.IsActive || props.IsSafe != nil {
		t.Fatalf("unexpected dragon props %+v", props)
	}
}

func TestLoadPrefersDisk(t *testing.T) {
	dir := t.TempDir()
	old := Dir
	Dir = dir
	defer func() { Dir = old }()

	spec := "tools:\n  - { label: Floor, type: tile, tile: EMPTY }\npalette: [\"#000000\"]\n"
	if err := os.WriteFile(filepath.Join(dir, EditorSpecFile), []byte(spec), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := LoadEditorSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.Tools) != 1 || got.Hexes()[0] != "#000000" {
		t.Fatalf("disk spec was not used: %+v", got)
	}

	if err := os.WriteFile(filepath.Join(dir, EditorSpecFile), []byte("palette: [\"#000000\"]\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadEditorSpec(); err == nil {
		t.Fatalf("expected error for spec without tools")
	}
}

func TestLoadScriptEmbedded(t *testing.T) {
	for _, name := range []string{"lint", "lint.tengo", "scripts/lint", "prefabs/scripts/lint.tengo"} {
		if _, err := LoadScript(name); err != nil {
			t.Fatalf("LoadScript(%q): %v", name, err)
		}
	}
}

func TestParseHexColor(t *testing.T) {
	cases := []struct {
		in   string
		hex  string
		want color.NRGBA
		err  bool
	}{
		{"#FF4D4D", "#ff4d4d", color.NRGBA{R: 0xff, G: 0x4d, B: 0x4d, A: 0xff}, false},
		{"2ecc71", "#2ecc71", color.NRGBA{R: 0x2e, G: 0xcc, B: 0x71, A: 0xff}, false},
		{"#00000080", "#00000080", color.NRGBA{A: 0x80}, false},
		{"#fff", "", color.NRGBA{}, true},
		{"#zzzzzz", "", color.NRGBA{}, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseHexColor(c.in)
			if (err != nil) != c.err {
				t.Fatalf("ParseHexColor(%q) err = %v", c.in, err)
			}
			if c.err {
				return
			}
			if got.Hex != c.hex || got.Color != c.want {
				t.Fatalf("ParseHexColor(%q) = %+v", c.in, got)
			}
		})
	}
}

func TestWatcherFileFilters(t *testing.T) {
	if !isSpecFile("prefabs/editor.YAML") || isSpecFile("a.tengo") {
		t.Fatalf("unexpected spec filter")
	}
	if !isScriptFile("prefabs/scripts/lint.tengo") || isScriptFile("lint.lua") {
		t.Fatalf("unexpected script filter")
	}
}

func TestDebouncerDropsRepeats(t *testing.T) {
	d := newDebouncer(100 * time.Millisecond)
	start := time.Unix(0, 0)
	steps := []struct {
		path string
		at   time.Duration
		want bool
	}{
		{"editor.yaml", 0, true},
		{"editor.yaml", 40 * time.Millisecond, false},
		{"scripts/lint.tengo", 50 * time.Millisecond, true},
		{"editor.yaml", 99 * time.Millisecond, false},
		{"editor.yaml", 100 * time.Millisecond, true},
		{"editor.yaml", 150 * time.Millisecond, false},
	}
	for i, s := range steps {
		if got := d.allow(s.path, start.Add(s.at)); got != s.want {
			t.Fatalf("step %d (%s at %v): allow = %t, want %t", i, s.path, s.at, got, s.want)
		}
	}
}

// waitForChange polls Drain until a change for path arrives.
func waitForChange(t *testing.T, w *Watcher, path string) Change {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		for _, c := range w.Drain() {
			if filepath.Base(c.Path) == filepath.Base(path) {
				return c
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("no change delivered for %s", path)
	return Change{}
}

func TestWatcherDeliversChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	defer w.Close()

	spec := filepath.Join(dir, EditorSpecFile)
	if err := os.WriteFile(spec, []byte("name: test\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if c := waitForChange(t, w, spec); c.Script {
		t.Fatalf("yaml change reported as script: %+v", c)
	}

	script := filepath.Join(dir, "lint.tengo")
	if err := os.WriteFile(script, []byte("x := 1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if c := waitForChange(t, w, script); !c.Script {
		t.Fatalf("tengo change not reported as script: %+v", c)
	}

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	time.Sleep(150 * time.Millisecond)
	for _, c := range w.Drain() {
		if filepath.Ext(c.Path) == ".txt" {
			t.Fatalf("unwatched extension delivered: %+v", c)
		}
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

func TestScriptsOnly(t *testing.T) {
	script := Change{Path: "scripts/lint.tengo", Script: true}
	spec := Change{Path: "editor.yaml"}
	cases := []struct {
		name    string
		changes []Change
		want    bool
	}{
		{"none", nil, false},
		{"script", []Change{script}, true},
		{"two_scripts", []Change{script, script}, true},
		{"spec", []Change{spec}, false},
		{"mixed", []Change{script, spec}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ScriptsOnly(c.changes); got != c.want {
				t.Fatalf("ScriptsOnly = %t, want %t", got, c.want)
			}
		})
	}
}
