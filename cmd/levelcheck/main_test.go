package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunEmbeddedLevels(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run(nil, &out, &errOut); code != 0 {
		t.Fatalf("exit %d\nstdout:\n%s\nstderr:\n%s", code, out.String(), errOut.String())
	}
	for _, s := range []string{"first_bloom: 8x8 cans OK, chars OK", "dragon_gate:"} {
		if !strings.Contains(out.String(), s) {
			t.Fatalf("output missing %q:\n%s", s, out.String())
		}
	}
}

func TestRunPrintsCodeExport(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"-print", "-format", "code", "first_bloom"}, &out, &errOut); code != 0 {
		t.Fatalf("exit %d: %s", code, errOut.String())
	}
	if !strings.Contains(out.String(), "characters: [\n    DIR.UP\n  ]") {
		t.Fatalf("expected code export:\n%s", out.String())
	}
}

func TestRunReportsInvalidLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	doc := `{"map": [[2,0,0,0,0],[0,0,0,0,0],[0,0,0,0,0],[0,0,0,0,0],[0,0,0,0,0]], "objects": [], "items": [], "characters": ["UP"]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var out, errOut bytes.Buffer
	if code := run([]string{path}, &out, &errOut); code != 1 {
		t.Fatalf("expected exit 1, got %d\n%s", code, out.String())
	}
	for _, s := range []string{"Must be 1 cans", "FAIL", "current: 0, required: 1", "1 of 1 levels failed"} {
		if !strings.Contains(out.String(), s) {
			t.Fatalf("output missing %q:\n%s", s, out.String())
		}
	}
}

func TestRunStrictFailsOnWarnings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.json")
	doc := `{"map": [[0,0,0,0,0],[0,0,0,0,0],[0,0,0,0,0],[0,0,0,0,0],[0,0,0,0,0]], "objects": [], "items": [], "characters": []}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var out, errOut bytes.Buffer
	if code := run([]string{path}, &out, &errOut); code != 0 {
		t.Fatalf("lint warnings alone should not fail: exit %d\n%s", code, out.String())
	}
	if !strings.Contains(out.String(), "warn: level has no flower") {
		t.Fatalf("expected lint warning:\n%s", out.String())
	}

	out.Reset()
	if code := run([]string{"-strict", path}, &out, &errOut); code != 1 {
		t.Fatalf("expected strict failure, got %d\n%s", code, out.String())
	}
}

func TestRunRejectsBadFlags(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"-format", "yaml"}, &out, &errOut); code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
	if code := run([]string{"-rules", "missing_script"}, &out, &errOut); code != 2 {
		t.Fatalf("expected exit 2, got %d", code)
	}
}

func TestRunRejectsCanUnderFire(t *testing.T) {
	path := filepath.Join(t.TempDir(), "burning.json")
	doc := `{"map": [[9,0,0,0,0],[0,0,0,0,0],[0,0,10,0,0],[0,0,0,0,0],[0,0,0,0,0]],
  "objects": [{"type": "dragon", "x": 0, "y": 0, "dir": "RIGHT", "color": "#ff4d4d"}, {"type": "fire_button", "x": 2, "y": 2, "color": "#ff4d4d"}],
  "items": [{"type": "can", "x": 2, "y": 0}], "characters": ["UP", "UP"]}`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	var out, errOut bytes.Buffer
	if code := run([]string{path}, &out, &errOut); code != 1 {
		t.Fatalf("expected exit 1, got %d\n%s", code, out.String())
	}
	if !strings.Contains(out.String(), "under dragon fire") {
		t.Fatalf("expected fire rejection:\n%s", out.String())
	}
}
