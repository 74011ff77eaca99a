// Package rules runs advisory lint scripts against a level. Warnings never
// block export; they are shown next to the validator status.
package rules

import (
	"context"
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/gardenpuzzle/hazard"
	"github.com/milk9111/gardenpuzzle/levels"
	"github.com/milk9111/gardenpuzzle/prefabs"
	"github.com/milk9111/gardenpuzzle/validate"
)

// DefaultScript is used when the editor spec names no rules.
const DefaultScript = "lint"

// Linter holds one compiled lint script. A Linter is safe for concurrent use;
// every run works on its own clone of the compiled program.
type Linter struct {
	name     string
	compiled *tengo.Compiled
}

// Load compiles the named script from the prefab scripts directory.
func Load(name string) (*Linter, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultScript
	}
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("rules: load %s: %w", name, err)
	}
	return Compile(name, src)
}

func Compile(name string, src []byte) (*Linter, error) {
	script := tengo.NewScript(src)
	_ = script.Add("level", map[string]any{})
	_ = script.Add("warnings", []any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("rules: compile %s: %w", name, err)
	}
	return &Linter{name: name, compiled: compiled}, nil
}

func (l *Linter) Name() string { return l.name }

// Lint runs the script against lvl and returns the warnings it appended, in
// order. Non-string entries are formatted with their tengo string form.
func (l *Linter) Lint(ctx context.Context, lvl *levels.Level) ([]string, error) {
	if l == nil || l.compiled == nil {
		return nil, fmt.Errorf("rules: nil linter")
	}

	c := l.compiled.Clone()
	if err := c.Set("level", levelValue(lvl)); err != nil {
		return nil, fmt.Errorf("rules: %s: %w", l.name, err)
	}
	if err := c.Set("warnings", []any{}); err != nil {
		return nil, fmt.Errorf("rules: %s: %w", l.name, err)
	}
	if err := c.RunContext(ctx); err != nil {
		return nil, fmt.Errorf("rules: run %s: %w", l.name, err)
	}

	raw := c.Get("warnings").Array()
	out := make([]string, 0, len(raw))
	for _, w := range raw {
		switch v := w.(type) {
		case string:
			out = append(out, v)
		case nil:
		default:
			out = append(out, fmt.Sprint(v))
		}
	}
	return out, nil
}

// levelValue is the read-only view of lvl exposed to scripts as `level`.
func levelValue(lvl *levels.Level) map[string]any {
	if lvl == nil {
		lvl = levels.New(levels.DefaultSize, levels.DefaultSize)
	}
	stats := validate.Compute(lvl)

	objects := make(map[string]any, len(levels.ObjectKinds))
	for _, k := range levels.ObjectKinds {
		objects[string(k)] = lvl.CountObjects(k)
	}

	roster := make([]any, 0, len(lvl.Roster))
	for _, d := range lvl.Roster {
		roster = append(roster, d.String())
	}

	problem := ""
	if err := validate.Check(lvl); err != nil {
		problem = err.Error()
	}

	return map[string]any{
		"cols":       lvl.Cols,
		"rows":       lvl.Rows,
		"flowers":    stats.Flowers,
		"switches":   stats.Switches,
		"buttons":    stats.Buttons,
		"cans":       stats.Cans,
		"roster":     stats.Roster,
		"directions": roster,
		"markers":    len(lvl.Characters),
		"hazards":    len(hazard.Project(lvl)),
		"objects":    objects,
		"problem":    problem,
	}
}
