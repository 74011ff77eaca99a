// Package export turns a validated level into the canonical text the game
// loads.
package export

import (
	"fmt"

	"github.com/milk9111/gardenpuzzle/levels"
	"github.com/milk9111/gardenpuzzle/validate"
)

// Format selects the text flavor of an export.
type Format int

const (
	// FormatData is plain structured text (valid JSON).
	FormatData Format = iota
	// FormatCode is a source literal: keys are unquoted and the character list
	// refers to DIR constants.
	FormatCode
)

func (f Format) String() string {
	if f == FormatCode {
		return "code"
	}
	return "data"
}

func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "data", "json":
		return FormatData, nil
	case "code", "js":
		return FormatCode, nil
	}
	return FormatData, fmt.Errorf("export: unknown format %q", s)
}

// DirPrefix is prepended to direction names in the code flavor.
const DirPrefix = "DIR."

// Generate validates lvl and renders it. On a rule failure the returned error
// wraps a *validate.RuleError and nothing is rendered. lvl is never modified.
func Generate(lvl *levels.Level, format Format) (string, error) {
	if err := validate.Check(lvl); err != nil {
		return "", fmt.Errorf("export: %w", err)
	}
	return Render(lvl.ToDocument(), format), nil
}

// Render writes doc with two-space indentation. Number-only arrays and
// objects holding only scalars are kept on one line.
func Render(doc levels.Document, format Format) string {
	root := documentNode(doc)
	w := &writer{indentUnit: "  "}
	if format == FormatCode {
		w.bareKeys = true
		symbolizeCharacters(root)
	}
	w.write(root, 0)
	return w.sb.String()
}

// symbolizeCharacters rewrites the direction names in the top-level
// characters list to DIR references. Other strings are left alone.
func symbolizeCharacters(root *node) {
	for _, f := range root.fields {
		if f.key != "characters" || f.value.kind != nodeArray {
			continue
		}
		for i, it := range f.value.items {
			if it.kind != nodeString {
				continue
			}
			if _, err := levels.ParseDirection(it.str); err == nil {
				f.value.items[i] = symbolNode(DirPrefix + it.str)
			}
		}
	}
}
