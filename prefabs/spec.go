package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// EditorSpecFile is the spec loaded at startup and on hot reload.
const EditorSpecFile = "editor.yaml"

type EditorSpec struct {
	Name    string      `yaml:"name"`
	Palette []YAMLColor `yaml:"palette"`
	Tools   []ToolSpec  `yaml:"tools"`
	// Rules names the lint script under scripts/.
	Rules string `yaml:"rules"`
}

// ToolSpec describes one palette tool. Type is one of tile, obj, item or
// char; Tile and Object use the level names (e.g. MOVING_FLOOR, fire_button).
type ToolSpec struct {
	Category string         `yaml:"category"`
	Label    string         `yaml:"label"`
	Type     string         `yaml:"type"`
	Tile     string         `yaml:"tile"`
	Object   string         `yaml:"object"`
	Item     string         `yaml:"item"`
	HasColor bool           `yaml:"has_color"`
	Dir      string         `yaml:"dir"`
	Props    map[string]any `yaml:"props"`
}

// ToolPropsSpec holds the per-object flags a tool seeds.
type ToolPropsSpec struct {
	IsSafe   *bool `yaml:"is_safe"`
	IsActive *bool `yaml:"is_active"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

func LoadEditorSpec() (*EditorSpec, error) {
	spec, err := LoadSpec[EditorSpec](EditorSpecFile)
	if err != nil {
		return nil, err
	}
	if len(spec.Tools) == 0 {
		return nil, fmt.Errorf("prefabs: %s defines no tools", EditorSpecFile)
	}
	if len(spec.Palette) == 0 {
		return nil, fmt.Errorf("prefabs: %s defines no palette", EditorSpecFile)
	}
	return &spec, nil
}

// DecodeComponentSpec re-decodes a loosely typed YAML value into T.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

// Hexes returns the palette as normalized "#rrggbb" strings.
func (s *EditorSpec) Hexes() []string {
	out := make([]string, 0, len(s.Palette))
	for _, c := range s.Palette {
		out = append(out, c.Hex)
	}
	return out
}

// YAMLColor is a "#rrggbb" or "#rrggbbaa" color. Hex keeps the lower-cased
// source text so it can be written back out.
type YAMLColor struct {
	color.Color
	Hex string
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func ParseHexColor(v string) (YAMLColor, error) {
	s := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(v)), "#")

	if len(s) != 6 && len(s) != 8 {
		return YAMLColor{}, fmt.Errorf("invalid color format: %s", v)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return YAMLColor{}, err
	}
	g, err := parse(2)
	if err != nil {
		return YAMLColor{}, err
	}
	b, err := parse(4)
	if err != nil {
		return YAMLColor{}, err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return YAMLColor{}, err
		}
	}

	return YAMLColor{Color: color.NRGBA{R: r, G: g, B: b, A: a}, Hex: "#" + s}, nil
}
