package editor

import (
	"fmt"

	"github.com/milk9111/gardenpuzzle/levels"
	"github.com/milk9111/gardenpuzzle/prefabs"
)

// ToolsFromSpec converts a loaded editor spec into tools and palette colors.
func ToolsFromSpec(spec *prefabs.EditorSpec) ([]Tool, []string, error) {
	if spec == nil {
		return nil, nil, fmt.Errorf("editor: nil spec")
	}

	tools := make([]Tool, 0, len(spec.Tools))
	for i, ts := range spec.Tools {
		t, err := toolFromSpec(ts)
		if err != nil {
			return nil, nil, fmt.Errorf("editor: tool %d (%s): %w", i, ts.Label, err)
		}
		tools = append(tools, t)
	}

	return tools, spec.Hexes(), nil
}

func toolFromSpec(ts prefabs.ToolSpec) (Tool, error) {
	t := Tool{Category: ts.Category, Label: ts.Label, Colored: ts.HasColor}
	if t.Label == "" {
		return Tool{}, fmt.Errorf("missing label")
	}

	props, err := prefabs.DecodeComponentSpec[prefabs.ToolPropsSpec](ts.Props)
	if err != nil {
		return Tool{}, fmt.Errorf("props: %w", err)
	}
	t.IsSafe = props.IsSafe
	t.IsActive = props.IsActive

	switch ts.Type {
	case "tile":
		t.Kind = ToolTile
		tile, err := levels.ParseTile(ts.Tile)
		if err != nil {
			return Tool{}, err
		}
		for _, k := range levels.ObjectKinds {
			if kt, _ := k.Tile(); kt == tile {
				return Tool{}, fmt.Errorf("tile %s carries an object; use type obj", tile)
			}
		}
		t.Tile = tile
	case "obj":
		t.Kind = ToolObject
		kind := levels.ObjectKind(ts.Object)
		tile, ok := kind.Tile()
		if !ok {
			return Tool{}, fmt.Errorf("unknown object %q", ts.Object)
		}
		if kind.Colored() != ts.HasColor {
			return Tool{}, fmt.Errorf("object %s has_color must be %t", kind, kind.Colored())
		}
		t.Object = kind
		t.Tile = tile
		if err := objectFlags(&t); err != nil {
			return Tool{}, err
		}
	case "item":
		t.Kind = ToolItem
		if levels.ItemKind(ts.Item) != levels.ItemCan {
			return Tool{}, fmt.Errorf("unknown item %q", ts.Item)
		}
		t.Item = levels.ItemCan
	case "char":
		t.Kind = ToolCharacter
		d := levels.DirUp
		if ts.Dir != "" {
			d, err = levels.ParseDirection(ts.Dir)
			if err != nil {
				return Tool{}, err
			}
		}
		t.Dir = d
	default:
		return Tool{}, fmt.Errorf("unknown tool type %q", ts.Type)
	}

	if t.Colored && t.Kind != ToolObject {
		return Tool{}, fmt.Errorf("only objects take a color")
	}
	if t.Kind != ToolObject && (t.IsSafe != nil || t.IsActive != nil) {
		return Tool{}, fmt.Errorf("only objects take is_safe or is_active")
	}
	return t, nil
}

// objectFlags checks the flags a tool seeds against its object kind. Glass is
// safe and dragons are active unless the spec says otherwise.
func objectFlags(t *Tool) error {
	switch t.Object {
	case levels.KindGlass:
		if t.IsActive != nil {
			return fmt.Errorf("glass does not take is_active")
		}
		if t.IsSafe == nil {
			t.IsSafe = boolPtr(true)
		}
	case levels.KindDragon:
		if t.IsSafe != nil {
			return fmt.Errorf("dragon does not take is_safe")
		}
		if t.IsActive == nil {
			t.IsActive = boolPtr(true)
		}
	default:
		if t.IsSafe != nil || t.IsActive != nil {
			return fmt.Errorf("%s does not take is_safe or is_active", t.Object)
		}
	}
	return nil
}
