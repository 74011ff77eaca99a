package editor

import "github.com/milk9111/gardenpuzzle/levels"

// ToolKind says what a tool writes into the level.
type ToolKind int

const (
	// ToolTile paints a bare tile (floor, hole, flower, spring, moving floor).
	ToolTile ToolKind = iota
	// ToolObject paints a tile together with its object.
	ToolObject
	// ToolItem drops a can.
	ToolItem
	// ToolCharacter drops a spawn marker.
	ToolCharacter
)

func (k ToolKind) String() string {
	switch k {
	case ToolTile:
		return "tile"
	case ToolObject:
		return "obj"
	case ToolItem:
		return "item"
	case ToolCharacter:
		return "char"
	}
	return "unknown"
}

// Tool is one entry of the tool palette.
type Tool struct {
	Category string
	Label    string
	Kind     ToolKind
	Tile     levels.Tile
	Object   levels.ObjectKind
	Item     levels.ItemKind
	// Colored objects take the selected palette color.
	Colored bool
	// IsSafe and IsActive seed the glass and dragon flags.
	IsSafe   *bool
	IsActive *bool
	// Dir is the facing of a character marker.
	Dir levels.Direction
}

// Terrain reports whether the tool overwrites the cell's tile.
func (t Tool) Terrain() bool {
	return t.Kind == ToolTile || t.Kind == ToolObject
}

// DefaultPalette is the fixed set of colors for warps, dragons and fire buttons.
var DefaultPalette = []string{
	"#ff4d4d", "#4d4dff", "#2ecc71", "#f1c40f",
	"#e67e22", "#9b59b6", "#1abc9c", "#e91e63",
}

func boolPtr(b bool) *bool { return &b }

// DefaultTools returns the built-in tool palette.
func DefaultTools() []Tool {
	return []Tool{
		{Category: "terrain", Label: "Floor", Kind: ToolTile, Tile: levels.TileEmpty},
		{Category: "terrain", Label: "Hole", Kind: ToolTile, Tile: levels.TileNone},
		{Category: "terrain", Label: "Flower (goal)", Kind: ToolTile, Tile: levels.TileFlower},

		{Category: "object", Label: "Arrow floor", Kind: ToolObject, Tile: levels.TileArrow, Object: levels.KindArrow},
		{Category: "object", Label: "Warp", Kind: ToolObject, Tile: levels.TileWarp, Object: levels.KindWarp, Colored: true},
		{Category: "object", Label: "Glass (safe)", Kind: ToolObject, Tile: levels.TileGlass, Object: levels.KindGlass, IsSafe: boolPtr(true)},
		{Category: "object", Label: "Glass (broken)", Kind: ToolObject, Tile: levels.TileGlass, Object: levels.KindGlass, IsSafe: boolPtr(false)},
		{Category: "object", Label: "Spring", Kind: ToolTile, Tile: levels.TileSpring},
		{Category: "object", Label: "Switch", Kind: ToolObject, Tile: levels.TileSwitch, Object: levels.KindSwitch},
		{Category: "object", Label: "Moving floor", Kind: ToolTile, Tile: levels.TileMovingFloor},
		{Category: "object", Label: "Dragon", Kind: ToolObject, Tile: levels.TileDragon, Object: levels.KindDragon, Colored: true, IsActive: boolPtr(true)},
		{Category: "object", Label: "Fire button", Kind: ToolObject, Tile: levels.TileFireButton, Object: levels.KindFireButton, Colored: true},

		{Category: "item", Label: "Watering can", Kind: ToolItem, Item: levels.ItemCan},

		{Category: "char", Label: "Spawn (up)", Kind: ToolCharacter, Dir: levels.DirUp},
		{Category: "char", Label: "Spawn (right)", Kind: ToolCharacter, Dir: levels.DirRight},
		{Category: "char", Label: "Spawn (down)", Kind: ToolCharacter, Dir: levels.DirDown},
		{Category: "char", Label: "Spawn (left)", Kind: ToolCharacter, Dir: levels.DirLeft},
	}
}
