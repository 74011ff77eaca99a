package levels

import "fmt"

// Tile is the terrain or feature type of one grid cell. Tiles are serialized
// as their integer value.
type Tile int

const (
	TileEmpty Tile = iota
	TileNone
	TileFlower
	TileArrow
	TileWarp
	TileGlass
	TileSpring
	TileSwitch
	TileMovingFloor
	TileDragon
	TileFireButton
)

var tileNames = [...]string{
	TileEmpty:       "EMPTY",
	TileNone:        "NONE",
	TileFlower:      "FLOWER",
	TileArrow:       "ARROW",
	TileWarp:        "WARP",
	TileGlass:       "GLASS",
	TileSpring:      "SPRING",
	TileSwitch:      "SWITCH",
	TileMovingFloor: "MOVING_FLOOR",
	TileDragon:      "DRAGON",
	TileFireButton:  "FIRE_BUTTON",
}

func (t Tile) Valid() bool {
	return t >= TileEmpty && t <= TileFireButton
}

func (t Tile) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Tile(%d)", int(t))
	}
	return tileNames[t]
}

// ParseTile resolves a tile by its upper-case name, e.g. "MOVING_FLOOR".
func ParseTile(name string) (Tile, error) {
	for i, n := range tileNames {
		if n == name {
			return Tile(i), nil
		}
	}
	return TileEmpty, fmt.Errorf("levels: unknown tile %q", name)
}

// CanHoldItem reports whether a can may rest on the tile.
func (t Tile) CanHoldItem() bool {
	switch t {
	case TileEmpty, TileArrow, TileGlass, TileMovingFloor:
		return true
	}
	return false
}

// CanHoldCharacter reports whether a spawn marker may stand on the tile.
func (t Tile) CanHoldCharacter() bool {
	switch t {
	case TileNone, TileFlower, TileSwitch, TileDragon, TileFireButton:
		return false
	}
	return t.Valid()
}

// Standable is false for holes and flowers; items and characters are cleared
// from such cells whenever the tile is written.
func (t Tile) Standable() bool {
	return t != TileNone && t != TileFlower
}

// BlocksFire reports whether the tile stops a dragon's fire ray.
func (t Tile) BlocksFire() bool {
	switch t {
	case TileWarp, TileSpring, TileDragon, TileFireButton:
		return true
	}
	return false
}
