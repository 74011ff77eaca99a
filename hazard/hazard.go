// Package hazard projects the fire cells breathed by active dragons.
package hazard

import "github.com/milk9111/gardenpuzzle/levels"

const (
	// Range is how many cells a dragon's fire reaches.
	Range = 3
	// DefaultColor is used for dragons placed without a palette color.
	DefaultColor = "red"
)

// Cell is one burning grid cell.
type Cell struct {
	X, Y   int
	Color  string
	DX, DY int
	// IsStart marks the cell adjacent to the dragon.
	IsStart bool
	// IsTip marks the cell at full range. A ray cut short never has one.
	IsTip bool
}

// Project walks every active dragon's ray and returns the cells on fire, in
// object order then distance order. A ray stops before leaving the grid or
// before a tile that blocks fire; the blocking cell is not burning.
//
// The result is rebuilt on every call.
func Project(lvl *levels.Level) []Cell {
	if lvl == nil {
		return nil
	}
	var cells []Cell
	for _, o := range lvl.Objects {
		if !o.Active() {
			continue
		}
		dx, dy := o.Dir.Vector()
		if dx == 0 && dy == 0 {
			continue
		}
		color := o.Color
		if color == "" {
			color = DefaultColor
		}
		for step := 1; step <= Range; step++ {
			tx := o.X + dx*step
			ty := o.Y + dy*step
			if !lvl.InBounds(tx, ty) {
				break
			}
			if lvl.Map[ty][tx].BlocksFire() {
				break
			}
			cells = append(cells, Cell{
				X:       tx,
				Y:       ty,
				Color:   color,
				DX:      dx,
				DY:      dy,
				IsStart: step == 1,
				IsTip:   step == Range,
			})
		}
	}
	return cells
}

// Contains reports whether (x, y) is burning.
func Contains(cells []Cell, x, y int) bool {
	for _, c := range cells {
		if c.X == x && c.Y == y {
			return true
		}
	}
	return false
}

// At reports whether (x, y) is on fire in the current level state.
func At(lvl *levels.Level, x, y int) bool {
	return Contains(Project(lvl), x, y)
}
