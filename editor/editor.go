// Package editor implements the placement rules of the level editor. Every
// operation runs to completion synchronously; requests that would break a
// level invariant leave the level untouched and report false.
package editor

import (
	"slices"

	"github.com/milk9111/gardenpuzzle/hazard"
	"github.com/milk9111/gardenpuzzle/levels"
	"github.com/milk9111/gardenpuzzle/validate"
)

type Editor struct {
	level   *levels.Level
	tools   []Tool
	palette []string
	tool    Tool
	color   string

	// last cell touched by PlaceAt, used by RotateLast
	lastX, lastY int
	hasLast      bool
}

// Snapshot is the read-only view handed to the renderer each frame.
type Snapshot struct {
	Level   *levels.Level
	Hazards []hazard.Cell
	Stats   validate.Stats
}

// New creates an editor for lvl, or for a fresh default-sized level when lvl
// is nil. The first built-in tool and palette color are selected.
func New(lvl *levels.Level) *Editor {
	if lvl == nil {
		lvl = levels.New(levels.DefaultSize, levels.DefaultSize)
	}
	e := &Editor{level: lvl}
	e.SetPalette(DefaultTools(), DefaultPalette)
	return e
}

// SetPalette replaces the tool and color palettes. The current tool and color
// are kept when they are still offered, otherwise the first entries are
// selected.
func (e *Editor) SetPalette(tools []Tool, colors []string) {
	if len(tools) == 0 {
		tools = DefaultTools()
	}
	if len(colors) == 0 {
		colors = DefaultPalette
	}
	e.tools = slices.Clone(tools)
	e.palette = slices.Clone(colors)

	keep := false
	for _, t := range e.tools {
		if t.Label == e.tool.Label && t.Kind == e.tool.Kind {
			e.tool = t
			keep = true
			break
		}
	}
	if !keep {
		e.tool = e.tools[0]
	}
	if !slices.Contains(e.palette, e.color) {
		e.color = e.palette[0]
	}
}

// Level returns the live level. Callers must treat it as read-only; all
// mutation goes through the editor.
func (e *Editor) Level() *levels.Level { return e.level }

// Load replaces the level being edited.
func (e *Editor) Load(lvl *levels.Level) {
	if lvl == nil {
		return
	}
	e.level = lvl
	e.hasLast = false
}

func (e *Editor) Tools() []Tool     { return e.tools }
func (e *Editor) Palette() []string { return e.palette }
func (e *Editor) Tool() Tool        { return e.tool }
func (e *Editor) Color() string     { return e.color }

func (e *Editor) SelectTool(t Tool) {
	e.tool = t
}

// SelectToolIndex selects the i-th palette tool.
func (e *Editor) SelectToolIndex(i int) bool {
	if i < 0 || i >= len(e.tools) {
		return false
	}
	e.tool = e.tools[i]
	return true
}

// SelectColor selects a palette color. Colors outside the palette are ignored.
func (e *Editor) SelectColor(c string) bool {
	if !slices.Contains(e.palette, c) {
		return false
	}
	e.color = c
	return true
}

// AvailableColors returns the palette colors the selected tool may still use.
// Dragons and fire buttons lose colors already taken by their kind; warps and
// uncolored tools are not restricted.
func (e *Editor) AvailableColors() []string {
	if !e.tool.Colored {
		return nil
	}
	if !e.tool.Object.UniqueColor() {
		return slices.Clone(e.palette)
	}
	out := make([]string, 0, len(e.palette))
	for _, c := range e.palette {
		if !e.colorTaken(e.tool.Object, c, -1, -1) {
			out = append(out, c)
		}
	}
	return out
}

// colorTaken reports whether an object of kind with color c exists anywhere
// except (skipX, skipY).
func (e *Editor) colorTaken(kind levels.ObjectKind, c string, skipX, skipY int) bool {
	for _, o := range e.level.Objects {
		if o.Kind == kind && o.Color == c && (o.X != skipX || o.Y != skipY) {
			return true
		}
	}
	return false
}

// PlaceAt applies the selected tool to (x, y).
func (e *Editor) PlaceAt(x, y int) bool {
	if !e.level.InBounds(x, y) {
		return false
	}
	e.lastX, e.lastY, e.hasLast = x, y, true

	t := e.tool
	switch t.Kind {
	case ToolTile:
		e.RemoveObjectAt(x, y)
		e.level.SetTile(x, y, t.Tile)
		e.cleanUpAt(x, y)
		return true

	case ToolObject:
		tile, ok := t.Object.Tile()
		if !ok {
			return false
		}
		// the object at (x, y) is about to be replaced, so it does not count
		if t.Colored && t.Object.UniqueColor() && e.colorTaken(t.Object, e.color, x, y) {
			return false
		}
		e.RemoveObjectAt(x, y)
		e.level.SetTile(x, y, tile)
		obj := levels.Object{
			Kind: t.Object,
			X:    x,
			Y:    y,
			Dir:  t.Object.DefaultDirection(),
		}
		if t.IsSafe != nil {
			v := *t.IsSafe
			obj.IsSafe = &v
		}
		if t.IsActive != nil {
			v := *t.IsActive
			obj.IsActive = &v
		}
		if t.Colored {
			obj.Color = e.color
		}
		e.level.Objects = append(e.level.Objects, obj)
		e.cleanUpAt(x, y)
		return true

	case ToolItem:
		if !e.level.TileAt(x, y).CanHoldItem() || hazard.At(e.level, x, y) {
			return false
		}
		e.level.RemoveItems(at[levels.Item](x, y))
		kind := t.Item
		if kind == "" {
			kind = levels.ItemCan
		}
		e.level.Items = append(e.level.Items, levels.Item{Kind: kind, X: x, Y: y})
		return true

	case ToolCharacter:
		if !e.level.TileAt(x, y).CanHoldCharacter() || hazard.At(e.level, x, y) {
			return false
		}
		e.level.RemoveCharacters(at[levels.Character](x, y))
		e.level.Characters = append(e.level.Characters, levels.Character{X: x, Y: y, Dir: t.Dir})
		return true
	}
	return false
}

// RemoveObjectAt clears the object, item and character at (x, y). The tile
// is left as is.
func (e *Editor) RemoveObjectAt(x, y int) {
	e.level.RemoveObjects(at[levels.Object](x, y))
	e.level.RemoveItems(at[levels.Item](x, y))
	e.level.RemoveCharacters(at[levels.Character](x, y))
}

// cleanUpAt drops the item and character on a cell that can no longer be
// stood on.
func (e *Editor) cleanUpAt(x, y int) {
	if e.level.TileAt(x, y).Standable() {
		return
	}
	e.level.RemoveItems(at[levels.Item](x, y))
	e.level.RemoveCharacters(at[levels.Character](x, y))
}

// RotateObjectAt turns the object at (x, y) a quarter turn clockwise, or the
// character marker when the cell has no object.
func (e *Editor) RotateObjectAt(x, y int) bool {
	if !e.level.InBounds(x, y) {
		return false
	}
	if o, ok := e.level.ObjectAt(x, y); ok {
		o.Dir = o.Dir.Rotate()
		return true
	}
	if c, ok := e.level.CharacterAt(x, y); ok {
		c.Dir = c.Dir.Rotate()
		return true
	}
	return false
}

// RotateLast rotates whatever sits on the most recently painted cell.
func (e *Editor) RotateLast() bool {
	if !e.hasLast {
		return false
	}
	return e.RotateObjectAt(e.lastX, e.lastY)
}

// LastCell returns the most recently painted cell.
func (e *Editor) LastCell() (x, y int, ok bool) {
	return e.lastX, e.lastY, e.hasLast
}

// ResizeMap grows or shrinks the grid by the given deltas. Growth appends
// empty floor on the right and bottom; shrinking truncates and purges every
// entity left outside the grid.
func (e *Editor) ResizeMap(dCols, dRows int) bool {
	cols := e.level.Cols + dCols
	rows := e.level.Rows + dRows
	if !levels.ValidSize(cols, rows) {
		return false
	}
	if dCols == 0 && dRows == 0 {
		return false
	}

	m := e.level.Map
	if len(m) > rows {
		m = m[:rows]
	}
	for y := range m {
		row := m[y]
		if len(row) > cols {
			row = row[:cols]
		}
		for len(row) < cols {
			row = append(row, levels.TileEmpty)
		}
		m[y] = row
	}
	for len(m) < rows {
		m = append(m, make([]levels.Tile, cols))
	}
	e.level.Map = m
	e.level.Cols = cols
	e.level.Rows = rows

	e.level.RemoveObjects(func(o levels.Object) bool { return !e.level.InBounds(o.X, o.Y) })
	e.level.RemoveItems(func(i levels.Item) bool { return !e.level.InBounds(i.X, i.Y) })
	e.level.RemoveCharacters(func(c levels.Character) bool { return !e.level.InBounds(c.X, c.Y) })
	if e.hasLast && !e.level.InBounds(e.lastX, e.lastY) {
		e.hasLast = false
	}
	return true
}

// AddRosterEntry appends a player facing up.
func (e *Editor) AddRosterEntry() {
	e.level.Roster = append(e.level.Roster, levels.DirUp)
}

func (e *Editor) SetRosterEntry(i int, d levels.Direction) bool {
	if i < 0 || i >= len(e.level.Roster) || !d.Valid() {
		return false
	}
	e.level.Roster[i] = d
	return true
}

func (e *Editor) RemoveRosterEntry(i int) bool {
	if i < 0 || i >= len(e.level.Roster) {
		return false
	}
	e.level.Roster = slices.Delete(e.level.Roster, i, i+1)
	return true
}

// Stats recomputes the validator counts for the current level.
func (e *Editor) Stats() validate.Stats {
	return validate.Compute(e.level)
}

// Snapshot copies the level and projects its hazards for one frame.
func (e *Editor) Snapshot() Snapshot {
	return Snapshot{
		Level:   e.level.Clone(),
		Hazards: hazard.Project(e.level),
		Stats:   validate.Compute(e.level),
	}
}

type positioned interface {
	At(x, y int) bool
}

// at builds a predicate matching entities on (x, y).
func at[T positioned](x, y int) func(T) bool {
	return func(v T) bool { return v.At(x, y) }
}
