package levels

const (
	MinSize     = 5
	MaxSize     = 30
	DefaultSize = 10
)

// ObjectKind names the stateful entity bound to a non-plain tile.
type ObjectKind string

const (
	KindArrow      ObjectKind = "arrow"
	KindWarp       ObjectKind = "warp"
	KindGlass      ObjectKind = "glass"
	KindSwitch     ObjectKind = "switch"
	KindDragon     ObjectKind = "dragon"
	KindFireButton ObjectKind = "fire_button"
)

// ObjectKinds lists every kind in tool-palette order.
var ObjectKinds = []ObjectKind{KindArrow, KindWarp, KindGlass, KindSwitch, KindDragon, KindFireButton}

// Tile returns the tile an object of this kind is co-located with.
func (k ObjectKind) Tile() (Tile, bool) {
	switch k {
	case KindArrow:
		return TileArrow, true
	case KindWarp:
		return TileWarp, true
	case KindGlass:
		return TileGlass, true
	case KindSwitch:
		return TileSwitch, true
	case KindDragon:
		return TileDragon, true
	case KindFireButton:
		return TileFireButton, true
	}
	return TileEmpty, false
}

func (k ObjectKind) Valid() bool {
	_, ok := k.Tile()
	return ok
}

// Colored kinds carry a palette color and take part in pairing rules.
func (k ObjectKind) Colored() bool {
	return k == KindWarp || k == KindDragon || k == KindFireButton
}

// UniqueColor kinds allow at most one object per color. Warps come in pairs
// and are exempt.
func (k ObjectKind) UniqueColor() bool {
	return k == KindDragon || k == KindFireButton
}

// DefaultDirection is the facing a freshly placed object gets.
func (k ObjectKind) DefaultDirection() Direction {
	if k == KindArrow {
		return DirDown
	}
	return DirUp
}

type Object struct {
	Kind  ObjectKind
	X, Y  int
	Dir   Direction
	Color string
	// IsSafe is set for glass only.
	IsSafe *bool
	// IsActive is set for dragons only.
	IsActive *bool
}

func (o Object) At(x, y int) bool { return o.X == x && o.Y == y }

// Active reports whether a dragon is breathing fire.
func (o Object) Active() bool {
	return o.Kind == KindDragon && o.IsActive != nil && *o.IsActive
}

type ItemKind string

const ItemCan ItemKind = "can"

type Item struct {
	Kind ItemKind
	X, Y int
}

func (i Item) At(x, y int) bool { return i.X == x && i.Y == y }

// Character is a spawn marker drawn on the map. It is advisory only; the
// exported character list comes from the roster.
type Character struct {
	X, Y int
	Dir  Direction
}

func (c Character) At(x, y int) bool { return c.X == x && c.Y == y }

// Level is the editable state of one puzzle: the tile grid plus the entities
// placed on it and the roster of player start directions.
type Level struct {
	Cols, Rows int
	Map        [][]Tile
	Objects    []Object
	Items      []Item
	Characters []Character
	Roster     []Direction
}

// New creates a cols x rows level of empty floor with a single Up entry in
// the roster. Sizes are clamped to [MinSize, MaxSize].
func New(cols, rows int) *Level {
	cols = clampSize(cols)
	rows = clampSize(rows)
	m := make([][]Tile, rows)
	for y := range m {
		m[y] = make([]Tile, cols)
	}
	return &Level{
		Cols:   cols,
		Rows:   rows,
		Map:    m,
		Roster: []Direction{DirUp},
	}
}

func clampSize(n int) int {
	if n < MinSize {
		return MinSize
	}
	if n > MaxSize {
		return MaxSize
	}
	return n
}

// ValidSize reports whether cols x rows is an allowed grid size.
func ValidSize(cols, rows int) bool {
	return cols >= MinSize && cols <= MaxSize && rows >= MinSize && rows <= MaxSize
}

func (l *Level) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < l.Cols && y < l.Rows
}

// TileAt returns the tile at (x, y), or TileNone outside the grid.
func (l *Level) TileAt(x, y int) Tile {
	if !l.InBounds(x, y) {
		return TileNone
	}
	return l.Map[y][x]
}

func (l *Level) SetTile(x, y int, t Tile) {
	if l.InBounds(x, y) {
		l.Map[y][x] = t
	}
}

// ObjectAt returns a pointer into the object list so callers can mutate the
// object in place.
func (l *Level) ObjectAt(x, y int) (*Object, bool) {
	for i := range l.Objects {
		if l.Objects[i].At(x, y) {
			return &l.Objects[i], true
		}
	}
	return nil, false
}

func (l *Level) ItemAt(x, y int) (*Item, bool) {
	for i := range l.Items {
		if l.Items[i].At(x, y) {
			return &l.Items[i], true
		}
	}
	return nil, false
}

func (l *Level) CharacterAt(x, y int) (*Character, bool) {
	for i := range l.Characters {
		if l.Characters[i].At(x, y) {
			return &l.Characters[i], true
		}
	}
	return nil, false
}

// RemoveObjects drops every object matching pred, keeping the order of the rest.
func (l *Level) RemoveObjects(pred func(Object) bool) {
	l.Objects = removeWhere(l.Objects, pred)
}

func (l *Level) RemoveItems(pred func(Item) bool) {
	l.Items = removeWhere(l.Items, pred)
}

func (l *Level) RemoveCharacters(pred func(Character) bool) {
	l.Characters = removeWhere(l.Characters, pred)
}

func removeWhere[T any](in []T, pred func(T) bool) []T {
	out := in[:0]
	for _, v := range in {
		if !pred(v) {
			out = append(out, v)
		}
	}
	clear(in[len(out):])
	return out
}

// CountObjects returns how many objects are of the given kind.
func (l *Level) CountObjects(kind ObjectKind) int {
	n := 0
	for _, o := range l.Objects {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

// CountTiles returns how many grid cells hold t.
func (l *Level) CountTiles(t Tile) int {
	n := 0
	for _, row := range l.Map {
		for _, v := range row {
			if v == t {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy that shares no memory with l.
func (l *Level) Clone() *Level {
	out := &Level{Cols: l.Cols, Rows: l.Rows}
	out.Map = make([][]Tile, len(l.Map))
	for y, row := range l.Map {
		out.Map[y] = append([]Tile(nil), row...)
	}
	out.Objects = make([]Object, len(l.Objects))
	for i, o := range l.Objects {
		if o.IsSafe != nil {
			v := *o.IsSafe
			o.IsSafe = &v
		}
		if o.IsActive != nil {
			v := *o.IsActive
			o.IsActive = &v
		}
		out.Objects[i] = o
	}
	out.Items = append([]Item(nil), l.Items...)
	out.Characters = append([]Character(nil), l.Characters...)
	out.Roster = append([]Direction(nil), l.Roster...)
	return out
}
