package levels

import "fmt"

// Document is the serialized form of a level consumed by the game. Field
// order matches the order keys are written out.
type Document struct {
	Map        [][]int        `json:"map"`
	Objects    []ObjectRecord `json:"objects"`
	Items      []ItemRecord   `json:"items"`
	Characters []string       `json:"characters"`
}

type ObjectRecord struct {
	Type     string `json:"type"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Dir      string `json:"dir"`
	IsSafe   *bool  `json:"isSafe,omitempty"`
	IsActive *bool  `json:"isActive,omitempty"`
	Color    string `json:"color,omitempty"`
}

type ItemRecord struct {
	Type string `json:"type"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
}

// ToDocument snapshots the level. Directions are written by name and the
// roster becomes the character list; map-placed Character markers are not
// part of the document.
func (l *Level) ToDocument() Document {
	c := l.Clone()
	doc := Document{
		Map:        make([][]int, len(c.Map)),
		Objects:    make([]ObjectRecord, 0, len(c.Objects)),
		Items:      make([]ItemRecord, 0, len(c.Items)),
		Characters: make([]string, 0, len(c.Roster)),
	}
	for y, row := range c.Map {
		r := make([]int, len(row))
		for x, t := range row {
			r[x] = int(t)
		}
		doc.Map[y] = r
	}
	for _, o := range c.Objects {
		doc.Objects = append(doc.Objects, ObjectRecord{
			Type:     string(o.Kind),
			X:        o.X,
			Y:        o.Y,
			Dir:      o.Dir.String(),
			IsSafe:   o.IsSafe,
			IsActive: o.IsActive,
			Color:    o.Color,
		})
	}
	for _, it := range c.Items {
		doc.Items = append(doc.Items, ItemRecord{Type: string(it.Kind), X: it.X, Y: it.Y})
	}
	for _, d := range c.Roster {
		doc.Characters = append(doc.Characters, d.String())
	}
	return doc
}

// FromDocument rebuilds an editable level from a document. Map markers are
// not stored in documents, so the result has none. Fire is not checked here;
// editor.OpenLevel rejects items under a dragon's ray.
func FromDocument(doc Document) (*Level, error) {
	rows := len(doc.Map)
	if rows == 0 {
		return nil, fmt.Errorf("levels: document has an empty map")
	}
	cols := len(doc.Map[0])
	if !ValidSize(cols, rows) {
		return nil, fmt.Errorf("levels: invalid level dimensions: %dx%d", cols, rows)
	}

	l := New(cols, rows)
	l.Roster = l.Roster[:0]
	for y, row := range doc.Map {
		if len(row) != cols {
			return nil, fmt.Errorf("levels: row %d has %d cells, want %d", y, len(row), cols)
		}
		for x, v := range row {
			t := Tile(v)
			if !t.Valid() {
				return nil, fmt.Errorf("levels: unknown tile %d at (%d,%d)", v, x, y)
			}
			l.Map[y][x] = t
		}
	}

	colors := make(map[ObjectKind]map[string]bool)
	for i, rec := range doc.Objects {
		kind := ObjectKind(rec.Type)
		want, ok := kind.Tile()
		if !ok {
			return nil, fmt.Errorf("levels: object %d: unknown type %q", i, rec.Type)
		}
		if !l.InBounds(rec.X, rec.Y) {
			return nil, fmt.Errorf("levels: object %d: (%d,%d) is outside the grid", i, rec.X, rec.Y)
		}
		if got := l.Map[rec.Y][rec.X]; got != want {
			return nil, fmt.Errorf("levels: object %d: %s sits on %s, want %s", i, kind, got, want)
		}
		if _, taken := l.ObjectAt(rec.X, rec.Y); taken {
			return nil, fmt.Errorf("levels: object %d: cell (%d,%d) already has an object", i, rec.X, rec.Y)
		}
		dir := kind.DefaultDirection()
		if rec.Dir != "" {
			d, err := ParseDirection(rec.Dir)
			if err != nil {
				return nil, fmt.Errorf("levels: object %d: %w", i, err)
			}
			dir = d
		}
		if kind.Colored() && rec.Color == "" {
			return nil, fmt.Errorf("levels: object %d: %s needs a color", i, kind)
		}
		if kind.UniqueColor() {
			if colors[kind] == nil {
				colors[kind] = make(map[string]bool)
			}
			if colors[kind][rec.Color] {
				return nil, fmt.Errorf("levels: object %d: color %s is already used by another %s", i, rec.Color, kind)
			}
			colors[kind][rec.Color] = true
		}
		obj := Object{Kind: kind, X: rec.X, Y: rec.Y, Dir: dir, IsSafe: rec.IsSafe, IsActive: rec.IsActive}
		if kind.Colored() {
			obj.Color = rec.Color
		}
		if kind == KindGlass && obj.IsSafe == nil {
			obj.IsSafe = boolPtr(true)
		}
		if kind == KindDragon && obj.IsActive == nil {
			obj.IsActive = boolPtr(true)
		}
		l.Objects = append(l.Objects, obj)
	}

	for i, rec := range doc.Items {
		if ItemKind(rec.Type) != ItemCan {
			return nil, fmt.Errorf("levels: item %d: unknown type %q", i, rec.Type)
		}
		if !l.InBounds(rec.X, rec.Y) {
			return nil, fmt.Errorf("levels: item %d: (%d,%d) is outside the grid", i, rec.X, rec.Y)
		}
		if t := l.Map[rec.Y][rec.X]; !t.CanHoldItem() {
			return nil, fmt.Errorf("levels: item %d: a can cannot rest on %s at (%d,%d)", i, t, rec.X, rec.Y)
		}
		if _, taken := l.ItemAt(rec.X, rec.Y); taken {
			return nil, fmt.Errorf("levels: item %d: cell (%d,%d) already has an item", i, rec.X, rec.Y)
		}
		l.Items = append(l.Items, Item{Kind: ItemCan, X: rec.X, Y: rec.Y})
	}

	for i, name := range doc.Characters {
		d, err := ParseDirection(name)
		if err != nil {
			return nil, fmt.Errorf("levels: character %d: %w", i, err)
		}
		l.Roster = append(l.Roster, d)
	}
	return l, nil
}

func boolPtr(b bool) *bool {
	return &b
}
