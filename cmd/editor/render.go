package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/gardenpuzzle/editor"
	"github.com/milk9111/gardenpuzzle/hazard"
	"github.com/milk9111/gardenpuzzle/levels"
	"github.com/milk9111/gardenpuzzle/prefabs"
	"golang.org/x/image/colornames"
)

const baseCellSize = 36

var tileColors = map[levels.Tile]color.Color{
	levels.TileEmpty:       color.RGBA{0xf5, 0xde, 0xb3, 0xff},
	levels.TileNone:        color.RGBA{24, 24, 28, 255},
	levels.TileFlower:      colornames.Palevioletred,
	levels.TileArrow:       colornames.Lightsteelblue,
	levels.TileWarp:        colornames.Lavender,
	levels.TileGlass:       colornames.Lightcyan,
	levels.TileSpring:      colornames.Yellowgreen,
	levels.TileSwitch:      colornames.Khaki,
	levels.TileMovingFloor: colornames.Sandybrown,
	levels.TileDragon:      colornames.Dimgray,
	levels.TileFireButton:  colornames.Silver,
}

// colorFor resolves a palette hex or a named color. Unknown names fall back
// to magenta so they are easy to spot.
func colorFor(name string) color.Color {
	if c, err := prefabs.ParseHexColor(name); err == nil {
		return c.Color
	}
	if c, ok := colornames.Map[name]; ok {
		return c
	}
	return colornames.Magenta
}

func withAlpha(c color.Color, a uint8) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: a}
}

// grid maps between screen pixels and level cells.
type grid struct {
	originX, originY int
	cell             int
}

func (g grid) cellAt(mx, my, cols, rows int) (int, int, bool) {
	if mx < g.originX || my < g.originY {
		return 0, 0, false
	}
	x := (mx - g.originX) / g.cell
	y := (my - g.originY) / g.cell
	if x >= cols || y >= rows {
		return 0, 0, false
	}
	return x, y, true
}

func (g grid) rect(x, y int) (float32, float32, float32) {
	return float32(g.originX + x*g.cell), float32(g.originY + y*g.cell), float32(g.cell)
}

func (g grid) center(x, y int) (float32, float32) {
	px, py, s := g.rect(x, y)
	return px + s/2, py + s/2
}

func drawLevel(screen *ebiten.Image, snap editor.Snapshot, g grid) {
	lvl := snap.Level
	for y := 0; y < lvl.Rows; y++ {
		for x := 0; x < lvl.Cols; x++ {
			px, py, s := g.rect(x, y)
			vector.FillRect(screen, px, py, s, s, tileColors[lvl.TileAt(x, y)], false)
			vector.StrokeRect(screen, px, py, s, s, 1, color.RGBA{90, 80, 60, 255}, false)
			if lvl.TileAt(x, y) == levels.TileSpring {
				cx, cy := g.center(x, y)
				vector.StrokeCircle(screen, cx, cy, s/4, 2, colornames.Darkgreen, true)
			}
			if lvl.TileAt(x, y) == levels.TileMovingFloor {
				vector.StrokeLine(screen, px+4, py+s/2, px+s-4, py+s/2, 2, colornames.Saddlebrown, false)
			}
		}
	}

	for _, c := range snap.Hazards {
		px, py, s := g.rect(c.X, c.Y)
		fire := colorFor(c.Color)
		vector.FillRect(screen, px, py, s, s, withAlpha(fire, 72), false)
		vector.StrokeRect(screen, px, py, s, s, 1, withAlpha(fire, 200), false)
		if c.IsTip {
			cx, cy := g.center(c.X, c.Y)
			vector.FillCircle(screen, cx, cy, s/8, withAlpha(fire, 220), true)
		}
	}

	for _, o := range lvl.Objects {
		drawObject(screen, o, g)
	}
	for _, it := range lvl.Items {
		cx, cy := g.center(it.X, it.Y)
		_, _, s := g.rect(it.X, it.Y)
		vector.FillCircle(screen, cx, cy, s/5, colornames.Deepskyblue, true)
	}
	for _, ch := range lvl.Characters {
		cx, cy := g.center(ch.X, ch.Y)
		_, _, s := g.rect(ch.X, ch.Y)
		vector.FillCircle(screen, cx, cy, s/3, colornames.Orange, true)
		drawFacing(screen, cx, cy, s/3, ch.Dir, colornames.Black)
	}
}

func drawObject(screen *ebiten.Image, o levels.Object, g grid) {
	px, py, s := g.rect(o.X, o.Y)
	cx, cy := g.center(o.X, o.Y)
	switch o.Kind {
	case levels.KindArrow:
		drawFacing(screen, cx, cy, s/3, o.Dir, colornames.Navy)
	case levels.KindWarp:
		vector.StrokeCircle(screen, cx, cy, s/3, 3, colorFor(o.Color), true)
	case levels.KindGlass:
		edge := colornames.Steelblue
		if o.IsSafe != nil && !*o.IsSafe {
			edge = colornames.Firebrick
			vector.StrokeLine(screen, px+4, py+4, px+s-4, py+s-4, 2, edge, true)
			vector.StrokeLine(screen, px+s-4, py+4, px+4, py+s-4, 2, edge, true)
		}
		vector.StrokeRect(screen, px+3, py+3, s-6, s-6, 2, edge, false)
	case levels.KindSwitch:
		vector.FillRect(screen, px+s/4, py+s/4, s/2, s/2, colornames.Goldenrod, false)
	case levels.KindDragon:
		body := colorFor(o.Color)
		if o.Color == "" {
			body = colorFor(hazard.DefaultColor)
		}
		if !o.Active() {
			body = withAlpha(body, 90)
		}
		vector.FillRect(screen, px+4, py+4, s-8, s-8, body, false)
		drawFacing(screen, cx, cy, s/2-2, o.Dir, colornames.White)
	case levels.KindFireButton:
		vector.FillCircle(screen, cx, cy, s/3, colorFor(o.Color), true)
		vector.StrokeCircle(screen, cx, cy, s/3, 2, colornames.Black, true)
	}
}

// drawFacing draws a line from the center toward d.
func drawFacing(screen *ebiten.Image, cx, cy, length float32, d levels.Direction, c color.Color) {
	dx, dy := d.Vector()
	vector.StrokeLine(screen, cx, cy, cx+float32(dx)*length, cy+float32(dy)*length, 3, c, true)
}

func drawLines(screen *ebiten.Image, lines []string, x, y int) {
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x, y+i*16)
	}
}
