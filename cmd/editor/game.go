package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"log"
	"os"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/gardenpuzzle/editor"
	"github.com/milk9111/gardenpuzzle/export"
	"github.com/milk9111/gardenpuzzle/levels"
	"github.com/milk9111/gardenpuzzle/prefabs"
	"github.com/milk9111/gardenpuzzle/rules"
	"github.com/milk9111/gardenpuzzle/validate"
)

const lintTimeout = 100 * time.Millisecond

// Game hosts the placement engine inside an ebiten window.
type Game struct {
	ed     *editor.Editor
	ui     *ebitenui.UI
	panel  *Panel
	face   text.Face
	format export.Format
	grid   grid

	linter       *rules.Linter
	rulesName    string
	activeRules  string
	watcher      *prefabs.Watcher
	clipboardOK  bool
	outPath      string
	warnings     []string
	status       string
	needsRefresh bool

	painting   bool
	lastPaintX int
	lastPaintY int
}

type gameConfig struct {
	Level     *levels.Level
	Format    export.Format
	Scale     int
	RulesName string
	OutPath   string
	Watcher   *prefabs.Watcher
	Clipboard bool
}

func NewGame(cfg gameConfig) (*Game, error) {
	face, err := loadFontFace(14)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	scale := cfg.Scale
	if scale < 1 {
		scale = 1
	}

	g := &Game{
		ed:          editor.New(cfg.Level),
		face:        face,
		format:      cfg.Format,
		grid:        grid{originX: leftPanelWidth + 16, originY: 16, cell: baseCellSize * scale},
		rulesName:   cfg.RulesName,
		watcher:     cfg.Watcher,
		clipboardOK: cfg.Clipboard,
		outPath:     cfg.OutPath,
	}
	g.reloadSpec()
	return g, nil
}

// reloadSpec applies editor.yaml and the lint script. On failure the current
// palette and linter are kept.
func (g *Game) reloadSpec() {
	rulesName := g.rulesName
	spec, err := prefabs.LoadEditorSpec()
	if err != nil {
		log.Printf("editor spec: %v; using built-in tools", err)
	} else {
		tools, colors, err := editor.ToolsFromSpec(spec)
		if err != nil {
			log.Printf("editor spec: %v; using built-in tools", err)
		} else {
			g.ed.SetPalette(tools, colors)
			log.Printf("Loaded editor spec %q: %d tools, %d colors", spec.Name, len(tools), len(colors))
		}
		if rulesName == "" {
			rulesName = spec.Rules
		}
	}
	g.activeRules = rulesName
	g.reloadRules(rulesName)
	g.rebuildUI()
}

func (g *Game) reloadRules(name string) {
	linter, err := rules.Load(name)
	if err != nil {
		log.Printf("lint rules: %v", err)
		return
	}
	g.linter = linter
	g.needsRefresh = true
}

func (g *Game) rebuildUI() {
	initial := 0
	for i, t := range g.ed.Tools() {
		if t.Label == g.ed.Tool().Label {
			initial = i
			break
		}
	}
	g.ui, g.panel = BuildEditorUI(g.face, g.ed.Tools(), g.ed.Palette(), initial, UIHandlers{
		OnTool: func(idx int) {
			g.ed.SelectToolIndex(idx)
			g.needsRefresh = true
		},
		OnColor: func(hex string) {
			g.ed.SelectColor(hex)
			g.needsRefresh = true
		},
		OnResize: func(dc, dr int) {
			if g.ed.ResizeMap(dc, dr) {
				g.needsRefresh = true
			}
		},
		OnRotateLast: g.rotateLast,
		OnAddChar: func() {
			g.ed.AddRosterEntry()
			g.needsRefresh = true
		},
		OnRemoveChar: func() {
			if g.ed.RemoveRosterEntry(len(g.ed.Level().Roster) - 1) {
				g.needsRefresh = true
			}
		},
		OnRotateRoster: func(idx int) {
			roster := g.ed.Level().Roster
			if idx < len(roster) && g.ed.SetRosterEntry(idx, roster[idx].Rotate()) {
				g.needsRefresh = true
			}
		},
		OnExport:       g.export,
		OnToggleFormat: g.toggleFormat,
	})
	g.panel.SetFormat(g.format.String())
	g.needsRefresh = true
}

func (g *Game) rotateLast() {
	if _, _, ok := g.ed.LastCell(); !ok {
		g.status = "Touch something first, then rotate it"
		return
	}
	if g.ed.RotateLast() {
		g.needsRefresh = true
	}
}

func (g *Game) toggleFormat() {
	if g.format == export.FormatData {
		g.format = export.FormatCode
	} else {
		g.format = export.FormatData
	}
	g.panel.SetFormat(g.format.String())
}

// export validates and renders the level, then hands the text to the
// clipboard and, when configured, to the output file.
func (g *Game) export() {
	out, err := export.Generate(g.ed.Level(), g.format)
	if err != nil {
		var re *validate.RuleError
		if errors.As(err, &re) {
			g.status = "Cannot export: " + re.Error()
		} else {
			g.status = err.Error()
		}
		log.Printf("export rejected: %v", err)
		return
	}

	var copied, saved bool
	if g.clipboardOK {
		copyToClipboard(out)
		copied = true
	}
	if g.outPath != "" {
		if err := os.WriteFile(g.outPath, []byte(out+"\n"), 0o644); err != nil {
			log.Printf("write %s: %v", g.outPath, err)
		} else {
			saved = true
		}
	}
	if !copied && !saved {
		fmt.Println(out)
	}

	switch {
	case copied && saved:
		g.status = fmt.Sprintf("Copied to clipboard and saved %s", g.outPath)
	case copied:
		g.status = "Copied to clipboard"
	case saved:
		g.status = "Saved " + g.outPath
	default:
		g.status = "Written to stdout"
	}
	log.Printf("exported %s level (%s)", g.format, g.status)
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	changes := g.watcher.Drain()
	if len(changes) == 0 {
		return
	}
	for _, c := range changes {
		log.Printf("prefab changed: %s", c.Path)
	}
	// script edits only need a new linter; the tool panel stays as is
	if prefabs.ScriptsOnly(changes) {
		g.reloadRules(g.activeRules)
	} else {
		g.reloadSpec()
	}
	select {
	case err := <-g.watcher.Errors:
		log.Printf("watch: %v", err)
	default:
	}
}

func (g *Game) refresh() {
	g.needsRefresh = false
	g.panel.Colors.Refresh(g.ed.Color(), g.ed.AvailableColors())
	g.panel.Roster.Refresh(g.ed.Level().Roster)
	if g.linter == nil {
		g.warnings = nil
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), lintTimeout)
	defer cancel()
	warnings, err := g.linter.Lint(ctx, g.ed.Level())
	if err != nil {
		log.Printf("lint: %v", err)
		return
	}
	g.warnings = warnings
}

func (g *Game) Update() error {
	g.drainWatcher()
	g.ui.Update()
	g.handleKeys()
	g.handleMouse()
	if g.needsRefresh {
		g.refresh()
	}
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.rotateLast()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.export()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.toggleFormat()
	}
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	lvl := g.ed.Level()
	x, y, inGrid := g.grid.cellAt(mx, my, lvl.Cols, lvl.Rows)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) && inGrid {
		if g.ed.RotateObjectAt(x, y) {
			g.needsRefresh = true
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && mx >= leftPanelWidth {
		g.painting = true
		g.lastPaintX, g.lastPaintY = -1, -1
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.painting = false
		return
	}
	if !g.painting || !inGrid || (x == g.lastPaintX && y == g.lastPaintY) {
		return
	}
	g.lastPaintX, g.lastPaintY = x, y
	if g.ed.PlaceAt(x, y) {
		g.needsRefresh = true
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{28, 30, 36, 255})
	snap := g.ed.Snapshot()
	drawLevel(screen, snap, g.grid)
	g.ui.Draw(screen)

	lvl := snap.Level
	lines := []string{
		fmt.Sprintf("Size: %dx%d   Tool: %s   Color: %s   Format: %s", lvl.Cols, lvl.Rows, g.ed.Tool().Label, g.ed.Color(), g.format),
		fmt.Sprintf("Flowers: %d  Cans: %d  Switches: %d  Buttons: %d", snap.Stats.Flowers, snap.Stats.Cans, snap.Stats.Switches, snap.Stats.Buttons),
		fmt.Sprintf("Cans: %s", snap.Stats.CanStatus()),
		fmt.Sprintf("Chars: %d  %s", snap.Stats.Roster, snap.Stats.CharacterStatus()),
	}
	for _, w := range g.warnings {
		lines = append(lines, "! "+w)
	}
	if g.status != "" {
		lines = append(lines, g.status)
	}
	lines = append(lines, "L-drag: place  R-click: rotate  R: rotate last  E: export  Tab: format")
	drawLines(screen, lines, g.grid.originX, g.grid.originY+lvl.Rows*g.grid.cell+12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
