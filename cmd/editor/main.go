package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gardenpuzzle/editor"
	"github.com/milk9111/gardenpuzzle/export"
	"github.com/milk9111/gardenpuzzle/levels"
	"github.com/milk9111/gardenpuzzle/prefabs"
)

func main() {
	levelName := flag.String("level", "", "Level to open: a .json path or an embedded level name (empty starts a new level)")
	formatName := flag.String("format", "data", "Export format: data or code")
	cols := flag.Int("cols", levels.DefaultSize, "Columns of a new level")
	rows := flag.Int("rows", levels.DefaultSize, "Rows of a new level")
	prefabDir := flag.String("prefabs", prefabs.Dir, "Directory checked for editor.yaml and scripts/ before the built-in copies")
	rulesName := flag.String("rules", "", "Lint script under scripts/ (defaults to the editor spec's rules)")
	scale := flag.Int("scale", 1, "Cell size multiplier")
	outPath := flag.String("out", "", "Also write each export to this file")
	watch := flag.Bool("watch", true, "Reload editor.yaml and lint scripts when they change on disk")
	flag.Parse()

	log.Println("Editor starting...")

	format, err := export.ParseFormat(*formatName)
	if err != nil {
		log.Fatal(err)
	}
	prefabs.Dir = *prefabDir

	lvl, err := openLevel(*levelName, *cols, *rows)
	if err != nil {
		log.Fatalf("Failed to load level %s: %v", *levelName, err)
	}

	var watcher *prefabs.Watcher
	if *watch {
		watcher = startWatcher(*prefabDir)
		if watcher != nil {
			defer watcher.Close()
		}
	}

	game, err := NewGame(gameConfig{
		Level:     lvl,
		Format:    format,
		Scale:     *scale,
		RulesName: *rulesName,
		OutPath:   *outPath,
		Watcher:   watcher,
		Clipboard: initClipboard(),
	})
	if err != nil {
		log.Fatal(err)
	}

	cell := baseCellSize * max(*scale, 1)
	w := leftPanelWidth + 32 + lvl.Cols*cell
	h := 32 + lvl.Rows*cell + 160
	ebiten.SetWindowSize(max(w, 900), max(h, 720))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Garden Puzzle Editor")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// openLevel starts a new level or opens a file or embedded sample.
func openLevel(name string, cols, rows int) (*levels.Level, error) {
	if name == "" {
		if !levels.ValidSize(cols, rows) {
			log.Printf("Size %dx%d out of range; clamping to %d..%d", cols, rows, levels.MinSize, levels.MaxSize)
		}
		return levels.New(cols, rows), nil
	}
	return editor.OpenLevel(name)
}

func startWatcher(dir string) *prefabs.Watcher {
	dirs := []string{dir}
	scripts := filepath.Join(dir, "scripts")
	if info, err := os.Stat(scripts); err == nil && info.IsDir() {
		dirs = append(dirs, scripts)
	}
	watcher, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		log.Printf("Not watching %s: %v", dir, err)
		return nil
	}
	log.Printf("Watching %s for spec changes", dir)
	return watcher
}
