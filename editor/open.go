package editor

import (
	"fmt"
	"os"

	"github.com/milk9111/gardenpuzzle/hazard"
	"github.com/milk9111/gardenpuzzle/levels"
)

// OpenLevel loads a level from a file on disk, or from the embedded samples
// when no such file exists, and checks it with CheckFire.
func OpenLevel(name string) (*levels.Level, error) {
	var (
		lvl *levels.Level
		err error
	)
	if _, statErr := os.Stat(name); statErr == nil {
		lvl, err = levels.LoadLevelFile(name)
	} else {
		lvl, err = levels.LoadLevelFromFS(name)
	}
	if err != nil {
		return nil, err
	}
	if err := CheckFire(lvl); err != nil {
		return nil, err
	}
	return lvl, nil
}

// CheckFire rejects a level with an item or character marker on a burning
// cell, which PlaceAt never produces.
func CheckFire(lvl *levels.Level) error {
	cells := hazard.Project(lvl)
	for _, it := range lvl.Items {
		if hazard.Contains(cells, it.X, it.Y) {
			return fmt.Errorf("editor: %s at (%d,%d) is under dragon fire", it.Kind, it.X, it.Y)
		}
	}
	for _, c := range lvl.Characters {
		if hazard.Contains(cells, c.X, c.Y) {
			return fmt.Errorf("editor: character at (%d,%d) is under dragon fire", c.X, c.Y)
		}
	}
	return nil
}
