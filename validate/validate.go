// Package validate derives completeness diagnostics from a level and gates
// export on them.
package validate

import (
	"fmt"

	"github.com/milk9111/gardenpuzzle/levels"
)

// Stats are the counts shown in the editor's status panel.
type Stats struct {
	Flowers  int
	Switches int
	Buttons  int
	Cans     int
	Roster   int
}

func Compute(lvl *levels.Level) Stats {
	return Stats{
		Flowers:  lvl.CountTiles(levels.TileFlower),
		Switches: lvl.CountObjects(levels.KindSwitch),
		Buttons:  lvl.CountObjects(levels.KindFireButton),
		Cans:     len(lvl.Items),
		Roster:   len(lvl.Roster),
	}
}

// CansBalanced: every flower needs exactly one can.
func (s Stats) CansBalanced() bool {
	return s.Cans == s.Flowers
}

// RequiredCharacters is the roster length the level needs: one player per
// can, switch and fire button.
func (s Stats) RequiredCharacters() int {
	return s.Cans + s.Switches + s.Buttons
}

func (s Stats) CharactersBalanced() bool {
	return s.Roster == s.RequiredCharacters()
}

func (s Stats) CanStatus() string {
	if s.CansBalanced() {
		return "OK"
	}
	return fmt.Sprintf("Must be %d cans (Same as flowers)", s.Flowers)
}

func (s Stats) CharacterStatus() string {
	if s.CharactersBalanced() {
		return "OK"
	}
	return fmt.Sprintf("Must be %d chars (Cans+Switch+Btn)", s.RequiredCharacters())
}

// Check runs every export rule in order and returns the first failure as a
// *RuleError.
func Check(lvl *levels.Level) error {
	s := Compute(lvl)
	if !s.CansBalanced() {
		return &RuleError{Rule: RuleCanBalance, Actual: s.Cans, Required: s.Flowers}
	}
	if !s.CharactersBalanced() {
		return &RuleError{Rule: RuleCharacterBalance, Actual: s.Roster, Required: s.RequiredCharacters()}
	}
	if err := checkDragonPairs(lvl); err != nil {
		return err
	}
	return checkWarpPairs(lvl)
}

func checkDragonPairs(lvl *levels.Level) error {
	var order []string
	dragons := map[string]int{}
	buttons := map[string]int{}
	for _, o := range lvl.Objects {
		var counts map[string]int
		switch o.Kind {
		case levels.KindDragon:
			counts = dragons
		case levels.KindFireButton:
			counts = buttons
		default:
			continue
		}
		if _, seen := dragons[o.Color]; !seen {
			if _, seen := buttons[o.Color]; !seen {
				order = append(order, o.Color)
			}
		}
		counts[o.Color]++
	}
	for _, c := range order {
		if dragons[c] != buttons[c] {
			return &RuleError{Rule: RuleDragonPairing, Color: c, Actual: dragons[c], Required: buttons[c]}
		}
	}
	return nil
}

func checkWarpPairs(lvl *levels.Level) error {
	var order []string
	warps := map[string]int{}
	for _, o := range lvl.Objects {
		if o.Kind != levels.KindWarp {
			continue
		}
		if _, seen := warps[o.Color]; !seen {
			order = append(order, o.Color)
		}
		warps[o.Color]++
	}
	for _, c := range order {
		if warps[c] != 2 {
			return &RuleError{Rule: RuleWarpPairing, Color: c, Actual: warps[c], Required: 2}
		}
	}
	return nil
}
