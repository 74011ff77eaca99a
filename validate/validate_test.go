package validate

import (
	"errors"
	"strings"
	"testing"

	"github.com/milk9111/gardenpuzzle/levels"
)

func addObject(lvl *levels.Level, kind levels.ObjectKind, x, y int, color string) {
	tile, _ := kind.Tile()
	lvl.Map[y][x] = tile
	lvl.Objects = append(lvl.Objects, levels.Object{Kind: kind, X: x, Y: y, Color: color})
}

func TestCompute(t *testing.T) {
	lvl := levels.New(8, 8)
	lvl.Map[0][0] = levels.TileFlower
	lvl.Map[0][1] = levels.TileFlower
	lvl.Items = append(lvl.Items, levels.Item{Kind: levels.ItemCan, X: 3, Y: 3})
	addObject(lvl, levels.KindSwitch, 5, 5, "")
	addObject(lvl, levels.KindFireButton, 6, 6, "red")
	lvl.Roster = append(lvl.Roster, levels.DirLeft)

	s := Compute(lvl)
	want := Stats{Flowers: 2, Switches: 1, Buttons: 1, Cans: 1, Roster: 2}
	if s != want {
		t.Fatalf("expected %+v, got %+v", want, s)
	}
	if s.CansBalanced() {
		t.Fatalf("1 can for 2 flowers should not balance")
	}
	if got := s.CanStatus(); got != "Must be 2 cans (Same as flowers)" {
		t.Fatalf("unexpected can status %q", got)
	}
	if s.RequiredCharacters() != 3 || s.CharactersBalanced() {
		t.Fatalf("expected 3 required characters, got %d", s.RequiredCharacters())
	}
	if got := s.CharacterStatus(); got != "Must be 3 chars (Cans+Switch+Btn)" {
		t.Fatalf("unexpected character status %q", got)
	}
}

func TestCheck(t *testing.T) {
	balanced := func() *levels.Level {
		lvl := levels.New(8, 8)
		lvl.Map[1][1] = levels.TileFlower
		lvl.Items = append(lvl.Items, levels.Item{Kind: levels.ItemCan, X: 2, Y: 2})
		return lvl
	}

	cases := []struct {
		name  string
		setup func(lvl *levels.Level)
		rule  Rule
		color string
		msg   []string
	}{
		{name: "ok", setup: func(lvl *levels.Level) {}},
		{
			name:  "can_mismatch",
			setup: func(lvl *levels.Level) { lvl.Map[4][4] = levels.TileFlower },
			rule:  RuleCanBalance,
			msg:   []string{"current: 1", "required: 2"},
		},
		{
			name:  "roster_short",
			setup: func(lvl *levels.Level) { addObject(lvl, levels.KindSwitch, 5, 5, "") },
			rule:  RuleCharacterBalance,
			msg:   []string{"current: 1", "required: 2"},
		},
		{
			name: "dragon_without_button",
			setup: func(lvl *levels.Level) {
				addObject(lvl, levels.KindDragon, 5, 5, "green")
			},
			rule:  RuleDragonPairing,
			color: "green",
			msg:   []string{"green"},
		},
		{
			name: "button_without_dragon",
			setup: func(lvl *levels.Level) {
				addObject(lvl, levels.KindFireButton, 5, 5, "yellow")
				lvl.Roster = append(lvl.Roster, levels.DirUp)
			},
			rule:  RuleDragonPairing,
			color: "yellow",
		},
		{
			name: "paired_dragon",
			setup: func(lvl *levels.Level) {
				addObject(lvl, levels.KindDragon, 5, 5, "green")
				addObject(lvl, levels.KindFireButton, 6, 6, "green")
				lvl.Roster = append(lvl.Roster, levels.DirUp)
			},
		},
		{
			name: "three_warps",
			setup: func(lvl *levels.Level) {
				addObject(lvl, levels.KindWarp, 5, 5, "blue")
				addObject(lvl, levels.KindWarp, 6, 6, "blue")
				addObject(lvl, levels.KindWarp, 7, 7, "blue")
			},
			rule:  RuleWarpPairing,
			color: "blue",
			msg:   []string{"blue", "current: 3"},
		},
		{
			name: "single_warp",
			setup: func(lvl *levels.Level) {
				addObject(lvl, levels.KindWarp, 5, 5, "pink")
			},
			rule:  RuleWarpPairing,
			color: "pink",
		},
		{
			name: "warp_pair",
			setup: func(lvl *levels.Level) {
				addObject(lvl, levels.KindWarp, 5, 5, "blue")
				addObject(lvl, levels.KindWarp, 6, 6, "blue")
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			lvl := balanced()
			c.setup(lvl)
			err := Check(lvl)
			if c.rule == "" {
				if err != nil {
					t.Fatalf("expected pass, got %v", err)
				}
				return
			}
			var re *RuleError
			if !errors.As(err, &re) {
				t.Fatalf("expected *RuleError, got %v", err)
			}
			if re.Rule != c.rule {
				t.Fatalf("expected rule %s, got %s", c.rule, re.Rule)
			}
			if re.Color != c.color {
				t.Fatalf("expected color %q, got %q", c.color, re.Color)
			}
			for _, m := range c.msg {
				if !strings.Contains(err.Error(), m) {
					t.Fatalf("message %q should mention %q", err.Error(), m)
				}
			}
		})
	}
}

func TestCheckReportsFirstColorInPlacementOrder(t *testing.T) {
	lvl := levels.New(8, 8)
	lvl.Roster = nil
	addObject(lvl, levels.KindWarp, 0, 0, "teal")
	addObject(lvl, levels.KindWarp, 1, 0, "blue")
	addObject(lvl, levels.KindWarp, 2, 0, "blue")
	addObject(lvl, levels.KindWarp, 3, 0, "blue")

	var re *RuleError
	if !errors.As(Check(lvl), &re) || re.Color != "teal" || re.Actual != 1 {
		t.Fatalf("expected teal warp failure first, got %+v", re)
	}
}
