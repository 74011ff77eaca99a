package main

import (
	"slices"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/gardenpuzzle/levels"
)

// ToolBar contains the radio-group state for the tool buttons.
type ToolBar struct {
	group   *widget.RadioGroup
	buttons []*widget.Button
	// suppress mutes the changed handler while the selection is set from code.
	suppress bool
}

func (tb *ToolBar) SetTool(idx int) {
	if tb == nil || tb.group == nil || idx < 0 || idx >= len(tb.buttons) {
		return
	}
	tb.suppress = true
	tb.group.SetActive(tb.buttons[idx])
	tb.suppress = false
}

// ColorBar holds the palette swatches.
type ColorBar struct {
	group    *widget.RadioGroup
	buttons  []*widget.Button
	colors   []string
	suppress bool
}

// Refresh marks the selected swatch and disables colors already used by a
// dragon or fire button when such a tool is active.
func (cb *ColorBar) Refresh(selected string, available []string) {
	if cb == nil || cb.group == nil {
		return
	}
	for i, b := range cb.buttons {
		b.GetWidget().Disabled = !slices.Contains(available, cb.colors[i])
		if cb.colors[i] == selected {
			cb.suppress = true
			cb.group.SetActive(b)
			cb.suppress = false
		}
	}
}

// RosterBar shows one button per roster entry. Clicking an entry turns it
// clockwise.
type RosterBar struct {
	container *widget.Container
	theme     *widget.Theme
	face      *text.Face
	onRotate  func(idx int)
	shown     []levels.Direction
}

func (rb *RosterBar) Refresh(roster []levels.Direction) {
	if rb == nil || rb.container == nil || slices.Equal(rb.shown, roster) {
		return
	}
	rb.shown = slices.Clone(roster)
	rb.container.RemoveChildren()
	for i, d := range roster {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(rb.theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(arrowGlyph(d), rb.face, rb.theme.ButtonTheme.TextColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(28, 26),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if rb.onRotate != nil {
					rb.onRotate(i)
				}
			}),
		)
		rb.container.AddChild(btn)
	}
}

func arrowGlyph(d levels.Direction) string {
	switch d {
	case levels.DirUp:
		return "^"
	case levels.DirRight:
		return ">"
	case levels.DirDown:
		return "v"
	case levels.DirLeft:
		return "<"
	}
	return "?"
}
