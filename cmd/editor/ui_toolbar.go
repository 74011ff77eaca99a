package main

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/gardenpuzzle/editor"
)

// buildToolBar lays the tools out in category sections and binds them to one
// radio group.
func buildToolBar(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, tools []editor.Tool, onToolSelected func(idx int), initialTool int) *ToolBar {
	var toolButtons []*widget.Button
	category := ""
	var section *widget.Container
	for _, t := range tools {
		if t.Category != category || section == nil {
			category = t.Category
			parent.AddChild(sectionLabel(fontFace, categoryTitle(category)))
			section = widget.NewContainer(
				widget.ContainerOpts.Layout(
					widget.NewGridLayout(
						widget.GridLayoutOpts.Columns(2),
						widget.GridLayoutOpts.Spacing(4, 4),
						widget.GridLayoutOpts.Stretch([]bool{true, true}, nil),
					),
				),
			)
			parent.AddChild(section)
		}
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(t.Label, fontFace, theme.ButtonTheme.TextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(100, 26),
			),
		)
		toolButtons = append(toolButtons, btn)
		section.AddChild(btn)
	}

	elements := make([]widget.RadioGroupElement, 0, len(toolButtons))
	for _, b := range toolButtons {
		elements = append(elements, b)
	}

	tb := &ToolBar{buttons: toolButtons}
	tb.group = widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			if onToolSelected == nil || tb.suppress {
				return
			}
			for idx, b := range toolButtons {
				if args.Active == b {
					onToolSelected(idx)
					return
				}
			}
		}),
	)
	tb.SetTool(initialTool)

	return tb
}

func categoryTitle(category string) string {
	switch category {
	case "terrain":
		return "Terrain"
	case "object":
		return "Objects"
	case "item":
		return "Items"
	case "char":
		return "Spawns"
	case "":
		return "Tools"
	}
	return category
}

// buildColorBar adds one swatch per palette color, bound to a radio group.
func buildColorBar(parent *widget.Container, fontFace *text.Face, palette []string, onColorSelected func(hex string)) *ColorBar {
	parent.AddChild(sectionLabel(fontFace, "Color"))
	grid := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewGridLayout(
				widget.GridLayoutOpts.Columns(4),
				widget.GridLayoutOpts.Spacing(4, 4),
			),
		),
	)
	parent.AddChild(grid)

	cb := &ColorBar{colors: palette}
	elements := make([]widget.RadioGroupElement, 0, len(palette))
	for _, hex := range palette {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(swatchImage(colorFor(hex))),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(44, 24),
			),
		)
		cb.buttons = append(cb.buttons, btn)
		elements = append(elements, btn)
		grid.AddChild(btn)
	}
	cb.group = widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			if onColorSelected == nil || cb.suppress {
				return
			}
			for idx, b := range cb.buttons {
				if args.Active == b {
					onColorSelected(cb.colors[idx])
					return
				}
			}
		}),
	)
	return cb
}
